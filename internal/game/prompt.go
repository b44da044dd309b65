package game

import (
	"errors"

	"github.com/ncruces/zenity"
)

// Prompter collects text from the user with blocking modal dialogs.
type Prompter interface {
	// Entry asks for a line of text. ok is false when the user cancelled.
	Entry(title, prompt, initial string) (value string, ok bool, err error)
	// Alert shows an error message and waits for it to be dismissed.
	Alert(title, message string) error
}

// ZenityPrompter shows native dialogs.
type ZenityPrompter struct{}

func (ZenityPrompter) Entry(title, prompt, initial string) (string, bool, error) {
	v, err := zenity.Entry(prompt,
		zenity.Title(title),
		zenity.EntryText(initial),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (ZenityPrompter) Alert(title, message string) error {
	err := zenity.Error(message,
		zenity.Title(title),
		zenity.ErrorIcon,
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}
