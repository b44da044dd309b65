// Package game is the wheel window: it turns input into store mutations and
// spins, and draws the wheel, pointer, buttons and results every frame.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/wheel-of-fortune/internal/config"
	"github.com/iburimskiy/wheel-of-fortune/internal/log"
	"github.com/iburimskiy/wheel-of-fortune/internal/sound"
	"github.com/iburimskiy/wheel-of-fortune/internal/wheel"
)

const dialogTitle = "Wheel of Fortune"

// Options wires a Game to its collaborators.
type Options struct {
	Store    *wheel.Store
	Spinner  *wheel.Spinner
	History  *wheel.History
	Prompter Prompter
	Sound    sound.Player
	Logger   *slog.Logger
	Radius   float64
	Now      func() time.Time
}

// Game implements ebiten.Game.
type Game struct {
	store    *wheel.Store
	spinner  *wheel.Spinner
	history  *wheel.History
	prompter Prompter
	sound    sound.Player
	logger   *slog.Logger
	now      func() time.Time

	renderer *wheelRenderer
	buttons  []*button
	radius   float64

	// pointed is the wedge under the pointer on the previous frame.
	pointed int

	// viz
	time       float64
	colorPhase float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	result  string
	status  string
	lastErr error
}

// NewGame builds the game. It does not touch the GPU, so it can be used
// before ebiten.RunGame and in tests.
func NewGame(opts Options) (*Game, error) {
	if opts.Store == nil || opts.Spinner == nil {
		return nil, errors.New("game: store and spinner are required")
	}
	fonts, err := newFontCache()
	if err != nil {
		return nil, err
	}
	g := &Game{
		store:    opts.Store,
		spinner:  opts.Spinner,
		history:  opts.History,
		prompter: opts.Prompter,
		sound:    opts.Sound,
		logger:   opts.Logger,
		now:      opts.Now,
		radius:   opts.Radius,
		prevKey:  map[ebiten.Key]bool{},
	}
	if g.history == nil {
		g.history = wheel.NewHistory(5)
	}
	if g.prompter == nil {
		g.prompter = ZenityPrompter{}
	}
	if g.sound == nil {
		g.sound = sound.Nop{}
	}
	if g.logger == nil {
		g.logger = log.Discard()
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.radius <= 0 {
		g.radius = 150
	}
	g.renderer = newWheelRenderer(g.radius, fonts)
	g.buttons = g.newButtons()
	g.pointed, _ = wheel.Resolve(g.spinner.Rotation(), g.store.Len())
	return g, nil
}

func (g *Game) newButtons() []*button {
	actions := []struct {
		label  string
		action func()
	}{
		{"Add", g.addSegment},
		{"Edit", g.editSegment},
		{"Delete", g.deleteSegment},
		{"Spin", g.spin},
	}
	out := make([]*button, 0, len(actions))
	for i, a := range actions {
		out = append(out, &button{
			label:  a.label,
			x:      config.ButtonX,
			y:      config.ButtonY + i*(config.ButtonHeight+config.ButtonGap),
			w:      config.ButtonWidth,
			h:      config.ButtonHeight,
			action: a.action,
		})
	}
	return out
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	mouseDown := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	mouseUp := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	for _, b := range g.buttons {
		if b.update(mouseX, mouseY, mouseDown, mouseUp) {
			b.action()
		}
	}

	if justPressed(ebiten.KeyA) {
		g.addSegment()
	}
	if justPressed(ebiten.KeyE) {
		g.editSegment()
	}
	if justPressed(ebiten.KeyD) {
		g.deleteSegment()
	}
	if justPressed(ebiten.KeySpace) {
		g.spin()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.time += 1.0 / 60.0 // Assuming 60 FPS
	g.colorPhase += config.ColorShiftSpeed
	g.step(g.now())
	return nil
}

// step advances a running spin by one frame.
func (g *Game) step(now time.Time) {
	if g.spinner.State() != wheel.Spinning {
		return
	}
	done := g.spinner.Advance(now)
	if idx, ok := wheel.Resolve(g.spinner.Rotation(), g.store.Len()); ok && idx != g.pointed {
		g.pointed = idx
		g.sound.Tick()
	}
	if done {
		g.finishSpin()
	}
}

func (g *Game) finishSpin() {
	idx, ok := wheel.Resolve(g.spinner.Rotation(), g.store.Len())
	if !ok {
		g.status = "Spin finished - add segments to pick a winner"
		return
	}
	seg, err := g.store.At(idx)
	if err != nil {
		g.fail(err)
		return
	}
	g.result = seg.Label
	g.status = ""
	g.history.Record(seg.Label)
	g.sound.Win()
	g.logger.Info("spin finished", "rotation", g.spinner.Rotation(), "index", idx, "label", seg.Label)
}

func (g *Game) spin() {
	if !g.spinner.Start(g.now()) {
		g.logger.Debug("spin ignored, wheel already spinning")
		return
	}
	g.pointed, _ = wheel.Resolve(g.spinner.Rotation(), g.store.Len())
	g.result = ""
	g.status = "Spinning..."
	g.logger.Debug("spin started", "from", g.spinner.Rotation(), "target", g.spinner.Target())
}

// busy blocks segment changes while the wheel turns.
func (g *Game) busy() bool {
	if g.spinner.State() == wheel.Spinning {
		g.status = "Wait for the wheel to stop"
		return true
	}
	return false
}

func (g *Game) addSegment() {
	if g.busy() {
		return
	}
	label, ok, err := g.prompter.Entry(dialogTitle, "Enter text for the new segment:", "")
	if err != nil {
		g.fail(err)
		return
	}
	if !ok {
		return
	}
	seg, err := g.store.Add(label)
	if err != nil {
		g.reject(err)
		return
	}
	g.lastErr = nil
	g.status = fmt.Sprintf("Added %q", seg.Label)
}

func (g *Game) editSegment() {
	if g.busy() {
		return
	}
	idx, ok := g.askIndex("Edit")
	if !ok {
		return
	}
	seg, err := g.store.At(idx)
	if err != nil {
		g.reject(err)
		return
	}
	label, ok, err := g.prompter.Entry(dialogTitle, "Enter new text for the segment:", seg.Label)
	if err != nil {
		g.fail(err)
		return
	}
	if !ok {
		return
	}
	if err := g.store.Edit(idx, label); err != nil {
		g.reject(err)
		return
	}
	g.lastErr = nil
	g.status = fmt.Sprintf("Segment %d renamed", idx+1)
}

func (g *Game) deleteSegment() {
	if g.busy() {
		return
	}
	idx, ok := g.askIndex("Delete")
	if !ok {
		return
	}
	seg, err := g.store.At(idx)
	if err != nil {
		g.reject(err)
		return
	}
	if err := g.store.Delete(idx); err != nil {
		g.reject(err)
		return
	}
	g.lastErr = nil
	g.status = fmt.Sprintf("Deleted %q", seg.Label)
}

// askIndex prompts for a 1-based segment number and returns it 0-based.
func (g *Game) askIndex(verb string) (int, bool) {
	prompt := verb + " which segment? Enter its number:"
	if list := wheel.Listing(g.store.Segments()); list != "" {
		prompt += "\n\n" + list
	}
	input, ok, err := g.prompter.Entry(dialogTitle, prompt, "")
	if err != nil {
		g.fail(err)
		return 0, false
	}
	if !ok || strings.TrimSpace(input) == "" {
		return 0, false
	}
	idx, err := wheel.ParseIndex(input, g.store.Len())
	if err != nil {
		g.reject(err)
		return 0, false
	}
	return idx, true
}

// reject tells the user why their input was refused.
func (g *Game) reject(err error) {
	g.lastErr = err
	msg := userMessage(err)
	g.status = msg
	g.logger.Info("input rejected", "err", err)
	if aerr := g.prompter.Alert(dialogTitle, msg); aerr != nil {
		g.logger.Warn("alert dialog failed", "err", aerr)
	}
}

// fail records an unexpected error such as a broken dialog or storage.
func (g *Game) fail(err error) {
	g.lastErr = err
	g.logger.Error("operation failed", "err", err)
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, wheel.ErrEmptyLabel):
		return "Please enter text for the segment."
	case errors.Is(err, wheel.ErrIndexOutOfRange), errors.Is(err, wheel.ErrInvalidIndex):
		return "Invalid segment index."
	}
	return err.Error()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	cx, cy := float64(config.WheelCenterX), float64(config.WheelCenterY)
	g.renderer.draw(screen, g.store, cx, cy, g.spinner.Rotation())
	drawPointer(screen, cx, cy, g.radius)

	spinning := g.spinner.State() == wheel.Spinning
	for _, b := range g.buttons {
		b.draw(screen, !spinning || b.label == "Spin")
	}

	g.drawResults(screen)

	status := g.status
	if status == "" {
		status = "A: add  E: edit  D: delete  Space: spin  Esc/Q: quit"
	}
	if g.lastErr != nil && !strings.Contains(status, userMessage(g.lastErr)) {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	for y := 0; y < config.WindowHeight; y++ {
		ratio := float64(y) / float64(config.WindowHeight)
		hue := (g.colorPhase + ratio*0.2) * 360
		r, gv, b := hsvToRgb(hue, 0.35, 0.18+0.04*math.Sin(g.time*0.5+ratio*math.Pi))
		ebitenutil.DrawLine(screen, 0, float64(y), float64(config.WindowWidth), float64(y), color.RGBA{R: r, G: gv, B: b, A: 255})
	}
}

func (g *Game) drawResults(screen *ebiten.Image) {
	x := config.ButtonX
	y := config.ButtonY + len(g.buttons)*(config.ButtonHeight+config.ButtonGap) + 10

	result := g.result
	if result == "" {
		result = "-"
	}
	ebitenutil.DebugPrintAt(screen, "Selected: "+result, x, y)

	recent := g.history.Snapshot()
	if len(recent) == 0 {
		return
	}
	y += 30
	ebitenutil.DebugPrintAt(screen, "Recent:", x, y)
	for i := len(recent) - 1; i >= 0; i-- {
		y += 16
		ebitenutil.DebugPrintAt(screen, "  "+recent[i], x, y)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Result returns the label chosen by the last finished spin.
func (g *Game) Result() string { return g.result }

// Close releases the audio device.
func (g *Game) Close() error { return g.sound.Close() }
