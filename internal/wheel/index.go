package wheel

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIndex turns the 1-based number a user typed into a 0-based segment
// index, checking it against n segments.
func ParseIndex(input string, n int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, input)
	}
	if v < 1 || v > n {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrIndexOutOfRange, v, n)
	}
	return v - 1, nil
}

// Listing renders the segments as a numbered list for prompts.
func Listing(segments []Segment) string {
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, seg.Label)
	}
	return b.String()
}
