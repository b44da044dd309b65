package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	idx, err := ParseIndex(" 1 ", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = ParseIndex("3", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	for _, in := range []string{"0", "4", "-1"} {
		_, err := ParseIndex(in, 3)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, in)
	}
	for _, in := range []string{"", "two", "1.5"} {
		_, err := ParseIndex(in, 3)
		assert.ErrorIs(t, err, ErrInvalidIndex, in)
	}
}

func TestListing(t *testing.T) {
	got := Listing([]Segment{{Label: "Pizza"}, {Label: "Tacos"}})
	assert.Equal(t, "1. Pizza\n2. Tacos", got)
	assert.Empty(t, Listing(nil))
}
