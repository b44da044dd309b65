package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_Ring(t *testing.T) {
	h := NewHistory(3)
	assert.Empty(t, h.Snapshot())

	h.Record("a")
	h.Record("b")
	assert.Equal(t, []string{"a", "b"}, h.Snapshot())

	h.Record("c")
	h.Record("d")
	h.Record("e")
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []string{"c", "d", "e"}, h.Snapshot())
}

func TestHistory_MinimumSize(t *testing.T) {
	h := NewHistory(0)
	h.Record("x")
	h.Record("y")
	assert.Equal(t, []string{"y"}, h.Snapshot())
}
