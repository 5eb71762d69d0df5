package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagPillsRendersEveryTag(t *testing.T) {
	out := TagPills([]string{"go", "tui"}, 1)
	assert.Contains(t, out, "× go")
	assert.Contains(t, out, "× tui")
}

func TestTagPillsEmpty(t *testing.T) {
	assert.Equal(t, "", TagPills(nil, -1))
}

func TestTagPillsSanitizes(t *testing.T) {
	out := TagPills([]string{"bad\x1b[2Jtag"}, -1)
	assert.NotContains(t, out, "\x1b[2J")
	assert.Contains(t, out, "badtag")
}
