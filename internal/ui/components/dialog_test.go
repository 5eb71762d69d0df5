package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialogIncludesTitleMessageAndHints(t *testing.T) {
	out := ConfirmDialog("Unsaved changes", "Discard?", "discard", "keep editing")
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Unsaved changes")
	assert.Contains(t, clean, "Discard?")
	assert.Contains(t, clean, "y: discard | n: keep editing")
}
