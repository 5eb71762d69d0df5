package ui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/gravitrone/conduit/cli/internal/editor"
	"github.com/gravitrone/conduit/cli/internal/ui/components"
)

// renderErrors lists every message of errs, one bullet per message, wrapped
// to the box width. It returns "" when there is nothing to show.
func renderErrors(errs editor.Errors, width int) string {
	if len(errs) == 0 {
		return ""
	}
	wrapAt := components.BoxContentWidth(width) - 4
	if wrapAt <= 0 {
		wrapAt = 60
	}

	var b strings.Builder
	for _, key := range errs.Keys() {
		for _, msg := range errs[key] {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			line := components.SanitizeOneLine(msg)
			if !strings.Contains(strings.ToLower(line), strings.ToLower(key)) {
				line = key + " " + line
			}
			b.WriteString("• " + components.Indent(wordwrap.String(line, wrapAt), 2)[2:])
		}
	}
	return components.ErrorBox("Errors", b.String(), width)
}
