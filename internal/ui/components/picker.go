package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	pickerItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
	pickerCursorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)
)

// Picker is a short scrollable list of choices with a cursor.
type Picker struct {
	Items    []string
	Cursor   int
	Offset   int
	PageSize int
}

// NewPicker creates a picker showing pageSize items at a time.
func NewPicker(pageSize int) *Picker {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Picker{PageSize: pageSize}
}

// SetItems replaces the choices. The cursor stays on the same item when it
// is still present, otherwise it returns to the top.
func (p *Picker) SetItems(items []string) {
	current, ok := p.Current()
	p.Items = items
	p.Cursor = 0
	p.Offset = 0
	if !ok {
		return
	}
	for i, it := range items {
		if it == current {
			p.Cursor = i
			break
		}
	}
	if p.Cursor >= p.PageSize {
		p.Offset = p.Cursor - p.PageSize + 1
	}
}

// Down moves the cursor down, wrapping to the top.
func (p *Picker) Down() {
	if len(p.Items) == 0 {
		return
	}
	if p.Cursor == len(p.Items)-1 {
		p.Cursor, p.Offset = 0, 0
		return
	}
	p.Cursor++
	if p.Cursor >= p.Offset+p.PageSize {
		p.Offset++
	}
}

// Up moves the cursor up, wrapping to the bottom.
func (p *Picker) Up() {
	if len(p.Items) == 0 {
		return
	}
	if p.Cursor == 0 {
		p.Cursor = len(p.Items) - 1
		p.Offset = max(0, len(p.Items)-p.PageSize)
		return
	}
	p.Cursor--
	if p.Cursor < p.Offset {
		p.Offset--
	}
}

// Current returns the item under the cursor.
func (p *Picker) Current() (string, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return "", false
	}
	return p.Items[p.Cursor], true
}

// Visible returns the items in the current window.
func (p *Picker) Visible() []string {
	if len(p.Items) == 0 {
		return nil
	}
	end := min(p.Offset+p.PageSize, len(p.Items))
	return p.Items[p.Offset:end]
}

// View renders the visible items on one line, marking the cursor.
func (p *Picker) View() string {
	visible := p.Visible()
	if len(visible) == 0 {
		return ""
	}
	parts := make([]string, 0, len(visible)+2)
	if p.Offset > 0 {
		parts = append(parts, pickerItemStyle.Render("…"))
	}
	for i, it := range visible {
		label := SanitizeOneLine(it)
		if p.Offset+i == p.Cursor {
			parts = append(parts, pickerCursorStyle.Render("["+label+"]"))
			continue
		}
		parts = append(parts, pickerItemStyle.Render(label))
	}
	if p.Offset+len(visible) < len(p.Items) {
		parts = append(parts, pickerItemStyle.Render("…"))
	}
	return strings.Join(parts, " ")
}
