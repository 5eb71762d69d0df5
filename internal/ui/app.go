package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/conduit/cli/internal/editor"
	"github.com/gravitrone/conduit/cli/internal/ui/components"
)

// --- Messages ---

type routeMsg struct{ slug string }

// Navigate routes the editor to slug, or to a new article when slug is empty.
func Navigate(slug string) tea.Cmd {
	return func() tea.Msg { return routeMsg{slug: slug} }
}

// --- App Model ---

// App is the root TUI model. It hosts the editor screen and owns quitting.
type App struct {
	editor     EditorModel
	width      int
	height     int
	confirming bool
	quitting   bool
}

// NewApp creates the root application model for slug (empty for a new article).
func NewApp(client Client, store *editor.Store, slug string, policy editor.Policy) App {
	return App{
		editor: NewEditorModel(client, store, slug, policy),
	}
}

func (a App) Init() tea.Cmd {
	return a.editor.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		return a, cmd

	case routeMsg:
		cmd := a.editor.Route(msg.slug)
		return a, cmd

	case tea.KeyMsg:
		if a.confirming {
			switch {
			case isQuit(msg), isConfirm(msg):
				return a.quit()
			case isCancel(msg), isBack(msg):
				a.confirming = false
			}
			return a, nil
		}
		switch {
		case isQuit(msg):
			return a.quit()
		case isBack(msg):
			if a.editor.Dirty() {
				a.confirming = true
				return a, nil
			}
			return a.quit()
		case isKey(msg, "ctrl+n"):
			if !a.editor.Editing() {
				return a, nil
			}
			return a, Navigate("")
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.editor.Unmount()
	a.confirming = false
	a.quitting = true
	return a, tea.Quit
}

func (a App) View() string {
	if a.quitting {
		return ""
	}
	if a.confirming {
		return lipgloss.JoinVertical(lipgloss.Left,
			components.ConfirmDialog("Unsaved changes", "Leave the editor and discard your edits?", "discard", "keep editing"),
			components.StatusBar([]string{
				components.Hint("y", "Discard"),
				components.Hint("n", "Keep editing"),
			}, a.width),
		)
	}
	hints := []string{
		components.Hint("tab", "Next"),
		components.Hint("ctrl+s", "Publish"),
		components.Hint("enter", "Add tag"),
		components.Hint("x", "Remove tag"),
	}
	if a.editor.Editing() {
		hints = append(hints, components.Hint("ctrl+n", "New"))
	}
	hints = append(hints, components.Hint("esc", "Quit"))
	return lipgloss.JoinVertical(lipgloss.Left,
		a.editor.View(),
		components.StatusBar(hints, a.width),
	)
}
