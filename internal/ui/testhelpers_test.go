package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/conduit/cli/internal/api"
	"github.com/gravitrone/conduit/cli/internal/editor"
)

// fakeConduit serves the article endpoints the editor talks to and records
// every request except tag listing.
type fakeConduit struct {
	mu    sync.Mutex
	calls []string
}

func newFakeConduit(t *testing.T) (*fakeConduit, *api.Client) {
	t.Helper()
	f := &fakeConduit{}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)
	return f, api.NewClient(srv.URL, "")
}

func (f *fakeConduit) serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/tags" {
		json.NewEncoder(w).Encode(map[string]any{"tags": []string{"go", "golang", "dragons"}})
		return
	}

	f.mu.Lock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	f.mu.Unlock()

	slug := strings.TrimPrefix(r.URL.Path, "/articles/")
	switch {
	case r.Method == http.MethodGet && slug == "missing":
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"errors": map[string][]string{"article": {"not found"}}})
	case r.Method == http.MethodGet:
		json.NewEncoder(w).Encode(map[string]any{"article": map[string]any{
			"slug":        slug,
			"title":       "Loaded " + slug,
			"description": "About " + slug,
			"body":        words(25),
			"tagList":     []string{"go"},
		}})
	case r.Method == http.MethodPost || r.Method == http.MethodPut:
		var body map[string]api.ArticleFields
		json.NewDecoder(r.Body).Decode(&body)
		if r.Method == http.MethodPost {
			slug = "created-article"
		}
		json.NewEncoder(w).Encode(map[string]any{"article": map[string]any{
			"slug":    slug,
			"title":   body["article"].Title,
			"tagList": body["article"].TagList,
		}})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeConduit) count(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeConduit) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

// drain runs cmd and any batch it expands to, returning the produced messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// feed runs cmd and hands the editor's own messages back to it.
func feed(m EditorModel, cmd tea.Cmd) EditorModel {
	for _, msg := range drain(cmd) {
		switch msg.(type) {
		case articleFetchedMsg, tagsLoadedMsg, submitSettledMsg:
			m, _ = m.Update(msg)
		}
	}
	return m
}

func initEditor(t *testing.T, client Client, store *editor.Store, slug string, policy editor.Policy) EditorModel {
	t.Helper()
	m := NewEditorModel(client, store, slug, policy)
	return feed(m, m.Init())
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m EditorModel, keys ...string) EditorModel {
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	return m
}

func typeText(m EditorModel, s string) EditorModel {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}
