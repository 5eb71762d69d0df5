package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/conduit/cli/internal/api"
	"github.com/gravitrone/conduit/cli/internal/editor"
	"github.com/gravitrone/conduit/cli/internal/ui/components"
)

// Client is the API surface the editor screen uses.
type Client interface {
	editor.ArticleAPI
	ListTags() ([]string, error)
}

// --- Messages ---

type articleFetchedMsg struct {
	slug    string
	article *api.Article
	err     error
}

type submitSettledMsg struct {
	gen     uint64
	sub     editor.Submission
	article *api.Article
	err     error
}

type tagsLoadedMsg struct{ tags []string }

// --- Focus ---

type editorFocus int

const (
	focusTitle editorFocus = iota
	focusDescription
	focusBody
	focusTagInput
	focusTagList
	focusPublish
	focusCount
)

const (
	maxSuggestions = 20
	suggestionPage = 5
)

// savedState is the part of a draft that counts as unsaved work.
type savedState struct {
	fields editor.Fields
	tags   string
}

func snapshot(d editor.Draft) savedState {
	return savedState{fields: d.Fields(), tags: strings.Join(d.TagList, "\x00")}
}

// --- Editor Model ---

// EditorModel is the create/update article screen. Every edit is dispatched
// to the store; the inputs mirror the store's draft after each dispatch.
type EditorModel struct {
	client Client
	store  *editor.Store
	loader *editor.Loader
	policy editor.Policy

	title       textinput.Model
	description textinput.Model
	body        textarea.Model
	tagInput    textinput.Model
	spinner     spinner.Model
	suggest     *components.Picker

	// initialSlug is the route identifier mounted by Init.
	initialSlug string
	focus       editorFocus
	tagIdx      int
	knownTags   []string
	saved       savedState
	notice      string
	width       int
	height      int
}

// NewEditorModel builds the editor for slug, or for a new article when slug
// is empty. Nothing is loaded until Init.
func NewEditorModel(client Client, store *editor.Store, slug string, policy editor.Policy) EditorModel {
	title := textinput.New()
	title.Placeholder = "Article Title"
	title.Prompt = ""

	description := textinput.New()
	description.Placeholder = "What's this article about?"
	description.Prompt = ""

	body := textarea.New()
	body.Placeholder = "Write your article (in markdown)"
	body.ShowLineNumbers = false
	body.CharLimit = 0
	body.MaxHeight = 0
	body.SetHeight(8)

	tagInput := textinput.New()
	tagInput.Placeholder = "Enter tags"
	tagInput.Prompt = ""

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(AccentStyle))

	m := EditorModel{
		client:      client,
		store:       store,
		loader:      &editor.Loader{},
		policy:      policy,
		title:       title,
		description: description,
		body:        body,
		tagInput:    tagInput,
		spinner:     sp,
		suggest:     components.NewPicker(suggestionPage),
		tagIdx:      -1,
		initialSlug: slug,
	}
	m.setFocus(focusTitle)
	return m
}

func (m EditorModel) Init() tea.Cmd {
	return tea.Batch(
		m.apply(m.loader.Mount(m.initialSlug)),
		m.loadTags(),
		m.spinner.Tick,
		textinput.Blink,
	)
}

// Route re-evaluates the editor for a new route identifier. An unchanged
// identifier issues nothing.
func (m *EditorModel) Route(slug string) tea.Cmd {
	step := m.loader.Sync(slug)
	if len(step.Actions) > 0 {
		m.notice = ""
		m.setFocus(focusTitle)
	}
	cmd := m.apply(step)
	if len(step.Actions) > 0 {
		m.markClean()
	}
	return cmd
}

// Editing reports whether the screen is bound to an existing article.
func (m EditorModel) Editing() bool {
	return m.loader.Slug() != ""
}

// Dirty reports whether the draft differs from what was last loaded or
// published.
func (m EditorModel) Dirty() bool {
	return snapshot(m.store.Draft()) != m.saved
}

func (m *EditorModel) markClean() {
	m.saved = snapshot(m.store.Draft())
}

// Unmount tears the screen down and clears the store.
func (m *EditorModel) Unmount() {
	m.apply(m.loader.Unmount())
}

// apply dispatches the step's actions and returns the fetch it asks for.
func (m *EditorModel) apply(step editor.Step) tea.Cmd {
	for _, a := range step.Actions {
		m.store.Dispatch(a)
	}
	m.syncInputs()
	if step.Fetch == "" {
		return nil
	}
	slug := step.Fetch
	client := m.client
	return func() tea.Msg {
		article, err := client.GetArticle(slug)
		return articleFetchedMsg{slug: slug, article: article, err: err}
	}
}

func (m EditorModel) loadTags() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		tags, err := client.ListTags()
		if err != nil {
			log.Printf("editor: list tags: %v", err)
			return tagsLoadedMsg{}
		}
		return tagsLoadedMsg{tags: tags}
	}
}

func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case articleFetchedMsg:
		act, ok := m.loader.Resolve(msg.slug, msg.article, msg.err)
		if !ok {
			log.Printf("editor: dropped stale fetch for %q", msg.slug)
			return m, nil
		}
		m.dispatch(act)
		m.markClean()
		return m, nil

	case tagsLoadedMsg:
		m.knownTags = msg.tags
		m.suggest.SetItems(m.suggestions())
		return m, nil

	case submitSettledMsg:
		if !m.loader.Current(msg.gen) {
			log.Printf("editor: dropped publish result from a previous screen (slug=%q err=%v)", msg.sub.Slug, msg.err)
			return m, nil
		}
		act := msg.sub.Settle(msg.article, msg.err)
		if act == nil {
			log.Printf("editor: request for rejected draft finished (err=%v), outcome not dispatched", msg.err)
			return m, nil
		}
		m.dispatch(act)
		if msg.err == nil && msg.article != nil {
			m.loader.Adopt(msg.gen, msg.article.Slug)
			m.markClean()
			m.notice = "Published " + components.SanitizeOneLine(msg.article.Slug)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	switch {
	case isPublish(msg):
		return m, m.submit()
	case isNextField(msg):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case isPrevField(msg):
		return m, m.setFocus((m.focus - 1 + focusCount) % focusCount)
	}

	switch m.focus {
	case focusTagInput:
		if act, ok := editor.TagKeyIntent(msg.String(), m.tagInput.Value()); ok {
			m.dispatch(act)
			return m, nil
		}
		if isEnter(msg) {
			return m, nil
		}
		switch {
		case isKey(msg, "ctrl+t"):
			if tag, ok := m.suggest.Current(); ok {
				m.dispatch(editor.UpdateField{Key: editor.FieldTagInput, Value: tag})
			}
			return m, nil
		case isKey(msg, "down"):
			m.suggest.Down()
			return m, nil
		case isKey(msg, "up"):
			m.suggest.Up()
			return m, nil
		}
	case focusTagList:
		tags := m.store.Draft().TagList
		switch {
		case isKey(msg, "left"):
			if len(tags) > 0 {
				m.tagIdx = (m.tagIdx - 1 + len(tags)) % len(tags)
			}
		case isKey(msg, "right"):
			if len(tags) > 0 {
				m.tagIdx = (m.tagIdx + 1) % len(tags)
			}
		case isRemoveTag(msg):
			if m.tagIdx >= 0 && m.tagIdx < len(tags) {
				m.dispatch(editor.RemoveTag{Tag: tags[m.tagIdx]})
			}
		}
		return m, nil
	case focusPublish:
		if isEnter(msg) {
			return m, m.submit()
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and dispatches the new
// value when it changed.
func (m EditorModel) updateFocused(msg tea.Msg) (EditorModel, tea.Cmd) {
	var cmd tea.Cmd
	var key editor.Field
	var value string
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
		key, value = editor.FieldTitle, m.title.Value()
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
		key, value = editor.FieldDescription, m.description.Value()
	case focusBody:
		m.body, cmd = m.body.Update(msg)
		key, value = editor.FieldBody, m.body.Value()
	case focusTagInput:
		m.tagInput, cmd = m.tagInput.Update(msg)
		key, value = editor.FieldTagInput, m.tagInput.Value()
	default:
		return m, nil
	}
	if value != m.store.Draft().Value(key) {
		m.dispatch(editor.UpdateField{Key: key, Value: value})
	}
	return m, cmd
}

// submit publishes the draft. At most one request leaves per call, and none
// while a previous one is still in flight.
func (m *EditorModel) submit() tea.Cmd {
	draft := m.store.Draft()
	if draft.InProgress {
		return nil
	}
	m.notice = ""
	sub := editor.Prepare(draft, m.client, m.policy)
	m.dispatch(sub.Immediate())
	if sub.Request == nil {
		return nil
	}
	gen := m.loader.Generation()
	return func() tea.Msg {
		article, err := sub.Request()
		return submitSettledMsg{gen: gen, sub: sub, article: article, err: err}
	}
}

func (m *EditorModel) dispatch(a editor.Action) {
	m.store.Dispatch(a)
	m.syncInputs()
}

// syncInputs copies the draft into the inputs that differ from it.
func (m *EditorModel) syncInputs() {
	d := m.store.Draft()
	if m.title.Value() != d.Title {
		m.title.SetValue(d.Title)
	}
	if m.description.Value() != d.Description {
		m.description.SetValue(d.Description)
	}
	if m.body.Value() != d.Body {
		m.body.SetValue(d.Body)
	}
	if m.tagInput.Value() != d.TagInput {
		m.tagInput.SetValue(d.TagInput)
	}
	switch {
	case len(d.TagList) == 0:
		m.tagIdx = -1
	case m.tagIdx >= len(d.TagList):
		m.tagIdx = len(d.TagList) - 1
	case m.tagIdx < 0 && m.focus == focusTagList:
		m.tagIdx = 0
	}
	m.suggest.SetItems(m.suggestions())
}

func (m *EditorModel) setFocus(f editorFocus) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.description.Blur()
	m.body.Blur()
	m.tagInput.Blur()

	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusDescription:
		return m.description.Focus()
	case focusBody:
		return m.body.Focus()
	case focusTagInput:
		return m.tagInput.Focus()
	case focusTagList:
		if m.tagIdx < 0 && len(m.store.Draft().TagList) > 0 {
			m.tagIdx = 0
		}
	}
	return nil
}

func (m *EditorModel) resize() {
	w := components.BoxContentWidth(m.width) - 2
	if w < 10 {
		w = 10
	}
	m.title.Width = w
	m.description.Width = w
	m.tagInput.Width = w
	m.body.SetWidth(w)
	if m.height > 0 {
		h := m.height - 24
		if h < 4 {
			h = 4
		}
		m.body.SetHeight(h)
	}
}

func (m EditorModel) suggestions() []string {
	d := m.store.Draft()
	return editor.Suggest(m.knownTags, d.TagInput, d.TagList, maxSuggestions)
}

// --- Rendering ---

func (m EditorModel) View() string {
	d := m.store.Draft()

	title := "New Article"
	if slug := m.loader.Slug(); slug != "" {
		title = "Edit " + components.SanitizeOneLine(slug)
	}

	var b strings.Builder
	if errs := renderErrors(d.Errors, m.width); errs != "" {
		b.WriteString(errs)
		b.WriteString("\n\n")
	}

	if m.loader.Phase() == editor.PhaseLoading {
		b.WriteString(m.spinner.View() + " " + MutedStyle.Render("Loading article..."))
		return components.TitledBox(title, b.String(), m.width)
	}

	b.WriteString(m.renderLabel("Title", focusTitle))
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderLabel("Description", focusDescription))
	b.WriteString(m.description.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderLabel("Body", focusBody))
	b.WriteString(m.body.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderLabel("Tags", focusTagInput))
	b.WriteString(m.tagInput.View())
	if picks := m.suggest.View(); picks != "" && m.focus == focusTagInput {
		b.WriteString("\n")
		b.WriteString(MutedStyle.Render("  suggest: ") + picks + MutedStyle.Render("  (up/down, ctrl+t)"))
	}
	b.WriteString("\n")
	b.WriteString(m.renderTagList(d.TagList))
	b.WriteString("\n\n")
	b.WriteString(m.renderPublish(d.InProgress))

	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(SuccessStyle.Render(m.notice))
	}

	return components.TitledBox(title, b.String(), m.width)
}

func (m EditorModel) renderLabel(label string, f editorFocus) string {
	if m.focus == f {
		return SelectedStyle.Render("> "+label+":") + "\n"
	}
	return MutedStyle.Render("  "+label+":") + "\n"
}

func (m EditorModel) renderTagList(tags []string) string {
	prefix := "  "
	selected := -1
	if m.focus == focusTagList {
		prefix = SelectedStyle.Render("> ")
		selected = m.tagIdx
	}
	if len(tags) == 0 {
		return prefix + MutedStyle.Render("no tags")
	}
	return prefix + components.TagPills(tags, selected)
}

func (m EditorModel) renderPublish(inProgress bool) string {
	if inProgress {
		return m.spinner.View() + " " + MutedStyle.Render("Publishing...")
	}
	if m.focus == focusPublish {
		return ButtonActiveStyle.Render("Publish Article")
	}
	return ButtonInactiveStyle.Render("Publish Article")
}
