package editor

import "github.com/gravitrone/conduit/cli/internal/api"

// Phase is where the loader is in its mount cycle.
type Phase int

const (
	PhaseUnloaded Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseLoadedEmpty
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseLoadedEmpty:
		return "loaded-empty"
	default:
		return "unloaded"
	}
}

// Step is what the caller must do after a lifecycle event: dispatch Actions
// in order, then fetch the article named by Fetch when it is non-empty.
type Step struct {
	Actions []Action
	Fetch   string
}

// Loader decides between fetching an existing article and starting empty.
// It remembers the identifier it last acted on and does nothing when asked
// to sync to the same one again. Every mount and unmount starts a new
// generation; work begun under an older one must not touch the draft.
type Loader struct {
	phase   Phase
	slug    string
	mounted bool
	gen     uint64
}

// Phase returns the current phase.
func (l *Loader) Phase() Phase {
	return l.phase
}

// Slug returns the identifier the loader last acted on.
func (l *Loader) Slug() string {
	return l.slug
}

// Generation identifies the current mount.
func (l *Loader) Generation() uint64 {
	return l.gen
}

// Current reports whether gen is still the live mount.
func (l *Loader) Current(gen uint64) bool {
	return l.mounted && gen == l.gen
}

// Mount starts the editor for slug, or for a new article when slug is empty.
func (l *Loader) Mount(slug string) Step {
	l.gen++
	l.mounted = true
	l.slug = slug
	if slug == "" {
		l.phase = PhaseLoadedEmpty
		return Step{Actions: []Action{PageLoaded{}}}
	}
	l.phase = PhaseLoading
	return Step{Actions: []Action{AsyncStart{}}, Fetch: slug}
}

// Sync re-evaluates the route. An unchanged identifier yields an empty step.
func (l *Loader) Sync(slug string) Step {
	if !l.mounted {
		return l.Mount(slug)
	}
	if slug == l.slug {
		return Step{}
	}
	step := l.Mount(slug)
	step.Actions = append([]Action{PageUnloaded{}}, step.Actions...)
	return step
}

// Adopt records slug as the loaded article without fetching it, used once a
// create started under gen has assigned the new article its identifier. It
// reports false and changes nothing when gen is no longer current.
func (l *Loader) Adopt(gen uint64, slug string) bool {
	if !l.Current(gen) || slug == "" {
		return false
	}
	l.slug = slug
	l.phase = PhaseLoaded
	return true
}

// Resolve turns a finished fetch into the PageLoaded action. Responses for an
// identifier the loader has since moved away from are discarded.
func (l *Loader) Resolve(slug string, article *api.Article, err error) (Action, bool) {
	if !l.mounted || l.phase != PhaseLoading || slug != l.slug {
		return nil, false
	}
	l.phase = PhaseLoaded
	return PageLoaded{Article: article, Err: err}, true
}

// Unmount tears the editor down.
func (l *Loader) Unmount() Step {
	if !l.mounted {
		return Step{}
	}
	l.gen++
	l.mounted = false
	l.slug = ""
	l.phase = PhaseUnloaded
	return Step{Actions: []Action{PageUnloaded{}}}
}
