// Package editor holds the article editor's state, the intents that change it
// and the validation and submit rules applied before an article is published.
package editor

import "github.com/gravitrone/conduit/cli/internal/api"

// Field names a text input of the editor form.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldBody        Field = "body"
	FieldTagInput    Field = "tagInput"
)

// Action is an intent the editor emits for the store to apply. The set is
// closed: only the types in this file implement it.
type Action interface {
	isAction()
}

// AddTag moves the current tag input onto the tag list.
type AddTag struct{}

// PageLoaded carries the article fetched for editing, or nil to start empty.
type PageLoaded struct {
	Article *api.Article
	Err     error
}

// RemoveTag drops every tag equal to Tag.
type RemoveTag struct {
	Tag string
}

// ArticleSubmitted carries exactly one of two values: the payload rejected by
// validation, or the outcome of the create/update request.
type ArticleSubmitted struct {
	Rejected *Payload
	Article  *api.Article
	Err      error
}

// PageUnloaded resets the draft.
type PageUnloaded struct{}

// UpdateField sets one text field.
type UpdateField struct {
	Key   Field
	Value string
}

// AsyncStart marks a fetch or submit request as in flight.
type AsyncStart struct{}

func (AddTag) isAction()           {}
func (PageLoaded) isAction()       {}
func (RemoveTag) isAction()        {}
func (ArticleSubmitted) isAction() {}
func (PageUnloaded) isAction()     {}
func (UpdateField) isAction()      {}
func (AsyncStart) isAction()       {}

// Rejected builds the submit action for a payload that failed validation.
func Rejected(p Payload) ArticleSubmitted {
	return ArticleSubmitted{Rejected: &p}
}

// Settled builds the submit action for a finished request.
func Settled(article *api.Article, err error) ArticleSubmitted {
	return ArticleSubmitted{Article: article, Err: err}
}
