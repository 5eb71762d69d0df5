package editor

import (
	"errors"
	"strings"

	"github.com/gravitrone/conduit/cli/internal/api"
)

// ErrorKeyLoad and ErrorKeyRequest hold errors that belong to no form field.
const (
	ErrorKeyLoad    = "load"
	ErrorKeyRequest = "request"
)

// Draft is the in-progress article the form edits.
type Draft struct {
	Title       string
	Description string
	Body        string
	TagList     []string
	TagInput    string
	// Slug identifies the article being edited; empty in create mode.
	Slug       string
	InProgress bool
	Errors     Errors
}

// Fields returns the free-text inputs subject to validation.
func (d Draft) Fields() Fields {
	return Fields{Title: d.Title, Description: d.Description, Body: d.Body}
}

// Value returns the current text of a form field.
func (d Draft) Value(key Field) string {
	switch key {
	case FieldTitle:
		return d.Title
	case FieldDescription:
		return d.Description
	case FieldBody:
		return d.Body
	case FieldTagInput:
		return d.TagInput
	}
	return ""
}

func (d Draft) clone() Draft {
	d.TagList = append([]string(nil), d.TagList...)
	d.Errors = d.Errors.clone()
	return d
}

// Reduce applies an action to a draft and returns the new draft. The input is
// never mutated.
func Reduce(d Draft, a Action) Draft {
	d = d.clone()
	switch act := a.(type) {
	case UpdateField:
		switch act.Key {
		case FieldTitle:
			d.Title = act.Value
		case FieldDescription:
			d.Description = act.Value
		case FieldBody:
			d.Body = act.Value
		case FieldTagInput:
			d.TagInput = act.Value
		}

	case AddTag:
		tag := strings.TrimSpace(d.TagInput)
		if tag != "" {
			d.TagList = append(d.TagList, tag)
		}
		d.TagInput = ""

	case RemoveTag:
		kept := d.TagList[:0]
		for _, t := range d.TagList {
			if t != act.Tag {
				kept = append(kept, t)
			}
		}
		d.TagList = kept

	case AsyncStart:
		d.InProgress = true

	case PageLoaded:
		d = Draft{}
		if act.Err != nil {
			d.Errors = Errors{ErrorKeyLoad: {act.Err.Error()}}
			break
		}
		if act.Article != nil {
			d.Title = act.Article.Title
			d.Description = act.Article.Description
			d.Body = act.Article.Body
			d.TagList = append([]string(nil), act.Article.TagList...)
			d.Slug = act.Article.Slug
		}

	case ArticleSubmitted:
		d.InProgress = false
		switch {
		case act.Rejected != nil:
			d.Errors = act.Rejected.Errors.clone()
		case act.Err != nil:
			d.Errors = requestErrors(act.Err)
		default:
			d.Errors = nil
			if act.Article != nil && act.Article.Slug != "" {
				d.Slug = act.Article.Slug
			}
		}

	case PageUnloaded:
		d = Draft{}
	}
	return d
}

// requestErrors keeps the server's per-field messages when it sent any.
func requestErrors(err error) Errors {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
		return Errors(apiErr.Fields).clone()
	}
	return Errors{ErrorKeyRequest: {err.Error()}}
}
