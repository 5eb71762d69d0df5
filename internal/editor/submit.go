package editor

import (
	"fmt"
	"strings"

	"github.com/gravitrone/conduit/cli/internal/api"
)

// ArticleAPI is the subset of the API client the editor needs.
type ArticleAPI interface {
	GetArticle(slug string) (*api.Article, error)
	CreateArticle(fields api.ArticleFields) (*api.Article, error)
	UpdateArticle(slug string, fields api.ArticleFields) (*api.Article, error)
}

// Policy decides whether a draft that fails validation is still sent.
type Policy int

const (
	// PolicyAlways sends the request even when validation fails. The failing
	// payload is what the store sees; the request outcome is dropped.
	PolicyAlways Policy = iota
	// PolicyBlock skips the request when validation fails.
	PolicyBlock
)

func (p Policy) String() string {
	switch p {
	case PolicyBlock:
		return "block"
	default:
		return "always"
	}
}

// ParsePolicy reads a policy name. The empty string selects PolicyAlways.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "always":
		return PolicyAlways, nil
	case "block":
		return PolicyBlock, nil
	}
	return PolicyAlways, fmt.Errorf("unknown submit policy %q (want always or block)", s)
}

// Payload is the article sent on submit. Error and Errors are set when
// validation failed.
type Payload struct {
	Title       string
	Description string
	Body        string
	TagList     []string
	Error       bool
	Errors      Errors
}

// ArticleFields converts the payload to the API's writable fields.
func (p Payload) ArticleFields() api.ArticleFields {
	return api.ArticleFields{
		Title:       p.Title,
		Description: p.Description,
		Body:        p.Body,
		TagList:     append([]string(nil), p.TagList...),
	}
}

// Submission is one press of the publish control.
type Submission struct {
	Payload Payload
	// Slug selects update over create when non-empty.
	Slug string
	// Request performs the network call; nil when the policy blocked it.
	Request func() (*api.Article, error)
}

// Prepare builds the payload, validates it once and picks create or update.
func Prepare(d Draft, client ArticleAPI, policy Policy) Submission {
	p := Payload{
		Title:       d.Title,
		Description: d.Description,
		Body:        d.Body,
		TagList:     append([]string(nil), d.TagList...),
	}
	if errs := Validate(d.Fields()); errs != nil {
		p.Error = true
		p.Errors = errs
	}

	sub := Submission{Payload: p, Slug: d.Slug}
	if p.Error && policy == PolicyBlock {
		return sub
	}

	fields := p.ArticleFields()
	slug := d.Slug
	if slug != "" {
		sub.Request = func() (*api.Article, error) {
			return client.UpdateArticle(slug, fields)
		}
	} else {
		sub.Request = func() (*api.Article, error) {
			return client.CreateArticle(fields)
		}
	}
	return sub
}

// Immediate is the action to dispatch as soon as the publish control is used.
func (s Submission) Immediate() Action {
	if s.Payload.Error {
		return Rejected(s.Payload)
	}
	return AsyncStart{}
}

// Settle turns the request outcome into the action to dispatch. It returns nil
// for a rejected payload, whose outcome is not reported to the store.
func (s Submission) Settle(article *api.Article, err error) Action {
	if s.Payload.Error {
		return nil
	}
	return Settled(article, err)
}
