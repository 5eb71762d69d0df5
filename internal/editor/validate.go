package editor

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies why a field failed validation.
type Kind int

const (
	KindRequired Kind = iota
	KindSameAsTitle
	KindPattern
)

const minBodyWords = 20

var noHTMLTags = regexp.MustCompile(`^[^<>]+$`)

// messageTemplates maps each error kind to its user-facing text. capitalize
// reports whether the field name leads the sentence.
var messageTemplates = map[Kind]struct {
	format     string
	capitalize bool
}{
	KindRequired:    {"%s is a required field!", true},
	KindSameAsTitle: {"%s and title cannot be the same!", false},
	KindPattern:     {"%s should be min 20 words and cannot contain HTML tags!", true},
}

// FieldError is a single validation failure.
type FieldError struct {
	Field   Field
	Kind    Kind
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func newFieldError(field Field, kind Kind) *FieldError {
	tmpl := messageTemplates[kind]
	name := string(field)
	if tmpl.capitalize {
		name = capitalize(name)
	}
	return &FieldError{
		Field:   field,
		Kind:    kind,
		Message: fmt.Sprintf(tmpl.format, name),
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Fields are the free-text inputs checked before submission.
type Fields struct {
	Title       string
	Description string
	Body        string
}

// Errors maps a field name to its messages.
type Errors map[string][]string

// Keys returns the field names in a stable order.
func (e Errors) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e Errors) clone() Errors {
	if e == nil {
		return nil
	}
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// ValidateTitle requires a non-empty title.
func ValidateTitle(title string) *FieldError {
	if title == "" {
		return newFieldError(FieldTitle, KindRequired)
	}
	return nil
}

// ValidateDescription requires a non-empty description that differs from the title.
func ValidateDescription(description, title string) *FieldError {
	if description == "" {
		return newFieldError(FieldDescription, KindRequired)
	}
	if description == title {
		return newFieldError(FieldDescription, KindSameAsTitle)
	}
	return nil
}

// ValidateBody requires at least 20 whitespace-separated words and no '<' or '>'.
func ValidateBody(body string) *FieldError {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return newFieldError(FieldBody, KindRequired)
	}
	if len(strings.Fields(trimmed)) < minBodyWords || !noHTMLTags.MatchString(trimmed) {
		return newFieldError(FieldBody, KindPattern)
	}
	return nil
}

// Validate checks every field and returns nil when all pass. A failing field
// never stops the others from being checked.
func Validate(f Fields) Errors {
	results := []*FieldError{
		ValidateTitle(f.Title),
		ValidateDescription(f.Description, f.Title),
		ValidateBody(f.Body),
	}

	errs := Errors{}
	for _, fe := range results {
		if fe == nil {
			continue
		}
		errs[string(fe.Field)] = []string{fe.Message}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
