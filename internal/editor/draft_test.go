package editor

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/conduit/cli/internal/api"
)

func reduceAll(d Draft, actions ...Action) Draft {
	for _, a := range actions {
		d = Reduce(d, a)
	}
	return d
}

func TestReduceUpdateField(t *testing.T) {
	d := reduceAll(Draft{},
		UpdateField{Key: FieldTitle, Value: "T"},
		UpdateField{Key: FieldDescription, Value: "D"},
		UpdateField{Key: FieldBody, Value: "B"},
		UpdateField{Key: FieldTagInput, Value: "go"},
	)
	want := Draft{Title: "T", Description: "D", Body: "B", TagInput: "go"}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("draft mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceAddTagKeepsOrderAndDuplicates(t *testing.T) {
	d := reduceAll(Draft{},
		UpdateField{Key: FieldTagInput, Value: "go"},
		AddTag{},
		UpdateField{Key: FieldTagInput, Value: " tui "},
		AddTag{},
		UpdateField{Key: FieldTagInput, Value: "go"},
		AddTag{},
	)
	assert.Equal(t, []string{"go", "tui", "go"}, d.TagList)
	assert.Empty(t, d.TagInput)
}

func TestReduceAddTagEmptyInputIsNoop(t *testing.T) {
	d := reduceAll(Draft{TagList: []string{"a"}, TagInput: "   "}, AddTag{})
	assert.Equal(t, []string{"a"}, d.TagList)
	assert.Empty(t, d.TagInput)
}

func TestReduceRemoveTagByValueRemovesAllCopies(t *testing.T) {
	d := Reduce(Draft{TagList: []string{"go", "tui", "go"}}, RemoveTag{Tag: "go"})
	assert.Equal(t, []string{"tui"}, d.TagList)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	in := Draft{TagList: []string{"a", "b"}, Errors: Errors{"title": {"x"}}}
	_ = Reduce(in, RemoveTag{Tag: "a"})
	_ = Reduce(in, ArticleSubmitted{})
	assert.Equal(t, []string{"a", "b"}, in.TagList)
	assert.Equal(t, Errors{"title": {"x"}}, in.Errors)
}

func TestReducePageLoaded(t *testing.T) {
	article := &api.Article{
		Slug:        "dragons",
		Title:       "Dragons",
		Description: "About dragons",
		Body:        "Body",
		TagList:     []string{"fantasy"},
	}
	d := reduceAll(Draft{TagInput: "leftover", InProgress: true}, PageLoaded{Article: article})
	want := Draft{
		Slug:        "dragons",
		Title:       "Dragons",
		Description: "About dragons",
		Body:        "Body",
		TagList:     []string{"fantasy"},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("draft mismatch (-want +got):\n%s", diff)
	}
}

func TestReducePageLoadedNilResets(t *testing.T) {
	d := Reduce(Draft{Title: "x", Slug: "s", TagList: []string{"a"}}, PageLoaded{})
	if diff := cmp.Diff(Draft{}, d); diff != "" {
		t.Errorf("draft mismatch (-want +got):\n%s", diff)
	}
}

func TestReducePageLoadedError(t *testing.T) {
	d := Reduce(Draft{InProgress: true}, PageLoaded{Err: errors.New("HTTP 404")})
	assert.False(t, d.InProgress)
	assert.Equal(t, Errors{ErrorKeyLoad: {"HTTP 404"}}, d.Errors)
}

func TestReduceSubmittedRejected(t *testing.T) {
	p := Payload{Error: true, Errors: Errors{"title": {"Title is a required field!"}}}
	d := Reduce(Draft{InProgress: true}, Rejected(p))
	assert.False(t, d.InProgress)
	assert.Equal(t, p.Errors, d.Errors)
}

func TestReduceSubmittedSuccessRecordsSlug(t *testing.T) {
	d := reduceAll(Draft{Errors: Errors{"title": {"x"}}}, AsyncStart{})
	assert.True(t, d.InProgress)

	d = Reduce(d, Settled(&api.Article{Slug: "new-one"}, nil))
	assert.False(t, d.InProgress)
	assert.Nil(t, d.Errors)
	assert.Equal(t, "new-one", d.Slug)
}

func TestReduceSubmittedServerFieldErrors(t *testing.T) {
	err := &api.Error{StatusCode: http.StatusUnprocessableEntity, Fields: map[string][]string{"title": {"has already been taken"}}}
	d := Reduce(Draft{InProgress: true}, Settled(nil, err))
	assert.Equal(t, Errors{"title": {"has already been taken"}}, d.Errors)
}

func TestReduceSubmittedTransportError(t *testing.T) {
	d := Reduce(Draft{}, Settled(nil, errors.New("request failed: connection refused")))
	assert.Equal(t, Errors{ErrorKeyRequest: {"request failed: connection refused"}}, d.Errors)
}

func TestReducePageUnloaded(t *testing.T) {
	d := Reduce(Draft{Title: "x", TagList: []string{"a"}, InProgress: true}, PageUnloaded{})
	if diff := cmp.Diff(Draft{}, d); diff != "" {
		t.Errorf("draft mismatch (-want +got):\n%s", diff)
	}
}

func TestDraftValue(t *testing.T) {
	d := Draft{Title: "t", Description: "d", Body: "b", TagInput: "i"}
	assert.Equal(t, "t", d.Value(FieldTitle))
	assert.Equal(t, "d", d.Value(FieldDescription))
	assert.Equal(t, "b", d.Value(FieldBody))
	assert.Equal(t, "i", d.Value(FieldTagInput))
	assert.Equal(t, "", d.Value(Field("other")))
}
