package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagKeyIntent(t *testing.T) {
	act, ok := TagKeyIntent("enter", "go")
	assert.True(t, ok)
	assert.Equal(t, AddTag{}, act)

	for _, key := range []string{"a", " ", "tab", "ctrl+s", "backspace"} {
		_, ok := TagKeyIntent(key, "go")
		assert.False(t, ok, key)
	}

	_, ok = TagKeyIntent("enter", "   ")
	assert.False(t, ok)
}

func TestSuggest(t *testing.T) {
	known := []string{"golang", "go", "GraphQL", "rust", "gopher"}

	assert.Equal(t, []string{"golang", "go"}, Suggest(known, "go", nil, 2))
	assert.Equal(t, []string{"go", "gopher"}, Suggest(known, "Go", []string{"golang"}, 5))
	assert.Equal(t, []string{"GraphQL"}, Suggest(known, "gr", nil, 5))
	assert.Nil(t, Suggest(known, "", nil, 5))
	assert.Nil(t, Suggest(known, "go", nil, 0))
}
