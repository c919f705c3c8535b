package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testShortcuts = map[string]string{
	"g":  "https://google.com/search?q=%s",
	"gh": "https://github.com/search?q=%s",
}

const testSearch = "https://www.google.com/search?q=%s"

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "   ", ""},
		{"explicit scheme kept", "https://example.com/a b", "https://example.com/a b"},
		{"bare host gets https", "example.com", "https://example.com"},
		{"words go to search", "golang tabs", "https://www.google.com/search?q=golang+tabs"},
		{"single word goes to search", "weather", "https://www.google.com/search?q=weather"},
		{"bang shortcut", "!gh sarf browser", "https://github.com/search?q=sarf+browser"},
		{"unknown bang searches", "!zz query", "https://www.google.com/search?q=%21zz+query"},
		{"trimmed", "  example.org  ", "https://example.org"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.input, testShortcuts, testSearch))
		})
	}
}

func TestResolve_TemplateWithoutPlaceholder(t *testing.T) {
	assert.Equal(t, "https://s.example/?q=cats", Resolve("cats", nil, "https://s.example/?q="))
	assert.Equal(t, "cats", Resolve("cats", nil, ""))
}

func TestParseBangShortcut(t *testing.T) {
	key, query, found := ParseBangShortcut("!g golang")
	assert.True(t, found)
	assert.Equal(t, "g", key)
	assert.Equal(t, "golang", query)

	_, _, found = ParseBangShortcut("!g")
	assert.False(t, found)
	_, _, found = ParseBangShortcut("! query")
	assert.False(t, found)
	_, _, found = ParseBangShortcut("test !g")
	assert.False(t, found)
}
