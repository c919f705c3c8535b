package url

import (
	"net/url"
	"strings"
)

// ParseBangShortcut extracts a bang shortcut from input.
// Input must start with "!" followed by shortcut key and a space.
// Returns (shortcutKey, query, found).
//
//	"!g golang"      → ("g", "golang", true)
//	"!g"             → ("", "", false)
//	"test !g"        → ("", "", false)
func ParseBangShortcut(input string) (shortcut, query string, found bool) {
	if !strings.HasPrefix(input, "!") {
		return "", "", false
	}

	spaceIdx := strings.Index(input, " ")
	if spaceIdx == -1 || spaceIdx == 1 {
		return "", "", false
	}

	shortcut = input[1:spaceIdx]
	query = strings.TrimSpace(input[spaceIdx+1:])
	if query == "" {
		return "", "", false
	}
	return shortcut, query, true
}

// Resolve turns address-bar input into the URL to navigate to.
// Bang shortcuts win, then anything URL-like, then the search template.
// Templates use %s for the escaped query.
func Resolve(input string, shortcuts map[string]string, searchTemplate string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if key, query, found := ParseBangShortcut(input); found {
		if template, ok := shortcuts[key]; ok {
			return fill(template, query)
		}
	}

	if HasScheme(input) {
		return input
	}
	if LooksLikeURL(input) {
		return Normalize(input)
	}

	if searchTemplate == "" {
		return input
	}
	return fill(searchTemplate, input)
}

func fill(template, query string) string {
	escaped := url.QueryEscape(query)
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", escaped, 1)
	}
	return template + escaped
}
