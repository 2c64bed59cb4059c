package config

import "strings"

// ResolveLanguage accepts a language code or display name and returns the code.
// An empty input resolves to DefaultLanguage.
func ResolveLanguage(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return DefaultLanguage, true
	}
	return resolveOption(Languages, input)
}

// ResolveSource accepts a source code or display name and returns the code.
// An empty input, or "All Sources", resolves to the empty code.
func ResolveSource(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", true
	}
	return resolveOption(NewsSources, input)
}

// SourceName returns the display name for a source code
func SourceName(code string) string {
	for _, o := range NewsSources {
		if o.Code == code {
			return o.Name
		}
	}
	return code
}

func resolveOption(options []Option, input string) (string, bool) {
	for _, o := range options {
		if strings.EqualFold(o.Name, input) || (o.Code != "" && strings.EqualFold(o.Code, input)) {
			return o.Code, true
		}
	}
	return "", false
}
