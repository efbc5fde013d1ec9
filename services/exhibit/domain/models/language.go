package models

import "fmt"

// Language is a short lowercase language code ("en", "fr", "ro").
// Items created without an explicit language default to DefaultLanguage.
type Language string

// DefaultLanguage is used when a manager creates an item without choosing one.
const DefaultLanguage Language = "en"

const (
	minLanguageLength = 2
	maxLanguageLength = 8
)

// NewLanguage constructs a valid Language. The empty string resolves to
// DefaultLanguage.
func NewLanguage(s string) (Language, error) {
	if s == "" {
		return DefaultLanguage, nil
	}
	if len(s) < minLanguageLength || len(s) > maxLanguageLength {
		return "", fmt.Errorf("language code must be %d-%d characters", minLanguageLength, maxLanguageLength)
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return "", fmt.Errorf("language code must be lowercase letters: %q", s)
		}
	}
	return Language(s), nil
}

// String returns the underlying string value.
func (l Language) String() string {
	return string(l)
}
