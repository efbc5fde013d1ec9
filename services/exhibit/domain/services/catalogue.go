// Package services contains stateless domain services for the exhibit bounded
// context. Domain services enforce business rules that operate purely on
// domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"strings"

	"github.com/ghuser/audioguide/services/exhibit/domain/models"
)

// LanguageAll is the sentinel that disables the catalogue language filter.
const LanguageAll = "all"

// FilterCatalogue applies the two independent, composable catalogue filters:
//
//   - search: case-insensitive substring match against title, description,
//     OR item number (an item matches when ANY field contains the term).
//     The empty string matches everything.
//   - language: exact match, or LanguageAll to disable.
//
// Both filters combine with logical AND. Input order is preserved.
func FilterCatalogue(items []*models.ExhibitItem, search, language string) []*models.ExhibitItem {
	term := strings.ToLower(search)
	out := make([]*models.ExhibitItem, 0, len(items))
	for _, item := range items {
		if !matchesSearch(item, term) {
			continue
		}
		if language != LanguageAll && item.Language.String() != language {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch(item *models.ExhibitItem, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Title), term) ||
		strings.Contains(strings.ToLower(item.Description), term) ||
		strings.Contains(strings.ToLower(item.Number.String()), term)
}

// Languages returns the distinct language codes present in items, in
// first-seen order. The result feeds the catalogue's language filter
// control; order carries no semantic meaning.
func Languages(items []*models.ExhibitItem) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		lang := item.Language.String()
		if _, ok := seen[lang]; ok {
			continue
		}
		seen[lang] = struct{}{}
		out = append(out, lang)
	}
	return out
}

// PrimaryVariant picks the deterministic display variant when multiple
// language variants share an item number: the default language when present,
// otherwise the lexicographically smallest language code.
func PrimaryVariant(variants []*models.ExhibitItem) *models.ExhibitItem {
	var best *models.ExhibitItem
	for _, v := range variants {
		if v.Language == models.DefaultLanguage {
			return v
		}
		if best == nil || v.Language < best.Language {
			best = v
		}
	}
	return best
}
