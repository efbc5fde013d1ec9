package models

import "time"

// ExhibitItem is the core aggregate for this bounded context.
// Rows are append-only: items are only created and read, never updated.
// The natural key is (OwnerID, Number, Language) — language variants of the
// same physical exhibit share a Number and differ only in content.
type ExhibitItem struct {
	OwnerID     string // tenant scope — always filter by this in queries
	Number      ItemNumber
	Language    Language
	Title       string
	Description string
	AudioURL    string // empty when no narration is attached
	CreatedAt   time.Time
}

// NewExhibitItem constructs a valid ExhibitItem with the current timestamp.
// OwnerID must come from the authenticated caller, never from user input.
func NewExhibitItem(ownerID string, number ItemNumber, language Language, title, description, audioURL string) (*ExhibitItem, error) {
	if ownerID == "" {
		return nil, errEmptyOwner
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, errEmptyDescription
	}
	return &ExhibitItem{
		OwnerID:     ownerID,
		Number:      number,
		Language:    language,
		Title:       title,
		Description: description,
		AudioURL:    audioURL,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// HasAudio reports whether a narration track is attached.
func (e *ExhibitItem) HasAudio() bool {
	return e.AudioURL != ""
}
