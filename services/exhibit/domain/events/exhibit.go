package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicExhibitCreated is the Watermill topic published when an item is created.
const TopicExhibitCreated = "exhibit.created"

// ExhibitCreatedEvent is published after a new ExhibitItem is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicExhibitCreated).
type ExhibitCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	OwnerID    string    `json:"owner_id"`
	ItemNumber string    `json:"item_number"`
	Language   string    `json:"language"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}
