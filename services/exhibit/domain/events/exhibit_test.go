package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/audioguide/services/exhibit/domain/events"
)

func TestExhibitCreatedEvent_JSONRoundTrip(t *testing.T) {
	original := events.ExhibitCreatedEvent{
		EventID:    uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		Version:    1,
		OwnerID:    "org_1",
		ItemNumber: "42",
		Language:   "en",
		Title:      "Bronze Age Vase",
		OccurredAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.ExhibitCreatedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if decoded != original {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestTopicExhibitCreated_Name(t *testing.T) {
	if events.TopicExhibitCreated != "exhibit.created" {
		t.Fatalf("unexpected topic name %q", events.TopicExhibitCreated)
	}
}
