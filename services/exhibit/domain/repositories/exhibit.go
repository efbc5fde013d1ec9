package repositories

import (
	"context"

	"github.com/ghuser/audioguide/services/exhibit/domain/models"
)

// ExhibitRepository is the persistence interface for the ExhibitItem aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Every read is scoped by equality predicates on the listed fields — callers
// supply the owner explicitly, there is no ambient tenant state below this
// boundary. The store is append-only: no update or delete.
type ExhibitRepository interface {
	// Insert appends a new item. Returns ErrItemAlreadyExists when the
	// (owner, number, language) key is already taken.
	Insert(ctx context.Context, item *models.ExhibitItem) error

	// List retrieves every item belonging to ownerID. Returns an empty
	// slice, not an error, when the organization has no items.
	List(ctx context.Context, ownerID string) ([]*models.ExhibitItem, error)

	// FindByNumber retrieves all language variants of an item number.
	// Returns ErrItemNotFound when no variant exists.
	FindByNumber(ctx context.Context, ownerID, number string) ([]*models.ExhibitItem, error)

	// FindVariant retrieves the single row matching the exact triple.
	// Returns ErrItemNotFound when absent. Serves the unauthenticated
	// visit path, so it must not consult any session state.
	FindVariant(ctx context.Context, ownerID, number, language string) (*models.ExhibitItem, error)

	// ExistsByNumber reports whether any variant of number exists for
	// ownerID, regardless of language.
	ExistsByNumber(ctx context.Context, ownerID, number string) (bool, error)
}
