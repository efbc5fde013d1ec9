package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/audioguide/pkg/cache"
	exhibitdomain "github.com/ghuser/audioguide/services/exhibit/domain"
	"github.com/ghuser/audioguide/services/exhibit/domain/models"
	"github.com/ghuser/audioguide/services/exhibit/domain/repositories"
	domainsvcs "github.com/ghuser/audioguide/services/exhibit/domain/services"
)

// ExhibitService orchestrates creation and retrieval of exhibit items.
// Every operation takes the caller's owner identity as an explicit parameter
// supplied by the request-handling boundary — there is no ambient session
// state at this layer. Event publishing is handled by the repository
// (outbox pattern); visit reads are served from Redis cache when available.
type ExhibitService struct {
	repo  repositories.ExhibitRepository
	cache *pkgcache.ExhibitCache
}

// NewExhibitService returns an ExhibitService wired with the given
// repository and cache.
func NewExhibitService(repo repositories.ExhibitRepository, exhibitCache *pkgcache.ExhibitCache) *ExhibitService {
	return &ExhibitService{repo: repo, cache: exhibitCache}
}

// CreateExhibitInput carries the manager-supplied fields of a new item.
// The owner is deliberately absent: it always comes from the authenticated
// caller, so a forged owner field can never produce a cross-tenant write.
type CreateExhibitInput struct {
	Number      string
	Language    string // empty defaults to models.DefaultLanguage
	Title       string
	Description string
	AudioURL    string
}

// Catalogue is the filtered item list for one organization.
type Catalogue struct {
	Items []*models.ExhibitItem
	// Total is the organization's item count before filtering.
	Total int
	// Languages is the distinct language set of the full (unfiltered)
	// list, in first-seen order, for the filter control.
	Languages []string
}

// ItemDetail resolves one item number to its language variants plus the
// deterministic primary variant used for display.
type ItemDetail struct {
	Primary  *models.ExhibitItem
	Variants []*models.ExhibitItem
}

// Create validates and persists a new item scoped to ownerID, then reads the
// persisted row back so callers always see store state (explicit
// create-then-refetch, no reliance on client cache invalidation).
//
// An existing item with the same number — in any language — is rejected with
// ErrItemAlreadyExists; the (owner, number, language) unique index backs
// this check against concurrent creation from another session.
func (s *ExhibitService) Create(ctx context.Context, ownerID string, in CreateExhibitInput) (*models.ExhibitItem, error) {
	number, err := models.NewItemNumber(in.Number)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", exhibitdomain.ErrInvalidItem, err)
	}
	language, err := models.NewLanguage(in.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", exhibitdomain.ErrInvalidItem, err)
	}

	item, err := models.NewExhibitItem(ownerID, number, language, in.Title, in.Description, in.AudioURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", exhibitdomain.ErrInvalidItem, err)
	}

	exists, err := s.repo.ExistsByNumber(ctx, ownerID, number.String())
	if err != nil {
		return nil, fmt.Errorf("check exhibit item: %w", err)
	}
	if exists {
		return nil, exhibitdomain.ErrItemAlreadyExists
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("save exhibit item: %w", err)
	}

	persisted, err := s.repo.FindVariant(ctx, ownerID, number.String(), language.String())
	if err != nil {
		return nil, fmt.Errorf("refetch exhibit item: %w", err)
	}
	return persisted, nil
}

// List returns ownerID's catalogue with the search and language filters
// applied. language "" or "all" disables the language filter. An
// organization with no items gets an empty catalogue, not an error.
func (s *ExhibitService) List(ctx context.Context, ownerID, search, language string) (*Catalogue, error) {
	items, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list exhibit items: %w", err)
	}
	if language == "" {
		language = domainsvcs.LanguageAll
	}
	return &Catalogue{
		Items:     domainsvcs.FilterCatalogue(items, search, language),
		Total:     len(items),
		Languages: domainsvcs.Languages(items),
	}, nil
}

// GetByNumber resolves all language variants of an item for a manager.
// The primary variant is deterministic: default language when present,
// otherwise the lexicographically smallest language code.
func (s *ExhibitService) GetByNumber(ctx context.Context, ownerID, number string) (*ItemDetail, error) {
	variants, err := s.repo.FindByNumber(ctx, ownerID, number)
	if err != nil {
		return nil, fmt.Errorf("get exhibit item: %w", err)
	}
	return &ItemDetail{
		Primary:  domainsvcs.PrimaryVariant(variants),
		Variants: variants,
	}, nil
}

// ResolveVisit serves the unauthenticated visit path using a read-through
// cache pattern:
//  1. Check the Redis visit cache first.
//  2. On cache miss (or cache error), query Postgres by the exact triple.
//  3. Asynchronously warm the cache with the Postgres result.
//
// The triple comes straight from the shared URL; no session state is
// consulted anywhere on this path.
func (s *ExhibitService) ResolveVisit(ctx context.Context, ownerID, number, language string) (*models.ExhibitItem, error) {
	if language == "" {
		language = models.DefaultLanguage.String()
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, ownerID, number, language); err == nil {
			return &models.ExhibitItem{
				OwnerID:     cached.OwnerID,
				Number:      models.ItemNumber(cached.ItemNumber),
				Language:    models.Language(cached.Language),
				Title:       cached.Title,
				Description: cached.Description,
				AudioURL:    cached.AudioURL,
				CreatedAt:   cached.CreatedAt,
			}, nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache errors fall through to Postgres.
			_ = err
		}
	}

	item, err := s.repo.FindVariant(ctx, ownerID, number, language)
	if err != nil {
		return nil, fmt.Errorf("resolve visit: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedExhibit{
				OwnerID:     item.OwnerID,
				ItemNumber:  item.Number.String(),
				Language:    item.Language.String(),
				Title:       item.Title,
				Description: item.Description,
				AudioURL:    item.AudioURL,
				CreatedAt:   item.CreatedAt,
			})
		}()
	}

	return item, nil
}
