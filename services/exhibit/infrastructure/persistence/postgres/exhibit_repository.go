package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/audioguide/pkg/database"
	"github.com/ghuser/audioguide/pkg/events"
	exhibitdomain "github.com/ghuser/audioguide/services/exhibit/domain"
	domainevents "github.com/ghuser/audioguide/services/exhibit/domain/events"
	"github.com/ghuser/audioguide/services/exhibit/domain/models"
)

const selectColumns = `owner_id, item_number, language, title, description, audio_url, created_at`

// ExhibitRepository implements repositories.ExhibitRepository against PostgreSQL.
type ExhibitRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewExhibitRepository returns an ExhibitRepository backed by the given
// connection handles and event bus. The bus is used to publish
// ExhibitCreatedEvents in the same transaction as the insert.
func NewExhibitRepository(db *database.Database, bus *events.EventBus) *ExhibitRepository {
	return &ExhibitRepository{db: db, bus: bus}
}

// Insert appends a new ExhibitItem and publishes an ExhibitCreatedEvent
// within the same transaction. Returns ErrItemAlreadyExists when the
// (owner, number, language) unique index is violated.
func (r *ExhibitRepository) Insert(ctx context.Context, item *models.ExhibitItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO exhibit_items (owner_id, item_number, language, title, description, audio_url, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.OwnerID,
			item.Number.String(),
			item.Language.String(),
			item.Title,
			item.Description,
			nullString(item.AudioURL),
			item.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return exhibitdomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("insert exhibit item: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, item); err != nil {
				return fmt.Errorf("publish exhibit created: %w", err)
			}
		}
		return nil
	})
}

// List retrieves every item for ownerID. An organization with no items gets
// an empty slice, not an error.
func (r *ExhibitRepository) List(ctx context.Context, ownerID string) ([]*models.ExhibitItem, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT `+selectColumns+` FROM exhibit_items WHERE owner_id = $1 ORDER BY item_number, language`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query exhibit items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// FindByNumber retrieves all language variants of an item number.
func (r *ExhibitRepository) FindByNumber(ctx context.Context, ownerID, number string) ([]*models.ExhibitItem, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT `+selectColumns+` FROM exhibit_items WHERE owner_id = $1 AND item_number = $2 ORDER BY language`,
		ownerID, number,
	)
	if err != nil {
		return nil, fmt.Errorf("query exhibit item variants: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, exhibitdomain.ErrItemNotFound
	}
	return items, nil
}

// FindVariant retrieves the single row matching the exact triple.
func (r *ExhibitRepository) FindVariant(ctx context.Context, ownerID, number, language string) (*models.ExhibitItem, error) {
	row := r.db.Pool().QueryRow(ctx,
		`SELECT `+selectColumns+` FROM exhibit_items WHERE owner_id = $1 AND item_number = $2 AND language = $3`,
		ownerID, number, language,
	)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, exhibitdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query exhibit item variant: %w", err)
	}
	return item, nil
}

// ExistsByNumber reports whether any variant of number exists for ownerID.
func (r *ExhibitRepository) ExistsByNumber(ctx context.Context, ownerID, number string) (bool, error) {
	var exists bool
	err := r.db.Pool().QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM exhibit_items WHERE owner_id = $1 AND item_number = $2)`,
		ownerID, number,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check exhibit item exists: %w", err)
	}
	return exists, nil
}

func (r *ExhibitRepository) publishCreated(tx *sql.Tx, item *models.ExhibitItem) error {
	event := domainevents.ExhibitCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		OwnerID:    item.OwnerID,
		ItemNumber: item.Number.String(),
		Language:   item.Language.String(),
		Title:      item.Title,
		OccurredAt: item.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicExhibitCreated, msg)
}

func scanItems(rows pgx.Rows) ([]*models.ExhibitItem, error) {
	items := make([]*models.ExhibitItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exhibit item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exhibit items: %w", err)
	}
	return items, nil
}

func scanItem(row pgx.Row) (*models.ExhibitItem, error) {
	var item models.ExhibitItem
	var audioURL sql.NullString
	if err := row.Scan(
		&item.OwnerID,
		&item.Number,
		&item.Language,
		&item.Title,
		&item.Description,
		&audioURL,
		&item.CreatedAt,
	); err != nil {
		return nil, err
	}
	item.AudioURL = audioURL.String
	return &item, nil
}

// nullString maps the empty string to SQL NULL so audio_url stays nullable.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
