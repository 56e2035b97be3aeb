package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/repository"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/valueobject"
	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

type EventRepositoryAdapter struct {
	db *sqlx.DB
}

func NewEventRepositoryAdapter(db *sqlx.DB) *EventRepositoryAdapter {
	return &EventRepositoryAdapter{db: db}
}

func (r *EventRepositoryAdapter) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, organization_id, title, description, location, starts_at, is_published, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.OrganizationID, event.Title, event.Description, event.Location,
		event.StartsAt, event.IsPublished, event.ImagePath, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się utworzyć wydarzenia")
	}
	return nil
}

func (r *EventRepositoryAdapter) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events SET title = $2, description = $3, location = $4, starts_at = $5,
		is_published = $6, image_path = $7, updated_at = $8
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.Title, event.Description, event.Location, event.StartsAt,
		event.IsPublished, event.ImagePath, event.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się zaktualizować wydarzenia")
	}
	return nil
}

func (r *EventRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się usunąć wydarzenia")
	}
	return nil
}

func (r *EventRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var row eventRow
	query := `
		SELECT id, organization_id, title, description, location, starts_at, is_published, image_path, created_at, updated_at
		FROM events WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrEventNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać wydarzenia")
	}
	return row.toEntity(), nil
}

func (r *EventRepositoryAdapter) FindByIDWithOptions(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	options := NewSponsorshipOptionRepositoryAdapter(r.db)
	found, err := options.FindByEventID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Options = make([]entity.SponsorshipOption, 0, len(found))
	for _, option := range found {
		event.Options = append(event.Options, *option)
	}
	return event, nil
}

func (r *EventRepositoryAdapter) List(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.OrganizationID != nil {
		args = append(args, *filter.OrganizationID)
		conditions = append(conditions, fmt.Sprintf("organization_id = $%d", len(args)))
	}
	if filter.OnlyPublished {
		conditions = append(conditions, "is_published = TRUE")
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if filter.StartsAfter != nil {
		args = append(args, *filter.StartsAfter)
		conditions = append(conditions, fmt.Sprintf("starts_at >= $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM events WHERE ` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się policzyć wydarzeń")
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	args = append(args, limit, offset)
	listQuery := fmt.Sprintf(`
		SELECT id, organization_id, title, description, location, starts_at, is_published, image_path, created_at, updated_at
		FROM events WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		return nil, 0, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać wydarzeń")
	}

	result := make([]*entity.Event, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}
	return result, total, nil
}

type eventRow struct {
	ID             uuid.UUID  `db:"id"`
	OrganizationID uuid.UUID  `db:"organization_id"`
	Title          string     `db:"title"`
	Description    string     `db:"description"`
	Location       string     `db:"location"`
	StartsAt       *time.Time `db:"starts_at"`
	IsPublished    bool       `db:"is_published"`
	ImagePath      *string    `db:"image_path"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (row eventRow) toEntity() *entity.Event {
	return &entity.Event{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Title:          row.Title,
		Description:    row.Description,
		Location:       row.Location,
		StartsAt:       row.StartsAt,
		IsPublished:    row.IsPublished,
		ImagePath:      row.ImagePath,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

type SponsorshipOptionRepositoryAdapter struct {
	db *sqlx.DB
}

func NewSponsorshipOptionRepositoryAdapter(db *sqlx.DB) *SponsorshipOptionRepositoryAdapter {
	return &SponsorshipOptionRepositoryAdapter{db: db}
}

func (r *SponsorshipOptionRepositoryAdapter) Create(ctx context.Context, option *entity.SponsorshipOption) error {
	query := `
		INSERT INTO sponsorship_options (id, event_id, title, description, price, price_to, benefits, is_custom, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		option.ID, option.EventID, option.Title, option.Description,
		option.Price.Price, option.Price.PriceTo, pq.Array(option.Benefits),
		option.IsCustom, option.CreatedAt, option.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się utworzyć opcji sponsoringu")
	}
	return nil
}

func (r *SponsorshipOptionRepositoryAdapter) Update(ctx context.Context, option *entity.SponsorshipOption) error {
	query := `
		UPDATE sponsorship_options SET title = $2, description = $3, price = $4, price_to = $5,
		benefits = $6, updated_at = $7
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		option.ID, option.Title, option.Description,
		option.Price.Price, option.Price.PriceTo, pq.Array(option.Benefits), option.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się zaktualizować opcji sponsoringu")
	}
	return nil
}

func (r *SponsorshipOptionRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sponsorship_options WHERE id = $1`, id); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się usunąć opcji sponsoringu")
	}
	return nil
}

func (r *SponsorshipOptionRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.SponsorshipOption, error) {
	var row optionRow
	query := optionSelect + ` WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrOptionNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać opcji sponsoringu")
	}
	return row.toEntity(), nil
}

func (r *SponsorshipOptionRepositoryAdapter) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.SponsorshipOption, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []optionRow
	query := optionSelect + ` WHERE id = ANY($1)`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać opcji sponsoringu")
	}
	return toOptionEntities(rows), nil
}

func (r *SponsorshipOptionRepositoryAdapter) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entity.SponsorshipOption, error) {
	var rows []optionRow
	query := optionSelect + ` WHERE event_id = $1 ORDER BY price ASC`
	if err := r.db.SelectContext(ctx, &rows, query, eventID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać opcji wydarzenia")
	}
	return toOptionEntities(rows), nil
}

const optionSelect = `
	SELECT id, event_id, title, description, price, price_to, benefits, is_custom, created_at, updated_at
	FROM sponsorship_options
`

type optionRow struct {
	ID          uuid.UUID      `db:"id"`
	EventID     uuid.UUID      `db:"event_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Price       float64        `db:"price"`
	PriceTo     *float64       `db:"price_to"`
	Benefits    pq.StringArray `db:"benefits"`
	IsCustom    bool           `db:"is_custom"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (row optionRow) toEntity() *entity.SponsorshipOption {
	return &entity.SponsorshipOption{
		ID:          row.ID,
		EventID:     row.EventID,
		Title:       row.Title,
		Description: row.Description,
		Price:       valueobject.PriceRange{Price: row.Price, PriceTo: row.PriceTo},
		Benefits:    row.Benefits,
		IsCustom:    row.IsCustom,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toOptionEntities(rows []optionRow) []*entity.SponsorshipOption {
	result := make([]*entity.SponsorshipOption, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}
	return result
}
