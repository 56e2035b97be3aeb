package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/valueobject"
	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

type CollaborationRepositoryAdapter struct {
	db *sqlx.DB
}

func NewCollaborationRepositoryAdapter(db *sqlx.DB) *CollaborationRepositoryAdapter {
	return &CollaborationRepositoryAdapter{db: db}
}

func (r *CollaborationRepositoryAdapter) Create(ctx context.Context, collab *entity.Collaboration) error {
	query := `
		INSERT INTO collaborations (id, sponsor_id, organization_id, event_id, status, message, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		collab.ID, collab.SponsorID, collab.OrganizationID, collab.EventID,
		string(collab.Status), collab.Message, collab.TotalAmount,
		collab.CreatedAt, collab.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się utworzyć współpracy")
	}
	return nil
}

// Update zapisuje status, wiadomość i updated_at jednym atomowym UPDATE.
func (r *CollaborationRepositoryAdapter) Update(ctx context.Context, collab *entity.Collaboration) error {
	query := `
		UPDATE collaborations SET status = $2, message = $3, updated_at = $4
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		collab.ID, string(collab.Status), collab.Message, collab.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się zaktualizować współpracy")
	}
	return nil
}

func (r *CollaborationRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Collaboration, error) {
	var row collaborationRow
	query := `
		SELECT id, sponsor_id, organization_id, event_id, status, message, total_amount, created_at, updated_at
		FROM collaborations WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrCollaborationNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać współpracy")
	}
	return row.toEntity(), nil
}

func (r *CollaborationRepositoryAdapter) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Collaboration, error) {
	var rows []collaborationRow
	query := `
		SELECT id, sponsor_id, organization_id, event_id, status, message, total_amount, created_at, updated_at
		FROM collaborations
		WHERE sponsor_id = $1 OR organization_id = $1
		ORDER BY updated_at DESC
	`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać współprac")
	}
	return toCollaborationEntities(rows), nil
}

func (r *CollaborationRepositoryAdapter) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entity.Collaboration, error) {
	var rows []collaborationRow
	query := `
		SELECT id, sponsor_id, organization_id, event_id, status, message, total_amount, created_at, updated_at
		FROM collaborations WHERE event_id = $1 ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &rows, query, eventID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać współprac wydarzenia")
	}
	return toCollaborationEntities(rows), nil
}

func (r *CollaborationRepositoryAdapter) LinkOption(ctx context.Context, collaborationID, optionID uuid.UUID) error {
	query := `
		INSERT INTO collaboration_options (id, collaboration_id, sponsorship_option_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (collaboration_id, sponsorship_option_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, uuid.New(), collaborationID, optionID, time.Now())
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się powiązać opcji ze współpracą")
	}
	return nil
}

func (r *CollaborationRepositoryAdapter) FindLinkedOptions(ctx context.Context, collaborationID uuid.UUID) ([]entity.CollaborationOption, error) {
	var rows []collaborationOptionRow
	query := `
		SELECT id, collaboration_id, sponsorship_option_id, created_at
		FROM collaboration_options WHERE collaboration_id = $1
	`
	if err := r.db.SelectContext(ctx, &rows, query, collaborationID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać powiązanych opcji")
	}

	result := make([]entity.CollaborationOption, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.CollaborationOption(row))
	}
	return result, nil
}

type collaborationRow struct {
	ID             uuid.UUID `db:"id"`
	SponsorID      uuid.UUID `db:"sponsor_id"`
	OrganizationID uuid.UUID `db:"organization_id"`
	EventID        uuid.UUID `db:"event_id"`
	Status         string    `db:"status"`
	Message        string    `db:"message"`
	TotalAmount    float64   `db:"total_amount"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type collaborationOptionRow struct {
	ID                  uuid.UUID `db:"id"`
	CollaborationID     uuid.UUID `db:"collaboration_id"`
	SponsorshipOptionID uuid.UUID `db:"sponsorship_option_id"`
	CreatedAt           time.Time `db:"created_at"`
}

func (row collaborationRow) toEntity() *entity.Collaboration {
	return &entity.Collaboration{
		ID:             row.ID,
		SponsorID:      row.SponsorID,
		OrganizationID: row.OrganizationID,
		EventID:        row.EventID,
		Status:         valueobject.CollaborationStatus(row.Status),
		Message:        row.Message,
		TotalAmount:    row.TotalAmount,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func toCollaborationEntities(rows []collaborationRow) []*entity.Collaboration {
	result := make([]*entity.Collaboration, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}
	return result
}
