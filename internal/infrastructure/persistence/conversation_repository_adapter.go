package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

type ConversationRepositoryAdapter struct {
	db *sqlx.DB
}

func NewConversationRepositoryAdapter(db *sqlx.DB) *ConversationRepositoryAdapter {
	return &ConversationRepositoryAdapter{db: db}
}

func (r *ConversationRepositoryAdapter) Create(ctx context.Context, conv *entity.Conversation) error {
	query := `
		INSERT INTO conversations (id, event_id, organization_id, sponsor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		conv.ID, conv.EventID, conv.OrganizationID, conv.SponsorID, conv.CreatedAt, conv.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się utworzyć rozmowy")
	}
	return nil
}

func (r *ConversationRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var row conversationRow
	query := `
		SELECT id, event_id, organization_id, sponsor_id, created_at, updated_at
		FROM conversations WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrConversationNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać rozmowy")
	}
	return row.toEntity(), nil
}

func (r *ConversationRepositoryAdapter) FindByParticipants(ctx context.Context, organizationID, sponsorID uuid.UUID) (*entity.Conversation, error) {
	var row conversationRow
	query := `
		SELECT id, event_id, organization_id, sponsor_id, created_at, updated_at
		FROM conversations WHERE organization_id = $1 AND sponsor_id = $2
	`
	if err := r.db.GetContext(ctx, &row, query, organizationID, sponsorID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać rozmowy")
	}
	return row.toEntity(), nil
}

func (r *ConversationRepositoryAdapter) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	var rows []conversationRow
	query := `
		SELECT id, event_id, organization_id, sponsor_id, created_at, updated_at
		FROM conversations
		WHERE organization_id = $1 OR sponsor_id = $1
		ORDER BY updated_at DESC
	`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać rozmów")
	}

	result := make([]*entity.Conversation, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}
	return result, nil
}

func (r *ConversationRepositoryAdapter) Touch(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE conversations SET updated_at = NOW() WHERE id = $1`, id); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się odświeżyć rozmowy")
	}
	return nil
}

type conversationRow struct {
	ID             uuid.UUID  `db:"id"`
	EventID        *uuid.UUID `db:"event_id"`
	OrganizationID uuid.UUID  `db:"organization_id"`
	SponsorID      uuid.UUID  `db:"sponsor_id"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (row conversationRow) toEntity() *entity.Conversation {
	return &entity.Conversation{
		ID:             row.ID,
		EventID:        row.EventID,
		OrganizationID: row.OrganizationID,
		SponsorID:      row.SponsorID,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

type MessageRepositoryAdapter struct {
	db *sqlx.DB
}

func NewMessageRepositoryAdapter(db *sqlx.DB) *MessageRepositoryAdapter {
	return &MessageRepositoryAdapter{db: db}
}

func (r *MessageRepositoryAdapter) Create(ctx context.Context, msg *entity.Message) error {
	query := `
		INSERT INTO messages (id, conversation_id, sender_id, content, is_edited, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.ConversationID, msg.SenderID, msg.Content, msg.IsEdited, msg.CreatedAt, msg.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się zapisać wiadomości")
	}
	return nil
}

func (r *MessageRepositoryAdapter) Update(ctx context.Context, msg *entity.Message) error {
	query := `UPDATE messages SET content = $2, is_edited = $3, updated_at = $4 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, msg.ID, msg.Content, msg.IsEdited, msg.UpdatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się zaktualizować wiadomości")
	}
	return nil
}

func (r *MessageRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się usunąć wiadomości")
	}
	return nil
}

func (r *MessageRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var row messageRow
	query := `
		SELECT id, conversation_id, sender_id, content, is_edited, created_at, updated_at
		FROM messages WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.New(apperror.ErrCodeNotFound, "wiadomość nie została znaleziona")
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać wiadomości")
	}
	return row.toEntity(), nil
}

func (r *MessageRepositoryAdapter) FindByConversationID(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rows []messageRow
	query := `
		SELECT id, conversation_id, sender_id, content, is_edited, created_at, updated_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`
	if err := r.db.SelectContext(ctx, &rows, query, conversationID, limit, offset); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać wiadomości")
	}

	result := make([]*entity.Message, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}
	return result, nil
}

func (r *MessageRepositoryAdapter) FindRecentByConversationID(ctx context.Context, conversationID uuid.UUID, limit int) ([]*entity.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var rows []messageRow
	query := `
		SELECT id, conversation_id, sender_id, content, is_edited, created_at, updated_at
		FROM (
			SELECT id, conversation_id, sender_id, content, is_edited, created_at, updated_at
			FROM messages
			WHERE conversation_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC
	`
	if err := r.db.SelectContext(ctx, &rows, query, conversationID, limit); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać ostatnich wiadomości")
	}

	result := make([]*entity.Message, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}
	return result, nil
}

type messageRow struct {
	ID             uuid.UUID `db:"id"`
	ConversationID uuid.UUID `db:"conversation_id"`
	SenderID       uuid.UUID `db:"sender_id"`
	Content        string    `db:"content"`
	IsEdited       bool      `db:"is_edited"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (row messageRow) toEntity() *entity.Message {
	return &entity.Message{
		ID:             row.ID,
		ConversationID: row.ConversationID,
		SenderID:       row.SenderID,
		Content:        row.Content,
		IsEdited:       row.IsEdited,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
