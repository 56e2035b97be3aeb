package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)
	FindByParticipants(ctx context.Context, organizationID, sponsorID uuid.UUID) (*entity.Conversation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)
	Touch(ctx context.Context, id uuid.UUID) error
}

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	Update(ctx context.Context, message *entity.Message) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)
	// FindByConversationID zwraca wiadomości rosnąco po created_at.
	FindByConversationID(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*entity.Message, error)
	// FindRecentByConversationID zwraca ostatnie wiadomości rozmowy,
	// również uporządkowane rosnąco po created_at.
	FindRecentByConversationID(ctx context.Context, conversationID uuid.UUID, limit int) ([]*entity.Message, error)
}
