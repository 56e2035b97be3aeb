package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
)

// CollaborationRepository to kontrakt trwałości dla współprac. Kroki tworzenia
// są rozdzielone (Create / LinkOption), bo niepowodzenie wiązania opcji nie
// unieważnia samej współpracy.
type CollaborationRepository interface {
	Create(ctx context.Context, collaboration *entity.Collaboration) error
	Update(ctx context.Context, collaboration *entity.Collaboration) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Collaboration, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Collaboration, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entity.Collaboration, error)
	LinkOption(ctx context.Context, collaborationID, optionID uuid.UUID) error
	FindLinkedOptions(ctx context.Context, collaborationID uuid.UUID) ([]entity.CollaborationOption, error)
}
