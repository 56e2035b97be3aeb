package collaboration

import (
	"context"

	"github.com/google/uuid"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/repository"
	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

type GetCollaborationUseCase struct {
	collabRepo repository.CollaborationRepository
}

func NewGetCollaborationUseCase(collabRepo repository.CollaborationRepository) *GetCollaborationUseCase {
	return &GetCollaborationUseCase{collabRepo: collabRepo}
}

// Execute zwraca współpracę wraz z powiązanymi opcjami. Dostęp mają tylko strony współpracy.
func (uc *GetCollaborationUseCase) Execute(ctx context.Context, collaborationID, viewerID uuid.UUID) (*entity.Collaboration, error) {
	collab, err := uc.collabRepo.FindByID(ctx, collaborationID)
	if err != nil {
		return nil, err
	}
	if collab == nil {
		return nil, apperror.ErrCollaborationNotFound
	}

	if !collab.IsParty(viewerID) {
		return nil, apperror.ErrForbidden
	}

	options, err := uc.collabRepo.FindLinkedOptions(ctx, collaborationID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "nie udało się pobrać powiązanych opcji")
	}
	collab.Options = options

	return collab, nil
}

type ListMyCollaborationsUseCase struct {
	collabRepo repository.CollaborationRepository
}

func NewListMyCollaborationsUseCase(collabRepo repository.CollaborationRepository) *ListMyCollaborationsUseCase {
	return &ListMyCollaborationsUseCase{collabRepo: collabRepo}
}

func (uc *ListMyCollaborationsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.Collaboration, error) {
	return uc.collabRepo.FindByUserID(ctx, userID)
}
