package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/valueobject"
)

type CustomOptionRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gte=0"`
	PriceTo     *float64 `json:"price_to"`
	Benefits    []string `json:"benefits"`
}

type CreateCollaborationRequest struct {
	Message           string                `json:"message"`
	SelectedOptionIDs []string              `json:"selected_option_ids"`
	CustomOptions     []CustomOptionRequest `json:"custom_options"`
}

type ChangeCollaborationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateCollaborationTermsRequest struct {
	Message string `json:"message" binding:"required"`
}

type CollaborationOptionResponse struct {
	ID                  uuid.UUID `json:"id"`
	SponsorshipOptionID uuid.UUID `json:"sponsorship_option_id"`
	CreatedAt           time.Time `json:"created_at"`
}

type CollaborationResponse struct {
	ID               uuid.UUID                     `json:"id"`
	SponsorID        uuid.UUID                     `json:"sponsor_id"`
	OrganizationID   uuid.UUID                     `json:"organization_id"`
	EventID          uuid.UUID                     `json:"event_id"`
	Status           string                        `json:"status"`
	Message          string                        `json:"message"`
	TotalAmount      float64                       `json:"total_amount"`
	Options          []CollaborationOptionResponse `json:"options"`
	AvailableActions []string                      `json:"available_actions"`
	CreatedAt        time.Time                     `json:"created_at"`
	UpdatedAt        time.Time                     `json:"updated_at"`
}

// ToCollaborationResponse buduje odpowiedź dla konkretnego oglądającego.
// Lista available_actions zależy od roli oglądającego w tej współpracy.
func ToCollaborationResponse(collab *entity.Collaboration, viewerID uuid.UUID) CollaborationResponse {
	options := make([]CollaborationOptionResponse, 0, len(collab.Options))
	for _, option := range collab.Options {
		options = append(options, CollaborationOptionResponse{
			ID:                  option.ID,
			SponsorshipOptionID: option.SponsorshipOptionID,
			CreatedAt:           option.CreatedAt,
		})
	}

	actions := []string{}
	if role, ok := collab.RoleOf(viewerID); ok {
		for _, action := range collab.AvailableActions(role) {
			actions = append(actions, string(action))
		}
	}

	return CollaborationResponse{
		ID:               collab.ID,
		SponsorID:        collab.SponsorID,
		OrganizationID:   collab.OrganizationID,
		EventID:          collab.EventID,
		Status:           string(collab.Status),
		Message:          collab.Message,
		TotalAmount:      collab.TotalAmount,
		Options:          options,
		AvailableActions: actions,
		CreatedAt:        collab.CreatedAt,
		UpdatedAt:        collab.UpdatedAt,
	}
}

func ToCollaborationResponses(collabs []*entity.Collaboration, viewerID uuid.UUID) []CollaborationResponse {
	responses := make([]CollaborationResponse, 0, len(collabs))
	for _, collab := range collabs {
		responses = append(responses, ToCollaborationResponse(collab, viewerID))
	}
	return responses
}

// ParseOptionIDs zamienia identyfikatory tekstowe na UUID.
func (r *CreateCollaborationRequest) ParseOptionIDs() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.SelectedOptionIDs))
	for _, raw := range r.SelectedOptionIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ActionsForRole zwraca akcje dostępne dla pary (status, rola) w formie tekstowej.
func ActionsForRole(status valueobject.CollaborationStatus, role valueobject.ActorRole) []string {
	actions := valueobject.AvailableActions(status, role)
	result := make([]string, 0, len(actions))
	for _, action := range actions {
		result = append(result, string(action))
	}
	return result
}
