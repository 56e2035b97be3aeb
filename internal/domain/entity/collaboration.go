package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/valueobject"
	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

// Collaboration to propozycja sponsoringu łącząca sponsora, organizację i wydarzenie.
type Collaboration struct {
	ID             uuid.UUID
	SponsorID      uuid.UUID
	OrganizationID uuid.UUID
	EventID        uuid.UUID
	Status         valueobject.CollaborationStatus
	Message        string
	TotalAmount    float64
	Options        []CollaborationOption
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CollaborationOption wiąże współpracę z wybraną opcją sponsoringu.
type CollaborationOption struct {
	ID                  uuid.UUID
	CollaborationID     uuid.UUID
	SponsorshipOptionID uuid.UUID
	CreatedAt           time.Time
}

func NewCollaboration(sponsorID, organizationID, eventID uuid.UUID, message string, totalAmount float64) (*Collaboration, error) {
	if sponsorID == organizationID {
		return nil, apperror.New(apperror.ErrCodeValidation, "sponsor i organizacja muszą być różnymi kontami")
	}
	if totalAmount < 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "łączna kwota nie może być ujemna")
	}

	return &Collaboration{
		ID:             uuid.New(),
		SponsorID:      sponsorID,
		OrganizationID: organizationID,
		EventID:        eventID,
		Status:         valueobject.CollaborationStatusSubmitted,
		Message:        message,
		TotalAmount:    totalAmount,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}, nil
}

// RoleOf zwraca rolę użytkownika w tej współpracy.
func (c *Collaboration) RoleOf(userID uuid.UUID) (valueobject.ActorRole, bool) {
	switch userID {
	case c.OrganizationID:
		return valueobject.ActorRoleOrganization, true
	case c.SponsorID:
		return valueobject.ActorRoleSponsor, true
	}
	return "", false
}

func (c *Collaboration) IsParty(userID uuid.UUID) bool {
	_, ok := c.RoleOf(userID)
	return ok
}

// ApplyAction wykonuje akcję zmieniającą status, walidując ją wobec aktualnego
// statusu rekordu, a nie stanu zapamiętanego przez klienta. Powtórzenie już
// zastosowanego statusu nie jest legalnym ruchem.
func (c *Collaboration) ApplyAction(action valueobject.Action, role valueobject.ActorRole) error {
	target, ok := action.TargetStatus()
	if !ok {
		return apperror.New(apperror.ErrCodeInvalidTransition, "akcja nie zmienia statusu współpracy")
	}
	if !valueobject.CanPerform(c.Status, role, action) {
		return apperror.New(apperror.ErrCodeInvalidTransition, "akcja nie jest dostępna w aktualnym statusie")
	}
	c.Status = target
	c.UpdatedAt = time.Now()
	return nil
}

// AvailableActions zwraca akcje dostępne dla danej roli w aktualnym statusie.
func (c *Collaboration) AvailableActions(role valueobject.ActorRole) []valueobject.Action {
	return valueobject.AvailableActions(c.Status, role)
}

// UpdateTerms zmienia wiadomość towarzyszącą propozycji. Dozwolone tylko dopóki
// polityka udostępnia akcję edit dla danej roli.
func (c *Collaboration) UpdateTerms(role valueobject.ActorRole, message string) error {
	if !valueobject.CanPerform(c.Status, role, valueobject.ActionEdit) {
		return apperror.New(apperror.ErrCodeInvalidTransition, "edycja warunków nie jest dostępna w aktualnym statusie")
	}
	c.Message = message
	c.UpdatedAt = time.Now()
	return nil
}
