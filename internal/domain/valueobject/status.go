package valueobject

import "github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"

// CollaborationStatus opisuje etap cyklu życia współpracy.
// Etykiety w UI: submitted = "Przesłana", negotiation = "Negocjacje",
// accepted = "W trakcie", completed = "Zrealizowana".
type CollaborationStatus string

const (
	CollaborationStatusSubmitted   CollaborationStatus = "submitted"
	CollaborationStatusNegotiation CollaborationStatus = "negotiation"
	CollaborationStatusAccepted    CollaborationStatus = "accepted"
	CollaborationStatusCompleted   CollaborationStatus = "completed"
	CollaborationStatusRejected    CollaborationStatus = "rejected"
	CollaborationStatusCanceled    CollaborationStatus = "canceled"
)

func (s CollaborationStatus) IsValid() bool {
	switch s {
	case CollaborationStatusSubmitted, CollaborationStatusNegotiation, CollaborationStatusAccepted,
		CollaborationStatusCompleted, CollaborationStatusRejected, CollaborationStatusCanceled:
		return true
	}
	return false
}

// IsTerminal zwraca true dla statusów końcowych, z których nie ma już przejść.
func (s CollaborationStatus) IsTerminal() bool {
	switch s {
	case CollaborationStatusCompleted, CollaborationStatusRejected, CollaborationStatusCanceled:
		return true
	}
	return false
}

func NewCollaborationStatus(status string) (CollaborationStatus, error) {
	s := CollaborationStatus(status)
	if !s.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "nieprawidłowy status współpracy")
	}
	return s, nil
}

// ActorRole to typ konta oglądającego: organizacja albo sponsor.
type ActorRole string

const (
	ActorRoleOrganization ActorRole = "organization"
	ActorRoleSponsor      ActorRole = "sponsor"
)

func (r ActorRole) IsValid() bool {
	return r == ActorRoleOrganization || r == ActorRoleSponsor
}

func NewActorRole(role string) (ActorRole, error) {
	r := ActorRole(role)
	if !r.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "nieprawidłowa rola użytkownika")
	}
	return r, nil
}

// Action to operacja na współpracy dostępna z poziomu UI.
type Action string

const (
	ActionEdit      Action = "edit"
	ActionAccept    Action = "accept"
	ActionReject    Action = "reject"
	ActionNegotiate Action = "negotiate"
	ActionComplete  Action = "complete"
	ActionCancel    Action = "cancel"
)

// actionTable to jedyne źródło prawdy dla reguł (status, rola) -> akcje.
var actionTable = map[CollaborationStatus]map[ActorRole][]Action{
	CollaborationStatusSubmitted: {
		ActorRoleOrganization: {ActionEdit, ActionAccept, ActionReject, ActionNegotiate},
		ActorRoleSponsor:      {ActionEdit, ActionReject, ActionNegotiate},
	},
	CollaborationStatusNegotiation: {
		ActorRoleOrganization: {ActionEdit, ActionAccept, ActionReject},
		ActorRoleSponsor:      {ActionEdit, ActionAccept, ActionReject},
	},
	CollaborationStatusAccepted: {
		ActorRoleOrganization: {ActionComplete, ActionCancel},
		ActorRoleSponsor:      {ActionCancel},
	},
	CollaborationStatusCompleted: {},
	CollaborationStatusRejected:  {},
	CollaborationStatusCanceled:  {},
}

// AvailableActions zwraca akcje dozwolone dla pary (status, rola).
// Funkcja jest czysta i totalna: nieznane pary dają pusty wynik, nigdy błąd.
func AvailableActions(status CollaborationStatus, role ActorRole) []Action {
	byRole, ok := actionTable[status]
	if !ok {
		return nil
	}
	actions := byRole[role]
	result := make([]Action, len(actions))
	copy(result, actions)
	return result
}

// CanPerform sprawdza, czy akcja jest dozwolona dla pary (status, rola).
func CanPerform(status CollaborationStatus, role ActorRole, action Action) bool {
	for _, a := range AvailableActions(status, role) {
		if a == action {
			return true
		}
	}
	return false
}

// ActionForStatus mapuje żądany status docelowy na akcję, która do niego prowadzi.
// Status submitted jest nadawany wyłącznie przy tworzeniu, więc nie ma akcji.
func ActionForStatus(target CollaborationStatus) (Action, error) {
	switch target {
	case CollaborationStatusNegotiation:
		return ActionNegotiate, nil
	case CollaborationStatusAccepted:
		return ActionAccept, nil
	case CollaborationStatusRejected:
		return ActionReject, nil
	case CollaborationStatusCompleted:
		return ActionComplete, nil
	case CollaborationStatusCanceled:
		return ActionCancel, nil
	}
	return "", apperror.New(apperror.ErrCodeInvalidTransition, "żaden dostępny ruch nie prowadzi do tego statusu")
}

// TargetStatus zwraca status, do którego prowadzi akcja zmieniająca status.
// Akcja edit nie zmienia statusu i zwraca false.
func (a Action) TargetStatus() (CollaborationStatus, bool) {
	switch a {
	case ActionNegotiate:
		return CollaborationStatusNegotiation, true
	case ActionAccept:
		return CollaborationStatusAccepted, true
	case ActionReject:
		return CollaborationStatusRejected, true
	case ActionComplete:
		return CollaborationStatusCompleted, true
	case ActionCancel:
		return CollaborationStatusCanceled, true
	}
	return "", false
}
