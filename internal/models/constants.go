package models

// UserRole stałe ról kont
const (
	UserRoleOrganization = "organization"
	UserRoleSponsor      = "sponsor"
)

// ValidUserRoles lista poprawnych ról kont
var ValidUserRoles = map[string]struct{}{
	UserRoleOrganization: {},
	UserRoleSponsor:      {},
}

// CollaborationStatus stałe statusów współpracy (etykiety UI po polsku:
// Przesłana, Negocjacje, W trakcie, Zrealizowana)
const (
	CollaborationStatusSubmitted   = "submitted"
	CollaborationStatusNegotiation = "negotiation"
	CollaborationStatusAccepted    = "accepted"
	CollaborationStatusCompleted   = "completed"
	CollaborationStatusRejected    = "rejected"
	CollaborationStatusCanceled    = "canceled"
)

// ValidCollaborationStatuses lista poprawnych statusów współpracy
var ValidCollaborationStatuses = map[string]struct{}{
	CollaborationStatusSubmitted:   {},
	CollaborationStatusNegotiation: {},
	CollaborationStatusAccepted:    {},
	CollaborationStatusCompleted:   {},
	CollaborationStatusRejected:    {},
	CollaborationStatusCanceled:    {},
}
