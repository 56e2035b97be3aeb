package dto

import "time"

// RegisterRequest to dane rejestracji konta.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Username    string `json:"username"`
	Role        string `json:"role" binding:"required"`
	DisplayName string `json:"display_name"`
}

// LoginRequest to dane logowania.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest niesie refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest to dane aktualizacji profilu.
type UpdateProfileRequest struct {
	DisplayName      string  `json:"display_name" binding:"required"`
	Bio              *string `json:"bio"`
	Location         *string `json:"location"`
	PhotoID          *string `json:"photo_id"`
	Phone            *string `json:"phone"`
	Website          *string `json:"website"`
	OrganizationName *string `json:"organization_name"`
	KRS              *string `json:"krs"`
	NIP              *string `json:"nip"`
}

// CreateEventRequest to dane nowego wydarzenia.
type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Location    string  `json:"location"`
	StartsAt    *string `json:"starts_at"`
}

// UpdateEventRequest to dane edycji wydarzenia.
type UpdateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Location    string  `json:"location"`
	StartsAt    *string `json:"starts_at"`
	IsPublished *bool   `json:"is_published"`
}

// SponsorshipOptionRequest to dane pakietu sponsoringu.
type SponsorshipOptionRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"gte=0"`
	PriceTo     *float64 `json:"price_to"`
	Benefits    []string `json:"benefits"`
}

// ParseStartsAt zamienia tekstowy znacznik czasu na time.Time.
func ParseStartsAt(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
