package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/valueobject"
	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

// Event to wydarzenie publikowane przez organizację.
type Event struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Title          string
	Description    string
	Location       string
	StartsAt       *time.Time
	IsPublished    bool
	ImagePath      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Options []SponsorshipOption
}

// SponsorshipOption to pakiet świadczeń oferowany sponsorom dla wydarzenia.
// IsCustom oznacza opcję utworzoną ad hoc przy składaniu propozycji współpracy.
type SponsorshipOption struct {
	ID          uuid.UUID
	EventID     uuid.UUID
	Title       string
	Description string
	Price       valueobject.PriceRange
	Benefits    []string
	IsCustom    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewEvent(organizationID uuid.UUID, title, description, location string, startsAt *time.Time) (*Event, error) {
	if title == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "tytuł wydarzenia jest wymagany")
	}
	if description == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "opis wydarzenia jest wymagany")
	}

	return &Event{
		ID:             uuid.New(),
		OrganizationID: organizationID,
		Title:          title,
		Description:    description,
		Location:       location,
		StartsAt:       startsAt,
		IsPublished:    false,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}, nil
}

func (e *Event) Publish() {
	e.IsPublished = true
	e.UpdatedAt = time.Now()
}

func (e *Event) IsOwnedBy(userID uuid.UUID) bool {
	return e.OrganizationID == userID
}

func NewSponsorshipOption(eventID uuid.UUID, title, description string, price float64, priceTo *float64, benefits []string, isCustom bool) (*SponsorshipOption, error) {
	if title == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "tytuł opcji sponsoringu jest wymagany")
	}

	priceRange, err := valueobject.NewPriceRange(price, priceTo)
	if err != nil {
		return nil, err
	}

	return &SponsorshipOption{
		ID:          uuid.New(),
		EventID:     eventID,
		Title:       title,
		Description: description,
		Price:       priceRange,
		Benefits:    benefits,
		IsCustom:    isCustom,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}
