package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
)

// EventFilter zawęża listę wydarzeń.
type EventFilter struct {
	OrganizationID *uuid.UUID
	OnlyPublished  bool
	Search         string
	StartsAfter    *time.Time
	Limit          int
	Offset         int
}

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindByIDWithOptions(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	List(ctx context.Context, filter EventFilter) ([]*entity.Event, int, error)
}

type SponsorshipOptionRepository interface {
	Create(ctx context.Context, option *entity.SponsorshipOption) error
	Update(ctx context.Context, option *entity.SponsorshipOption) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SponsorshipOption, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.SponsorshipOption, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entity.SponsorshipOption, error)
}
