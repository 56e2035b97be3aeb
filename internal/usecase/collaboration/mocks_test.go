package collaboration

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/repository"
)

type mockCollaborationRepo struct {
	mock.Mock
}

func (m *mockCollaborationRepo) Create(ctx context.Context, collaboration *entity.Collaboration) error {
	args := m.Called(ctx, collaboration)
	return args.Error(0)
}

func (m *mockCollaborationRepo) Update(ctx context.Context, collaboration *entity.Collaboration) error {
	args := m.Called(ctx, collaboration)
	return args.Error(0)
}

func (m *mockCollaborationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Collaboration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Collaboration), args.Error(1)
}

func (m *mockCollaborationRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Collaboration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Collaboration), args.Error(1)
}

func (m *mockCollaborationRepo) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entity.Collaboration, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Collaboration), args.Error(1)
}

func (m *mockCollaborationRepo) LinkOption(ctx context.Context, collaborationID, optionID uuid.UUID) error {
	args := m.Called(ctx, collaborationID, optionID)
	return args.Error(0)
}

func (m *mockCollaborationRepo) FindLinkedOptions(ctx context.Context, collaborationID uuid.UUID) ([]entity.CollaborationOption, error) {
	args := m.Called(ctx, collaborationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CollaborationOption), args.Error(1)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, event *entity.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockEventRepo) Update(ctx context.Context, event *entity.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *mockEventRepo) FindByIDWithOptions(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *mockEventRepo) List(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entity.Event), args.Int(1), args.Error(2)
}

type mockOptionRepo struct {
	mock.Mock
}

func (m *mockOptionRepo) Create(ctx context.Context, option *entity.SponsorshipOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *mockOptionRepo) Update(ctx context.Context, option *entity.SponsorshipOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *mockOptionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOptionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.SponsorshipOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SponsorshipOption), args.Error(1)
}

func (m *mockOptionRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.SponsorshipOption, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SponsorshipOption), args.Error(1)
}

func (m *mockOptionRepo) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entity.SponsorshipOption, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SponsorshipOption), args.Error(1)
}
