package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sponsoring-app/sponsoring-backend/internal/cache"
	"github.com/sponsoring-app/sponsoring-backend/internal/domain/entity"
	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

type mockConversationRepo struct {
	mock.Mock
}

func (m *mockConversationRepo) Create(ctx context.Context, conversation *entity.Conversation) error {
	args := m.Called(ctx, conversation)
	return args.Error(0)
}

func (m *mockConversationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Conversation), args.Error(1)
}

func (m *mockConversationRepo) FindByParticipants(ctx context.Context, organizationID, sponsorID uuid.UUID) (*entity.Conversation, error) {
	args := m.Called(ctx, organizationID, sponsorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Conversation), args.Error(1)
}

func (m *mockConversationRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Conversation), args.Error(1)
}

func (m *mockConversationRepo) Touch(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockMessageRepo) Update(ctx context.Context, message *entity.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockMessageRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Message), args.Error(1)
}

func (m *mockMessageRepo) FindByConversationID(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	args := m.Called(ctx, conversationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Message), args.Error(1)
}

func (m *mockMessageRepo) FindRecentByConversationID(ctx context.Context, conversationID uuid.UUID, limit int) ([]*entity.Message, error) {
	args := m.Called(ctx, conversationID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Message), args.Error(1)
}

type mockRoleFinder struct {
	mock.Mock
}

func (m *mockRoleFinder) FindRole(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func newTestConversation(t *testing.T) *entity.Conversation {
	t.Helper()
	conv, err := entity.NewConversation(nil, uuid.New(), uuid.New())
	require.NoError(t, err)
	return conv
}

func TestGetOrCreateConversation_SponsorStartsWithOrganization(t *testing.T) {
	convRepo := new(mockConversationRepo)
	roles := new(mockRoleFinder)

	sponsorID := uuid.New()
	organizationID := uuid.New()

	roles.On("FindRole", mock.Anything, sponsorID).Return("sponsor", nil)
	convRepo.On("FindByParticipants", mock.Anything, organizationID, sponsorID).Return(nil, nil)
	convRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Conversation")).Return(nil)

	uc := NewGetOrCreateConversationUseCase(convRepo, roles)
	conv, err := uc.Execute(context.Background(), nil, sponsorID, organizationID)

	require.NoError(t, err)
	assert.Equal(t, organizationID, conv.OrganizationID)
	assert.Equal(t, sponsorID, conv.SponsorID)
}

func TestGetOrCreateConversation_ReturnsExisting(t *testing.T) {
	convRepo := new(mockConversationRepo)
	roles := new(mockRoleFinder)

	existing := newTestConversation(t)
	roles.On("FindRole", mock.Anything, existing.OrganizationID).Return("organization", nil)
	convRepo.On("FindByParticipants", mock.Anything, existing.OrganizationID, existing.SponsorID).Return(existing, nil)

	uc := NewGetOrCreateConversationUseCase(convRepo, roles)
	conv, err := uc.Execute(context.Background(), nil, existing.OrganizationID, existing.SponsorID)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, conv.ID)
	convRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendMessage_PersistsAndUpdatesWindow(t *testing.T) {
	convRepo := new(mockConversationRepo)
	msgRepo := new(mockMessageRepo)
	window := cache.NewMessageCache(10)

	conv := newTestConversation(t)
	convRepo.On("FindByID", mock.Anything, conv.ID).Return(conv, nil)
	msgRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Message")).Return(nil)
	convRepo.On("Touch", mock.Anything, conv.ID).Return(nil)

	uc := NewSendMessageUseCase(convRepo, msgRepo, window)
	msg, gotConv, err := uc.Execute(context.Background(), conv.ID, conv.SponsorID, "dzień dobry")

	require.NoError(t, err)
	assert.Equal(t, conv.ID, gotConv.ID)
	assert.Equal(t, "dzień dobry", msg.Content)

	cached := window.Recent(conv.ID)
	require.Len(t, cached, 1)
	assert.Equal(t, msg.ID, cached[0].ID)
}

func TestSendMessage_NonParticipantForbidden(t *testing.T) {
	convRepo := new(mockConversationRepo)
	msgRepo := new(mockMessageRepo)

	conv := newTestConversation(t)
	convRepo.On("FindByID", mock.Anything, conv.ID).Return(conv, nil)

	uc := NewSendMessageUseCase(convRepo, msgRepo, nil)
	_, _, err := uc.Execute(context.Background(), conv.ID, uuid.New(), "obca wiadomość")

	assert.True(t, apperror.IsForbidden(err))
	msgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListRecentMessages_ServedFromWindow(t *testing.T) {
	convRepo := new(mockConversationRepo)
	msgRepo := new(mockMessageRepo)
	window := cache.NewMessageCache(10)

	conv := newTestConversation(t)
	convRepo.On("FindByID", mock.Anything, conv.ID).Return(conv, nil)

	base := time.Now()
	for i, content := range []string{"a", "b", "c"} {
		msg, err := entity.NewMessage(conv.ID, conv.SponsorID, content)
		require.NoError(t, err)
		msg.CreatedAt = base.Add(time.Duration(i) * time.Second)
		window.Apply(msg)
	}

	uc := NewListRecentMessagesUseCase(convRepo, msgRepo, window)
	messages, err := uc.Execute(context.Background(), conv.ID, conv.OrganizationID, 2)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "b", messages[0].Content)
	assert.Equal(t, "c", messages[1].Content)
	msgRepo.AssertNotCalled(t, "FindRecentByConversationID", mock.Anything, mock.Anything, mock.Anything)
}

func TestListRecentMessages_EmptyWindowFallsBackAndSeeds(t *testing.T) {
	convRepo := new(mockConversationRepo)
	msgRepo := new(mockMessageRepo)
	window := cache.NewMessageCache(10)

	conv := newTestConversation(t)
	convRepo.On("FindByID", mock.Anything, conv.ID).Return(conv, nil)

	stored, err := entity.NewMessage(conv.ID, conv.SponsorID, "z bazy")
	require.NoError(t, err)
	msgRepo.On("FindRecentByConversationID", mock.Anything, conv.ID, 50).
		Return([]*entity.Message{stored}, nil)

	uc := NewListRecentMessagesUseCase(convRepo, msgRepo, window)
	messages, err := uc.Execute(context.Background(), conv.ID, conv.SponsorID, 50)

	require.NoError(t, err)
	require.Len(t, messages, 1)

	// Kolejne wywołanie trafia już w okno, nie w bazę.
	_, err = uc.Execute(context.Background(), conv.ID, conv.SponsorID, 50)
	require.NoError(t, err)
	msgRepo.AssertNumberOfCalls(t, "FindRecentByConversationID", 1)
}

func TestUpdateMessage_OnlyAuthorCanEdit(t *testing.T) {
	msgRepo := new(mockMessageRepo)

	conv := newTestConversation(t)
	msg, err := entity.NewMessage(conv.ID, conv.SponsorID, "oryginał")
	require.NoError(t, err)
	msgRepo.On("FindByID", mock.Anything, msg.ID).Return(msg, nil)

	uc := NewUpdateMessageUseCase(msgRepo, nil)
	_, err = uc.Execute(context.Background(), msg.ID, conv.OrganizationID, "próba przejęcia")

	assert.True(t, apperror.IsForbidden(err))
	msgRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateMessage_AppliesEditToWindow(t *testing.T) {
	msgRepo := new(mockMessageRepo)
	window := cache.NewMessageCache(10)

	conv := newTestConversation(t)
	msg, err := entity.NewMessage(conv.ID, conv.SponsorID, "oryginał")
	require.NoError(t, err)
	window.Apply(msg)

	msgRepo.On("FindByID", mock.Anything, msg.ID).Return(msg, nil)
	msgRepo.On("Update", mock.Anything, msg).Return(nil)

	uc := NewUpdateMessageUseCase(msgRepo, window)
	updated, err := uc.Execute(context.Background(), msg.ID, conv.SponsorID, "poprawiona")

	require.NoError(t, err)
	assert.True(t, updated.IsEdited)

	cached := window.Recent(conv.ID)
	require.Len(t, cached, 1)
	assert.Equal(t, "poprawiona", cached[0].Content)
}

func TestDeleteMessage_RemovesFromWindow(t *testing.T) {
	msgRepo := new(mockMessageRepo)
	window := cache.NewMessageCache(10)

	conv := newTestConversation(t)
	msg, err := entity.NewMessage(conv.ID, conv.SponsorID, "do usunięcia")
	require.NoError(t, err)
	window.Apply(msg)

	msgRepo.On("FindByID", mock.Anything, msg.ID).Return(msg, nil)
	msgRepo.On("Delete", mock.Anything, msg.ID).Return(nil)

	uc := NewDeleteMessageUseCase(msgRepo, window)
	deleted, err := uc.Execute(context.Background(), msg.ID, conv.SponsorID)

	require.NoError(t, err)
	assert.Equal(t, conv.ID, deleted.ConversationID)
	assert.Equal(t, 0, window.Len(conv.ID))
}

func TestListMessages_ConversationNotFound(t *testing.T) {
	convRepo := new(mockConversationRepo)
	msgRepo := new(mockMessageRepo)

	id := uuid.New()
	convRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	uc := NewListMessagesUseCase(convRepo, msgRepo)
	_, err := uc.Execute(context.Background(), id, uuid.New(), 20, 0)

	assert.True(t, apperror.IsNotFound(err))
}
