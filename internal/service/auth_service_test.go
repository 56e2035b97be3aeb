package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sponsoring-app/sponsoring-backend/internal/models"
	"github.com/sponsoring-app/sponsoring-backend/internal/repository"
)

type mockAuthRepo struct {
	mock.Mock
}

func (m *mockAuthRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = uuid.New()
		user.IsActive = true
	}
	return args.Error(0)
}

func (m *mockAuthRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockAuthRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockAuthRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *mockAuthRepo) UpsertProfile(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *mockAuthRepo) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockAuthRepo) DeleteSession(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *mockAuthRepo) UpdateLastLoginAt(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockAuthRepo) ListSessions(ctx context.Context, userID uuid.UUID) ([]models.Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

func (m *mockAuthRepo) DeleteSessionByID(ctx context.Context, sessionID uuid.UUID, userID uuid.UUID) error {
	args := m.Called(ctx, sessionID, userID)
	return args.Error(0)
}

func (m *mockAuthRepo) DeleteAllSessionsExcept(ctx context.Context, userID uuid.UUID, exceptRefreshToken string) error {
	args := m.Called(ctx, userID, exceptRefreshToken)
	return args.Error(0)
}

func newTestTokenManager() *TokenManager {
	return NewTokenManager(
		"test-access-secret-used-only-in-tests-123",
		"test-refresh-secret-used-only-in-tests-123",
		15*time.Minute,
		720*time.Hour,
	)
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())

	repo.On("GetByEmail", mock.Anything, "org@example.com").Return(nil, repository.ErrUserNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)
	repo.On("UpsertProfile", mock.Anything, mock.AnythingOfType("*models.Profile")).Return(nil)
	repo.On("CreateSession", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)

	result, err := svc.Register(context.Background(), RegisterInput{
		Email:       "org@example.com",
		Password:    "Silne1Haslo",
		Role:        "organization",
		DisplayName: "Fundacja Pomocy",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "organization", result.User.Role)
	assert.Equal(t, "Fundacja Pomocy", result.Profile.DisplayName)
	assert.NotEmpty(t, result.TokenPair.AccessToken)
	assert.NotEmpty(t, result.TokenPair.RefreshToken)
	repo.AssertExpectations(t)
}

func TestAuthService_Register_RequiresKnownRole(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "ktos@example.com",
		Password: "Silne1Haslo",
		Role:     "freelancer",
	}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rola")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())

	existing := &models.User{ID: uuid.New(), Email: "org@example.com"}
	repo.On("GetByEmail", mock.Anything, "org@example.com").Return(existing, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "org@example.com",
		Password: "Silne1Haslo",
		Role:     "sponsor",
	}, nil)

	require.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())

	hash, err := bcrypt.GenerateFromPassword([]byte("Silne1Haslo"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "sponsor@example.com",
		Username:     "sponsor",
		PasswordHash: string(hash),
		Role:         "sponsor",
		IsActive:     true,
	}

	repo.On("GetByEmail", mock.Anything, "sponsor@example.com").Return(user, nil)
	repo.On("UpdateLastLoginAt", mock.Anything, user.ID).Return(nil)
	repo.On("CreateSession", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)
	repo.On("GetProfile", mock.Anything, user.ID).Return(&models.Profile{UserID: user.ID, DisplayName: "Sponsor"}, nil)

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "sponsor@example.com",
		Password: "Silne1Haslo",
	}, map[string]string{"user_agent": "test", "ip": "127.0.0.1"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	assert.NotEmpty(t, result.TokenPair.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())

	hash, err := bcrypt.GenerateFromPassword([]byte("Silne1Haslo"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "sponsor@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	repo.On("GetByEmail", mock.Anything, "sponsor@example.com").Return(user, nil)

	_, err = svc.Login(context.Background(), LoginInput{
		Email:    "sponsor@example.com",
		Password: "ZleHaslo1",
	}, nil)

	require.Error(t, err)
	repo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestAuthService_Login_BlockedAccount(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())

	user := &models.User{ID: uuid.New(), Email: "sponsor@example.com", IsActive: false}
	repo.On("GetByEmail", mock.Anything, "sponsor@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "sponsor@example.com",
		Password: "Silne1Haslo",
	}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "zablokowane")
}

func TestAuthService_Refresh_RotatesSession(t *testing.T) {
	repo := new(mockAuthRepo)
	tokens := newTestTokenManager()
	svc := NewAuthService(repo, tokens)

	user := &models.User{ID: uuid.New(), Email: "org@example.com", Role: "organization", IsActive: true}
	pair, _, _, err := tokens.GeneratePair(user)
	require.NoError(t, err)

	repo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("DeleteSession", mock.Anything, pair.RefreshToken).Return(nil)
	repo.On("CreateSession", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)

	newPair, err := svc.Refresh(context.Background(), pair.RefreshToken, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, newPair.AccessToken)
	assert.NotEqual(t, pair.RefreshToken, newPair.RefreshToken)
	repo.AssertExpectations(t)
}

func TestAuthService_Refresh_RejectsGarbageToken(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())

	_, err := svc.Refresh(context.Background(), "not-a-token", nil)

	require.Error(t, err)
	repo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestTokenManager_ParseAccessRoundTrip(t *testing.T) {
	tokens := newTestTokenManager()
	user := &models.User{ID: uuid.New(), Role: "sponsor"}

	pair, _, _, err := tokens.GeneratePair(user)
	require.NoError(t, err)

	userID, role, err := tokens.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "sponsor", role)
}

func TestTokenManager_AccessTokenRejectedAsRefresh(t *testing.T) {
	tokens := newTestTokenManager()
	user := &models.User{ID: uuid.New(), Role: "sponsor"}

	pair, _, _, err := tokens.GeneratePair(user)
	require.NoError(t, err)

	_, err = tokens.ParseRefresh(pair.AccessToken)
	assert.Error(t, err, "sekrety access i refresh są rozdzielone")
}
