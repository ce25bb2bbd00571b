package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dailyfresh/config"
	"dailyfresh/internal/domain/entity"
	domainerrors "dailyfresh/internal/domain/errors"
	"dailyfresh/internal/domain/repository"
	"dailyfresh/internal/domain/service"
	mockRepo "dailyfresh/internal/mocks/repository"
	mockService "dailyfresh/internal/mocks/service"
	"dailyfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
	activationCodec  *mockService.MockActivationTokenCodec
	mailDispatcher   *mockService.MockMailDispatcher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	activationCodec := mockService.NewMockActivationTokenCodec(t)
	mailDispatcher := mockService.NewMockMailDispatcher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		ActivationCodec:  activationCodec,
		MailDispatcher:   mailDispatcher,
		Config:           &config.Config{Activation: &config.ActivationConfig{TTL: time.Hour}},
		Logger:           logger,
	})

	return userServiceFixtures{
		service:          svc,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		activationCodec:  activationCodec,
		mailDispatcher:   mailDispatcher,
	}
}

func validRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Username: "zhangsan",
		Password: "secret123",
		Email:    "zhangsan@example.com",
		Allow:    true,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			return fn(mockFactory)
		})

	fx.activationCodec.EXPECT().Issue(mock.AnythingOfType("uuid.UUID"), time.Hour).Return("activation-token", nil)

	dispatched := make(chan *service.MailEvent, 1)
	fx.mailDispatcher.EXPECT().
		DispatchActivationEmail(mock.Anything, mock.AnythingOfType("*service.MailEvent")).
		Run(func(ctx context.Context, event *service.MailEvent) {
			dispatched <- event
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed-password", output.User.PasswordHash)
	assert.False(t, output.User.IsActive)

	select {
	case event := <-dispatched:
		assert.Equal(t, input.Email, event.Email)
		assert.Equal(t, input.Username, event.Username)
		assert.Equal(t, "activation-token", event.Token)
	case <-time.After(time.Second):
		t.Fatal("activation email was never dispatched")
	}
}

func TestUserService_Register_IncompleteData(t *testing.T) {
	fx := createTestUserService(t)

	for _, input := range []usecase.RegisterInput{
		{Username: "", Password: "secret123", Email: "a@example.com", Allow: true},
		{Username: "zhangsan", Password: "", Email: "a@example.com", Allow: true},
		{Username: "zhangsan", Password: "secret123", Email: "", Allow: true},
	} {
		output, err := fx.service.Register(context.Background(), input)

		require.ErrorIs(t, err, domainerrors.ErrIncompleteData)
		assert.Nil(t, output)
	}
}

func TestUserService_Register_InvalidEmail(t *testing.T) {
	fx := createTestUserService(t)

	input := validRegisterInput()
	input.Email = "not-an-email"

	output, err := fx.service.Register(context.Background(), input)

	require.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
	assert.Nil(t, output)
}

func TestUserService_Register_ConsentRequired(t *testing.T) {
	fx := createTestUserService(t)

	input := validRegisterInput()
	input.Allow = false

	output, err := fx.service.Register(context.Background(), input)

	require.ErrorIs(t, err, domainerrors.ErrConsentRequired)
	assert.Nil(t, output)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := validRegisterInput()
	existing := &entity.User{ID: uuid.New(), Username: input.Username}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(existing, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
	assert.Nil(t, output)
}

func TestUserService_Register_DuplicateUsernameRace(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	// The pre-check passes but the insert loses the race; the constraint
	// mapping still surfaces the duplicate error.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(domainerrors.ErrDuplicateUsername)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
	assert.Nil(t, output)
}

func TestUserService_Register_DispatchFailureDoesNotFailRegistration(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			return fn(mockFactory)
		})

	fx.activationCodec.EXPECT().Issue(mock.AnythingOfType("uuid.UUID"), time.Hour).Return("activation-token", nil)

	dispatched := make(chan struct{})
	fx.mailDispatcher.EXPECT().
		DispatchActivationEmail(mock.Anything, mock.AnythingOfType("*service.MailEvent")).
		Run(func(ctx context.Context, event *service.MailEvent) {
			close(dispatched)
		}).
		Return(errors.New("broker unavailable"))

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)

	select {
	case <-dispatched:
	case <-time.After(time.Second):
		t.Fatal("activation email was never dispatched")
	}
}

func TestUserService_Activate_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "zhangsan", IsActive: false}

	fx.activationCodec.EXPECT().Verify("good-token").Return(userID, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	err := fx.service.Activate(ctx, "good-token")

	require.NoError(t, err)
	assert.True(t, user.IsActive)
}

func TestUserService_Activate_AlreadyActive(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "zhangsan", IsActive: true}

	fx.activationCodec.EXPECT().Verify("good-token").Return(userID, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	err := fx.service.Activate(ctx, "good-token")

	require.NoError(t, err)
}

func TestUserService_Activate_ExpiredToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.activationCodec.EXPECT().Verify("stale-token").Return(uuid.Nil, service.ErrActivationTokenExpired)

	err := fx.service.Activate(context.Background(), "stale-token")

	require.ErrorIs(t, err, domainerrors.ErrActivationLinkExpired)
}

func TestUserService_Activate_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.activationCodec.EXPECT().Verify("garbage").Return(uuid.Nil, service.ErrActivationTokenInvalid)

	err := fx.service.Activate(context.Background(), "garbage")

	require.ErrorIs(t, err, domainerrors.ErrActivationTokenInvalid)
}

func TestUserService_Activate_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.activationCodec.EXPECT().Verify("good-token").Return(userID, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := fx.service.Activate(ctx, "good-token")

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Authenticate_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "zhangsan", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "zhangsan").Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)

	got, err := fx.service.Authenticate(ctx, usecase.LoginInput{Username: "zhangsan", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_Authenticate_IncompleteData(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Authenticate(context.Background(), usecase.LoginInput{Username: "zhangsan"})

	require.ErrorIs(t, err, domainerrors.ErrIncompleteData)
}

func TestUserService_Authenticate_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "nobody").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Authenticate(ctx, usecase.LoginInput{Username: "nobody", Password: "secret123"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "zhangsan", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "zhangsan").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Authenticate(ctx, usecase.LoginInput{Username: "zhangsan", Password: "wrong"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "zhangsan", PasswordHash: "hashed", IsActive: true}

	fx.userRepo.EXPECT().FindByUsername(ctx, "zhangsan").Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, "refresh-hash", token.TokenHash)
			assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), token.ExpiresAt, time.Minute)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "zhangsan", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "zhangsan", PasswordHash: "hashed", IsActive: false}

	fx.userRepo.EXPECT().FindByUsername(ctx, "zhangsan").Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "zhangsan", Password: "secret123"})

	require.ErrorIs(t, err, domainerrors.ErrInactiveAccount)
	assert.Nil(t, output)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: userID, TokenHash: "old-hash"}

	fx.tokenService.EXPECT().ValidateRefreshToken("old-refresh").
		Return(&service.TokenClaims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)
			mockTokenRepo.EXPECT().FindByHash(ctx, "old-hash").Return(stored, nil)
			mockTokenRepo.EXPECT().DeleteByHash(ctx, "old-hash").Return(nil)
			mockTokenRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					assert.Equal(t, userID, token.UserID)
					assert.Equal(t, "new-hash", token.TokenHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed"))

	output, err := fx.service.RefreshToken(context.Background(), "garbage")

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestUserService_RefreshToken_RevokedToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("old-refresh").
		Return(&service.TokenClaims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)
			mockTokenRepo.EXPECT().FindByHash(ctx, "old-hash").Return(nil, repository.ErrRefreshTokenNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, "old-refresh")

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestUserService_RefreshToken_UserMismatch(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: uuid.New(), TokenHash: "old-hash"}

	fx.tokenService.EXPECT().ValidateRefreshToken("old-refresh").
		Return(&service.TokenClaims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockTokenRepo)
			mockTokenRepo.EXPECT().FindByHash(ctx, "old-hash").Return(stored, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, "old-refresh")

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, output)
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().DeleteByHash(ctx, "refresh-hash").Return(nil)

	err := fx.service.Logout(ctx, "refresh")

	require.NoError(t, err)
}

func TestUserService_Logout_EmptyToken(t *testing.T) {
	fx := createTestUserService(t)

	err := fx.service.Logout(context.Background(), "")

	require.NoError(t, err)
}

func TestUserService_LogoutAll_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.refreshTokenRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

	err := fx.service.LogoutAll(ctx, userID)

	require.NoError(t, err)
}

func TestUserService_LogoutAll_RepositoryFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.refreshTokenRepo.EXPECT().
		DeleteByUserID(ctx, userID).
		Return(errors.New("connection reset"))

	err := fx.service.LogoutAll(ctx, userID)

	require.Error(t, err)
}
