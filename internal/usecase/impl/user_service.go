// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"dailyfresh/config"
	deliverycontext "dailyfresh/internal/delivery/context"
	"dailyfresh/internal/domain/entity"
	domainerrors "dailyfresh/internal/domain/errors"
	"dailyfresh/internal/domain/repository"
	"dailyfresh/internal/domain/service"
	"dailyfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// emailPattern is the structural check applied at registration. Deliverability
// is proven by the activation email itself, not by the pattern.
var emailPattern = regexp.MustCompile(`^[a-z0-9][\w.\-]*@[a-z0-9\-]+(\.[a-z]{2,5}){1,2}$`)

const defaultActivationTTL = time.Hour

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	activationCodec  service.ActivationTokenCodec
	mailDispatcher   service.MailDispatcher
	activationTTL    time.Duration
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	ActivationCodec  service.ActivationTokenCodec
	MailDispatcher   service.MailDispatcher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	activationTTL := defaultActivationTTL
	if params.Config != nil && params.Config.Activation != nil && params.Config.Activation.TTL > 0 {
		activationTTL = params.Config.Activation.TTL
	}

	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		activationCodec:  params.ActivationCodec,
		mailDispatcher:   params.MailDispatcher,
		activationTTL:    activationTTL,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive user and queues the activation email.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, domainerrors.ErrIncompleteData
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, domainerrors.ErrInvalidEmail
	}
	if !input.Allow {
		return nil, domainerrors.ErrConsentRequired
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		IsActive:     false,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// The pre-check gives the common case a clean error; the unique
		// constraint closes the race between two identical registrations.
		_, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return domainerrors.ErrDuplicateUsername
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		return nil, err
	}

	srv.dispatchActivationMail(ctx, newUser)

	srv.log(ctx).Info("User registered",
		slog.Any("userID", newUser.ID),
		slog.String("username", newUser.Username),
	)

	return &usecase.RegisterOutput{User: newUser}, nil
}

// dispatchActivationMail queues the activation email without tying its fate
// to the registration request. A dispatch failure is logged and swallowed.
func (srv *userService) dispatchActivationMail(ctx context.Context, user *entity.User) {
	token, err := srv.activationCodec.Issue(user.ID, srv.activationTTL)
	if err != nil {
		srv.log(ctx).Error("Failed to issue activation token",
			slog.Any("userID", user.ID),
			slog.Any("error", err),
		)

		return
	}

	event := &service.MailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Email:     user.Email,
		Username:  user.Username,
		Token:     token,
	}

	logger := srv.log(ctx)
	dispatchCtx := deliverycontext.WithRequestID(context.Background(), event.RequestID)

	go func() {
		if err := srv.mailDispatcher.DispatchActivationEmail(dispatchCtx, event); err != nil {
			logger.Error("Failed to dispatch activation email",
				slog.String("email", event.Email),
				slog.Any("error", err),
			)
		}
	}()
}

// Activate consumes an activation token and marks the bound user active.
func (srv *userService) Activate(ctx context.Context, token string) error {
	userID, err := srv.activationCodec.Verify(token)
	if err != nil {
		if errors.Is(err, service.ErrActivationTokenExpired) {
			return domainerrors.ErrActivationLinkExpired
		}

		return domainerrors.ErrActivationTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for activation")
	}

	// Clicking the link twice must not fail.
	if user.IsActive {
		return nil
	}

	user.IsActive = true
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to activate user")
	}

	srv.log(ctx).Info("User activated", slog.Any("userID", user.ID))

	return nil
}

// Authenticate verifies a username/password pair. The active flag is not
// consulted here; Login layers that gate on top.
func (srv *userService) Authenticate(ctx context.Context, input usecase.LoginInput) (*entity.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrIncompleteData
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for authentication")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates, gates on the active flag, and opens a session.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.Authenticate(ctx, input)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, domainerrors.ErrInactiveAccount
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}

	record := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken rotates a valid refresh token into a new token pair. The old
// token is revoked as part of the same transaction, so a replayed token dies
// with the rotation.
func (srv *userService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	oldHash := srv.tokenService.HashToken(refreshToken)

	var output *usecase.RefreshOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.RefreshTokenRepo()

		stored, err := tokenRepo.FindByHash(ctx, oldHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to load refresh token")
		}
		if stored.UserID != claims.UserID {
			return domainerrors.ErrRefreshTokenInvalid
		}

		if err := tokenRepo.DeleteByHash(ctx, oldHash); err != nil {
			return errors.Wrap(err, "failed to revoke refresh token")
		}

		accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to generate session tokens")
		}

		record := &entity.RefreshToken{
			UserID:    claims.UserID,
			TokenHash: srv.tokenService.HashToken(newRefreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := tokenRepo.Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to persist refresh token")
		}

		output = &usecase.RefreshOutput{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Logout closes the session held by the given refresh token. Logging out an
// unknown or already revoked token succeeds.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	hash := srv.tokenService.HashToken(refreshToken)
	if err := srv.refreshTokenRepo.DeleteByHash(ctx, hash); err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

// LogoutAll revokes every refresh token of the user. Outstanding access
// tokens stay valid until they expire on their own.
func (srv *userService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := srv.refreshTokenRepo.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete refresh tokens")
	}

	return nil
}
