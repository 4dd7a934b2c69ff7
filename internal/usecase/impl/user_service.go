package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/umithief/motovibe6/internal/delivery/context"
	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/domain/service"
	"github.com/umithief/motovibe6/internal/usecase"
)

const (
	minPasswordLength = 6

	logEventRegistration = "Yeni Üye Kaydı"
	logEventAdminLogin   = "Admin Girişi"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	logRepo      repository.ActivityLogRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	clock        service.Clock
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	LogRepo      repository.ActivityLogRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Clock        service.Clock
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		logRepo:      params.LogRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(input *usecase.RegisterInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("email is invalid")
	}
	if len(input.Password) < minPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	return nil
}

// Register creates the account. A taken email fails with USER_ALREADY_EXISTS
// and leaves no record behind.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	return srv.register(ctx, input, false)
}

func (srv *userService) register(ctx context.Context, input *usecase.RegisterInput, admin bool) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	if err := validateRegistration(&usecase.RegisterInput{Name: input.Name, Email: email, Password: input.Password}); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	// Cheap rejection before hashing. The transactional check below still decides.
	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	now := srv.clock.Now()
	user := &entity.User{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      admin,
		Phone:        input.Phone,
		Address:      input.Address,
		JoinDate:     now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserEmailTaken) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		return repoFactory.NewActivityLogRepository().Append(ctx, &entity.ActivityLog{
			ID:        uuid.Must(uuid.NewV7()),
			Type:      entity.LogInfo,
			Event:     logEventRegistration,
			Details:   fmt.Sprintf("Kullanıcı: %s (%s)", user.Name, user.Email),
			Timestamp: now,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", user.ID.String()))

	return user, nil
}

func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.AuthSession, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login with wrong password", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Name, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	if user.IsAdmin {
		entry := &entity.ActivityLog{
			ID:        uuid.Must(uuid.NewV7()),
			Type:      entity.LogWarning,
			Event:     logEventAdminLogin,
			Details:   "Süper kullanıcı oturum açtı.",
			Timestamp: srv.clock.Now(),
		}
		if err := srv.logRepo.Append(ctx, entry); err != nil {
			srv.log(ctx).Warn("Failed to record admin login", slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID.String()))

	return &entity.AuthSession{User: user, AccessToken: token}, nil
}

func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// EnsureAdmin is a no-op without an email. An existing account is promoted
// rather than recreated.
func (srv *userService) EnsureAdmin(ctx context.Context, input *usecase.RegisterInput) error {
	if input == nil || strings.TrimSpace(input.Email) == "" {
		return nil
	}

	email := normalizeEmail(input.Email)
	existing, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil && existing.IsAdmin:
		return nil
	case err == nil:
		existing.IsAdmin = true
		existing.UpdatedAt = srv.clock.Now()
		if err := srv.userRepo.Update(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to promote admin")
		}
		srv.log(ctx).Info("Promoted bootstrap admin", slog.String("email", email))

		return nil
	case !errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(err, "failed to look up admin")
	}

	name := input.Name
	if strings.TrimSpace(name) == "" {
		name = "MotoVibe Admin"
	}
	if _, err := srv.register(ctx, &usecase.RegisterInput{Name: name, Email: email, Password: input.Password}, true); err != nil {
		return errors.Wrap(err, "failed to create admin")
	}
	srv.log(ctx).Info("Created bootstrap admin", slog.String("email", email))

	return nil
}
