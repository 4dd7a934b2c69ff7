package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	mockRepo "github.com/umithief/motovibe6/internal/mocks/repository"
	mockSvc "github.com/umithief/motovibe6/internal/mocks/service"
	"github.com/umithief/motovibe6/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	logRepo      *mockRepo.MockActivityLogRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	factory      *mockRepo.MockRepositoryFactory
	txUsers      *mockRepo.MockUserRepository
	txLogs       *mockRepo.MockActivityLogRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	f := userServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		logRepo:      mockRepo.NewMockActivityLogRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		txUsers:      mockRepo.NewMockUserRepository(t),
		txLogs:       mockRepo.NewMockActivityLogRepository(t),
	}

	f.service = NewUserService(UserServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		LogRepo:      f.logRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Clock:        newFixedClock(t),
		Logger:       newDiscardLogger(),
	})

	f.factory.EXPECT().NewUserRepository().Return(f.txUsers).Maybe()
	f.factory.EXPECT().NewActivityLogRepository().Return(f.txLogs).Maybe()

	return f
}

func (f userServiceFixtures) runInTx() *mockRepo.MockTransactionManager_Execute_Call {
	return f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func TestUserService_Register_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Ahmet Yılmaz",
		Email:    "  Ahmet@Example.com ",
		Password: "gizli123",
		Phone:    "0555 000 00 00",
	}

	f.userRepo.EXPECT().FindByEmail(ctx, "ahmet@example.com").Return(nil, repository.ErrUserNotFound).Once()
	f.hasher.EXPECT().Hash("gizli123").Return("hashed", nil).Once()
	f.runInTx().Once()
	f.txUsers.EXPECT().FindByEmail(ctx, "ahmet@example.com").Return(nil, repository.ErrUserNotFound).Once()
	f.txUsers.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "ahmet@example.com" && u.PasswordHash == "hashed" && !u.IsAdmin
		})).
		Return(nil).Once()
	f.txLogs.EXPECT().
		Append(ctx, mock.MatchedBy(func(l *entity.ActivityLog) bool {
			return l.Event == "Yeni Üye Kaydı" && l.Details == "Kullanıcı: Ahmet Yılmaz (ahmet@example.com)"
		})).
		Return(nil).Once()

	user, err := f.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "ahmet@example.com", user.Email)
	assert.Equal(t, testNow, user.JoinDate)
	assert.Equal(t, "0555 000 00 00", user.Phone)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "ayse@example.com").Return(&entity.User{ID: uuid.New()}, nil).Once()

	user, err := f.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ayşe",
		Email:    "Ayse@Example.com",
		Password: "123456",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_Register_DuplicateEmailInsideTransaction(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "ayse@example.com").Return(nil, repository.ErrUserNotFound).Once()
	f.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()
	f.runInTx().Once()
	f.txUsers.EXPECT().FindByEmail(ctx, "ayse@example.com").Return(&entity.User{ID: uuid.New()}, nil).Once()

	user, err := f.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ayşe",
		Email:    "ayse@example.com",
		Password: "123456",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	f.txUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_RaceOnUniqueIndex(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "ayse@example.com").Return(nil, repository.ErrUserNotFound).Once()
	f.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()
	f.runInTx().Once()
	f.txUsers.EXPECT().FindByEmail(ctx, "ayse@example.com").Return(nil, repository.ErrUserNotFound).Once()
	f.txUsers.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUserEmailTaken).Once()

	_, err := f.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ayşe",
		Email:    "ayse@example.com",
		Password: "123456",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{name: "short password", input: &usecase.RegisterInput{Name: "A", Email: "a@example.com", Password: "12345"}},
		{name: "bad email", input: &usecase.RegisterInput{Name: "A", Email: "not-an-email", Password: "123456"}},
		{name: "blank name", input: &usecase.RegisterInput{Name: " ", Email: "a@example.com", Password: "123456"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestUserService(t)

			_, err := f.service.Register(context.Background(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestUserService_Login_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Ahmet", Email: "ahmet@example.com", PasswordHash: "hashed"}

	f.userRepo.EXPECT().FindByEmail(ctx, "ahmet@example.com").Return(user, nil).Once()
	f.hasher.EXPECT().Check("gizli123", "hashed").Return(true).Once()
	f.tokenService.EXPECT().GenerateAccessToken(user.ID, "Ahmet", []string{"user"}).Return("token", nil).Once()

	session, err := f.service.Login(ctx, &usecase.LoginInput{Email: "AHMET@example.com", Password: "gizli123"})

	require.NoError(t, err)
	assert.Equal(t, "token", session.AccessToken)
	assert.Equal(t, user, session.User)
	f.logRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestUserService_Login_AdminIsAudited(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Name: "Admin", Email: "admin@motovibe.tr", PasswordHash: "hashed", IsAdmin: true}

	f.userRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil).Once()
	f.hasher.EXPECT().Check("admin123", "hashed").Return(true).Once()
	f.tokenService.EXPECT().GenerateAccessToken(admin.ID, "Admin", []string{"user", "admin"}).Return("token", nil).Once()
	f.logRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(l *entity.ActivityLog) bool {
			return l.Type == entity.LogWarning && l.Event == "Admin Girişi"
		})).
		Return(errors.New("disk full")).Once()

	session, err := f.service.Login(ctx, &usecase.LoginInput{Email: admin.Email, Password: "admin123"})

	require.NoError(t, err)
	assert.True(t, session.User.IsAdmin)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		f := createTestUserService(t)
		ctx := context.Background()

		f.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound).Once()

		_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := createTestUserService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Email: "ahmet@example.com", PasswordHash: "hashed"}

		f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil).Once()
		f.hasher.EXPECT().Check("wrong", "hashed").Return(false).Once()

		_, err := f.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound).Once()

	_, err := f.service.GetUser(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_EnsureAdmin_PromotesExisting(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "admin@motovibe.tr"}

	f.userRepo.EXPECT().FindByEmail(ctx, "admin@motovibe.tr").Return(existing, nil).Once()
	f.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.IsAdmin })).
		Return(nil).Once()

	err := f.service.EnsureAdmin(ctx, &usecase.RegisterInput{Email: "admin@motovibe.tr", Password: "admin123"})

	require.NoError(t, err)
}

func TestUserService_EnsureAdmin_CreatesMissing(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "admin@motovibe.tr").Return(nil, repository.ErrUserNotFound).Times(2)
	f.hasher.EXPECT().Hash("admin123").Return("hashed", nil).Once()
	f.runInTx().Once()
	f.txUsers.EXPECT().FindByEmail(ctx, "admin@motovibe.tr").Return(nil, repository.ErrUserNotFound).Once()
	f.txUsers.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.IsAdmin && u.Name == "MotoVibe Admin" })).
		Return(nil).Once()
	f.txLogs.EXPECT().Append(ctx, mock.Anything).Return(nil).Once()

	err := f.service.EnsureAdmin(ctx, &usecase.RegisterInput{Email: "admin@motovibe.tr", Password: "admin123"})

	require.NoError(t, err)
}

func TestUserService_EnsureAdmin_NoEmailIsNoop(t *testing.T) {
	f := createTestUserService(t)

	require.NoError(t, f.service.EnsureAdmin(context.Background(), &usecase.RegisterInput{}))
}
