package storefront

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/umithief/motovibe6/config"
	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/service"
	"github.com/umithief/motovibe6/internal/errors"
	"github.com/umithief/motovibe6/internal/infra/auth"
	"github.com/umithief/motovibe6/internal/infra/persistence/bolt"
	"github.com/umithief/motovibe6/internal/infra/pubsub"
	"github.com/umithief/motovibe6/internal/infra/qrcode"
	"github.com/umithief/motovibe6/internal/usecase"
	"github.com/umithief/motovibe6/internal/usecase/impl"
)

const settingLocalSecret = "local_token_secret"

// localBackend runs the use cases in process over the embedded store. It
// enforces the same token checks as the API server.
type localBackend struct {
	tokens    service.TokenService
	users     usecase.UserUsecase
	catalog   usecase.CatalogUsecase
	orders    usecase.OrderUsecase
	forum     usecase.ForumUsecase
	analytics usecase.AnalyticsUsecase
	logs      usecase.ActivityLogUsecase
	publisher service.EventPublisher
	logger    *slog.Logger

	seedMu sync.Mutex
	seeded bool
}

// NewLocalBackend wires the use cases to the bolt store in db. Without a
// configured access secret a random one is generated and kept in the store so
// saved sessions stay valid across runs.
func NewLocalBackend(db *bbolt.DB, cfg *config.Config, logger *slog.Logger) (Backend, error) {
	loc, err := cfg.LoadLocation()
	if err != nil {
		return nil, err
	}

	localCfg := *cfg
	if localCfg.SecretKey.Access == "" {
		secret, err := loadOrCreateSecret(bolt.NewSettingsStore(db))
		if err != nil {
			return nil, err
		}
		localCfg.SecretKey.Access = secret
	}

	tokens, err := auth.NewJWTService(&localCfg)
	if err != nil {
		return nil, err
	}

	clock := service.NewSystemClock(loc)
	txManager := bolt.NewTransactionManager(db)
	logRepo := bolt.NewActivityLogRepository(db)
	publisher := pubsub.NewNoopPublisher(logger)

	b := &localBackend{
		tokens: tokens,
		users: impl.NewUserService(impl.UserServiceParams{
			TxManager:    txManager,
			UserRepo:     bolt.NewUserRepository(db),
			LogRepo:      logRepo,
			Hasher:       auth.NewBcryptHasher(&localCfg),
			TokenService: tokens,
			Clock:        clock,
			Logger:       logger,
		}),
		catalog: impl.NewCatalogService(impl.CatalogServiceParams{
			ProductRepo:  bolt.NewProductRepository(db),
			CategoryRepo: bolt.NewCategoryRepository(db),
			SlideRepo:    bolt.NewSlideRepository(db),
			Clock:        clock,
			Logger:       logger,
		}),
		orders: impl.NewOrderService(impl.OrderServiceParams{
			TxManager: txManager,
			OrderRepo: bolt.NewOrderRepository(db),
			Publisher: publisher,
			QRService: qrcode.NewQRCodeService(&localCfg),
			Codes:     impl.NewOrderCodeGenerator(),
			Clock:     clock,
			Config:    &localCfg,
			Logger:    logger,
		}),
		forum: impl.NewForumService(impl.ForumServiceParams{
			TopicRepo: bolt.NewForumTopicRepository(db),
			Clock:     clock,
			Logger:    logger,
		}),
		analytics: impl.NewAnalyticsService(impl.AnalyticsServiceParams{
			EventRepo: bolt.NewAnalyticsEventRepository(db),
			VisitRepo: bolt.NewVisitRepository(db),
			Clock:     clock,
			Logger:    logger,
		}),
		logs: impl.NewActivityLogService(impl.ActivityLogServiceParams{
			LogRepo: logRepo,
			Clock:   clock,
			Config:  &localCfg,
			Logger:  logger,
		}),
		publisher: publisher,
		logger:    logger,
	}

	if localCfg.Auth != nil && localCfg.Auth.Admin != nil && localCfg.Auth.Admin.Email != "" {
		admin := localCfg.Auth.Admin
		err := b.users.EnsureAdmin(context.Background(), &usecase.RegisterInput{
			Name:     admin.Name,
			Email:    admin.Email,
			Password: admin.Password,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to bootstrap admin")
		}
	}

	return b, nil
}

func loadOrCreateSecret(settings *bolt.SettingsStore) (string, error) {
	var secret string
	err := settings.Get(settingLocalSecret, &secret)
	if err == nil && secret != "" {
		return secret, nil
	}
	if err != nil && !errors.Is(err, bolt.ErrSettingNotFound) {
		return "", errors.Wrap(err, "failed to read local secret")
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate local secret")
	}
	secret = hex.EncodeToString(buf)

	if err := settings.Put(settingLocalSecret, secret); err != nil {
		return "", errors.Wrap(err, "failed to store local secret")
	}

	return secret, nil
}

// ensureSeeded fills an empty store with the default catalog and board on the
// first read. A failed attempt is retried on the next read.
func (b *localBackend) ensureSeeded(ctx context.Context) error {
	b.seedMu.Lock()
	defer b.seedMu.Unlock()

	if b.seeded {
		return nil
	}

	if _, err := b.catalog.SeedDefaults(ctx); err != nil {
		return errors.Wrap(err, "failed to seed catalog")
	}
	if _, err := b.forum.SeedDefaults(ctx); err != nil {
		return errors.Wrap(err, "failed to seed forum")
	}
	b.seeded = true

	return nil
}

func (b *localBackend) identify(token string) (*service.Claims, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := b.tokens.ValidateToken(token)
	if err != nil || claims.UserID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}

func isAdmin(claims *service.Claims) bool {
	return entity.RolesFromStrings(claims.Roles).Contains(entity.RoleAdmin)
}

func (b *localBackend) requireAdmin(token string) error {
	claims, err := b.identify(token)
	if err != nil {
		return err
	}
	if !isAdmin(claims) {
		return domainerrors.ErrForbidden
	}

	return nil
}

func (b *localBackend) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	if err := b.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	return b.catalog.ListProducts(ctx)
}

func (b *localBackend) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if err := b.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	return b.catalog.GetProduct(ctx, id)
}

func (b *localBackend) CreateProduct(ctx context.Context, token string, input *usecase.ProductInput) (*entity.Product, error) {
	if err := b.requireAdmin(token); err != nil {
		return nil, err
	}

	return b.catalog.CreateProduct(ctx, input)
}

func (b *localBackend) UpdateProduct(ctx context.Context, token string, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := b.requireAdmin(token); err != nil {
		return nil, err
	}

	return b.catalog.UpdateProduct(ctx, id, input)
}

func (b *localBackend) DeleteProduct(ctx context.Context, token string, id uuid.UUID) error {
	if err := b.requireAdmin(token); err != nil {
		return err
	}

	return b.catalog.DeleteProduct(ctx, id)
}

func (b *localBackend) ListCategories(ctx context.Context) ([]*entity.CategoryItem, error) {
	if err := b.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	return b.catalog.ListCategories(ctx)
}

func (b *localBackend) CreateCategory(ctx context.Context, token string, input *usecase.CategoryInput) (*entity.CategoryItem, error) {
	if err := b.requireAdmin(token); err != nil {
		return nil, err
	}

	return b.catalog.CreateCategory(ctx, input)
}

func (b *localBackend) UpdateCategory(ctx context.Context, token string, id uuid.UUID, input *usecase.CategoryInput) (*entity.CategoryItem, error) {
	if err := b.requireAdmin(token); err != nil {
		return nil, err
	}

	return b.catalog.UpdateCategory(ctx, id, input)
}

func (b *localBackend) DeleteCategory(ctx context.Context, token string, id uuid.UUID) error {
	if err := b.requireAdmin(token); err != nil {
		return err
	}

	return b.catalog.DeleteCategory(ctx, id)
}

func (b *localBackend) ListSlides(ctx context.Context) ([]*entity.Slide, error) {
	if err := b.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	return b.catalog.ListSlides(ctx)
}

func (b *localBackend) CreateSlide(ctx context.Context, token string, input *usecase.SlideInput) (*entity.Slide, error) {
	if err := b.requireAdmin(token); err != nil {
		return nil, err
	}

	return b.catalog.CreateSlide(ctx, input)
}

func (b *localBackend) UpdateSlide(ctx context.Context, token string, id uuid.UUID, input *usecase.SlideInput) (*entity.Slide, error) {
	if err := b.requireAdmin(token); err != nil {
		return nil, err
	}

	return b.catalog.UpdateSlide(ctx, id, input)
}

func (b *localBackend) DeleteSlide(ctx context.Context, token string, id uuid.UUID) error {
	if err := b.requireAdmin(token); err != nil {
		return err
	}

	return b.catalog.DeleteSlide(ctx, id)
}

func (b *localBackend) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	return b.users.Register(ctx, input)
}

func (b *localBackend) Login(ctx context.Context, input *usecase.LoginInput) (*entity.AuthSession, error) {
	return b.users.Login(ctx, input)
}

func (b *localBackend) PlaceOrder(ctx context.Context, token string, items []entity.OrderItem) (*entity.Order, error) {
	claims, err := b.identify(token)
	if err != nil {
		return nil, err
	}

	return b.orders.PlaceOrder(ctx, &usecase.PlaceOrderInput{UserID: claims.UserID, Items: items})
}

func (b *localBackend) ListOrders(ctx context.Context, token string, userID *uuid.UUID) ([]*entity.Order, error) {
	claims, err := b.identify(token)
	if err != nil {
		return nil, err
	}

	if !isAdmin(claims) {
		if userID != nil && *userID != claims.UserID {
			return nil, domainerrors.ErrForbidden
		}
		userID = &claims.UserID
	}

	return b.orders.ListOrders(ctx, entity.OrderFilter{UserID: userID})
}

func (b *localBackend) GetOrder(ctx context.Context, token string, id uuid.UUID) (*entity.Order, error) {
	claims, err := b.identify(token)
	if err != nil {
		return nil, err
	}

	order, err := b.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != claims.UserID && !isAdmin(claims) {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

func (b *localBackend) UpdateOrderStatus(ctx context.Context, token string, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if err := b.requireAdmin(token); err != nil {
		return nil, err
	}

	return b.orders.UpdateStatus(ctx, id, status)
}

func (b *localBackend) ListTopics(ctx context.Context) ([]*entity.ForumTopic, error) {
	if err := b.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	return b.forum.ListTopics(ctx)
}

func (b *localBackend) CreateTopic(ctx context.Context, token string, input *usecase.CreateTopicInput) (*entity.ForumTopic, error) {
	claims, err := b.identify(token)
	if err != nil {
		return nil, err
	}

	in := *input
	in.AuthorID, in.AuthorName = claims.UserID, claims.Name

	return b.forum.CreateTopic(ctx, &in)
}

func (b *localBackend) AddComment(ctx context.Context, token string, topicID uuid.UUID, content string) (*entity.ForumComment, error) {
	claims, err := b.identify(token)
	if err != nil {
		return nil, err
	}

	return b.forum.AddComment(ctx, &usecase.AddCommentInput{
		TopicID:    topicID,
		AuthorID:   claims.UserID,
		AuthorName: claims.Name,
		Content:    content,
	})
}

func (b *localBackend) LikeTopic(ctx context.Context, id uuid.UUID) error {
	return b.forum.LikeTopic(ctx, id)
}

func (b *localBackend) ViewTopic(ctx context.Context, id uuid.UUID) error {
	return b.forum.ViewTopic(ctx, id)
}

func (b *localBackend) TrackEvent(ctx context.Context, token string, event *entity.AnalyticsEvent) error {
	ev := *event
	ev.UserID = nil
	if token != "" {
		if claims, err := b.identify(token); err == nil {
			ev.UserID = &claims.UserID
			ev.UserName = claims.Name
		}
	}

	return b.analytics.TrackEvent(ctx, &ev)
}

func (b *localBackend) Dashboard(ctx context.Context, token string, r entity.TimeRange) (*entity.Dashboard, error) {
	if err := b.requireAdmin(token); err != nil {
		return nil, err
	}

	return b.analytics.Dashboard(ctx, r)
}

func (b *localBackend) RecordVisit(ctx context.Context) error {
	return b.analytics.RecordVisit(ctx)
}

func (b *localBackend) VisitorStats(ctx context.Context) (*entity.VisitorStats, error) {
	return b.analytics.VisitorStats(ctx)
}

func (b *localBackend) ActivityLogs(ctx context.Context, token string, limit int) ([]*entity.ActivityLog, error) {
	if err := b.requireAdmin(token); err != nil {
		return nil, err
	}

	return b.logs.ListRecent(ctx, limit)
}

// Close releases the publisher. The store belongs to the caller.
func (b *localBackend) Close() error {
	return b.publisher.Close()
}
