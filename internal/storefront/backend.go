// Package storefront is the client-side application core: the state
// container behind the CLI and the storage port it talks to.
package storefront

import (
	"context"

	"github.com/google/uuid"

	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/usecase"
)

// Backend modes.
const (
	ModeLocal  = "local"
	ModeRemote = "remote"
)

// CatalogBackend reads and edits the product catalog and homepage content.
// Mutations require an admin token.
type CatalogBackend interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, token string, input *usecase.ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, token string, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, token string, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]*entity.CategoryItem, error)
	CreateCategory(ctx context.Context, token string, input *usecase.CategoryInput) (*entity.CategoryItem, error)
	UpdateCategory(ctx context.Context, token string, id uuid.UUID, input *usecase.CategoryInput) (*entity.CategoryItem, error)
	DeleteCategory(ctx context.Context, token string, id uuid.UUID) error

	ListSlides(ctx context.Context) ([]*entity.Slide, error)
	CreateSlide(ctx context.Context, token string, input *usecase.SlideInput) (*entity.Slide, error)
	UpdateSlide(ctx context.Context, token string, id uuid.UUID, input *usecase.SlideInput) (*entity.Slide, error)
	DeleteSlide(ctx context.Context, token string, id uuid.UUID) error
}

// AccountBackend creates and authenticates accounts.
type AccountBackend interface {
	Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *usecase.LoginInput) (*entity.AuthSession, error)
}

// OrderBackend places and tracks orders. A nil userID lists every order and
// is only honoured for admins.
type OrderBackend interface {
	PlaceOrder(ctx context.Context, token string, items []entity.OrderItem) (*entity.Order, error)
	ListOrders(ctx context.Context, token string, userID *uuid.UUID) ([]*entity.Order, error)
	GetOrder(ctx context.Context, token string, id uuid.UUID) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, token string, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}

// ForumBackend serves the community board. Author fields of input are taken
// from the token.
type ForumBackend interface {
	ListTopics(ctx context.Context) ([]*entity.ForumTopic, error)
	CreateTopic(ctx context.Context, token string, input *usecase.CreateTopicInput) (*entity.ForumTopic, error)
	AddComment(ctx context.Context, token string, topicID uuid.UUID, content string) (*entity.ForumComment, error)
	LikeTopic(ctx context.Context, id uuid.UUID) error
	ViewTopic(ctx context.Context, id uuid.UUID) error
}

// AnalyticsBackend records visits and events and serves the admin reports.
// TrackEvent accepts an empty token for guests.
type AnalyticsBackend interface {
	TrackEvent(ctx context.Context, token string, event *entity.AnalyticsEvent) error
	Dashboard(ctx context.Context, token string, r entity.TimeRange) (*entity.Dashboard, error)
	RecordVisit(ctx context.Context) error
	VisitorStats(ctx context.Context) (*entity.VisitorStats, error)
	ActivityLogs(ctx context.Context, token string, limit int) ([]*entity.ActivityLog, error)
}

// Backend is the storage port of the storefront. Implementations are chosen
// once at startup; there is no fallback from one to the other.
type Backend interface {
	CatalogBackend
	AccountBackend
	OrderBackend
	ForumBackend
	AnalyticsBackend

	Close() error
}
