package storefront

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
	"golang.org/x/crypto/bcrypt"

	"github.com/umithief/motovibe6/config"
	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/seed"
	"github.com/umithief/motovibe6/internal/infra/persistence/bolt"
	"github.com/umithief/motovibe6/internal/usecase"
)

const (
	adminEmail    = "admin@motovibe.test"
	adminPassword = "admin-secret"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: bcrypt.MinCost,
			Admin: &config.AdminConfig{
				Name:     "Admin",
				Email:    adminEmail,
				Password: adminPassword,
			},
		},
		Checkout: &config.CheckoutConfig{EnforceStock: true, CodeAttempts: 5},
	}
}

func openTestStore(t *testing.T) *bbolt.DB {
	t.Helper()

	db, err := bolt.Open(filepath.Join(t.TempDir(), "motovibe.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func newTestLocalBackend(t *testing.T, db *bbolt.DB) Backend {
	t.Helper()

	backend, err := NewLocalBackend(db, testConfig(), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	return backend
}

func registerAndLogin(t *testing.T, backend Backend, name, email string) *entity.AuthSession {
	t.Helper()
	ctx := context.Background()

	_, err := backend.Register(ctx, &usecase.RegisterInput{Name: name, Email: email, Password: "secret-pass"})
	require.NoError(t, err)

	session, err := backend.Login(ctx, &usecase.LoginInput{Email: email, Password: "secret-pass"})
	require.NoError(t, err)

	return session
}

func adminLogin(t *testing.T, backend Backend) *entity.AuthSession {
	t.Helper()

	session, err := backend.Login(context.Background(), &usecase.LoginInput{Email: adminEmail, Password: adminPassword})
	require.NoError(t, err)
	require.True(t, session.User.IsAdmin)

	return session
}

func TestLocalBackend_SeedsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	backend := newTestLocalBackend(t, openTestStore(t))

	products, err := backend.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, len(seed.Products(time.Now())))

	again, err := backend.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, again, len(products))

	topics, err := backend.ListTopics(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, topics)

	slides, err := backend.ListSlides(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, slides)
}

func TestLocalBackend_AdminMutations(t *testing.T) {
	ctx := context.Background()
	backend := newTestLocalBackend(t, openTestStore(t))
	user := registerAndLogin(t, backend, "Ayşe", "ayse@motovibe.test")
	admin := adminLogin(t, backend)

	input := &usecase.CategoryInput{Name: "Botlar", Type: entity.CategoryBoots, Image: "boots.jpg"}

	_, err := backend.CreateCategory(ctx, "", input)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = backend.CreateCategory(ctx, "not-a-token", input)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = backend.CreateCategory(ctx, user.AccessToken, input)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	created, err := backend.CreateCategory(ctx, admin.AccessToken, input)
	require.NoError(t, err)
	assert.Equal(t, "Botlar", created.Name)

	require.NoError(t, backend.DeleteCategory(ctx, admin.AccessToken, created.ID))
}

func TestLocalBackend_OrdersAreScopedToOwner(t *testing.T) {
	ctx := context.Background()
	backend := newTestLocalBackend(t, openTestStore(t))

	products, err := backend.ListProducts(ctx)
	require.NoError(t, err)
	product := products[0]

	owner := registerAndLogin(t, backend, "Ayşe", "ayse@motovibe.test")
	other := registerAndLogin(t, backend, "Mehmet", "mehmet@motovibe.test")
	admin := adminLogin(t, backend)

	order, err := backend.PlaceOrder(ctx, owner.AccessToken, []entity.OrderItem{{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  1,
		Image:     product.Image,
	}})
	require.NoError(t, err)
	assert.Equal(t, owner.User.ID, order.UserID)
	assert.Equal(t, entity.OrderStatusPreparing, order.Status)

	_, err = backend.PlaceOrder(ctx, "", order.Items)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = backend.GetOrder(ctx, other.AccessToken, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	got, err := backend.GetOrder(ctx, admin.AccessToken, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Code, got.Code)

	mine, err := backend.ListOrders(ctx, other.AccessToken, nil)
	require.NoError(t, err)
	assert.Empty(t, mine)

	_, err = backend.ListOrders(ctx, other.AccessToken, &owner.User.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	all, err := backend.ListOrders(ctx, admin.AccessToken, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = backend.UpdateOrderStatus(ctx, owner.AccessToken, order.ID, entity.OrderStatusShipped)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	shipped, err := backend.UpdateOrderStatus(ctx, admin.AccessToken, order.ID, entity.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, shipped.Status)
}

func TestLocalBackend_TokensSurviveRestart(t *testing.T) {
	ctx := context.Background()
	db := openTestStore(t)

	first, err := NewLocalBackend(db, testConfig(), discardLogger())
	require.NoError(t, err)
	session := registerAndLogin(t, first, "Ayşe", "ayse@motovibe.test")
	require.NoError(t, first.Close())

	second := newTestLocalBackend(t, db)
	orders, err := second.ListOrders(ctx, session.AccessToken, nil)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestLocalBackend_ForumAuthorComesFromToken(t *testing.T) {
	ctx := context.Background()
	backend := newTestLocalBackend(t, openTestStore(t))
	user := registerAndLogin(t, backend, "Ayşe", "ayse@motovibe.test")

	topic, err := backend.CreateTopic(ctx, user.AccessToken, &usecase.CreateTopicInput{
		AuthorName: "someone else",
		Title:      "Zincir yağı önerisi",
		Content:    "Hangi marka zincir yağını kullanıyorsunuz?",
		Category:   entity.ForumTechnical,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ayşe", topic.AuthorName)
	assert.Equal(t, user.User.ID, topic.AuthorID)

	comment, err := backend.AddComment(ctx, user.AccessToken, topic.ID, "Ben de merak ediyorum.")
	require.NoError(t, err)
	assert.Equal(t, "Ayşe", comment.AuthorName)

	_, err = backend.AddComment(ctx, "", topic.ID, "anonim")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestLocalBackend_ActivityLogsAreAdminOnly(t *testing.T) {
	ctx := context.Background()
	backend := newTestLocalBackend(t, openTestStore(t))
	user := registerAndLogin(t, backend, "Ayşe", "ayse@motovibe.test")
	admin := adminLogin(t, backend)

	_, err := backend.ActivityLogs(ctx, user.AccessToken, 10)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	logs, err := backend.ActivityLogs(ctx, admin.AccessToken, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, logs)
}

func TestLocalBackend_OrderPricesComeFromCatalog(t *testing.T) {
	ctx := context.Background()
	backend := newTestLocalBackend(t, openTestStore(t))

	products, err := backend.ListProducts(ctx)
	require.NoError(t, err)
	product := products[0]
	buyer := registerAndLogin(t, backend, "Ayşe", "ayse@motovibe.test")

	order, err := backend.PlaceOrder(ctx, buyer.AccessToken, []entity.OrderItem{{
		ProductID: product.ID,
		Name:      "Bedava kask",
		Price:     decimal.NewFromInt(1),
		Quantity:  2,
		Image:     "fake.jpg",
	}})
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.True(t, product.Price.Equal(order.Items[0].Price))
	assert.Equal(t, product.Name, order.Items[0].Name)
	assert.Equal(t, product.Image, order.Items[0].Image)
	assert.True(t, product.Price.Mul(decimal.NewFromInt(2)).Equal(order.Total))

	stored, err := backend.GetOrder(ctx, buyer.AccessToken, order.ID)
	require.NoError(t, err)
	assert.True(t, order.Total.Equal(stored.Total))
}
