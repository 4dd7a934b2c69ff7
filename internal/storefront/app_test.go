package storefront

import (
	"context"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/umithief/motovibe6/internal/domain/cart"
	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/errors"
	"github.com/umithief/motovibe6/internal/infra/persistence/bolt"
	"github.com/umithief/motovibe6/internal/usecase"
)

type appFixture struct {
	app      *App
	backend  Backend
	notifier *Notifier
	db       *bbolt.DB
}

func newAppFixture(t *testing.T, wrap func(Backend) Backend) *appFixture {
	t.Helper()

	db := openTestStore(t)
	backend := newTestLocalBackend(t, db)
	if wrap != nil {
		backend = wrap(backend)
	}
	notifier := NewNotifier(EventBus.New(), time.Hour)
	app := NewApp(backend, NewPreferences(bolt.NewSettingsStore(db)), notifier, discardLogger())
	require.NoError(t, app.Start(context.Background()))

	return &appFixture{app: app, backend: backend, notifier: notifier, db: db}
}

func (f *appFixture) firstProduct(t *testing.T) entity.Product {
	t.Helper()

	products, err := f.backend.ListProducts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)

	return *products[0]
}

func (f *appFixture) login(t *testing.T, remember bool) *entity.User {
	t.Helper()

	user, err := f.app.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Ayşe",
		Email:    "ayse@motovibe.test",
		Password: "secret-pass",
	}, remember)
	require.NoError(t, err)

	return user
}

func (f *appFixture) lastToast(t *testing.T) Toast {
	t.Helper()

	toasts := f.notifier.Active()
	require.NotEmpty(t, toasts)

	return toasts[len(toasts)-1]
}

type failingOrders struct {
	Backend
	err error
}

func (f failingOrders) PlaceOrder(context.Context, string, []entity.OrderItem) (*entity.Order, error) {
	return nil, f.err
}

type blockingOrders struct {
	Backend
	started chan struct{}
	release chan struct{}
}

func (b blockingOrders) PlaceOrder(ctx context.Context, token string, items []entity.OrderItem) (*entity.Order, error) {
	close(b.started)
	<-b.release

	return b.Backend.PlaceOrder(ctx, token, items)
}

func TestApp_AddToCartNotifies(t *testing.T) {
	f := newAppFixture(t, nil)
	product := f.firstProduct(t)

	assert.Equal(t, cart.OutcomeAdded, f.app.AddToCart(context.Background(), product))
	assert.Equal(t, ToastSuccess, f.lastToast(t).Type)
	assert.Contains(t, f.lastToast(t).Message, product.Name)

	assert.Equal(t, cart.OutcomeUpdated, f.app.AddToCart(context.Background(), product))
	assert.Equal(t, "Sepet güncellendi.", f.lastToast(t).Message)

	assert.Equal(t, 2, f.app.CartCount())
	assert.True(t, product.Price.Mul(decimal.NewFromInt(2)).Equal(f.app.CartTotal()))

	assert.True(t, f.app.UpdateQuantity(product.ID, -5))
	assert.Equal(t, 1, f.app.CartCount())
	assert.False(t, f.app.UpdateQuantity(uuid.New(), 1))

	assert.True(t, f.app.RemoveFromCart(product.ID))
	assert.Equal(t, ToastInfo, f.lastToast(t).Type)
	assert.Empty(t, f.app.CartItems())
}

func TestApp_GuestCheckoutOpensAuthPrompt(t *testing.T) {
	ctx := context.Background()
	f := newAppFixture(t, nil)
	f.app.AddToCart(ctx, f.firstProduct(t))
	f.app.OpenModal(ModalCart)

	err := f.app.StartCheckout(ctx)
	require.ErrorIs(t, err, ErrAuthRequired)
	assert.True(t, f.app.IsOpen(ModalAuth))
	assert.False(t, f.app.IsOpen(ModalCart))
	assert.False(t, f.app.IsOpen(ModalPayment))
	assert.Equal(t, 1, f.app.CartCount())

	_, err = f.app.ConfirmPayment(ctx)
	require.ErrorIs(t, err, ErrAuthRequired)
}

func TestApp_EmptyCartCheckoutIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newAppFixture(t, nil)
	f.login(t, false)

	require.NoError(t, f.app.StartCheckout(ctx))
	assert.False(t, f.app.IsOpen(ModalPayment))

	order, err := f.app.ConfirmPayment(ctx)
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestApp_CheckoutSuccess(t *testing.T) {
	ctx := context.Background()
	f := newAppFixture(t, nil)
	user := f.login(t, false)
	product := f.firstProduct(t)

	f.app.AddToCart(ctx, product)
	f.app.AddToCart(ctx, product)
	require.NoError(t, f.app.StartCheckout(ctx))
	require.True(t, f.app.IsOpen(ModalPayment))

	order, err := f.app.ConfirmPayment(ctx)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, entity.OrderStatusPreparing, order.Status)
	assert.True(t, product.Price.Mul(decimal.NewFromInt(2)).Equal(order.Total))
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	assert.Zero(t, f.app.CartCount())
	assert.False(t, f.app.IsOpen(ModalPayment))
	assert.Equal(t, ViewProfile, f.app.View())
	assert.Equal(t, ToastSuccess, f.lastToast(t).Type)

	orders, err := f.backend.ListOrders(ctx, f.app.Token(), nil)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestApp_RepeatCheckoutLeavesEarlierOrderAlone(t *testing.T) {
	ctx := context.Background()
	f := newAppFixture(t, nil)
	f.login(t, false)

	products, err := f.backend.ListProducts(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(products), 2)
	helmet, jacket := *products[0], *products[1]

	f.app.AddToCart(ctx, helmet)
	require.NoError(t, f.app.StartCheckout(ctx))
	first, err := f.app.ConfirmPayment(ctx)
	require.NoError(t, err)
	firstTotal := first.Total

	f.app.AddToCart(ctx, helmet)
	f.app.AddToCart(ctx, helmet)
	f.app.AddToCart(ctx, jacket)
	require.NoError(t, f.app.StartCheckout(ctx))
	second, err := f.app.ConfirmPayment(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Code, second.Code)
	assert.True(t, helmet.Price.Equal(first.Total))
	assert.True(t, helmet.Price.Mul(decimal.NewFromInt(2)).Add(jacket.Price).Equal(second.Total))

	admin := adminLogin(t, f.backend)
	_, err = f.backend.UpdateProduct(ctx, admin.AccessToken, helmet.ID, &usecase.ProductInput{
		Name:        helmet.Name,
		Description: helmet.Description,
		Price:       helmet.Price.Add(decimal.NewFromInt(1000)),
		Category:    helmet.Category,
		Image:       helmet.Image,
		Images:      helmet.Images,
		Rating:      helmet.Rating,
		Features:    helmet.Features,
		Stock:       helmet.Stock,
	})
	require.NoError(t, err)

	reread, err := f.backend.GetOrder(ctx, f.app.Token(), first.ID)
	require.NoError(t, err)
	assert.True(t, firstTotal.Equal(reread.Total))
	require.Len(t, reread.Items, 1)
	assert.Equal(t, helmet.ID, reread.Items[0].ProductID)
	assert.Equal(t, 1, reread.Items[0].Quantity)
	assert.True(t, helmet.Price.Equal(reread.Items[0].Price))

	orders, err := f.backend.ListOrders(ctx, f.app.Token(), nil)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestApp_RejectedSessionAtCheckoutAsksForLogin(t *testing.T) {
	ctx := context.Background()
	db := openTestStore(t)
	backend := newTestLocalBackend(t, db)
	prefs := NewPreferences(bolt.NewSettingsStore(db))
	require.NoError(t, prefs.SaveSession(&entity.AuthSession{
		User:        &entity.User{ID: uuid.New(), Name: "Ayşe", Email: "ayse@motovibe.test"},
		AccessToken: "expired-or-foreign-token",
	}, true))

	notifier := NewNotifier(EventBus.New(), time.Hour)
	app := NewApp(backend, prefs, notifier, discardLogger())
	require.NoError(t, app.Start(ctx))
	require.NotNil(t, app.Session())

	products, err := backend.ListProducts(ctx)
	require.NoError(t, err)
	app.AddToCart(ctx, *products[0])
	require.NoError(t, app.StartCheckout(ctx))

	order, err := app.ConfirmPayment(ctx)
	assert.Nil(t, order)
	require.ErrorIs(t, err, ErrAuthRequired)

	assert.Nil(t, app.Session())
	assert.True(t, app.IsOpen(ModalAuth))
	assert.False(t, app.IsOpen(ModalPayment))
	assert.Equal(t, 1, app.CartCount())
	toasts := notifier.Active()
	require.NotEmpty(t, toasts)
	assert.Equal(t, ToastInfo, toasts[len(toasts)-1].Type)

	remembered, err := NewPreferences(bolt.NewSettingsStore(db)).Session()
	require.NoError(t, err)
	assert.Nil(t, remembered)

	_, err = app.ConfirmPayment(ctx)
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestApp_CheckoutFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("backend unavailable")
	f := newAppFixture(t, func(b Backend) Backend { return failingOrders{Backend: b, err: boom} })
	f.login(t, false)

	f.app.AddToCart(ctx, f.firstProduct(t))
	require.NoError(t, f.app.StartCheckout(ctx))

	_, err := f.app.ConfirmPayment(ctx)
	require.ErrorIs(t, err, boom)

	assert.Equal(t, 1, f.app.CartCount())
	assert.True(t, f.app.IsOpen(ModalPayment))
	assert.Equal(t, ToastError, f.lastToast(t).Type)
	assert.Equal(t, ViewHome, f.app.View())
}

func TestApp_OneCheckoutAtATime(t *testing.T) {
	ctx := context.Background()
	blocking := blockingOrders{started: make(chan struct{}), release: make(chan struct{})}
	f := newAppFixture(t, func(b Backend) Backend {
		blocking.Backend = b
		return blocking
	})
	f.login(t, false)
	f.app.AddToCart(ctx, f.firstProduct(t))

	done := make(chan error, 1)
	go func() {
		_, err := f.app.ConfirmPayment(ctx)
		done <- err
	}()
	<-blocking.started

	_, err := f.app.ConfirmPayment(ctx)
	require.ErrorIs(t, err, ErrCheckoutInProgress)

	close(blocking.release)
	require.NoError(t, <-done)
	assert.Zero(t, f.app.CartCount())
}

func TestApp_RememberMe(t *testing.T) {
	t.Run("remembered session survives a restart", func(t *testing.T) {
		f := newAppFixture(t, nil)
		user := f.login(t, true)

		restored, err := NewPreferences(bolt.NewSettingsStore(f.db)).Session()
		require.NoError(t, err)
		require.NotNil(t, restored)
		assert.Equal(t, user.ID, restored.User.ID)
		assert.Equal(t, f.app.Token(), restored.AccessToken)
	})

	t.Run("session without remember stays in memory", func(t *testing.T) {
		f := newAppFixture(t, nil)
		f.login(t, false)
		assert.NotEmpty(t, f.app.Token())

		restored, err := NewPreferences(bolt.NewSettingsStore(f.db)).Session()
		require.NoError(t, err)
		assert.Nil(t, restored)
	})

	t.Run("logout forgets the session", func(t *testing.T) {
		f := newAppFixture(t, nil)
		f.login(t, true)
		f.app.Navigate(ViewForum)

		require.NoError(t, f.app.Logout())
		assert.Nil(t, f.app.Session())
		assert.Equal(t, ViewHome, f.app.View())

		restored, err := NewPreferences(bolt.NewSettingsStore(f.db)).Session()
		require.NoError(t, err)
		assert.Nil(t, restored)
	})
}

func TestApp_LoginFailureShowsMessage(t *testing.T) {
	f := newAppFixture(t, nil)

	_, err := f.app.Login(context.Background(), "nobody@motovibe.test", "wrong-pass", false)
	require.Error(t, err)
	assert.Equal(t, ToastError, f.lastToast(t).Type)
	assert.Equal(t, "E-posta veya şifre hatalı.", f.lastToast(t).Message)
	assert.Nil(t, f.app.Session())
}

func TestApp_ToggleFavorite(t *testing.T) {
	f := newAppFixture(t, nil)
	id := f.firstProduct(t).ID

	_, err := f.app.ToggleFavorite(id)
	require.ErrorIs(t, err, ErrAuthRequired)
	assert.True(t, f.app.IsOpen(ModalAuth))

	f.login(t, false)

	added, err := f.app.ToggleFavorite(id)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []uuid.UUID{id}, f.app.Favorites())

	saved, err := NewPreferences(bolt.NewSettingsStore(f.db)).Favorites()
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, saved)

	added, err = f.app.ToggleFavorite(id)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, f.app.Favorites())
}

func TestApp_TracksAnalytics(t *testing.T) {
	ctx := context.Background()
	f := newAppFixture(t, nil)
	product := f.firstProduct(t)

	f.app.ViewProduct(ctx, &product)
	assert.Equal(t, ViewProductDetail, f.app.View())
	assert.Equal(t, product.ID, f.app.SelectedProduct().ID)

	f.app.AddToCart(ctx, product)
	_ = f.app.StartCheckout(ctx)

	f.app.now = func() time.Time { return time.Now().Add(90 * time.Second) }
	f.app.Close(ctx)

	admin := adminLogin(t, f.backend)
	dashboard, err := f.backend.Dashboard(ctx, admin.AccessToken, entity.Range24h)
	require.NoError(t, err)
	assert.Equal(t, 1, dashboard.TotalProductViews)
	assert.Equal(t, 1, dashboard.TotalAddToCart)
	assert.Equal(t, 1, dashboard.TotalCheckouts)
	assert.InDelta(t, 90, dashboard.AvgSessionDuration, 1)

	stats, err := f.backend.VisitorStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalVisits)
}

func TestNotifier_AutoDismiss(t *testing.T) {
	bus := EventBus.New()
	notifier := NewNotifier(bus, 10*time.Millisecond)

	var seen []Toast
	require.NoError(t, notifier.Subscribe(func(toast Toast) { seen = append(seen, toast) }))

	dismissed := make(chan uuid.UUID, 1)
	require.NoError(t, bus.Subscribe(TopicToastDismissed, func(id uuid.UUID) { dismissed <- id }))

	toast := notifier.Notify(ToastWarning, "Stok azaldı.")
	require.Len(t, seen, 1)
	assert.Equal(t, toast.ID, seen[0].ID)

	select {
	case id := <-dismissed:
		assert.Equal(t, toast.ID, id)
	case <-time.After(time.Second):
		t.Fatal("toast was not dismissed")
	}
	assert.Empty(t, notifier.Active())
}
