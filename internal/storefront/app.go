package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/umithief/motovibe6/internal/domain/cart"
	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/errors"
	"github.com/umithief/motovibe6/internal/usecase"
)

var (
	// ErrAuthRequired is returned when an action needs a signed-in user. The
	// auth prompt has been opened by the time it is returned.
	ErrAuthRequired = errors.New("authentication required")
	// ErrCheckoutInProgress is returned while an earlier payment is still
	// being submitted.
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// View is the screen the storefront is showing.
type View string

const (
	ViewHome          View = "home"
	ViewShop          View = "shop"
	ViewFavorites     View = "favorites"
	ViewProductDetail View = "product_detail"
	ViewProfile       View = "profile"
	ViewAbout         View = "about"
	ViewForum         View = "forum"
	ViewAdmin         View = "admin_panel"
)

type Modal string

const (
	ModalCart    Modal = "cart"
	ModalAuth    Modal = "auth"
	ModalPayment Modal = "payment"
)

// App owns the storefront state. Every mutation goes through one of its
// methods; it is safe for concurrent use.
type App struct {
	backend  Backend
	prefs    *Preferences
	notifier *Notifier
	logger   *slog.Logger
	now      func() time.Time

	mu          sync.Mutex
	cart        *cart.Cart
	session     *entity.AuthSession
	view        View
	modals      map[Modal]bool
	favorites   []uuid.UUID
	selected    *entity.Product
	checkingOut bool
	startedAt   time.Time
}

func NewApp(backend Backend, prefs *Preferences, notifier *Notifier, logger *slog.Logger) *App {
	return &App{
		backend:   backend,
		prefs:     prefs,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
		cart:      cart.New(),
		view:      ViewHome,
		modals:    make(map[Modal]bool),
		favorites: []uuid.UUID{},
	}
}

// Start restores the saved session and favorites and counts the visit.
func (a *App) Start(ctx context.Context) error {
	session, err := a.prefs.Session()
	if err != nil {
		return err
	}
	favorites, err := a.prefs.Favorites()
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.session = session
	a.favorites = favorites
	a.startedAt = a.now()
	a.mu.Unlock()

	if err := a.backend.RecordVisit(ctx); err != nil {
		a.logger.Debug("Failed to record visit", slog.Any("error", err))
	}

	return nil
}

// Close reports how long the session lasted.
func (a *App) Close(ctx context.Context) {
	a.mu.Lock()
	started := a.startedAt
	a.mu.Unlock()

	if started.IsZero() {
		return
	}

	seconds := int(math.Round(a.now().Sub(started).Seconds()))
	if seconds <= 0 {
		return
	}

	a.track(ctx, &entity.AnalyticsEvent{Type: entity.EventSessionDuration, Duration: seconds})
}

// track records an event without letting analytics failures reach the user.
func (a *App) track(ctx context.Context, event *entity.AnalyticsEvent) {
	a.mu.Lock()
	token := ""
	if a.session != nil {
		token = a.session.AccessToken
		if a.session.User != nil {
			event.UserName = a.session.User.Name
		}
	}
	a.mu.Unlock()

	if err := a.backend.TrackEvent(ctx, token, event); err != nil {
		a.logger.Debug("Failed to track event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

func (a *App) token() string {
	if a.session == nil {
		return ""
	}

	return a.session.AccessToken
}

// AddToCart puts one unit of product in the cart.
func (a *App) AddToCart(ctx context.Context, product entity.Product) cart.Outcome {
	a.mu.Lock()
	outcome := a.cart.Add(product)
	a.mu.Unlock()

	if outcome == cart.OutcomeUpdated {
		a.notifier.Notify(ToastSuccess, "Sepet güncellendi.")
	} else {
		a.notifier.Notify(ToastSuccess, fmt.Sprintf("%s sepete eklendi.", product.Name))
	}

	productID := product.ID
	a.track(ctx, &entity.AnalyticsEvent{
		Type:        entity.EventAddToCart,
		ProductID:   &productID,
		ProductName: product.Name,
	})

	return outcome
}

// UpdateQuantity changes a cart line by delta, never below one.
func (a *App) UpdateQuantity(id uuid.UUID, delta int) bool {
	a.mu.Lock()
	ok := a.cart.UpdateQuantity(id, delta)
	a.mu.Unlock()

	if ok {
		a.notifier.Notify(ToastInfo, "Sepet güncellendi.")
	}

	return ok
}

func (a *App) RemoveFromCart(id uuid.UUID) bool {
	a.mu.Lock()
	ok := a.cart.Remove(id)
	a.mu.Unlock()

	if ok {
		a.notifier.Notify(ToastInfo, "Ürün sepetten kaldırıldı.")
	}

	return ok
}

func (a *App) CartItems() []cart.Item {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.cart.Items()
}

func (a *App) CartTotal() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.cart.Total()
}

func (a *App) CartCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.cart.Count()
}

// StartCheckout moves from the cart to the payment step. Guests get the auth
// prompt instead. An empty cart does nothing.
func (a *App) StartCheckout(ctx context.Context) error {
	a.track(ctx, &entity.AnalyticsEvent{Type: entity.EventCheckoutStart})

	a.mu.Lock()
	if a.session == nil {
		a.modals[ModalCart] = false
		a.modals[ModalAuth] = true
		a.mu.Unlock()
		a.notifier.Notify(ToastInfo, "Ödeme yapmak için lütfen giriş yapın.")

		return ErrAuthRequired
	}
	if a.cart.IsEmpty() {
		a.mu.Unlock()
		return nil
	}
	a.modals[ModalCart] = false
	a.modals[ModalPayment] = true
	a.mu.Unlock()

	return nil
}

// ConfirmPayment submits the cart as an order. On success the cart is cleared
// and the order history is shown. On failure the cart and the payment step
// stay as they were so the user can retry. An empty cart returns a nil order.
func (a *App) ConfirmPayment(ctx context.Context) (*entity.Order, error) {
	a.mu.Lock()
	if a.session == nil {
		a.modals[ModalAuth] = true
		a.mu.Unlock()
		return nil, ErrAuthRequired
	}
	if a.checkingOut {
		a.mu.Unlock()
		return nil, ErrCheckoutInProgress
	}
	if a.cart.IsEmpty() {
		a.mu.Unlock()
		return nil, nil
	}
	a.checkingOut = true
	token := a.session.AccessToken
	items := a.cart.Snapshot()
	a.mu.Unlock()

	order, err := a.backend.PlaceOrder(ctx, token, items)

	if errors.Is(err, domainerrors.ErrUnauthorized) {
		return nil, a.expireSession(err)
	}

	a.mu.Lock()
	a.checkingOut = false
	if err != nil {
		a.modals[ModalPayment] = true
		a.mu.Unlock()
		a.logger.Warn("Checkout failed", slog.Any("error", err))
		a.notifier.Notify(ToastError, "Sipariş oluşturulurken bir hata oluştu.")

		return nil, err
	}
	a.cart.Clear()
	a.modals[ModalPayment] = false
	a.view = ViewProfile
	a.mu.Unlock()

	a.notifier.Notify(ToastSuccess, "Siparişiniz başarıyla oluşturuldu!")

	return order, nil
}

// expireSession drops a session the backend no longer accepts and asks the
// user to sign in again. The cart is kept for the retry.
func (a *App) expireSession(cause error) error {
	if err := a.prefs.ClearSession(); err != nil {
		a.logger.Warn("Failed to clear expired session", slog.Any("error", err))
	}

	a.mu.Lock()
	a.checkingOut = false
	a.session = nil
	a.modals[ModalPayment] = false
	a.modals[ModalAuth] = true
	a.mu.Unlock()

	a.logger.Info("Session rejected at checkout", slog.Any("error", cause))
	a.notifier.Notify(ToastInfo, "Oturumunuzun süresi doldu, lütfen tekrar giriş yapın.")

	return ErrAuthRequired
}

// Login signs the user in. With remember set the session survives restarts.
func (a *App) Login(ctx context.Context, email, password string, remember bool) (*entity.User, error) {
	session, err := a.backend.Login(ctx, &usecase.LoginInput{Email: email, Password: password})
	if err != nil {
		a.notifier.Notify(ToastError, userMessage(err))
		return nil, err
	}

	if err := a.prefs.SaveSession(session, remember); err != nil {
		a.logger.Warn("Failed to persist session", slog.Any("error", err))
	}

	a.mu.Lock()
	a.session = session
	a.modals[ModalAuth] = false
	a.mu.Unlock()

	a.notifier.Notify(ToastSuccess, fmt.Sprintf("Hoşgeldin, %s!", session.User.Name))

	return session.User, nil
}

// Register creates the account and signs it in.
func (a *App) Register(ctx context.Context, input *usecase.RegisterInput, remember bool) (*entity.User, error) {
	if _, err := a.backend.Register(ctx, input); err != nil {
		a.notifier.Notify(ToastError, userMessage(err))
		return nil, err
	}

	return a.Login(ctx, input.Email, input.Password, remember)
}

func (a *App) Logout() error {
	err := a.prefs.ClearSession()

	a.mu.Lock()
	a.session = nil
	a.view = ViewHome
	a.mu.Unlock()

	a.notifier.Notify(ToastInfo, "Başarıyla çıkış yapıldı.")

	return err
}

// Session returns the signed-in session or nil.
func (a *App) Session() *entity.AuthSession {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.session
}

// Token is the access token of the signed-in user, empty for guests.
func (a *App) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.token()
}

// ToggleFavorite adds or removes a product from the favorites and reports
// whether it is now a favorite. Guests get the auth prompt.
func (a *App) ToggleFavorite(productID uuid.UUID) (bool, error) {
	a.mu.Lock()
	if a.session == nil {
		a.modals[ModalAuth] = true
		a.mu.Unlock()
		return false, ErrAuthRequired
	}

	previous := slices.Clone(a.favorites)
	added := true
	if i := slices.Index(a.favorites, productID); i >= 0 {
		a.favorites = slices.Delete(a.favorites, i, i+1)
		added = false
	} else {
		a.favorites = append(a.favorites, productID)
	}
	current := slices.Clone(a.favorites)
	a.mu.Unlock()

	if err := a.prefs.SaveFavorites(current); err != nil {
		a.mu.Lock()
		a.favorites = previous
		a.mu.Unlock()
		a.notifier.Notify(ToastError, "Favoriler kaydedilemedi.")

		return false, err
	}

	if added {
		a.notifier.Notify(ToastSuccess, "Favorilere eklendi.")
	} else {
		a.notifier.Notify(ToastInfo, "Favorilerden çıkarıldı.")
	}

	return added, nil
}

func (a *App) Favorites() []uuid.UUID {
	a.mu.Lock()
	defer a.mu.Unlock()

	return slices.Clone(a.favorites)
}

// ViewProduct opens the detail view of product.
func (a *App) ViewProduct(ctx context.Context, product *entity.Product) {
	a.mu.Lock()
	a.selected = product
	a.view = ViewProductDetail
	a.mu.Unlock()

	productID := product.ID
	a.track(ctx, &entity.AnalyticsEvent{
		Type:        entity.EventViewProduct,
		ProductID:   &productID,
		ProductName: product.Name,
	})
}

func (a *App) SelectedProduct() *entity.Product {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.selected
}

func (a *App) Navigate(view View) {
	a.mu.Lock()
	a.view = view
	a.mu.Unlock()
}

func (a *App) View() View {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.view
}

func (a *App) OpenModal(m Modal) {
	a.mu.Lock()
	a.modals[m] = true
	a.mu.Unlock()
}

func (a *App) CloseModal(m Modal) {
	a.mu.Lock()
	a.modals[m] = false
	a.mu.Unlock()
}

func (a *App) IsOpen(m Modal) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.modals[m]
}

// userMessage picks the text a toast should show for err.
func userMessage(err error) string {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.Message()
	}

	return "Beklenmeyen bir hata oluştu."
}
