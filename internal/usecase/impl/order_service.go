package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/umithief/motovibe6/config"
	deliverycontext "github.com/umithief/motovibe6/internal/delivery/context"
	"github.com/umithief/motovibe6/internal/domain/constants"
	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/domain/service"
	"github.com/umithief/motovibe6/internal/usecase"
)

const (
	logEventNewOrder    = "Yeni Sipariş"
	logEventOrderStatus = "Sipariş Durumu"
)

type orderService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	publisher    service.EventPublisher
	qrService    service.QRCodeService
	codes        service.OrderCodeGenerator
	clock        service.Clock
	enforceStock bool
	codeAttempts int
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	QRService service.QRCodeService
	Codes     service.OrderCodeGenerator
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService creates the order use case.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	enforceStock, codeAttempts := true, config.DefaultCodeAttempts
	if params.Config != nil && params.Config.Checkout != nil {
		enforceStock = params.Config.Checkout.EnforceStock
		if params.Config.Checkout.CodeAttempts > 0 {
			codeAttempts = params.Config.Checkout.CodeAttempts
		}
	}

	return &orderService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		publisher:    params.Publisher,
		qrService:    params.QRService,
		codes:        params.Codes,
		clock:        params.Clock,
		enforceStock: enforceStock,
		codeAttempts: codeAttempts,
		logger:       params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateOrderItems(items []entity.OrderItem) error {
	if len(items) == 0 {
		return domainerrors.ErrEmptyOrder
	}

	for i, item := range items {
		switch {
		case item.ProductID == uuid.Nil:
			return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("items[%d]: productId is required", i))
		case item.Quantity < 1:
			return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("items[%d]: quantity must be at least 1", i))
		}
	}

	return nil
}

// PlaceOrder persists the order and decrements stock in one transaction. Only
// product IDs and quantities are taken from the caller; name, image and price
// are frozen from the catalog inside the transaction. A display code
// collision regenerates the code and retries the whole transaction.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := validateOrderItems(input.Items); err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	order := &entity.Order{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    input.UserID,
		Date:      now,
		Status:    entity.OrderStatusPreparing,
		UpdatedAt: now,
	}

	var err error
	for attempt := range srv.codeAttempts {
		order.Code = srv.codes.Next(now.Year())

		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return srv.placeOrderTx(ctx, repoFactory, order, input.Items)
		})
		if !errors.Is(err, repository.ErrOrderCodeTaken) {
			break
		}

		srv.log(ctx).Warn("Order code collision, regenerating",
			slog.String("code", order.Code), slog.Int("attempt", attempt+1))
	}

	switch {
	case errors.Is(err, repository.ErrOrderCodeTaken):
		return nil, domainerrors.ErrOrderCodeExhausted
	case err != nil:
		srv.log(ctx).Error("Failed to place order", slog.String("userID", input.UserID.String()), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID.String()),
		slog.String("code", order.Code),
		slog.String("total", order.Total.String()),
	)

	srv.publish(ctx, constants.OrderEventCreated, order, "")

	return order, nil
}

func (srv *orderService) placeOrderTx(
	ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order, requested []entity.OrderItem,
) error {
	productRepo := repoFactory.NewProductRepository()

	items, err := freezeOrderItems(ctx, productRepo, requested)
	if err != nil {
		return err
	}
	order.Items = items
	order.Total = entity.ItemsTotal(items)

	if srv.enforceStock {
		for _, item := range items {
			err := productRepo.AdjustStock(ctx, item.ProductID, -item.Quantity)
			switch {
			case errors.Is(err, repository.ErrProductNotFound):
				return domainerrors.ErrProductNotFound.WithDetails(item.Name)
			case errors.Is(err, repository.ErrInsufficientStock):
				return domainerrors.ErrInsufficientStock.WithDetails(item.Name)
			case err != nil:
				return errors.Wrap(err, "failed to adjust stock")
			}
		}
	}

	if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderCodeTaken) {
			return err
		}

		return errors.Wrap(err, "failed to create order")
	}

	return repoFactory.NewActivityLogRepository().Append(ctx, &entity.ActivityLog{
		ID:        uuid.Must(uuid.NewV7()),
		Type:      entity.LogSuccess,
		Event:     logEventNewOrder,
		Details:   fmt.Sprintf("Sipariş No: %s - Tutar: ₺%s", order.Code, order.Total.String()),
		Timestamp: order.Date,
	})
}

// freezeOrderItems copies the current catalog name, image and price of every
// requested product into its line item.
func freezeOrderItems(ctx context.Context, productRepo repository.ProductRepository, requested []entity.OrderItem) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0, len(requested))
	for _, req := range requested {
		product, err := productRepo.FindByID(ctx, req.ProductID)
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, domainerrors.ErrProductNotFound.WithDetails(req.ProductID.String())
		case err != nil:
			return nil, errors.Wrap(err, "failed to load product")
		}

		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  req.Quantity,
			Image:     product.Image,
		})
	}

	return items, nil
}

func (srv *orderService) ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// UpdateStatus applies a forward transition. Re-applying the current status
// returns the order untouched. Cancelling puts the stock back.
func (srv *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown status %q", status))
	}

	var (
		updated  *entity.Order
		previous entity.OrderStatus
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find order")
		}

		previous = order.Status
		updated = order
		if order.Status == status {
			return nil
		}
		if !order.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(fmt.Sprintf("%s -> %s", order.Status, status))
		}

		if status == entity.OrderStatusCancelled && srv.enforceStock {
			if err := srv.restock(ctx, repoFactory.NewProductRepository(), order); err != nil {
				return err
			}
		}

		if err := orderRepo.UpdateStatus(ctx, id, status); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}
		order.Status = status
		order.UpdatedAt = srv.clock.Now()

		return repoFactory.NewActivityLogRepository().Append(ctx, &entity.ActivityLog{
			ID:        uuid.Must(uuid.NewV7()),
			Type:      entity.LogInfo,
			Event:     logEventOrderStatus,
			Details:   fmt.Sprintf("Sipariş No: %s - %s", order.Code, status.Label()),
			Timestamp: order.UpdatedAt,
		})
	})
	if err != nil {
		return nil, err
	}

	if previous != status {
		srv.log(ctx).Info("Order status changed",
			slog.String("orderID", id.String()),
			slog.String("from", string(previous)),
			slog.String("to", string(status)),
		)
		srv.publish(ctx, constants.OrderEventStatusChanged, updated, previous)
	}

	return updated, nil
}

func (srv *orderService) restock(ctx context.Context, productRepo repository.ProductRepository, order *entity.Order) error {
	for _, item := range order.Items {
		err := productRepo.AdjustStock(ctx, item.ProductID, item.Quantity)
		if errors.Is(err, repository.ErrProductNotFound) {
			srv.log(ctx).Warn("Skipping restock of deleted product", slog.String("productID", item.ProductID.String()))

			continue
		}
		if err != nil {
			return errors.Wrap(err, "failed to restock product")
		}
	}

	return nil
}

func (srv *orderService) TrackingQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderQR(order.ID, order.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

// publish is best-effort: the order is already committed.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order, previous entity.OrderStatus) {
	if srv.publisher == nil {
		return
	}

	event := &service.OrderEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      eventType,
		OrderID:   order.ID.String(),
		OrderCode: order.Code,
		UserID:    order.UserID.String(),
		Status:    string(order.Status),
		Previous:  string(previous),
		Total:     order.Total.String(),
		At:        srv.clock.Now(),
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", eventType),
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}
}

type randomCodeGenerator struct{}

// NewOrderCodeGenerator returns the MV-<year>-<4 digits> generator.
func NewOrderCodeGenerator() service.OrderCodeGenerator {
	return randomCodeGenerator{}
}

func (randomCodeGenerator) Next(year int) string {
	return entity.FormatOrderCode(year, rand.IntN(10000))
}
