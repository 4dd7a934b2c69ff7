package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/umithief/motovibe6/config"
	"github.com/umithief/motovibe6/internal/domain/constants"
	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/domain/service"
	mockRepo "github.com/umithief/motovibe6/internal/mocks/repository"
	mockSvc "github.com/umithief/motovibe6/internal/mocks/service"
	"github.com/umithief/motovibe6/internal/usecase"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service    usecase.OrderUsecase
	txManager  *mockRepo.MockTransactionManager
	orderRepo  *mockRepo.MockOrderRepository
	publisher  *mockSvc.MockEventPublisher
	qrService  *mockSvc.MockQRCodeService
	codes      *mockSvc.MockOrderCodeGenerator
	factory    *mockRepo.MockRepositoryFactory
	txProducts *mockRepo.MockProductRepository
	txOrders   *mockRepo.MockOrderRepository
	txLogs     *mockRepo.MockActivityLogRepository
}

func createTestOrderService(t *testing.T, codeAttempts int) orderServiceFixtures {
	f := orderServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		orderRepo:  mockRepo.NewMockOrderRepository(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
		qrService:  mockSvc.NewMockQRCodeService(t),
		codes:      mockSvc.NewMockOrderCodeGenerator(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		txProducts: mockRepo.NewMockProductRepository(t),
		txOrders:   mockRepo.NewMockOrderRepository(t),
		txLogs:     mockRepo.NewMockActivityLogRepository(t),
	}

	f.service = NewOrderService(OrderServiceParams{
		TxManager: f.txManager,
		OrderRepo: f.orderRepo,
		Publisher: f.publisher,
		QRService: f.qrService,
		Codes:     f.codes,
		Clock:     newFixedClock(t),
		Config:    newTestConfig(codeAttempts),
		Logger:    newDiscardLogger(),
	})

	f.factory.EXPECT().NewProductRepository().Return(f.txProducts).Maybe()
	f.factory.EXPECT().NewOrderRepository().Return(f.txOrders).Maybe()
	f.factory.EXPECT().NewActivityLogRepository().Return(f.txLogs).Maybe()

	return f
}

// runInTx makes Execute invoke the callback with the fixture's factory.
func (f orderServiceFixtures) runInTx() *mockRepo.MockTransactionManager_Execute_Call {
	return f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

// listInCatalog makes the transaction's product repository return a product
// matching each line item.
func (f orderServiceFixtures) listInCatalog(items ...entity.OrderItem) {
	for _, item := range items {
		f.txProducts.EXPECT().FindByID(mock.Anything, item.ProductID).Return(&entity.Product{
			ID:       item.ProductID,
			Name:     item.Name,
			Price:    item.Price,
			Image:    "https://cdn.motovibe.tr/" + item.ProductID.String() + ".jpg",
			Category: entity.CategoryHelmet,
			Stock:    10,
		}, nil).Maybe()
	}
}

func cartItems() (entity.OrderItem, entity.OrderItem) {
	helmet := entity.OrderItem{
		ProductID: uuid.New(),
		Name:      "AGV Pista GP RR",
		Price:     decimal.NewFromInt(15000),
		Quantity:  1,
	}
	gloves := entity.OrderItem{
		ProductID: uuid.New(),
		Name:      "Alpinestars GP Pro R3",
		Price:     decimal.NewFromInt(1900),
		Quantity:  2,
	}

	return helmet, gloves
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	f := createTestOrderService(t, 3)
	ctx := context.Background()
	userID := uuid.New()
	helmet, gloves := cartItems()

	f.codes.EXPECT().Next(2024).Return("MV-2024-0042").Once()
	f.runInTx().Once()
	f.listInCatalog(helmet, gloves)
	f.txProducts.EXPECT().AdjustStock(ctx, helmet.ProductID, -1).Return(nil).Once()
	f.txProducts.EXPECT().AdjustStock(ctx, gloves.ProductID, -2).Return(nil).Once()
	f.txOrders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	f.txLogs.EXPECT().
		Append(ctx, mock.MatchedBy(func(l *entity.ActivityLog) bool {
			return l.Type == entity.LogSuccess && l.Event == "Yeni Sipariş" &&
				l.Details == "Sipariş No: MV-2024-0042 - Tutar: ₺18800"
		})).
		Return(nil).Once()
	f.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == constants.OrderEventCreated && e.OrderCode == "MV-2024-0042" && e.Total == "18800"
		})).
		Return(nil).Once()

	order, err := f.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID: userID,
		Items:  []entity.OrderItem{helmet, gloves},
	})

	require.NoError(t, err)
	assert.Equal(t, "MV-2024-0042", order.Code)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, entity.OrderStatusPreparing, order.Status)
	assert.True(t, decimal.NewFromInt(18800).Equal(order.Total))
	assert.Len(t, order.Items, 2)
	assert.Equal(t, testNow, order.Date)
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	f := createTestOrderService(t, 3)

	order, err := f.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{UserID: uuid.New()})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyOrder)
}

func TestOrderService_PlaceOrder_Anonymous(t *testing.T) {
	f := createTestOrderService(t, 3)
	helmet, _ := cartItems()

	_, err := f.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{Items: []entity.OrderItem{helmet}})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestOrderService_PlaceOrder_InvalidQuantity(t *testing.T) {
	f := createTestOrderService(t, 3)
	helmet, _ := cartItems()
	helmet.Quantity = 0

	_, err := f.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		UserID: uuid.New(),
		Items:  []entity.OrderItem{helmet},
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	f := createTestOrderService(t, 3)
	ctx := context.Background()
	helmet, gloves := cartItems()

	f.codes.EXPECT().Next(2024).Return("MV-2024-0001").Once()
	f.runInTx().Once()
	f.listInCatalog(helmet, gloves)
	f.txProducts.EXPECT().AdjustStock(ctx, helmet.ProductID, -1).Return(nil).Once()
	f.txProducts.EXPECT().AdjustStock(ctx, gloves.ProductID, -2).Return(repository.ErrInsufficientStock).Once()

	order, err := f.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID: uuid.New(),
		Items:  []entity.OrderItem{helmet, gloves},
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	f.txOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_RetriesOnCodeCollision(t *testing.T) {
	f := createTestOrderService(t, 3)
	ctx := context.Background()
	helmet, _ := cartItems()

	f.codes.EXPECT().Next(2024).Return("MV-2024-0001").Once()
	f.codes.EXPECT().Next(2024).Return("MV-2024-0002").Once()
	f.runInTx().Twice()
	f.listInCatalog(helmet)
	f.txProducts.EXPECT().AdjustStock(ctx, helmet.ProductID, -1).Return(nil).Twice()
	f.txOrders.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.Code == "MV-2024-0001" })).
		Return(repository.ErrOrderCodeTaken).Once()
	f.txOrders.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.Code == "MV-2024-0002" })).
		Return(nil).Once()
	f.txLogs.EXPECT().Append(ctx, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil).Once()

	order, err := f.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID: uuid.New(),
		Items:  []entity.OrderItem{helmet},
	})

	require.NoError(t, err)
	assert.Equal(t, "MV-2024-0002", order.Code)
}

func TestOrderService_PlaceOrder_CodesExhausted(t *testing.T) {
	f := createTestOrderService(t, 2)
	ctx := context.Background()
	helmet, _ := cartItems()

	f.codes.EXPECT().Next(2024).Return("MV-2024-0001").Twice()
	f.runInTx().Twice()
	f.listInCatalog(helmet)
	f.txProducts.EXPECT().AdjustStock(ctx, helmet.ProductID, -1).Return(nil).Twice()
	f.txOrders.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrOrderCodeTaken).Twice()

	_, err := f.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID: uuid.New(),
		Items:  []entity.OrderItem{helmet},
	})

	assert.ErrorIs(t, err, domainerrors.ErrOrderCodeExhausted)
}

func TestOrderService_PlaceOrder_PublishFailureIsIgnored(t *testing.T) {
	f := createTestOrderService(t, 1)
	ctx := context.Background()
	helmet, _ := cartItems()

	f.codes.EXPECT().Next(2024).Return("MV-2024-0100").Once()
	f.runInTx().Once()
	f.listInCatalog(helmet)
	f.txProducts.EXPECT().AdjustStock(ctx, helmet.ProductID, -1).Return(nil).Once()
	f.txOrders.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	f.txLogs.EXPECT().Append(ctx, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down")).Once()

	order, err := f.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID: uuid.New(),
		Items:  []entity.OrderItem{helmet},
	})

	require.NoError(t, err)
	assert.Equal(t, "MV-2024-0100", order.Code)
}

func TestOrderService_PlaceOrder_PricesFromCatalog(t *testing.T) {
	f := createTestOrderService(t, 1)
	ctx := context.Background()
	helmet, _ := cartItems()
	f.listInCatalog(helmet)

	tampered := helmet
	tampered.Price = decimal.NewFromInt(1)
	tampered.Name = "Bedava kask"
	tampered.Quantity = 2

	f.codes.EXPECT().Next(2024).Return("MV-2024-0077").Once()
	f.runInTx().Once()
	f.txProducts.EXPECT().AdjustStock(ctx, helmet.ProductID, -2).Return(nil).Once()
	f.txOrders.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.Total.Equal(decimal.NewFromInt(30000)) && o.Items[0].Price.Equal(decimal.NewFromInt(15000))
		})).
		Return(nil).Once()
	f.txLogs.EXPECT().Append(ctx, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool { return e.Total == "30000" })).
		Return(nil).Once()

	order, err := f.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID: uuid.New(),
		Items:  []entity.OrderItem{tampered},
	})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30000).Equal(order.Total))
	require.Len(t, order.Items, 1)
	assert.Equal(t, "AGV Pista GP RR", order.Items[0].Name)
	assert.NotEmpty(t, order.Items[0].Image)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestOrderService_PlaceOrder_UnknownProduct(t *testing.T) {
	f := createTestOrderService(t, 1)
	ctx := context.Background()
	helmet, _ := cartItems()

	f.codes.EXPECT().Next(2024).Return("MV-2024-0078").Once()
	f.runInTx().Once()
	f.txProducts.EXPECT().FindByID(ctx, helmet.ProductID).Return(nil, repository.ErrProductNotFound).Once()

	order, err := f.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID: uuid.New(),
		Items:  []entity.OrderItem{helmet},
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	f.txOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_PricesFromCatalogWithoutStockChecks(t *testing.T) {
	f := createTestOrderService(t, 1)
	f.service = NewOrderService(OrderServiceParams{
		TxManager: f.txManager,
		OrderRepo: f.orderRepo,
		Publisher: f.publisher,
		QRService: f.qrService,
		Codes:     f.codes,
		Clock:     newFixedClock(t),
		Config:    &config.Config{Checkout: &config.CheckoutConfig{EnforceStock: false, CodeAttempts: 1}},
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()
	_, gloves := cartItems()
	f.listInCatalog(gloves)

	tampered := gloves
	tampered.Price = decimal.Zero

	f.codes.EXPECT().Next(2024).Return("MV-2024-0079").Once()
	f.runInTx().Once()
	f.txOrders.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	f.txLogs.EXPECT().Append(ctx, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil).Once()

	order, err := f.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID: uuid.New(),
		Items:  []entity.OrderItem{tampered},
	})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(3800).Equal(order.Total))
	f.txProducts.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_DefaultCodeAttempts(t *testing.T) {
	f := createTestOrderService(t, 1)
	f.service = NewOrderService(OrderServiceParams{
		TxManager: f.txManager,
		OrderRepo: f.orderRepo,
		Publisher: f.publisher,
		QRService: f.qrService,
		Codes:     f.codes,
		Clock:     newFixedClock(t),
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()
	helmet, _ := cartItems()
	f.listInCatalog(helmet)
	taken := config.DefaultCodeAttempts - 1

	f.codes.EXPECT().Next(2024).Return("MV-2024-0001").Times(taken)
	f.codes.EXPECT().Next(2024).Return("MV-2024-0002").Once()
	f.runInTx().Times(config.DefaultCodeAttempts)
	f.txProducts.EXPECT().AdjustStock(ctx, helmet.ProductID, -1).Return(nil).Times(config.DefaultCodeAttempts)
	f.txOrders.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.Code == "MV-2024-0001" })).
		Return(repository.ErrOrderCodeTaken).Times(taken)
	f.txOrders.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.Code == "MV-2024-0002" })).
		Return(nil).Once()
	f.txLogs.EXPECT().Append(ctx, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil).Once()

	order, err := f.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID: uuid.New(),
		Items:  []entity.OrderItem{helmet},
	})

	require.NoError(t, err)
	assert.Equal(t, "MV-2024-0002", order.Code)
}

func newStoredOrder(status entity.OrderStatus) *entity.Order {
	helmet, gloves := cartItems()

	return &entity.Order{
		ID:     uuid.New(),
		Code:   "MV-2024-0042",
		UserID: uuid.New(),
		Status: status,
		Items:  []entity.OrderItem{helmet, gloves},
		Total:  decimal.NewFromInt(18800),
	}
}

func TestOrderService_UpdateStatus_Ship(t *testing.T) {
	f := createTestOrderService(t, 1)
	ctx := context.Background()
	stored := newStoredOrder(entity.OrderStatusPreparing)

	f.runInTx().Once()
	f.txOrders.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil).Once()
	f.txOrders.EXPECT().UpdateStatus(ctx, stored.ID, entity.OrderStatusShipped).Return(nil).Once()
	f.txLogs.EXPECT().
		Append(ctx, mock.MatchedBy(func(l *entity.ActivityLog) bool {
			return l.Details == "Sipariş No: MV-2024-0042 - Kargoda"
		})).
		Return(nil).Once()
	f.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == constants.OrderEventStatusChanged && e.Previous == "preparing" && e.Status == "shipped"
		})).
		Return(nil).Once()

	order, err := f.service.UpdateStatus(ctx, stored.ID, entity.OrderStatusShipped)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
	f.txProducts.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus_SameStatusIsNoop(t *testing.T) {
	f := createTestOrderService(t, 1)
	ctx := context.Background()
	stored := newStoredOrder(entity.OrderStatusShipped)

	f.runInTx().Once()
	f.txOrders.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil).Once()

	order, err := f.service.UpdateStatus(ctx, stored.ID, entity.OrderStatusShipped)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
	f.txOrders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus_BackwardsRejected(t *testing.T) {
	f := createTestOrderService(t, 1)
	ctx := context.Background()
	stored := newStoredOrder(entity.OrderStatusDelivered)

	f.runInTx().Once()
	f.txOrders.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil).Once()

	order, err := f.service.UpdateStatus(ctx, stored.ID, entity.OrderStatusPreparing)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestOrderService_UpdateStatus_CancelRestocks(t *testing.T) {
	f := createTestOrderService(t, 1)
	ctx := context.Background()
	stored := newStoredOrder(entity.OrderStatusPreparing)
	helmet, gloves := stored.Items[0], stored.Items[1]

	f.runInTx().Once()
	f.txOrders.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil).Once()
	f.txProducts.EXPECT().AdjustStock(ctx, helmet.ProductID, 1).Return(repository.ErrProductNotFound).Once()
	f.txProducts.EXPECT().AdjustStock(ctx, gloves.ProductID, 2).Return(nil).Once()
	f.txOrders.EXPECT().UpdateStatus(ctx, stored.ID, entity.OrderStatusCancelled).Return(nil).Once()
	f.txLogs.EXPECT().Append(ctx, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil).Once()

	order, err := f.service.UpdateStatus(ctx, stored.ID, entity.OrderStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	f := createTestOrderService(t, 1)

	_, err := f.service.UpdateStatus(context.Background(), uuid.New(), entity.OrderStatus("lost"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	f := createTestOrderService(t, 1)
	ctx := context.Background()
	id := uuid.New()

	f.runInTx().Once()
	f.txOrders.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOrderNotFound).Once()

	_, err := f.service.UpdateStatus(ctx, id, entity.OrderStatusShipped)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	f := createTestOrderService(t, 1)
	ctx := context.Background()
	id := uuid.New()

	f.orderRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOrderNotFound).Once()

	_, err := f.service.GetOrder(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders_ForUser(t *testing.T) {
	f := createTestOrderService(t, 1)
	ctx := context.Background()
	userID := uuid.New()
	filter := entity.OrderFilter{UserID: &userID}
	stored := []*entity.Order{newStoredOrder(entity.OrderStatusPreparing)}

	f.orderRepo.EXPECT().List(ctx, filter).Return(stored, nil).Once()

	orders, err := f.service.ListOrders(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, stored, orders)
}

func TestOrderService_TrackingQR(t *testing.T) {
	f := createTestOrderService(t, 1)
	ctx := context.Background()
	stored := newStoredOrder(entity.OrderStatusShipped)
	png := []byte{0x89, 'P', 'N', 'G'}

	f.orderRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil).Once()
	f.qrService.EXPECT().GenerateOrderQR(stored.ID, stored.Code).Return(png, nil).Once()

	got, err := f.service.TrackingQR(ctx, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestRandomCodeGenerator_Format(t *testing.T) {
	gen := NewOrderCodeGenerator()

	for range 50 {
		assert.Regexp(t, `^MV-2024-\d{4}$`, gen.Next(2024))
	}
}
