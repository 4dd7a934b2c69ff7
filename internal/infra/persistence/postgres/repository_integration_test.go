package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/infra/persistence/model"
)

// openTestDB connects to MOTOVIBE_TEST_POSTGRES_DSN and recreates the schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("MOTOVIBE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("Skipping postgres test: MOTOVIBE_TEST_POSTGRES_DSN env var not set")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{TranslateError: true, SkipDefaultTransaction: true})
	require.NoError(t, err)

	all := model.All()
	for i := len(all) - 1; i >= 0; i-- {
		require.NoError(t, db.Migrator().DropTable(all[i]))
	}
	require.NoError(t, db.AutoMigrate(all...))

	return db
}

func newTestProduct(stock int) *entity.Product {
	now := time.Now().UTC().Truncate(time.Millisecond)

	return &entity.Product{
		ID:        uuid.New(),
		Name:      "Shoei NXR2",
		Price:     decimal.RequireFromString("18500.00"),
		Category:  entity.CategoryHelmet,
		Image:     "https://img/kask.jpg",
		Images:    []string{"https://img/kask.jpg"},
		Features:  []string{"ECE 22.06"},
		Rating:    4.8,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPostgres_AdjustStock(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	p := newTestProduct(3)
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.AdjustStock(ctx, p.ID, -2))
	assert.ErrorIs(t, repo.AdjustStock(ctx, p.ID, -2), repository.ErrInsufficientStock)
	assert.ErrorIs(t, repo.AdjustStock(ctx, uuid.New(), 1), repository.ErrProductNotFound)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock)
	assert.True(t, p.Price.Equal(got.Price))
	assert.Equal(t, []string{"ECE 22.06"}, got.Features)
}

func TestPostgres_AdjustStockConcurrent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	p := newTestProduct(5)
	require.NoError(t, repo.Create(ctx, p))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if repo.AdjustStock(ctx, p.ID, -1) == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, accepted)
	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Stock)
}

func TestPostgres_OrderCodeUnique(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	order := &entity.Order{
		ID:     uuid.New(),
		Code:   "MV-2024-0042",
		UserID: uuid.New(),
		Date:   time.Now().UTC(),
		Status: entity.OrderStatusPreparing,
		Total:  decimal.NewFromInt(100),
		Items:  []entity.OrderItem{{ProductID: uuid.New(), Name: "Eldiven", Price: decimal.NewFromInt(100), Quantity: 1}},
	}
	require.NoError(t, repo.Create(ctx, order))

	dup := *order
	dup.ID = uuid.New()
	assert.ErrorIs(t, repo.Create(ctx, &dup), repository.ErrOrderCodeTaken)

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, entity.OrderStatusShipped))
	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, got.Status)
	assert.Len(t, got.Items, 1)

	mine, err := repo.List(ctx, entity.OrderFilter{UserID: &order.UserID})
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestPostgres_TransactionRollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	p := newTestProduct(2)
	require.NoError(t, NewProductRepository(db).Create(ctx, p))

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.NewProductRepository().AdjustStock(ctx, p.ID, -1))

		return f.NewProductRepository().AdjustStock(ctx, p.ID, -5)
	})
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)

	got, err := NewProductRepository(db).FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)
}

func TestPostgres_ForumAndVisits(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	forum := NewForumTopicRepository(db)
	topic := &entity.ForumTopic{ID: uuid.New(), Title: "Rota", Content: "Karadeniz", Category: entity.ForumTravel, Date: time.Now().UTC()}
	require.NoError(t, forum.Create(ctx, topic))
	require.NoError(t, forum.AppendComment(ctx, topic.ID, &entity.ForumComment{ID: uuid.New(), Content: "Süper", Date: time.Now().UTC()}))
	require.NoError(t, forum.IncrementLikes(ctx, topic.ID))
	assert.ErrorIs(t, forum.IncrementViews(ctx, uuid.New()), repository.ErrTopicNotFound)
	assert.ErrorIs(t, forum.AppendComment(ctx, uuid.New(), &entity.ForumComment{ID: uuid.New()}), repository.ErrTopicNotFound)

	got, err := forum.FindByID(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Likes)
	assert.Len(t, got.Comments, 1)

	visits := NewVisitRepository(db)
	require.NoError(t, visits.Increment(ctx, "2024-03-09"))
	require.NoError(t, visits.Increment(ctx, "2024-03-10"))
	require.NoError(t, visits.Increment(ctx, "2024-03-10"))
	stats, err := visits.Stats(ctx, "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalVisits)
	assert.Equal(t, int64(2), stats.TodayVisits)
}
