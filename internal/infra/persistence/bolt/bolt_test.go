package bolt

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/domain/repository"
)

var baseTime = time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

func openTestStore(t *testing.T) *bbolt.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "nested", "motovibe.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func newProduct(name string, stock int, created time.Time) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     decimal.RequireFromString("1899.90"),
		Category:  entity.CategoryGloves,
		Images:    []string{"a.jpg"},
		Image:     "a.jpg",
		Features:  []string{},
		Stock:     stock,
		CreatedAt: created,
	}
}

func TestOpen_CreatesBuckets(t *testing.T) {
	db := openTestStore(t)

	err := db.View(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			assert.NotNil(t, tx.Bucket(name), string(name))
		}

		return nil
	})
	require.NoError(t, err)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestStore(t))

	u := &entity.User{ID: uuid.New(), Name: "Ali", Email: "ali@moto.com", PasswordHash: "$2a$hash", JoinDate: baseTime}
	require.NoError(t, repo.Create(ctx, u))

	t.Run("hash survives storage", func(t *testing.T) {
		got, err := repo.FindByEmail(ctx, "ali@moto.com")
		require.NoError(t, err)
		assert.Equal(t, "$2a$hash", got.PasswordHash)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &entity.User{ID: uuid.New(), Email: "ali@moto.com"})
		assert.ErrorIs(t, err, repository.ErrUserEmailTaken)
	})

	t.Run("email change moves index", func(t *testing.T) {
		u.Email = "ali2@moto.com"
		require.NoError(t, repo.Update(ctx, u))

		_, err := repo.FindByEmail(ctx, "ali@moto.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
		got, err := repo.FindByEmail(ctx, "ali2@moto.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.ErrorIs(t, repo.Update(ctx, &entity.User{ID: uuid.New()}), repository.ErrUserNotFound)
	})
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(openTestStore(t))

	second := newProduct("Eldiven", 2, baseTime.Add(time.Hour))
	first := newProduct("Kask", 1, baseTime)
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Kask", list[0].Name)
	assert.True(t, list[1].Price.Equal(decimal.RequireFromString("1899.9")))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, repo.AdjustStock(ctx, second.ID, -2))
	assert.ErrorIs(t, repo.AdjustStock(ctx, second.ID, -1), repository.ErrInsufficientStock)
	assert.ErrorIs(t, repo.AdjustStock(ctx, uuid.New(), 1), repository.ErrProductNotFound)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), repository.ErrProductNotFound)
	assert.ErrorIs(t, repo.Update(ctx, first), repository.ErrProductNotFound)
}

func TestProductRepository_ConcurrentDecrements(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(openTestStore(t))

	p := newProduct("Bot", 3, baseTime)
	require.NoError(t, repo.Create(ctx, p))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for range 10 {
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

	assert.Equal(t, 3, accepted)
	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Stock)
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(openTestStore(t))

	alice, bob := uuid.New(), uuid.New()
	older := &entity.Order{ID: uuid.New(), Code: "MV-2024-0001", UserID: alice, Date: baseTime, Status: entity.OrderStatusPreparing}
	newer := &entity.Order{ID: uuid.New(), Code: "MV-2024-0002", UserID: alice, Date: baseTime.Add(time.Minute), Status: entity.OrderStatusPreparing}
	other := &entity.Order{ID: uuid.New(), Code: "MV-2024-0003", UserID: bob, Date: baseTime, Status: entity.OrderStatusPreparing}
	for _, o := range []*entity.Order{older, newer, other} {
		require.NoError(t, repo.Create(ctx, o))
	}

	dup := *older
	dup.ID = uuid.New()
	assert.ErrorIs(t, repo.Create(ctx, &dup), repository.ErrOrderCodeTaken)

	mine, err := repo.List(ctx, entity.OrderFilter{UserID: &alice})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, newer.ID, mine[0].ID)

	all, err := repo.List(ctx, entity.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.UpdateStatus(ctx, older.ID, entity.OrderStatusShipped))
	got, err := repo.FindByID(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, got.Status)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entity.OrderStatusShipped), repository.ErrOrderNotFound)
}

func TestTransactionManager_RollsBack(t *testing.T) {
	ctx := context.Background()
	db := openTestStore(t)
	products := NewProductRepository(db)

	p := newProduct("Mont", 1, baseTime)
	require.NoError(t, products.Create(ctx, p))

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewProductRepository().AdjustStock(ctx, p.ID, -1); err != nil {
			return err
		}
		if err := f.NewOrderRepository().Create(ctx, &entity.Order{ID: uuid.New(), Code: "MV-2024-0009"}); err != nil {
			return err
		}

		return f.NewProductRepository().AdjustStock(ctx, p.ID, -1)
	})
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)

	got, err := products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock)

	orders, err := NewOrderRepository(db).List(ctx, entity.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestContentRepositories(t *testing.T) {
	ctx := context.Background()
	db := openTestStore(t)

	cats := NewCategoryRepository(db)
	c := &entity.CategoryItem{ID: uuid.New(), Name: "Kasklar", Image: "k.jpg", CreatedAt: baseTime}
	require.NoError(t, cats.Create(ctx, c))

	changed := *c
	changed.Name = "Kask"
	changed.CreatedAt = time.Time{}
	require.NoError(t, cats.Update(ctx, &changed))

	list, err := cats.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Kask", list[0].Name)
	assert.True(t, baseTime.Equal(list[0].CreatedAt))

	slides := NewSlideRepository(db)
	assert.ErrorIs(t, slides.Delete(ctx, uuid.New()), repository.ErrSlideNotFound)
	assert.ErrorIs(t, cats.Delete(ctx, uuid.New()), repository.ErrCategoryNotFound)
}

func TestForumTopicRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewForumTopicRepository(openTestStore(t))

	old := &entity.ForumTopic{ID: uuid.New(), Title: "Eski", Date: baseTime}
	fresh := &entity.ForumTopic{ID: uuid.New(), Title: "Yeni", Date: baseTime.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, fresh))

	require.NoError(t, repo.AppendComment(ctx, old.ID, &entity.ForumComment{ID: uuid.New(), Content: "İlk"}))
	require.NoError(t, repo.AppendComment(ctx, old.ID, &entity.ForumComment{ID: uuid.New(), Content: "İkinci"}))
	require.NoError(t, repo.IncrementLikes(ctx, old.ID))
	require.NoError(t, repo.IncrementViews(ctx, old.ID))
	require.NoError(t, repo.IncrementViews(ctx, old.ID))
	assert.ErrorIs(t, repo.IncrementLikes(ctx, uuid.New()), repository.ErrTopicNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Yeni", list[0].Title)

	got, err := repo.FindByID(ctx, old.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Likes)
	assert.Equal(t, 2, got.Views)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "İkinci", got.Comments[1].Content)
}

func TestAnalyticsRepositories(t *testing.T) {
	ctx := context.Background()
	db := openTestStore(t)

	events := NewAnalyticsEventRepository(db)
	for i, d := range []time.Duration{-48 * time.Hour, -2 * time.Hour, -time.Hour} {
		e := &entity.AnalyticsEvent{ID: uuid.New(), Type: entity.EventViewProduct, Duration: i, Timestamp: baseTime.Add(d)}
		require.NoError(t, events.Append(ctx, e))
	}

	recent, err := events.ListSince(ctx, baseTime.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.True(t, recent[0].Timestamp.Before(recent[1].Timestamp))

	visits := NewVisitRepository(db)
	require.NoError(t, visits.Increment(ctx, "2024-03-09"))
	require.NoError(t, visits.Increment(ctx, "2024-03-10"))
	require.NoError(t, visits.Increment(ctx, "2024-03-10"))
	stats, err := visits.Stats(ctx, "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, &entity.VisitorStats{TotalVisits: 3, TodayVisits: 2}, stats)
}

func TestActivityLogRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityLogRepository(openTestStore(t))

	for i := range 5 {
		l := &entity.ActivityLog{ID: uuid.New(), Type: entity.LogInfo, Event: "e", Timestamp: baseTime.Add(time.Duration(i) * 24 * time.Hour)}
		require.NoError(t, repo.Append(ctx, l))
	}

	latest, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.True(t, latest[0].Timestamp.After(latest[1].Timestamp))

	deleted, err := repo.DeleteBefore(ctx, baseTime.Add(2*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	rest, err := repo.ListRecent(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, rest, 3)
}

func TestSettingsStore(t *testing.T) {
	s := NewSettingsStore(openTestStore(t))

	var favs []string
	assert.ErrorIs(t, s.Get("favorites", &favs), ErrSettingNotFound)

	require.NoError(t, s.Put("favorites", []string{"a", "b"}))
	require.NoError(t, s.Get("favorites", &favs))
	assert.Equal(t, []string{"a", "b"}, favs)

	require.NoError(t, s.Delete("favorites"))
	assert.ErrorIs(t, s.Get("favorites", &favs), ErrSettingNotFound)
}
