package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/domain/seed"
	mockRepo "github.com/umithief/motovibe6/internal/mocks/repository"
	"github.com/umithief/motovibe6/internal/usecase"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	slideRepo    *mockRepo.MockSlideRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	slideRepo := mockRepo.NewMockSlideRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		SlideRepo:    slideRepo,
		Clock:        newFixedClock(t),
		Logger:       newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		slideRepo:    slideRepo,
	}
}

func validProductInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:     "  Shoei NXR 2  ",
		Price:    decimal.NewFromInt(15000),
		Category: entity.CategoryHelmet,
		Images:   []string{"", "https://img.example/nxr2-front.jpg", "https://img.example/nxr2-side.jpg"},
		Rating:   4.8,
		Stock:    5,
	}
}

func TestCatalogService_CreateProduct_NormalizesGallery(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil).Once()

	product, err := f.service.CreateProduct(ctx, validProductInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Shoei NXR 2", product.Name)
	assert.Equal(t, "https://img.example/nxr2-front.jpg", product.Image)
	assert.Len(t, product.Images, 2)
	assert.Equal(t, testNow, product.CreatedAt)
}

func TestCatalogService_CreateProduct_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.ProductInput)
	}{
		{name: "zero price", mutate: func(in *usecase.ProductInput) { in.Price = decimal.Zero }},
		{name: "blank name", mutate: func(in *usecase.ProductInput) { in.Name = "   " }},
		{name: "rating above five", mutate: func(in *usecase.ProductInput) { in.Rating = 5.5 }},
		{name: "negative stock", mutate: func(in *usecase.ProductInput) { in.Stock = -1 }},
		{name: "unknown category", mutate: func(in *usecase.ProductInput) { in.Category = "Lastik" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCatalogService(t)
			input := validProductInput()
			tt.mutate(input)

			product, err := f.service.CreateProduct(context.Background(), input)

			assert.Nil(t, product)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	f.productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound).Once()

	_, err := f.service.UpdateProduct(ctx, id, validProductInput())

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_UpdateProduct_KeepsCreatedAt(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	created := testNow.AddDate(0, -1, 0)
	stored := &entity.Product{ID: uuid.New(), Name: "Old", CreatedAt: created}

	f.productRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil).Once()
	f.productRepo.EXPECT().Update(ctx, stored).Return(nil).Once()

	product, err := f.service.UpdateProduct(ctx, stored.ID, validProductInput())

	require.NoError(t, err)
	assert.Equal(t, created, product.CreatedAt)
	assert.Equal(t, testNow, product.UpdatedAt)
	assert.Equal(t, 5, product.Stock)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	f.productRepo.EXPECT().Delete(ctx, id).Return(repository.ErrProductNotFound).Once()

	err := f.service.DeleteProduct(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateCategory_RequiresImage(t *testing.T) {
	f := createTestCatalogService(t)

	_, err := f.service.CreateCategory(context.Background(), &usecase.CategoryInput{Name: "Kasklar"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateSlide(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.slideRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Slide")).Return(nil).Once()

	slide, err := f.service.CreateSlide(ctx, &usecase.SlideInput{
		Image:  "https://img.example/hero.jpg",
		Title:  "Yeni Sezon",
		Action: entity.SlideActionShop,
	})

	require.NoError(t, err)
	assert.Equal(t, "Yeni Sezon", slide.Title)
	assert.Equal(t, testNow, slide.CreatedAt)
}

func TestCatalogService_DeleteSlide_NotFound(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	f.slideRepo.EXPECT().Delete(ctx, id).Return(repository.ErrSlideNotFound).Once()

	err := f.service.DeleteSlide(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrSlideNotFound)
}

func TestCatalogService_SeedDefaults_EmptyStore(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().Count(ctx).Return(0, nil).Once()
	f.productRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Times(len(seed.Products(testNow)))
	f.categoryRepo.EXPECT().List(ctx).Return(nil, nil).Once()
	f.categoryRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Times(len(seed.Categories(testNow)))
	f.slideRepo.EXPECT().List(ctx).Return(nil, nil).Once()
	f.slideRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Times(len(seed.Slides(testNow)))

	seeded, err := f.service.SeedDefaults(ctx)

	require.NoError(t, err)
	assert.True(t, seeded)
}

func TestCatalogService_SeedDefaults_LeavesExistingData(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().Count(ctx).Return(3, nil).Once()
	f.categoryRepo.EXPECT().List(ctx).Return([]*entity.CategoryItem{{ID: uuid.New()}}, nil).Once()
	f.slideRepo.EXPECT().List(ctx).Return([]*entity.Slide{{ID: uuid.New()}}, nil).Once()

	seeded, err := f.service.SeedDefaults(ctx)

	require.NoError(t, err)
	assert.False(t, seeded)
}
