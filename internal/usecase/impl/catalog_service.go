// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/umithief/motovibe6/internal/delivery/context"
	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/repository"
	"github.com/umithief/motovibe6/internal/domain/seed"
	"github.com/umithief/motovibe6/internal/domain/service"
	"github.com/umithief/motovibe6/internal/usecase"
)

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	slideRepo    repository.SlideRepository
	clock        service.Clock
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	SlideRepo    repository.SlideRepository
	Clock        service.Clock
	Logger       *slog.Logger
}

// NewCatalogService creates the catalog use case.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		slideRepo:    params.SlideRepo,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func applyProductInput(p *entity.Product, input *usecase.ProductInput) error {
	p.Name = input.Name
	p.Description = input.Description
	p.Price = input.Price
	p.Category = input.Category
	p.Image = input.Image
	p.Images = append([]string(nil), input.Images...)
	p.Rating = input.Rating
	p.Features = append([]string(nil), input.Features...)
	p.Stock = input.Stock

	p.Normalize()
	if err := p.Validate(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	now := srv.clock.Now()
	product := &entity.Product{
		ID:        uuid.Must(uuid.NewV7()),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyProductInput(product, input); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("productID", product.ID.String()), slog.String("name", product.Name))

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyProductInput(product, input); err != nil {
		return nil, err
	}
	product.UpdatedAt = srv.clock.Now()

	err = srv.productRepo.Update(ctx, product)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := srv.productRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return errors.Wrap(err, "failed to delete product")
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.CategoryItem, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func validateCategoryInput(input *usecase.CategoryInput) error {
	if strings.TrimSpace(input.Image) == "" || strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("image and name are required")
	}

	return nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.CategoryItem, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	category := &entity.CategoryItem{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      input.Name,
		Type:      input.Type,
		Image:     input.Image,
		Desc:      input.Desc,
		Count:     input.Count,
		ClassName: input.ClassName,
		CreatedAt: srv.clock.Now(),
	}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.CategoryItem, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	category := &entity.CategoryItem{
		ID:        id,
		Name:      input.Name,
		Type:      input.Type,
		Image:     input.Image,
		Desc:      input.Desc,
		Count:     input.Count,
		ClassName: input.ClassName,
	}
	err := srv.categoryRepo.Update(ctx, category)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

func (srv *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := srv.categoryRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound
	}

	return errors.Wrap(err, "failed to delete category")
}

func (srv *catalogService) ListSlides(ctx context.Context) ([]*entity.Slide, error) {
	slides, err := srv.slideRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list slides")
	}

	return slides, nil
}

func validateSlideInput(input *usecase.SlideInput) error {
	if strings.TrimSpace(input.Image) == "" || strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("image and title are required")
	}

	return nil
}

func (srv *catalogService) CreateSlide(ctx context.Context, input *usecase.SlideInput) (*entity.Slide, error) {
	if err := validateSlideInput(input); err != nil {
		return nil, err
	}

	slide := &entity.Slide{
		ID:        uuid.Must(uuid.NewV7()),
		Image:     input.Image,
		Title:     input.Title,
		Subtitle:  input.Subtitle,
		CTA:       input.CTA,
		Action:    input.Action,
		CreatedAt: srv.clock.Now(),
	}
	if err := srv.slideRepo.Create(ctx, slide); err != nil {
		return nil, errors.Wrap(err, "failed to create slide")
	}

	return slide, nil
}

func (srv *catalogService) UpdateSlide(ctx context.Context, id uuid.UUID, input *usecase.SlideInput) (*entity.Slide, error) {
	if err := validateSlideInput(input); err != nil {
		return nil, err
	}

	slide := &entity.Slide{
		ID:       id,
		Image:    input.Image,
		Title:    input.Title,
		Subtitle: input.Subtitle,
		CTA:      input.CTA,
		Action:   input.Action,
	}
	err := srv.slideRepo.Update(ctx, slide)
	if errors.Is(err, repository.ErrSlideNotFound) {
		return nil, domainerrors.ErrSlideNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update slide")
	}

	return slide, nil
}

func (srv *catalogService) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	err := srv.slideRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrSlideNotFound) {
		return domainerrors.ErrSlideNotFound
	}

	return errors.Wrap(err, "failed to delete slide")
}

// SeedDefaults only touches collections that are empty.
func (srv *catalogService) SeedDefaults(ctx context.Context) (bool, error) {
	now := srv.clock.Now()
	seeded := false

	count, err := srv.productRepo.Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to count products")
	}
	if count == 0 {
		for _, p := range seed.Products(now) {
			if err := srv.productRepo.Create(ctx, p); err != nil {
				return false, errors.Wrap(err, "failed to seed product")
			}
		}
		seeded = true
	}

	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to list categories")
	}
	if len(categories) == 0 {
		for _, c := range seed.Categories(now) {
			if err := srv.categoryRepo.Create(ctx, c); err != nil {
				return false, errors.Wrap(err, "failed to seed category")
			}
		}
		seeded = true
	}

	slides, err := srv.slideRepo.List(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to list slides")
	}
	if len(slides) == 0 {
		for _, s := range seed.Slides(now) {
			if err := srv.slideRepo.Create(ctx, s); err != nil {
				return false, errors.Wrap(err, "failed to seed slide")
			}
		}
		seeded = true
	}

	if seeded {
		srv.log(ctx).Info("Seeded default catalog")
	}

	return seeded, nil
}
