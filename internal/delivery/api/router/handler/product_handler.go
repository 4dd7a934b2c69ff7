package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"github.com/umithief/motovibe6/internal/delivery/api/response"
	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/usecase"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the product catalog.
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ProductRequest represents the admin-editable fields of a product
type ProductRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Description string                 `json:"description"`
	Price       decimal.Decimal        `json:"price"`
	Category    entity.ProductCategory `json:"category" validate:"required"`
	Image       string                 `json:"image"`
	Images      []string               `json:"images"`
	Rating      float64                `json:"rating" validate:"gte=0,lte=5"`
	Features    []string               `json:"features"`
	Stock       int                    `json:"stock" validate:"gte=0"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
		Images:      r.Images,
		Rating:      r.Rating,
		Features:    r.Features,
		Stock:       r.Stock,
	}
}

// ListProducts returns the whole catalog.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct returns a single product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return invalidID(c)
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct adds a product to the catalog.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct replaces the editable fields of a product.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return invalidID(c)
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes a product. Existing orders keep their frozen copies.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return invalidID(c)
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.FailWith(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
