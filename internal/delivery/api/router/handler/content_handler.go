package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/umithief/motovibe6/internal/delivery/api/response"
	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/usecase"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ContentHandler serves the homepage categories and slides.
type ContentHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CategoryRequest represents a homepage category tile
type CategoryRequest struct {
	Name      string                 `json:"name" validate:"required"`
	Type      entity.ProductCategory `json:"type"`
	Image     string                 `json:"image" validate:"required"`
	Desc      string                 `json:"desc"`
	Count     string                 `json:"count"`
	ClassName string                 `json:"className"`
}

func (r *CategoryRequest) toInput() *usecase.CategoryInput {
	return &usecase.CategoryInput{
		Name:      r.Name,
		Type:      r.Type,
		Image:     r.Image,
		Desc:      r.Desc,
		Count:     r.Count,
		ClassName: r.ClassName,
	}
}

// SlideRequest represents a homepage slide
type SlideRequest struct {
	Image    string             `json:"image" validate:"required"`
	Title    string             `json:"title" validate:"required"`
	Subtitle string             `json:"subtitle"`
	CTA      string             `json:"cta"`
	Action   entity.SlideAction `json:"action" validate:"omitempty,oneof=shop blog contact"`
}

func (r *SlideRequest) toInput() *usecase.SlideInput {
	return &usecase.SlideInput{
		Image:    r.Image,
		Title:    r.Title,
		Subtitle: r.Subtitle,
		CTA:      r.CTA,
		Action:   r.Action,
	}
}

// ListCategories returns the category tiles.
func (h *ContentHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// CreateCategory adds a category tile.
func (h *ContentHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), req.toInput())
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// UpdateCategory replaces a category tile.
func (h *ContentHandler) UpdateCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return invalidID(c)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// DeleteCategory removes a category tile.
func (h *ContentHandler) DeleteCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return invalidID(c)
	}

	if err := h.catalogUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return response.FailWith(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListSlides returns the homepage slides.
func (h *ContentHandler) ListSlides(c echo.Context) error {
	slides, err := h.catalogUC.ListSlides(c.Request().Context())
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusOK, slides)
}

// CreateSlide adds a homepage slide.
func (h *ContentHandler) CreateSlide(c echo.Context) error {
	var req SlideRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	slide, err := h.catalogUC.CreateSlide(c.Request().Context(), req.toInput())
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusCreated, slide)
}

// UpdateSlide replaces a homepage slide.
func (h *ContentHandler) UpdateSlide(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return invalidID(c)
	}

	var req SlideRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	slide, err := h.catalogUC.UpdateSlide(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusOK, slide)
}

// DeleteSlide removes a homepage slide.
func (h *ContentHandler) DeleteSlide(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return invalidID(c)
	}

	if err := h.catalogUC.DeleteSlide(c.Request().Context(), id); err != nil {
		return response.FailWith(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
