// Package entity contains the core business objects of the storefront.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/umithief/motovibe6/internal/errors"
)

// ProductCategory is the gear type a product is sold under.
type ProductCategory string

const (
	CategoryHelmet     ProductCategory = "Kask"
	CategoryJacket     ProductCategory = "Mont"
	CategoryGloves     ProductCategory = "Eldiven"
	CategoryBoots      ProductCategory = "Bot"
	CategoryPants      ProductCategory = "Pantolon"
	CategoryProtection ProductCategory = "Koruma"
	CategoryIntercom   ProductCategory = "İnterkom"
	CategoryAccessory  ProductCategory = "Aksesuar"
)

// IsValid checks if the category is one of the known gear types.
func (c ProductCategory) IsValid() bool {
	switch c {
	case CategoryHelmet, CategoryJacket, CategoryGloves, CategoryBoots,
		CategoryPants, CategoryProtection, CategoryIntercom, CategoryAccessory:
		return true
	default:
		return false
	}
}

// Product is an item of the global catalog.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    ProductCategory `json:"category"`
	Image       string          `json:"image"`  // Cover image, always Images[0] once normalized.
	Images      []string        `json:"images"` // Ordered gallery.
	Rating      float64         `json:"rating"`
	Features    []string        `json:"features"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Product validation errors.
var (
	ErrProductNameRequired  = errors.New("product name is required")
	ErrProductPriceInvalid  = errors.New("product price must be positive")
	ErrProductRatingInvalid = errors.New("product rating must be between 0 and 5")
	ErrProductStockInvalid  = errors.New("product stock must not be negative")
	ErrProductCategory      = errors.New("unknown product category")
)

// Normalize fills the gallery from the cover image and vice versa.
func (p *Product) Normalize() {
	p.Name = strings.TrimSpace(p.Name)

	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}

	if len(images) == 0 && p.Image != "" {
		images = []string{p.Image}
	}

	p.Images = images
	if len(images) > 0 {
		p.Image = images[0]
	}

	if p.Features == nil {
		p.Features = []string{}
	}
}

// Validate checks the catalog invariants of the product.
func (p *Product) Validate() error {
	switch {
	case p.Name == "":
		return ErrProductNameRequired
	case !p.Price.IsPositive():
		return ErrProductPriceInvalid
	case p.Rating < 0 || p.Rating > 5:
		return ErrProductRatingInvalid
	case p.Stock < 0:
		return ErrProductStockInvalid
	case !p.Category.IsValid():
		return ErrProductCategory
	}

	return nil
}
