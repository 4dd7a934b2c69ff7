package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// ProductModel mirrors the 'products' table. The gallery and feature lists are JSONB.
type ProductModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name        string                      `gorm:"type:varchar(200);not null"`
	Description string                      `gorm:"type:text"`
	Price       decimal.Decimal             `gorm:"type:numeric(12,2);not null"`
	Category    string                      `gorm:"type:varchar(32);index;not null"`
	Image       string                      `gorm:"type:text"`
	Images      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Rating      float64                     `gorm:"not null;default:0"`
	Features    datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Stock       int                         `gorm:"not null;default:0;check:stock >= 0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

func ToProductDomain(m *ProductModel) *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    entity.ProductCategory(m.Category),
		Image:       m.Image,
		Images:      nonNil(m.Images),
		Rating:      m.Rating,
		Features:    nonNil(m.Features),
		Stock:       m.Stock,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromProductDomain(p *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    string(p.Category),
		Image:       p.Image,
		Images:      datatypes.JSONSlice[string](nonNil(p.Images)),
		Rating:      p.Rating,
		Features:    datatypes.JSONSlice[string](nonNil(p.Features)),
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CategoryModel mirrors the 'categories' table of homepage tiles.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Type      string    `gorm:"type:varchar(32)"`
	Image     string    `gorm:"type:text;not null"`
	Desc      string    `gorm:"column:description;type:text"`
	Count     string    `gorm:"type:varchar(32)"`
	ClassName string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

func ToCategoryDomain(m *CategoryModel) *entity.CategoryItem {
	return &entity.CategoryItem{
		ID:        m.ID,
		Name:      m.Name,
		Type:      entity.ProductCategory(m.Type),
		Image:     m.Image,
		Desc:      m.Desc,
		Count:     m.Count,
		ClassName: m.ClassName,
		CreatedAt: m.CreatedAt,
	}
}

func FromCategoryDomain(c *entity.CategoryItem) *CategoryModel {
	return &CategoryModel{
		ID:        c.ID,
		Name:      c.Name,
		Type:      string(c.Type),
		Image:     c.Image,
		Desc:      c.Desc,
		Count:     c.Count,
		ClassName: c.ClassName,
		CreatedAt: c.CreatedAt,
	}
}

// SlideModel mirrors the 'slides' table of homepage hero slides.
type SlideModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Image     string    `gorm:"type:text;not null"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Subtitle  string    `gorm:"type:text"`
	CTA       string    `gorm:"column:cta;type:varchar(100)"`
	Action    string    `gorm:"type:varchar(16)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SlideModel) TableName() string {
	return "slides"
}

func ToSlideDomain(m *SlideModel) *entity.Slide {
	return &entity.Slide{
		ID:        m.ID,
		Image:     m.Image,
		Title:     m.Title,
		Subtitle:  m.Subtitle,
		CTA:       m.CTA,
		Action:    entity.SlideAction(m.Action),
		CreatedAt: m.CreatedAt,
	}
}

func FromSlideDomain(s *entity.Slide) *SlideModel {
	return &SlideModel{
		ID:        s.ID,
		Image:     s.Image,
		Title:     s.Title,
		Subtitle:  s.Subtitle,
		CTA:       s.CTA,
		Action:    string(s.Action),
		CreatedAt: s.CreatedAt,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
