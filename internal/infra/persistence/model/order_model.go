package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// OrderItemJSON is a frozen line item stored inside the order row.
type OrderItemJSON struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

// OrderModel mirrors the 'orders' table. Code carries the unique display code.
type OrderModel struct {
	ID        uuid.UUID                          `gorm:"type:uuid;primaryKey"`
	Code      string                             `gorm:"type:varchar(20);uniqueIndex;not null"`
	UserID    uuid.UUID                          `gorm:"type:uuid;index;not null"`
	Date      time.Time                          `gorm:"index;not null"`
	Status    string                             `gorm:"type:varchar(16);not null"`
	Total     decimal.Decimal                    `gorm:"type:numeric(12,2);not null"`
	Items     datatypes.JSONSlice[OrderItemJSON] `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

func ToOrderDomain(m *OrderModel) *entity.Order {
	items := make([]entity.OrderItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = entity.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		}
	}

	return &entity.Order{
		ID:        m.ID,
		Code:      m.Code,
		UserID:    m.UserID,
		Date:      m.Date,
		Status:    entity.OrderStatus(m.Status),
		Total:     m.Total,
		Items:     items,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromOrderDomain(o *entity.Order) *OrderModel {
	items := make(datatypes.JSONSlice[OrderItemJSON], len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemJSON{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		}
	}

	return &OrderModel{
		ID:        o.ID,
		Code:      o.Code,
		UserID:    o.UserID,
		Date:      o.Date,
		Status:    string(o.Status),
		Total:     o.Total,
		Items:     items,
		UpdatedAt: o.UpdatedAt,
	}
}
