package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

func TestOrderMapping_KeepsLineItems(t *testing.T) {
	order := &entity.Order{
		ID:     uuid.New(),
		Code:   "MV-2024-0042",
		UserID: uuid.New(),
		Date:   time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
		Status: entity.OrderStatusShipped,
		Total:  decimal.NewFromInt(18800),
		Items: []entity.OrderItem{
			{ProductID: uuid.New(), Name: "Kask", Price: decimal.NewFromInt(15000), Quantity: 1},
			{ProductID: uuid.New(), Name: "Eldiven", Price: decimal.NewFromInt(1900), Quantity: 2},
		},
	}

	got := ToOrderDomain(FromOrderDomain(order))

	assert.Equal(t, order.Code, got.Code)
	assert.Equal(t, order.Status, got.Status)
	assert.True(t, order.Total.Equal(got.Total))
	assert.Equal(t, order.Items, got.Items)
}

func TestProductMapping_NilListsBecomeEmpty(t *testing.T) {
	got := ToProductDomain(FromProductDomain(&entity.Product{ID: uuid.New(), Name: "Bot"}))

	assert.NotNil(t, got.Images)
	assert.NotNil(t, got.Features)
	assert.Empty(t, got.Images)
}

func TestForumTopicMapping_Comments(t *testing.T) {
	topicID := uuid.New()
	m := &ForumTopicModel{
		ID:       topicID,
		Title:    "Hoş geldiniz",
		Category: string(entity.ForumGeneral),
		Comments: []ForumCommentModel{{ID: uuid.New(), TopicID: topicID, Content: "Merhaba"}},
	}

	got := ToForumTopicDomain(m)

	assert.Equal(t, entity.ForumGeneral, got.Category)
	assert.Len(t, got.Comments, 1)
	assert.Equal(t, "Merhaba", got.Comments[0].Content)
	assert.NotNil(t, got.Tags)
}

func TestAll_ListsEveryTable(t *testing.T) {
	names := make(map[string]bool)
	for _, m := range All() {
		tabler, ok := m.(interface{ TableName() string })
		if assert.True(t, ok) {
			names[tabler.TableName()] = true
		}
	}

	for _, table := range []string{"users", "products", "categories", "slides", "orders", "forum_topics", "forum_comments", "analytics_events", "visits", "activity_logs"} {
		assert.True(t, names[table], table)
	}
}
