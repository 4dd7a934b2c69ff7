package mongodb

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

func TestDecimal128_RoundTrip(t *testing.T) {
	for _, s := range []string{"0", "18500", "1899.90", "0.01"} {
		d := decimal.RequireFromString(s)
		assert.True(t, d.Equal(fromDecimal128(toDecimal128(d))), s)
	}
}

func TestOrderDoc_BSONRoundTrip(t *testing.T) {
	order := &entity.Order{
		ID:     uuid.New(),
		Code:   "MV-2024-0042",
		UserID: uuid.New(),
		Date:   time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
		Status: entity.OrderStatusPreparing,
		Total:  decimal.RequireFromString("18800"),
		Items: []entity.OrderItem{
			{ProductID: uuid.New(), Name: "Kask", Price: decimal.RequireFromString("15000"), Quantity: 1},
			{ProductID: uuid.New(), Name: "Eldiven", Price: decimal.RequireFromString("1900"), Quantity: 2},
		},
	}

	raw, err := bson.Marshal(toOrderDoc(order))
	require.NoError(t, err)

	var doc orderDoc
	require.NoError(t, bson.Unmarshal(raw, &doc))
	got := doc.toDomain()

	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.Code, got.Code)
	assert.True(t, order.Total.Equal(got.Total))
	require.Len(t, got.Items, 2)
	assert.True(t, got.Items[1].Price.Equal(decimal.NewFromInt(1900)))
	assert.Equal(t, 2, got.Items[1].Quantity)
}

func TestEventDoc_GuestHasNoUser(t *testing.T) {
	productID := uuid.New()
	event := &entity.AnalyticsEvent{ID: uuid.New(), Type: entity.EventViewProduct, ProductID: &productID, ProductName: "Bot"}

	raw, err := bson.Marshal(toEventDoc(event))
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.NotContains(t, m, "userId")
	assert.Equal(t, productID.String(), m["productId"])

	var doc eventDoc
	require.NoError(t, bson.Unmarshal(raw, &doc))
	got := doc.toDomain()
	assert.Nil(t, got.UserID)
	assert.Equal(t, productID, *got.ProductID)
}

func TestTopicDoc_EmptyListsStayArrays(t *testing.T) {
	doc := toTopicDoc(&entity.ForumTopic{ID: uuid.New(), Title: "Selam"})

	assert.NotNil(t, doc.Tags)
	assert.NotNil(t, doc.Comments)
	assert.NotNil(t, doc.toDomain().Comments)
}
