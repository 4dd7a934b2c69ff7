package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProducts_AreValidAndStable(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first := Products(now)
	second := Products(now)

	assert.Len(t, first, 11)
	for i, p := range first {
		assert.NoError(t, p.Validate(), p.Name)
		assert.Equal(t, second[i].ID, p.ID)
		assert.Equal(t, p.Image, p.Images[0])
	}

	first[0].Features[0] = "changed"
	assert.NotEqual(t, "changed", Products(now)[0].Features[0])
}

func TestContent_HasRequiredFields(t *testing.T) {
	now := time.Now()

	assert.Len(t, Categories(now), 6)
	for _, c := range Categories(now) {
		assert.NotEmpty(t, c.Image)
		assert.NotEmpty(t, c.Name)
		assert.True(t, c.Type.IsValid())
	}

	assert.Len(t, Slides(now), 3)
	for _, s := range Slides(now) {
		assert.NotEmpty(t, s.Image)
		assert.NotEmpty(t, s.Title)
	}

	topics := Topics(now)
	assert.Len(t, topics, 1)
	assert.Equal(t, SystemAuthorID, topics[0].AuthorID)
}
