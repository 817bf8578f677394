package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoppilot/shoppilot-assistant/internal/model"
)

func testProduct() *model.Product {
	collection := "Summer Essentials"
	return &model.Product{
		BaseModel:  model.BaseModel{ID: "p1"},
		Name:       "Linen Shirt",
		Price:      49.9,
		Category:   "Clothing",
		Collection: &collection,
		Stock:      20,
		Tags:       []string{"linen", "breathable"},
	}
}

func TestGenerateDescriptionIsDeterministic(t *testing.T) {
	g := NewTemplateGenerator(100, 100)
	p := testProduct()

	first, err := g.GenerateDescription(context.Background(), p)
	require.NoError(t, err)
	second, err := g.GenerateDescription(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Linen Shirt")
	assert.Contains(t, first, "clothing")
	assert.Contains(t, first, "Summer Essentials")
	assert.Contains(t, first, "linen, breathable")
	assert.Contains(t, first, "$49.90")
	assert.NotContains(t, first, "left in stock")
}

func TestGenerateDescriptionScarcityLine(t *testing.T) {
	g := NewTemplateGenerator(100, 100)
	p := testProduct()
	p.Stock = 3

	got, err := g.GenerateDescription(context.Background(), p)
	require.NoError(t, err)
	assert.Contains(t, got, "Only 3 left in stock")

	p.Stock = 0
	got, err = g.GenerateDescription(context.Background(), p)
	require.NoError(t, err)
	assert.NotContains(t, got, "left in stock", "zero stock gets no scarcity line")
}

func TestGenerateDescriptionWithoutOptionalFields(t *testing.T) {
	g := NewTemplateGenerator(100, 100)
	p := &model.Product{
		BaseModel: model.BaseModel{ID: "p2"},
		Name:      "Plain Mug",
		Price:     8,
		Category:  "Homeware",
		Stock:     50,
	}

	got, err := g.GenerateDescription(context.Background(), p)
	require.NoError(t, err)
	assert.NotContains(t, got, "collection")
	assert.NotContains(t, got, "Highlights")
}

func TestGenerateDescriptionRespectsContext(t *testing.T) {
	// Burst of 1 at 1 rps: the second call has to wait, and the cancelled
	// context should surface instead of blocking.
	g := NewTemplateGenerator(1, 1)
	p := testProduct()

	_, err := g.GenerateDescription(context.Background(), p)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = g.GenerateDescription(ctx, p)
	assert.Error(t, err)
}
