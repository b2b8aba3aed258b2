package handler

import (
	"encoding/json"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberText(t *testing.T) {
	var req struct {
		Price numberText  `json:"price"`
		Stock numberText  `json:"stock"`
		Cost  numberText  `json:"cost"`
		Extra *numberText `json:"extra"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price":12.50,"stock":" 3 ","cost":null}`), &req))

	assert.Equal(t, numberText("12.50"), req.Price)
	assert.Equal(t, numberText("3"), req.Stock)
	assert.Equal(t, numberText(""), req.Cost)
	assert.Nil(t, req.Extra.ptr())
	assert.Equal(t, "12.50", *req.Price.ptr())
}

func TestNumberText_RejectsObjects(t *testing.T) {
	var n numberText

	assert.Error(t, json.Unmarshal([]byte(`{"v":1}`), &n))
}

func TestOptionalParent(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		body    string
		wantSet bool
		wantID  *uuid.UUID
	}{
		{name: "absent", body: `{}`},
		{name: "null", body: `{"parentId":null}`, wantSet: true},
		{name: "empty", body: `{"parentId":""}`, wantSet: true},
		{name: "id", body: `{"parentId":"` + id.String() + `"}`, wantSet: true, wantID: &id},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateCategoryRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.wantSet, req.ParentID.Set)
			assert.Equal(t, tt.wantID, req.ParentID.ID)
		})
	}
}

func TestOptionalParent_InvalidID(t *testing.T) {
	var req UpdateCategoryRequest

	err := json.Unmarshal([]byte(`{"parentId":"abc"}`), &req)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPublicProductResponse_DropsCostPrice(t *testing.T) {
	resp := newPublicProductResponse(testProduct())

	assert.Nil(t, resp.CostPrice)
	assert.NotNil(t, newProductResponse(testProduct()).CostPrice)
}

func testProduct() *entity.Product {
	cost := decimal.RequireFromString("4.20")

	return &entity.Product{
		ID:        uuid.New(),
		Name:      "Lamp",
		Price:     decimal.RequireFromString("9.99"),
		CostPrice: &cost,
		Status:    entity.ProductActive,
	}
}
