package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		req       PageRequest
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", req: PageRequest{}, wantPage: 1, wantLimit: 10},
		{name: "limit capped", req: PageRequest{Page: 2, Limit: 500}, wantPage: 2, wantLimit: 100},
		{name: "huge page clamped", req: PageRequest{Page: math.MaxInt, Limit: 100}, wantPage: math.MaxInt32/100 + 1, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.Normalize(10, 100)

			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.GreaterOrEqual(t, got.Offset(), 0)
			assert.LessOrEqual(t, got.Offset(), math.MaxInt32)
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(PageRequest{Page: 2, Limit: 10}, 21)

	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, int64(21), p.Total)
}
