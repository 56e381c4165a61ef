package models

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/pricekeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_TrimsAndValidates(t *testing.T) {
	it, err := NewItem("  Cabo 2,5mm ", " ", " Eletro Sul ", 10)
	require.NoError(t, err)
	assert.Equal(t, "Cabo 2,5mm", it.Description)
	assert.Equal(t, "", it.Brand)
	assert.Equal(t, "Eletro Sul", it.Vendor)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		item Item
		ok   bool
	}{
		{name: "valid", item: Item{Description: "d", Vendor: "v", Price: 1}, ok: true},
		{name: "zero price", item: Item{Description: "d", Vendor: "v"}, ok: true},
		{name: "empty description", item: Item{Vendor: "v", Price: 1}},
		{name: "empty vendor", item: Item{Description: "d", Price: 1}},
		{name: "negative price", item: Item{Description: "d", Vendor: "v", Price: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestSameContent(t *testing.T) {
	a := Item{ID: 1, Description: "d", Brand: "b", Vendor: "v", Price: 10}

	assert.True(t, a.SameContent(Item{ID: 2, Description: "d", Brand: "b", Vendor: "v", Price: 10.001}))
	assert.False(t, a.SameContent(Item{Description: "d", Brand: "b", Vendor: "v", Price: 10.01}))
	assert.False(t, a.SameContent(Item{Description: "d", Brand: "", Vendor: "v", Price: 10}))
}

func TestOutdatedCutoff(t *testing.T) {
	now := time.Date(2026, 10, 17, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC), OutdatedCutoff(now))
}
