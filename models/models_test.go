package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for i, raw := range []string{"pending", "preparing", "ready", "served", "paid"} {
		status, err := ParseOrderStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(status))
		assert.Equal(t, i+1, status.Rank())
	}

	for _, raw := range []string{"", "PAID", "cooking", " pending"} {
		_, err := ParseOrderStatus(raw)
		assert.Error(t, err, raw)
	}

	assert.Equal(t, 0, OrderStatus("cooking").Rank())
}

func TestOrderStatus_IsActive(t *testing.T) {
	assert.True(t, OrderStatusPending.IsActive())
	assert.True(t, OrderStatusServed.IsActive())
	assert.False(t, OrderStatusPaid.IsActive())
}

func TestParseTableStatus(t *testing.T) {
	for _, raw := range []string{"available", "occupied", "reserved"} {
		status, err := ParseTableStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(status))
	}

	_, err := ParseTableStatus("closed")
	assert.Error(t, err)
}

func TestParseOrderType(t *testing.T) {
	tests := []struct {
		raw      string
		expected OrderType
		wantErr  bool
	}{
		{"", OrderTypeDineIn, false},
		{"dine_in", OrderTypeDineIn, false},
		{"delivery", OrderTypeDelivery, false},
		{"takeaway", "", true},
	}

	for _, tt := range tests {
		got, err := ParseOrderType(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.expected, got)
	}
}

func TestOrderItems_Total(t *testing.T) {
	items := OrderItems{
		{Name: "Tea", Price: 60, Quantity: 2},
		{Name: "Scone", Price: 2.5, Quantity: 3},
	}
	assert.InDelta(t, 127.5, items.Total(), 0.0001)
	assert.InDelta(t, 120, items[0].Subtotal(), 0.0001)
	assert.Zero(t, OrderItems{}.Total())

	var order Order
	order.SetItems(items)
	assert.InDelta(t, 127.5, order.TotalPrice, 0.0001)
	assert.Len(t, order.Items, 2)
}
