package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/kendall-kelly/cafe-pos-api/services"
	"github.com/stretchr/testify/assert"
)

func TestZReportEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	today := time.Now().Format(services.DateLayout)

	order := createOrder(t, env, map[string]interface{}{
		"order_type": "delivery",
		"items":      []map[string]interface{}{{"name": "Tea", "price": 60, "quantity": 2, "category": "drinks"}},
	})
	env.do(t, http.MethodPatch, "/orders/"+itoa(order.ID)+"/status", map[string]string{"status": "paid"})

	var report services.ZReport
	w, response := env.do(t, http.MethodGet, "/reports/z", nil)
	assertStatus(t, w, http.StatusOK)
	decodeData(t, response, &report)

	assert.Equal(t, today, report.Date)
	assert.Equal(t, 1, report.TotalOrders)
	assert.InDelta(t, 120, report.TotalRevenue, 0.0001)
	assert.Equal(t, 1, report.OrderTypeBreakdown.Delivery.Count)
	assert.Equal(t, 1, report.StatusBreakdown.Paid)

	w, response = env.do(t, http.MethodGet, "/reports/z?date=not-a-date", nil)
	assertStatus(t, w, http.StatusOK)
	decodeData(t, response, &report)
	assert.Equal(t, "not-a-date", report.Date)
	assert.Zero(t, report.TotalOrders)
	assert.Empty(t, report.Items)
}
