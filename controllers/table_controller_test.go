package controllers

import (
	"net/http"
	"testing"

	"github.com/kendall-kelly/cafe-pos-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableEndpoints(t *testing.T) {
	env := setupTestEnv(t)

	w, response := env.do(t, http.MethodPost, "/tables", map[string]interface{}{"table_number": 7, "capacity": 6})
	assertStatus(t, w, http.StatusCreated)
	var table models.Table
	decodeData(t, response, &table)
	assert.Equal(t, 7, table.Number)
	assert.Equal(t, 6, table.Capacity)
	assert.Equal(t, models.TableStatusAvailable, table.Status)

	w, response = env.do(t, http.MethodPost, "/tables", map[string]interface{}{"table_number": 7})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "TABLE_NUMBER_EXISTS", response.Error.Code)

	w, response = env.do(t, http.MethodPost, "/tables", map[string]interface{}{"capacity": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_TABLE_NUMBER", response.Error.Code)

	w, response = env.do(t, http.MethodPatch, "/tables/"+itoa(table.ID)+"/status", map[string]string{"status": "reserved"})
	assertStatus(t, w, http.StatusOK)
	decodeData(t, response, &table)
	assert.Equal(t, models.TableStatusReserved, table.Status)

	w, response = env.do(t, http.MethodPatch, "/tables/"+itoa(table.ID)+"/status", map[string]string{"status": "broken"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_STATUS", response.Error.Code)

	w, response = env.do(t, http.MethodPut, "/tables/"+itoa(table.ID), map[string]interface{}{"capacity": 2})
	assertStatus(t, w, http.StatusOK)
	decodeData(t, response, &table)
	assert.Equal(t, 2, table.Capacity)
	assert.Equal(t, models.TableStatusReserved, table.Status)

	w, response = env.do(t, http.MethodPost, "/tables/"+itoa(table.ID)+"/recompute", nil)
	assertStatus(t, w, http.StatusOK)
	decodeData(t, response, &table)
	assert.Equal(t, models.TableStatusAvailable, table.Status)

	var stats models.TableStats
	w, response = env.do(t, http.MethodGet, "/tables/stats", nil)
	assertStatus(t, w, http.StatusOK)
	decodeData(t, response, &stats)
	assert.EqualValues(t, 1, stats.Total)
	assert.EqualValues(t, 1, stats.Available)

	var tables []models.Table
	w, response = env.do(t, http.MethodGet, "/tables", nil)
	assertStatus(t, w, http.StatusOK)
	decodeData(t, response, &tables)
	require.Len(t, tables, 1)

	w, response = env.do(t, http.MethodDelete, "/tables/"+itoa(table.ID), nil)
	assertStatus(t, w, http.StatusOK)
	assert.Equal(t, "Table deleted successfully", response.Message)

	w, response = env.do(t, http.MethodGet, "/tables/"+itoa(table.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "TABLE_NOT_FOUND", response.Error.Code)
}

func TestDeleteTable_WithActiveOrders(t *testing.T) {
	env := setupTestEnv(t)
	table := createTable(t, env, 1)
	createOrder(t, env, map[string]interface{}{
		"table_id": table.ID,
		"items":    []map[string]interface{}{{"name": "Tea", "price": 60, "quantity": 1}},
	})

	w, response := env.do(t, http.MethodDelete, "/tables/"+itoa(table.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "TABLE_HAS_ACTIVE_ORDERS", response.Error.Code)
}
