package controllers

import (
	"net/http"
	"testing"

	"github.com/kendall-kelly/cafe-pos-api/models"
	"github.com/stretchr/testify/assert"
)

func TestCategoryEndpoints(t *testing.T) {
	env := setupTestEnv(t)

	w, response := env.do(t, http.MethodPost, "/categories", map[string]interface{}{"name": "Drinks", "slug": "drinks", "sort_order": 1})
	assertStatus(t, w, http.StatusCreated)
	var drinks models.Category
	decodeData(t, response, &drinks)
	assert.Equal(t, "📁", drinks.Emoji)

	w, response = env.do(t, http.MethodPost, "/categories", map[string]interface{}{"name": "Beverages", "slug": "drinks"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CATEGORY_SLUG_EXISTS", response.Error.Code)

	w, response = env.do(t, http.MethodPost, "/categories", map[string]interface{}{"slug": "nameless"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_FIELD", response.Error.Code)

	w, response = env.do(t, http.MethodPut, "/categories/"+itoa(drinks.ID), map[string]interface{}{"emoji": "🥤"})
	assertStatus(t, w, http.StatusOK)
	decodeData(t, response, &drinks)
	assert.Equal(t, "🥤", drinks.Emoji)

	w, _ = env.do(t, http.MethodPost, "/menu", map[string]interface{}{"name": "Tea", "price": 60, "category": "drinks"})
	assertStatus(t, w, http.StatusCreated)

	w, response = env.do(t, http.MethodDelete, "/categories/"+itoa(drinks.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CATEGORY_IN_USE", response.Error.Code)

	var categories []models.Category
	w, response = env.do(t, http.MethodGet, "/categories", nil)
	assertStatus(t, w, http.StatusOK)
	decodeData(t, response, &categories)
	assert.Len(t, categories, 1)

	w, response = env.do(t, http.MethodGet, "/categories/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CATEGORY_NOT_FOUND", response.Error.Code)
}
