package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/cafe-pos-api/services"
)

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Emoji     string `json:"emoji"`
	SortOrder int    `json:"sort_order"`
}

// UpdateCategoryRequest represents the request body for updating a category
type UpdateCategoryRequest struct {
	Name      *string `json:"name"`
	Slug      *string `json:"slug"`
	Emoji     *string `json:"emoji"`
	SortOrder *int    `json:"sort_order"`
}

// CategoryController serves /categories
type CategoryController struct {
	categories *services.CategoryService
}

// NewCategoryController creates a category controller
func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

// List handles GET /api/v1/categories
func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.categories.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, categories)
}

// Get handles GET /api/v1/categories/:id
func (ctl *CategoryController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := ctl.categories.GetCategory(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, category)
}

// Create handles POST /api/v1/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	category, err := ctl.categories.CreateCategory(services.CreateCategoryInput{
		Name:      req.Name,
		Slug:      req.Slug,
		Emoji:     req.Emoji,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, category)
}

// Update handles PUT /api/v1/categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	category, err := ctl.categories.UpdateCategory(id, services.UpdateCategoryInput{
		Name:      req.Name,
		Slug:      req.Slug,
		Emoji:     req.Emoji,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, category)
}

// Delete handles DELETE /api/v1/categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := ctl.categories.DeleteCategory(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Category deleted successfully", category)
}
