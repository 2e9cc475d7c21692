package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/cafe-pos-api/services"
)

// CreateMenuItemRequest represents the request body for creating a menu item
type CreateMenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// UpdateMenuItemRequest represents the request body for updating a menu item
type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Available   *bool    `json:"available"`
	ImageURL    *string  `json:"image_url"`
}

// MenuController serves /menu
type MenuController struct {
	menu *services.MenuService
}

// NewMenuController creates a menu controller
func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

// List handles GET /api/v1/menu
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.menu.ListMenuItems()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items)
}

// ListAvailable handles GET /api/v1/menu/available
func (ctl *MenuController) ListAvailable(c *gin.Context) {
	items, err := ctl.menu.ListAvailableMenuItems()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items)
}

// ListByCategory handles GET /api/v1/menu/category/:slug
func (ctl *MenuController) ListByCategory(c *gin.Context) {
	items, err := ctl.menu.ListMenuItemsByCategory(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items)
}

// Stats handles GET /api/v1/menu/stats
func (ctl *MenuController) Stats(c *gin.Context) {
	stats, err := ctl.menu.GetMenuStats()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

// Get handles GET /api/v1/menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := ctl.menu.GetMenuItem(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item)
}

// Create handles POST /api/v1/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	item, err := ctl.menu.CreateMenuItem(services.CreateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, item)
}

// Update handles PUT /api/v1/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	item, err := ctl.menu.UpdateMenuItem(id, services.UpdateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item)
}

// ToggleAvailability handles PATCH /api/v1/menu/:id/availability
func (ctl *MenuController) ToggleAvailability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := ctl.menu.ToggleMenuItemAvailability(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item)
}

// UploadImage handles POST /api/v1/menu/:id/image (multipart field "image")
func (ctl *MenuController) UploadImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "MISSING_FILE", "An image file is required in the \"image\" field")
		return
	}

	item, err := ctl.menu.SetMenuItemImage(id, fileHeader)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item)
}

// Delete handles DELETE /api/v1/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := ctl.menu.DeleteMenuItem(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Menu item deleted successfully", item)
}
