package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/cafe-pos-api/services"
)

// CreateTableRequest represents the request body for creating a table
type CreateTableRequest struct {
	TableNumber int  `json:"table_number"`
	Capacity    *int `json:"capacity"`
}

// UpdateTableRequest represents the request body for updating a table
type UpdateTableRequest struct {
	TableNumber *int    `json:"table_number"`
	Capacity    *int    `json:"capacity"`
	Status      *string `json:"status"`
}

// StatusRequest represents a request body carrying only a status
type StatusRequest struct {
	Status string `json:"status"`
}

// TableController serves /tables
type TableController struct {
	tables *services.TableService
}

// NewTableController creates a table controller
func NewTableController(tables *services.TableService) *TableController {
	return &TableController{tables: tables}
}

// List handles GET /api/v1/tables
func (ctl *TableController) List(c *gin.Context) {
	tables, err := ctl.tables.ListTables()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, tables)
}

// Stats handles GET /api/v1/tables/stats
func (ctl *TableController) Stats(c *gin.Context) {
	stats, err := ctl.tables.GetTableStats()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

// Get handles GET /api/v1/tables/:id
func (ctl *TableController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	table, err := ctl.tables.GetTable(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, table)
}

// Create handles POST /api/v1/tables
func (ctl *TableController) Create(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	table, err := ctl.tables.CreateTable(services.CreateTableInput{
		Number:   req.TableNumber,
		Capacity: req.Capacity,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, table)
}

// Update handles PUT /api/v1/tables/:id
func (ctl *TableController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	table, err := ctl.tables.UpdateTable(id, services.UpdateTableInput{
		Number:   req.TableNumber,
		Capacity: req.Capacity,
		Status:   req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, table)
}

// SetStatus handles PATCH /api/v1/tables/:id/status
func (ctl *TableController) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	table, err := ctl.tables.SetTableStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, table)
}

// Recompute handles POST /api/v1/tables/:id/recompute
func (ctl *TableController) Recompute(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	table, err := ctl.tables.RecomputeTableAvailability(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, table)
}

// Delete handles DELETE /api/v1/tables/:id
func (ctl *TableController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	table, err := ctl.tables.DeleteTable(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c, "Table deleted successfully", table)
}
