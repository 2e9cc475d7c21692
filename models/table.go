package models

import "time"

// Table represents a physical table in the restaurant
type Table struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Number       int         `gorm:"column:table_number;uniqueIndex;not null" json:"table_number"`
	Capacity     int         `gorm:"not null;default:4" json:"capacity"`
	Status       TableStatus `gorm:"type:varchar(16);not null;default:'available';index" json:"status"`
	ActiveOrders int64       `gorm:"->;-:migration" json:"active_orders"` // computed, count of non-paid orders
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TableName specifies the table name for the Table model
func (Table) TableName() string {
	return "tables"
}

// TableStats summarizes table occupancy
type TableStats struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Occupied  int64 `json:"occupied"`
	Reserved  int64 `json:"reserved"`
}
