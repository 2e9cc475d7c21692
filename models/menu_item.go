package models

import "time"

// MenuItem represents a dish or drink on the menu
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null;check:price > 0" json:"price"`
	Category    string    `gorm:"not null;index" json:"category"` // category slug
	Available   bool      `gorm:"not null;default:true" json:"available"`
	ImageURL    string    `json:"image_url"`
	ImageKey    *string   `json:"-"` // nullable, storage key of an uploaded image
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// MenuStats summarizes the menu catalog
type MenuStats struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"available"`
	Unavailable int64 `json:"unavailable"`
	Categories  int64 `json:"categories"`
}
