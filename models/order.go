package models

import "time"

// OrderItem is a snapshot of a menu item taken when the order was placed.
// It is stored inside the order and never follows later menu edits.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category,omitempty"`
}

// Subtotal returns price times quantity for the line
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// OrderItems is the ordered list of item snapshots on an order
type OrderItems []OrderItem

// Total returns the sum of all line subtotals
func (items OrderItems) Total() float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

// Order represents a customer order, either at a table or for delivery
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	TableID     *uint       `gorm:"index" json:"table_id"` // nullable, null for delivery orders
	TableNumber *int        `gorm:"->;-:migration" json:"table_number"`
	Items       OrderItems  `gorm:"type:text;not null;serializer:json" json:"items"`
	Status      OrderStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	TotalPrice  float64     `gorm:"not null;default:0" json:"total_price"`
	Notes       string      `gorm:"type:text" json:"notes"`
	OrderType   OrderType   `gorm:"type:varchar(16);not null;default:'dine_in'" json:"order_type"`
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// SetItems replaces the item snapshot and recomputes the total price
func (o *Order) SetItems(items OrderItems) {
	o.Items = items
	o.TotalPrice = items.Total()
}

// OrderStats summarizes the order ledger
type OrderStats struct {
	Total         int64   `json:"total"`
	Pending       int64   `json:"pending"`
	Preparing     int64   `json:"preparing"`
	Ready         int64   `json:"ready"`
	Served        int64   `json:"served"`
	ActiveRevenue float64 `json:"active_revenue"`
	TodayRevenue  float64 `json:"today_revenue"`
}
