package repository

import (
	"time"

	"github.com/kendall-kelly/cafe-pos-api/models"
	"gorm.io/gorm"
)

// OrderRepository persists the order ledger
type OrderRepository interface {
	List() ([]models.Order, error)
	ListByTable(tableID uint) ([]models.Order, error)
	ListActive() ([]models.Order, error)
	ListByStatus(status models.OrderStatus) ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	CountActiveByTable(tableID uint) (int64, error)
	Create(order *models.Order) error
	Update(order *models.Order) error
	UpdateStatus(id uint, status models.OrderStatus) error
	Delete(id uint) error
	Stats() (models.OrderStats, error)
}

type orderRepository struct {
	db *gorm.DB
}

// activeOrderRank orders active statuses pending, preparing, ready, served
const activeOrderRank = `CASE orders.status
	WHEN 'pending' THEN 1
	WHEN 'preparing' THEN 2
	WHEN 'ready' THEN 3
	WHEN 'served' THEN 4
	ELSE 5 END`

// withTableNumber selects orders joined with the number of their table, if any
func (r *orderRepository) withTableNumber() *gorm.DB {
	return r.db.Model(&models.Order{}).
		Select("orders.*, tables.table_number AS table_number").
		Joins("LEFT JOIN tables ON tables.id = orders.table_id")
}

func (r *orderRepository) List() ([]models.Order, error) {
	var orders []models.Order
	err := r.withTableNumber().Order("orders.created_at DESC, orders.id DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListByTable(tableID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.withTableNumber().
		Where("orders.table_id = ?", tableID).
		Order("orders.created_at DESC, orders.id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListActive() ([]models.Order, error) {
	var orders []models.Order
	err := r.withTableNumber().
		Where("orders.status <> ?", models.OrderStatusPaid).
		Order(activeOrderRank).
		Order("orders.created_at ASC, orders.id ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.withTableNumber().
		Where("orders.status = ?", status).
		Order("orders.created_at ASC, orders.id ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.withTableNumber().Where("orders.id = ?", id).First(&order).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *orderRepository) CountActiveByTable(tableID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("table_id = ? AND status <> ?", tableID, models.OrderStatusPaid).
		Count(&count).Error
	return count, err
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Model(order).
		Select("items", "status", "total_price", "notes", "updated_at").
		Updates(order).Error
}

func (r *orderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats counts orders per active status and sums the value of active orders.
// TodayRevenue is left for the caller, which owns the notion of "today".
func (r *orderRepository) Stats() (models.OrderStats, error) {
	var stats models.OrderStats
	err := r.db.Model(&models.Order{}).Select(`
		COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending,
		COALESCE(SUM(CASE WHEN status = 'preparing' THEN 1 ELSE 0 END), 0) AS preparing,
		COALESCE(SUM(CASE WHEN status = 'ready' THEN 1 ELSE 0 END), 0) AS ready,
		COALESCE(SUM(CASE WHEN status = 'served' THEN 1 ELSE 0 END), 0) AS served,
		COALESCE(SUM(CASE WHEN status <> 'paid' THEN total_price ELSE 0 END), 0) AS active_revenue`).
		Scan(&stats).Error
	return stats, err
}
