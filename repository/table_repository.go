package repository

import (
	"time"

	"github.com/kendall-kelly/cafe-pos-api/models"
	"gorm.io/gorm"
)

// TableRepository persists physical tables
type TableRepository interface {
	List() ([]models.Table, error)
	GetByID(id uint) (*models.Table, error)
	GetByNumber(number int) (*models.Table, error)
	Create(table *models.Table) error
	Update(table *models.Table) error
	UpdateStatus(id uint, status models.TableStatus) error
	Delete(id uint) error
	Stats() (models.TableStats, error)
}

type tableRepository struct {
	db *gorm.DB
}

const activeOrdersSubquery = "(SELECT COUNT(*) FROM orders WHERE orders.table_id = tables.id AND orders.status <> 'paid') AS active_orders"

func (r *tableRepository) withActiveOrders() *gorm.DB {
	return r.db.Model(&models.Table{}).Select("tables.*, " + activeOrdersSubquery)
}

func (r *tableRepository) List() ([]models.Table, error) {
	var tables []models.Table
	err := r.withActiveOrders().Order("tables.table_number ASC").Find(&tables).Error
	return tables, err
}

func (r *tableRepository) GetByID(id uint) (*models.Table, error) {
	var table models.Table
	if err := r.withActiveOrders().Where("tables.id = ?", id).First(&table).Error; err != nil {
		return nil, translate(err)
	}
	return &table, nil
}

func (r *tableRepository) GetByNumber(number int) (*models.Table, error) {
	var table models.Table
	if err := r.withActiveOrders().Where("tables.table_number = ?", number).First(&table).Error; err != nil {
		return nil, translate(err)
	}
	return &table, nil
}

func (r *tableRepository) Create(table *models.Table) error {
	return r.db.Create(table).Error
}

func (r *tableRepository) Update(table *models.Table) error {
	return r.db.Model(table).Select("table_number", "capacity", "status", "updated_at").Updates(table).Error
}

func (r *tableRepository) UpdateStatus(id uint, status models.TableStatus) error {
	result := r.db.Model(&models.Table{}).Where("id = ?", id).Updates(map[string]interface{}{
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

func (r *tableRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Table{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *tableRepository) Stats() (models.TableStats, error) {
	var stats models.TableStats
	err := r.db.Model(&models.Table{}).Select(`
		COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN status = 'available' THEN 1 ELSE 0 END), 0) AS available,
		COALESCE(SUM(CASE WHEN status = 'occupied' THEN 1 ELSE 0 END), 0) AS occupied,
		COALESCE(SUM(CASE WHEN status = 'reserved' THEN 1 ELSE 0 END), 0) AS reserved`).
		Scan(&stats).Error
	return stats, err
}
