package repository

import (
	"github.com/kendall-kelly/cafe-pos-api/models"
	"gorm.io/gorm"
)

// MenuItemRepository persists menu items
type MenuItemRepository interface {
	List() ([]models.MenuItem, error)
	ListAvailable() ([]models.MenuItem, error)
	ListByCategory(slug string) ([]models.MenuItem, error)
	GetByID(id uint) (*models.MenuItem, error)
	CountByCategory(slug string) (int64, error)
	Create(item *models.MenuItem) error
	Update(item *models.MenuItem) error
	Delete(id uint) error
	Stats() (models.MenuStats, error)
}

type menuItemRepository struct {
	db *gorm.DB
}

func (r *menuItemRepository) List() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Order("category ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *menuItemRepository) ListAvailable() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("available = ?", true).Order("category ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *menuItemRepository) ListByCategory(slug string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("category = ?", slug).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *menuItemRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *menuItemRepository) CountByCategory(slug string) (int64, error) {
	var count int64
	err := r.db.Model(&models.MenuItem{}).Where("category = ?", slug).Count(&count).Error
	return count, err
}

func (r *menuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

// Update writes every column, so zero values such as available=false persist
func (r *menuItemRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *menuItemRepository) Delete(id uint) error {
	result := r.db.Delete(&models.MenuItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *menuItemRepository) Stats() (models.MenuStats, error) {
	var stats models.MenuStats
	err := r.db.Model(&models.MenuItem{}).Select(`
		COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN available THEN 1 ELSE 0 END), 0) AS available,
		COALESCE(SUM(CASE WHEN available THEN 0 ELSE 1 END), 0) AS unavailable,
		COUNT(DISTINCT category) AS categories`).
		Scan(&stats).Error
	return stats, err
}
