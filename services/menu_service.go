package services

import (
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"github.com/kendall-kelly/cafe-pos-api/models"
	"github.com/kendall-kelly/cafe-pos-api/repository"
)

// CreateMenuItemInput holds the data needed to add a menu item
type CreateMenuItemInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
}

// UpdateMenuItemInput holds a partial menu item update
type UpdateMenuItemInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Available   *bool
	ImageURL    *string
}

// MenuService manages menu items and their pictures
type MenuService struct {
	store  repository.Store
	images ImageService
}

// NewMenuService creates a menu service. images may be nil when uploads are disabled.
func NewMenuService(store repository.Store, images ImageService) *MenuService {
	return &MenuService{store: store, images: images}
}

// ListMenuItems returns the whole menu ordered by category and name
func (s *MenuService) ListMenuItems() ([]models.MenuItem, error) {
	items, err := s.store.MenuItems().List()
	if err != nil {
		return nil, err
	}
	return s.withImageURLs(items), nil
}

// ListAvailableMenuItems returns only items that can currently be ordered
func (s *MenuService) ListAvailableMenuItems() ([]models.MenuItem, error) {
	items, err := s.store.MenuItems().ListAvailable()
	if err != nil {
		return nil, err
	}
	return s.withImageURLs(items), nil
}

// ListMenuItemsByCategory returns the items of one category
func (s *MenuService) ListMenuItemsByCategory(slug string) ([]models.MenuItem, error) {
	if _, err := s.store.Categories().GetBySlug(slug); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(CodeCategoryNotFound, "Category %q not found", slug)
		}
		return nil, err
	}

	items, err := s.store.MenuItems().ListByCategory(slug)
	if err != nil {
		return nil, err
	}
	return s.withImageURLs(items), nil
}

// GetMenuItem returns a single menu item
func (s *MenuService) GetMenuItem(id uint) (*models.MenuItem, error) {
	item, err := s.store.MenuItems().GetByID(id)
	if err != nil {
		return nil, menuItemLookupError(err, id)
	}
	s.resolveImageURL(item)
	return item, nil
}

// CreateMenuItem adds an available item to an existing category
func (s *MenuService) CreateMenuItem(in CreateMenuItemInput) (*models.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || category == "" {
		return nil, invalid(CodeMissingField, "Name, price, and category are required")
	}
	if in.Price <= 0 {
		return nil, invalid(CodeInvalidPrice, "Price must be greater than 0")
	}
	if err := s.ensureCategoryExists(category); err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Category:    category,
		Available:   true,
	}
	if err := s.store.MenuItems().Create(item); err != nil {
		return nil, err
	}

	log.Printf("Menu item %q created in %s", item.Name, item.Category)
	return s.GetMenuItem(item.ID)
}

// UpdateMenuItem applies a partial update. Existing orders keep their own
// copies of name, price and category.
func (s *MenuService) UpdateMenuItem(id uint, in UpdateMenuItemInput) (*models.MenuItem, error) {
	item, err := s.store.MenuItems().GetByID(id)
	if err != nil {
		return nil, menuItemLookupError(err, id)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, invalid(CodeMissingField, "Name cannot be empty")
		}
		item.Name = name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, invalid(CodeInvalidPrice, "Price must be greater than 0")
		}
		item.Price = *in.Price
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if err := s.ensureCategoryExists(category); err != nil {
			return nil, err
		}
		item.Category = category
	}
	if in.Available != nil {
		item.Available = *in.Available
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}

	if err := s.store.MenuItems().Update(item); err != nil {
		return nil, err
	}

	return s.GetMenuItem(id)
}

// ToggleMenuItemAvailability flips whether an item can be ordered
func (s *MenuService) ToggleMenuItemAvailability(id uint) (*models.MenuItem, error) {
	item, err := s.store.MenuItems().GetByID(id)
	if err != nil {
		return nil, menuItemLookupError(err, id)
	}

	item.Available = !item.Available
	if err := s.store.MenuItems().Update(item); err != nil {
		return nil, err
	}

	return s.GetMenuItem(id)
}

// SetMenuItemImage uploads a picture for the item, replacing any previous upload
func (s *MenuService) SetMenuItemImage(id uint, fileHeader *multipart.FileHeader) (*models.MenuItem, error) {
	if s.images == nil {
		return nil, errors.New("image storage is not configured")
	}

	item, err := s.store.MenuItems().GetByID(id)
	if err != nil {
		return nil, menuItemLookupError(err, id)
	}

	key, err := s.images.UploadImage(fileHeader)
	if err != nil {
		return nil, err
	}

	previous := item.ImageKey
	item.ImageKey = &key
	if err := s.store.MenuItems().Update(item); err != nil {
		if delErr := s.images.DeleteImage(key); delErr != nil {
			log.Printf("warning: failed to remove orphaned image %s: %v", key, delErr)
		}
		return nil, err
	}

	if previous != nil {
		if err := s.images.DeleteImage(*previous); err != nil {
			log.Printf("warning: failed to delete replaced image %s: %v", *previous, err)
		}
	}

	return s.GetMenuItem(id)
}

// DeleteMenuItem removes an item and its uploaded picture
func (s *MenuService) DeleteMenuItem(id uint) (*models.MenuItem, error) {
	item, err := s.GetMenuItem(id)
	if err != nil {
		return nil, err
	}

	if err := s.store.MenuItems().Delete(id); err != nil {
		return nil, menuItemLookupError(err, id)
	}

	if item.ImageKey != nil && s.images != nil {
		if err := s.images.DeleteImage(*item.ImageKey); err != nil {
			log.Printf("warning: failed to delete image for menu item %d: %v", id, err)
		}
	}

	log.Printf("Menu item %q deleted", item.Name)
	return item, nil
}

// GetMenuStats counts menu items and the categories in use
func (s *MenuService) GetMenuStats() (*models.MenuStats, error) {
	stats, err := s.store.MenuItems().Stats()
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *MenuService) ensureCategoryExists(slug string) error {
	if slug == "" {
		return invalid(CodeInvalidCategory, "Category is required")
	}
	if _, err := s.store.Categories().GetBySlug(slug); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return invalid(CodeInvalidCategory, "Invalid category %q", slug)
		}
		return err
	}
	return nil
}

// resolveImageURL replaces ImageURL with a link to the uploaded picture, if any
func (s *MenuService) resolveImageURL(item *models.MenuItem) {
	if item.ImageKey == nil || s.images == nil {
		return
	}
	url, err := s.images.GetImageURL(*item.ImageKey)
	if err != nil {
		log.Printf("warning: failed to resolve image for menu item %d: %v", item.ID, err)
		return
	}
	item.ImageURL = url
}

func (s *MenuService) withImageURLs(items []models.MenuItem) []models.MenuItem {
	for i := range items {
		s.resolveImageURL(&items[i])
	}
	return items
}

func menuItemLookupError(err error, id uint) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(CodeMenuItemNotFound, "Menu item %d not found", id)
	}
	return err
}
