package services

import (
	"errors"
	"log"
	"strings"

	"github.com/kendall-kelly/cafe-pos-api/models"
	"github.com/kendall-kelly/cafe-pos-api/repository"
)

// DefaultCategoryEmoji is used when a category is created without an emoji
const DefaultCategoryEmoji = "📁"

// CreateCategoryInput holds the data needed to add a category
type CreateCategoryInput struct {
	Name      string
	Slug      string
	Emoji     string
	SortOrder int
}

// UpdateCategoryInput holds a partial category update
type UpdateCategoryInput struct {
	Name      *string
	Slug      *string
	Emoji     *string
	SortOrder *int
}

// CategoryService manages menu categories
type CategoryService struct {
	store repository.Store
}

// NewCategoryService creates a category service
func NewCategoryService(store repository.Store) *CategoryService {
	return &CategoryService{store: store}
}

// ListCategories returns categories by sort order, then name
func (s *CategoryService) ListCategories() ([]models.Category, error) {
	return s.store.Categories().List()
}

// GetCategory returns a single category
func (s *CategoryService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.store.Categories().GetByID(id)
	if err != nil {
		return nil, categoryLookupError(err, id)
	}
	return category, nil
}

// CreateCategory adds a category with a unique name and slug
func (s *CategoryService) CreateCategory(in CreateCategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(in.Name)
	slug := strings.TrimSpace(in.Slug)
	if name == "" || slug == "" {
		return nil, invalid(CodeMissingField, "Name and slug are required")
	}

	if err := s.ensureSlugFree(slug); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(name); err != nil {
		return nil, err
	}

	emoji := in.Emoji
	if emoji == "" {
		emoji = DefaultCategoryEmoji
	}

	category := &models.Category{
		Name:      name,
		Slug:      slug,
		Emoji:     emoji,
		SortOrder: in.SortOrder,
	}
	if err := s.store.Categories().Create(category); err != nil {
		if isUniqueViolation(err) {
			return nil, conflict(CodeSlugExists, "Category slug already exists")
		}
		return nil, err
	}

	log.Printf("Category %q created", category.Slug)
	return category, nil
}

// UpdateCategory applies a partial update. Menu items keep pointing at the
// old slug if it changes.
func (s *CategoryService) UpdateCategory(id uint, in UpdateCategoryInput) (*models.Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, invalid(CodeMissingField, "Name cannot be empty")
		}
		if name != category.Name {
			if err := s.ensureNameFree(name); err != nil {
				return nil, err
			}
			category.Name = name
		}
	}
	if in.Slug != nil {
		slug := strings.TrimSpace(*in.Slug)
		if slug == "" {
			return nil, invalid(CodeMissingField, "Slug cannot be empty")
		}
		if slug != category.Slug {
			if err := s.ensureSlugFree(slug); err != nil {
				return nil, err
			}
			category.Slug = slug
		}
	}
	if in.Emoji != nil {
		category.Emoji = *in.Emoji
	}
	if in.SortOrder != nil {
		category.SortOrder = *in.SortOrder
	}

	if err := s.store.Categories().Update(category); err != nil {
		if isUniqueViolation(err) {
			return nil, conflict(CodeSlugExists, "Category slug already exists")
		}
		return nil, err
	}

	return s.GetCategory(id)
}

// DeleteCategory removes a category that no menu item references
func (s *CategoryService) DeleteCategory(id uint) (*models.Category, error) {
	var deleted *models.Category

	err := s.store.Transaction(func(tx repository.Store) error {
		category, err := tx.Categories().GetByID(id)
		if err != nil {
			return categoryLookupError(err, id)
		}

		count, err := tx.MenuItems().CountByCategory(category.Slug)
		if err != nil {
			return err
		}
		if count > 0 {
			return referential(CodeCategoryInUse,
				"Cannot delete category %q because it contains menu items.", category.Name)
		}

		if err := tx.Categories().Delete(id); err != nil {
			return categoryLookupError(err, id)
		}
		deleted = category
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Category %q deleted", deleted.Slug)
	return deleted, nil
}

func (s *CategoryService) ensureSlugFree(slug string) error {
	_, err := s.store.Categories().GetBySlug(slug)
	if err == nil {
		return conflict(CodeSlugExists, "Category slug already exists")
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

func (s *CategoryService) ensureNameFree(name string) error {
	_, err := s.store.Categories().GetByName(name)
	if err == nil {
		return conflict(CodeNameExists, "Category name already exists")
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

func categoryLookupError(err error, id uint) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(CodeCategoryNotFound, "Category %d not found", id)
	}
	return err
}
