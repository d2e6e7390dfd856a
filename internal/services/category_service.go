package services

import (
	"gamereview/internal/models"
	"gamereview/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category with its games.
func (s *CategoryService) GetCategoryByID(id uint) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// CreateCategory creates a new category.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	return s.repo.Create(category)
}

// UpdateCategory partially updates an existing category.
func (s *CategoryService) UpdateCategory(id uint, upd models.CategoryUpdate) error {
	return s.repo.Update(id, upd)
}

// DeleteCategory deletes a category and cascades to its games and their
// reviews.
func (s *CategoryService) DeleteCategory(id uint) error {
	return s.repo.Delete(id)
}
