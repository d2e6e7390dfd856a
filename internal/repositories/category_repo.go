package repositories

import "gamereview/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Create(category *models.Category) error
	Update(id uint, upd models.CategoryUpdate) error
	Delete(id uint) error
}
