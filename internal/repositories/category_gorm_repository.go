package repositories

import (
	"errors"

	"gorm.io/gorm"

	"gamereview/internal/apperrors"
	"gamereview/internal/models"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// GetAll retrieves all categories in storage order.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, err, "failed to get all categories")
	}
	return categories, nil
}

// GetByID retrieves a single category with its games preloaded.
func (r *GORMCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.Preload("Games").First(&category, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "category with ID %d not found", id)
		}
		return nil, apperrors.Wrap(apperrors.Internal, err, "failed to get category %d", id)
	}
	return &category, nil
}

// Create inserts a new category and populates its primary key.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return translateGormError(err, "category violates a constraint", "failed to create category")
	}
	return nil
}

// Update applies the supplied fields only. An empty update is a legal no-op.
func (r *GORMCategoryRepository) Update(id uint, upd models.CategoryUpdate) error {
	var category models.Category
	if err := r.db.First(&category, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.NotFound, "category with ID %d not found", id)
		}
		return apperrors.Wrap(apperrors.Internal, err, "failed to get category %d", id)
	}

	fields := upd.Fields()
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.Model(&category).Updates(fields).Error; err != nil {
		return translateGormError(err, "category violates a constraint", "failed to update category")
	}
	return nil
}

// Delete removes the category, its games, and the reviews of those games in
// one transaction.
func (r *GORMCategoryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, "category_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.NotFound, "category with ID %d not found", id)
			}
			return apperrors.Wrap(apperrors.Internal, err, "failed to get category %d", id)
		}

		// Cascade depth 2: reviews of the category's games first, then the games.
		gameIDs := tx.Model(&models.Game{}).Select("game_id").Where("category_id = ?", id)
		if err := tx.Where("game_id IN (?)", gameIDs).Delete(&models.PlayerGame{}).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to delete reviews for category %d", id)
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.Game{}).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to delete games for category %d", id)
		}
		if err := tx.Delete(&category).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to delete category %d", id)
		}
		return nil
	})
}
