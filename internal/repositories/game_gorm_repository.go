package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gamereview/internal/apperrors"
	"gamereview/internal/models"
)

// GORMGameRepository is a GORM implementation of GameRepository.
type GORMGameRepository struct {
	db *gorm.DB
}

// NewGORMGameRepository creates a new instance of GORMGameRepository.
func NewGORMGameRepository(db *gorm.DB) *GORMGameRepository {
	return &GORMGameRepository{db: db}
}

// GetAll retrieves all games with their categories preloaded, in storage order.
func (r *GORMGameRepository) GetAll() ([]models.Game, error) {
	var games []models.Game
	if err := r.db.Preload("Category").Find(&games).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, err, "failed to get all games")
	}
	return games, nil
}

// GetByID retrieves a single game with its category preloaded.
func (r *GORMGameRepository) GetByID(id uint) (*models.Game, error) {
	var game models.Game
	if err := r.db.Preload("Category").First(&game, "game_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "game with ID %d not found", id)
		}
		return nil, apperrors.Wrap(apperrors.Internal, err, "failed to get game %d", id)
	}
	return &game, nil
}

// Create inserts a new game after verifying the referenced category exists,
// both inside one transaction.
func (r *GORMGameRepository) Create(game *models.Game) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Where("category_id = ?", game.CategoryID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to verify category %d", game.CategoryID)
		}
		if count == 0 {
			return apperrors.New(apperrors.ConstraintViolation, "category with ID %d does not exist", game.CategoryID)
		}
		if err := tx.Omit(clause.Associations).Create(game).Error; err != nil {
			return translateGormError(err, "game violates a constraint", "failed to create game")
		}
		return nil
	})
}

// Update applies the supplied fields only. An empty update is a legal no-op.
func (r *GORMGameRepository) Update(id uint, upd models.GameUpdate) error {
	var game models.Game
	if err := r.db.First(&game, "game_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.NotFound, "game with ID %d not found", id)
		}
		return apperrors.Wrap(apperrors.Internal, err, "failed to get game %d", id)
	}

	fields := upd.Fields()
	if len(fields) == 0 {
		return nil
	}
	if upd.CategoryID != nil {
		var count int64
		if err := r.db.Model(&models.Category{}).Where("category_id = ?", *upd.CategoryID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to verify category %d", *upd.CategoryID)
		}
		if count == 0 {
			return apperrors.New(apperrors.ConstraintViolation, "category with ID %d does not exist", *upd.CategoryID)
		}
	}
	if err := r.db.Model(&game).Updates(fields).Error; err != nil {
		return translateGormError(err, "game violates a constraint", "failed to update game")
	}
	return nil
}

// Delete removes the game and its reviews in one transaction.
func (r *GORMGameRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.First(&game, "game_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.NotFound, "game with ID %d not found", id)
			}
			return apperrors.Wrap(apperrors.Internal, err, "failed to get game %d", id)
		}

		if err := tx.Where("game_id = ?", id).Delete(&models.PlayerGame{}).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to delete reviews for game %d", id)
		}
		if err := tx.Delete(&game).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to delete game %d", id)
		}
		return nil
	})
}
