package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gamereview/internal/apperrors"
	"gamereview/internal/models"
)

// GORMPlayerGameRepository is a GORM implementation of PlayerGameRepository.
type GORMPlayerGameRepository struct {
	db *gorm.DB
}

// NewGORMPlayerGameRepository creates a new instance of GORMPlayerGameRepository.
func NewGORMPlayerGameRepository(db *gorm.DB) *GORMPlayerGameRepository {
	return &GORMPlayerGameRepository{db: db}
}

// GetAll retrieves all reviews with their game and player preloaded, in
// storage order.
func (r *GORMPlayerGameRepository) GetAll() ([]models.PlayerGame, error) {
	var playerGames []models.PlayerGame
	if err := r.db.Preload("Game").Preload("Player").Find(&playerGames).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, err, "failed to get all reviews")
	}
	return playerGames, nil
}

// GetByID retrieves a single review with its game and player preloaded.
func (r *GORMPlayerGameRepository) GetByID(id uint) (*models.PlayerGame, error) {
	var playerGame models.PlayerGame
	if err := r.db.Preload("Game").Preload("Player").First(&playerGame, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "review with ID %d not found", id)
		}
		return nil, apperrors.Wrap(apperrors.Internal, err, "failed to get review %d", id)
	}
	return &playerGame, nil
}

// Create inserts a new review after verifying both referenced rows exist,
// all inside one transaction.
func (r *GORMPlayerGameRepository) Create(playerGame *models.PlayerGame) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Game{}).Where("game_id = ?", playerGame.GameID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to verify game %d", playerGame.GameID)
		}
		if count == 0 {
			return apperrors.New(apperrors.ConstraintViolation, "game with ID %d does not exist", playerGame.GameID)
		}
		if err := tx.Model(&models.Player{}).Where("player_id = ?", playerGame.PlayerID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to verify player %d", playerGame.PlayerID)
		}
		if count == 0 {
			return apperrors.New(apperrors.ConstraintViolation, "player with ID %d does not exist", playerGame.PlayerID)
		}
		if err := tx.Omit(clause.Associations).Create(playerGame).Error; err != nil {
			return translateGormError(err, "review violates a constraint", "failed to create review")
		}
		return nil
	})
}

// Update applies review and rating only; the game and player references are
// immutable. An empty update is a legal no-op.
func (r *GORMPlayerGameRepository) Update(id uint, upd models.PlayerGameUpdate) error {
	var playerGame models.PlayerGame
	if err := r.db.First(&playerGame, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.NotFound, "review with ID %d not found", id)
		}
		return apperrors.Wrap(apperrors.Internal, err, "failed to get review %d", id)
	}

	fields := upd.Fields()
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.Model(&playerGame).Updates(fields).Error; err != nil {
		return apperrors.Wrap(apperrors.Internal, err, "failed to update review %d", id)
	}
	return nil
}

// Delete removes the review. Reviews have no dependent rows.
func (r *GORMPlayerGameRepository) Delete(id uint) error {
	res := r.db.Delete(&models.PlayerGame{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.Internal, res.Error, "failed to delete review %d", id)
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.NotFound, "review with ID %d not found", id)
	}
	return nil
}
