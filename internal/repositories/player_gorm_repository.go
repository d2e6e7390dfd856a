package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gamereview/internal/apperrors"
	"gamereview/internal/models"
)

// GORMPlayerRepository is a GORM implementation of PlayerRepository.
type GORMPlayerRepository struct {
	db *gorm.DB
}

// NewGORMPlayerRepository creates a new instance of GORMPlayerRepository.
func NewGORMPlayerRepository(db *gorm.DB) *GORMPlayerRepository {
	return &GORMPlayerRepository{db: db}
}

// GetAll retrieves all players in storage order.
func (r *GORMPlayerRepository) GetAll() ([]models.Player, error) {
	var players []models.Player
	if err := r.db.Find(&players).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, err, "failed to get all players")
	}
	return players, nil
}

// GetByID retrieves a single player with their reviewed games preloaded.
func (r *GORMPlayerRepository) GetByID(id uint) (*models.Player, error) {
	var player models.Player
	if err := r.db.Preload("PlayerGames.Game").First(&player, "player_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "player with ID %d not found", id)
		}
		return nil, apperrors.Wrap(apperrors.Internal, err, "failed to get player %d", id)
	}
	return &player, nil
}

// GetByUsername retrieves a player by exact username match.
func (r *GORMPlayerRepository) GetByUsername(username string) (*models.Player, error) {
	var player models.Player
	if err := r.db.First(&player, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "player with username %s not found", username)
		}
		return nil, apperrors.Wrap(apperrors.Internal, err, "failed to get player by username %s", username)
	}
	return &player, nil
}

// Create inserts a new player after verifying the referenced country exists,
// both inside one transaction. Duplicate usernames or emails surface as
// constraint violations.
func (r *GORMPlayerRepository) Create(player *models.Player) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Country{}).Where("country_id = ?", player.CountryID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to verify country %d", player.CountryID)
		}
		if count == 0 {
			return apperrors.New(apperrors.ConstraintViolation, "country with ID %d does not exist", player.CountryID)
		}
		if err := tx.Omit(clause.Associations).Create(player).Error; err != nil {
			return translateGormError(err, "username or email already taken", "failed to create player")
		}
		return nil
	})
}

// Update applies the supplied fields only. An empty update is a legal no-op.
func (r *GORMPlayerRepository) Update(id uint, upd models.PlayerUpdate) error {
	var player models.Player
	if err := r.db.First(&player, "player_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.NotFound, "player with ID %d not found", id)
		}
		return apperrors.Wrap(apperrors.Internal, err, "failed to get player %d", id)
	}

	fields, err := upd.Fields()
	if err != nil {
		return apperrors.Wrap(apperrors.Internal, err, "failed to hash password for player %d", id)
	}
	if len(fields) == 0 {
		return nil
	}
	if upd.CountryID != nil {
		var count int64
		if err := r.db.Model(&models.Country{}).Where("country_id = ?", *upd.CountryID).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to verify country %d", *upd.CountryID)
		}
		if count == 0 {
			return apperrors.New(apperrors.ConstraintViolation, "country with ID %d does not exist", *upd.CountryID)
		}
	}
	if err := r.db.Model(&player).Updates(fields).Error; err != nil {
		return translateGormError(err, "username or email already taken", "failed to update player")
	}
	return nil
}

// Delete removes the player and their reviews in one transaction.
func (r *GORMPlayerRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.First(&player, "player_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.NotFound, "player with ID %d not found", id)
			}
			return apperrors.Wrap(apperrors.Internal, err, "failed to get player %d", id)
		}

		if err := tx.Where("player_id = ?", id).Delete(&models.PlayerGame{}).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to delete reviews for player %d", id)
		}
		if err := tx.Delete(&player).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to delete player %d", id)
		}
		return nil
	})
}
