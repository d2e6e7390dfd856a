package repositories

import "gamereview/internal/models"

// PlayerGameRepository defines the interface for review data access.
type PlayerGameRepository interface {
	GetAll() ([]models.PlayerGame, error)
	GetByID(id uint) (*models.PlayerGame, error)
	Create(playerGame *models.PlayerGame) error
	Update(id uint, upd models.PlayerGameUpdate) error
	Delete(id uint) error
}
