package repositories

import "gamereview/internal/models"

// GameRepository defines the interface for game data access.
type GameRepository interface {
	GetAll() ([]models.Game, error)
	GetByID(id uint) (*models.Game, error)
	Create(game *models.Game) error
	Update(id uint, upd models.GameUpdate) error
	Delete(id uint) error
}
