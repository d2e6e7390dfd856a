package repositories

import "gamereview/internal/models"

// PlayerRepository defines the interface for player data access.
type PlayerRepository interface {
	GetAll() ([]models.Player, error)
	GetByID(id uint) (*models.Player, error)
	GetByUsername(username string) (*models.Player, error)
	Create(player *models.Player) error
	Update(id uint, upd models.PlayerUpdate) error
	Delete(id uint) error
}
