package services

import (
	"gamereview/internal/apperrors"
	"gamereview/internal/models"
	"gamereview/internal/repositories"
)

// PlayerService handles business logic related to players.
type PlayerService struct {
	repo repositories.PlayerRepository
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(repo repositories.PlayerRepository) *PlayerService {
	return &PlayerService{repo: repo}
}

// GetAllPlayers retrieves all players.
func (s *PlayerService) GetAllPlayers() ([]models.Player, error) {
	return s.repo.GetAll()
}

// GetPlayerByID retrieves a single player with their reviewed games.
func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	return s.repo.GetByID(id)
}

// RegisterPlayer hashes the submitted password and creates the player. The
// referenced country must exist; duplicate usernames or emails surface as
// constraint violations.
func (s *PlayerService) RegisterPlayer(player *models.Player, password string) error {
	if err := player.SetPassword(password); err != nil {
		return apperrors.Wrap(apperrors.Internal, err, "failed to hash password")
	}
	return s.repo.Create(player)
}

// UpdatePlayer partially updates an existing player.
func (s *PlayerService) UpdatePlayer(id uint, upd models.PlayerUpdate) error {
	return s.repo.Update(id, upd)
}

// DeletePlayer deletes a player and cascades to their reviews.
func (s *PlayerService) DeletePlayer(id uint) error {
	return s.repo.Delete(id)
}
