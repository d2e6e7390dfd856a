package services

import (
	"gamereview/internal/models"
	"gamereview/internal/repositories"
)

// GameService handles business logic related to games.
type GameService struct {
	repo repositories.GameRepository
}

// NewGameService creates a new GameService.
func NewGameService(repo repositories.GameRepository) *GameService {
	return &GameService{repo: repo}
}

// GetAllGames retrieves all games with their categories.
func (s *GameService) GetAllGames() ([]models.Game, error) {
	return s.repo.GetAll()
}

// GetGameByID retrieves a single game with its category.
func (s *GameService) GetGameByID(id uint) (*models.Game, error) {
	return s.repo.GetByID(id)
}

// CreateGame creates a new game. The referenced category must exist.
func (s *GameService) CreateGame(game *models.Game) error {
	return s.repo.Create(game)
}

// UpdateGame partially updates an existing game.
func (s *GameService) UpdateGame(id uint, upd models.GameUpdate) error {
	return s.repo.Update(id, upd)
}

// DeleteGame deletes a game and cascades to its reviews.
func (s *GameService) DeleteGame(id uint) error {
	return s.repo.Delete(id)
}
