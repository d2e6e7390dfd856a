package services

import (
	"github.com/google/uuid"

	"gamereview/internal/logger"
	"gamereview/internal/models"
	"gamereview/internal/repositories"
	"gamereview/pkg/rabbitmq"
)

// PlayerGameService handles business logic related to reviews.
type PlayerGameService struct {
	repo     repositories.PlayerGameRepository
	mqClient *rabbitmq.Client
}

// NewPlayerGameService creates a new PlayerGameService. mqClient may be nil,
// in which case review events are not published.
func NewPlayerGameService(repo repositories.PlayerGameRepository, mqClient *rabbitmq.Client) *PlayerGameService {
	return &PlayerGameService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllReviews retrieves all reviews with their game and player.
func (s *PlayerGameService) GetAllReviews() ([]models.PlayerGame, error) {
	return s.repo.GetAll()
}

// GetReviewByID retrieves a single review with its game and player.
func (s *PlayerGameService) GetReviewByID(id uint) (*models.PlayerGame, error) {
	return s.repo.GetByID(id)
}

// CreateReview creates a new review. Both referenced rows must already
// exist. On success a review-created event is published for downstream
// consumers; publication failures are logged, never surfaced to the caller.
func (s *PlayerGameService) CreateReview(playerGame *models.PlayerGame) error {
	if err := s.repo.Create(playerGame); err != nil {
		return err
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"event_id":  uuid.New().String(),
			"review_id": playerGame.ID,
			"game_id":   playerGame.GameID,
			"player_id": playerGame.PlayerID,
		}
		if err := s.mqClient.PublishReviewCreated(event); err != nil {
			logger.Log.Warnf("failed to publish review created event for review %d: %v", playerGame.ID, err)
		}
	}

	return nil
}

// UpdateReview partially updates the review text and rating.
func (s *PlayerGameService) UpdateReview(id uint, upd models.PlayerGameUpdate) error {
	return s.repo.Update(id, upd)
}

// DeleteReview deletes a review.
func (s *PlayerGameService) DeleteReview(id uint) error {
	return s.repo.Delete(id)
}
