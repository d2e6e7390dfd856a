package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gamereview/internal/models"
	"gamereview/internal/services"
)

// PlayerGameHandler handles HTTP requests for reviews.
type PlayerGameHandler struct {
	service  *services.PlayerGameService
	validate *validator.Validate
}

// NewPlayerGameHandler creates a new PlayerGameHandler.
func NewPlayerGameHandler(service *services.PlayerGameService) *PlayerGameHandler {
	return &PlayerGameHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers review routes: reads are public, writes carry the
// bearer-token middleware.
func (h *PlayerGameHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/player_games", h.HandleGetReviews)
	router.Get("/player_games/:id", h.HandleGetReview)
	router.Post("/player_games", auth, h.HandleCreateReview)
	router.Patch("/player_games/:id", auth, h.HandleUpdateReview)
	router.Delete("/player_games/:id", auth, h.HandleDeleteReview)
}

// reviewResponse denormalizes to the game's title and the player's username
// so clients do not need a second lookup for either.
type reviewResponse struct {
	ID     uint     `json:"id"`
	Game   string   `json:"game"`
	Player string   `json:"player"`
	Review *string  `json:"review"`
	Rating *float64 `json:"rating"`
}

func newReviewResponse(pg *models.PlayerGame) reviewResponse {
	return reviewResponse{
		ID:     pg.ID,
		Game:   pg.Game.Title,
		Player: pg.Player.Username,
		Review: pg.Review,
		Rating: pg.Rating,
	}
}

// HandleGetReviews retrieves all reviews.
func (h *PlayerGameHandler) HandleGetReviews(c *fiber.Ctx) error {
	playerGames, err := h.service.GetAllReviews()
	if err != nil {
		return err
	}

	resp := make([]reviewResponse, 0, len(playerGames))
	for i := range playerGames {
		resp = append(resp, newReviewResponse(&playerGames[i]))
	}
	return c.JSON(resp)
}

// HandleGetReview retrieves a single review by its ID.
func (h *PlayerGameHandler) HandleGetReview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	playerGame, err := h.service.GetReviewByID(id)
	if err != nil {
		return err
	}
	return c.JSON(newReviewResponse(playerGame))
}

type createPlayerGameRequest struct {
	GameID   uint     `json:"game_id" validate:"required"`
	PlayerID uint     `json:"player_id" validate:"required"`
	Review   *string  `json:"review"`
	Rating   *float64 `json:"rating"`
}

// HandleCreateReview creates a new review linking a player to a game.
func (h *PlayerGameHandler) HandleCreateReview(c *fiber.Ctx) error {
	var req createPlayerGameRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := checkRequired(h.validate, req); err != nil {
		return err
	}

	playerGame := &models.PlayerGame{
		GameID:   req.GameID,
		PlayerID: req.PlayerID,
		Review:   req.Review,
		Rating:   req.Rating,
	}
	if err := h.service.CreateReview(playerGame); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Review added successfully!",
		"id":      playerGame.ID,
	})
}

// HandleUpdateReview partially updates the review text and rating. The game
// and player references are immutable.
func (h *PlayerGameHandler) HandleUpdateReview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var upd models.PlayerGameUpdate
	if err := parseBody(c, &upd); err != nil {
		return err
	}
	if err := h.service.UpdateReview(id, upd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Review updated successfully!"})
}

// HandleDeleteReview deletes a review.
func (h *PlayerGameHandler) HandleDeleteReview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteReview(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Review deleted successfully!"})
}
