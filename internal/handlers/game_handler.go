package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gamereview/internal/models"
	"gamereview/internal/services"
)

// GameHandler handles HTTP requests for games.
type GameHandler struct {
	service  *services.GameService
	validate *validator.Validate
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(service *services.GameService) *GameHandler {
	return &GameHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers game routes: reads are public, writes carry the
// bearer-token middleware.
func (h *GameHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/games", h.HandleGetGames)
	router.Get("/games/:id", h.HandleGetGame)
	router.Post("/games", auth, h.HandleCreateGame)
	router.Patch("/games/:id", auth, h.HandleUpdateGame)
	router.Delete("/games/:id", auth, h.HandleDeleteGame)
}

// gameResponse denormalizes the category to its display name so clients do
// not need a second lookup.
type gameResponse struct {
	GameID      uint    `json:"game_id"`
	Title       string  `json:"title"`
	ReleaseYear *int    `json:"release_year"`
	PhotoURL    *string `json:"photo_url"`
	Category    string  `json:"category"`
}

func newGameResponse(game *models.Game) gameResponse {
	return gameResponse{
		GameID:      game.GameID,
		Title:       game.Title,
		ReleaseYear: game.ReleaseYear,
		PhotoURL:    game.PhotoURL,
		Category:    game.Category.CategoryName,
	}
}

// HandleGetGames retrieves all games.
func (h *GameHandler) HandleGetGames(c *fiber.Ctx) error {
	games, err := h.service.GetAllGames()
	if err != nil {
		return err
	}

	resp := make([]gameResponse, 0, len(games))
	for i := range games {
		resp = append(resp, newGameResponse(&games[i]))
	}
	return c.JSON(resp)
}

// HandleGetGame retrieves a single game by its ID.
func (h *GameHandler) HandleGetGame(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	game, err := h.service.GetGameByID(id)
	if err != nil {
		return err
	}
	return c.JSON(newGameResponse(game))
}

type createGameRequest struct {
	Title       string  `json:"title" validate:"required"`
	ReleaseYear *int    `json:"release_year"`
	PhotoURL    *string `json:"photo_url"`
	CategoryID  uint    `json:"category_id" validate:"required"`
}

// HandleCreateGame creates a new game.
func (h *GameHandler) HandleCreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := checkRequired(h.validate, req); err != nil {
		return err
	}

	game := &models.Game{
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
		PhotoURL:    req.PhotoURL,
		CategoryID:  req.CategoryID,
	}
	if err := h.service.CreateGame(game); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Game added successfully!",
		"game_id": game.GameID,
	})
}

// HandleUpdateGame partially updates an existing game. Only fields present
// in the payload are applied.
func (h *GameHandler) HandleUpdateGame(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var upd models.GameUpdate
	if err := parseBody(c, &upd); err != nil {
		return err
	}
	if err := h.service.UpdateGame(id, upd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Game updated successfully!"})
}

// HandleDeleteGame deletes a game and its reviews.
func (h *GameHandler) HandleDeleteGame(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteGame(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Game deleted successfully!"})
}
