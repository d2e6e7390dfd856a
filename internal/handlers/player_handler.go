package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gamereview/internal/models"
	"gamereview/internal/services"
)

// PlayerHandler handles HTTP requests for players.
type PlayerHandler struct {
	service  *services.PlayerService
	validate *validator.Validate
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(service *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers player routes. Registration stays public so new
// players can sign up before they hold a token; other writes carry the
// bearer-token middleware.
func (h *PlayerHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/players", h.HandleGetPlayers)
	router.Get("/players/:id", h.HandleGetPlayer)
	router.Get("/players/:id/games", h.HandleGetPlayerGames)
	router.Post("/players", h.HandleCreatePlayer)
	router.Patch("/players/:id", auth, h.HandleUpdatePlayer)
	router.Delete("/players/:id", auth, h.HandleDeletePlayer)
}

// playerResponse inlines the games the player has reviewed as flat
// references. The password hash is never part of any response.
type playerResponse struct {
	PlayerID  uint      `json:"player_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CountryID uint      `json:"country_id"`
	Games     []gameRef `json:"games"`
}

// HandleGetPlayers retrieves all players without nested games.
func (h *PlayerHandler) HandleGetPlayers(c *fiber.Ctx) error {
	players, err := h.service.GetAllPlayers()
	if err != nil {
		return err
	}
	return c.JSON(players)
}

// HandleGetPlayer retrieves a single player with their reviewed games.
func (h *PlayerHandler) HandleGetPlayer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	player, err := h.service.GetPlayerByID(id)
	if err != nil {
		return err
	}
	return c.JSON(playerResponse{
		PlayerID:  player.PlayerID,
		Username:  player.Username,
		Email:     player.Email,
		CountryID: player.CountryID,
		Games:     reviewedGameRefs(player.PlayerGames),
	})
}

// HandleGetPlayerGames retrieves the games a player has reviewed.
func (h *PlayerHandler) HandleGetPlayerGames(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	player, err := h.service.GetPlayerByID(id)
	if err != nil {
		return err
	}
	return c.JSON(reviewedGameRefs(player.PlayerGames))
}

func reviewedGameRefs(playerGames []models.PlayerGame) []gameRef {
	refs := make([]gameRef, 0, len(playerGames))
	for _, pg := range playerGames {
		refs = append(refs, gameRef{GameID: pg.Game.GameID, Title: pg.Game.Title})
	}
	return refs
}

type createPlayerRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	CountryID uint   `json:"country_id" validate:"required"`
}

// HandleCreatePlayer registers a new player. The submitted password is
// hashed before storage and never echoed back.
func (h *PlayerHandler) HandleCreatePlayer(c *fiber.Ctx) error {
	var req createPlayerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := checkRequired(h.validate, req); err != nil {
		return err
	}

	player := &models.Player{
		Username:  req.Username,
		Email:     req.Email,
		CountryID: req.CountryID,
	}
	if err := h.service.RegisterPlayer(player, req.Password); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":   "Player added successfully!",
		"player_id": player.PlayerID,
	})
}

// HandleUpdatePlayer partially updates an existing player.
func (h *PlayerHandler) HandleUpdatePlayer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var upd models.PlayerUpdate
	if err := parseBody(c, &upd); err != nil {
		return err
	}
	if err := h.service.UpdatePlayer(id, upd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Player updated successfully!"})
}

// HandleDeletePlayer deletes a player and their reviews.
func (h *PlayerHandler) HandleDeletePlayer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeletePlayer(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Player deleted successfully!"})
}
