package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gamereview/internal/models"
	"gamereview/internal/services"
)

// CountryHandler handles HTTP requests for countries.
type CountryHandler struct {
	service  *services.CountryService
	validate *validator.Validate
}

// NewCountryHandler creates a new CountryHandler.
func NewCountryHandler(service *services.CountryService) *CountryHandler {
	return &CountryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers country routes: reads are public, writes carry
// the bearer-token middleware.
func (h *CountryHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/countries", h.HandleGetCountries)
	router.Get("/countries/:id", h.HandleGetCountry)
	router.Get("/countries/:id/players", h.HandleGetCountryPlayers)
	router.Post("/countries", auth, h.HandleCreateCountry)
	router.Patch("/countries/:id", auth, h.HandleUpdateCountry)
	router.Delete("/countries/:id", auth, h.HandleDeleteCountry)
}

// playerRef is the flat {id, display-field} pair used when a country inlines
// its players.
type playerRef struct {
	PlayerID uint   `json:"player_id"`
	Username string `json:"username"`
}

// countryResponse inlines the country's players as flat references. The
// collection response omits them.
type countryResponse struct {
	CountryID   uint        `json:"country_id"`
	CountryName string      `json:"country_name"`
	Players     []playerRef `json:"players"`
}

// HandleGetCountries retrieves all countries without nested players.
func (h *CountryHandler) HandleGetCountries(c *fiber.Ctx) error {
	countries, err := h.service.GetAllCountries()
	if err != nil {
		return err
	}
	return c.JSON(countries)
}

// HandleGetCountry retrieves a single country with its players inlined.
func (h *CountryHandler) HandleGetCountry(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	country, err := h.service.GetCountryByID(id)
	if err != nil {
		return err
	}
	return c.JSON(countryResponse{
		CountryID:   country.CountryID,
		CountryName: country.CountryName,
		Players:     playerRefs(country.Players),
	})
}

// HandleGetCountryPlayers retrieves the players registered under a country.
func (h *CountryHandler) HandleGetCountryPlayers(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	country, err := h.service.GetCountryByID(id)
	if err != nil {
		return err
	}
	return c.JSON(playerRefs(country.Players))
}

func playerRefs(players []models.Player) []playerRef {
	refs := make([]playerRef, 0, len(players))
	for _, player := range players {
		refs = append(refs, playerRef{PlayerID: player.PlayerID, Username: player.Username})
	}
	return refs
}

type createCountryRequest struct {
	CountryName string `json:"country_name" validate:"required"`
}

// HandleCreateCountry creates a new country.
func (h *CountryHandler) HandleCreateCountry(c *fiber.Ctx) error {
	var req createCountryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := checkRequired(h.validate, req); err != nil {
		return err
	}

	country := &models.Country{CountryName: req.CountryName}
	if err := h.service.CreateCountry(country); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":    "Country added successfully!",
		"country_id": country.CountryID,
	})
}

// HandleUpdateCountry partially updates an existing country.
func (h *CountryHandler) HandleUpdateCountry(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var upd models.CountryUpdate
	if err := parseBody(c, &upd); err != nil {
		return err
	}
	if err := h.service.UpdateCountry(id, upd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Country updated successfully!"})
}

// HandleDeleteCountry deletes a country, cascading to its players and their
// reviews.
func (h *CountryHandler) HandleDeleteCountry(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCountry(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Country deleted successfully!"})
}
