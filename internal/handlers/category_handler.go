package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gamereview/internal/models"
	"gamereview/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers category routes: reads are public, writes carry
// the bearer-token middleware.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/categories", h.HandleGetCategories)
	router.Get("/categories/:id", h.HandleGetCategory)
	router.Post("/categories", auth, h.HandleCreateCategory)
	router.Patch("/categories/:id", auth, h.HandleUpdateCategory)
	router.Delete("/categories/:id", auth, h.HandleDeleteCategory)
}

// gameRef is the flat {id, display-field} pair used when a category or
// player inlines its games.
type gameRef struct {
	GameID uint   `json:"game_id"`
	Title  string `json:"title"`
}

// categoryResponse inlines the category's games as flat references. The
// collection response omits them.
type categoryResponse struct {
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Games        []gameRef `json:"games"`
}

// HandleGetCategories retrieves all categories without nested games.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// HandleGetCategory retrieves a single category with its games inlined.
func (h *CategoryHandler) HandleGetCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	category, err := h.service.GetCategoryByID(id)
	if err != nil {
		return err
	}

	games := make([]gameRef, 0, len(category.Games))
	for _, game := range category.Games {
		games = append(games, gameRef{GameID: game.GameID, Title: game.Title})
	}
	return c.JSON(categoryResponse{
		CategoryID:   category.CategoryID,
		CategoryName: category.CategoryName,
		Games:        games,
	})
}

type createCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required"`
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req createCategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := checkRequired(h.validate, req); err != nil {
		return err
	}

	category := &models.Category{CategoryName: req.CategoryName}
	if err := h.service.CreateCategory(category); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":     "Category added successfully!",
		"category_id": category.CategoryID,
	})
}

// HandleUpdateCategory partially updates an existing category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var upd models.CategoryUpdate
	if err := parseBody(c, &upd); err != nil {
		return err
	}
	if err := h.service.UpdateCategory(id, upd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Category updated successfully!"})
}

// HandleDeleteCategory deletes a category, cascading to its games and their
// reviews.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCategory(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Category deleted successfully!"})
}
