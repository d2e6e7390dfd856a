package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gamereview/internal/handlers"
	"gamereview/internal/logger"
	"gamereview/internal/middleware"
	"gamereview/internal/models"
	"gamereview/internal/repositories"
	"gamereview/internal/services"
	"gamereview/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "app.db")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("TOKEN_TTL_HOURS", 24)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("SEED_DATA", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.AutomaticEnv()

	if err := logger.Initialize(viper.GetString("LOG_LEVEL")); err != nil {
		panic(err)
	}

	// --- Database ---
	var dialector gorm.Dialector
	dsn := viper.GetString("DATABASE_DSN")
	switch driver := viper.GetString("DATABASE_DRIVER"); driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		logger.Log.Fatalf("unsupported DATABASE_DRIVER: %s", driver)
	}

	// TranslateError turns driver-specific constraint errors into GORM
	// sentinel errors, which the repositories map onto the error taxonomy.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Category{},
		&models.Country{},
		&models.Game{},
		&models.Player{},
		&models.PlayerGame{},
	)
	if err != nil {
		logger.Log.Fatalf("failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Review events are auxiliary: when no broker is configured or the
	// connection fails, the API runs without publishing.
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			logger.Log.Warnf("RabbitMQ unavailable, review events disabled: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
			consumeErr := mqClient.ConsumeReviewEvents(func(msg amqp.Delivery) error {
				logger.Log.Infof("review event received (tag %d): %s", msg.DeliveryTag, msg.Body)
				return nil
			})
			if consumeErr != nil {
				logger.Log.Warnf("failed to start review event consumer: %v", consumeErr)
			}
		}
	}

	// --- Repositories ---
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	countryRepo := repositories.NewGORMCountryRepository(db)
	gameRepo := repositories.NewGORMGameRepository(db)
	playerRepo := repositories.NewGORMPlayerRepository(db)
	playerGameRepo := repositories.NewGORMPlayerGameRepository(db)

	// --- Services ---
	categoryService := services.NewCategoryService(categoryRepo)
	countryService := services.NewCountryService(countryRepo)
	gameService := services.NewGameService(gameRepo)
	playerService := services.NewPlayerService(playerRepo)
	playerGameService := services.NewPlayerGameService(playerGameRepo, mqClient)
	tokenTTL := time.Duration(viper.GetInt("TOKEN_TTL_HOURS")) * time.Hour
	authService := services.NewAuthService(playerRepo, viper.GetString("JWT_SECRET"), tokenTTL)

	// --- Handlers ---
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	countryHandler := handlers.NewCountryHandler(countryService)
	gameHandler := handlers.NewGameHandler(gameService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	playerGameHandler := handlers.NewPlayerGameHandler(playerGameService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Fiber App ---
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(fiberlogger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hi Welcome"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Reads are public; writes require a bearer token.
	authRequired := middleware.AuthRequired(authService)

	authHandler.RegisterRoutes(app)
	categoryHandler.RegisterRoutes(app, authRequired)
	countryHandler.RegisterRoutes(app, authRequired)
	gameHandler.RegisterRoutes(app, authRequired)
	playerHandler.RegisterRoutes(app, authRequired)
	playerGameHandler.RegisterRoutes(app, authRequired)

	// --- Seed data (optional, one-shot client of the write operations) ---
	if viper.GetBool("SEED_DATA") {
		seedData(countryService, categoryService, gameService, playerService, playerGameService)
	}

	// --- Start HTTP server with graceful shutdown ---
	appPort := viper.GetString("APP_PORT")
	logger.Log.Infof("starting server on %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			logger.Log.Fatalf("server failed to start: %v", err)
		}
	}()

	<-quit
	logger.Log.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		logger.Log.Errorf("error during shutdown: %v", err)
	}
	logger.Log.Info("server gracefully stopped")
}

// seedData populates an empty database with the sample catalog. It goes
// through the services so it exercises the same write paths as API clients.
func seedData(
	countries *services.CountryService,
	categories *services.CategoryService,
	games *services.GameService,
	players *services.PlayerService,
	reviews *services.PlayerGameService,
) {
	existing, err := categories.GetAllCategories()
	if err != nil || len(existing) > 0 {
		return
	}

	countryNames := []string{"USA", "Japan", "Germany"}
	countryIDs := make([]uint, 0, len(countryNames))
	for _, name := range countryNames {
		country := &models.Country{CountryName: name}
		if err := countries.CreateCountry(country); err != nil {
			logger.Log.Errorf("failed to seed country %s: %v", name, err)
			return
		}
		countryIDs = append(countryIDs, country.CountryID)
	}

	categoryNames := []string{"Action", "RPG", "Strategy"}
	categoryIDs := make([]uint, 0, len(categoryNames))
	for _, name := range categoryNames {
		category := &models.Category{CategoryName: name}
		if err := categories.CreateCategory(category); err != nil {
			logger.Log.Errorf("failed to seed category %s: %v", name, err)
			return
		}
		categoryIDs = append(categoryIDs, category.CategoryID)
	}

	seedGames := []models.Game{
		{Title: "Halo", ReleaseYear: intPtr(2001), PhotoURL: strPtr("https://example.com/halo.jpg"), CategoryID: categoryIDs[0]},
		{Title: "Final Fantasy VII", ReleaseYear: intPtr(1997), PhotoURL: strPtr("https://example.com/ff7.jpg"), CategoryID: categoryIDs[1]},
		{Title: "StarCraft", ReleaseYear: intPtr(1998), PhotoURL: strPtr("https://example.com/starcraft.jpg"), CategoryID: categoryIDs[2]},
	}
	gameIDs := make([]uint, 0, len(seedGames))
	for i := range seedGames {
		if err := games.CreateGame(&seedGames[i]); err != nil {
			logger.Log.Errorf("failed to seed game %s: %v", seedGames[i].Title, err)
			return
		}
		gameIDs = append(gameIDs, seedGames[i].GameID)
	}

	seedPlayers := []models.Player{
		{Username: "gamer123", Email: "gamer123@example.com", CountryID: countryIDs[0]},
		{Username: "pro_player", Email: "pro@example.com", CountryID: countryIDs[1]},
		{Username: "casual_gamer", Email: "casual@example.com", CountryID: countryIDs[2]},
	}
	playerIDs := make([]uint, 0, len(seedPlayers))
	for i := range seedPlayers {
		if err := players.RegisterPlayer(&seedPlayers[i], "changeme"); err != nil {
			logger.Log.Errorf("failed to seed player %s: %v", seedPlayers[i].Username, err)
			return
		}
		playerIDs = append(playerIDs, seedPlayers[i].PlayerID)
	}

	seedReviews := []models.PlayerGame{
		{GameID: gameIDs[0], PlayerID: playerIDs[0], Review: strPtr("Amazing game!"), Rating: floatPtr(4.5)},
		{GameID: gameIDs[1], PlayerID: playerIDs[1], Review: strPtr("Classic RPG"), Rating: floatPtr(5.0)},
		{GameID: gameIDs[2], PlayerID: playerIDs[2], Review: strPtr("Great for strategy fans"), Rating: floatPtr(4.0)},
	}
	for i := range seedReviews {
		if err := reviews.CreateReview(&seedReviews[i]); err != nil {
			logger.Log.Errorf("failed to seed review for game %d: %v", seedReviews[i].GameID, err)
			return
		}
	}

	logger.Log.Info("database seeded successfully")
}

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
