package repositories_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gamereview/internal/apperrors"
	"gamereview/internal/models"
	"gamereview/internal/repositories"
)

// setupDB opens a fresh in-memory SQLite database per test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Category{},
		&models.Country{},
		&models.Game{},
		&models.Player{},
		&models.PlayerGame{},
	)
	require.NoError(t, err)
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{CategoryName: name}
	require.NoError(t, repositories.NewGORMCategoryRepository(db).Create(category))
	return category
}

func seedCountry(t *testing.T, db *gorm.DB, name string) *models.Country {
	t.Helper()
	country := &models.Country{CountryName: name}
	require.NoError(t, repositories.NewGORMCountryRepository(db).Create(country))
	return country
}

func seedGame(t *testing.T, db *gorm.DB, title string, categoryID uint) *models.Game {
	t.Helper()
	game := &models.Game{Title: title, CategoryID: categoryID}
	require.NoError(t, repositories.NewGORMGameRepository(db).Create(game))
	return game
}

func seedPlayer(t *testing.T, db *gorm.DB, username string, countryID uint) *models.Player {
	t.Helper()
	player := &models.Player{
		Username:  username,
		Email:     username + "@example.com",
		CountryID: countryID,
	}
	require.NoError(t, player.SetPassword("password123"))
	require.NoError(t, repositories.NewGORMPlayerRepository(db).Create(player))
	return player
}

func seedReview(t *testing.T, db *gorm.DB, gameID, playerID uint) *models.PlayerGame {
	t.Helper()
	playerGame := &models.PlayerGame{GameID: gameID, PlayerID: playerID}
	require.NoError(t, repositories.NewGORMPlayerGameRepository(db).Create(playerGame))
	return playerGame
}

func TestCategoryCreateAndGetRoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMCategoryRepository(db)

	created := seedCategory(t, db, "Action")
	require.NotZero(t, created.CategoryID)

	got, err := repo.GetByID(created.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, "Action", got.CategoryName)
}

func TestGetByIDNotFound(t *testing.T) {
	db := setupDB(t)

	_, err := repositories.NewGORMCategoryRepository(db).GetByID(42)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.NotFound))

	_, err = repositories.NewGORMGameRepository(db).GetByID(42)
	assert.True(t, apperrors.IsKind(err, apperrors.NotFound))

	err = repositories.NewGORMPlayerGameRepository(db).Delete(42)
	assert.True(t, apperrors.IsKind(err, apperrors.NotFound))
}

func TestGetAllEmptyIsNotAnError(t *testing.T) {
	db := setupDB(t)

	games, err := repositories.NewGORMGameRepository(db).GetAll()
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestCategoryDeleteCascadesDepthTwo(t *testing.T) {
	db := setupDB(t)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	gameRepo := repositories.NewGORMGameRepository(db)
	reviewRepo := repositories.NewGORMPlayerGameRepository(db)

	category := seedCategory(t, db, "Action")
	other := seedCategory(t, db, "RPG")
	country := seedCountry(t, db, "USA")
	player := seedPlayer(t, db, "gamer123", country.CountryID)

	game1 := seedGame(t, db, "Halo", category.CategoryID)
	game2 := seedGame(t, db, "Doom", category.CategoryID)
	survivor := seedGame(t, db, "Final Fantasy VII", other.CategoryID)
	seedReview(t, db, game1.GameID, player.PlayerID)
	seedReview(t, db, game2.GameID, player.PlayerID)
	kept := seedReview(t, db, survivor.GameID, player.PlayerID)

	require.NoError(t, categoryRepo.Delete(category.CategoryID))

	games, err := gameRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, survivor.GameID, games[0].GameID)

	reviews, err := reviewRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, kept.ID, reviews[0].ID)
}

func TestCountryDeleteCascadesToPlayersAndReviews(t *testing.T) {
	db := setupDB(t)
	countryRepo := repositories.NewGORMCountryRepository(db)
	playerRepo := repositories.NewGORMPlayerRepository(db)
	reviewRepo := repositories.NewGORMPlayerGameRepository(db)

	country := seedCountry(t, db, "Japan")
	category := seedCategory(t, db, "RPG")
	game := seedGame(t, db, "Final Fantasy VII", category.CategoryID)
	player := seedPlayer(t, db, "pro_player", country.CountryID)
	seedReview(t, db, game.GameID, player.PlayerID)

	require.NoError(t, countryRepo.Delete(country.CountryID))

	players, err := playerRepo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, players)

	reviews, err := reviewRepo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestPlayerUniqueConstraints(t *testing.T) {
	db := setupDB(t)
	playerRepo := repositories.NewGORMPlayerRepository(db)

	country := seedCountry(t, db, "USA")
	seedPlayer(t, db, "gamer123", country.CountryID)

	dupUsername := &models.Player{
		Username:  "gamer123",
		Email:     "other@example.com",
		CountryID: country.CountryID,
	}
	require.NoError(t, dupUsername.SetPassword("password123"))
	err := playerRepo.Create(dupUsername)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.ConstraintViolation))

	dupEmail := &models.Player{
		Username:  "someone_else",
		Email:     "gamer123@example.com",
		CountryID: country.CountryID,
	}
	require.NoError(t, dupEmail.SetPassword("password123"))
	err = playerRepo.Create(dupEmail)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.ConstraintViolation))
}

func TestForeignKeysVerifiedOnCreate(t *testing.T) {
	db := setupDB(t)

	game := &models.Game{Title: "Orphan", CategoryID: 99}
	err := repositories.NewGORMGameRepository(db).Create(game)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.ConstraintViolation))

	player := &models.Player{Username: "nomad", Email: "nomad@example.com", CountryID: 99}
	require.NoError(t, player.SetPassword("password123"))
	err = repositories.NewGORMPlayerRepository(db).Create(player)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.ConstraintViolation))

	playerGame := &models.PlayerGame{GameID: 99, PlayerID: 99}
	err = repositories.NewGORMPlayerGameRepository(db).Create(playerGame)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.ConstraintViolation))
}

func TestEmptyUpdateIsNoOp(t *testing.T) {
	db := setupDB(t)
	gameRepo := repositories.NewGORMGameRepository(db)

	category := seedCategory(t, db, "Action")
	year := 2001
	game := &models.Game{Title: "Halo", ReleaseYear: &year, CategoryID: category.CategoryID}
	require.NoError(t, gameRepo.Create(game))

	require.NoError(t, gameRepo.Update(game.GameID, models.GameUpdate{}))

	got, err := gameRepo.GetByID(game.GameID)
	require.NoError(t, err)
	assert.Equal(t, "Halo", got.Title)
	require.NotNil(t, got.ReleaseYear)
	assert.Equal(t, 2001, *got.ReleaseYear)
	assert.Nil(t, got.PhotoURL)
}

func TestPartialUpdateTouchesOnlySuppliedFields(t *testing.T) {
	db := setupDB(t)
	gameRepo := repositories.NewGORMGameRepository(db)

	category := seedCategory(t, db, "Action")
	game := seedGame(t, db, "Halo", category.CategoryID)

	year := 2001
	require.NoError(t, gameRepo.Update(game.GameID, models.GameUpdate{ReleaseYear: &year}))

	got, err := gameRepo.GetByID(game.GameID)
	require.NoError(t, err)
	assert.Equal(t, "Halo", got.Title, "title must be untouched")
	require.NotNil(t, got.ReleaseYear)
	assert.Equal(t, 2001, *got.ReleaseYear)
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	db := setupDB(t)

	name := "Adventure"
	err := repositories.NewGORMCategoryRepository(db).Update(42, models.CategoryUpdate{CategoryName: &name})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.NotFound))
}

func TestDuplicateReviewsAllowed(t *testing.T) {
	db := setupDB(t)
	reviewRepo := repositories.NewGORMPlayerGameRepository(db)

	category := seedCategory(t, db, "Action")
	country := seedCountry(t, db, "USA")
	game := seedGame(t, db, "Halo", category.CategoryID)
	player := seedPlayer(t, db, "gamer123", country.CountryID)

	// The same (game, player) pair may review repeatedly.
	seedReview(t, db, game.GameID, player.PlayerID)
	seedReview(t, db, game.GameID, player.PlayerID)

	reviews, err := reviewRepo.GetAll()
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestReviewPreloadsGameAndPlayer(t *testing.T) {
	db := setupDB(t)
	reviewRepo := repositories.NewGORMPlayerGameRepository(db)

	category := seedCategory(t, db, "Action")
	country := seedCountry(t, db, "USA")
	game := seedGame(t, db, "Halo", category.CategoryID)
	player := seedPlayer(t, db, "gamer123", country.CountryID)
	review := seedReview(t, db, game.GameID, player.PlayerID)

	got, err := reviewRepo.GetByID(review.ID)
	require.NoError(t, err)
	assert.Equal(t, "Halo", got.Game.Title)
	assert.Equal(t, "gamer123", got.Player.Username)
}
