package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gamereview/internal/models"
	"gamereview/internal/repositories"
	"gamereview/internal/services"
)

func newSeedServices(t *testing.T) (
	*services.CountryService,
	*services.CategoryService,
	*services.GameService,
	*services.PlayerService,
	*services.PlayerGameService,
	*gorm.DB,
) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:seedtest?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Country{},
		&models.Game{},
		&models.Player{},
		&models.PlayerGame{},
	))

	return services.NewCountryService(repositories.NewGORMCountryRepository(db)),
		services.NewCategoryService(repositories.NewGORMCategoryRepository(db)),
		services.NewGameService(repositories.NewGORMGameRepository(db)),
		services.NewPlayerService(repositories.NewGORMPlayerRepository(db)),
		services.NewPlayerGameService(repositories.NewGORMPlayerGameRepository(db), nil),
		db
}

func TestSeedDataPopulatesCatalog(t *testing.T) {
	countries, categories, games, players, reviews, db := newSeedServices(t)

	seedData(countries, categories, games, players, reviews)

	var count int64
	require.NoError(t, db.Model(&models.Country{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
	require.NoError(t, db.Model(&models.Game{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
	require.NoError(t, db.Model(&models.Player{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
	require.NoError(t, db.Model(&models.PlayerGame{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)

	// Seeding is idempotent: a non-empty catalog is left alone.
	seedData(countries, categories, games, players, reviews)
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)

	// Seeded players get hashed credentials, never cleartext.
	var player models.Player
	require.NoError(t, db.First(&player, "username = ?", "gamer123").Error)
	assert.NotEqual(t, "changeme", player.PasswordHash)
	assert.True(t, player.CheckPassword("changeme"))
}
