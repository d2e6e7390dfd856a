package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamereview/internal/models"
)

func TestPlayerSetPassword(t *testing.T) {
	player := &models.Player{Username: "gamer123"}

	err := player.SetPassword("secret-password")
	require.NoError(t, err)

	assert.NotEmpty(t, player.PasswordHash)
	assert.NotEqual(t, "secret-password", player.PasswordHash, "cleartext must never be stored")
}

func TestPlayerCheckPassword(t *testing.T) {
	player := &models.Player{Username: "gamer123"}
	require.NoError(t, player.SetPassword("secret-password"))

	assert.True(t, player.CheckPassword("secret-password"))
	assert.False(t, player.CheckPassword("wrong-password"))
	assert.False(t, player.CheckPassword(""))
}

func TestPlayerUpdateFieldsHashesPassword(t *testing.T) {
	password := "new-password"
	upd := models.PlayerUpdate{Password: &password}

	fields, err := upd.Fields()
	require.NoError(t, err)

	require.Contains(t, fields, "password_hash")
	assert.NotEqual(t, password, fields["password_hash"])
	assert.NotContains(t, fields, "username")
	assert.NotContains(t, fields, "email")
	assert.NotContains(t, fields, "country_id")
}

func TestUpdateFieldsAbsentMeansUntouched(t *testing.T) {
	assert.Empty(t, models.CategoryUpdate{}.Fields())
	assert.Empty(t, models.CountryUpdate{}.Fields())
	assert.Empty(t, models.GameUpdate{}.Fields())
	assert.Empty(t, models.PlayerGameUpdate{}.Fields())

	title := "Halo"
	year := 2001
	fields := models.GameUpdate{Title: &title, ReleaseYear: &year}.Fields()
	assert.Equal(t, map[string]interface{}{"title": "Halo", "release_year": 2001}, fields)
}
