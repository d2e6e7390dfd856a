package models

// PlayerGame associates a player with a game they have reviewed. A player may
// review the same game more than once, so there is deliberately no uniqueness
// constraint on (game_id, player_id). Rating carries no enforced range.
type PlayerGame struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	GameID   uint     `json:"game_id" gorm:"not null"`
	PlayerID uint     `json:"player_id" gorm:"not null"`
	Review   *string  `json:"review" gorm:"size:255"`
	Rating   *float64 `json:"rating"`

	Game   Game   `json:"-"`
	Player Player `json:"-"`
}

// PlayerGameUpdate covers the mutable columns only; the game and player
// references are immutable after creation.
type PlayerGameUpdate struct {
	Review *string  `json:"review"`
	Rating *float64 `json:"rating"`
}

// Fields returns the column assignments for the supplied fields only.
func (u PlayerGameUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Review != nil {
		fields["review"] = *u.Review
	}
	if u.Rating != nil {
		fields["rating"] = *u.Rating
	}
	return fields
}
