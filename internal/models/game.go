package models

// Game is a catalog entry belonging to exactly one category.
// ReleaseYear and PhotoURL are nullable columns, so they are pointers.
type Game struct {
	GameID      uint     `json:"game_id" gorm:"primaryKey"`
	Title       string   `json:"title" gorm:"size:100;not null"`
	ReleaseYear *int     `json:"release_year"`
	PhotoURL    *string  `json:"photo_url" gorm:"size:255"`
	CategoryID  uint     `json:"category_id" gorm:"not null"`

	Category Category `json:"-"`
	// Deleting a game deletes all of its reviews.
	PlayerGames []PlayerGame `json:"-" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// GameUpdate is a typed partial update. A nil field is absent and leaves the
// stored value untouched.
type GameUpdate struct {
	Title       *string `json:"title"`
	ReleaseYear *int    `json:"release_year"`
	PhotoURL    *string `json:"photo_url"`
	CategoryID  *uint   `json:"category_id"`
}

// Fields returns the column assignments for the supplied fields only.
func (u GameUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.ReleaseYear != nil {
		fields["release_year"] = *u.ReleaseYear
	}
	if u.PhotoURL != nil {
		fields["photo_url"] = *u.PhotoURL
	}
	if u.CategoryID != nil {
		fields["category_id"] = *u.CategoryID
	}
	return fields
}
