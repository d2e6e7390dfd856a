package models

import "golang.org/x/crypto/bcrypt"

// Player is a registered reviewer. The password is stored only as a bcrypt
// hash and is never serialized.
type Player struct {
	PlayerID     uint   `json:"player_id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"size:30;uniqueIndex;not null"`
	Email        string `json:"email" gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	CountryID    uint   `json:"country_id" gorm:"not null"`

	Country Country `json:"-"`
	// Deleting a player deletes all of their reviews.
	PlayerGames []PlayerGame `json:"-" gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}

// SetPassword hashes raw with bcrypt and stores the result. The cleartext is
// never persisted.
func (p *Player) SetPassword(raw string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether raw matches the stored hash. bcrypt's
// comparison is constant-time.
func (p *Player) CheckPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(raw)) == nil
}

// PlayerUpdate is a typed partial update. A nil field is absent and leaves
// the stored value untouched. A supplied password is re-hashed before it
// reaches the database.
type PlayerUpdate struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	CountryID *uint   `json:"country_id"`
}

// Fields returns the column assignments for the supplied fields only,
// hashing the password when one was provided.
func (u PlayerUpdate) Fields() (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if u.Username != nil {
		fields["username"] = *u.Username
	}
	if u.Email != nil {
		fields["email"] = *u.Email
	}
	if u.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = string(hash)
	}
	if u.CountryID != nil {
		fields["country_id"] = *u.CountryID
	}
	return fields, nil
}
