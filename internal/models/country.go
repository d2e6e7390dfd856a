package models

// Country is the home country a player registers under.
type Country struct {
	CountryID   uint   `json:"country_id" gorm:"primaryKey"`
	CountryName string `json:"country_name" gorm:"size:50;not null"`

	// Deleting a country deletes all of its players.
	Players []Player `json:"-" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
}

// CountryUpdate is a typed partial update. A nil field is absent and leaves
// the stored value untouched.
type CountryUpdate struct {
	CountryName *string `json:"country_name"`
}

// Fields returns the column assignments for the supplied fields only.
func (u CountryUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.CountryName != nil {
		fields["country_name"] = *u.CountryName
	}
	return fields
}
