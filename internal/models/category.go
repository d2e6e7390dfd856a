package models

// Category groups games by genre (e.g. Action, RPG).
type Category struct {
	CategoryID   uint   `json:"category_id" gorm:"primaryKey"`
	CategoryName string `json:"category_name" gorm:"size:50;not null"`

	// Deleting a category deletes all of its games.
	Games []Game `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// CategoryUpdate is a typed partial update. A nil field is absent and leaves
// the stored value untouched.
type CategoryUpdate struct {
	CategoryName *string `json:"category_name"`
}

// Fields returns the column assignments for the supplied fields only.
func (u CategoryUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.CategoryName != nil {
		fields["category_name"] = *u.CategoryName
	}
	return fields
}
