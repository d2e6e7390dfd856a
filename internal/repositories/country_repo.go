package repositories

import "gamereview/internal/models"

// CountryRepository defines the interface for country data access.
type CountryRepository interface {
	GetAll() ([]models.Country, error)
	GetByID(id uint) (*models.Country, error)
	Create(country *models.Country) error
	Update(id uint, upd models.CountryUpdate) error
	Delete(id uint) error
}
