package services

import (
	"gamereview/internal/models"
	"gamereview/internal/repositories"
)

// CountryService handles business logic related to countries.
type CountryService struct {
	repo repositories.CountryRepository
}

// NewCountryService creates a new CountryService.
func NewCountryService(repo repositories.CountryRepository) *CountryService {
	return &CountryService{repo: repo}
}

// GetAllCountries retrieves all countries.
func (s *CountryService) GetAllCountries() ([]models.Country, error) {
	return s.repo.GetAll()
}

// GetCountryByID retrieves a single country with its players.
func (s *CountryService) GetCountryByID(id uint) (*models.Country, error) {
	return s.repo.GetByID(id)
}

// CreateCountry creates a new country.
func (s *CountryService) CreateCountry(country *models.Country) error {
	return s.repo.Create(country)
}

// UpdateCountry partially updates an existing country.
func (s *CountryService) UpdateCountry(id uint, upd models.CountryUpdate) error {
	return s.repo.Update(id, upd)
}

// DeleteCountry deletes a country and cascades to its players and their
// reviews.
func (s *CountryService) DeleteCountry(id uint) error {
	return s.repo.Delete(id)
}
