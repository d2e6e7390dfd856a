package repositories

import (
	"errors"

	"gorm.io/gorm"

	"gamereview/internal/apperrors"
	"gamereview/internal/models"
)

// GORMCountryRepository is a GORM implementation of CountryRepository.
type GORMCountryRepository struct {
	db *gorm.DB
}

// NewGORMCountryRepository creates a new instance of GORMCountryRepository.
func NewGORMCountryRepository(db *gorm.DB) *GORMCountryRepository {
	return &GORMCountryRepository{db: db}
}

// GetAll retrieves all countries in storage order.
func (r *GORMCountryRepository) GetAll() ([]models.Country, error) {
	var countries []models.Country
	if err := r.db.Find(&countries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, err, "failed to get all countries")
	}
	return countries, nil
}

// GetByID retrieves a single country with its players preloaded.
func (r *GORMCountryRepository) GetByID(id uint) (*models.Country, error) {
	var country models.Country
	if err := r.db.Preload("Players").First(&country, "country_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.NotFound, "country with ID %d not found", id)
		}
		return nil, apperrors.Wrap(apperrors.Internal, err, "failed to get country %d", id)
	}
	return &country, nil
}

// Create inserts a new country and populates its primary key.
func (r *GORMCountryRepository) Create(country *models.Country) error {
	if err := r.db.Create(country).Error; err != nil {
		return translateGormError(err, "country violates a constraint", "failed to create country")
	}
	return nil
}

// Update applies the supplied fields only. An empty update is a legal no-op.
func (r *GORMCountryRepository) Update(id uint, upd models.CountryUpdate) error {
	var country models.Country
	if err := r.db.First(&country, "country_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.NotFound, "country with ID %d not found", id)
		}
		return apperrors.Wrap(apperrors.Internal, err, "failed to get country %d", id)
	}

	fields := upd.Fields()
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.Model(&country).Updates(fields).Error; err != nil {
		return translateGormError(err, "country violates a constraint", "failed to update country")
	}
	return nil
}

// Delete removes the country, its players, and the reviews of those players
// in one transaction.
func (r *GORMCountryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var country models.Country
		if err := tx.First(&country, "country_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.NotFound, "country with ID %d not found", id)
			}
			return apperrors.Wrap(apperrors.Internal, err, "failed to get country %d", id)
		}

		playerIDs := tx.Model(&models.Player{}).Select("player_id").Where("country_id = ?", id)
		if err := tx.Where("player_id IN (?)", playerIDs).Delete(&models.PlayerGame{}).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to delete reviews for country %d", id)
		}
		if err := tx.Where("country_id = ?", id).Delete(&models.Player{}).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to delete players for country %d", id)
		}
		if err := tx.Delete(&country).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, err, "failed to delete country %d", id)
		}
		return nil
	})
}
