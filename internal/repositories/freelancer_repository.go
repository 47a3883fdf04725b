package repositories

import (
	"errors"
	"time"

	"ldexchange_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("freelancer profile not found")

// FreelancerRepository stores directory entries.
type FreelancerRepository interface {
	Create(profile *models.FreelancerProfile) error
	FindByID(id string) (*models.FreelancerProfile, error)
	ListActive() ([]models.FreelancerProfile, error)
	Update(profile *models.FreelancerProfile) error
	// SetBoost stamps the featured window. Absolute, not additive:
	// re-boosting overwrites featured_until.
	SetBoost(id string, featuredUntil time.Time) error
	// ClearExpiredBoosts drops stale featured flags so stored data
	// converges with the read-time check.
	ClearExpiredBoosts(now time.Time) (int64, error)
}

type freelancerRepository struct {
	db *gorm.DB
}

func NewFreelancerRepository(db *gorm.DB) FreelancerRepository {
	return &freelancerRepository{db: db}
}

func (r *freelancerRepository) Create(profile *models.FreelancerProfile) error {
	return r.db.Create(profile).Error
}

func (r *freelancerRepository) FindByID(id string) (*models.FreelancerProfile, error) {
	var profile models.FreelancerProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *freelancerRepository) ListActive() ([]models.FreelancerProfile, error) {
	var profiles []models.FreelancerProfile
	err := r.db.
		Where("status = ?", models.ProfileStatusActive).
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *freelancerRepository) Update(profile *models.FreelancerProfile) error {
	return r.db.Save(profile).Error
}

func (r *freelancerRepository) SetBoost(id string, featuredUntil time.Time) error {
	result := r.db.Model(&models.FreelancerProfile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_featured":    true,
			"featured_until": featuredUntil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *freelancerRepository) ClearExpiredBoosts(now time.Time) (int64, error) {
	result := r.db.Model(&models.FreelancerProfile{}).
		Where("is_featured = ?", true).
		Where("featured_until < ?", now).
		Updates(map[string]interface{}{
			"is_featured":    false,
			"featured_until": nil,
		})
	return result.RowsAffected, result.Error
}
