package repositories

import (
	"errors"
	"time"

	"ldexchange_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobRepository stores published listings.
type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	// FindByPaymentID is the idempotency probe for webhook redelivery:
	// one Job per checkout session, ever.
	FindByPaymentID(paymentID string) (*models.Job, error)
	FindBySourceURL(sourceURL string) (*models.Job, error)
	// ListVisible returns unexpired active and pending-details listings,
	// newest first. Filtering and final ordering happen in memory.
	ListVisible(now time.Time) ([]models.Job, error)
	Save(job *models.Job) error
	Delete(id string) error

	// Maintenance
	MarkExpired(now time.Time) (int64, error)
	DeleteScrapedBefore(cutoff time.Time) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindByPaymentID(paymentID string) (*models.Job, error) {
	if paymentID == "" {
		return nil, ErrJobNotFound
	}
	var job models.Job
	err := r.db.First(&job, "payment_id = ?", paymentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindBySourceURL(sourceURL string) (*models.Job, error) {
	if sourceURL == "" {
		return nil, ErrJobNotFound
	}
	var job models.Job
	err := r.db.First(&job, "source_url = ?", sourceURL).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) ListVisible(now time.Time) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("status IN ?", []models.JobStatus{models.JobStatusActive, models.JobStatusPendingDetails}).
		Where("expires_at > ?", now).
		Order("posted_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) Save(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *jobRepository) Delete(id string) error {
	return r.db.Delete(&models.Job{}, "id = ?", id).Error
}

func (r *jobRepository) MarkExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.Job{}).
		Where("status = ?", models.JobStatusActive).
		Where("expires_at < ?", now).
		Update("status", models.JobStatusExpired)
	return result.RowsAffected, result.Error
}

// DeleteScrapedBefore removes stale scraped listings. Direct posts are
// never swept here; they expire through expires_at.
func (r *jobRepository) DeleteScrapedBefore(cutoff time.Time) (int64, error) {
	result := r.db.
		Where("is_direct_post = ?", false).
		Where("posted_at < ?", cutoff).
		Delete(&models.Job{})
	return result.RowsAffected, result.Error
}
