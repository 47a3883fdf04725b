package repositories

import (
	"errors"
	"time"

	"ldexchange_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPendingJobNotFound = errors.New("pending job not found")

// PendingJobRepository stores provisional job submissions between checkout
// creation and webhook fulfillment.
type PendingJobRepository interface {
	Create(pending *models.PendingJob) error
	FindByID(id string) (*models.PendingJob, error)
	Delete(id string) error
	// DeleteOlderThan purges orphaned records from abandoned checkouts.
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type pendingJobRepository struct {
	db *gorm.DB
}

func NewPendingJobRepository(db *gorm.DB) PendingJobRepository {
	return &pendingJobRepository{db: db}
}

func (r *pendingJobRepository) Create(pending *models.PendingJob) error {
	return r.db.Create(pending).Error
}

func (r *pendingJobRepository) FindByID(id string) (*models.PendingJob, error) {
	var pending models.PendingJob
	err := r.db.First(&pending, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPendingJobNotFound
		}
		return nil, err
	}
	return &pending, nil
}

func (r *pendingJobRepository) Delete(id string) error {
	return r.db.Delete(&models.PendingJob{}, "id = ?", id).Error
}

func (r *pendingJobRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Delete(&models.PendingJob{}, "created_at < ?", cutoff)
	return result.RowsAffected, result.Error
}
