package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ldexchange_backend/internal/models"
	"ldexchange_backend/internal/payments"
	"ldexchange_backend/internal/repositories"
)

// In-memory repository fakes. They reproduce only the contracts the
// services rely on, notably the not-found sentinels.

type fakePendingRepo struct {
	pending   map[string]*models.PendingJob
	createErr error
}

func newFakePendingRepo() *fakePendingRepo {
	return &fakePendingRepo{pending: make(map[string]*models.PendingJob)}
}

func (r *fakePendingRepo) Create(p *models.PendingJob) error {
	if r.createErr != nil {
		return r.createErr
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	clone := *p
	r.pending[p.ID] = &clone
	return nil
}

func (r *fakePendingRepo) FindByID(id string) (*models.PendingJob, error) {
	p, ok := r.pending[id]
	if !ok {
		return nil, repositories.ErrPendingJobNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakePendingRepo) Delete(id string) error {
	delete(r.pending, id)
	return nil
}

func (r *fakePendingRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	var n int64
	for id, p := range r.pending {
		if p.CreatedAt.Before(cutoff) {
			delete(r.pending, id)
			n++
		}
	}
	return n, nil
}

type fakeJobRepo struct {
	jobs      map[string]*models.Job
	createErr error
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	if r.createErr != nil {
		return r.createErr
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	clone := *job
	return &clone, nil
}

func (r *fakeJobRepo) FindByPaymentID(paymentID string) (*models.Job, error) {
	if paymentID == "" {
		return nil, repositories.ErrJobNotFound
	}
	for _, job := range r.jobs {
		if job.PaymentID == paymentID {
			clone := *job
			return &clone, nil
		}
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindBySourceURL(sourceURL string) (*models.Job, error) {
	if sourceURL == "" {
		return nil, repositories.ErrJobNotFound
	}
	for _, job := range r.jobs {
		if job.SourceURL == sourceURL {
			clone := *job
			return &clone, nil
		}
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) ListVisible(now time.Time) ([]models.Job, error) {
	var out []models.Job
	for _, job := range r.jobs {
		visible := job.Status == models.JobStatusActive || job.Status == models.JobStatusPendingDetails
		if visible && job.ExpiresAt.After(now) {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Save(job *models.Job) error {
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *fakeJobRepo) Delete(id string) error {
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) MarkExpired(now time.Time) (int64, error) {
	var n int64
	for _, job := range r.jobs {
		if job.Status == models.JobStatusActive && job.ExpiresAt.Before(now) {
			job.Status = models.JobStatusExpired
			n++
		}
	}
	return n, nil
}

func (r *fakeJobRepo) DeleteScrapedBefore(cutoff time.Time) (int64, error) {
	var n int64
	for id, job := range r.jobs {
		if !job.IsDirectPost && job.PostedAt.Before(cutoff) {
			delete(r.jobs, id)
			n++
		}
	}
	return n, nil
}

type fakeFreelancerRepo struct {
	profiles map[string]*models.FreelancerProfile
}

func newFakeFreelancerRepo() *fakeFreelancerRepo {
	return &fakeFreelancerRepo{profiles: make(map[string]*models.FreelancerProfile)}
}

func (r *fakeFreelancerRepo) Create(p *models.FreelancerProfile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	clone := *p
	r.profiles[p.ID] = &clone
	return nil
}

func (r *fakeFreelancerRepo) FindByID(id string) (*models.FreelancerProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeFreelancerRepo) ListActive() ([]models.FreelancerProfile, error) {
	var out []models.FreelancerProfile
	for _, p := range r.profiles {
		if p.Status == models.ProfileStatusActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeFreelancerRepo) Update(p *models.FreelancerProfile) error {
	if _, ok := r.profiles[p.ID]; !ok {
		return repositories.ErrProfileNotFound
	}
	clone := *p
	r.profiles[p.ID] = &clone
	return nil
}

func (r *fakeFreelancerRepo) SetBoost(id string, featuredUntil time.Time) error {
	p, ok := r.profiles[id]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	until := featuredUntil
	p.IsFeatured = true
	p.FeaturedUntil = &until
	return nil
}

func (r *fakeFreelancerRepo) ClearExpiredBoosts(now time.Time) (int64, error) {
	var n int64
	for _, p := range r.profiles {
		if p.IsFeatured && p.FeaturedUntil != nil && !p.FeaturedUntil.After(now) {
			p.IsFeatured = false
			p.FeaturedUntil = nil
			n++
		}
	}
	return n, nil
}

// stubProvider records the last session request and answers with a fixed
// session, or fails on demand.
type stubProvider struct {
	configured bool
	session    *payments.CheckoutSession
	err        error
	lastParams *payments.SessionParams
}

func newStubProvider() *stubProvider {
	return &stubProvider{
		configured: true,
		session: &payments.CheckoutSession{
			ID:  "cs_stub_1",
			URL: "https://pay.example.com/c/cs_stub_1",
		},
	}
}

func (p *stubProvider) Configured() bool { return p.configured }

func (p *stubProvider) CreateCheckoutSession(ctx context.Context, params payments.SessionParams) (*payments.CheckoutSession, error) {
	p.lastParams = &params
	if p.err != nil {
		return nil, p.err
	}
	return p.session, nil
}

var errBoom = errors.New("boom")
