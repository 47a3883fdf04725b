package services

import (
	"context"
	"time"

	"ldexchange_backend/internal/models"
	"ldexchange_backend/internal/repositories"
	"ldexchange_backend/internal/search"
	"ldexchange_backend/internal/services/dto"
	"ldexchange_backend/pkg/apperrors"
)

// ListingService serves the read side of the site: filtered job and
// freelancer collections, plus minimal profile CRUD so boostable
// profiles exist.
type ListingService interface {
	ListJobs(ctx context.Context, query string, filters search.JobFilters) ([]models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)

	ListFreelancers(ctx context.Context, query string, filters search.ProfileFilters) ([]models.FreelancerProfile, error)
	GetFreelancer(ctx context.Context, id string) (*models.FreelancerProfile, error)
	CreateFreelancer(ctx context.Context, req *dto.UpsertProfileRequest) (*models.FreelancerProfile, error)
	UpdateFreelancer(ctx context.Context, id string, req *dto.UpsertProfileRequest) (*models.FreelancerProfile, error)
}

type listingService struct {
	jobRepo        repositories.JobRepository
	freelancerRepo repositories.FreelancerRepository
	now            func() time.Time
}

func NewListingService(jobRepo repositories.JobRepository, freelancerRepo repositories.FreelancerRepository) ListingService {
	return &listingService{
		jobRepo:        jobRepo,
		freelancerRepo: freelancerRepo,
		now:            time.Now,
	}
}

func (s *listingService) ListJobs(ctx context.Context, query string, filters search.JobFilters) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListVisible(s.now())
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "Failed to load job listings")
	}
	return search.FilterJobs(jobs, query, filters), nil
}

func (s *listingService) GetJob(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err, "Failed to load job")
	}
	return job, nil
}

func (s *listingService) ListFreelancers(ctx context.Context, query string, filters search.ProfileFilters) ([]models.FreelancerProfile, error) {
	profiles, err := s.freelancerRepo.ListActive()
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "Failed to load freelancer directory")
	}
	return search.FilterProfiles(profiles, query, filters, s.now()), nil
}

func (s *listingService) GetFreelancer(ctx context.Context, id string) (*models.FreelancerProfile, error) {
	profile, err := s.freelancerRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err, "Failed to load profile")
	}
	return profile, nil
}

func (s *listingService) CreateFreelancer(ctx context.Context, req *dto.UpsertProfileRequest) (*models.FreelancerProfile, error) {
	profile := &models.FreelancerProfile{
		Status: models.ProfileStatusActive,
	}
	applyProfileRequest(profile, req)

	if err := s.freelancerRepo.Create(profile); err != nil {
		return nil, apperrors.ErrDatabase(err, "Failed to create profile")
	}
	return profile, nil
}

func (s *listingService) UpdateFreelancer(ctx context.Context, id string, req *dto.UpsertProfileRequest) (*models.FreelancerProfile, error) {
	profile, err := s.GetFreelancer(ctx, id)
	if err != nil {
		return nil, err
	}

	// Boost state is owned by the fulfillment webhook; profile edits
	// never touch is_featured / featured_until.
	applyProfileRequest(profile, req)

	if err := s.freelancerRepo.Update(profile); err != nil {
		return nil, apperrors.ErrDatabase(err, "Failed to update profile")
	}
	return profile, nil
}

func applyProfileRequest(profile *models.FreelancerProfile, req *dto.UpsertProfileRequest) {
	profile.DisplayName = req.DisplayName
	profile.Headline = req.Headline
	profile.Bio = req.Bio
	profile.Location = req.Location
	profile.Timezone = req.Timezone
	profile.AvailableRemotely = req.AvailableRemotely
	profile.Specializations = req.Specializations
	profile.Skills = req.Skills
	profile.ExperienceYears = req.ExperienceYears
	profile.PortfolioURL = req.PortfolioURL
	profile.LinkedinURL = req.LinkedinURL
	profile.WebsiteURL = req.WebsiteURL
	profile.Availability = models.Availability(defaultString(req.Availability, string(models.AvailabilityAvailable)))
	profile.AvailabilityNote = req.AvailabilityNote

	if req.HourlyRateMin > 0 || req.HourlyRateMax > 0 {
		profile.HourlyRate = &models.HourlyRate{
			Min:      req.HourlyRateMin,
			Max:      req.HourlyRateMax,
			Currency: "USD",
		}
	} else {
		profile.HourlyRate = nil
	}
}
