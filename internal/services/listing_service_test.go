package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ldexchange_backend/internal/models"
	"ldexchange_backend/internal/search"
	"ldexchange_backend/internal/services/dto"
	"ldexchange_backend/pkg/apperrors"
)

func newListingFixture() (*listingService, *fakeJobRepo, *fakeFreelancerRepo) {
	jobRepo := newFakeJobRepo()
	freelancerRepo := newFakeFreelancerRepo()

	svc := NewListingService(jobRepo, freelancerRepo).(*listingService)
	svc.now = fixedNow
	return svc, jobRepo, freelancerRepo
}

func TestListJobsExcludesExpired(t *testing.T) {
	svc, jobRepo, _ := newListingFixture()

	require.NoError(t, jobRepo.Create(&models.Job{
		Title:     "Live",
		Status:    models.JobStatusActive,
		ExpiresAt: fixedNow().Add(24 * time.Hour),
	}))
	require.NoError(t, jobRepo.Create(&models.Job{
		Title:     "Lapsed",
		Status:    models.JobStatusActive,
		ExpiresAt: fixedNow().Add(-24 * time.Hour),
	}))
	require.NoError(t, jobRepo.Create(&models.Job{
		Title:     "Removed",
		Status:    models.JobStatusRemoved,
		ExpiresAt: fixedNow().Add(24 * time.Hour),
	}))

	jobs, err := svc.ListJobs(context.Background(), "", search.JobFilters{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Live", jobs[0].Title)
}

func TestGetJobNotFoundMapsTo404(t *testing.T) {
	svc, _, _ := newListingFixture()

	_, err := svc.GetJob(context.Background(), "missing")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestUpdateFreelancerPreservesBoostState(t *testing.T) {
	svc, _, freelancerRepo := newListingFixture()

	created, err := svc.CreateFreelancer(context.Background(), &dto.UpsertProfileRequest{
		DisplayName: "Dana Rivera",
		Headline:    "Instructional designer",
	})
	require.NoError(t, err)

	until := fixedNow().Add(7 * 24 * time.Hour)
	require.NoError(t, freelancerRepo.SetBoost(created.ID, until))

	updated, err := svc.UpdateFreelancer(context.Background(), created.ID, &dto.UpsertProfileRequest{
		DisplayName: "Dana R.",
		Headline:    "Senior instructional designer",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dana R.", updated.DisplayName)
	// Edits never touch the paid boost window.
	assert.True(t, updated.IsFeatured)
	require.NotNil(t, updated.FeaturedUntil)
	assert.Equal(t, until, *updated.FeaturedUntil)
}

func TestCreateFreelancerDefaults(t *testing.T) {
	svc, _, _ := newListingFixture()

	created, err := svc.CreateFreelancer(context.Background(), &dto.UpsertProfileRequest{
		DisplayName: "Sam Okafor",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ProfileStatusActive, created.Status)
	assert.Equal(t, models.AvailabilityAvailable, created.Availability)
	assert.Nil(t, created.HourlyRate)
}
