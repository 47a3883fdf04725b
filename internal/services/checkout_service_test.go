package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ldexchange_backend/internal/models"
	"ldexchange_backend/internal/payments"
	"ldexchange_backend/internal/services/dto"
	"ldexchange_backend/pkg/apperrors"
)

func jobCheckoutRequest() *dto.CreateCheckoutRequest {
	return &dto.CreateCheckoutRequest{
		ProductType: "job_posting",
		Tier:        "featured",
		JobData: &dto.JobSubmission{
			Title:        "Senior Instructional Designer",
			Company:      "Acme Learning",
			Location:     "Austin, TX",
			Description:  "Own the curriculum.",
			Requirements: "5+ years experience\n\nStoryline proficiency\n",
			SalaryMin:    "90000",
			SalaryMax:    "120000",
		},
	}
}

func TestCreateCheckoutUnconfiguredProvider(t *testing.T) {
	provider := newStubProvider()
	provider.configured = false
	pendingRepo := newFakePendingRepo()
	svc := NewCheckoutService(pendingRepo, provider, "http://localhost:3000")

	_, err := svc.CreateCheckout(context.Background(), jobCheckoutRequest())
	assert.ErrorIs(t, err, apperrors.ErrPaymentNotConfigured)
	assert.Empty(t, pendingRepo.pending)
}

func TestCreateCheckoutRejectsUnknownProductAndTier(t *testing.T) {
	svc := NewCheckoutService(newFakePendingRepo(), newStubProvider(), "http://localhost:3000")

	req := jobCheckoutRequest()
	req.ProductType = "subscription"
	_, err := svc.CreateCheckout(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidProductType)

	req = jobCheckoutRequest()
	req.Tier = "premium"
	_, err = svc.CreateCheckout(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPricingTier)
}

func TestCreateCheckoutStoresPendingBeforeSession(t *testing.T) {
	provider := newStubProvider()
	pendingRepo := newFakePendingRepo()
	svc := NewCheckoutService(pendingRepo, provider, "http://localhost:3000")

	resp, err := svc.CreateCheckout(context.Background(), jobCheckoutRequest())
	require.NoError(t, err)
	assert.Equal(t, "cs_stub_1", resp.SessionID)
	assert.Equal(t, "https://pay.example.com/c/cs_stub_1", resp.URL)

	require.Len(t, pendingRepo.pending, 1)
	require.NotNil(t, provider.lastParams)

	pendingID := provider.lastParams.Metadata[payments.MetaPendingJobID]
	pending, err := pendingRepo.FindByID(pendingID)
	require.NoError(t, err)

	assert.Equal(t, "Senior Instructional Designer", pending.Title)
	assert.Equal(t, models.SourceSiteDirect, pending.SourceSite)
	assert.Equal(t, []string{"5+ years experience", "Storyline proficiency"}, []string(pending.Requirements))
	require.NotNil(t, pending.Salary)
	assert.Equal(t, 90000, *pending.Salary.Min)
	assert.Equal(t, 120000, *pending.Salary.Max)
	assert.Equal(t, "USD", pending.Salary.Currency)

	assert.Equal(t, "job_posting", provider.lastParams.Metadata[payments.MetaType])
	assert.Equal(t, "featured", provider.lastParams.Metadata[payments.MetaTier])
	assert.Equal(t, "Senior Instructional Designer", provider.lastParams.Metadata[payments.MetaJobTitle])
	assert.Equal(t, "Acme Learning", provider.lastParams.Metadata[payments.MetaCompanyName])
	assert.Equal(t, int64(19900), provider.lastParams.UnitAmount)
}

func TestCreateCheckoutAppliesSubmissionDefaults(t *testing.T) {
	provider := newStubProvider()
	pendingRepo := newFakePendingRepo()
	svc := NewCheckoutService(pendingRepo, provider, "http://localhost:3000")

	_, err := svc.CreateCheckout(context.Background(), &dto.CreateCheckoutRequest{
		ProductType: "job_posting",
		Tier:        "basic",
		JobData:     &dto.JobSubmission{Title: "Trainer"},
	})
	require.NoError(t, err)

	pendingID := provider.lastParams.Metadata[payments.MetaPendingJobID]
	pending, err := pendingRepo.FindByID(pendingID)
	require.NoError(t, err)

	assert.Equal(t, models.LocationRemote, pending.LocationType)
	assert.Equal(t, models.ExperienceMid, pending.ExperienceLevel)
	assert.Equal(t, models.EmploymentFullTime, pending.EmploymentType)
	assert.Equal(t, models.CategoryInstructionalDesign, pending.Category)
	assert.NotNil(t, pending.Requirements)
	assert.Empty(t, pending.Requirements)
	// Neither salary bound given: the object is absent, not zeroed.
	assert.Nil(t, pending.Salary)
}

func TestCreateCheckoutDefaultRedirectURLs(t *testing.T) {
	provider := newStubProvider()
	svc := NewCheckoutService(newFakePendingRepo(), provider, "http://localhost:3000/")

	_, err := svc.CreateCheckout(context.Background(), jobCheckoutRequest())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/post-job/success?session_id={CHECKOUT_SESSION_ID}", provider.lastParams.SuccessURL)
	assert.Equal(t, "http://localhost:3000/post-job?cancelled=true", provider.lastParams.CancelURL)
}

func TestCreateCheckoutProfileBoostMetadata(t *testing.T) {
	provider := newStubProvider()
	pendingRepo := newFakePendingRepo()
	svc := NewCheckoutService(pendingRepo, provider, "http://localhost:3000")

	_, err := svc.CreateCheckout(context.Background(), &dto.CreateCheckoutRequest{
		ProductType: "profile_boost",
		Tier:        "weekly",
		ProfileID:   "prof-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "prof-1", provider.lastParams.Metadata[payments.MetaProfileID])
	assert.NotContains(t, provider.lastParams.Metadata, payments.MetaPendingJobID)
	assert.Equal(t, int64(2900), provider.lastParams.UnitAmount)
	// Boosts never create pending jobs.
	assert.Empty(t, pendingRepo.pending)
}

func TestCreateCheckoutProviderFailureSurfaces(t *testing.T) {
	provider := newStubProvider()
	provider.err = errBoom
	pendingRepo := newFakePendingRepo()
	svc := NewCheckoutService(pendingRepo, provider, "http://localhost:3000")

	_, err := svc.CreateCheckout(context.Background(), jobCheckoutRequest())
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeExternalServiceError, appErr.Code)

	// The pending record stays; the maintenance sweep reclaims it.
	assert.Len(t, pendingRepo.pending, 1)
}

func TestCreateCheckoutPendingWriteFailure(t *testing.T) {
	provider := newStubProvider()
	pendingRepo := newFakePendingRepo()
	pendingRepo.createErr = errBoom
	svc := NewCheckoutService(pendingRepo, provider, "http://localhost:3000")

	_, err := svc.CreateCheckout(context.Background(), jobCheckoutRequest())
	require.Error(t, err)
	// No session may exist without stored job content.
	assert.Nil(t, provider.lastParams)
}
