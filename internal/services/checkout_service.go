package services

import (
	"context"
	"strconv"
	"strings"

	"ldexchange_backend/internal/logger"
	"ldexchange_backend/internal/models"
	"ldexchange_backend/internal/payments"
	"ldexchange_backend/internal/pricing"
	"ldexchange_backend/internal/repositories"
	"ldexchange_backend/internal/services/dto"
	"ldexchange_backend/pkg/apperrors"
)

// PaymentProvider is the slice of the payments client the checkout flow
// needs. Tests substitute a stub.
type PaymentProvider interface {
	Configured() bool
	CreateCheckoutSession(ctx context.Context, params payments.SessionParams) (*payments.CheckoutSession, error)
}

// CheckoutService validates a purchase request, persists the provisional
// job when the product requires one, and obtains the provider redirect.
type CheckoutService interface {
	CreateCheckout(ctx context.Context, req *dto.CreateCheckoutRequest) (*dto.CreateCheckoutResponse, error)
}

type checkoutService struct {
	pendingRepo repositories.PendingJobRepository
	provider    PaymentProvider
	baseURL     string
}

func NewCheckoutService(pendingRepo repositories.PendingJobRepository, provider PaymentProvider, baseURL string) CheckoutService {
	return &checkoutService{
		pendingRepo: pendingRepo,
		provider:    provider,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

func (s *checkoutService) CreateCheckout(ctx context.Context, req *dto.CreateCheckoutRequest) (*dto.CreateCheckoutResponse, error) {
	if !s.provider.Configured() {
		return nil, apperrors.ErrPaymentNotConfigured
	}

	productType := pricing.ProductType(req.ProductType)
	switch productType {
	case pricing.ProductJobPosting, pricing.ProductProfileBoost:
	default:
		return nil, apperrors.ErrInvalidProductType
	}

	product, err := pricing.Lookup(productType, req.Tier)
	if err != nil {
		return nil, apperrors.ErrInvalidPricingTier
	}

	metadata := map[string]string{
		payments.MetaType: req.ProductType,
		payments.MetaTier: req.Tier,
	}

	if productType == pricing.ProductJobPosting {
		// The pending write must land before any priced session exists;
		// a session for a job with no stored content is unrecoverable.
		pending := buildPendingJob(req.JobData)
		if err := s.pendingRepo.Create(pending); err != nil {
			return nil, apperrors.ErrDatabase(err, "Failed to store pending job")
		}
		metadata[payments.MetaPendingJobID] = pending.ID
		metadata[payments.MetaJobTitle] = pending.Title
		metadata[payments.MetaCompanyName] = pending.Company

		logger.CtxInfo(ctx, "pending job stored",
			"pending_job_id", pending.ID, "tier", req.Tier)
	} else {
		metadata[payments.MetaProfileID] = req.ProfileID
	}

	successURL := req.SuccessURL
	if successURL == "" {
		successURL = s.baseURL + "/post-job/success?session_id={CHECKOUT_SESSION_ID}"
	}
	cancelURL := req.CancelURL
	if cancelURL == "" {
		cancelURL = s.baseURL + "/post-job?cancelled=true"
	}

	session, err := s.provider.CreateCheckoutSession(ctx, payments.SessionParams{
		ProductName:        product.Name,
		ProductDescription: strings.Join(product.Features, " • "),
		UnitAmount:         product.UnitAmount,
		Currency:           "usd",
		SuccessURL:         successURL,
		CancelURL:          cancelURL,
		Metadata:           metadata,
	})
	if err != nil {
		// The pending job written above is orphaned now; the sweeper
		// reclaims it.
		return nil, apperrors.ErrPaymentProvider(err)
	}

	logger.CtxInfo(ctx, "checkout session created",
		"session_id", session.ID, "product", product.ID)

	return &dto.CreateCheckoutResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

// buildPendingJob applies the posting-form defaults: empty strings stay
// empty, enums fall back to remote / mid / full-time / instructional-design,
// requirements split on newlines with blank lines dropped, and the salary
// object is omitted when neither bound parses.
func buildPendingJob(jobData *dto.JobSubmission) *models.PendingJob {
	if jobData == nil {
		jobData = &dto.JobSubmission{}
	}

	pending := &models.PendingJob{
		Title:           jobData.Title,
		Company:         jobData.Company,
		Location:        jobData.Location,
		LocationType:    models.LocationType(defaultString(jobData.LocationType, string(models.LocationRemote))),
		Description:     jobData.Description,
		Requirements:    splitRequirements(jobData.Requirements),
		Category:        models.JobCategory(defaultString(jobData.Category, string(models.CategoryInstructionalDesign))),
		ExperienceLevel: models.ExperienceLevel(defaultString(jobData.ExperienceLevel, string(models.ExperienceMid))),
		EmploymentType:  models.EmploymentType(defaultString(jobData.EmploymentType, string(models.EmploymentFullTime))),
		SourceURL:       jobData.ApplicationURL,
		SourceSite:      models.SourceSiteDirect,
	}

	salaryMin := parseOptionalInt(jobData.SalaryMin)
	salaryMax := parseOptionalInt(jobData.SalaryMax)
	if salaryMin != nil || salaryMax != nil {
		pending.Salary = &models.Salary{
			Min:      salaryMin,
			Max:      salaryMax,
			Currency: "USD",
			Period:   defaultString(jobData.SalaryPeriod, "annual"),
		}
	}

	return pending
}

func splitRequirements(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var requirements []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			requirements = append(requirements, trimmed)
		}
	}
	if requirements == nil {
		return []string{}
	}
	return requirements
}

func parseOptionalInt(raw string) *int {
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &value
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
