package services

import (
	"context"
	"time"

	"ldexchange_backend/internal/logger"
	"ldexchange_backend/internal/models"
	"ldexchange_backend/internal/payments"
	"ldexchange_backend/internal/pricing"
	"ldexchange_backend/internal/repositories"
)

// jobPostingLifetime is the fixed listing duration for paid postings.
const jobPostingLifetime = 30 * 24 * time.Hour

// FulfillmentService applies verified provider callbacks to the listing
// store. Every path logs and swallows internal failures: once the
// signature verified, the provider gets an acknowledgement no matter
// what, so its retry loop is never driven by our reconciliation errors.
type FulfillmentService interface {
	HandleEvent(ctx context.Context, event payments.Event)
}

type fulfillmentService struct {
	pendingRepo    repositories.PendingJobRepository
	jobRepo        repositories.JobRepository
	freelancerRepo repositories.FreelancerRepository
	now            func() time.Time
}

func NewFulfillmentService(
	pendingRepo repositories.PendingJobRepository,
	jobRepo repositories.JobRepository,
	freelancerRepo repositories.FreelancerRepository,
) FulfillmentService {
	return &fulfillmentService{
		pendingRepo:    pendingRepo,
		jobRepo:        jobRepo,
		freelancerRepo: freelancerRepo,
		now:            time.Now,
	}
}

func (s *fulfillmentService) HandleEvent(ctx context.Context, event payments.Event) {
	switch event.Type {
	case payments.EventCheckoutCompleted:
		session, err := event.CheckoutSession()
		if err != nil {
			logger.CtxWithError(ctx, "malformed checkout session in event", err, "event_id", event.ID)
			return
		}
		s.applyPayment(ctx, session)

	case payments.EventPaymentFailed:
		logger.CtxInfo(ctx, "payment failed", "event_id", event.ID)

	default:
		logger.CtxDebug(ctx, "unhandled event type", "type", event.Type, "event_id", event.ID)
	}
}

func (s *fulfillmentService) applyPayment(ctx context.Context, session *payments.CheckoutSession) {
	if len(session.Metadata) == 0 {
		logger.CtxError(ctx, "no metadata in session", "session_id", session.ID)
		return
	}

	logger.CtxInfo(ctx, "processing successful payment",
		"type", session.Metadata[payments.MetaType],
		"tier", session.Metadata[payments.MetaTier],
		"session_id", session.ID,
	)

	switch session.Metadata[payments.MetaType] {
	case string(pricing.ProductJobPosting):
		s.promoteJob(ctx, session)
	case string(pricing.ProductProfileBoost):
		s.boostProfile(ctx, session)
	default:
		logger.CtxWarn(ctx, "unknown product type in metadata",
			"type", session.Metadata[payments.MetaType], "session_id", session.ID)
	}
}

// promoteJob turns a PendingJob into a published Job, or synthesizes a
// minimal listing when no pending record can be located. The session id
// is the idempotency key: redelivered events find the existing Job and
// stop, so the fetch-create-delete sequence cannot double-publish.
func (s *fulfillmentService) promoteJob(ctx context.Context, session *payments.CheckoutSession) {
	if existing, err := s.jobRepo.FindByPaymentID(session.ID); err == nil {
		logger.CtxInfo(ctx, "payment already fulfilled, skipping",
			"session_id", session.ID, "job_id", existing.ID)
		return
	}

	tier := session.Metadata[payments.MetaTier]
	now := s.now()

	pendingID := session.Metadata[payments.MetaPendingJobID]
	if pendingID != "" {
		pending, err := s.pendingRepo.FindByID(pendingID)
		if err == nil {
			job := &models.Job{
				Title:           pending.Title,
				Company:         pending.Company,
				Location:        pending.Location,
				LocationType:    pending.LocationType,
				Description:     pending.Description,
				Requirements:    pending.Requirements,
				Salary:          pending.Salary,
				Category:        pending.Category,
				ExperienceLevel: pending.ExperienceLevel,
				EmploymentType:  pending.EmploymentType,
				SourceURL:       pending.SourceURL,
				SourceSite:      pending.SourceSite,
				IsFeatured:      tier == pricing.TierFeatured,
				IsDirectPost:    true,
				PaymentID:       session.ID,
				PaymentStatus:   models.PaymentStatusPaid,
				Status:          models.JobStatusActive,
				PostedAt:        now,
				ExpiresAt:       now.Add(jobPostingLifetime),
			}

			if err := s.jobRepo.Create(job); err != nil {
				logger.CtxWithError(ctx, "failed to create job from pending", err,
					"pending_job_id", pendingID, "session_id", session.ID)
				return
			}
			if err := s.pendingRepo.Delete(pendingID); err != nil {
				// The job is live; a leftover pending record is swept later.
				logger.CtxWithError(ctx, "failed to delete promoted pending job", err,
					"pending_job_id", pendingID)
			}

			logger.CtxInfo(ctx, "job posting created", "job_id", job.ID, "title", job.Title)
			return
		}

		logger.CtxWarn(ctx, "pending job missing, falling back to metadata",
			"pending_job_id", pendingID, "session_id", session.ID, "error", err.Error())
	}

	// Degenerate path: no usable pending record. Synthesize a minimal
	// listing from metadata so the paid transaction is not dropped.
	job := &models.Job{
		Title:           defaultString(session.Metadata[payments.MetaJobTitle], "Untitled Position"),
		Company:         defaultString(session.Metadata[payments.MetaCompanyName], "Unknown Company"),
		Location:        "Not specified",
		LocationType:    models.LocationRemote,
		Description:     "Job details pending update.",
		Requirements:    []string{},
		Category:        models.CategoryInstructionalDesign,
		ExperienceLevel: models.ExperienceMid,
		EmploymentType:  models.EmploymentFullTime,
		SourceSite:      models.SourceSiteDirect,
		IsFeatured:      tier == pricing.TierFeatured,
		IsDirectPost:    true,
		PaymentID:       session.ID,
		PaymentStatus:   models.PaymentStatusPaid,
		CustomerEmail:   session.CustomerEmail,
		Status:          models.JobStatusPendingDetails,
		PostedAt:        now,
		ExpiresAt:       now.Add(jobPostingLifetime),
	}

	if err := s.jobRepo.Create(job); err != nil {
		logger.CtxWithError(ctx, "failed to create fallback job", err, "session_id", session.ID)
		return
	}

	logger.CtxInfo(ctx, "minimal job entry created, pending details",
		"job_id", job.ID, "session_id", session.ID)
}

// boostProfile stamps the featured window from now. Not cumulative:
// re-boosting resets the clock.
func (s *fulfillmentService) boostProfile(ctx context.Context, session *payments.CheckoutSession) {
	profileID := session.Metadata[payments.MetaProfileID]
	if profileID == "" {
		logger.CtxError(ctx, "profile boost without profileId", "session_id", session.ID)
		return
	}

	durationDays := pricing.BoostDurationDays(session.Metadata[payments.MetaTier])
	featuredUntil := s.now().Add(time.Duration(durationDays) * 24 * time.Hour)

	if err := s.freelancerRepo.SetBoost(profileID, featuredUntil); err != nil {
		logger.CtxWithError(ctx, "failed to boost profile", err,
			"profile_id", profileID, "session_id", session.ID)
		return
	}

	logger.CtxInfo(ctx, "profile boosted",
		"profile_id", profileID, "featured_until", featuredUntil)
}
