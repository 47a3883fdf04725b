package apperrors

import "net/http"

// Predeclared domain errors and factories shared across services.

// --- Listings ---

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "listings", "Resource not found", http.StatusNotFound)
}

// ErrDatabase wraps a storage failure.
func ErrDatabase(err error, message string) *AppError {
	return Wrap(err, CodeDatabaseError, "listings", message, http.StatusInternalServerError)
}

// --- Payments ---

// ErrInvalidPricingTier is returned when the tier string is not in the catalog.
var ErrInvalidPricingTier = New(
	CodeInvalidTier,
	"payments",
	"Invalid pricing tier",
	http.StatusBadRequest,
)

// ErrInvalidProductType is returned for product types outside
// job_posting / profile_boost.
var ErrInvalidProductType = New(
	CodeInvalidProductType,
	"payments",
	"Invalid product type",
	http.StatusBadRequest,
)

// ErrPaymentNotConfigured signals a missing provider secret. Fatal for the
// request, never retried.
var ErrPaymentNotConfigured = New(
	CodeConfigurationError,
	"payments",
	"Payment provider is not configured",
	http.StatusInternalServerError,
)

// ErrInvalidWebhookSignature rejects a callback whose signature does not
// verify. The event is dropped permanently.
var ErrInvalidWebhookSignature = New(
	CodeInvalidSignature,
	"payments",
	"Invalid signature",
	http.StatusBadRequest,
)

// ErrPaymentProvider wraps an upstream provider failure.
func ErrPaymentProvider(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "payments",
		"Failed to create checkout session: "+err.Error(), http.StatusInternalServerError)
}
