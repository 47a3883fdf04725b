package handlers

// AppHandlers bundles the constructed handlers for route registration.
type AppHandlers struct {
	CheckoutHandler   *CheckoutHandler
	WebhookHandler    *WebhookHandler
	JobHandler        *JobHandler
	FreelancerHandler *FreelancerHandler
}
