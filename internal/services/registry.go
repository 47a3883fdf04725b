package services

// ServiceContainer bundles the constructed services for handler wiring.
type ServiceContainer struct {
	CheckoutService    CheckoutService
	FulfillmentService FulfillmentService
	ListingService     ListingService
}
