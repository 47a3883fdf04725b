package dto

// JobSubmission is the job content an employer fills in before paying.
// Numeric salary bounds arrive as strings because the posting form submits
// free-text inputs; unparseable values are treated as unset.
type JobSubmission struct {
	Title           string `json:"title"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	LocationType    string `json:"locationType" validate:"omitempty,oneof=remote hybrid onsite"`
	Description     string `json:"description"`
	Requirements    string `json:"requirements"` // newline-separated
	Category        string `json:"category"`
	ExperienceLevel string `json:"experienceLevel" validate:"omitempty,oneof=entry mid senior lead director"`
	EmploymentType  string `json:"employmentType" validate:"omitempty,oneof=full-time part-time contract freelance"`
	SalaryMin       string `json:"salaryMin"`
	SalaryMax       string `json:"salaryMax"`
	SalaryPeriod    string `json:"salaryPeriod" validate:"omitempty,oneof=hourly annual"`
	ApplicationURL  string `json:"applicationUrl" validate:"omitempty,url"`
}

// CreateCheckoutRequest starts a purchase.
type CreateCheckoutRequest struct {
	ProductType string         `json:"productType" validate:"required,oneof=job_posting profile_boost"`
	Tier        string         `json:"tier" validate:"required"`
	JobData     *JobSubmission `json:"jobData,omitempty"`
	ProfileID   string         `json:"profileId,omitempty"`
	SuccessURL  string         `json:"successUrl,omitempty" validate:"omitempty,url"`
	CancelURL   string         `json:"cancelUrl,omitempty" validate:"omitempty,url"`
}

// CreateCheckoutResponse carries the provider redirect.
type CreateCheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
