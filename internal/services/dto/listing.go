package dto

// UpsertProfileRequest creates or edits a freelancer directory entry.
type UpsertProfileRequest struct {
	DisplayName       string   `json:"displayName" validate:"required,min=2,max=100"`
	Headline          string   `json:"headline" validate:"max=200"`
	Bio               string   `json:"bio"`
	Location          string   `json:"location"`
	Timezone          string   `json:"timezone"`
	AvailableRemotely bool     `json:"availableRemotely"`
	Specializations   []string `json:"specializations"`
	Skills            []string `json:"skills"`
	ExperienceYears   int      `json:"experienceYears" validate:"min=0"`
	HourlyRateMin     int      `json:"hourlyRateMin" validate:"min=0"`
	HourlyRateMax     int      `json:"hourlyRateMax" validate:"min=0"`
	PortfolioURL      string   `json:"portfolioUrl" validate:"omitempty,url"`
	LinkedinURL       string   `json:"linkedinUrl" validate:"omitempty,url"`
	WebsiteURL        string   `json:"websiteUrl" validate:"omitempty,url"`
	Availability      string   `json:"availability" validate:"omitempty,oneof=available limited unavailable"`
	AvailabilityNote  string   `json:"availabilityNote"`
}

// ListResponse wraps a filtered collection.
type ListResponse struct {
	Total int         `json:"total"`
	Data  interface{} `json:"data"`
}
