package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// HourlyRate is stored as a json column.
type HourlyRate struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// FreelancerProfile is a directory entry in the freelancer listing.
type FreelancerProfile struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	DisplayName string `json:"displayName"`
	Headline    string `json:"headline"`
	Bio         string `gorm:"type:text" json:"bio"`

	Location          string `json:"location"`
	Timezone          string `json:"timezone"`
	AvailableRemotely bool   `json:"availableRemotely"`

	Specializations pq.StringArray `gorm:"type:text[]" json:"specializations"`
	Skills          pq.StringArray `gorm:"type:text[]" json:"skills"`
	ExperienceYears int            `json:"experienceYears"`
	HourlyRate      *HourlyRate    `gorm:"type:jsonb;serializer:json" json:"hourlyRate,omitempty"`

	PortfolioURL string `json:"portfolioUrl,omitempty"`
	LinkedinURL  string `json:"linkedinUrl,omitempty"`
	WebsiteURL   string `json:"websiteUrl,omitempty"`

	Availability     Availability `json:"availability"`
	AvailabilityNote string       `json:"availabilityNote,omitempty"`

	// Boost state, mutated only by the fulfillment webhook. IsFeatured is
	// authoritative only while FeaturedUntil is in the future; reads go
	// through FeaturedNow.
	IsFeatured    bool       `json:"isFeatured"`
	FeaturedUntil *time.Time `json:"featuredUntil,omitempty"`

	Status    ProfileStatus `gorm:"index" json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (p *FreelancerProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// FeaturedNow reports whether the profile should display and sort as
// featured at the given instant. Expiry is enforced at read time; no
// background job flips the flag the moment it lapses.
func (p *FreelancerProfile) FeaturedNow(now time.Time) bool {
	return p.IsFeatured && p.FeaturedUntil != nil && p.FeaturedUntil.After(now)
}
