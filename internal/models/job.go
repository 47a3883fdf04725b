package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Salary is stored as a json column; it is omitted entirely when neither
// bound was provided.
type Salary struct {
	Min      *int   `json:"min"`
	Max      *int   `json:"max"`
	Currency string `json:"currency"`
	Period   string `json:"period"` // hourly | annual
}

// Job is a published listing, either a paid direct post or a scraped one.
type Job struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	LocationType    LocationType    `json:"locationType"`
	Description     string          `gorm:"type:text" json:"description"`
	Requirements    pq.StringArray  `gorm:"type:text[]" json:"requirements"`
	Salary          *Salary         `gorm:"type:jsonb;serializer:json" json:"salary,omitempty"`
	Category        JobCategory     `gorm:"index" json:"category"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	EmploymentType  EmploymentType  `json:"employmentType"`

	// Provenance
	SourceURL  string `gorm:"index" json:"sourceUrl"`
	SourceSite string `json:"sourceSite"`

	PostedAt  time.Time  `gorm:"index" json:"postedAt"`
	ExpiresAt time.Time  `json:"expiresAt"`
	ScrapedAt *time.Time `json:"scrapedAt,omitempty"`

	IsFeatured   bool `json:"isFeatured"`
	IsDirectPost bool `json:"isDirectPost"`

	// Payment reconciliation; PaymentID doubles as the idempotency key
	// for webhook redelivery.
	PaymentID     string        `gorm:"index" json:"paymentId,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
	CustomerEmail string        `json:"customerEmail,omitempty"`

	Status JobStatus `gorm:"index" json:"status"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// PendingJob holds a job submission awaiting payment confirmation. It is
// promoted into a Job by the fulfillment webhook and never listed.
type PendingJob struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	LocationType    LocationType    `json:"locationType"`
	Description     string          `gorm:"type:text" json:"description"`
	Requirements    pq.StringArray  `gorm:"type:text[]" json:"requirements"`
	Salary          *Salary         `gorm:"type:jsonb;serializer:json" json:"salary,omitempty"`
	Category        JobCategory     `json:"category"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	EmploymentType  EmploymentType  `json:"employmentType"`
	SourceURL       string          `json:"sourceUrl"`
	SourceSite      string          `json:"sourceSite"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func (p *PendingJob) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
