package models

// Job taxonomy values. These mirror the fixed vocabularies the site's
// filter widgets expose.

type JobCategory string

const (
	CategoryInstructionalDesign   JobCategory = "instructional-design"
	CategoryElearningDevelopment  JobCategory = "elearning-development"
	CategoryTrainingFacilitation  JobCategory = "training-facilitation"
	CategoryLearningManagement    JobCategory = "learning-management"
	CategoryCurriculumDevelopment JobCategory = "curriculum-development"
	CategoryCorporateTraining     JobCategory = "corporate-training"
	CategoryLearningTechnology    JobCategory = "learning-technology"
	CategoryTalentDevelopment     JobCategory = "talent-development"
	CategoryOther                 JobCategory = "other"
)

type LocationType string

const (
	LocationRemote LocationType = "remote"
	LocationHybrid LocationType = "hybrid"
	LocationOnsite LocationType = "onsite"
)

type ExperienceLevel string

const (
	ExperienceEntry    ExperienceLevel = "entry"
	ExperienceMid      ExperienceLevel = "mid"
	ExperienceSenior   ExperienceLevel = "senior"
	ExperienceLead     ExperienceLevel = "lead"
	ExperienceDirector ExperienceLevel = "director"
)

type EmploymentType string

const (
	EmploymentFullTime  EmploymentType = "full-time"
	EmploymentPartTime  EmploymentType = "part-time"
	EmploymentContract  EmploymentType = "contract"
	EmploymentFreelance EmploymentType = "freelance"
)

type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	// JobStatusPendingDetails marks a paid listing whose content is still
	// missing (webhook fallback path).
	JobStatusPendingDetails JobStatus = "pending-details"
	JobStatusExpired        JobStatus = "expired"
	JobStatusRemoved        JobStatus = "removed"
)

type PaymentStatus string

const (
	PaymentStatusPaid PaymentStatus = "paid"
)

type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityLimited     Availability = "limited"
	AvailabilityUnavailable Availability = "unavailable"
)

type ProfileStatus string

const (
	ProfileStatusActive        ProfileStatus = "active"
	ProfileStatusInactive      ProfileStatus = "inactive"
	ProfileStatusPendingReview ProfileStatus = "pending-review"
)

// SourceSiteDirect labels listings posted through the site itself, as
// opposed to scraped ones which carry the board's name.
const SourceSiteDirect = "L&D Exchange"
