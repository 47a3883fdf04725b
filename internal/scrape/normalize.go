package scrape

import (
	"strings"

	"ldexchange_backend/internal/models"
)

// ldKeywords marks a listing as relevant to the site's niche. Boards
// return everything; only learning-and-development roles are ingested.
var ldKeywords = []string{
	"instructional design",
	"instructional designer",
	"e-learning",
	"elearning",
	"learning and development",
	"l&d",
	"corporate training",
	"training specialist",
	"training manager",
	"learning experience",
	"curriculum developer",
	"curriculum development",
	"articulate storyline",
	"articulate rise",
	"adobe captivate",
	"lms administrator",
	"learning management",
	"talent development",
	"training facilitator",
	"learning consultant",
}

// IsLDRelated reports whether the text mentions any L&D keyword.
func IsLDRelated(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range ldKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// categoryKeywords maps categories to title/description markers, checked
// in declaration order.
var categoryKeywords = []struct {
	category models.JobCategory
	keywords []string
}{
	{models.CategoryInstructionalDesign, []string{
		"instructional design", "instructional designer", "learning design", "learning designer",
	}},
	{models.CategoryElearningDevelopment, []string{
		"e-learning developer", "elearning developer", "course developer", "articulate", "captivate", "storyline",
	}},
	{models.CategoryTrainingFacilitation, []string{
		"training facilitator", "trainer", "facilitator", "workshop", "classroom training",
	}},
	{models.CategoryLearningManagement, []string{
		"lms", "learning management", "cornerstone", "docebo",
	}},
	{models.CategoryCurriculumDevelopment, []string{
		"curriculum developer", "curriculum development", "curriculum designer",
	}},
	{models.CategoryCorporateTraining, []string{
		"corporate training", "training specialist", "training manager", "learning and development",
	}},
	{models.CategoryLearningTechnology, []string{
		"learning technology", "learning technologist", "edtech",
	}},
	{models.CategoryTalentDevelopment, []string{
		"talent development", "people development", "organizational development",
	}},
}

// DetectCategory infers the L&D category from job text.
func DetectCategory(title, description string) models.JobCategory {
	text := strings.ToLower(title + " " + description)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.category
			}
		}
	}
	return models.CategoryInstructionalDesign
}

// DetectLocationType infers remote/hybrid/onsite from job text.
func DetectLocationType(location, description string) models.LocationType {
	text := strings.ToLower(location + " " + description)

	if strings.Contains(text, "remote") || strings.Contains(text, "work from home") || strings.Contains(text, "wfh") {
		if strings.Contains(text, "hybrid") {
			return models.LocationHybrid
		}
		return models.LocationRemote
	}
	if strings.Contains(text, "hybrid") {
		return models.LocationHybrid
	}
	return models.LocationOnsite
}

// DetectEmploymentType infers the employment type from job text.
func DetectEmploymentType(title, description string) models.EmploymentType {
	text := strings.ToLower(title + " " + description)

	switch {
	case strings.Contains(text, "freelance"):
		return models.EmploymentFreelance
	case strings.Contains(text, "contract"):
		return models.EmploymentContract
	case strings.Contains(text, "part-time") || strings.Contains(text, "part time"):
		return models.EmploymentPartTime
	default:
		return models.EmploymentFullTime
	}
}

// DetectExperienceLevel infers seniority from job text.
func DetectExperienceLevel(title, description string) models.ExperienceLevel {
	text := strings.ToLower(title + " " + description)

	switch {
	case strings.Contains(text, "director") || strings.Contains(text, "vp ") || strings.Contains(text, "vice president"):
		return models.ExperienceDirector
	case strings.Contains(text, "lead") || strings.Contains(text, "principal") || strings.Contains(text, "head of"):
		return models.ExperienceLead
	case strings.Contains(text, "senior") || strings.Contains(text, "sr.") || strings.Contains(text, "sr "):
		return models.ExperienceSenior
	case strings.Contains(text, "junior") || strings.Contains(text, "jr.") || strings.Contains(text, "entry") || strings.Contains(text, "associate"):
		return models.ExperienceEntry
	default:
		return models.ExperienceMid
	}
}
