// Package search filters and orders in-memory listing collections. All
// functions are pure: they never mutate their input and produce
// deterministic order, with ties keeping input order.
package search

import (
	"sort"
	"strings"
	"time"

	"ldexchange_backend/internal/models"
)

// JobFilters narrows a job listing. Empty fields are skipped.
type JobFilters struct {
	Categories       []models.JobCategory    `form:"categories[]" json:"categories"`
	ExperienceLevels []models.ExperienceLevel `form:"experience_levels[]" json:"experienceLevels"`
	EmploymentTypes  []models.EmploymentType  `form:"employment_types[]" json:"employmentTypes"`
	LocationTypes    []models.LocationType    `form:"location_types[]" json:"locationTypes"`
}

// FilterJobs applies query and filters in order, then sorts featured
// listings first and each group by descending post date.
func FilterJobs(jobs []models.Job, query string, filters JobFilters) []models.Job {
	result := make([]models.Job, len(jobs))
	copy(result, jobs)

	if query != "" {
		q := strings.ToLower(query)
		result = keepJobs(result, func(job models.Job) bool {
			return strings.Contains(strings.ToLower(job.Title), q) ||
				strings.Contains(strings.ToLower(job.Company), q) ||
				strings.Contains(strings.ToLower(job.Description), q) ||
				strings.Contains(strings.ToLower(job.Location), q)
		})
	}

	if len(filters.Categories) > 0 {
		result = keepJobs(result, func(job models.Job) bool {
			return containsCategory(filters.Categories, job.Category)
		})
	}

	if len(filters.ExperienceLevels) > 0 {
		result = keepJobs(result, func(job models.Job) bool {
			for _, level := range filters.ExperienceLevels {
				if job.ExperienceLevel == level {
					return true
				}
			}
			return false
		})
	}

	if len(filters.EmploymentTypes) > 0 {
		result = keepJobs(result, func(job models.Job) bool {
			for _, et := range filters.EmploymentTypes {
				if job.EmploymentType == et {
					return true
				}
			}
			return false
		})
	}

	if len(filters.LocationTypes) > 0 {
		result = keepJobs(result, func(job models.Job) bool {
			for _, lt := range filters.LocationTypes {
				if job.LocationType == lt {
					return true
				}
			}
			return false
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].IsFeatured != result[j].IsFeatured {
			return result[i].IsFeatured
		}
		return result[i].PostedAt.After(result[j].PostedAt)
	})

	return result
}

// ProfileFilters narrows the freelancer directory. Empty fields are skipped.
type ProfileFilters struct {
	RemoteOnly      bool                  `form:"remote_only" json:"remoteOnly"`
	Specializations []models.JobCategory  `form:"specializations[]" json:"specializations"`
	Skills          []string              `form:"skills[]" json:"skills"`
	Availability    []models.Availability `form:"availability[]" json:"availability"`
	MinExperience   int                   `form:"min_experience" json:"minExperience"`
}

// FilterProfiles applies query and filters, then sorts currently-featured
// profiles first and each group by descending experience. Featured status
// is evaluated against featuredUntil at the given instant.
func FilterProfiles(profiles []models.FreelancerProfile, query string, filters ProfileFilters, now time.Time) []models.FreelancerProfile {
	result := make([]models.FreelancerProfile, len(profiles))
	copy(result, profiles)

	if query != "" {
		q := strings.ToLower(query)
		result = keepProfiles(result, func(p models.FreelancerProfile) bool {
			if strings.Contains(strings.ToLower(p.DisplayName), q) ||
				strings.Contains(strings.ToLower(p.Headline), q) ||
				strings.Contains(strings.ToLower(p.Bio), q) ||
				strings.Contains(strings.ToLower(p.Location), q) {
				return true
			}
			for _, skill := range p.Skills {
				if strings.Contains(strings.ToLower(skill), q) {
					return true
				}
			}
			return false
		})
	}

	if filters.RemoteOnly {
		result = keepProfiles(result, func(p models.FreelancerProfile) bool {
			return p.AvailableRemotely
		})
	}

	if len(filters.Specializations) > 0 {
		// Any overlap qualifies, not subset containment.
		result = keepProfiles(result, func(p models.FreelancerProfile) bool {
			for _, spec := range p.Specializations {
				if containsCategory(filters.Specializations, models.JobCategory(spec)) {
					return true
				}
			}
			return false
		})
	}

	if len(filters.Skills) > 0 {
		// Fuzzy membership: a selected skill matches if it is a
		// case-insensitive substring of any profile skill.
		result = keepProfiles(result, func(p models.FreelancerProfile) bool {
			for _, wanted := range filters.Skills {
				w := strings.ToLower(wanted)
				for _, skill := range p.Skills {
					if strings.Contains(strings.ToLower(skill), w) {
						return true
					}
				}
			}
			return false
		})
	}

	if len(filters.Availability) > 0 {
		result = keepProfiles(result, func(p models.FreelancerProfile) bool {
			for _, a := range filters.Availability {
				if p.Availability == a {
					return true
				}
			}
			return false
		})
	}

	if filters.MinExperience > 0 {
		result = keepProfiles(result, func(p models.FreelancerProfile) bool {
			return p.ExperienceYears >= filters.MinExperience
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		fi, fj := result[i].FeaturedNow(now), result[j].FeaturedNow(now)
		if fi != fj {
			return fi
		}
		return result[i].ExperienceYears > result[j].ExperienceYears
	})

	return result
}

func keepJobs(jobs []models.Job, pred func(models.Job) bool) []models.Job {
	filtered := jobs[:0]
	for _, job := range jobs {
		if pred(job) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

func keepProfiles(profiles []models.FreelancerProfile, pred func(models.FreelancerProfile) bool) []models.FreelancerProfile {
	filtered := profiles[:0]
	for _, p := range profiles {
		if pred(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func containsCategory(set []models.JobCategory, c models.JobCategory) bool {
	for _, candidate := range set {
		if candidate == c {
			return true
		}
	}
	return false
}
