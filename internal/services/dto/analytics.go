package dto

import (
	"grindup_backend/internal/repositories"
)

// DashboardResponse is the admin reporting rollup, computed fresh per
// call.
type DashboardResponse struct {
	Colleges     []repositories.StatusCount          `json:"colleges_by_approval"`
	Companies    []repositories.StatusCount          `json:"companies_by_approval"`
	JobsByStatus []repositories.StatusCount          `json:"jobs_by_status"`
	JobsByType   []repositories.StatusCount          `json:"jobs_by_type"`
	Applications []repositories.StatusCount          `json:"applications_by_status"`
	TopCompanies []repositories.CompanyPostingCount  `json:"top_companies_by_postings"`
	TopJobs      []repositories.JobApplicationCount  `json:"top_jobs_by_applications"`
}
