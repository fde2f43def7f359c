package repositories

import (
	"grindup_backend/internal/models"

	"gorm.io/gorm"
)

// StatusCount is one bucket of a grouped rollup.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type CompanyPostingCount struct {
	CompanyProfileID string `json:"company_profile_id"`
	CompanyName      string `json:"company_name"`
	Count            int64  `json:"count"`
}

type JobApplicationCount struct {
	JobID string `json:"job_id"`
	Title string `json:"title"`
	Count int64  `json:"count"`
}

// AnalyticsRepository computes dashboard rollups fresh per call;
// nothing here is cached.
type AnalyticsRepository interface {
	CollegeCountsByApproval() ([]StatusCount, error)
	CompanyCountsByApproval() ([]StatusCount, error)
	JobCountsByStatus() ([]StatusCount, error)
	JobCountsByType() ([]StatusCount, error)
	ApplicationCountsByStatus() ([]StatusCount, error)
	TopCompaniesByPostings(limit int) ([]CompanyPostingCount, error)
	TopJobsByApplications(limit int) ([]JobApplicationCount, error)
}

type AnalyticsRepositoryImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

func (r *AnalyticsRepositoryImpl) CollegeCountsByApproval() ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Model(&models.CollegeProfile{}).
		Select("approval_status AS status, COUNT(*) AS count").
		Group("approval_status").Scan(&counts).Error
	return counts, err
}

func (r *AnalyticsRepositoryImpl) CompanyCountsByApproval() ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Model(&models.CompanyProfile{}).
		Select("approval_status AS status, COUNT(*) AS count").
		Group("approval_status").Scan(&counts).Error
	return counts, err
}

func (r *AnalyticsRepositoryImpl) JobCountsByStatus() ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Model(&models.JobPosting{}).
		Select("status, COUNT(*) AS count").
		Group("status").Scan(&counts).Error
	return counts, err
}

func (r *AnalyticsRepositoryImpl) JobCountsByType() ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Model(&models.JobPosting{}).
		Select("job_type AS status, COUNT(*) AS count").
		Group("job_type").Scan(&counts).Error
	return counts, err
}

func (r *AnalyticsRepositoryImpl) ApplicationCountsByStatus() ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Model(&models.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").Scan(&counts).Error
	return counts, err
}

func (r *AnalyticsRepositoryImpl) TopCompaniesByPostings(limit int) ([]CompanyPostingCount, error) {
	if limit < 1 {
		limit = 5
	}
	var counts []CompanyPostingCount
	err := r.db.Raw(`
		SELECT j.company_profile_id, c.company_name, COUNT(*) AS count
		FROM job_postings j
		JOIN company_profiles c ON c.id = j.company_profile_id
		GROUP BY j.company_profile_id, c.company_name
		ORDER BY count DESC
		LIMIT ?
	`, limit).Scan(&counts).Error
	return counts, err
}

func (r *AnalyticsRepositoryImpl) TopJobsByApplications(limit int) ([]JobApplicationCount, error) {
	if limit < 1 {
		limit = 5
	}
	var counts []JobApplicationCount
	err := r.db.Raw(`
		SELECT a.job_id, j.title, COUNT(*) AS count
		FROM applications a
		JOIN job_postings j ON j.id = a.job_id
		GROUP BY a.job_id, j.title
		ORDER BY count DESC
		LIMIT ?
	`, limit).Scan(&counts).Error
	return counts, err
}
