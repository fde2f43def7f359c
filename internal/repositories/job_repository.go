package repositories

import (
	"errors"
	"time"

	"grindup_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job posting not found")

// JobStatField names a counter column on the embedded stats summary.
type JobStatField string

const (
	StatTotalApplications JobStatField = "stats_total_applications"
	StatShortlisted       JobStatField = "stats_shortlisted"
	StatInterviewed       JobStatField = "stats_interviewed"
	StatHired             JobStatField = "stats_hired"
	StatRejected          JobStatField = "stats_rejected"
)

type JobSearchCriteria struct {
	Query     string `form:"query"`
	Location  string `form:"location"`
	JobType   string `form:"job_type"`
	Status    string `form:"status"`
	CompanyID string `form:"company_id"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

type JobRepository interface {
	Create(job *models.JobPosting) error
	FindByID(id string) (*models.JobPosting, error)
	Update(job *models.JobPosting) error
	Delete(id string) error
	ListByCompany(companyProfileID string) ([]models.JobPosting, error)
	Search(criteria JobSearchCriteria) ([]models.JobPosting, int64, error)

	// IncrementStat bumps a single counter column atomically. Per-field
	// atomicity only; no cross-field guarantees are needed.
	IncrementStat(jobID string, field JobStatField) error

	// CloseExpired closes active postings whose deadline has passed.
	CloseExpired(now time.Time) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.JobPosting) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.Preload("Company").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.JobPosting) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.JobPosting{}, "id = ?", id).Error
}

func (r *JobRepositoryImpl) ListByCompany(companyProfileID string) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.Where("company_profile_id = ?", companyProfileID).
		Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Search(criteria JobSearchCriteria) ([]models.JobPosting, int64, error) {
	query := r.db.Model(&models.JobPosting{}).Preload("Company")

	if criteria.Query != "" {
		like := "%" + criteria.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.JobType != "" {
		query = query.Where("job_type = ?", criteria.JobType)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.CompanyID != "" {
		query = query.Where("company_profile_id = ?", criteria.CompanyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var jobs []models.JobPosting
	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) IncrementStat(jobID string, field JobStatField) error {
	result := r.db.Model(&models.JobPosting{}).Where("id = ?", jobID).
		UpdateColumn(string(field), gorm.Expr(string(field)+" + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) CloseExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.JobPosting{}).
		Where("status = ? AND application_deadline IS NOT NULL AND application_deadline < ?",
			models.JobStatusActive, now).
		Update("status", models.JobStatusClosed)
	return result.RowsAffected, result.Error
}
