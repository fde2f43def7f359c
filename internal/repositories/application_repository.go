package repositories

import (
	"errors"

	"grindup_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByJobAndCollege(jobID, collegeProfileID string) (*models.Application, error)
	ListByCollege(collegeProfileID string) ([]models.Application, error)
	ListByJob(jobID string) ([]models.Application, error)

	// UpdateWithStatIncrement persists the mutated application and bumps
	// the matching posting counter in one transaction, so a status never
	// lands without its tracking timestamp or counter.
	UpdateWithStatIncrement(application *models.Application, jobID string, field JobStatField) error
	Update(application *models.Application) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	if err := r.db.Create(application).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Job").Preload("Job.Company").Preload("College").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndCollege(jobID, collegeProfileID string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "job_id = ? AND college_profile_id = ?", jobID, collegeProfileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ListByCollege(collegeProfileID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Preload("Job.Company").
		Where("college_profile_id = ?", collegeProfileID).
		Order("applied_at DESC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("College").
		Where("job_id = ?", jobID).
		Order("applied_at DESC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateWithStatIncrement(application *models.Application, jobID string, field JobStatField) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(application).Error; err != nil {
			return err
		}
		if field == "" {
			return nil
		}
		return tx.Model(&models.JobPosting{}).Where("id = ?", jobID).
			UpdateColumn(string(field), gorm.Expr(string(field)+" + 1")).Error
	})
}

func (r *ApplicationRepositoryImpl) Update(application *models.Application) error {
	return r.db.Save(application).Error
}
