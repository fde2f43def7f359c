package repositories

import (
	"errors"

	"grindup_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
)

type ProfileRepository interface {
	// CollegeProfile operations
	CreateCollegeProfile(profile *models.CollegeProfile) error
	FindCollegeProfileByID(id string) (*models.CollegeProfile, error)
	FindCollegeProfileByUserID(userID string) (*models.CollegeProfile, error)
	UpdateCollegeProfile(profile *models.CollegeProfile) error
	DeleteCollegeProfile(id string) error
	ListCollegeProfiles(status models.ApprovalStatus, limit, offset int) ([]models.CollegeProfile, int64, error)

	// CompanyProfile operations
	CreateCompanyProfile(profile *models.CompanyProfile) error
	FindCompanyProfileByID(id string) (*models.CompanyProfile, error)
	FindCompanyProfileByUserID(userID string) (*models.CompanyProfile, error)
	UpdateCompanyProfile(profile *models.CompanyProfile) error
	DeleteCompanyProfile(id string) error
	ListCompanyProfiles(status models.ApprovalStatus, limit, offset int) ([]models.CompanyProfile, int64, error)

	// Admin approval decision. No precondition on the current status:
	// an admin may re-set an already-decided profile.
	SetCollegeApproval(id string, status models.ApprovalStatus) error
	SetCompanyApproval(id string, status models.ApprovalStatus) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// CollegeProfile operations

func (r *ProfileRepositoryImpl) CreateCollegeProfile(profile *models.CollegeProfile) error {
	if err := r.db.Create(profile).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ProfileRepositoryImpl) FindCollegeProfileByID(id string) (*models.CollegeProfile, error) {
	var profile models.CollegeProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindCollegeProfileByUserID(userID string) (*models.CollegeProfile, error) {
	var profile models.CollegeProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateCollegeProfile(profile *models.CollegeProfile) error {
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) DeleteCollegeProfile(id string) error {
	return r.db.Delete(&models.CollegeProfile{}, "id = ?", id).Error
}

func (r *ProfileRepositoryImpl) ListCollegeProfiles(status models.ApprovalStatus, limit, offset int) ([]models.CollegeProfile, int64, error) {
	var profiles []models.CollegeProfile
	var total int64

	query := r.db.Model(&models.CollegeProfile{})
	if status != "" {
		query = query.Where("approval_status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, total, err
}

func (r *ProfileRepositoryImpl) SetCollegeApproval(id string, status models.ApprovalStatus) error {
	result := r.db.Model(&models.CollegeProfile{}).Where("id = ?", id).
		Update("approval_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// CompanyProfile operations

func (r *ProfileRepositoryImpl) CreateCompanyProfile(profile *models.CompanyProfile) error {
	if err := r.db.Create(profile).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ProfileRepositoryImpl) FindCompanyProfileByID(id string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindCompanyProfileByUserID(userID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateCompanyProfile(profile *models.CompanyProfile) error {
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) DeleteCompanyProfile(id string) error {
	return r.db.Delete(&models.CompanyProfile{}, "id = ?", id).Error
}

func (r *ProfileRepositoryImpl) ListCompanyProfiles(status models.ApprovalStatus, limit, offset int) ([]models.CompanyProfile, int64, error) {
	var profiles []models.CompanyProfile
	var total int64

	query := r.db.Model(&models.CompanyProfile{})
	if status != "" {
		query = query.Where("approval_status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, total, err
}

func (r *ProfileRepositoryImpl) SetCompanyApproval(id string, status models.ApprovalStatus) error {
	result := r.db.Model(&models.CompanyProfile{}).Where("id = ?", id).
		Update("approval_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
