package repositories

import (
	"errors"

	"grindup_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInvitationNotFound      = errors.New("invitation not found")
	ErrInvitationAlreadyExists = errors.New("invitation already sent")
)

type InvitationRepository interface {
	Create(invitation *models.Invitation) error
	FindByID(id string) (*models.Invitation, error)

	// UpdateStatusIfPending resolves the invitation only while it is
	// still pending. ErrInvitationNotFound means a concurrent response
	// won; the loser must not overwrite it.
	UpdateStatusIfPending(id string, status models.InvitationStatus) error
	Delete(id string) error
	ListByCollege(collegeProfileID string) ([]models.Invitation, error)
	ListByCompany(companyProfileID string) ([]models.Invitation, error)

	// AcceptWithApplication creates the derived application and flips the
	// invitation to accepted inside one transaction. The (job, college)
	// unique index on applications is the backstop for racing accepts:
	// the loser observes ErrApplicationAlreadyExists and the invitation
	// stays pending.
	AcceptWithApplication(invitationID string, application *models.Application) error
}

type InvitationRepositoryImpl struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &InvitationRepositoryImpl{db: db}
}

func (r *InvitationRepositoryImpl) Create(invitation *models.Invitation) error {
	if err := r.db.Create(invitation).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrInvitationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *InvitationRepositoryImpl) FindByID(id string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.Preload("Job").Preload("Company").Preload("College").
		First(&invitation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *InvitationRepositoryImpl) UpdateStatusIfPending(id string, status models.InvitationStatus) error {
	result := r.db.Model(&models.Invitation{}).
		Where("id = ? AND status = ?", id, models.InvitationStatusPending).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvitationNotFound
	}
	return nil
}

func (r *InvitationRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Invitation{}, "id = ?", id).Error
}

func (r *InvitationRepositoryImpl) ListByCollege(collegeProfileID string) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := r.db.Preload("Job").Preload("Company").
		Where("college_profile_id = ?", collegeProfileID).
		Order("invited_at DESC").Find(&invitations).Error
	return invitations, err
}

func (r *InvitationRepositoryImpl) ListByCompany(companyProfileID string) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := r.db.Preload("Job").Preload("College").
		Where("company_profile_id = ?", companyProfileID).
		Order("invited_at DESC").Find(&invitations).Error
	return invitations, err
}

func (r *InvitationRepositoryImpl) AcceptWithApplication(invitationID string, application *models.Application) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(application).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrApplicationAlreadyExists
			}
			return err
		}

		result := tx.Model(&models.Invitation{}).
			Where("id = ? AND status = ?", invitationID, models.InvitationStatusPending).
			Update("status", models.InvitationStatusAccepted)
		if result.Error != nil {
			return result.Error
		}
		// A concurrent accept/decline resolved the invitation first;
		// roll the application back.
		if result.RowsAffected == 0 {
			return ErrInvitationNotFound
		}
		return nil
	})
}
