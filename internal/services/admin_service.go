package services

import (
	"grindup_backend/internal/models"
	"grindup_backend/internal/repositories"
	"grindup_backend/internal/services/dto"
	"grindup_backend/pkg/apperrors"
)

type AdminService interface {
	SetCollegeApproval(collegeID string, req *dto.ApprovalRequest) error
	SetCompanyApproval(companyID string, req *dto.ApprovalRequest) error
	ListColleges(status models.ApprovalStatus, limit, offset int) (*dto.ProfileListResponse, error)
	ListCompanies(status models.ApprovalStatus, limit, offset int) (*dto.ProfileListResponse, error)
}

type AdminServiceImpl struct {
	profileRepo      repositories.ProfileRepository
	notificationRepo repositories.NotificationRepository
	emailService     *EmailService
}

func NewAdminService(
	profileRepo repositories.ProfileRepository,
	notificationRepo repositories.NotificationRepository,
	emailService *EmailService,
) AdminService {
	return &AdminServiceImpl{
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
		emailService:     emailService,
	}
}

func approvalStatusFor(action string) (models.ApprovalStatus, error) {
	switch action {
	case "approve":
		return models.ApprovalStatusApproved, nil
	case "reject":
		return models.ApprovalStatusRejected, nil
	default:
		return "", apperrors.NewBadRequestError("Action must be approve or reject")
	}
}

// SetCollegeApproval records the admin decision. Decisions are not
// one-shot; a later call may overwrite an earlier one.
func (s *AdminServiceImpl) SetCollegeApproval(collegeID string, req *dto.ApprovalRequest) error {
	status, err := approvalStatusFor(req.Action)
	if err != nil {
		return err
	}

	college, err := s.profileRepo.FindCollegeProfileByID(collegeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err, "admin", "College profile not found")
		}
		return apperrors.InternalError(err)
	}

	if err := s.profileRepo.SetCollegeApproval(collegeID, status); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err, "admin", "College profile not found")
		}
		return apperrors.InternalError(err)
	}

	go s.notifyDecision(college.UserID, college.Email, college.CollegeName, status)
	return nil
}

func (s *AdminServiceImpl) SetCompanyApproval(companyID string, req *dto.ApprovalRequest) error {
	status, err := approvalStatusFor(req.Action)
	if err != nil {
		return err
	}

	company, err := s.profileRepo.FindCompanyProfileByID(companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err, "admin", "Company profile not found")
		}
		return apperrors.InternalError(err)
	}

	if err := s.profileRepo.SetCompanyApproval(companyID, status); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err, "admin", "Company profile not found")
		}
		return apperrors.InternalError(err)
	}

	go s.notifyDecision(company.UserID, company.Email, company.CompanyName, status)
	return nil
}

func (s *AdminServiceImpl) ListColleges(status models.ApprovalStatus, limit, offset int) (*dto.ProfileListResponse, error) {
	colleges, total, err := s.profileRepo.ListCollegeProfiles(status, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.ProfileListResponse{Colleges: colleges, Total: total}, nil
}

func (s *AdminServiceImpl) ListCompanies(status models.ApprovalStatus, limit, offset int) (*dto.ProfileListResponse, error) {
	companies, total, err := s.profileRepo.ListCompanyProfiles(status, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.ProfileListResponse{Companies: companies, Total: total}, nil
}

func (s *AdminServiceImpl) notifyDecision(userID, email, name string, status models.ApprovalStatus) {
	s.notificationRepo.CreateApprovalNotification(userID, status)
	s.emailService.SendApprovalDecision(email, name, status)
}
