package services

import (
	"fmt"
	"time"

	"grindup_backend/internal/models"
	"grindup_backend/internal/repositories"
	"grindup_backend/internal/services/dto"
	"grindup_backend/pkg/apperrors"
)

type InvitationService interface {
	SendInvitation(companyUserID string, req *dto.SendInvitationRequest) (*dto.InvitationResponse, error)
	AcceptInvitation(collegeUserID, invitationID string) (*dto.AcceptInvitationResponse, error)
	DeclineInvitation(collegeUserID, invitationID string) (*dto.InvitationResponse, error)
	DeleteInvitation(companyUserID, invitationID string) error
	ListMyInvitations(collegeUserID string) ([]dto.InvitationResponse, error)
	ListSentInvitations(companyUserID string) ([]dto.InvitationResponse, error)
}

type InvitationServiceImpl struct {
	invitationRepo   repositories.InvitationRepository
	applicationRepo  repositories.ApplicationRepository
	jobRepo          repositories.JobRepository
	profileRepo      repositories.ProfileRepository
	notificationRepo repositories.NotificationRepository
	emailService     *EmailService
}

func NewInvitationService(
	invitationRepo repositories.InvitationRepository,
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	notificationRepo repositories.NotificationRepository,
	emailService *EmailService,
) InvitationService {
	return &InvitationServiceImpl{
		invitationRepo:   invitationRepo,
		applicationRepo:  applicationRepo,
		jobRepo:          jobRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
		emailService:     emailService,
	}
}

// SendInvitation creates a pending invitation from the caller's company
// to a college for one of the company's own postings. Company approval
// is not consulted here; only posting creation is gated.
func (s *InvitationServiceImpl) SendInvitation(companyUserID string, req *dto.SendInvitationRequest) (*dto.InvitationResponse, error) {
	company, err := s.profileRepo.FindCompanyProfileByUserID(companyUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "invitation", "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "invitation", "Job posting not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.CompanyProfileID != company.ID {
		return nil, apperrors.NewForbiddenError("Job posting belongs to another company")
	}

	college, err := s.profileRepo.FindCollegeProfileByID(req.CollegeProfileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "invitation", "College profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if college.UserID == "" {
		return nil, apperrors.ErrInvalidStatus("invitation", "College profile has no linked account")
	}

	invitation := &models.Invitation{
		JobID:            job.ID,
		CompanyProfileID: company.ID,
		CollegeProfileID: college.ID,
		Status:           models.InvitationStatusPending,
		Message:          req.Message,
		InvitedAt:        time.Now(),
	}

	if err := s.invitationRepo.Create(invitation); err != nil {
		if apperrors.Is(err, repositories.ErrInvitationAlreadyExists) {
			return nil, apperrors.ErrConflict("invitation", "Invitation already sent to this college for this job")
		}
		return nil, apperrors.InternalError(err)
	}

	go s.notifyInvited(college, company, job, invitation)

	return buildInvitationResponse(invitation, job, company, college), nil
}

// AcceptInvitation derives an application from a pending invitation and
// flips the invitation to accepted, atomically. If the college already
// applied to the job the guard fails with Conflict and the invitation
// stays pending.
func (s *InvitationServiceImpl) AcceptInvitation(collegeUserID, invitationID string) (*dto.AcceptInvitationResponse, error) {
	college, invitation, err := s.resolveForResponse(collegeUserID, invitationID)
	if err != nil {
		return nil, err
	}

	companyName := ""
	if invitation.Company != nil {
		companyName = invitation.Company.CompanyName
	}

	// Duplicate-application guard. The unique (job, college) index
	// re-checks this inside the transaction for racing accepts.
	if _, err := s.applicationRepo.FindByJobAndCollege(invitation.JobID, college.ID); err == nil {
		return nil, apperrors.ErrConflict("invitation", "Already applied to this job")
	} else if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	application := &models.Application{
		JobID:            invitation.JobID,
		CollegeProfileID: college.ID,
		Status:           models.ApplicationStatusApplied,
		CoverLetter:      fmt.Sprintf("Applied via invitation from %s", companyName),
		AppliedAt:        now,
		Tracking:         models.ProcessTracking{AppliedAt: &now},
	}

	if err := s.invitationRepo.AcceptWithApplication(invitation.ID, application); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrConflict("invitation", "Already applied to this job")
		}
		if apperrors.Is(err, repositories.ErrInvitationNotFound) {
			return nil, apperrors.ErrConflict("invitation", "Invitation has already been responded to")
		}
		return nil, apperrors.InternalError(err)
	}
	invitation.Status = models.InvitationStatusAccepted

	go s.jobRepo.IncrementStat(invitation.JobID, repositories.StatTotalApplications)
	go s.notifyResponded(college, invitation, models.InvitationStatusAccepted)

	return &dto.AcceptInvitationResponse{
		Invitation:  buildInvitationResponse(invitation, invitation.Job, invitation.Company, college),
		Application: buildApplicationResponse(application, invitation.Job, college),
	}, nil
}

// DeclineInvitation resolves a pending invitation to declined. Never
// creates an application.
func (s *InvitationServiceImpl) DeclineInvitation(collegeUserID, invitationID string) (*dto.InvitationResponse, error) {
	college, invitation, err := s.resolveForResponse(collegeUserID, invitationID)
	if err != nil {
		return nil, err
	}

	if err := s.invitationRepo.UpdateStatusIfPending(invitation.ID, models.InvitationStatusDeclined); err != nil {
		if apperrors.Is(err, repositories.ErrInvitationNotFound) {
			return nil, apperrors.ErrConflict("invitation", "Invitation has already been responded to")
		}
		return nil, apperrors.InternalError(err)
	}
	invitation.Status = models.InvitationStatusDeclined

	go s.notifyResponded(college, invitation, models.InvitationStatusDeclined)

	return buildInvitationResponse(invitation, invitation.Job, invitation.Company, college), nil
}

// DeleteInvitation hard-deletes one of the caller's sent invitations,
// regardless of its status.
func (s *InvitationServiceImpl) DeleteInvitation(companyUserID, invitationID string) error {
	company, err := s.profileRepo.FindCompanyProfileByUserID(companyUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err, "invitation", "Company profile not found")
		}
		return apperrors.InternalError(err)
	}

	invitation, err := s.invitationRepo.FindByID(invitationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInvitationNotFound) {
			return apperrors.ErrNotFound(err, "invitation", "Invitation not found")
		}
		return apperrors.InternalError(err)
	}
	if invitation.CompanyProfileID != company.ID {
		return apperrors.NewForbiddenError("Invitation belongs to another company")
	}

	if err := s.invitationRepo.Delete(invitationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *InvitationServiceImpl) ListMyInvitations(collegeUserID string) ([]dto.InvitationResponse, error) {
	college, err := s.profileRepo.FindCollegeProfileByUserID(collegeUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "invitation", "College profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	invitations, err := s.invitationRepo.ListByCollege(college.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildInvitationList(invitations), nil
}

func (s *InvitationServiceImpl) ListSentInvitations(companyUserID string) ([]dto.InvitationResponse, error) {
	company, err := s.profileRepo.FindCompanyProfileByUserID(companyUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "invitation", "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	invitations, err := s.invitationRepo.ListByCompany(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildInvitationList(invitations), nil
}

// resolveForResponse loads the caller's college profile and the target
// invitation, and enforces ownership plus the pending precondition
// shared by accept and decline.
func (s *InvitationServiceImpl) resolveForResponse(collegeUserID, invitationID string) (*models.CollegeProfile, *models.Invitation, error) {
	college, err := s.profileRepo.FindCollegeProfileByUserID(collegeUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, nil, apperrors.ErrNotFound(err, "invitation", "College profile not found")
		}
		return nil, nil, apperrors.InternalError(err)
	}

	invitation, err := s.invitationRepo.FindByID(invitationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInvitationNotFound) {
			return nil, nil, apperrors.ErrNotFound(err, "invitation", "Invitation not found")
		}
		return nil, nil, apperrors.InternalError(err)
	}

	if invitation.CollegeProfileID != college.ID {
		return nil, nil, apperrors.NewForbiddenError("Invitation is addressed to another college")
	}
	if invitation.Status != models.InvitationStatusPending {
		return nil, nil, apperrors.ErrConflict("invitation", "Invitation has already been responded to")
	}

	return college, invitation, nil
}

func (s *InvitationServiceImpl) notifyInvited(college *models.CollegeProfile, company *models.CompanyProfile, job *models.JobPosting, invitation *models.Invitation) {
	s.notificationRepo.CreateInvitationNotification(college.UserID, company.CompanyName, job.Title, invitation.ID)
	s.emailService.SendInvitation(college.Email, company.CompanyName, job.Title, invitation.Message)
}

func (s *InvitationServiceImpl) notifyResponded(college *models.CollegeProfile, invitation *models.Invitation, status models.InvitationStatus) {
	if invitation.Company == nil {
		return
	}
	s.notificationRepo.CreateInvitationResponseNotification(invitation.Company.UserID, college.CollegeName, status)
}

func buildInvitationResponse(inv *models.Invitation, job *models.JobPosting, company *models.CompanyProfile, college *models.CollegeProfile) *dto.InvitationResponse {
	resp := &dto.InvitationResponse{
		ID:        inv.ID,
		JobID:     inv.JobID,
		Status:    inv.Status,
		Message:   inv.Message,
		InvitedAt: inv.InvitedAt,
	}
	if job != nil {
		resp.JobTitle = job.Title
	}
	if company != nil {
		resp.CompanyName = company.CompanyName
	}
	if college != nil {
		resp.CollegeName = college.CollegeName
	}
	return resp
}

func buildInvitationList(invitations []models.Invitation) []dto.InvitationResponse {
	responses := make([]dto.InvitationResponse, 0, len(invitations))
	for i := range invitations {
		inv := &invitations[i]
		responses = append(responses, *buildInvitationResponse(inv, inv.Job, inv.Company, inv.College))
	}
	return responses
}
