package services

import (
	"time"

	"grindup_backend/internal/models"
	"grindup_backend/internal/repositories"
	"grindup_backend/internal/services/dto"
	"grindup_backend/pkg/apperrors"
)

type ApplicationService interface {
	ApplyDirectly(collegeUserID, jobID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error)
	UpdateStatus(companyUserID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
	Withdraw(collegeUserID, applicationID string, req *dto.WithdrawRequest) (*dto.ApplicationResponse, error)
	GetApplication(userID string, role models.UserRole, applicationID string) (*dto.ApplicationResponse, error)
	ListMyApplications(collegeUserID string) ([]dto.ApplicationResponse, error)
	ListJobApplications(companyUserID, jobID string) ([]dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo  repositories.ApplicationRepository
	jobRepo          repositories.JobRepository
	profileRepo      repositories.ProfileRepository
	notificationRepo repositories.NotificationRepository
	emailService     *EmailService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	notificationRepo repositories.NotificationRepository,
	emailService *EmailService,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo:  applicationRepo,
		jobRepo:          jobRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
		emailService:     emailService,
	}
}

// statFieldFor maps an application status transition to the posting
// counter it bumps. Statuses without a counter return "".
func statFieldFor(status models.ApplicationStatus) repositories.JobStatField {
	switch status {
	case models.ApplicationStatusShortlisted:
		return repositories.StatShortlisted
	case models.ApplicationStatusInterviewed:
		return repositories.StatInterviewed
	case models.ApplicationStatusAccepted:
		return repositories.StatHired
	case models.ApplicationStatusRejected:
		return repositories.StatRejected
	default:
		return ""
	}
}

// ApplyDirectly creates an application for an open posting. The counter
// increment and both notification events are fire-and-forget; their
// failure never rolls back the application.
func (s *ApplicationServiceImpl) ApplyDirectly(collegeUserID, jobID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	college, err := s.profileRepo.FindCollegeProfileByUserID(collegeUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "College profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Job posting not found")
		}
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	if !job.IsOpenForApplications(now) {
		if job.ApplicationDeadline != nil && now.After(*job.ApplicationDeadline) {
			return nil, apperrors.ErrInvalidStatus("application", "Application deadline has passed")
		}
		return nil, apperrors.ErrInvalidStatus("application", "Job posting is no longer accepting applications")
	}

	application := &models.Application{
		JobID:            job.ID,
		CollegeProfileID: college.ID,
		Status:           models.ApplicationStatusApplied,
		CoverLetter:      req.CoverLetter,
		ResumeURL:        req.ResumeURL,
		AppliedAt:        now,
		Tracking:         models.ProcessTracking{AppliedAt: &now},
	}
	if len(req.Skills) > 0 {
		application.SetSkills(req.Skills)
	}

	if err := s.applicationRepo.Create(application); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrConflict("application", "Already applied to this job")
		}
		return nil, apperrors.InternalError(err)
	}

	go s.jobRepo.IncrementStat(job.ID, repositories.StatTotalApplications)
	go s.notifyApplied(college, job, application)

	return buildApplicationResponse(application, job, college), nil
}

// UpdateStatus moves an application through the review pipeline. The
// transition order is not enforced, but terminal statuses accept no
// further change and re-setting the current status is a no-op that
// does not re-increment counters.
func (s *ApplicationServiceImpl) UpdateStatus(companyUserID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	if !models.ValidApplicationStatuses[req.Status] {
		return nil, apperrors.ErrInvalidStatus("application", "Unknown application status")
	}

	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	job := application.Job
	if job == nil {
		job, err = s.jobRepo.FindByID(application.JobID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	company, err := s.profileRepo.FindCompanyProfileByUserID(companyUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.CompanyProfileID != company.ID {
		return nil, apperrors.NewForbiddenError("Application belongs to another company's posting")
	}

	if application.Status.IsTerminal() {
		return nil, apperrors.ErrInvalidStatus("application", "Application has reached a final decision")
	}
	if application.IsWithdrawn {
		return nil, apperrors.ErrInvalidStatus("application", "Application has been withdrawn")
	}
	if application.Status == req.Status {
		// No-op transition: no counter bump, no tracking overwrite.
		return buildApplicationResponse(application, job, application.College), nil
	}

	now := time.Now()
	application.Status = req.Status
	stampTracking(&application.Tracking, req.Status, now)
	if req.Feedback != "" {
		application.Feedback = req.Feedback
	}
	if req.Notes != "" {
		application.Notes = req.Notes
	}

	if err := s.applicationRepo.UpdateWithStatIncrement(application, job.ID, statFieldFor(req.Status)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	go s.notifyStatusChanged(application, job, req.Status)

	return buildApplicationResponse(application, job, application.College), nil
}

// Withdraw marks the application withdrawn. Blocked once a final
// decision exists; repeating it on an already-withdrawn application is
// an idempotent success.
func (s *ApplicationServiceImpl) Withdraw(collegeUserID, applicationID string, req *dto.WithdrawRequest) (*dto.ApplicationResponse, error) {
	college, err := s.profileRepo.FindCollegeProfileByUserID(collegeUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "College profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if application.CollegeProfileID != college.ID {
		return nil, apperrors.NewForbiddenError("Application belongs to another college")
	}

	if application.Status.IsTerminal() {
		return nil, apperrors.ErrInvalidStatus("application", "Cannot withdraw after a final decision")
	}
	if application.IsWithdrawn {
		return buildApplicationResponse(application, application.Job, college), nil
	}

	now := time.Now()
	application.Status = models.ApplicationStatusWithdrawn
	application.IsWithdrawn = true
	application.WithdrawnAt = &now
	application.WithdrawnReason = req.Reason

	if err := s.applicationRepo.Update(application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildApplicationResponse(application, application.Job, college), nil
}

func (s *ApplicationServiceImpl) GetApplication(userID string, role models.UserRole, applicationID string) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	switch role {
	case models.UserRoleCollege:
		college, err := s.profileRepo.FindCollegeProfileByUserID(userID)
		if err != nil || application.CollegeProfileID != college.ID {
			return nil, apperrors.NewForbiddenError("Application belongs to another college")
		}
	case models.UserRoleCompany:
		company, err := s.profileRepo.FindCompanyProfileByUserID(userID)
		if err != nil || application.Job == nil || application.Job.CompanyProfileID != company.ID {
			return nil, apperrors.NewForbiddenError("Application belongs to another company's posting")
		}
	case models.UserRoleAdmin:
		// Admin may read any application.
	default:
		return nil, apperrors.ErrInvalidUserRole
	}

	return buildApplicationResponse(application, application.Job, application.College), nil
}

func (s *ApplicationServiceImpl) ListMyApplications(collegeUserID string) ([]dto.ApplicationResponse, error) {
	college, err := s.profileRepo.FindCollegeProfileByUserID(collegeUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "College profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	applications, err := s.applicationRepo.ListByCollege(college.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildApplicationList(applications), nil
}

func (s *ApplicationServiceImpl) ListJobApplications(companyUserID, jobID string) ([]dto.ApplicationResponse, error) {
	company, err := s.profileRepo.FindCompanyProfileByUserID(companyUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Job posting not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.CompanyProfileID != company.ID {
		return nil, apperrors.NewForbiddenError("Job posting belongs to another company")
	}

	applications, err := s.applicationRepo.ListByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildApplicationList(applications), nil
}

// stampTracking writes the milestone timestamp matching the new status.
// accepted and rejected additionally record the final decision.
func stampTracking(tracking *models.ProcessTracking, status models.ApplicationStatus, now time.Time) {
	switch status {
	case models.ApplicationStatusApplied:
		tracking.AppliedAt = &now
	case models.ApplicationStatusUnderReview:
		tracking.UnderReviewAt = &now
	case models.ApplicationStatusShortlisted:
		tracking.ShortlistedAt = &now
	case models.ApplicationStatusInterviewScheduled:
		tracking.InterviewScheduledAt = &now
	case models.ApplicationStatusInterviewed:
		tracking.InterviewedAt = &now
	}
	if status.IsTerminal() {
		tracking.FinalDecisionAt = &now
		tracking.Decision = string(status)
	}
}

func (s *ApplicationServiceImpl) notifyApplied(college *models.CollegeProfile, job *models.JobPosting, application *models.Application) {
	companyName := ""
	if job.Company != nil {
		companyName = job.Company.CompanyName
		s.notificationRepo.CreateApplicationReceivedNotification(job.Company.UserID, college.CollegeName, job.Title, application.ID)
		s.emailService.SendApplicationReceived(job.Company.Email, college.CollegeName, job.Title)
	}
	s.emailService.SendApplicationConfirmation(college.Email, job.Title, companyName)
}

func (s *ApplicationServiceImpl) notifyStatusChanged(application *models.Application, job *models.JobPosting, status models.ApplicationStatus) {
	if application.College != nil {
		s.notificationRepo.CreateApplicationStatusNotification(application.College.UserID, job.Title, status)
	}
}

func buildApplicationResponse(app *models.Application, job *models.JobPosting, college *models.CollegeProfile) *dto.ApplicationResponse {
	resp := &dto.ApplicationResponse{
		ID:               app.ID,
		JobID:            app.JobID,
		CollegeProfileID: app.CollegeProfileID,
		Status:           app.Status,
		CoverLetter:      app.CoverLetter,
		ResumeURL:        app.ResumeURL,
		Skills:           app.GetSkills(),
		Feedback:         app.Feedback,
		IsWithdrawn:      app.IsWithdrawn,
		WithdrawnAt:      app.WithdrawnAt,
		WithdrawnReason:  app.WithdrawnReason,
		Tracking:         app.Tracking,
		AppliedAt:        app.AppliedAt,
	}
	if job != nil {
		resp.JobTitle = job.Title
		if job.Company != nil {
			resp.CompanyName = job.Company.CompanyName
		}
	}
	if college != nil {
		resp.CollegeName = college.CollegeName
	}
	return resp
}

func buildApplicationList(applications []models.Application) []dto.ApplicationResponse {
	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		app := &applications[i]
		responses = append(responses, *buildApplicationResponse(app, app.Job, app.College))
	}
	return responses
}
