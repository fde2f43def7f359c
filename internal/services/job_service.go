package services

import (
	"time"

	"grindup_backend/internal/models"
	"grindup_backend/internal/repositories"
	"grindup_backend/internal/services/dto"
	"grindup_backend/pkg/apperrors"
)

type JobService interface {
	CreateJob(companyUserID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	UpdateJob(companyUserID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	CloseJob(companyUserID, jobID string) (*dto.JobResponse, error)
	DeleteJob(companyUserID, jobID string) error
	GetJob(jobID string) (*dto.JobResponse, error)
	ListMyJobs(companyUserID string) ([]dto.JobResponse, error)
	SearchJobs(criteria repositories.JobSearchCriteria) ([]dto.JobResponse, int64, error)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
}

func NewJobService(jobRepo repositories.JobRepository, profileRepo repositories.ProfileRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, profileRepo: profileRepo}
}

// CreateJob publishes a posting for an approved company. Pending and
// rejected companies cannot post.
func (s *JobServiceImpl) CreateJob(companyUserID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	company, err := s.resolveCompany(companyUserID)
	if err != nil {
		return nil, err
	}
	if company.ApprovalStatus != models.ApprovalStatusApproved {
		return nil, apperrors.ErrCompanyNotApproved
	}

	status := models.JobStatusActive
	if req.Status != "" {
		status = models.JobStatus(req.Status)
	}
	vacancies := req.Vacancies
	if vacancies < 1 {
		vacancies = 1
	}

	job := &models.JobPosting{
		CompanyProfileID:    company.ID,
		Title:               req.Title,
		Description:         req.Description,
		JobType:             req.JobType,
		Location:            req.Location,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		Vacancies:           vacancies,
		ApplicationDeadline: req.ApplicationDeadline,
		Status:              status,
		IsActive:            true,
	}
	if len(req.SkillsRequired) > 0 {
		job.SetSkillsRequired(req.SkillsRequired)
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	job.Company = company
	return buildJobResponse(job), nil
}

func (s *JobServiceImpl) UpdateJob(companyUserID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.resolveOwnedJob(companyUserID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.SalaryMin != nil {
		job.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = *req.SalaryMax
	}
	if req.Vacancies != nil {
		job.Vacancies = *req.Vacancies
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.SkillsRequired != nil {
		job.SetSkillsRequired(req.SkillsRequired)
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobResponse(job), nil
}

// CloseJob stops a posting from accepting applications. Already-closed
// postings close again without error; existing applications keep moving
// through the pipeline.
func (s *JobServiceImpl) CloseJob(companyUserID, jobID string) (*dto.JobResponse, error) {
	job, err := s.resolveOwnedJob(companyUserID, jobID)
	if err != nil {
		return nil, err
	}

	job.Status = models.JobStatusClosed
	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobResponse(job), nil
}

func (s *JobServiceImpl) DeleteJob(companyUserID, jobID string) error {
	job, err := s.resolveOwnedJob(companyUserID, jobID)
	if err != nil {
		return err
	}
	if err := s.jobRepo.Delete(job.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) GetJob(jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job posting not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildJobResponse(job), nil
}

func (s *JobServiceImpl) ListMyJobs(companyUserID string) ([]dto.JobResponse, error) {
	company, err := s.resolveCompany(companyUserID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobRepo.ListByCompany(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobList(jobs), nil
}

func (s *JobServiceImpl) SearchJobs(criteria repositories.JobSearchCriteria) ([]dto.JobResponse, int64, error) {
	jobs, total, err := s.jobRepo.Search(criteria)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return buildJobList(jobs), total, nil
}

// Helper Methods

func (s *JobServiceImpl) resolveCompany(companyUserID string) (*models.CompanyProfile, error) {
	company, err := s.profileRepo.FindCompanyProfileByUserID(companyUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *JobServiceImpl) resolveOwnedJob(companyUserID, jobID string) (*models.JobPosting, error) {
	company, err := s.resolveCompany(companyUserID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job posting not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.CompanyProfileID != company.ID {
		return nil, apperrors.NewForbiddenError("Job posting belongs to another company")
	}
	return job, nil
}

func buildJobResponse(job *models.JobPosting) *dto.JobResponse {
	resp := &dto.JobResponse{
		ID:                  job.ID,
		CompanyProfileID:    job.CompanyProfileID,
		Title:               job.Title,
		Description:         job.Description,
		JobType:             job.JobType,
		Location:            job.Location,
		SalaryMin:           job.SalaryMin,
		SalaryMax:           job.SalaryMax,
		Vacancies:           job.Vacancies,
		ApplicationDeadline: job.ApplicationDeadline,
		SkillsRequired:      job.GetSkillsRequired(),
		Status:              job.Status,
		IsActive:            job.IsActive,
		IsOpen:              job.IsOpenForApplications(time.Now()),
		Stats:               &job.Stats,
		CreatedAt:           job.CreatedAt,
	}
	if job.Company != nil {
		resp.CompanyName = job.Company.CompanyName
	}
	return resp
}

func buildJobList(jobs []models.JobPosting) []dto.JobResponse {
	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, *buildJobResponse(&jobs[i]))
	}
	return responses
}
