package services

import (
	"grindup_backend/internal/repositories"
	"grindup_backend/internal/services/dto"
	"grindup_backend/pkg/apperrors"
)

const topListLimit = 5

type AnalyticsService interface {
	Dashboard() (*dto.DashboardResponse, error)
}

type AnalyticsServiceImpl struct {
	analyticsRepo repositories.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repositories.AnalyticsRepository) AnalyticsService {
	return &AnalyticsServiceImpl{analyticsRepo: analyticsRepo}
}

// Dashboard assembles the admin rollup from live aggregate queries.
// Nothing is cached or persisted.
func (s *AnalyticsServiceImpl) Dashboard() (*dto.DashboardResponse, error) {
	colleges, err := s.analyticsRepo.CollegeCountsByApproval()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	companies, err := s.analyticsRepo.CompanyCountsByApproval()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	jobsByStatus, err := s.analyticsRepo.JobCountsByStatus()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	jobsByType, err := s.analyticsRepo.JobCountsByType()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	applications, err := s.analyticsRepo.ApplicationCountsByStatus()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	topCompanies, err := s.analyticsRepo.TopCompaniesByPostings(topListLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	topJobs, err := s.analyticsRepo.TopJobsByApplications(topListLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardResponse{
		Colleges:     colleges,
		Companies:    companies,
		JobsByStatus: jobsByStatus,
		JobsByType:   jobsByType,
		Applications: applications,
		TopCompanies: topCompanies,
		TopJobs:      topJobs,
	}, nil
}
