package services

import (
	"testing"
	"time"

	"grindup_backend/internal/models"
	"grindup_backend/internal/repositories"
	"grindup_backend/internal/services/dto"
	"grindup_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobService(f *serviceFixture) JobService {
	return NewJobService(f.jobs, f.profiles)
}

func TestCreateJob(t *testing.T) {
	f := newServiceFixture()
	svc := newJobService(f)
	f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)

	deadline := time.Now().Add(30 * 24 * time.Hour)
	job, err := svc.CreateJob("u-comp", &dto.CreateJobRequest{
		Title:               "Backend Intern",
		JobType:             "internship",
		SalaryMin:           1000,
		SalaryMax:           2000,
		ApplicationDeadline: &deadline,
		SkillsRequired:      []string{"go"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusActive, job.Status)
	assert.Equal(t, 1, job.Vacancies)
	assert.True(t, job.IsOpen)
	assert.Equal(t, []string{"go"}, job.SkillsRequired)
}

func TestCreateJobRequiresApproval(t *testing.T) {
	f := newServiceFixture()
	svc := newJobService(f)

	f.addCompany("u-pending", "Pending Inc", models.ApprovalStatusPending)
	f.addCompany("u-rejected", "Rejected Inc", models.ApprovalStatusRejected)

	for _, userID := range []string{"u-pending", "u-rejected"} {
		_, err := svc.CreateJob(userID, &dto.CreateJobRequest{Title: "Backend Intern"})
		assertAppErrorCode(t, err, apperrors.CodeForbidden)
	}
}

func TestUpdateJobOwnership(t *testing.T) {
	f := newServiceFixture()
	svc := newJobService(f)

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	f.addCompany("u-other", "Globex", models.ApprovalStatusApproved)
	job := f.addJob(company.ID, "Backend Intern", models.JobStatusActive, nil)

	title := "Senior Backend Intern"
	_, err := svc.UpdateJob("u-other", job.ID, &dto.UpdateJobRequest{Title: &title})
	assertAppErrorCode(t, err, apperrors.CodeForbidden)

	updated, err := svc.UpdateJob("u-comp", job.ID, &dto.UpdateJobRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Intern", updated.Title)
}

func TestCloseJob(t *testing.T) {
	f := newServiceFixture()
	svc := newJobService(f)

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	job := f.addJob(company.ID, "Backend Intern", models.JobStatusActive, nil)

	closed, err := svc.CloseJob("u-comp", job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, closed.Status)
	assert.False(t, closed.IsOpen)

	// Closing an already-closed posting succeeds.
	_, err = svc.CloseJob("u-comp", job.ID)
	assert.NoError(t, err)
}

func TestClosedJobBlocksApplicationsButNotPipeline(t *testing.T) {
	f := newServiceFixture()
	jobSvc := newJobService(f)
	appSvc := newApplicationService(f)

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	f.addCollege("u-coll", "Stanford", models.ApprovalStatusApproved)
	f.addCollege("u-coll2", "MIT", models.ApprovalStatusApproved)
	job := f.addJob(company.ID, "Backend Intern", models.JobStatusActive, nil)

	applied, err := appSvc.ApplyDirectly("u-coll", job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = jobSvc.CloseJob("u-comp", job.ID)
	require.NoError(t, err)

	_, err = appSvc.ApplyDirectly("u-coll2", job.ID, &dto.ApplyRequest{})
	assertAppErrorCode(t, err, apperrors.CodeInvalidStatus)

	// Existing applications keep moving after close.
	_, err = appSvc.UpdateStatus("u-comp", applied.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusShortlisted,
	})
	assert.NoError(t, err)
}

func TestDeadlineAutoClose(t *testing.T) {
	f := newServiceFixture()

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	expired := f.addJob(company.ID, "Expired", models.JobStatusActive, &past)
	open := f.addJob(company.ID, "Open", models.JobStatusActive, &future)

	closed, err := f.jobs.CloseExpired(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), closed)

	j, err := f.jobs.FindByID(expired.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, j.Status)

	j, err = f.jobs.FindByID(open.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusActive, j.Status)
}

func TestSearchJobsByStatus(t *testing.T) {
	f := newServiceFixture()
	svc := newJobService(f)

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	f.addJob(company.ID, "Active role", models.JobStatusActive, nil)
	f.addJob(company.ID, "Draft role", models.JobStatusDraft, nil)

	jobs, total, err := svc.SearchJobs(repositories.JobSearchCriteria{Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Active role", jobs[0].Title)
}
