package services

import (
	"testing"

	"grindup_backend/internal/models"
	"grindup_backend/internal/services/dto"
	"grindup_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvitationService(f *serviceFixture) InvitationService {
	return NewInvitationService(f.invitations, f.applications, f.jobs, f.profiles, f.notifications, newTestEmailService())
}

func assertAppErrorCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func TestSendInvitation(t *testing.T) {
	f := newServiceFixture()
	svc := newInvitationService(f)

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	college := f.addCollege("u-coll", "Stanford", models.ApprovalStatusApproved)
	job := f.addJob(company.ID, "Backend Intern", models.JobStatusActive, nil)

	resp, err := svc.SendInvitation("u-comp", &dto.SendInvitationRequest{
		CollegeProfileID: college.ID,
		JobID:            job.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusPending, resp.Status)
	assert.Equal(t, "Backend Intern", resp.JobTitle)
	assert.Equal(t, "Acme", resp.CompanyName)
	assert.Equal(t, "Stanford", resp.CollegeName)
}

func TestSendInvitationDuplicate(t *testing.T) {
	f := newServiceFixture()
	svc := newInvitationService(f)

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	college := f.addCollege("u-coll", "Stanford", models.ApprovalStatusApproved)
	job := f.addJob(company.ID, "Backend Intern", models.JobStatusActive, nil)

	req := &dto.SendInvitationRequest{CollegeProfileID: college.ID, JobID: job.ID}
	_, err := svc.SendInvitation("u-comp", req)
	require.NoError(t, err)

	_, err = svc.SendInvitation("u-comp", req)
	assertAppErrorCode(t, err, apperrors.CodeConflict)
}

func TestSendInvitationForeignJob(t *testing.T) {
	f := newServiceFixture()
	svc := newInvitationService(f)

	f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	other := f.addCompany("u-other", "Globex", models.ApprovalStatusApproved)
	college := f.addCollege("u-coll", "Stanford", models.ApprovalStatusApproved)
	job := f.addJob(other.ID, "Backend Intern", models.JobStatusActive, nil)

	_, err := svc.SendInvitation("u-comp", &dto.SendInvitationRequest{
		CollegeProfileID: college.ID,
		JobID:            job.ID,
	})
	assertAppErrorCode(t, err, apperrors.CodeForbidden)
}

func TestAcceptInvitation(t *testing.T) {
	f := newServiceFixture()
	svc := newInvitationService(f)

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	college := f.addCollege("u-coll", "Stanford", models.ApprovalStatusApproved)
	job := f.addJob(company.ID, "Backend Intern", models.JobStatusActive, nil)

	sent, err := svc.SendInvitation("u-comp", &dto.SendInvitationRequest{
		CollegeProfileID: college.ID,
		JobID:            job.ID,
	})
	require.NoError(t, err)

	resp, err := svc.AcceptInvitation("u-coll", sent.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusAccepted, resp.Invitation.Status)
	require.NotNil(t, resp.Application)
	assert.Equal(t, models.ApplicationStatusApplied, resp.Application.Status)
	assert.Equal(t, job.ID, resp.Application.JobID)
	assert.Contains(t, resp.Application.CoverLetter, "Acme")
	require.NotNil(t, resp.Application.Tracking.AppliedAt)

	// The derived application is visible through the application store.
	stored, err := f.applications.FindByJobAndCollege(job.ID, college.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApplied, stored.Status)
}

func TestAcceptInvitationTwice(t *testing.T) {
	f := newServiceFixture()
	svc := newInvitationService(f)

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	college := f.addCollege("u-coll", "Stanford", models.ApprovalStatusApproved)
	job := f.addJob(company.ID, "Backend Intern", models.JobStatusActive, nil)

	sent, err := svc.SendInvitation("u-comp", &dto.SendInvitationRequest{
		CollegeProfileID: college.ID,
		JobID:            job.ID,
	})
	require.NoError(t, err)

	_, err = svc.AcceptInvitation("u-coll", sent.ID)
	require.NoError(t, err)

	_, err = svc.AcceptInvitation("u-coll", sent.ID)
	assertAppErrorCode(t, err, apperrors.CodeConflict)
}

func TestAcceptInvitationAlreadyApplied(t *testing.T) {
	f := newServiceFixture()
	invSvc := newInvitationService(f)
	appSvc := NewApplicationService(f.applications, f.jobs, f.profiles, f.notifications, newTestEmailService())

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	college := f.addCollege("u-coll", "Stanford", models.ApprovalStatusApproved)
	job := f.addJob(company.ID, "Backend Intern", models.JobStatusActive, nil)

	sent, err := invSvc.SendInvitation("u-comp", &dto.SendInvitationRequest{
		CollegeProfileID: college.ID,
		JobID:            job.ID,
	})
	require.NoError(t, err)

	_, err = appSvc.ApplyDirectly("u-coll", job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = invSvc.AcceptInvitation("u-coll", sent.ID)
	assertAppErrorCode(t, err, apperrors.CodeConflict)

	// The invitation stays pending so the college can still decline it.
	inv, err := f.invitations.FindByID(sent.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusPending, inv.Status)

	_, err = invSvc.DeclineInvitation("u-coll", sent.ID)
	require.NoError(t, err)
}

func TestDeclineInvitation(t *testing.T) {
	f := newServiceFixture()
	svc := newInvitationService(f)

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	college := f.addCollege("u-coll", "Stanford", models.ApprovalStatusApproved)
	job := f.addJob(company.ID, "Backend Intern", models.JobStatusActive, nil)

	sent, err := svc.SendInvitation("u-comp", &dto.SendInvitationRequest{
		CollegeProfileID: college.ID,
		JobID:            job.ID,
	})
	require.NoError(t, err)

	resp, err := svc.DeclineInvitation("u-coll", sent.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusDeclined, resp.Status)

	// Declining never derives an application.
	apps, err := f.applications.ListByCollege(college.ID)
	require.NoError(t, err)
	assert.Empty(t, apps)

	// Terminal: a second response fails.
	_, err = svc.AcceptInvitation("u-coll", sent.ID)
	assertAppErrorCode(t, err, apperrors.CodeConflict)
}

// stalePendingInvitationRepo serves reads from a snapshot taken before a
// concurrent accept resolved the invitation, so the decline path sees a
// pending invitation that is no longer pending in the store.
type stalePendingInvitationRepo struct {
	*fakeInvitationRepo
}

func (r *stalePendingInvitationRepo) FindByID(id string) (*models.Invitation, error) {
	inv, err := r.fakeInvitationRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	inv.Status = models.InvitationStatusPending
	return inv, nil
}

func TestDeclineLosesRaceAgainstAccept(t *testing.T) {
	f := newServiceFixture()
	svc := newInvitationService(f)

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	college := f.addCollege("u-coll", "Stanford", models.ApprovalStatusApproved)
	job := f.addJob(company.ID, "Backend Intern", models.JobStatusActive, nil)

	sent, err := svc.SendInvitation("u-comp", &dto.SendInvitationRequest{
		CollegeProfileID: college.ID,
		JobID:            job.ID,
	})
	require.NoError(t, err)

	_, err = svc.AcceptInvitation("u-coll", sent.ID)
	require.NoError(t, err)

	// Replay a decline whose read happened before the accept landed.
	// The status-guarded update must refuse to overwrite the winner.
	staleSvc := NewInvitationService(
		&stalePendingInvitationRepo{f.invitations},
		f.applications, f.jobs, f.profiles, f.notifications, newTestEmailService(),
	)
	_, err = staleSvc.DeclineInvitation("u-coll", sent.ID)
	assertAppErrorCode(t, err, apperrors.CodeConflict)

	stored, err := f.invitations.FindByID(sent.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusAccepted, stored.Status)
}

func TestRespondToForeignInvitation(t *testing.T) {
	f := newServiceFixture()
	svc := newInvitationService(f)

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	college := f.addCollege("u-coll", "Stanford", models.ApprovalStatusApproved)
	f.addCollege("u-other", "MIT", models.ApprovalStatusApproved)
	job := f.addJob(company.ID, "Backend Intern", models.JobStatusActive, nil)

	sent, err := svc.SendInvitation("u-comp", &dto.SendInvitationRequest{
		CollegeProfileID: college.ID,
		JobID:            job.ID,
	})
	require.NoError(t, err)

	_, err = svc.AcceptInvitation("u-other", sent.ID)
	assertAppErrorCode(t, err, apperrors.CodeForbidden)
}

func TestDeleteInvitation(t *testing.T) {
	f := newServiceFixture()
	svc := newInvitationService(f)

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	college := f.addCollege("u-coll", "Stanford", models.ApprovalStatusApproved)
	f.addCompany("u-other", "Globex", models.ApprovalStatusApproved)
	job := f.addJob(company.ID, "Backend Intern", models.JobStatusActive, nil)

	sent, err := svc.SendInvitation("u-comp", &dto.SendInvitationRequest{
		CollegeProfileID: college.ID,
		JobID:            job.ID,
	})
	require.NoError(t, err)

	err = svc.DeleteInvitation("u-other", sent.ID)
	assertAppErrorCode(t, err, apperrors.CodeForbidden)

	require.NoError(t, svc.DeleteInvitation("u-comp", sent.ID))

	invitations, err := svc.ListSentInvitations("u-comp")
	require.NoError(t, err)
	assert.Empty(t, invitations)
}

func TestListInvitations(t *testing.T) {
	f := newServiceFixture()
	svc := newInvitationService(f)

	company := f.addCompany("u-comp", "Acme", models.ApprovalStatusApproved)
	college := f.addCollege("u-coll", "Stanford", models.ApprovalStatusApproved)
	job1 := f.addJob(company.ID, "Backend Intern", models.JobStatusActive, nil)
	job2 := f.addJob(company.ID, "Data Intern", models.JobStatusActive, nil)

	for _, jobID := range []string{job1.ID, job2.ID} {
		_, err := svc.SendInvitation("u-comp", &dto.SendInvitationRequest{
			CollegeProfileID: college.ID,
			JobID:            jobID,
		})
		require.NoError(t, err)
	}

	mine, err := svc.ListMyInvitations("u-coll")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	sent, err := svc.ListSentInvitations("u-comp")
	require.NoError(t, err)
	assert.Len(t, sent, 2)
}
