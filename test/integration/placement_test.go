package integration_test

import (
	"sync"
	"testing"
	"time"

	"grindup_backend/internal/models"
	"grindup_backend/internal/repositories"
	"grindup_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The unique indexes on applications and invitations are enforced by
// Postgres, not by application code, so they only get real coverage
// against a live database.

func TestApplicationUniqueIndex(t *testing.T) {
	db := helpers.OpenTestDB(t)
	helpers.ClearTables(t, db)

	company := helpers.CreateCompany(t, db)
	college := helpers.CreateCollege(t, db)
	job := helpers.CreateJob(t, db, company.ID)

	repo := repositories.NewApplicationRepository(db)
	now := time.Now()

	first := &models.Application{
		JobID:            job.ID,
		CollegeProfileID: college.ID,
		Status:           models.ApplicationStatusApplied,
		AppliedAt:        now,
		Tracking:         models.ProcessTracking{AppliedAt: &now},
	}
	require.NoError(t, repo.Create(first))

	dup := &models.Application{
		JobID:            job.ID,
		CollegeProfileID: college.ID,
		Status:           models.ApplicationStatusApplied,
		AppliedAt:        now,
		Tracking:         models.ProcessTracking{AppliedAt: &now},
	}
	assert.ErrorIs(t, repo.Create(dup), repositories.ErrApplicationAlreadyExists)
}

func TestInvitationUniqueIndex(t *testing.T) {
	db := helpers.OpenTestDB(t)
	helpers.ClearTables(t, db)

	company := helpers.CreateCompany(t, db)
	college := helpers.CreateCollege(t, db)
	job := helpers.CreateJob(t, db, company.ID)

	repo := repositories.NewInvitationRepository(db)

	first := &models.Invitation{
		JobID:            job.ID,
		CompanyProfileID: company.ID,
		CollegeProfileID: college.ID,
		Status:           models.InvitationStatusPending,
		InvitedAt:        time.Now(),
	}
	require.NoError(t, repo.Create(first))

	dup := &models.Invitation{
		JobID:            job.ID,
		CompanyProfileID: company.ID,
		CollegeProfileID: college.ID,
		Status:           models.InvitationStatusPending,
		InvitedAt:        time.Now(),
	}
	assert.ErrorIs(t, repo.Create(dup), repositories.ErrInvitationAlreadyExists)
}

func TestAcceptThenDeclineGuard(t *testing.T) {
	db := helpers.OpenTestDB(t)
	helpers.ClearTables(t, db)

	company := helpers.CreateCompany(t, db)
	college := helpers.CreateCollege(t, db)
	job := helpers.CreateJob(t, db, company.ID)

	invRepo := repositories.NewInvitationRepository(db)
	appRepo := repositories.NewApplicationRepository(db)

	invitation := &models.Invitation{
		JobID:            job.ID,
		CompanyProfileID: company.ID,
		CollegeProfileID: college.ID,
		Status:           models.InvitationStatusPending,
		InvitedAt:        time.Now(),
	}
	require.NoError(t, invRepo.Create(invitation))

	now := time.Now()
	derived := &models.Application{
		JobID:            job.ID,
		CollegeProfileID: college.ID,
		Status:           models.ApplicationStatusApplied,
		AppliedAt:        now,
		Tracking:         models.ProcessTracking{AppliedAt: &now},
	}
	require.NoError(t, invRepo.AcceptWithApplication(invitation.ID, derived))

	// A decline that raced the accept must not overwrite it.
	err := invRepo.UpdateStatusIfPending(invitation.ID, models.InvitationStatusDeclined)
	assert.ErrorIs(t, err, repositories.ErrInvitationNotFound)

	stored, err := invRepo.FindByID(invitation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusAccepted, stored.Status)

	// The derived application survived.
	_, err = appRepo.FindByJobAndCollege(job.ID, college.ID)
	assert.NoError(t, err)
}

func TestDeclineThenAcceptRollsBackApplication(t *testing.T) {
	db := helpers.OpenTestDB(t)
	helpers.ClearTables(t, db)

	company := helpers.CreateCompany(t, db)
	college := helpers.CreateCollege(t, db)
	job := helpers.CreateJob(t, db, company.ID)

	invRepo := repositories.NewInvitationRepository(db)
	appRepo := repositories.NewApplicationRepository(db)

	invitation := &models.Invitation{
		JobID:            job.ID,
		CompanyProfileID: company.ID,
		CollegeProfileID: college.ID,
		Status:           models.InvitationStatusPending,
		InvitedAt:        time.Now(),
	}
	require.NoError(t, invRepo.Create(invitation))
	require.NoError(t, invRepo.UpdateStatusIfPending(invitation.ID, models.InvitationStatusDeclined))

	now := time.Now()
	derived := &models.Application{
		JobID:            job.ID,
		CollegeProfileID: college.ID,
		Status:           models.ApplicationStatusApplied,
		AppliedAt:        now,
		Tracking:         models.ProcessTracking{AppliedAt: &now},
	}
	err := invRepo.AcceptWithApplication(invitation.ID, derived)
	assert.ErrorIs(t, err, repositories.ErrInvitationNotFound)

	// The transaction rolled the application back with the failed flip.
	_, err = appRepo.FindByJobAndCollege(job.ID, college.ID)
	assert.ErrorIs(t, err, repositories.ErrApplicationNotFound)
}

func TestConcurrentResponsesSingleWinner(t *testing.T) {
	db := helpers.OpenTestDB(t)
	helpers.ClearTables(t, db)

	company := helpers.CreateCompany(t, db)
	college := helpers.CreateCollege(t, db)
	job := helpers.CreateJob(t, db, company.ID)

	invRepo := repositories.NewInvitationRepository(db)

	invitation := &models.Invitation{
		JobID:            job.ID,
		CompanyProfileID: company.ID,
		CollegeProfileID: college.ID,
		Status:           models.InvitationStatusPending,
		InvitedAt:        time.Now(),
	}
	require.NoError(t, invRepo.Create(invitation))

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		now := time.Now()
		errs[0] = invRepo.AcceptWithApplication(invitation.ID, &models.Application{
			JobID:            job.ID,
			CollegeProfileID: college.ID,
			Status:           models.ApplicationStatusApplied,
			AppliedAt:        now,
			Tracking:         models.ProcessTracking{AppliedAt: &now},
		})
	}()
	go func() {
		defer wg.Done()
		errs[1] = invRepo.UpdateStatusIfPending(invitation.ID, models.InvitationStatusDeclined)
	}()
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, repositories.ErrInvitationNotFound)
		}
	}
	assert.Equal(t, 1, wins, "exactly one response must resolve the invitation")

	stored, err := invRepo.FindByID(invitation.ID)
	require.NoError(t, err)
	assert.NotEqual(t, models.InvitationStatusPending, stored.Status)
}
