package repositories_test

import (
	"testing"
	"time"

	"freelance_backend/internal/models"
	"freelance_backend/internal/repositories"
	"freelance_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedApplication(t *testing.T, db *gorm.DB) (*models.Job, *models.Application) {
	t.Helper()
	client := testutil.CreateUser(t, db, "client", models.UserRoleClient)
	freelancer := testutil.CreateUser(t, db, "freelancer", models.UserRoleFreelancer)
	job := testutil.CreateJob(t, db, client.ID, "Logo design", models.JobStatusOpen)

	app := &models.Application{
		JobID:        job.ID,
		FreelancerID: freelancer.ID,
		Status:       models.ApplicationStatusPending,
		CoverLetter:  "hello",
		ProposedRate: 30,
		AppliedAt:    time.Now().UTC(),
	}
	require.NoError(t, repositories.NewApplicationRepository().CreateApplication(db, app))
	return job, app
}

func TestCreateApplicationRejectsDuplicatePair(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewApplicationRepository()
	_, app := seedApplication(t, db)

	dup := &models.Application{
		JobID:        app.JobID,
		FreelancerID: app.FreelancerID,
		Status:       models.ApplicationStatusPending,
		CoverLetter:  "again",
		ProposedRate: 10,
		AppliedAt:    time.Now().UTC(),
	}
	assert.ErrorIs(t, repo.CreateApplication(db, dup), repositories.ErrApplicationExists)

	found, err := repo.FindApplicationByJobAndFreelancer(db, app.JobID, app.FreelancerID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, found.ID)

	_, err = repo.FindApplicationByJobAndFreelancer(db, app.JobID, "nobody")
	assert.ErrorIs(t, err, repositories.ErrApplicationNotFound)
}

func TestUniqueIndexBacksDuplicateCheck(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, app := seedApplication(t, db)

	// bypass the repository pre-check
	dup := models.Application{
		JobID:        app.JobID,
		FreelancerID: app.FreelancerID,
		Status:       models.ApplicationStatusPending,
		CoverLetter:  "again",
		ProposedRate: 10,
		AppliedAt:    time.Now().UTC(),
	}
	assert.Error(t, db.Create(&dup).Error)
}

func TestUpdateApplicationStatusCompareAndSwap(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewApplicationRepository()
	_, app := seedApplication(t, db)

	feedback := "Welcome"
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	err := repo.UpdateApplicationStatus(db, app.ID, models.ApplicationStatusPending, repositories.StatusChange{
		Status:     models.ApplicationStatusAccepted,
		Feedback:   &feedback,
		ReviewedAt: &now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)

	stored, err := repo.FindApplicationByID(db, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, stored.Status)
	assert.True(t, stored.UpdatedAt.Equal(now), "updated_at %v", stored.UpdatedAt)
	require.NotNil(t, stored.ClientFeedback)
	assert.Equal(t, "Welcome", *stored.ClientFeedback)
	assert.NotNil(t, stored.ReviewedAt)
	assert.NotNil(t, stored.Job)

	// A writer still holding the old status loses.
	err = repo.UpdateApplicationStatus(db, app.ID, models.ApplicationStatusPending, repositories.StatusChange{
		Status: models.ApplicationStatusRejected,
	})
	assert.ErrorIs(t, err, repositories.ErrStaleApplicationState)

	stored, err = repo.FindApplicationByID(db, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, stored.Status)
}

func TestUpdateApplicationStatusMissingRow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewApplicationRepository()

	err := repo.UpdateApplicationStatus(db, "missing", models.ApplicationStatusPending, repositories.StatusChange{
		Status: models.ApplicationStatusShortlisted,
	})
	assert.ErrorIs(t, err, repositories.ErrApplicationNotFound)
}

func TestCountsAndClientListing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewApplicationRepository()
	job, app := seedApplication(t, db)

	other := testutil.CreateUser(t, db, "other", models.UserRoleFreelancer)
	withdrawn := &models.Application{
		JobID:        job.ID,
		FreelancerID: other.ID,
		Status:       models.ApplicationStatusWithdrawn,
		CoverLetter:  "changed my mind",
		ProposedRate: 20,
		AppliedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.CreateApplication(db, withdrawn))

	all, err := repo.CountApplicationsByJob(db, job.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all)

	active, err := repo.CountApplicationsByJob(db, job.ID, models.ApplicationStatusWithdrawn)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	perJob, err := repo.CountApplicationsByJobs(db, []string{job.ID}, models.ApplicationStatusWithdrawn)
	require.NoError(t, err)
	require.Len(t, perJob, 1)
	assert.Equal(t, int64(1), perJob[0].Count)

	byStatus, err := repo.CountApplicationsByStatusForClient(db, job.ClientID)
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	listed, err := repo.FindApplicationsByClientJobs(db, job.ClientID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	open, err := repo.FindOpenApplicationsByJob(db, job.ID, "")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, app.ID, open[0].ID)

	status := models.ApplicationStatusWithdrawn
	mine, err := repo.FindApplicationsByFreelancer(db, other.ID, &status)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestJobAndUserLookups(t *testing.T) {
	db := testutil.NewTestDB(t)
	client := testutil.CreateUser(t, db, "client", models.UserRoleClient)
	job := testutil.CreateJob(t, db, client.ID, "Translate", models.JobStatusClosed)

	jobs := repositories.NewJobRepository()
	found, err := jobs.FindJobByID(db, job.ID)
	require.NoError(t, err)
	assert.False(t, found.IsOpen())

	_, err = jobs.FindJobByID(db, "missing")
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)

	owned, err := jobs.FindJobsByClient(db, client.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	users := repositories.NewUserRepository()
	u, err := users.FindUserByID(db, client.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleClient, u.Role)

	_, err = users.FindUserByID(db, "missing")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}
