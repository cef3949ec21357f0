package services_test

import (
	"errors"
	"testing"

	"freelance_backend/database"
	"freelance_backend/internal/models"
	"freelance_backend/internal/repositories"
	"freelance_backend/internal/services"
	"freelance_backend/internal/testutil"
	"freelance_backend/pkg/apperrors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newStats(countWithdrawn bool) services.ApplicationStatsService {
	return services.NewApplicationStatsService(
		repositories.NewApplicationRepository(),
		repositories.NewJobRepository(),
		countWithdrawn,
	)
}

func TestCountForJobPolicy(t *testing.T) {
	tests := []struct {
		name           string
		countWithdrawn bool
		afterWithdraw  int64
	}{
		{"withdrawn excluded", false, 0},
		{"withdrawn included", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, services.ApplicationServiceOptions{})
			stats := newStats(tt.countWithdrawn)

			count, err := stats.CountForJob(f.db, f.job.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(0), count.Count)
			assert.Equal(t, tt.countWithdrawn, count.IncludesWithdrawn)

			app := f.submit(t, f.freelancer)
			count, err = stats.CountForJob(f.db, f.job.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(1), count.Count)

			_, err = f.svc.Withdraw(f.db, testutil.CallerOf(f.freelancer), app.ID)
			require.NoError(t, err)
			count, err = stats.CountForJob(f.db, f.job.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.afterWithdraw, count.Count)
		})
	}
}

func TestCountForUnknownJob(t *testing.T) {
	f := newFixture(t, services.ApplicationServiceOptions{})
	_, err := newStats(false).CountForJob(f.db, "missing")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestGroupByJob(t *testing.T) {
	f := newFixture(t, services.ApplicationServiceOptions{})
	stats := newStats(false)
	empty := testutil.CreateJob(t, f.db, f.client.ID, "Nobody applied", models.JobStatusOpen)

	second := testutil.CreateUser(t, f.db, "second", models.UserRoleFreelancer)
	a := f.submit(t, f.freelancer)
	f.submit(t, second)
	_, err := f.svc.Shortlist(f.db, testutil.CallerOf(f.client), a.ID)
	require.NoError(t, err)

	grouped, err := stats.GroupByJob(f.db, testutil.CallerOf(f.client), "")
	require.NoError(t, err)
	assert.Equal(t, f.client.ID, grouped.ClientID)
	require.Len(t, grouped.Jobs, 2)

	byJob := map[string]int{}
	for i, g := range grouped.Jobs {
		byJob[g.Job.ID] = i
	}

	primary := grouped.Jobs[byJob[f.job.ID]]
	assert.Len(t, primary.Applications, 2)
	assert.Equal(t, int64(1), primary.Counts[models.ApplicationStatusShortlisted])
	assert.Equal(t, int64(1), primary.Counts[models.ApplicationStatusPending])
	for _, item := range primary.Applications {
		assert.Equal(t, f.job.Title, item.JobTitle)
	}

	assert.Equal(t, int64(2), primary.Total)

	assert.Empty(t, grouped.Jobs[byJob[empty.ID]].Applications)
	assert.Equal(t, int64(0), grouped.Jobs[byJob[empty.ID]].Total)
}

func TestGroupByJobTotalsFollowWithdrawnPolicy(t *testing.T) {
	f := newFixture(t, services.ApplicationServiceOptions{})
	second := testutil.CreateUser(t, f.db, "second", models.UserRoleFreelancer)
	f.submit(t, f.freelancer)
	w := f.submit(t, second)
	_, err := f.svc.Withdraw(f.db, testutil.CallerOf(second), w.ID)
	require.NoError(t, err)

	grouped, err := newStats(false).GroupByJob(f.db, testutil.CallerOf(f.client), "")
	require.NoError(t, err)
	require.Len(t, grouped.Jobs, 1)
	assert.Equal(t, int64(1), grouped.Jobs[0].Total)
	assert.Len(t, grouped.Jobs[0].Applications, 2)
	assert.Equal(t, int64(1), grouped.Jobs[0].Counts[models.ApplicationStatusWithdrawn])

	grouped, err = newStats(true).GroupByJob(f.db, testutil.CallerOf(f.client), "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), grouped.Jobs[0].Total)
}

func TestGroupByJobAccess(t *testing.T) {
	f := newFixture(t, services.ApplicationServiceOptions{})
	stats := newStats(false)
	other := testutil.CreateUser(t, f.db, "other", models.UserRoleClient)

	_, err := stats.GroupByJob(f.db, testutil.CallerOf(other), f.client.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = stats.GroupByJob(f.db, testutil.CallerOf(f.freelancer), "")
	assert.ErrorIs(t, err, apperrors.ErrRoleViolation)

	grouped, err := stats.GroupByJob(f.db, testutil.CallerOf(f.admin), f.client.ID)
	require.NoError(t, err)
	assert.Len(t, grouped.Jobs, 1)

	_, err = stats.GroupByJob(f.db, testutil.CallerOf(f.admin), "")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationFailed))
}

func TestClientStats(t *testing.T) {
	f := newFixture(t, services.ApplicationServiceOptions{})
	testutil.CreateJob(t, f.db, f.client.ID, "Second job", models.JobStatusOpen)

	second := testutil.CreateUser(t, f.db, "second", models.UserRoleFreelancer)
	third := testutil.CreateUser(t, f.db, "third", models.UserRoleFreelancer)
	f.submit(t, f.freelancer)
	f.submit(t, second)
	w := f.submit(t, third)
	_, err := f.svc.Withdraw(f.db, testutil.CallerOf(third), w.ID)
	require.NoError(t, err)

	got, err := newStats(false).ClientStats(f.db, testutil.CallerOf(f.client), "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.TotalJobs)
	assert.Equal(t, int64(2), got.TotalApplications)
	assert.Equal(t, int64(2), got.ByStatus[models.ApplicationStatusPending])
	assert.Equal(t, int64(1), got.ByStatus[models.ApplicationStatusWithdrawn])
	assert.InDelta(t, 1.0, got.AvgApplicationsPerJob, 0.0001)

	got, err = newStats(true).ClientStats(f.db, testutil.CallerOf(f.client), "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.TotalApplications)
	assert.InDelta(t, 1.5, got.AvgApplicationsPerJob, 0.0001)

	_, err = newStats(false).ClientStats(f.db, testutil.CallerOf(f.freelancer), "")
	assert.ErrorIs(t, err, apperrors.ErrRoleViolation)
}

func TestClientStatsForAdmin(t *testing.T) {
	f := newFixture(t, services.ApplicationServiceOptions{})
	f.submit(t, f.freelancer)
	stats := newStats(false)

	got, err := stats.ClientStats(f.db, testutil.CallerOf(f.admin), f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, f.client.ID, got.ClientID)
	assert.Equal(t, int64(1), got.TotalJobs)
	assert.Equal(t, int64(1), got.TotalApplications)

	_, err = stats.ClientStats(f.db, testutil.CallerOf(f.admin), "")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationFailed))

	other := testutil.CreateUser(t, f.db, "other", models.UserRoleClient)
	_, err = stats.ClientStats(f.db, testutil.CallerOf(other), f.client.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestStoreOutageIsInfrastructureError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), database.GormConfig(gormlogger.Silent))
	require.NoError(t, err)

	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))

	_, err = newStats(false).CountForJob(db, "job-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsInfrastructure(err))
	assert.False(t, apperrors.IsBusiness(err))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeStoreUnavailable))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngineStoreOutage(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), database.GormConfig(gormlogger.Silent))
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(".*").WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	svc := services.NewApplicationService(
		repositories.NewApplicationRepository(),
		repositories.NewJobRepository(),
		repositories.NewUserRepository(),
		repositories.NewApplicationEventRepository(),
		services.ApplicationServiceOptions{},
	)
	_, err = svc.Shortlist(db, testutil.CallerOf(&models.User{BaseModel: models.BaseModel{ID: "c1"}, Role: models.UserRoleClient}), "app-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsInfrastructure(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
