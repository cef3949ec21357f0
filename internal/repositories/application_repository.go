package repositories

import (
	"errors"
	"time"

	"freelance_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound   = errors.New("application not found")
	ErrApplicationExists     = errors.New("application already exists for this job and freelancer")
	ErrStaleApplicationState = errors.New("application status changed since it was read")
)

// StatusChange is the set of columns a lifecycle transition may write.
type StatusChange struct {
	Status     models.ApplicationStatus
	Feedback   *string
	ReviewedAt *time.Time
	// UpdatedAt is stamped on the row; zero means the current time.
	UpdatedAt time.Time
}

// StatusCount is one row of a GROUP BY status query.
type StatusCount struct {
	Status models.ApplicationStatus
	Count  int64
}

// JobCount is one row of a GROUP BY job_id query.
type JobCount struct {
	JobID string
	Count int64
}

type ApplicationRepository interface {
	CreateApplication(db *gorm.DB, app *models.Application) error
	FindApplicationByID(db *gorm.DB, id string) (*models.Application, error)
	FindApplicationByJobAndFreelancer(db *gorm.DB, jobID, freelancerID string) (*models.Application, error)

	FindApplicationsByJob(db *gorm.DB, jobID string) ([]models.Application, error)
	FindApplicationsByJobs(db *gorm.DB, jobIDs []string) ([]models.Application, error)
	FindApplicationsByFreelancer(db *gorm.DB, freelancerID string, status *models.ApplicationStatus) ([]models.Application, error)
	FindApplicationsByClientJobs(db *gorm.DB, clientID string) ([]models.Application, error)
	FindOpenApplicationsByJob(db *gorm.DB, jobID, exceptID string) ([]models.Application, error)

	// UpdateApplicationStatus applies change only if the stored status still equals expected.
	UpdateApplicationStatus(db *gorm.DB, id string, expected models.ApplicationStatus, change StatusChange) error

	CountApplicationsByJob(db *gorm.DB, jobID string, excluded ...models.ApplicationStatus) (int64, error)
	CountApplicationsByJobs(db *gorm.DB, jobIDs []string, excluded ...models.ApplicationStatus) ([]JobCount, error)
	CountApplicationsByStatusForClient(db *gorm.DB, clientID string) ([]StatusCount, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) CreateApplication(db *gorm.DB, app *models.Application) error {
	if _, err := r.FindApplicationByJobAndFreelancer(db, app.JobID, app.FreelancerID); err == nil {
		return ErrApplicationExists
	} else if !errors.Is(err, ErrApplicationNotFound) {
		return err
	}

	// The unique index still guards against a concurrent insert slipping past the check.
	if err := db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrApplicationExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindApplicationByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	err := db.Preload("Job").Preload("Freelancer").Where("id = ?", id).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindApplicationByJobAndFreelancer(db *gorm.DB, jobID, freelancerID string) (*models.Application, error) {
	var app models.Application
	err := db.Where("job_id = ? AND freelancer_id = ?", jobID, freelancerID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindApplicationsByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Freelancer").
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindApplicationsByJobs(db *gorm.DB, jobIDs []string) ([]models.Application, error) {
	var apps []models.Application
	if len(jobIDs) == 0 {
		return apps, nil
	}
	err := db.Preload("Freelancer").
		Where("job_id IN ?", jobIDs).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindApplicationsByFreelancer(db *gorm.DB, freelancerID string, status *models.ApplicationStatus) ([]models.Application, error) {
	var apps []models.Application
	query := db.Preload("Job").Where("freelancer_id = ?", freelancerID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("applied_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindApplicationsByClientJobs(db *gorm.DB, clientID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job").Preload("Freelancer").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.client_id = ?", clientID).
		Order("applications.applied_at DESC").
		Find(&apps).Error
	return apps, err
}

// FindOpenApplicationsByJob returns applications of a job still awaiting a decision.
func (r *ApplicationRepositoryImpl) FindOpenApplicationsByJob(db *gorm.DB, jobID, exceptID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Where("job_id = ? AND id <> ? AND status IN ?", jobID, exceptID, []models.ApplicationStatus{
		models.ApplicationStatusPending,
		models.ApplicationStatusShortlisted,
	}).Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateApplicationStatus(db *gorm.DB, id string, expected models.ApplicationStatus, change StatusChange) error {
	updatedAt := change.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	updates := map[string]interface{}{
		"status":     change.Status,
		"updated_at": updatedAt,
	}
	if change.Feedback != nil {
		updates["client_feedback"] = *change.Feedback
	}
	if change.ReviewedAt != nil {
		updates["reviewed_at"] = *change.ReviewedAt
	}

	result := db.Model(&models.Application{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Application{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrApplicationNotFound
		}
		return ErrStaleApplicationState
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountApplicationsByJob(db *gorm.DB, jobID string, excluded ...models.ApplicationStatus) (int64, error) {
	var count int64
	query := db.Model(&models.Application{}).Where("job_id = ?", jobID)
	if len(excluded) > 0 {
		query = query.Where("status NOT IN ?", excluded)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountApplicationsByJobs(db *gorm.DB, jobIDs []string, excluded ...models.ApplicationStatus) ([]JobCount, error) {
	var counts []JobCount
	if len(jobIDs) == 0 {
		return counts, nil
	}
	query := db.Model(&models.Application{}).
		Select("job_id, COUNT(*) AS count").
		Where("job_id IN ?", jobIDs)
	if len(excluded) > 0 {
		query = query.Where("status NOT IN ?", excluded)
	}
	err := query.Group("job_id").Scan(&counts).Error
	return counts, err
}

func (r *ApplicationRepositoryImpl) CountApplicationsByStatusForClient(db *gorm.DB, clientID string) ([]StatusCount, error) {
	var counts []StatusCount
	err := db.Model(&models.Application{}).
		Select("applications.status AS status, COUNT(*) AS count").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.client_id = ?", clientID).
		Group("applications.status").
		Scan(&counts).Error
	return counts, err
}
