package repositories

import (
	"errors"

	"freelance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobRepository is a read-only view of the job directory.
type JobRepository interface {
	FindJobByID(db *gorm.DB, id string) (*models.Job, error)
	FindJobsByClient(db *gorm.DB, clientID string) ([]models.Job, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) FindJobByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindJobsByClient(db *gorm.DB, clientID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("client_id = ?", clientID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}
