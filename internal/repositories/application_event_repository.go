package repositories

import (
	"freelance_backend/internal/models"

	"gorm.io/gorm"
)

// ApplicationEventRepository stores the append-only audit trail of status changes.
type ApplicationEventRepository interface {
	CreateEvent(db *gorm.DB, event *models.ApplicationEvent) error
	FindEventsByApplication(db *gorm.DB, applicationID string) ([]models.ApplicationEvent, error)
}

type ApplicationEventRepositoryImpl struct{}

func NewApplicationEventRepository() ApplicationEventRepository {
	return &ApplicationEventRepositoryImpl{}
}

func (r *ApplicationEventRepositoryImpl) CreateEvent(db *gorm.DB, event *models.ApplicationEvent) error {
	return db.Create(event).Error
}

func (r *ApplicationEventRepositoryImpl) FindEventsByApplication(db *gorm.DB, applicationID string) ([]models.ApplicationEvent, error) {
	var events []models.ApplicationEvent
	err := db.Where("application_id = ?", applicationID).
		Order("created_at ASC, id ASC").
		Find(&events).Error
	return events, err
}
