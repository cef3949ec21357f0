package models

import (
	"time"

	"gorm.io/datatypes"
)

// Application is a freelancer's proposal against a job.
// Content fields are written once on submit and never updated.
type Application struct {
	BaseModel
	JobID        string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_application_job_freelancer" json:"job_id"`
	FreelancerID string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_application_job_freelancer;index" json:"freelancer_id"`
	Status       ApplicationStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`

	CoverLetter           string                     `gorm:"type:text;not null" json:"cover_letter"`
	ProposedRate          float64                    `gorm:"not null" json:"proposed_rate"`
	EstimatedDeliveryDays *int                       `json:"estimated_delivery_days,omitempty"`
	PortfolioLinks        datatypes.JSONSlice[string] `json:"portfolio_links"`

	ClientFeedback *string    `gorm:"type:text" json:"client_feedback,omitempty"`
	AppliedAt      time.Time  `gorm:"not null;index" json:"applied_at"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`

	Job        *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Freelancer *User `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
}

// ApplicationEvent is one committed status change, kept for audit.
// FromStatus is empty for the submit event.
type ApplicationEvent struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	ApplicationID string            `gorm:"type:varchar(36);not null;index" json:"application_id"`
	FromStatus    ApplicationStatus `gorm:"type:varchar(20)" json:"from_status"`
	ToStatus      ApplicationStatus `gorm:"type:varchar(20);not null" json:"to_status"`
	ActorID       string            `gorm:"type:varchar(36);not null" json:"actor_id"`
	ActorRole     UserRole          `gorm:"type:varchar(20);not null" json:"actor_role"`
	AdminOverride bool              `gorm:"not null;default:false" json:"admin_override"`
	Feedback      *string           `gorm:"type:text" json:"feedback,omitempty"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
}
