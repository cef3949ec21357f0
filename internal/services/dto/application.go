package dto

import (
	"time"

	"freelance_backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type SubmitApplicationRequest struct {
	CoverLetter           string   `json:"cover_letter" validate:"required,notblank,max=5000"`
	ProposedRate          float64  `json:"proposed_rate" validate:"required,gt=0"`
	EstimatedDeliveryDays *int     `json:"estimated_delivery_days,omitempty" validate:"omitempty,min=1,max=365"`
	PortfolioLinks        []string `json:"portfolio_links,omitempty" validate:"omitempty,max=10,dive,url"`
}

// DecideApplicationRequest carries a client decision. Whether the outcome is
// a decision and whether feedback is present are judged by the lifecycle engine.
type DecideApplicationRequest struct {
	Outcome  models.ApplicationStatus `json:"outcome" validate:"required,is-application-status"`
	Feedback string                   `json:"feedback" validate:"max=2000"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"max=2000"`
}

type ApplicationFilter struct {
	Status string `form:"status" validate:"omitempty,is-application-status"`
}

// ======================
// Response DTOs
// ======================

type ApplicationResponse struct {
	ID                    string                   `json:"id"`
	JobID                 string                   `json:"job_id"`
	JobTitle              string                   `json:"job_title,omitempty"`
	FreelancerID          string                   `json:"freelancer_id"`
	FreelancerName        string                   `json:"freelancer_name,omitempty"`
	Status                models.ApplicationStatus `json:"status"`
	CoverLetter           string                   `json:"cover_letter"`
	ProposedRate          float64                  `json:"proposed_rate"`
	EstimatedDeliveryDays *int                     `json:"estimated_delivery_days,omitempty"`
	PortfolioLinks        []string                 `json:"portfolio_links"`
	ClientFeedback        *string                  `json:"client_feedback,omitempty"`
	AppliedAt             time.Time                `json:"applied_at"`
	ReviewedAt            *time.Time               `json:"reviewed_at,omitempty"`
	UpdatedAt             time.Time                `json:"updated_at"`
}

type ApplicationListResponse struct {
	Applications []*ApplicationResponse `json:"applications"`
	Total        int                    `json:"total"`
}

type ApplicationEventResponse struct {
	FromStatus    models.ApplicationStatus `json:"from_status,omitempty"`
	ToStatus      models.ApplicationStatus `json:"to_status"`
	ActorID       string                   `json:"actor_id"`
	ActorRole     models.UserRole          `json:"actor_role"`
	AdminOverride bool                     `json:"admin_override"`
	Feedback      *string                  `json:"feedback,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
}

type ApplicationCountResponse struct {
	JobID             string `json:"job_id"`
	Count             int64  `json:"count"`
	IncludesWithdrawn bool   `json:"includes_withdrawn"`
}

type JobSummary struct {
	ID     string           `json:"id"`
	Title  string           `json:"title"`
	Budget float64          `json:"budget"`
	Status models.JobStatus `json:"status"`
}

// JobApplicationsGroup is one job of a client with every application made to it.
type JobApplicationsGroup struct {
	Job          JobSummary                         `json:"job"`
	Applications []*ApplicationResponse             `json:"applications"`
	Counts       map[models.ApplicationStatus]int64 `json:"counts"`
	// Total follows the withdrawn counting policy; Counts always has every status.
	Total        int64                              `json:"total"`
}

type GroupedApplicationsResponse struct {
	ClientID string                  `json:"client_id"`
	Jobs     []*JobApplicationsGroup `json:"jobs"`
}

type ClientApplicationStats struct {
	ClientID              string                             `json:"client_id"`
	TotalJobs             int64                              `json:"total_jobs"`
	TotalApplications     int64                              `json:"total_applications"`
	ByStatus              map[models.ApplicationStatus]int64 `json:"by_status"`
	AvgApplicationsPerJob float64                            `json:"avg_applications_per_job"`
	IncludesWithdrawn     bool                               `json:"includes_withdrawn"`
}
