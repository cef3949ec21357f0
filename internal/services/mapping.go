package services

import (
	"freelance_backend/internal/models"
	"freelance_backend/internal/services/dto"
)

func toApplicationResponse(app *models.Application) *dto.ApplicationResponse {
	resp := &dto.ApplicationResponse{
		ID:                    app.ID,
		JobID:                 app.JobID,
		FreelancerID:          app.FreelancerID,
		Status:                app.Status,
		CoverLetter:           app.CoverLetter,
		ProposedRate:          app.ProposedRate,
		EstimatedDeliveryDays: app.EstimatedDeliveryDays,
		PortfolioLinks:        []string{},
		ClientFeedback:        app.ClientFeedback,
		AppliedAt:             app.AppliedAt,
		ReviewedAt:            app.ReviewedAt,
		UpdatedAt:             app.UpdatedAt,
	}
	if len(app.PortfolioLinks) > 0 {
		resp.PortfolioLinks = append(resp.PortfolioLinks, app.PortfolioLinks...)
	}
	if app.Job != nil {
		resp.JobTitle = app.Job.Title
	}
	if app.Freelancer != nil {
		resp.FreelancerName = app.Freelancer.DisplayName
	}
	return resp
}

func toApplicationList(apps []models.Application) *dto.ApplicationListResponse {
	list := &dto.ApplicationListResponse{
		Applications: make([]*dto.ApplicationResponse, 0, len(apps)),
	}
	for i := range apps {
		list.Applications = append(list.Applications, toApplicationResponse(&apps[i]))
	}
	list.Total = len(list.Applications)
	return list
}

func toEventResponse(e *models.ApplicationEvent) *dto.ApplicationEventResponse {
	return &dto.ApplicationEventResponse{
		FromStatus:    e.FromStatus,
		ToStatus:      e.ToStatus,
		ActorID:       e.ActorID,
		ActorRole:     e.ActorRole,
		AdminOverride: e.AdminOverride,
		Feedback:      e.Feedback,
		CreatedAt:     e.CreatedAt,
	}
}

func toJobSummary(job *models.Job) dto.JobSummary {
	return dto.JobSummary{
		ID:     job.ID,
		Title:  job.Title,
		Budget: job.Budget,
		Status: job.Status,
	}
}
