package services

import (
	"freelance_backend/internal/config"
	"freelance_backend/internal/repositories"
)

// ServiceContainer holds every service the handlers use.
type ServiceContainer struct {
	ApplicationService      ApplicationService
	ApplicationStatsService ApplicationStatsService
}

func NewServiceContainer(cfg config.LifecycleConfig) *ServiceContainer {
	appRepo := repositories.NewApplicationRepository()
	jobRepo := repositories.NewJobRepository()
	userRepo := repositories.NewUserRepository()
	eventRepo := repositories.NewApplicationEventRepository()

	return &ServiceContainer{
		ApplicationService: NewApplicationService(appRepo, jobRepo, userRepo, eventRepo, ApplicationServiceOptions{
			AutoRejectOnAccept: cfg.AutoRejectOnAccept,
		}),
		ApplicationStatsService: NewApplicationStatsService(appRepo, jobRepo, cfg.CountWithdrawn),
	}
}
