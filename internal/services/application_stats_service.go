package services

import (
	"freelance_backend/internal/auth"
	"freelance_backend/internal/models"
	"freelance_backend/internal/repositories"
	"freelance_backend/internal/services/dto"
	"freelance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ApplicationStatsService is the read-only projection over applications:
// public per-job counts, the client review screen and dashboard totals.
type ApplicationStatsService interface {
	CountForJob(db *gorm.DB, jobID string) (*dto.ApplicationCountResponse, error)
	GroupByJob(db *gorm.DB, caller auth.Caller, clientID string) (*dto.GroupedApplicationsResponse, error)
	ClientStats(db *gorm.DB, caller auth.Caller, clientID string) (*dto.ClientApplicationStats, error)
}

type applicationStatsService struct {
	appRepo        repositories.ApplicationRepository
	jobRepo        repositories.JobRepository
	countWithdrawn bool
}

// NewApplicationStatsService builds the projection. countWithdrawn decides whether
// withdrawn applications take part in counts and averages.
func NewApplicationStatsService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	countWithdrawn bool,
) ApplicationStatsService {
	return &applicationStatsService{
		appRepo:        appRepo,
		jobRepo:        jobRepo,
		countWithdrawn: countWithdrawn,
	}
}

func (s *applicationStatsService) excluded() []models.ApplicationStatus {
	if s.countWithdrawn {
		return nil
	}
	return []models.ApplicationStatus{models.ApplicationStatusWithdrawn}
}

func (s *applicationStatsService) counted(status models.ApplicationStatus) bool {
	return s.countWithdrawn || status != models.ApplicationStatusWithdrawn
}

func (s *applicationStatsService) CountForJob(db *gorm.DB, jobID string) (*dto.ApplicationCountResponse, error) {
	job, err := s.jobRepo.FindJobByID(db, jobID)
	if err != nil {
		return nil, mapError(err)
	}

	count, err := s.appRepo.CountApplicationsByJob(db, job.ID, s.excluded()...)
	if err != nil {
		return nil, mapError(err)
	}

	return &dto.ApplicationCountResponse{
		JobID:             job.ID,
		Count:             count,
		IncludesWithdrawn: s.countWithdrawn,
	}, nil
}

// clientScope resolves which client's jobs a client-side view covers. An empty
// clientID means the caller. Only admins may look at another client, and an
// admin has no jobs of their own so must name one.
func clientScope(caller auth.Caller, clientID string) (string, error) {
	if caller.IsAdmin() {
		if clientID == "" {
			return "", apperrors.NewBadRequestError("client_id is required for admins")
		}
		return clientID, nil
	}
	if caller.Role != models.UserRoleClient {
		return "", apperrors.ErrRoleViolation
	}
	if clientID == "" {
		return caller.UserID, nil
	}
	if clientID != caller.UserID {
		return "", apperrors.ErrForbidden
	}
	return clientID, nil
}

// GroupByJob lists every job of clientID with its applications.
func (s *applicationStatsService) GroupByJob(db *gorm.DB, caller auth.Caller, clientID string) (*dto.GroupedApplicationsResponse, error) {
	clientID, err := clientScope(caller, clientID)
	if err != nil {
		return nil, err
	}

	resp := &dto.GroupedApplicationsResponse{ClientID: clientID, Jobs: []*dto.JobApplicationsGroup{}}

	err = db.Transaction(func(tx *gorm.DB) error {
		jobs, err := s.jobRepo.FindJobsByClient(tx, clientID)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			return nil
		}

		ids := make([]string, 0, len(jobs))
		groups := make(map[string]*dto.JobApplicationsGroup, len(jobs))
		for i := range jobs {
			ids = append(ids, jobs[i].ID)
			group := &dto.JobApplicationsGroup{
				Job:          toJobSummary(&jobs[i]),
				Applications: []*dto.ApplicationResponse{},
				Counts:       make(map[models.ApplicationStatus]int64),
			}
			groups[jobs[i].ID] = group
			resp.Jobs = append(resp.Jobs, group)
		}

		apps, err := s.appRepo.FindApplicationsByJobs(tx, ids)
		if err != nil {
			return err
		}
		for i := range apps {
			group, ok := groups[apps[i].JobID]
			if !ok {
				continue
			}
			item := toApplicationResponse(&apps[i])
			item.JobTitle = group.Job.Title
			group.Applications = append(group.Applications, item)
			group.Counts[apps[i].Status]++
		}

		totals, err := s.appRepo.CountApplicationsByJobs(tx, ids, s.excluded()...)
		if err != nil {
			return err
		}
		for _, t := range totals {
			if group, ok := groups[t.JobID]; ok {
				group.Total = t.Count
			}
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (s *applicationStatsService) ClientStats(db *gorm.DB, caller auth.Caller, clientID string) (*dto.ClientApplicationStats, error) {
	clientID, err := clientScope(caller, clientID)
	if err != nil {
		return nil, err
	}

	stats := &dto.ClientApplicationStats{
		ClientID:          clientID,
		ByStatus:          make(map[models.ApplicationStatus]int64),
		IncludesWithdrawn: s.countWithdrawn,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		jobs, err := s.jobRepo.FindJobsByClient(tx, clientID)
		if err != nil {
			return err
		}
		stats.TotalJobs = int64(len(jobs))

		counts, err := s.appRepo.CountApplicationsByStatusForClient(tx, clientID)
		if err != nil {
			return err
		}
		for _, c := range counts {
			stats.ByStatus[c.Status] = c.Count
			if s.counted(c.Status) {
				stats.TotalApplications += c.Count
			}
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}

	if stats.TotalJobs > 0 {
		stats.AvgApplicationsPerJob = float64(stats.TotalApplications) / float64(stats.TotalJobs)
	}
	return stats, nil
}
