package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"freelance_backend/internal/auth"
	"freelance_backend/internal/lifecycle"
	"freelance_backend/internal/logger"
	"freelance_backend/internal/metrics"
	"freelance_backend/internal/models"
	"freelance_backend/internal/repositories"
	"freelance_backend/internal/services/dto"
	"freelance_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PositionFilledFeedback is written to applications rejected automatically when another one is accepted.
const PositionFilledFeedback = "Position has been filled"

const actionSubmit = "submit"

// ApplicationService is the application lifecycle engine. Every mutating
// operation runs in one transaction: load, authorize, check the transition,
// compare-and-swap the status, append the audit event.
type ApplicationService interface {
	Submit(db *gorm.DB, caller auth.Caller, jobID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error)
	Shortlist(db *gorm.DB, caller auth.Caller, applicationID string) (*dto.ApplicationResponse, error)
	Decide(db *gorm.DB, caller auth.Caller, applicationID string, req *dto.DecideApplicationRequest) (*dto.ApplicationResponse, error)
	Withdraw(db *gorm.DB, caller auth.Caller, applicationID string) (*dto.ApplicationResponse, error)

	GetApplication(db *gorm.DB, caller auth.Caller, applicationID string) (*dto.ApplicationResponse, error)
	GetApplicationHistory(db *gorm.DB, caller auth.Caller, applicationID string) ([]*dto.ApplicationEventResponse, error)
	ListMyApplications(db *gorm.DB, caller auth.Caller, filter dto.ApplicationFilter) (*dto.ApplicationListResponse, error)
	ListJobApplications(db *gorm.DB, caller auth.Caller, jobID string) (*dto.ApplicationListResponse, error)
	ListClientApplications(db *gorm.DB, caller auth.Caller, clientID string) (*dto.ApplicationListResponse, error)
}

type ApplicationServiceOptions struct {
	// AutoRejectOnAccept rejects the remaining open applications of a job when one is accepted.
	AutoRejectOnAccept bool
	Now                func() time.Time
}

type applicationService struct {
	appRepo   repositories.ApplicationRepository
	jobRepo   repositories.JobRepository
	userRepo  repositories.UserRepository
	eventRepo repositories.ApplicationEventRepository
	opts      ApplicationServiceOptions
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	eventRepo repositories.ApplicationEventRepository,
	opts ApplicationServiceOptions,
) ApplicationService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &applicationService{
		appRepo:   appRepo,
		jobRepo:   jobRepo,
		userRepo:  userRepo,
		eventRepo: eventRepo,
		opts:      opts,
	}
}

func (s *applicationService) now() time.Time {
	return s.opts.Now().UTC()
}

// ============================================
// Mutations
// ============================================

func (s *applicationService) Submit(db *gorm.DB, caller auth.Caller, jobID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	ctx := db.Statement.Context

	if caller.Role != models.UserRoleFreelancer {
		reportFailure(ctx, actionSubmit, apperrors.ErrRoleViolation, "job_id", jobID)
		return nil, apperrors.ErrRoleViolation
	}

	var created *models.Application
	err := db.Transaction(func(tx *gorm.DB) error {
		job, err := s.jobRepo.FindJobByID(tx, jobID)
		if err != nil {
			return err
		}
		if !job.IsOpen() {
			return apperrors.ErrJobNotOpen
		}
		if job.ClientID == caller.UserID {
			return apperrors.ErrSelfApplication
		}

		app := &models.Application{
			JobID:                 job.ID,
			FreelancerID:          caller.UserID,
			Status:                models.ApplicationStatusPending,
			CoverLetter:           strings.TrimSpace(req.CoverLetter),
			ProposedRate:          req.ProposedRate,
			EstimatedDeliveryDays: req.EstimatedDeliveryDays,
			PortfolioLinks:        datatypes.JSONSlice[string](req.PortfolioLinks),
			AppliedAt:             s.now(),
		}
		if err := s.appRepo.CreateApplication(tx, app); err != nil {
			return err
		}
		if err := s.recordEvent(tx, app.ID, "", app.Status, caller, false, nil); err != nil {
			return err
		}

		app.Job = job
		if user, err := s.userRepo.FindUserByID(tx, caller.UserID); err == nil {
			app.Freelancer = user
		} else if !errors.Is(err, repositories.ErrUserNotFound) {
			return err
		}
		created = app
		return nil
	})
	if err != nil {
		err = mapError(err)
		reportFailure(ctx, actionSubmit, err, "job_id", jobID)
		return nil, err
	}

	metrics.RecordTransition(actionSubmit, metrics.OutcomeCommitted)
	logger.CtxInfo(ctx, "application submitted",
		"application_id", created.ID,
		"job_id", created.JobID,
	)
	return toApplicationResponse(created), nil
}

func (s *applicationService) Shortlist(db *gorm.DB, caller auth.Caller, applicationID string) (*dto.ApplicationResponse, error) {
	return s.transition(db, caller, applicationID, lifecycle.ActionShortlist, "")
}

func (s *applicationService) Decide(db *gorm.DB, caller auth.Caller, applicationID string, req *dto.DecideApplicationRequest) (*dto.ApplicationResponse, error) {
	action, ok := lifecycle.ActionForOutcome(req.Outcome)
	if !ok {
		err := apperrors.ErrInvalidTransition.WithDetails(map[string]string{
			"to":     string(req.Outcome),
			"reason": "outcome must be ACCEPTED or REJECTED",
		})
		reportFailure(db.Statement.Context, "decide", err, "application_id", applicationID)
		return nil, err
	}
	return s.transition(db, caller, applicationID, action, req.Feedback)
}

func (s *applicationService) Withdraw(db *gorm.DB, caller auth.Caller, applicationID string) (*dto.ApplicationResponse, error) {
	return s.transition(db, caller, applicationID, lifecycle.ActionWithdraw, "")
}

// transition applies action to one application. Checks run in this order:
// existence, authorization, feedback, transition legality, compare-and-swap.
func (s *applicationService) transition(db *gorm.DB, caller auth.Caller, applicationID string, action lifecycle.Action, feedback string) (*dto.ApplicationResponse, error) {
	ctx := db.Statement.Context

	var (
		result   *models.Application
		from     models.ApplicationStatus
		override bool
		rejected int
	)

	err := db.Transaction(func(tx *gorm.DB) error {
		app, err := s.appRepo.FindApplicationByID(tx, applicationID)
		if err != nil {
			return err
		}
		job := app.Job
		if job == nil {
			if job, err = s.jobRepo.FindJobByID(tx, app.JobID); err != nil {
				return err
			}
		}

		actor := lifecycle.Actor{ID: caller.UserID, Role: caller.Role}
		parties := lifecycle.Parties{ClientID: job.ClientID, FreelancerID: app.FreelancerID}
		if override, err = lifecycle.Authorize(action, actor, parties); err != nil {
			return err
		}

		feedback = strings.TrimSpace(feedback)
		if lifecycle.RequiresFeedback(action) && feedback == "" {
			return apperrors.ErrFeedbackRequired
		}
		if err := lifecycle.Check(action, app.Status); err != nil {
			return err
		}

		now := s.now()
		change := repositories.StatusChange{Status: lifecycle.Target(action), UpdatedAt: now}
		if lifecycle.RequiresFeedback(action) {
			change.Feedback = &feedback
		}
		if change.Status.IsDecision() {
			change.ReviewedAt = &now
		}

		from = app.Status
		if err := s.appRepo.UpdateApplicationStatus(tx, app.ID, from, change); err != nil {
			return err
		}
		if err := s.recordEvent(tx, app.ID, from, change.Status, caller, override, change.Feedback); err != nil {
			return err
		}

		if action == lifecycle.ActionAccept && s.opts.AutoRejectOnAccept {
			if rejected, err = s.rejectRemaining(tx, job.ID, app.ID, caller, override, now); err != nil {
				return err
			}
		}

		app.Status = change.Status
		if change.Feedback != nil {
			app.ClientFeedback = change.Feedback
			app.ReviewedAt = change.ReviewedAt
		}
		app.UpdatedAt = now
		result = app
		return nil
	})
	if err != nil {
		err = mapError(err)
		reportFailure(ctx, string(action), err, "application_id", applicationID)
		return nil, err
	}

	s.reportCommitted(ctx, action, result, from, override, rejected)
	return toApplicationResponse(result), nil
}

// rejectRemaining closes every other open application of the job. A sibling that
// changed concurrently fails the whole accept with a stale state error.
func (s *applicationService) rejectRemaining(tx *gorm.DB, jobID, acceptedID string, caller auth.Caller, override bool, now time.Time) (int, error) {
	siblings, err := s.appRepo.FindOpenApplicationsByJob(tx, jobID, acceptedID)
	if err != nil {
		return 0, err
	}

	feedback := PositionFilledFeedback
	for _, sibling := range siblings {
		change := repositories.StatusChange{
			Status:     models.ApplicationStatusRejected,
			Feedback:   &feedback,
			ReviewedAt: &now,
			UpdatedAt:  now,
		}
		if err := s.appRepo.UpdateApplicationStatus(tx, sibling.ID, sibling.Status, change); err != nil {
			return 0, err
		}
		if err := s.recordEvent(tx, sibling.ID, sibling.Status, change.Status, caller, override, &feedback); err != nil {
			return 0, err
		}
	}
	return len(siblings), nil
}

func (s *applicationService) recordEvent(tx *gorm.DB, applicationID string, from, to models.ApplicationStatus, caller auth.Caller, override bool, feedback *string) error {
	return s.eventRepo.CreateEvent(tx, &models.ApplicationEvent{
		ApplicationID: applicationID,
		FromStatus:    from,
		ToStatus:      to,
		ActorID:       caller.UserID,
		ActorRole:     caller.Role,
		AdminOverride: override,
		Feedback:      feedback,
		CreatedAt:     s.now(),
	})
}

func (s *applicationService) reportCommitted(ctx context.Context, action lifecycle.Action, app *models.Application, from models.ApplicationStatus, override bool, autoRejected int) {
	metrics.RecordTransition(string(action), metrics.OutcomeCommitted)

	fields := []any{
		"application_id", app.ID,
		"job_id", app.JobID,
		"action", action,
		"from", from,
		"to", app.Status,
	}
	if autoRejected > 0 {
		fields = append(fields, "auto_rejected", autoRejected)
	}

	if override {
		metrics.RecordAdminOverride(string(action))
		logger.CtxWarn(ctx, "admin override transition", append(fields, "admin_override", true)...)
		return
	}
	logger.CtxInfo(ctx, "application transition committed", fields...)
}

// ============================================
// Reads
// ============================================

func (s *applicationService) GetApplication(db *gorm.DB, caller auth.Caller, applicationID string) (*dto.ApplicationResponse, error) {
	app, err := s.visibleApplication(db, caller, applicationID)
	if err != nil {
		return nil, err
	}
	return toApplicationResponse(app), nil
}

func (s *applicationService) GetApplicationHistory(db *gorm.DB, caller auth.Caller, applicationID string) ([]*dto.ApplicationEventResponse, error) {
	app, err := s.visibleApplication(db, caller, applicationID)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.FindEventsByApplication(db, app.ID)
	if err != nil {
		return nil, mapError(err)
	}

	history := make([]*dto.ApplicationEventResponse, 0, len(events))
	for i := range events {
		history = append(history, toEventResponse(&events[i]))
	}
	return history, nil
}

func (s *applicationService) visibleApplication(db *gorm.DB, caller auth.Caller, applicationID string) (*models.Application, error) {
	app, err := s.appRepo.FindApplicationByID(db, applicationID)
	if err != nil {
		return nil, mapError(err)
	}
	job := app.Job
	if job == nil {
		if job, err = s.jobRepo.FindJobByID(db, app.JobID); err != nil {
			return nil, mapError(err)
		}
	}

	actor := lifecycle.Actor{ID: caller.UserID, Role: caller.Role}
	if !lifecycle.CanView(actor, lifecycle.Parties{ClientID: job.ClientID, FreelancerID: app.FreelancerID}) {
		return nil, apperrors.ErrForbidden
	}
	return app, nil
}

func (s *applicationService) ListMyApplications(db *gorm.DB, caller auth.Caller, filter dto.ApplicationFilter) (*dto.ApplicationListResponse, error) {
	if caller.Role != models.UserRoleFreelancer {
		return nil, apperrors.ErrRoleViolation
	}

	var status *models.ApplicationStatus
	if filter.Status != "" {
		st := models.ApplicationStatus(strings.ToUpper(filter.Status))
		if !st.IsValid() {
			return nil, apperrors.NewBadRequestError("unknown application status")
		}
		status = &st
	}

	apps, err := s.appRepo.FindApplicationsByFreelancer(db, caller.UserID, status)
	if err != nil {
		return nil, mapError(err)
	}
	return toApplicationList(apps), nil
}

func (s *applicationService) ListJobApplications(db *gorm.DB, caller auth.Caller, jobID string) (*dto.ApplicationListResponse, error) {
	if !auth.HasRole(caller, models.UserRoleClient, models.UserRoleAdmin) {
		return nil, apperrors.ErrRoleViolation
	}

	job, err := s.jobRepo.FindJobByID(db, jobID)
	if err != nil {
		return nil, mapError(err)
	}
	if !caller.IsAdmin() && job.ClientID != caller.UserID {
		return nil, apperrors.ErrForbidden
	}

	apps, err := s.appRepo.FindApplicationsByJob(db, job.ID)
	if err != nil {
		return nil, mapError(err)
	}
	for i := range apps {
		apps[i].Job = job
	}
	return toApplicationList(apps), nil
}

// ListClientApplications lists applications across the jobs of clientID.
func (s *applicationService) ListClientApplications(db *gorm.DB, caller auth.Caller, clientID string) (*dto.ApplicationListResponse, error) {
	clientID, err := clientScope(caller, clientID)
	if err != nil {
		return nil, err
	}

	apps, err := s.appRepo.FindApplicationsByClientJobs(db, clientID)
	if err != nil {
		return nil, mapError(err)
	}
	return toApplicationList(apps), nil
}
