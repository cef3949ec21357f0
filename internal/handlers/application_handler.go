package handlers

import (
	"net/http"
	"strings"

	"freelance_backend/internal/middleware"
	"freelance_backend/internal/models"
	"freelance_backend/internal/services"
	"freelance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

const (
	DefaultAcceptFeedback = "Congratulations! Your application has been accepted."
	DefaultRejectFeedback = "Thank you for your interest. We have decided to move forward with another candidate."
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	statsService       services.ApplicationStatsService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService, statsService services.ApplicationStatsService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		statsService:       statsService,
	}
}

// RegisterRoutes mounts the application routes. authMW resolves the caller,
// limitMW throttles the mutating routes.
func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup, authMW, limitMW gin.HandlerFunc) {
	// Public
	r.GET("/jobs/:jobId/applications/count", h.CountForJob)

	jobs := r.Group("/jobs/:jobId/applications")
	jobs.Use(authMW)
	{
		jobs.POST("", limitMW, middleware.RequireRoles(models.UserRoleFreelancer), h.Submit)
		jobs.GET("", h.ListJobApplications)
	}

	applications := r.Group("/applications")
	applications.Use(authMW)
	{
		applications.GET("/my", h.ListMyApplications)
		applications.GET("/client", h.ListClientApplications)
		applications.GET("/grouped", h.GroupByJob)
		applications.GET("/stats", h.ClientStats)

		applications.GET("/:applicationId", h.GetApplication)
		applications.GET("/:applicationId/history", h.GetApplicationHistory)

		applications.PATCH("/:applicationId/shortlist", limitMW, h.Shortlist)
		applications.PATCH("/:applicationId/decision", limitMW, h.Decide)
		applications.PATCH("/:applicationId/accept", limitMW, h.Accept)
		applications.PATCH("/:applicationId/reject", limitMW, h.Reject)
		applications.PATCH("/:applicationId/withdraw", limitMW, h.Withdraw)
	}
}

// --- Lifecycle ---

// Submit godoc
// @Summary Apply to a job
// @Description Creates a PENDING application of the caller (a freelancer) to an open job.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Param application body dto.SubmitApplicationRequest true "Application"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} apperrors.ErrorResponse "Validation failed"
// @Failure 403 {object} apperrors.ErrorResponse "Role violation or own job"
// @Failure 404 {object} apperrors.ErrorResponse "Job not found"
// @Failure 409 {object} apperrors.ErrorResponse "Duplicate application or job not open"
// @Router /api/v1/jobs/{jobId}/applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.Submit(h.GetDB(c), caller, c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// Shortlist godoc
// @Summary Shortlist an application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Invalid transition or stale state"
// @Router /api/v1/applications/{applicationId}/shortlist [patch]
func (h *ApplicationHandler) Shortlist(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	application, err := h.applicationService.Shortlist(h.GetDB(c), caller, c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// Decide godoc
// @Summary Accept or reject an application
// @Description Outcome must be ACCEPTED or REJECTED. Feedback is required.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Param decision body dto.DecideApplicationRequest true "Decision"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Invalid transition or stale state"
// @Failure 422 {object} apperrors.ErrorResponse "Feedback required"
// @Router /api/v1/applications/{applicationId}/decision [patch]
func (h *ApplicationHandler) Decide(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	var req dto.DecideApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	req.Outcome = models.ApplicationStatus(strings.ToUpper(strings.TrimSpace(string(req.Outcome))))

	application, err := h.applicationService.Decide(h.GetDB(c), caller, c.Param("applicationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// Accept godoc
// @Summary Accept an application
// @Description Feedback defaults to a standard congratulation when omitted.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Param feedback body dto.FeedbackRequest false "Feedback"
// @Success 200 {object} dto.ApplicationResponse
// @Router /api/v1/applications/{applicationId}/accept [patch]
func (h *ApplicationHandler) Accept(c *gin.Context) {
	h.decideWithDefault(c, models.ApplicationStatusAccepted, DefaultAcceptFeedback)
}

// Reject godoc
// @Summary Reject an application
// @Description Feedback defaults to a standard rejection when omitted.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Param feedback body dto.FeedbackRequest false "Feedback"
// @Success 200 {object} dto.ApplicationResponse
// @Router /api/v1/applications/{applicationId}/reject [patch]
func (h *ApplicationHandler) Reject(c *gin.Context) {
	h.decideWithDefault(c, models.ApplicationStatusRejected, DefaultRejectFeedback)
}

func (h *ApplicationHandler) decideWithDefault(c *gin.Context, outcome models.ApplicationStatus, defaultFeedback string) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	var body dto.FeedbackRequest
	if !h.BindAndValidate_OptionalJSON(c, &body) {
		return
	}
	if body.Feedback == "" {
		body.Feedback = defaultFeedback
	}

	req := &dto.DecideApplicationRequest{Outcome: outcome, Feedback: body.Feedback}
	application, err := h.applicationService.Decide(h.GetDB(c), caller, c.Param("applicationId"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// Withdraw godoc
// @Summary Withdraw an application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /api/v1/applications/{applicationId}/withdraw [patch]
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	application, err := h.applicationService.Withdraw(h.GetDB(c), caller, c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// --- Reads ---

// GetApplication godoc
// @Summary Get an application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/applications/{applicationId} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	application, err := h.applicationService.GetApplication(h.GetDB(c), caller, c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// GetApplicationHistory godoc
// @Summary Status history of an application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Success 200 {array} dto.ApplicationEventResponse
// @Router /api/v1/applications/{applicationId}/history [get]
func (h *ApplicationHandler) GetApplicationHistory(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	events, err := h.applicationService.GetApplicationHistory(h.GetDB(c), caller, c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"total":  len(events),
	})
}

// ListMyApplications godoc
// @Summary Applications of the calling freelancer
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.ApplicationListResponse
// @Router /api/v1/applications/my [get]
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	var filter dto.ApplicationFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	list, err := h.applicationService.ListMyApplications(h.GetDB(c), caller, filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ListJobApplications godoc
// @Summary Applications to one job
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200 {object} dto.ApplicationListResponse
// @Router /api/v1/jobs/{jobId}/applications [get]
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	list, err := h.applicationService.ListJobApplications(h.GetDB(c), caller, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ListClientApplications godoc
// @Summary Applications to every job of a client
// @Description Clients see their own jobs. Admins must pass client_id.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param client_id query string false "Client ID, defaults to the caller"
// @Success 200 {object} dto.ApplicationListResponse
// @Router /api/v1/applications/client [get]
func (h *ApplicationHandler) ListClientApplications(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	list, err := h.applicationService.ListClientApplications(h.GetDB(c), caller, c.Query("client_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// --- Aggregation ---

// CountForJob godoc
// @Summary Number of applications to a job
// @Tags applications
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} dto.ApplicationCountResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/jobs/{jobId}/applications/count [get]
func (h *ApplicationHandler) CountForJob(c *gin.Context) {
	count, err := h.statsService.CountForJob(h.GetDB(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, count)
}

// GroupByJob godoc
// @Summary Applications grouped by job
// @Description Clients see their own jobs. Admins must pass client_id.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param client_id query string false "Client ID, defaults to the caller"
// @Success 200 {object} dto.GroupedApplicationsResponse
// @Router /api/v1/applications/grouped [get]
func (h *ApplicationHandler) GroupByJob(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	grouped, err := h.statsService.GroupByJob(h.GetDB(c), caller, c.Query("client_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, grouped)
}

// ClientStats godoc
// @Summary Dashboard totals of a client
// @Description Clients see their own jobs. Admins must pass client_id.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param client_id query string false "Client ID, defaults to the caller"
// @Success 200 {object} dto.ClientApplicationStats
// @Router /api/v1/applications/stats [get]
func (h *ApplicationHandler) ClientStats(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	stats, err := h.statsService.ClientStats(h.GetDB(c), caller, c.Query("client_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
