package apperrors

import (
	"github.com/gin-gonic/gin"

	"freelance_backend/internal/logger"
)

// ErrorResponse is the JSON envelope of every error reply.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler renders errors for gin. Debug keeps the message of unknown errors.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		if h.Debug {
			appErr = appErr.WithDetails(err.Error())
		}
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error",
			causeOf(appErr),
			"code", appErr.Code,
			"path", c.FullPath(),
		)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

func causeOf(appErr *AppError) error {
	if appErr.Err != nil {
		return appErr.Err
	}
	return appErr
}

// HandleError renders err using gin's mode to decide on debug output.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() == gin.DebugMode}
	handler.HandleGinError(c, err)
}
