package services

import (
	"context"
	"errors"

	"freelance_backend/internal/logger"
	"freelance_backend/internal/metrics"
	"freelance_backend/internal/repositories"
	"freelance_backend/pkg/apperrors"
)

// mapError converts repository sentinels into caller facing errors. Anything the
// store returns that is not a known sentinel is an infrastructure failure.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, repositories.ErrApplicationNotFound):
		return apperrors.ErrApplicationNotFound
	case errors.Is(err, repositories.ErrJobNotFound):
		return apperrors.ErrJobNotFound
	case errors.Is(err, repositories.ErrApplicationExists):
		return apperrors.ErrDuplicateApplication
	case errors.Is(err, repositories.ErrStaleApplicationState):
		return apperrors.ErrStaleState
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.StoreError(err)
}

// outcomeOf is the metrics label for a finished lifecycle operation.
func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeCommitted
	}
	if appErr, ok := apperrors.AsAppError(err); ok {
		return string(appErr.Code)
	}
	return string(apperrors.CodeInternalError)
}

// reportFailure logs a failed lifecycle operation. Business rejections are
// expected traffic; store failures are not.
func reportFailure(ctx context.Context, action string, err error, args ...any) {
	metrics.RecordTransition(action, outcomeOf(err))

	fields := append([]any{"action", action}, args...)
	if apperrors.IsInfrastructure(err) {
		logger.CtxWithError(ctx, "application store failure", err, fields...)
		return
	}
	logger.CtxDebug(ctx, "application operation rejected", append(fields, "reason", outcomeOf(err))...)
}
