package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Toyowa5296/poliform/internal/auth"
	"github.com/Toyowa5296/poliform/internal/common"
	"github.com/Toyowa5296/poliform/internal/constants"
	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/logging"
	"github.com/Toyowa5296/poliform/internal/middleware"
	"github.com/Toyowa5296/poliform/internal/services"

	"gorm.io/gorm"
)

// statusFor maps service and repository errors onto HTTP status codes.
// Anything unrecognized is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrNotOwner),
		errors.Is(err, services.ErrOwnerCannotApply),
		errors.Is(err, services.ErrOwnerCannotSupport),
		errors.Is(err, repositories.ErrNotCommentAuthor):
		return http.StatusForbidden
	case errors.Is(err, repositories.ErrPartyNotFound),
		errors.Is(err, repositories.ErrProfileNotFound),
		errors.Is(err, repositories.ErrPillarNotFound),
		errors.Is(err, repositories.ErrRoleNotFound),
		errors.Is(err, repositories.ErrNoPendingRow),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, repositories.ErrAlreadyApplied):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// userMessage swaps known errors for their user-facing message. Unknown
// errors keep their own text.
func userMessage(err error, operation string) string {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return constants.MsgInvalidCredentials
	case errors.Is(err, services.ErrEmailTaken):
		return constants.MsgEmailTaken
	case errors.Is(err, services.ErrNotOwner):
		return constants.MsgNotPartyOwner
	case errors.Is(err, services.ErrOwnerCannotApply):
		return constants.MsgOwnerCannotApply
	case errors.Is(err, services.ErrOwnerCannotSupport):
		return constants.MsgOwnerCannotSupport
	case errors.Is(err, repositories.ErrPartyNotFound):
		return constants.MsgPartyNotFound
	case errors.Is(err, repositories.ErrAlreadyApplied):
		return constants.StatusAlreadyApplied
	case errors.Is(err, repositories.ErrNoPendingRow):
		return constants.StatusNotPending
	case errors.Is(err, repositories.ErrRoleNotFound):
		return constants.StatusRoleMissing
	default:
		return operation + " failed"
	}
}

// fail answers the request with the mapped status and records the failure in
// the logs table. The write is best effort and never blocks the response.
func fail(w http.ResponseWriter, r *http.Request, events *services.EventLogService, initTime time.Time, err error, operation string) {
	code := statusFor(err)
	common.RespondError(w, initTime, nil, userMessage(err, operation), code)

	userID := ""
	if claims := auth.GetUserClaims(r.Context()); claims != nil {
		userID = claims.UserID()
	}
	requestID := middleware.GetRequestID(r.Context())
	logging.WithRequest(requestID, userID, r.URL.Path).Warnw("request failed",
		"operation", operation,
		"status", code,
		"error", err,
	)

	if events == nil {
		return
	}
	events.RecordError(r.Context(), userID, err.Error(), operation, map[string]interface{}{
		"path":       r.URL.Path,
		"method":     r.Method,
		"status":     code,
		"request_id": requestID,
	})
}
