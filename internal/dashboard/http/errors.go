package http

import (
	"errors"
	"net/http"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/service"
	"github.com/morjahome/dashboard/pkg/dashsdk"
	"github.com/morjahome/dashboard/pkg/httpx"
	"github.com/morjahome/dashboard/pkg/slogx"
)

var (
	errInvalidBody = httpx.NewError(http.StatusBadRequest, dashsdk.CodeInvalidRequest, "Invalid request body")
	errInternal    = httpx.NewError(http.StatusInternalServerError, dashsdk.CodeInternal, "Something went wrong!")
)

// subject names the entity a 404 refers to.
type subject string

const (
	subjectUser subject = "User"
	subjectLink subject = "Link"
)

// toAPIError maps a service error onto the client-facing taxonomy. Unknown
// errors become a 500 whose detail stays in the log.
func toAPIError(err error, subj subject) *httpx.APIError {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		apiErr := httpx.NewError(http.StatusBadRequest, dashsdk.CodeValidationFailed, "Validation failed")
		for _, v := range verr.Violations {
			apiErr.Errors = append(apiErr.Errors, httpx.FieldError{Field: v.Field, Message: v.Message})
		}
		return apiErr
	}

	switch {
	case errors.Is(err, service.ErrDuplicateUsername):
		return httpx.NewError(http.StatusConflict, dashsdk.CodeDuplicateUsername, "Username already exists")
	case errors.Is(err, service.ErrDuplicateEmail):
		return httpx.NewError(http.StatusConflict, dashsdk.CodeDuplicateEmail, "Email already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		return httpx.NewError(http.StatusUnauthorized, dashsdk.CodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, service.ErrAccountDeactivated):
		return httpx.NewError(http.StatusUnauthorized, dashsdk.CodeAccountDeactivated, "Account is deactivated")
	case errors.Is(err, service.ErrTwoFactorRequired):
		return httpx.NewError(http.StatusUnauthorized, dashsdk.CodeTwoFactorRequired, "2FA code required")
	case errors.Is(err, service.ErrInvalidTwoFactorCode):
		return httpx.NewError(http.StatusUnauthorized, dashsdk.CodeInvalidTwoFactorCode, "Invalid 2FA code")
	case errors.Is(err, service.ErrSetupNotInitiated):
		return httpx.NewError(http.StatusBadRequest, dashsdk.CodeTwoFactorNotInitiated, "2FA setup not initiated")
	case errors.Is(err, service.ErrAlreadyEnabled):
		return httpx.NewError(http.StatusBadRequest, dashsdk.CodeTwoFactorAlreadyActive, "2FA is already enabled")
	case errors.Is(err, service.ErrSelfDeletion):
		return httpx.NewError(http.StatusBadRequest, dashsdk.CodeSelfDeletion, "Cannot delete your own account")
	case errors.Is(err, service.ErrUnauthorized):
		return httpx.NewError(http.StatusUnauthorized, dashsdk.CodeUnauthorized, "Invalid or inactive user")
	case errors.Is(err, service.ErrForbidden):
		return httpx.NewError(http.StatusForbidden, dashsdk.CodeForbidden, "Access denied")
	case errors.Is(err, service.ErrNotFound):
		return httpx.NewError(http.StatusNotFound, dashsdk.CodeNotFound, string(subj)+" not found")
	default:
		return errInternal
	}
}

// writeServiceError logs err at a level matching its class and writes the
// mapped response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, subj subject) {
	apiErr := toAPIError(err, subj)
	log := slogx.FromContext(r.Context())
	if apiErr.Status >= http.StatusInternalServerError {
		log.Error("request failed", "err", err)
	} else {
		log.Debug("request rejected", "code", apiErr.Code, "err", err)
	}
	httpx.WriteError(w, apiErr)
}
