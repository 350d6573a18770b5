package dashsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Stable error codes carried in ErrorResponse.Code.
const (
	CodeValidationFailed       = "validation_failed"
	CodeInvalidRequest         = "invalid_request"
	CodeInvalidCredentials     = "invalid_credentials"
	CodeInvalidPassword        = "invalid_password"
	CodeAccountDeactivated     = "account_deactivated"
	CodeTwoFactorRequired      = "two_factor_required"
	CodeInvalidTwoFactorCode   = "invalid_two_factor_code"
	CodeTwoFactorNotInitiated  = "two_factor_setup_not_initiated"
	CodeTwoFactorAlreadyActive = "two_factor_already_enabled"
	CodeUnauthorized           = "unauthorized"
	CodeForbidden              = "forbidden"
	CodeNotFound               = "not_found"
	CodeRouteNotFound          = "route_not_found"
	CodeDuplicateUsername      = "duplicate_username"
	CodeDuplicateEmail         = "duplicate_email"
	CodeSelfDeletion           = "self_deletion"
	CodeRateLimited            = "rate_limit_exceeded"
	CodeInternal               = "internal_error"
)

// APIError is a non-2xx response decoded on the client side.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Errors     []FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dashsdk: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// IsCode reports whether err is an *APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// parseErrorResponse builds an *APIError from a failed response body. Bodies
// that are not JSON still yield an error carrying the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && (errResp.Code != "" || errResp.Message != "") {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Code,
			Message:    errResp.Message,
			Errors:     errResp.Errors,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       CodeInternal,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
