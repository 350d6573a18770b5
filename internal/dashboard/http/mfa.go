package http

import (
	"errors"
	"net/http"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/service"
	"github.com/morjahome/dashboard/pkg/dashsdk"
	"github.com/morjahome/dashboard/pkg/httpx"
)

// MFAHandler drives the TOTP enrolment lifecycle for the caller.
type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleSetup handles POST /api/auth/2fa/setup
//
//	@Summary		Start 2FA setup
//	@Description	Generates a pending TOTP secret and returns it with a QR code. Calling again replaces an unconfirmed secret.
//	@Tags			2FA
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dashsdk.TwoFactorSetupResponse	"Secret and QR code"
//	@Failure		400	{object}	dashsdk.ErrorResponse			"2FA already enabled"
//	@Failure		401	{object}	dashsdk.ErrorResponse			"Invalid or missing access token"
//	@Router			/api/auth/2fa/setup [post].
func (h *MFAHandler) HandleSetup(w http.ResponseWriter, r *http.Request) {
	account, ok := mustAccount(w, r)
	if !ok {
		return
	}

	setup, err := h.MFAService.Setup2FA(r.Context(), account.ID)
	if err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, dashsdk.TwoFactorSetupResponse{
		Message:        "2FA setup initiated",
		Secret:         setup.Secret,
		QRCode:         setup.QRCode,
		ManualEntryKey: setup.ManualEntryKey,
		OTPAuthURL:     setup.URL,
	})
}

// HandleEnable handles POST /api/auth/2fa/enable
//
//	@Summary		Confirm 2FA setup
//	@Description	Verifies a code against the pending secret and turns 2FA on.
//	@Tags			2FA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.TwoFactorCodeRequest	true	"Current TOTP code"
//	@Success		200		{object}	dashsdk.MessageResponse			"2FA enabled"
//	@Failure		400		{object}	dashsdk.ErrorResponse			"Invalid code, setup not initiated or already enabled"
//	@Failure		401		{object}	dashsdk.ErrorResponse			"Invalid or missing access token"
//	@Router			/api/auth/2fa/enable [post].
func (h *MFAHandler) HandleEnable(w http.ResponseWriter, r *http.Request) {
	account, ok := mustAccount(w, r)
	if !ok {
		return
	}

	var req dashsdk.TwoFactorCodeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, errInvalidBody)
		return
	}
	var v domain.Validator
	v.TwoFactorCode(req.TwoFactorCode)
	if err := v.Err(); err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}

	err := h.MFAService.Enable2FA(r.Context(), account.ID, req.TwoFactorCode)
	if errors.Is(err, service.ErrInvalidTwoFactorCode) {
		// the caller is authenticated; a 401 here would read as a dead token
		httpx.WriteError(w, httpx.NewError(http.StatusBadRequest, dashsdk.CodeInvalidTwoFactorCode, "Invalid 2FA code"))
		return
	}
	if err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.MessageResponse{Message: "2FA enabled successfully"})
}

// HandleDisable handles POST /api/auth/2fa/disable
//
//	@Summary		Disable 2FA
//	@Description	Clears the TOTP secret after re-checking the account password.
//	@Tags			2FA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.DisableTwoFactorRequest	true	"Account password"
//	@Success		200		{object}	dashsdk.MessageResponse			"2FA disabled"
//	@Failure		400		{object}	dashsdk.ErrorResponse			"Invalid password"
//	@Failure		401		{object}	dashsdk.ErrorResponse			"Invalid or missing access token"
//	@Router			/api/auth/2fa/disable [post].
func (h *MFAHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	account, ok := mustAccount(w, r)
	if !ok {
		return
	}

	var req dashsdk.DisableTwoFactorRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, errInvalidBody)
		return
	}
	var v domain.Validator
	v.Required("password", req.Password)
	if err := v.Err(); err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}

	err := h.MFAService.Disable2FA(r.Context(), account.ID, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		httpx.WriteError(w, httpx.NewError(http.StatusBadRequest, dashsdk.CodeInvalidPassword, "Invalid password"))
		return
	}
	if err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.MessageResponse{Message: "2FA disabled successfully"})
}
