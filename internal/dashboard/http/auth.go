package http

import (
	"net/http"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/service"
	"github.com/morjahome/dashboard/pkg/cryptox"
	"github.com/morjahome/dashboard/pkg/dashsdk"
	"github.com/morjahome/dashboard/pkg/httpx"
	"github.com/morjahome/dashboard/pkg/slogx"
)

// AuthHandler serves login, registration and the caller's profile.
type AuthHandler struct {
	AuthService    *service.AuthService
	AccountService *service.AccountService
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Log in
//	@Description	Exchanges username and password for a bearer token. Accounts with 2FA enabled must also send twoFactorCode.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	dashsdk.LoginResponse	"Token and account"
//	@Failure		400		{object}	dashsdk.ErrorResponse	"Validation failed"
//	@Failure		401		{object}	dashsdk.ErrorResponse	"Invalid credentials, deactivated account or 2FA required"
//	@Failure		429		{object}	dashsdk.ErrorResponse	"Too many attempts"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req dashsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, errInvalidBody)
		return
	}

	var v domain.Validator
	v.Required("username", req.Username)
	v.Required("password", req.Password)
	if req.TwoFactorCode != "" {
		v.TwoFactorCode(req.TwoFactorCode)
	}
	if err := v.Err(); err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}

	res, err := h.AuthService.Login(r.Context(), req.Username, req.Password, req.TwoFactorCode)
	if err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.LoginResponse{
		Message:   "Login successful",
		User:      toUser(res.Account),
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
	})
}

// HandleRegister handles POST /api/auth/register
//
//	@Summary		Register an account
//	@Description	Creates an account. Only administrators may register new users.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.RegisterRequest	true	"New account"
//	@Success		201		{object}	dashsdk.UserResponse	"Created account"
//	@Failure		400		{object}	dashsdk.ErrorResponse	"Validation failed"
//	@Failure		401		{object}	dashsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403		{object}	dashsdk.ErrorResponse	"Insufficient permissions"
//	@Failure		409		{object}	dashsdk.ErrorResponse	"Username or email already exists"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req dashsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, errInvalidBody)
		return
	}

	a, err := h.AuthService.Register(r.Context(), registerInput(req))
	if err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, dashsdk.UserResponse{
		Message: "User registered successfully",
		User:    toUser(a),
	})
}

// HandleProfile handles GET /api/auth/profile
//
//	@Summary		Current account
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dashsdk.UserResponse	"Account"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/api/auth/profile [get].
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	account, ok := mustAccount(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.UserResponse{User: toUser(account)})
}

// HandleLogout handles POST /api/auth/logout
//
//	@Summary		Log out
//	@Description	Acknowledges the logout. Tokens are stateless and stay valid until they expire; clients discard them.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dashsdk.MessageResponse	"Logout successful"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if account, ok := accountFrom(r.Context()); ok {
		token, _ := httpx.BearerToken(r)
		slogx.FromContext(r.Context()).Info("logout", "user_id", account.ID, "token_fp", cryptox.Fingerprint(token))
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.MessageResponse{Message: "Logout successful"})
}

func registerInput(req dashsdk.RegisterRequest) service.RegisterInput {
	return service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
		IsActive: req.IsActive,
	}
}
