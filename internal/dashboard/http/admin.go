package http

import (
	"net/http"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/service"
	"github.com/morjahome/dashboard/pkg/dashsdk"
	"github.com/morjahome/dashboard/pkg/httpx"
)

// AdminHandler serves /api/admin. Every route is gated on the admin role.
type AdminHandler struct {
	AccountService *service.AccountService
	LinkService    *service.LinkService
	StatsService   *service.StatsService
}

// HandleListUsers handles GET /api/admin/users
//
//	@Summary		List accounts
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dashsdk.UsersResponse	"Accounts"
//	@Failure		403	{object}	dashsdk.ErrorResponse	"Insufficient permissions"
//	@Router			/api/admin/users [get].
func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.AccountService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.UsersResponse{Users: toUsers(accounts)})
}

// HandleGetUser handles GET /api/admin/users/{id}
//
//	@Summary		Get an account
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Account id"
//	@Success		200	{object}	dashsdk.UserResponse	"Account"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"User not found"
//	@Router			/api/admin/users/{id} [get].
func (h *AdminHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	a, err := h.AccountService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.UserResponse{User: toUser(a)})
}

// HandleCreateUser handles POST /api/admin/users
//
//	@Summary		Create an account
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.RegisterRequest	true	"New account"
//	@Success		201		{object}	dashsdk.UserResponse	"Created account"
//	@Failure		400		{object}	dashsdk.ErrorResponse	"Validation failed"
//	@Failure		409		{object}	dashsdk.ErrorResponse	"Username or email already exists"
//	@Router			/api/admin/users [post].
func (h *AdminHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req dashsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, errInvalidBody)
		return
	}

	a, err := h.AccountService.Create(r.Context(), registerInput(req))
	if err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, dashsdk.UserResponse{Message: "User created successfully", User: toUser(a)})
}

// HandleUpdateUser handles PUT /api/admin/users/{id}
//
//	@Summary		Update an account
//	@Description	Partial update. A new password is hashed before it is stored.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Account id"
//	@Param			request	body		dashsdk.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	dashsdk.UserResponse		"Updated account"
//	@Failure		400		{object}	dashsdk.ErrorResponse		"Validation failed"
//	@Failure		404		{object}	dashsdk.ErrorResponse		"User not found"
//	@Failure		409		{object}	dashsdk.ErrorResponse		"Username or email already exists"
//	@Router			/api/admin/users/{id} [put].
func (h *AdminHandler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req dashsdk.UpdateUserRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, errInvalidBody)
		return
	}

	a, err := h.AccountService.Update(r.Context(), r.PathValue("id"), domain.AccountPatch{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.UserResponse{Message: "User updated successfully", User: toUser(a)})
}

// HandleDeleteUser handles DELETE /api/admin/users/{id}
//
//	@Summary		Delete an account
//	@Description	Deletes the account and every link it owns. Administrators cannot delete themselves.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Account id"
//	@Success		200	{object}	dashsdk.MessageResponse	"Deleted"
//	@Failure		400	{object}	dashsdk.ErrorResponse	"Cannot delete your own account"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"User not found"
//	@Router			/api/admin/users/{id} [delete].
func (h *AdminHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustAccount(w, r)
	if !ok {
		return
	}

	if err := h.AccountService.Delete(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.MessageResponse{Message: "User deleted successfully"})
}

// HandleResetTwoFactor handles POST /api/admin/users/{id}/reset-2fa
//
//	@Summary		Reset an account's 2FA
//	@Description	Clears the TOTP secret, pending or enabled, so the user can log in with the password alone.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Account id"
//	@Success		200	{object}	dashsdk.UserResponse	"Account after reset"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"User not found"
//	@Router			/api/admin/users/{id}/reset-2fa [post].
func (h *AdminHandler) HandleResetTwoFactor(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.AccountService.ResetTwoFactor(r.Context(), id); err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}
	a, err := h.AccountService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.UserResponse{Message: "2FA reset successfully", User: toUser(a)})
}

// HandleListLinks handles GET /api/admin/links
//
//	@Summary		List every link
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dashsdk.LinksResponse	"Links"
//	@Router			/api/admin/links [get].
func (h *AdminHandler) HandleListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.LinkService.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err, subjectLink)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.LinksResponse{Links: toLinks(links)})
}

// HandleDeleteLink handles DELETE /api/admin/links/{id}
//
//	@Summary		Delete any link
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Link id"
//	@Success		200	{object}	dashsdk.MessageResponse	"Deleted"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"Link not found"
//	@Router			/api/admin/links/{id} [delete].
func (h *AdminHandler) HandleDeleteLink(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustAccount(w, r)
	if !ok {
		return
	}

	if err := h.LinkService.Delete(r.Context(), actor, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, subjectLink)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.MessageResponse{Message: "Link deleted successfully"})
}

// HandleStats handles GET /api/admin/stats
//
//	@Summary		System statistics
//	@Description	Account and link aggregates plus process runtime figures.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dashsdk.SystemStatsResponse	"Statistics"
//	@Router			/api/admin/stats [get].
func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	s, err := h.StatsService.System(r.Context())
	if err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSystemStats(s))
}
