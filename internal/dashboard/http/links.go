package http

import (
	"net/http"
	"strconv"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/service"
	"github.com/morjahome/dashboard/pkg/dashsdk"
	"github.com/morjahome/dashboard/pkg/httpx"
)

// LinkHandler serves the shared link board.
type LinkHandler struct {
	LinkService *service.LinkService
}

// HandleList handles GET /api/links
//
//	@Summary		List links
//	@Description	The caller's links, newest first. includePublic merges in everyone's public links; category narrows to own and public links in that category.
//	@Tags			Links
//	@Security		BearerAuth
//	@Produce		json
//	@Param			category		query		string					false	"Category filter"
//	@Param			includePublic	query		bool					false	"Also list public links"
//	@Success		200				{object}	dashsdk.LinksResponse	"Links"
//	@Failure		401				{object}	dashsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403				{object}	dashsdk.ErrorResponse	"Insufficient permissions"
//	@Router			/api/links [get].
func (h *LinkHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	account, ok := mustAccount(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	includePublic, _ := strconv.ParseBool(q.Get("includePublic"))
	links, err := h.LinkService.List(r.Context(), account, service.LinkFilter{
		Category:      q.Get("category"),
		IncludePublic: includePublic,
	})
	if err != nil {
		writeServiceError(w, r, err, subjectLink)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.LinksResponse{Links: toLinks(links)})
}

// HandlePublic handles GET /api/links/public
//
//	@Summary		List public links
//	@Description	Public links, newest first. Authentication is optional; an authenticated caller filtering by category also sees their own links in it.
//	@Tags			Links
//	@Produce		json
//	@Param			category	query		string					false	"Category filter"
//	@Success		200			{object}	dashsdk.LinksResponse	"Links"
//	@Router			/api/links/public [get].
func (h *LinkHandler) HandlePublic(w http.ResponseWriter, r *http.Request) {
	var actor *domain.Account
	if a, ok := accountFrom(r.Context()); ok {
		actor = &a
	}

	links, err := h.LinkService.ListPublic(r.Context(), actor, r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, r, err, subjectLink)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.LinksResponse{Links: toLinks(links)})
}

// HandleGet handles GET /api/links/{id}
//
//	@Summary		Get a link
//	@Description	Readable when public, owned by the caller, or the caller is an administrator.
//	@Tags			Links
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Link id"
//	@Success		200	{object}	dashsdk.LinkResponse	"Link"
//	@Failure		403	{object}	dashsdk.ErrorResponse	"Access denied"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"Link not found"
//	@Router			/api/links/{id} [get].
func (h *LinkHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	account, ok := mustAccount(w, r)
	if !ok {
		return
	}

	l, err := h.LinkService.Get(r.Context(), account, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, subjectLink)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.LinkResponse{Link: toLink(l)})
}

// HandleCreate handles POST /api/links
//
//	@Summary		Create a link
//	@Tags			Links
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.CreateLinkRequest	true	"Link"
//	@Success		201		{object}	dashsdk.LinkResponse		"Created link"
//	@Failure		400		{object}	dashsdk.ErrorResponse		"Validation failed"
//	@Failure		403		{object}	dashsdk.ErrorResponse		"Insufficient permissions"
//	@Router			/api/links [post].
func (h *LinkHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	account, ok := mustAccount(w, r)
	if !ok {
		return
	}

	var req dashsdk.CreateLinkRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, errInvalidBody)
		return
	}

	l, err := h.LinkService.Create(r.Context(), account, domain.NewLink{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Category:    req.Category,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		writeServiceError(w, r, err, subjectLink)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, dashsdk.LinkResponse{Message: "Link created successfully", Link: toLink(l)})
}

// HandleUpdate handles PUT /api/links/{id}
//
//	@Summary		Update a link
//	@Description	Partial update by the owner or an administrator. Only administrators may change ownerId.
//	@Tags			Links
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Link id"
//	@Param			request	body		dashsdk.UpdateLinkRequest	true	"Fields to change"
//	@Success		200		{object}	dashsdk.LinkResponse		"Updated link"
//	@Failure		400		{object}	dashsdk.ErrorResponse		"Validation failed"
//	@Failure		403		{object}	dashsdk.ErrorResponse		"Access denied"
//	@Failure		404		{object}	dashsdk.ErrorResponse		"Link not found"
//	@Router			/api/links/{id} [put].
func (h *LinkHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	account, ok := mustAccount(w, r)
	if !ok {
		return
	}

	var req dashsdk.UpdateLinkRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, errInvalidBody)
		return
	}

	l, err := h.LinkService.Update(r.Context(), account, r.PathValue("id"), domain.LinkPatch{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Category:    req.Category,
		IsPublic:    req.IsPublic,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		writeServiceError(w, r, err, subjectLink)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.LinkResponse{Message: "Link updated successfully", Link: toLink(l)})
}

// HandleDelete handles DELETE /api/links/{id}
//
//	@Summary		Delete a link
//	@Tags			Links
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Link id"
//	@Success		200	{object}	dashsdk.MessageResponse	"Deleted"
//	@Failure		403	{object}	dashsdk.ErrorResponse	"Access denied"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"Link not found"
//	@Router			/api/links/{id} [delete].
func (h *LinkHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	account, ok := mustAccount(w, r)
	if !ok {
		return
	}

	if err := h.LinkService.Delete(r.Context(), account, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, subjectLink)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.MessageResponse{Message: "Link deleted successfully"})
}

// HandleClick handles POST /api/links/{id}/click
//
//	@Summary		Record a click
//	@Description	Increments the click counter of a link the caller can see and returns its URL.
//	@Tags			Links
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Link id"
//	@Success		200	{object}	dashsdk.ClickResponse	"Target URL and new count"
//	@Failure		403	{object}	dashsdk.ErrorResponse	"Access denied"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"Link not found"
//	@Router			/api/links/{id}/click [post].
func (h *LinkHandler) HandleClick(w http.ResponseWriter, r *http.Request) {
	account, ok := mustAccount(w, r)
	if !ok {
		return
	}

	l, err := h.LinkService.Click(r.Context(), account, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, subjectLink)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.ClickResponse{
		Message:    "Link clicked",
		URL:        l.URL,
		ClickCount: l.ClickCount,
	})
}
