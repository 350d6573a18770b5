package http

import (
	"net/http"

	"github.com/morjahome/dashboard/internal/dashboard/service"
	"github.com/morjahome/dashboard/pkg/httpx"
)

type DashboardHandler struct {
	StatsService *service.StatsService
}

// HandleOverview handles GET /api/dashboard
//
//	@Summary		Dashboard overview
//	@Description	The caller's summary, link counters, five most recent and five most clicked links, and the modules their roles unlock.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dashsdk.DashboardResponse	"Overview"
//	@Failure		401	{object}	dashsdk.ErrorResponse		"Invalid or missing access token"
//	@Router			/api/dashboard [get].
func (h *DashboardHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	account, ok := mustAccount(w, r)
	if !ok {
		return
	}

	d, err := h.StatsService.Dashboard(r.Context(), account)
	if err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDashboard(d))
}

// HandleStatus handles GET /api/dashboard/status
//
//	@Summary		System status
//	@Description	Server uptime and runtime. Administrators also receive account and link counts.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dashsdk.StatusResponse	"Status"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/api/dashboard/status [get].
func (h *DashboardHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	account, ok := mustAccount(w, r)
	if !ok {
		return
	}

	s, err := h.StatsService.Status(r.Context(), account)
	if err != nil {
		writeServiceError(w, r, err, subjectUser)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toStatus(s))
}
