package http

import (
	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/pkg/dashsdk"
)

// toUser is the only way an account leaves the process. The password hash
// and TOTP secret have no counterpart on the wire type.
func toUser(a domain.Account) dashsdk.User {
	roles := a.Roles
	if roles == nil {
		roles = []string{}
	}
	return dashsdk.User{
		ID:               a.ID,
		Username:         a.Username,
		Email:            a.Email,
		Roles:            roles,
		TwoFactorEnabled: a.TwoFactorEnabled,
		IsActive:         a.IsActive,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
		LastLogin:        a.LastLogin,
	}
}

func toUsers(accounts []domain.Account) []dashsdk.User {
	out := make([]dashsdk.User, len(accounts))
	for i, a := range accounts {
		out[i] = toUser(a)
	}
	return out
}

func toLink(l domain.Link) dashsdk.Link {
	return dashsdk.Link{
		ID:          l.ID,
		Title:       l.Title,
		URL:         l.URL,
		Description: l.Description,
		Category:    l.Category,
		OwnerID:     l.OwnerID,
		IsPublic:    l.IsPublic,
		ClickCount:  l.ClickCount,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
		LastClicked: l.LastClicked,
	}
}

// toLinks never returns nil so empty lists encode as [].
func toLinks(links []domain.Link) []dashsdk.Link {
	out := make([]dashsdk.Link, len(links))
	for i, l := range links {
		out[i] = toLink(l)
	}
	return out
}

func toModules(mods []domain.Module) []dashsdk.Module {
	out := make([]dashsdk.Module, len(mods))
	for i, m := range mods {
		out[i] = dashsdk.Module(m)
	}
	return out
}

func toDashboard(d domain.Dashboard) dashsdk.DashboardResponse {
	return dashsdk.DashboardResponse{
		User: dashsdk.DashboardUser{
			Username:  d.User.Username,
			Roles:     d.User.Roles,
			LastLogin: d.User.LastLogin,
		},
		Stats:            dashsdk.DashboardStats(d.Stats),
		RecentLinks:      toLinks(d.RecentLinks),
		PopularLinks:     toLinks(d.PopularLinks),
		AvailableModules: toModules(d.AvailableModules),
	}
}

func toStatus(s domain.Status) dashsdk.StatusResponse {
	resp := dashsdk.StatusResponse{
		Server: dashsdk.ServerStatus{
			Uptime:    s.Server.UptimeSeconds,
			GoVersion: s.Server.GoVersion,
			Platform:  s.Server.Platform,
		},
		Timestamp: s.Timestamp,
	}
	if s.Admin != nil {
		admin := dashsdk.AdminStatus(*s.Admin)
		resp.Admin = &admin
	}
	return resp
}

func toSystemStats(s domain.SystemStats) dashsdk.SystemStatsResponse {
	return dashsdk.SystemStatsResponse{
		Users: dashsdk.UserStats(s.Users),
		Links: dashsdk.LinkStats(s.Links),
		System: dashsdk.RuntimeStats{
			Uptime:     s.System.UptimeSeconds,
			Memory:     dashsdk.MemoryStats(s.System.Memory),
			GoVersion:  s.System.GoVersion,
			Platform:   s.System.Platform,
			Goroutines: s.System.Goroutines,
		},
	}
}
