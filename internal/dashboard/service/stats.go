package service

import (
	"context"
	"runtime"
	"slices"
	"time"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/store"
)

const dashboardListSize = 5

// StatsService builds the dashboard overview, the status probe and the
// admin statistics page.
type StatsService struct {
	Store     store.Store
	Clock     Clock
	StartedAt time.Time
}

func (s *StatsService) uptime() float64 {
	return s.Clock.now().Sub(s.StartedAt).Seconds()
}

// Dashboard summarizes actor's own links and the modules their roles unlock.
func (s *StatsService) Dashboard(ctx context.Context, actor domain.Account) (domain.Dashboard, error) {
	own, err := s.Store.Links().ListLinksByOwner(ctx, actor.ID)
	if err != nil {
		return domain.Dashboard{}, err
	}
	stats := domain.ComputeLinkStats(own)

	recent := own[:min(len(own), dashboardListSize)]

	popular := filterLinks(own, func(l domain.Link) bool { return l.ClickCount > 0 })
	slices.SortStableFunc(popular, func(a, b domain.Link) int {
		switch {
		case a.ClickCount > b.ClickCount:
			return -1
		case a.ClickCount < b.ClickCount:
			return 1
		}
		return 0
	})
	popular = popular[:min(len(popular), dashboardListSize)]

	roles := actor.Roles
	if roles == nil {
		roles = []string{}
	}
	return domain.Dashboard{
		User: domain.DashboardUser{
			Username:  actor.Username,
			Roles:     roles,
			LastLogin: actor.LastLogin,
		},
		Stats: domain.DashboardStats{
			TotalLinks:  stats.Total,
			TotalClicks: stats.TotalClicks,
			PublicLinks: stats.Public,
		},
		RecentLinks:      recent,
		PopularLinks:     popular,
		AvailableModules: domain.AvailableModules(actor),
	}, nil
}

// Status is visible to any signed-in account; admins also get counts.
func (s *StatsService) Status(ctx context.Context, actor domain.Account) (domain.Status, error) {
	st := domain.Status{
		Server: domain.ServerStatus{
			UptimeSeconds: s.uptime(),
			GoVersion:     runtime.Version(),
			Platform:      runtime.GOOS + "/" + runtime.GOARCH,
		},
		Timestamp: s.Clock.now(),
	}
	if !actor.IsAdmin() {
		return st, nil
	}

	accounts, err := s.Store.Accounts().ListAccounts(ctx)
	if err != nil {
		return domain.Status{}, err
	}
	links, err := s.Store.Links().ListLinks(ctx)
	if err != nil {
		return domain.Status{}, err
	}
	us, ls := domain.ComputeUserStats(accounts), domain.ComputeLinkStats(links)
	st.Admin = &domain.AdminStatus{
		TotalUsers:  us.Total,
		ActiveUsers: us.Active,
		TotalLinks:  ls.Total,
		PublicLinks: ls.Public,
	}
	return st, nil
}

// System aggregates every account and link plus process runtime figures.
func (s *StatsService) System(ctx context.Context) (domain.SystemStats, error) {
	accounts, err := s.Store.Accounts().ListAccounts(ctx)
	if err != nil {
		return domain.SystemStats{}, err
	}
	links, err := s.Store.Links().ListLinks(ctx)
	if err != nil {
		return domain.SystemStats{}, err
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return domain.SystemStats{
		Users: domain.ComputeUserStats(accounts),
		Links: domain.ComputeLinkStats(links),
		System: domain.RuntimeStats{
			UptimeSeconds: s.uptime(),
			Memory: domain.MemoryStats{
				Alloc:      m.Alloc,
				TotalAlloc: m.TotalAlloc,
				Sys:        m.Sys,
				HeapInUse:  m.HeapInuse,
				NumGC:      m.NumGC,
			},
			GoVersion:  runtime.Version(),
			Platform:   runtime.GOOS + "/" + runtime.GOARCH,
			Goroutines: runtime.NumGoroutine(),
		},
	}, nil
}
