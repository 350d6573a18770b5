package domain

import "time"

type UserStats struct {
	Total   int
	Active  int
	With2FA int
	ByRole  map[string]int
}

type LinkStats struct {
	Total       int
	Public      int
	TotalClicks int64
	ByCategory  map[string]int
}

type MemoryStats struct {
	Alloc      uint64
	TotalAlloc uint64
	Sys        uint64
	HeapInUse  uint64
	NumGC      uint32
}

type RuntimeStats struct {
	UptimeSeconds float64
	Memory        MemoryStats
	GoVersion     string
	Platform      string
	Goroutines    int
}

type SystemStats struct {
	Users  UserStats
	Links  LinkStats
	System RuntimeStats
}

// UncategorizedLabel buckets links whose category is empty.
const UncategorizedLabel = "uncategorized"

// ComputeUserStats aggregates accounts.
func ComputeUserStats(accounts []Account) UserStats {
	s := UserStats{ByRole: map[string]int{}}
	for _, a := range accounts {
		s.Total++
		if a.IsActive {
			s.Active++
		}
		if a.TwoFactorEnabled {
			s.With2FA++
		}
		for _, r := range a.Roles {
			s.ByRole[r]++
		}
	}
	return s
}

func ComputeLinkStats(links []Link) LinkStats {
	s := LinkStats{ByCategory: map[string]int{}}
	for _, l := range links {
		s.Total++
		if l.IsPublic {
			s.Public++
		}
		s.TotalClicks += l.ClickCount
		cat := l.Category
		if cat == "" {
			cat = UncategorizedLabel
		}
		s.ByCategory[cat]++
	}
	return s
}

// Module is a dashboard tile a role unlocks.
type Module struct {
	Name        string
	Description string
	Path        string
	Icon        string
}

var moduleCatalog = []struct {
	role   string
	module Module
}{
	{RoleLinks, Module{"Links", "Manage and organize your links", "/links", "link"}},
	{RolePhotos, Module{"Photos", "Photo gallery and management", "/photos", "image"}},
	{RoleMinecraft, Module{"Minecraft", "Minecraft server management", "/minecraft", "server"}},
	{RoleVaultwarden, Module{"Vaultwarden", "Password manager access", "/vaultwarden", "shield"}},
	{RoleAdmin, Module{"Admin", "System administration", "/admin", "settings"}},
}

// AvailableModules lists the tiles a can open, in catalogue order.
func AvailableModules(a Account) []Module {
	out := []Module{}
	for _, m := range moduleCatalog {
		if HasAnyRole(a, m.role) {
			out = append(out, m.module)
		}
	}
	return out
}

type DashboardUser struct {
	Username  string
	Roles     []string
	LastLogin *time.Time
}

type DashboardStats struct {
	TotalLinks  int
	TotalClicks int64
	PublicLinks int
}

type Dashboard struct {
	User             DashboardUser
	Stats            DashboardStats
	RecentLinks      []Link
	PopularLinks     []Link
	AvailableModules []Module
}

type ServerStatus struct {
	UptimeSeconds float64
	GoVersion     string
	Platform      string
}

type AdminStatus struct {
	TotalUsers  int
	ActiveUsers int
	TotalLinks  int
	PublicLinks int
}

type Status struct {
	Server    ServerStatus
	Timestamp time.Time
	Admin     *AdminStatus
}
