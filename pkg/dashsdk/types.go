package dashsdk

import "time"

// ============================================================================
// Entities
// ============================================================================

// User is an account as the API exposes it. Password hashes and TOTP
// secrets never leave the server.
type User struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	Roles            []string   `json:"roles"`
	TwoFactorEnabled bool       `json:"twoFactorEnabled"`
	IsActive         bool       `json:"isActive"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	LastLogin        *time.Time `json:"lastLogin"`
}

type Link struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	OwnerID     string     `json:"ownerId"`
	IsPublic    bool       `json:"isPublic"`
	ClickCount  int64      `json:"clickCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	LastClicked *time.Time `json:"lastClicked"`
}

// Module is a dashboard tile unlocked by a role.
type Module struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Path        string `json:"path"`
	Icon        string `json:"icon"`
}

// ============================================================================
// Generic envelopes
// ============================================================================

type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError is one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

// ============================================================================
// Auth
// ============================================================================

type LoginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	TwoFactorCode string `json:"twoFactorCode,omitempty"`
}

type LoginResponse struct {
	Message   string    `json:"message"`
	User      User      `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RegisterRequest creates an account. IsActive defaults to true when omitted.
type RegisterRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles,omitempty"`
	IsActive *bool    `json:"isActive,omitempty"`
}

type UserResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

type TwoFactorSetupResponse struct {
	Message        string `json:"message"`
	Secret         string `json:"secret"`
	QRCode         string `json:"qrCode"`
	ManualEntryKey string `json:"manualEntryKey"`
	OTPAuthURL     string `json:"otpauthUrl"`
}

type TwoFactorCodeRequest struct {
	TwoFactorCode string `json:"twoFactorCode"`
}

type DisableTwoFactorRequest struct {
	Password string `json:"password"`
}

// ============================================================================
// Links
// ============================================================================

type CreateLinkRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	IsPublic    bool   `json:"isPublic,omitempty"`
}

// UpdateLinkRequest is a partial update; nil fields are left alone. OwnerID
// is honoured for admins only.
type UpdateLinkRequest struct {
	Title       *string `json:"title,omitempty"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
	OwnerID     *string `json:"ownerId,omitempty"`
}

type LinkResponse struct {
	Message string `json:"message,omitempty"`
	Link    Link   `json:"link"`
}

type LinksResponse struct {
	Links []Link `json:"links"`
}

type ClickResponse struct {
	Message    string `json:"message"`
	URL        string `json:"url"`
	ClickCount int64  `json:"clickCount"`
}

// ============================================================================
// Dashboard
// ============================================================================

type DashboardUser struct {
	Username  string     `json:"username"`
	Roles     []string   `json:"roles"`
	LastLogin *time.Time `json:"lastLogin"`
}

type DashboardStats struct {
	TotalLinks  int   `json:"totalLinks"`
	TotalClicks int64 `json:"totalClicks"`
	PublicLinks int   `json:"publicLinks"`
}

type DashboardResponse struct {
	User             DashboardUser  `json:"user"`
	Stats            DashboardStats `json:"stats"`
	RecentLinks      []Link         `json:"recentLinks"`
	PopularLinks     []Link         `json:"popularLinks"`
	AvailableModules []Module       `json:"availableModules"`
}

type ServerStatus struct {
	Uptime    float64 `json:"uptime"`
	GoVersion string  `json:"goVersion"`
	Platform  string  `json:"platform"`
}

type AdminStatus struct {
	TotalUsers  int `json:"totalUsers"`
	ActiveUsers int `json:"activeUsers"`
	TotalLinks  int `json:"totalLinks"`
	PublicLinks int `json:"publicLinks"`
}

// StatusResponse carries Admin only for admin callers.
type StatusResponse struct {
	Server    ServerStatus `json:"server"`
	Timestamp time.Time    `json:"timestamp"`
	Admin     *AdminStatus `json:"admin,omitempty"`
}

// ============================================================================
// Admin
// ============================================================================

type UsersResponse struct {
	Users []User `json:"users"`
}

// UpdateUserRequest is a partial update; a new password is hashed server side.
type UpdateUserRequest struct {
	Username *string   `json:"username,omitempty"`
	Email    *string   `json:"email,omitempty"`
	Password *string   `json:"password,omitempty"`
	Roles    *[]string `json:"roles,omitempty"`
	IsActive *bool     `json:"isActive,omitempty"`
}

type UserStats struct {
	Total   int            `json:"total"`
	Active  int            `json:"active"`
	With2FA int            `json:"with2FA"`
	ByRole  map[string]int `json:"byRole"`
}

type LinkStats struct {
	Total       int            `json:"total"`
	Public      int            `json:"public"`
	TotalClicks int64          `json:"totalClicks"`
	ByCategory  map[string]int `json:"byCategory"`
}

type MemoryStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	HeapInUse  uint64 `json:"heapInUse"`
	NumGC      uint32 `json:"numGC"`
}

type RuntimeStats struct {
	Uptime     float64     `json:"uptime"`
	Memory     MemoryStats `json:"memory"`
	GoVersion  string      `json:"goVersion"`
	Platform   string      `json:"platform"`
	Goroutines int         `json:"goroutines"`
}

type SystemStatsResponse struct {
	Users  UserStats    `json:"users"`
	Links  LinkStats    `json:"links"`
	System RuntimeStats `json:"system"`
}
