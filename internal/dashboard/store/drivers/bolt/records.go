package bolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
)

// accountRecord is the persisted JSON shape of an account.
type accountRecord struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"password_hash"`
	Roles            []string   `json:"roles"`
	TwoFactorSecret  *string    `json:"two_factor_secret,omitempty"`
	TwoFactorEnabled bool       `json:"two_factor_enabled"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
}

type linkRecord struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	OwnerID     string     `json:"owner_id"`
	IsPublic    bool       `json:"is_public"`
	ClickCount  int64      `json:"click_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastClicked *time.Time `json:"last_clicked,omitempty"`
}

func encodeAccount(a domain.Account) ([]byte, error) {
	return json.Marshal(accountRecord(a))
}

func decodeAccount(data []byte) (domain.Account, error) {
	var rec accountRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Account{}, fmt.Errorf("bolt: decode account: %w", err)
	}
	a := domain.Account(rec)
	if a.Roles == nil {
		a.Roles = []string{}
	}
	return a, nil
}

func encodeLink(l domain.Link) ([]byte, error) {
	return json.Marshal(linkRecord(l))
}

func decodeLink(data []byte) (domain.Link, error) {
	var rec linkRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Link{}, fmt.Errorf("bolt: decode link: %w", err)
	}
	return domain.Link(rec), nil
}
