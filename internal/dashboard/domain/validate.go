package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/morjahome/dashboard/pkg/totpx"
)

const (
	MinUsernameLen    = 3
	MaxUsernameLen    = 30
	MinPasswordLen    = 6
	MaxPasswordBytes  = 72 // bcrypt input limit
	MaxTitleLen       = 200
	MaxDescriptionLen = 500
	MaxCategoryLen    = 50
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ErrInvalidInput is matched by every *ValidationError.
var ErrInvalidInput = errors.New("invalid input")

type Violation struct {
	Field   string
	Message string
}

// ValidationError collects every rejected field of one request.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// Validator accumulates violations; Err returns nil when there are none.
type Validator struct {
	violations []Violation
}

func (v *Validator) Add(field, format string, args ...any) {
	v.violations = append(v.violations, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *Validator) Err() error {
	if len(v.violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.violations}
}

func (v *Validator) Username(s string) {
	n := utf8.RuneCountInString(s)
	switch {
	case n < MinUsernameLen || n > MaxUsernameLen:
		v.Add("username", "Username must be %d-%d characters long", MinUsernameLen, MaxUsernameLen)
	case !usernamePattern.MatchString(s):
		v.Add("username", "Username can only contain letters, numbers, hyphens, and underscores")
	}
}

func (v *Validator) Email(s string) {
	addr, err := mail.ParseAddress(s)
	// reject display-name forms like "Bob <bob@x>"
	if err != nil || addr.Address != s || !strings.Contains(s[strings.LastIndexByte(s, '@')+1:], ".") {
		v.Add("email", "Must be a valid email address")
	}
}

func (v *Validator) Password(s string) {
	if utf8.RuneCountInString(s) < MinPasswordLen {
		v.Add("password", "Password must be at least %d characters long", MinPasswordLen)
	}
	if len(s) > MaxPasswordBytes {
		v.Add("password", "Password must be at most %d bytes", MaxPasswordBytes)
	}
}

func (v *Validator) Required(field, s string) {
	if strings.TrimSpace(s) == "" {
		v.Add(field, "%s is required", strings.ToUpper(field[:1])+field[1:])
	}
}

func (v *Validator) Roles(roles []string) {
	for _, r := range roles {
		if !IsKnownRole(r) {
			v.Add("roles", "Unknown role %q", r)
		}
	}
}

func (v *Validator) TwoFactorCode(code string) {
	if err := totpx.CheckFormat(code); err != nil {
		v.Add("twoFactorCode", "Two-factor code must be %d digits", totpx.Digits)
	}
}

func (v *Validator) Title(s string) {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	if n < 1 || n > MaxTitleLen {
		v.Add("title", "Title must be 1-%d characters long", MaxTitleLen)
	}
}

func (v *Validator) URL(s string) {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		v.Add("url", "Must be a valid URL with http or https protocol")
	}
}

func (v *Validator) Description(s string) {
	if utf8.RuneCountInString(strings.TrimSpace(s)) > MaxDescriptionLen {
		v.Add("description", "Description must be %d characters or less", MaxDescriptionLen)
	}
}

func (v *Validator) Category(s string) {
	if utf8.RuneCountInString(strings.TrimSpace(s)) > MaxCategoryLen {
		v.Add("category", "Category must be %d characters or less", MaxCategoryLen)
	}
}
