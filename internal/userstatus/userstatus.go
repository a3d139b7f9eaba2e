// Package userstatus derives display status from user records.
//
// Everything here is a pure function of the user record and the current
// time. Formatting of instants is left to the caller.
package userstatus

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/collections-admin-api/internal/dates"
	"github.com/collections-admin-api/internal/models"
)

// Category is the badge color category of a subscription package
type Category string

const (
	CategoryPrimary   Category = "primary"
	CategoryWarning   Category = "warning"
	CategoryInfo      Category = "info"
	CategorySecondary Category = "secondary"
)

// Action is an operation the dashboard offers on a user card
type Action string

const (
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

const (
	// DefaultActiveDays is the login window, in days, within which a user counts as active
	DefaultActiveDays = 30
	DefaultRole       = "user"
	DefaultCountry    = "Nigeria"
)

// Deriver computes activity from a clock and a login window
type Deriver struct {
	now        func() time.Time
	activeDays int
}

// Option configures a Deriver
type Option func(*Deriver)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(d *Deriver) {
		d.now = now
	}
}

// WithActiveDays changes the activity window; non-positive values are ignored
func WithActiveDays(days int) Option {
	return func(d *Deriver) {
		if days > 0 {
			d.activeDays = days
		}
	}
}

// New creates a Deriver using time.Now and a 30 day window
func New(opts ...Option) *Deriver {
	d := &Deriver{
		now:        time.Now,
		activeDays: DefaultActiveDays,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// IsActive reports whether the user's last login is strictly later than
// now minus the activity window. The window is evaluated on every call.
// Missing or unparseable logins are never active.
func (d *Deriver) IsActive(u *models.User) bool {
	lastLogin, ok := LastActive(u)
	if !ok {
		return false
	}
	cutoff := d.now().AddDate(0, 0, -d.activeDays)
	return lastLogin.After(cutoff)
}

// PackageColorCategory maps a subscription package name to its badge category
func PackageColorCategory(packageSub string) Category {
	switch strings.ToLower(packageSub) {
	case "premium", "gold":
		return CategoryWarning
	case "silver":
		return CategoryInfo
	case "bronze":
		return CategorySecondary
	default:
		return CategoryPrimary
	}
}

// LastActive returns the normalized last login
func LastActive(u *models.User) (time.Time, bool) {
	if u == nil {
		return time.Time{}, false
	}
	return dates.Normalize(u.LastLogin)
}

// SubscriptionExpiry returns the normalized subscription expiry
func SubscriptionExpiry(u *models.User) (time.Time, bool) {
	if u == nil {
		return time.Time{}, false
	}
	return dates.Normalize(u.SubExpiry)
}

// DisplayName prefers the user's name over the display name
func DisplayName(u *models.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.DisplayName
}

// Initial is the upper-cased first letter used in place of a missing photo
func Initial(u *models.User) string {
	name := DisplayName(u)
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// Coins returns the balance, 0 when absent
func Coins(u *models.User) int64 {
	if u.Coins == nil {
		return 0
	}
	return *u.Coins
}

// Role returns the role, DefaultRole when absent
func Role(u *models.User) string {
	if u.Role == "" {
		return DefaultRole
	}
	return u.Role
}

// Country returns the country, DefaultCountry when absent
func Country(u *models.User) string {
	if u.Country == "" {
		return DefaultCountry
	}
	return u.Country
}

// Card is everything the dashboard needs to render one user
type Card struct {
	ID                 string     `json:"id"`
	DisplayName        string     `json:"display_name"`
	Initial            string     `json:"initial"`
	Email              string     `json:"email"`
	PhotoURL           string     `json:"photo_url,omitempty"`
	PackageSub         string     `json:"package_sub"`
	PackageCategory    Category   `json:"package_category"`
	Coins              int64      `json:"coins"`
	Role               string     `json:"role"`
	Country            string     `json:"country"`
	Active             bool       `json:"active"`
	LastActive         *time.Time `json:"last_active"`
	SubscriptionExpiry *time.Time `json:"subscription_expiry"`
	Actions            []Action   `json:"actions"`
}

// Card derives the full card for u. Missing instants are nil.
func (d *Deriver) Card(u *models.User) Card {
	c := Card{
		ID:              u.ID,
		DisplayName:     DisplayName(u),
		Initial:         Initial(u),
		Email:           u.Email,
		PhotoURL:        u.PhotoURL,
		PackageSub:      u.PackageSub,
		PackageCategory: PackageColorCategory(u.PackageSub),
		Coins:           Coins(u),
		Role:            Role(u),
		Country:         Country(u),
		Active:          d.IsActive(u),
		Actions:         []Action{ActionView, ActionEdit, ActionDelete},
	}
	if t, ok := LastActive(u); ok {
		c.LastActive = &t
	}
	if t, ok := SubscriptionExpiry(u); ok {
		c.SubscriptionExpiry = &t
	}
	return c
}
