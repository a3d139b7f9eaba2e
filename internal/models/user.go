package models

import (
	"time"
)

// User represents a platform user as shown on the admin dashboard.
// LastLogin and SubExpiry hold raw values imported from the legacy
// document store and must go through dates.Normalize before use.
type User struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name,omitempty" db:"name"`
	DisplayName string    `json:"display_name,omitempty" db:"display_name"`
	Email       string    `json:"email" db:"email"`
	PhotoURL    string    `json:"photo_url,omitempty" db:"photo_url"`
	LastLogin   any       `json:"last_login,omitempty" db:"last_login"`
	PackageSub  string    `json:"package_sub,omitempty" db:"package_sub"`
	Coins       *int64    `json:"coins,omitempty" db:"coins"`
	Role        string    `json:"role,omitempty" db:"role"`
	Country     string    `json:"country,omitempty" db:"country"`
	SubExpiry   any       `json:"sub_expiry,omitempty" db:"sub_expiry"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
