package auth

import (
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role allowed to use the admin API
const RoleAdmin = "ADMIN"

// AdminProfile is the authenticated admin as returned by the backend.
// It is replaced wholesale, never patched field by field.
type AdminProfile struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	IsActive    bool     `json:"isActive"`
	LastLogin   string   `json:"lastLogin,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// HasPermission reports whether the profile was granted the named permission
func (p *AdminProfile) HasPermission(permission string) bool {
	return slices.Contains(p.Permissions, permission)
}

// LastLoginTime parses LastLogin. The backend may omit the zone offset.
func (p *AdminProfile) LastLoginTime() (time.Time, bool) {
	return parseTimestamp(p.LastLogin)
}

func (p *AdminProfile) clone() *AdminProfile {
	cp := *p
	cp.Permissions = slices.Clone(p.Permissions)
	return &cp
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TokenExpiry reads the exp claim of a JWT bearer token without verifying it.
// The second return value is false for opaque tokens or tokens without exp.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
