package auth

// SessionData represents the authenticated admin behind a request
type SessionData struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the session belongs to an administrator
func (s *SessionData) IsAdmin() bool {
	return s.Role == "ADMIN"
}
