package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rafaathzanar/playera-admin-portal/internal/auth"
	"github.com/rafaathzanar/playera-admin-portal/internal/models"
)

const (
	bearerPrefix = "Bearer "
	sessionKey   = "playera.session"
)

var (
	ErrMissingAuthHeader = errors.New("missing authorization header")
	ErrInvalidAuthFormat = errors.New("invalid authorization header format")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidToken      = errors.New("invalid token")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserDisabled      = errors.New("user disabled")
	ErrNoSession         = errors.New("no session")
	ErrNotAdmin          = errors.New("not an admin")
)

// headerMessages are the bodies sent back for a malformed Authorization header
var headerMessages = map[error]string{
	ErrMissingAuthHeader: "Missing authorization header",
	ErrInvalidAuthFormat: "Invalid authorization header format",
	ErrEmptyToken:        "Empty token",
}

// GetSessionData returns the account resolved by JWTAuthMiddleware
func GetSessionData(c *gin.Context) (*auth.SessionData, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}

	sessionData, ok := value.(*auth.SessionData)
	return sessionData, ok && sessionData != nil
}

// requireSession is GetSessionData for handlers: a missing session answers 401
func requireSession(c *gin.Context) (*auth.SessionData, bool) {
	sessionData, ok := GetSessionData(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Unauthorized")
	}
	return sessionData, ok
}

func bearerToken(header string) (string, error) {
	switch {
	case header == "":
		return "", ErrMissingAuthHeader
	case !strings.HasPrefix(header, bearerPrefix):
		return "", ErrInvalidAuthFormat
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

// respondMessage writes the {"message": ...} error body the console expects
func respondMessage(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"message": message})
}

func respondWithError(c *gin.Context, log zerolog.Logger, statusCode int, err error, message string) {
	log.Warn().Err(err).Str("path", c.FullPath()).Int("status", statusCode).Msg(message)
	respondMessage(c, statusCode, message)
}

// JWTAuthMiddleware resolves the bearer token to an active account.
// Every rejection is a 401 so the client ends its session.
func JWTAuthMiddleware(db *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			respondWithError(c, log, http.StatusUnauthorized, err, headerMessages[err])
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			respondWithError(c, log, http.StatusUnauthorized, errors.Join(ErrInvalidToken, err), "Invalid or expired token")
			return
		}

		var account models.User
		if err := models.FindByID(db, claims.UserID, &account); err != nil {
			respondWithError(c, log, http.StatusUnauthorized, errors.Join(ErrUserNotFound, err), "User not found")
			return
		}
		if !account.IsActive {
			respondWithError(c, log, http.StatusUnauthorized, ErrUserDisabled, "Account is disabled")
			return
		}

		c.Set(sessionKey, &auth.SessionData{
			UserID: account.ID,
			Email:  account.Email,
			Role:   account.Role,
		})
		c.Next()
	}
}

// AdminOnlyMiddleware lets only ADMIN accounts past. Runs after JWTAuthMiddleware.
func AdminOnlyMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionData, ok := GetSessionData(c)
		if !ok {
			respondWithError(c, log, http.StatusUnauthorized, ErrNoSession, "Unauthorized")
			return
		}
		if !sessionData.IsAdmin() {
			respondWithError(c, log, http.StatusForbidden, ErrNotAdmin, "Admin access required")
			return
		}
		c.Next()
	}
}
