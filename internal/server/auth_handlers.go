package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafaathzanar/playera-admin-portal/internal/auth"
	"github.com/rafaathzanar/playera-admin-portal/internal/models"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// login authenticates an administrator with email and password.
// Bad credentials answer 400; 401 is reserved for rejected tokens.
func (s *Server) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondMessage(c, http.StatusBadRequest, "Invalid email or password")
			return
		}
		s.internalError(c, err, "Failed to find user")
		return
	}

	if err := auth.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid email or password")
		return
	}

	if user.Role != models.RoleAdmin {
		respondMessage(c, http.StatusForbidden, "Admin access required")
		return
	}
	if !user.IsActive {
		respondMessage(c, http.StatusForbidden, "Account is disabled")
		return
	}

	now := time.Now().UTC()
	if err := s.db.Model(&user).Update("last_login", now).Error; err != nil {
		s.internalError(c, err, "Failed to record login")
		return
	}
	user.LastLogin = &now

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		s.internalError(c, err, "Failed to generate token")
		return
	}

	s.logger.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("Admin logged in")

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  &user,
	})
}

// getCurrentUser returns the authenticated administrator
func (s *Server) getCurrentUser(c *gin.Context) {
	sessionData, ok := requireSession(c)
	if !ok {
		return
	}

	var user models.User
	if !s.findOr404(c, s.db, sessionData.UserID, &user, "User not found") {
		return
	}

	c.JSON(http.StatusOK, user)
}
