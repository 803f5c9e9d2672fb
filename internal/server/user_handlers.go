package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafaathzanar/playera-admin-portal/internal/models"
)

// UserListQuery filters the user listing
type UserListQuery struct {
	PageQuery
	Search   string `form:"search"`
	Role     string `form:"role" binding:"omitempty,oneof=ADMIN CUSTOMER VENUE_OWNER"`
	IsActive *bool  `form:"isActive"`
}

func (q UserListQuery) scope(tx *gorm.DB) *gorm.DB {
	if q.Search != "" {
		like := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where("(LOWER(name) LIKE ? OR LOWER(email) LIKE ?)", like, like)
	}
	if q.Role != "" {
		tx = tx.Where("role = ?", q.Role)
	}
	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	}
	return tx
}

// StatusRequest activates or deactivates a record
type StatusRequest struct {
	IsActive *bool  `json:"isActive" binding:"required"`
	Reason   string `json:"reason"`
}

// ApprovalRequest approves or rejects a record
type ApprovalRequest struct {
	Approved *bool  `json:"approved" binding:"required"`
	Reason   string `json:"reason"`
}

func (s *Server) listUsers(c *gin.Context) {
	var q UserListQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := paginate[models.User](s.db, q.PageQuery, q.scope)
	if err != nil {
		s.internalError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) getUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var user models.User
	if !s.findOr404(c, s.db, id, &user, "User not found") {
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) updateUserStatus(c *gin.Context) {
	s.setUserActive(c, s.db, "User not found")
}

// setUserActive applies a StatusRequest to the user selected by tx and :id
func (s *Server) setUserActive(c *gin.Context, tx *gorm.DB, notFound string) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	sessionData, ok := requireSession(c)
	if !ok {
		return
	}
	if id == sessionData.UserID && !*req.IsActive {
		respondMessage(c, http.StatusBadRequest, "Cannot deactivate yourself")
		return
	}

	var user models.User
	if !s.findOr404(c, tx, id, &user, notFound) {
		return
	}
	if err := s.db.Model(&user).Update("is_active", *req.IsActive).Error; err != nil {
		s.internalError(c, err, "Failed to update user status")
		return
	}
	user.IsActive = *req.IsActive

	s.logger.Info().
		Int64("user_id", id).
		Bool("is_active", *req.IsActive).
		Str("reason", req.Reason).
		Int64("updated_by", sessionData.UserID).
		Msg("User status updated")

	c.JSON(http.StatusOK, user)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	sessionData, ok := requireSession(c)
	if !ok {
		return
	}
	if id == sessionData.UserID {
		respondMessage(c, http.StatusBadRequest, "Cannot delete yourself")
		return
	}

	var user models.User
	if !s.findOr404(c, s.db, id, &user, "User not found") {
		return
	}

	var owned int64
	if err := s.db.Model(&models.Venue{}).Where("owner_id = ?", id).Count(&owned).Error; err != nil {
		s.internalError(c, err, "Failed to count venues")
		return
	}
	if owned > 0 {
		respondMessage(c, http.StatusConflict, "User still owns venues")
		return
	}

	var booked int64
	if err := s.db.Model(&models.Booking{}).Where("customer_id = ?", id).Count(&booked).Error; err != nil {
		s.internalError(c, err, "Failed to count bookings")
		return
	}
	if booked > 0 {
		respondMessage(c, http.StatusConflict, "User has bookings")
		return
	}

	if err := s.db.Delete(&user).Error; err != nil {
		s.internalError(c, err, "Failed to delete user")
		return
	}

	s.logger.Info().
		Int64("user_id", id).
		Int64("deleted_by", sessionData.UserID).
		Msg("User deleted")

	c.Status(http.StatusNoContent)
}

func (s *Server) getUserAnalytics(c *gin.Context) {
	var rows []struct {
		Role     string
		IsActive bool
		Count    int64
	}
	err := s.db.Model(&models.User{}).
		Select("role, is_active, COUNT(*) AS count").
		Group("role, is_active").
		Scan(&rows).Error
	if err != nil {
		s.internalError(c, err, "Failed to load user analytics")
		return
	}

	var total, active int64
	byRole := map[string]int64{}
	for _, r := range rows {
		total += r.Count
		byRole[r.Role] += r.Count
		if r.IsActive {
			active += r.Count
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":    total,
		"activeUsers":   active,
		"inactiveUsers": total - active,
		"usersByRole":   byRole,
	})
}
