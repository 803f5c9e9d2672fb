package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafaathzanar/playera-admin-portal/internal/models"
)

// UpdateSettingsRequest represents the request to update platform settings.
// Absent fields are left unchanged.
type UpdateSettingsRequest struct {
	MaintenanceMode         *bool    `json:"maintenanceMode"`
	BookingFeePercent       *float64 `json:"bookingFeePercent" binding:"omitempty,min=0,max=100"`
	MaxAdvanceBookingDays   *int     `json:"maxAdvanceBookingDays" binding:"omitempty,min=1"`
	CancellationWindowHours *int     `json:"cancellationWindowHours" binding:"omitempty,min=0"`
	SupportEmail            *string  `json:"supportEmail" binding:"omitempty,email"`
}

func (s *Server) loadSettings(c *gin.Context, settings *models.PlatformSettings) bool {
	if err := s.db.First(settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondMessage(c, http.StatusNotFound, "Settings not found")
			return false
		}
		s.internalError(c, err, "Failed to get settings")
		return false
	}
	return true
}

func (s *Server) getSettings(c *gin.Context) {
	var settings models.PlatformSettings
	if !s.loadSettings(c, &settings) {
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) updateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	var settings models.PlatformSettings
	if !s.loadSettings(c, &settings) {
		return
	}

	updates := map[string]any{}
	if req.MaintenanceMode != nil {
		updates["maintenance_mode"] = *req.MaintenanceMode
		settings.MaintenanceMode = *req.MaintenanceMode
	}
	if req.BookingFeePercent != nil {
		updates["booking_fee_percent"] = *req.BookingFeePercent
		settings.BookingFeePercent = *req.BookingFeePercent
	}
	if req.MaxAdvanceBookingDays != nil {
		updates["max_advance_booking_days"] = *req.MaxAdvanceBookingDays
		settings.MaxAdvanceBookingDays = *req.MaxAdvanceBookingDays
	}
	if req.CancellationWindowHours != nil {
		updates["cancellation_window_hours"] = *req.CancellationWindowHours
		settings.CancellationWindowHours = *req.CancellationWindowHours
	}
	if req.SupportEmail != nil {
		updates["support_email"] = *req.SupportEmail
		settings.SupportEmail = *req.SupportEmail
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.PlatformSettings{}).Where("id = ?", settings.ID).Updates(updates).Error; err != nil {
			s.internalError(c, err, "Failed to update settings")
			return
		}
		s.logger.Info().Int("fields", len(updates)).Msg("Platform settings updated")
	}

	c.JSON(http.StatusOK, settings)
}
