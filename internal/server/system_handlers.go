package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafaathzanar/playera-admin-portal/internal/models"
)

// DashboardStats are the headline numbers of the admin dashboard
type DashboardStats struct {
	TotalUsers      int64   `json:"totalUsers"`
	TotalVenues     int64   `json:"totalVenues"`
	TotalBookings   int64   `json:"totalBookings"`
	TotalRevenue    float64 `json:"totalRevenue"`
	ActiveUsers     int64   `json:"activeUsers"`
	PendingVenues   int64   `json:"pendingVenues"`
	PendingBookings int64   `json:"pendingBookings"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	MonthlyBookings int64   `json:"monthlyBookings"`
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "online",
		"timestamp": time.Now().UTC(),
		"service":   "playera-admin-stub",
	})
}

func (s *Server) getDashboardStats(c *gin.Context) {
	var stats DashboardStats
	monthStart := time.Now().UTC().Format("2006-01") + "-01"
	revenue := "COALESCE(SUM(total_amount), 0)"

	queries := []struct {
		name string
		run  func() error
	}{
		{"users", func() error { return s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error }},
		{"active users", func() error {
			return s.db.Model(&models.User{}).Where("is_active = ?", true).Count(&stats.ActiveUsers).Error
		}},
		{"venues", func() error { return s.db.Model(&models.Venue{}).Count(&stats.TotalVenues).Error }},
		{"pending venues", func() error {
			return s.db.Model(&models.Venue{}).Where("is_approved = ?", false).Count(&stats.PendingVenues).Error
		}},
		{"bookings", func() error { return s.db.Model(&models.Booking{}).Count(&stats.TotalBookings).Error }},
		{"pending bookings", func() error {
			return s.db.Model(&models.Booking{}).Where("status = ?", models.BookingPending).Count(&stats.PendingBookings).Error
		}},
		{"monthly bookings", func() error {
			return s.db.Model(&models.Booking{}).Where("booking_date >= ?", monthStart).Count(&stats.MonthlyBookings).Error
		}},
		{"revenue", func() error {
			return s.db.Model(&models.Booking{}).Where("status <> ?", models.BookingCancelled).
				Select(revenue).Scan(&stats.TotalRevenue).Error
		}},
		{"monthly revenue", func() error {
			return s.db.Model(&models.Booking{}).Where("status <> ? AND booking_date >= ?", models.BookingCancelled, monthStart).
				Select(revenue).Scan(&stats.MonthlyRevenue).Error
		}},
	}

	for _, q := range queries {
		if err := q.run(); err != nil {
			s.internalError(c, err, "Failed to count "+q.name)
			return
		}
	}

	c.JSON(http.StatusOK, stats)
}
