package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafaathzanar/playera-admin-portal/internal/models"
)

var bookingAssociations = []string{"Customer", "CourtBookings.Court.Venue"}

// BookingListQuery filters the booking listing
type BookingListQuery struct {
	PageQuery
	Status     string `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
	DateFrom   string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	CustomerID int64  `form:"customerId"`
	VenueID    int64  `form:"venueId"`
}

func (q BookingListQuery) scope(tx *gorm.DB) *gorm.DB {
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.DateFrom != "" {
		tx = tx.Where("booking_date >= ?", q.DateFrom)
	}
	if q.DateTo != "" {
		tx = tx.Where("booking_date <= ?", q.DateTo)
	}
	if q.CustomerID != 0 {
		tx = tx.Where("customer_id = ?", q.CustomerID)
	}
	if q.VenueID != 0 {
		tx = tx.Where("venue_id = ?", q.VenueID)
	}
	return tx
}

// CancelRequest cancels a booking
type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (s *Server) listBookings(c *gin.Context) {
	var q BookingListQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := paginate[models.Booking](s.db, q.PageQuery, q.scope, bookingAssociations...)
	if err != nil {
		s.internalError(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) findBooking(c *gin.Context, id int64, booking *models.Booking) bool {
	tx := s.db
	for _, assoc := range bookingAssociations {
		tx = tx.Preload(assoc)
	}
	return s.findOr404(c, tx, id, booking, "Booking not found")
}

func (s *Server) getBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var booking models.Booking
	if !s.findBooking(c, id, &booking) {
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (s *Server) cancelBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CancelRequest
	if !bindJSON(c, &req) {
		return
	}

	var booking models.Booking
	if !s.findBooking(c, id, &booking) {
		return
	}

	switch booking.Status {
	case models.BookingCancelled:
		respondMessage(c, http.StatusConflict, "Booking is already cancelled")
		return
	case models.BookingCompleted:
		respondMessage(c, http.StatusConflict, "Completed bookings cannot be cancelled")
		return
	}

	err := s.db.Model(&models.Booking{}).Where("id = ?", id).Updates(map[string]any{
		"status":              models.BookingCancelled,
		"cancellation_reason": req.Reason,
	}).Error
	if err != nil {
		s.internalError(c, err, "Failed to cancel booking")
		return
	}
	booking.Status = models.BookingCancelled
	booking.CancellationReason = req.Reason

	s.logger.Info().Int64("booking_id", id).Str("reason", req.Reason).Msg("Booking cancelled")
	c.JSON(http.StatusOK, booking)
}
