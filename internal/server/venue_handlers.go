package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafaathzanar/playera-admin-portal/internal/models"
)

// VenueListQuery filters the venue listing
type VenueListQuery struct {
	PageQuery
	Search     string `form:"search"`
	VenueType  string `form:"venueType" binding:"omitempty,oneof=INDOOR OUTDOOR"`
	IsActive   *bool  `form:"isActive"`
	IsApproved *bool  `form:"isApproved"`
}

func (q VenueListQuery) scope(tx *gorm.DB) *gorm.DB {
	if q.Search != "" {
		like := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where("(LOWER(name) LIKE ? OR LOWER(location) LIKE ?)", like, like)
	}
	if q.VenueType != "" {
		tx = tx.Where("venue_type = ?", q.VenueType)
	}
	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	}
	if q.IsApproved != nil {
		tx = tx.Where("is_approved = ?", *q.IsApproved)
	}
	return tx
}

// OwnerListQuery filters the venue owner listing. role is accepted but
// always pinned to VENUE_OWNER.
type OwnerListQuery struct {
	PageQuery
	Search   string `form:"search"`
	Role     string `form:"role"`
	IsActive *bool  `form:"isActive"`
}

func (s *Server) listVenues(c *gin.Context) {
	var q VenueListQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := paginate[models.Venue](s.db, q.PageQuery, q.scope, "Owner")
	if err != nil {
		s.internalError(c, err, "Failed to list venues")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) getVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var venue models.Venue
	if !s.findOr404(c, s.db.Preload("Owner").Preload("Courts"), id, &venue, "Venue not found") {
		return
	}
	c.JSON(http.StatusOK, venue)
}

func (s *Server) approveVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ApprovalRequest
	if !bindJSON(c, &req) {
		return
	}

	var venue models.Venue
	if !s.findOr404(c, s.db, id, &venue, "Venue not found") {
		return
	}
	if err := s.db.Model(&venue).Update("is_approved", *req.Approved).Error; err != nil {
		s.internalError(c, err, "Failed to update venue approval")
		return
	}
	venue.IsApproved = *req.Approved

	s.logger.Info().Int64("venue_id", id).Bool("approved", *req.Approved).Str("reason", req.Reason).Msg("Venue approval updated")
	c.JSON(http.StatusOK, venue)
}

func (s *Server) updateVenueStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	var venue models.Venue
	if !s.findOr404(c, s.db, id, &venue, "Venue not found") {
		return
	}
	if err := s.db.Model(&venue).Update("is_active", *req.IsActive).Error; err != nil {
		s.internalError(c, err, "Failed to update venue status")
		return
	}
	venue.IsActive = *req.IsActive

	s.logger.Info().Int64("venue_id", id).Bool("is_active", *req.IsActive).Str("reason", req.Reason).Msg("Venue status updated")
	c.JSON(http.StatusOK, venue)
}

func (s *Server) deleteVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var venue models.Venue
	if !s.findOr404(c, s.db, id, &venue, "Venue not found") {
		return
	}

	var booked int64
	if err := s.db.Model(&models.Booking{}).Where("venue_id = ?", id).Count(&booked).Error; err != nil {
		s.internalError(c, err, "Failed to count bookings")
		return
	}
	if booked > 0 {
		respondMessage(c, http.StatusConflict, "Venue has bookings")
		return
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&models.Court{}).Error; err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
	if err != nil {
		s.internalError(c, err, "Failed to delete venue")
		return
	}

	s.logger.Info().Int64("venue_id", id).Msg("Venue deleted")
	c.Status(http.StatusNoContent)
}

func (s *Server) owners() *gorm.DB {
	return s.db.Where("role = ?", models.RoleVenueOwner)
}

func (s *Server) listVenueOwners(c *gin.Context) {
	var q OwnerListQuery
	if !bindQuery(c, &q) {
		return
	}

	users := UserListQuery{
		PageQuery: q.PageQuery,
		Search:    q.Search,
		Role:      models.RoleVenueOwner,
		IsActive:  q.IsActive,
	}
	page, err := paginate[models.User](s.db, users.PageQuery, users.scope)
	if err != nil {
		s.internalError(c, err, "Failed to list venue owners")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) getVenueOwner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var owner models.User
	if !s.findOr404(c, s.owners(), id, &owner, "Venue owner not found") {
		return
	}
	c.JSON(http.StatusOK, owner)
}

func (s *Server) updateVenueOwnerStatus(c *gin.Context) {
	s.setUserActive(c, s.owners(), "Venue owner not found")
}

func (s *Server) approveVenueOwner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ApprovalRequest
	if !bindJSON(c, &req) {
		return
	}

	var owner models.User
	if !s.findOr404(c, s.owners(), id, &owner, "Venue owner not found") {
		return
	}
	if err := s.db.Model(&owner).Update("is_approved", *req.Approved).Error; err != nil {
		s.internalError(c, err, "Failed to update venue owner approval")
		return
	}
	owner.IsApproved = req.Approved

	s.logger.Info().Int64("owner_id", id).Bool("approved", *req.Approved).Str("reason", req.Reason).Msg("Venue owner approval updated")
	c.JSON(http.StatusOK, owner)
}
