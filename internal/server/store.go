package server

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafaathzanar/playera-admin-portal/internal/auth"
	"github.com/rafaathzanar/playera-admin-portal/internal/config"
	"github.com/rafaathzanar/playera-admin-portal/internal/models"
)

// Every connection to ":memory:" gets its own database, so the pool is
// pinned to a single connection.
const memoryDSN = ":memory:"

// initDatabase opens the sqlite database
func initDatabase(dsn string, zlog zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.New(
			log.New(os.Stderr, "\r\n", log.LstdFlags),
			logger.Config{
				LogLevel:                  logger.Error,
				IgnoreRecordNotFoundError: true,
				SlowThreshold:             200 * time.Millisecond,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := db.Exec("PRAGMA foreign_keys=1").Error; err != nil {
		zlog.Warn().Err(err).Msg("Failed to enable foreign keys")
	}

	return db, nil
}

// seed fills a fresh database with one admin and a small sample platform
func seed(db *gorm.DB, cfg *config.StubConfig) error {
	adminHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	userHash, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	approved, pending := true, false

	return db.Transaction(func(tx *gorm.DB) error {
		admin := &models.User{
			Name:         "PlayerA Admin",
			Email:        cfg.AdminEmail,
			PasswordHash: adminHash,
			Role:         models.RoleAdmin,
			Permissions:  []string{"users", "venues", "bookings", "payments", "reports", "settings"},
			IsActive:     true,
		}
		nimal := &models.User{Name: "Nimal Perera", Email: "nimal@example.com", Phone: "+94771234567", PasswordHash: userHash, Role: models.RoleCustomer, IsActive: true}
		sahan := &models.User{Name: "Sahan Jayasuriya", Email: "sahan@example.com", PasswordHash: userHash, Role: models.RoleCustomer, IsActive: false}
		kamala := &models.User{Name: "Kamala Silva", Email: "kamala@example.com", Phone: "+94712345678", PasswordHash: userHash, Role: models.RoleVenueOwner, IsActive: true, IsApproved: &approved}
		ruwan := &models.User{Name: "Ruwan Fernando", Email: "ruwan@example.com", PasswordHash: userHash, Role: models.RoleVenueOwner, IsActive: true, IsApproved: &pending}

		for _, u := range []*models.User{admin, nimal, sahan, kamala, ruwan} {
			if err := tx.Create(u).Error; err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
			}
		}

		arena := &models.Venue{
			Name:             "Colombo Arena",
			Address:          "12 Galle Road, Colombo 03",
			Location:         "Colombo",
			VenueType:        "INDOOR",
			MaxCapacity:      200,
			BasePrice:        2500,
			ContactNo:        "+94112345678",
			OwnerID:          kamala.ID,
			IsActive:         true,
			IsApproved:       true,
			ParkingAvailable: true,
			ShowerAvailable:  true,
			WifiAvailable:    true,
			Courts:           []models.Court{{Name: "Court 1", Sport: "Badminton"}, {Name: "Court 2", Sport: "Futsal"}},
		}
		turf := &models.Venue{
			Name:          "Galle Turf",
			Location:      "Galle",
			VenueType:     "OUTDOOR",
			BasePrice:     4000,
			OwnerID:       ruwan.ID,
			IsActive:      true,
			FoodAvailable: true,
			Courts:        []models.Court{{Name: "Main pitch", Sport: "Cricket"}},
		}
		for _, v := range []*models.Venue{arena, turf} {
			if err := tx.Create(v).Error; err != nil {
				return fmt.Errorf("failed to seed venue %s: %w", v.Name, err)
			}
		}

		today := time.Now().UTC().Format(time.DateOnly)
		bookings := []*models.Booking{
			{CustomerID: nimal.ID, VenueID: arena.ID, BookingDate: today, StartTime: "18:00", EndTime: "19:00", Duration: 1, TotalAmount: 2500, Status: models.BookingConfirmed,
				CourtBookings: []models.CourtBooking{{CourtID: arena.Courts[0].ID}}},
			{CustomerID: nimal.ID, VenueID: arena.ID, BookingDate: today, StartTime: "20:00", EndTime: "22:00", Duration: 2, TotalAmount: 5000, Status: models.BookingPending,
				CourtBookings: []models.CourtBooking{{CourtID: arena.Courts[1].ID}}},
			{CustomerID: sahan.ID, VenueID: turf.ID, BookingDate: "2024-01-15", StartTime: "09:00", EndTime: "12:00", Duration: 3, TotalAmount: 12000, Status: models.BookingCompleted,
				CourtBookings: []models.CourtBooking{{CourtID: turf.Courts[0].ID}}},
		}
		for _, b := range bookings {
			if err := tx.Create(b).Error; err != nil {
				return fmt.Errorf("failed to seed booking: %w", err)
			}
		}

		settings := &models.PlatformSettings{
			BookingFeePercent:       5,
			MaxAdvanceBookingDays:   30,
			CancellationWindowHours: 24,
			SupportEmail:            "support@playera.lk",
		}
		return tx.Create(settings).Error
	})
}
