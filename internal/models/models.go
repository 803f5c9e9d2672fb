package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles
const (
	RoleAdmin      = "ADMIN"
	RoleCustomer   = "CUSTOMER"
	RoleVenueOwner = "VENUE_OWNER"
)

// Booking statuses
const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
	BookingCompleted = "COMPLETED"
)

// BaseModel provides the numeric id and timestamps shared by all models
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// User is any account on the platform: admins, customers and venue owners
type User struct {
	BaseModel
	Name         string     `json:"name"`
	Email        string     `json:"email" gorm:"unique;not null"`
	Phone        string     `json:"phone,omitempty"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         string     `json:"role" gorm:"not null;index"`
	Permissions  []string   `json:"permissions,omitempty" gorm:"serializer:json"`
	IsActive     bool       `json:"isActive" gorm:"not null"`
	IsApproved   *bool      `json:"isApproved,omitempty"` // venue owners only
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

// Venue is a sports venue listed by an owner
type Venue struct {
	BaseModel
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description,omitempty"`
	Address     string  `json:"address,omitempty"`
	Location    string  `json:"location"`
	VenueType   string  `json:"venueType"` // INDOOR, OUTDOOR
	MaxCapacity int     `json:"maxCapacity,omitempty"`
	BasePrice   float64 `json:"basePrice,omitempty"`
	ContactNo   string  `json:"contactNo,omitempty"`
	Email       string  `json:"email,omitempty"`
	OwnerID     int64   `json:"ownerId" gorm:"not null;index"`
	Owner       *User   `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	IsActive    bool    `json:"isActive" gorm:"not null"`
	IsApproved  bool    `json:"isApproved" gorm:"not null"`

	ParkingAvailable       bool `json:"parkingAvailable"`
	FoodAvailable          bool `json:"foodAvailable"`
	ChangingRoomsAvailable bool `json:"changingRoomsAvailable"`
	ShowerAvailable        bool `json:"showerAvailable"`
	WifiAvailable          bool `json:"wifiAvailable"`

	Courts []Court `json:"courts,omitempty"`
}

// Court is a bookable playing area inside a venue
type Court struct {
	BaseModel
	VenueID int64  `json:"venueId" gorm:"not null;index"`
	Venue   *Venue `json:"venue,omitempty"`
	Name    string `json:"name"`
	Sport   string `json:"sport,omitempty"`
}

// Booking is a customer's reservation of one or more courts
type Booking struct {
	BaseModel
	CustomerID         int64          `json:"customerId" gorm:"not null;index"`
	Customer           *User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	VenueID            int64          `json:"venueId" gorm:"not null;index"`
	BookingDate        string         `json:"bookingDate" gorm:"index"` // YYYY-MM-DD
	StartTime          string         `json:"startTime"`
	EndTime            string         `json:"endTime"`
	Duration           float64        `json:"duration"`
	TotalAmount        float64        `json:"totalAmount"`
	Status             string         `json:"status" gorm:"not null;index"`
	CancellationReason string         `json:"cancellationReason,omitempty"`
	CourtBookings      []CourtBooking `json:"courtBookings"`
}

// CourtBooking links a booking to a court
type CourtBooking struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	BookingID int64  `json:"bookingId" gorm:"not null;index"`
	CourtID   int64  `json:"courtId" gorm:"not null"`
	Court     *Court `json:"court,omitempty"`
}

// PlatformSettings holds platform-wide settings. Only one row exists.
type PlatformSettings struct {
	BaseModel
	MaintenanceMode         bool    `json:"maintenanceMode" gorm:"not null"`
	BookingFeePercent       float64 `json:"bookingFeePercent" gorm:"not null"`
	MaxAdvanceBookingDays   int     `json:"maxAdvanceBookingDays" gorm:"not null"`
	CancellationWindowHours int     `json:"cancellationWindowHours" gorm:"not null"`
	SupportEmail            string  `json:"supportEmail"`
}

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	models := []any{
		&User{}, &Venue{}, &Court{}, &Booking{}, &CourtBooking{}, &PlatformSettings{},
	}

	return db.AutoMigrate(models...)
}

// FindByID finds a record by its numeric id
func FindByID[T any](db *gorm.DB, id int64, model *T) error {
	return db.Where("id = ?", id).First(model).Error
}
