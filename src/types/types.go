package types

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Role string

const (
	ROLE_HOST  Role = "host"
	ROLE_GUEST Role = "guest"
)

func (r Role) Valid() bool {
	return r == ROLE_HOST || r == ROLE_GUEST
}

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELED  BookingStatus = "canceled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BOOKING_PENDING, BOOKING_CONFIRMED, BOOKING_CANCELED:
		return true
	}
	return false
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateUserRequestBody struct {
	Username  string `json:"username" binding:"required,max=150"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name,omitempty" binding:"max=150"`
	LastName  string `json:"last_name,omitempty" binding:"max=150"`
	Role      Role   `json:"role" binding:"required,oneof=host guest"`
}

type CreateListingRequestBody struct {
	Title         string           `json:"title" binding:"required,max=255"`
	Description   string           `json:"description" binding:"required"`
	PricePerNight *decimal.Decimal `json:"price_per_night" binding:"required"`
	NumberOfRooms int              `json:"number_of_rooms" binding:"min=0"`
	MaxGuests     int              `json:"max_guests" binding:"min=0"`
	City          string           `json:"city" binding:"required,max=100"`
	Country       string           `json:"country" binding:"required,max=100"`
	HostID        uint             `json:"host_id" binding:"required"`
}

type UpdateListingRequestBody struct {
	Title         *string          `json:"title,omitempty" binding:"omitempty,max=255"`
	Description   *string          `json:"description,omitempty"`
	PricePerNight *decimal.Decimal `json:"price_per_night,omitempty"`
	NumberOfRooms *int             `json:"number_of_rooms,omitempty" binding:"omitempty,min=0"`
	MaxGuests     *int             `json:"max_guests,omitempty" binding:"omitempty,min=0"`
	City          *string          `json:"city,omitempty" binding:"omitempty,max=100"`
	Country       *string          `json:"country,omitempty" binding:"omitempty,max=100"`
}

// CreateBookingRequestBody carries the write-only foreign keys of a Booking.
// total_price and status are never accepted from clients.
type CreateBookingRequestBody struct {
	ListingID    uint   `json:"listing_id" binding:"required"`
	GuestID      uint   `json:"guest_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required,isodate"`
	CheckOutDate string `json:"check_out_date" binding:"required,isodate"`
}

// Rating bounds are checked by the review registrar so that clients get the
// domain error message rather than a validator dump.
type CreateReviewRequestBody struct {
	ListingID uint    `json:"listing" binding:"required"`
	GuestID   uint    `json:"guest_id" binding:"required"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
}

type UpdateReviewRequestBody struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

type UserQueryFilters struct {
	Role Role `form:"role" binding:"omitempty,oneof=host guest"`
}

type ListingQueryFilters struct {
	City    string `form:"city"`
	Country string `form:"country"`
	HostID  uint   `form:"host"`
}

type BookingQueryFilters struct {
	ListingID uint          `form:"listing"`
	GuestID   uint          `form:"guest"`
	Status    BookingStatus `form:"status" binding:"omitempty,oneof=pending confirmed canceled"`
}

type ReviewQueryFilters struct {
	ListingID uint `form:"listing"`
	GuestID   uint `form:"guest"`
}

type APIResponseUser struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type APIResponseReview struct {
	ID        uint             `json:"id"`
	Listing   uint             `json:"listing"`
	Guest     *APIResponseUser `json:"guest"`
	Rating    int              `json:"rating"`
	Comment   *string          `json:"comment"`
	CreatedAt time.Time        `json:"created_at"`
}

type APIResponseListing struct {
	ID            uint                 `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	PricePerNight string               `json:"price_per_night"`
	NumberOfRooms int                  `json:"number_of_rooms"`
	MaxGuests     int                  `json:"max_guests"`
	City          string               `json:"city"`
	Country       string               `json:"country"`
	Host          *APIResponseUser     `json:"host"`
	Reviews       []*APIResponseReview `json:"reviews"`
	BookingsCount int64                `json:"bookings_count"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type APIResponseBooking struct {
	ID           uint                `json:"id"`
	Listing      *APIResponseListing `json:"listing"`
	Guest        *APIResponseUser    `json:"guest"`
	CheckInDate  Date                `json:"check_in_date"`
	CheckOutDate Date                `json:"check_out_date"`
	TotalPrice   string              `json:"total_price"`
	Status       BookingStatus       `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// Event is the envelope published for booking and review changes.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}
