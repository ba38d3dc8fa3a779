package models

import (
	"alxtravel/src/types"

	"github.com/shopspring/decimal"
)

// Booking rows are unique on (listing, check-in, check-out). Overlapping
// ranges with different endpoints are accepted.
type Booking struct {
	ID           uint                `gorm:"primarykey" json:"id"`
	ListingID    uint                `gorm:"not null;uniqueIndex:idx_booking_listing_dates,priority:1" json:"listing_id"`
	GuestID      uint                `gorm:"not null;index" json:"guest_id"`
	CheckInDate  types.Date          `gorm:"not null;uniqueIndex:idx_booking_listing_dates,priority:2" json:"check_in_date"`
	CheckOutDate types.Date          `gorm:"not null;uniqueIndex:idx_booking_listing_dates,priority:3" json:"check_out_date"`
	TotalPrice   decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status       types.BookingStatus `gorm:"size:10;default:'pending';not null;index" json:"status"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"listing,omitempty"`
	Guest   *User    `gorm:"foreignKey:GuestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"guest,omitempty"`

	types.Timestamps
}
