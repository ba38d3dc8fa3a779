package models

import (
	"alxtravel/src/types"

	"github.com/shopspring/decimal"
)

type Listing struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	Title         string          `gorm:"size:255;not null" json:"title"`
	Description   string          `gorm:"type:text" json:"description"`
	PricePerNight decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_night"`
	NumberOfRooms int             `gorm:"not null;check:number_of_rooms >= 0" json:"number_of_rooms"`
	MaxGuests     int             `gorm:"not null;check:max_guests >= 0" json:"max_guests"`
	City          string          `gorm:"size:100;index" json:"city"`
	Country       string          `gorm:"size:100;index" json:"country"`
	HostID        uint            `gorm:"not null;index" json:"host_id"`

	Host    *User    `gorm:"foreignKey:HostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"host,omitempty"`
	Reviews []Review `gorm:"foreignKey:ListingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reviews,omitempty"`

	types.Timestamps
}
