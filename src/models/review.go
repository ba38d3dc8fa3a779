package models

import "alxtravel/src/types"

type Review struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	ListingID uint    `gorm:"not null;uniqueIndex:idx_review_listing_guest,priority:1" json:"listing_id"`
	GuestID   uint    `gorm:"not null;uniqueIndex:idx_review_listing_guest,priority:2" json:"guest_id"`
	Rating    int     `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Comment   *string `gorm:"type:text" json:"comment"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Guest   *User    `gorm:"foreignKey:GuestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"guest,omitempty"`

	types.Timestamps
}
