package common

import (
	"alxtravel/src/models"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// decimal(10,2) leaves eight integer digits for nightly prices and totals.
var maxStoredAmount = decimal.New(1, 8)

func ValidateListing(listing *models.Listing) error {
	if strings.TrimSpace(listing.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidListing)
	}
	if listing.PricePerNight.IsNegative() {
		return fmt.Errorf("%w: price_per_night must not be negative", ErrInvalidListing)
	}
	if listing.PricePerNight.GreaterThanOrEqual(maxStoredAmount) {
		return fmt.Errorf("%w: price_per_night is too large", ErrInvalidListing)
	}
	if !listing.PricePerNight.Equal(listing.PricePerNight.Round(2)) {
		return fmt.Errorf("%w: price_per_night allows at most 2 decimal places", ErrInvalidListing)
	}
	if listing.NumberOfRooms < 0 {
		return fmt.Errorf("%w: number_of_rooms must not be negative", ErrInvalidListing)
	}
	if listing.MaxGuests < 0 {
		return fmt.Errorf("%w: max_guests must not be negative", ErrInvalidListing)
	}
	return nil
}
