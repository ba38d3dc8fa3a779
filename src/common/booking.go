package common

import (
	"alxtravel/src/models"
	"alxtravel/src/types"
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidateBookingDates accepts any pair of calendar dates where check-out is
// strictly later, 0001-01-01 included.
func ValidateBookingDates(checkIn, checkOut types.Date) error {
	if !checkOut.After(checkIn.Time) {
		return ErrInvalidDateRange
	}
	return nil
}

// BookingNights returns the number of nights between the two dates.
func BookingNights(checkIn, checkOut types.Date) (int64, error) {
	if err := ValidateBookingDates(checkIn, checkOut); err != nil {
		return 0, err
	}
	return checkIn.DaysUntil(checkOut), nil
}

// PriceBooking computes price_per_night × nights without touching storage.
func PriceBooking(listing *models.Listing, checkIn, checkOut types.Date) (decimal.Decimal, error) {
	if listing == nil {
		return decimal.Zero, ErrNotFound
	}
	nights, err := BookingNights(checkIn, checkOut)
	if err != nil {
		return decimal.Zero, err
	}
	total := listing.PricePerNight.Mul(decimal.NewFromInt(nights))
	if total.GreaterThanOrEqual(maxStoredAmount) {
		return decimal.Zero, fmt.Errorf("%w: %s for %d nights", ErrTotalTooLarge, total.StringFixed(moneyPlaces), nights)
	}
	return total, nil
}

var allowedTransitions = map[types.BookingStatus][]types.BookingStatus{
	types.BOOKING_PENDING:   {types.BOOKING_CONFIRMED, types.BOOKING_CANCELED},
	types.BOOKING_CONFIRMED: {types.BOOKING_CANCELED},
}

func ValidateStatusTransition(from, to types.BookingStatus) error {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, from, to)
}
