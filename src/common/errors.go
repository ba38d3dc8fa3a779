package common

import "errors"

var (
	ErrInvalidDateRange        = errors.New("Check-out date must be after check-in date.")
	ErrDuplicateBooking        = errors.New("a booking for this listing with the same check-in and check-out dates already exists")
	ErrInvalidRating           = errors.New("rating must be between 1 and 5")
	ErrDuplicateReview         = errors.New("guest has already reviewed this listing")
	ErrNotFound                = errors.New("record not found")
	ErrInvalidStatusTransition = errors.New("booking status transition is not allowed")
	ErrNotHost                 = errors.New("listings can only be created by hosts")
	ErrInvalidListing          = errors.New("invalid listing")
	ErrDuplicateUser           = errors.New("username is already taken")
	ErrInvalidUser             = errors.New("invalid user")
	ErrTotalTooLarge           = errors.New("total price is too large")
)
