package common

import (
	"alxtravel/src/models"
	"alxtravel/src/types"
	"context"
)

// Store is the persistence collaborator. Implementations enforce the booking
// date-triple and review (listing, guest) uniqueness atomically and report
// violations as ErrDuplicateBooking / ErrDuplicateReview, missing rows as
// ErrNotFound.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uint) (*models.User, error)
	ListUsers(ctx context.Context, filters types.UserQueryFilters) ([]models.User, error)
	DeleteUser(ctx context.Context, id uint) error

	CreateListing(ctx context.Context, listing *models.Listing) error
	// GetListing preloads the host and the reviews with their guests.
	GetListing(ctx context.Context, id uint) (*models.Listing, error)
	ListListings(ctx context.Context, filters types.ListingQueryFilters) ([]models.Listing, error)
	UpdateListing(ctx context.Context, listing *models.Listing) error
	DeleteListing(ctx context.Context, id uint) error
	CountBookings(ctx context.Context, listingIds ...uint) (map[uint]int64, error)

	CreateBooking(ctx context.Context, booking *models.Booking) error
	// GetBooking preloads the guest and the listing aggregate.
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, filters types.BookingQueryFilters) ([]models.Booking, error)
	// UpdateBookingStatus moves a booking from one status to another only if it
	// is still in the expected status.
	UpdateBookingStatus(ctx context.Context, id uint, from, to types.BookingStatus) error
	ListLapsedBookings(ctx context.Context, today types.Date) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, id uint) error

	CreateReview(ctx context.Context, review *models.Review) error
	GetReview(ctx context.Context, id uint) (*models.Review, error)
	ListReviews(ctx context.Context, filters types.ReviewQueryFilters) ([]models.Review, error)
	UpdateReview(ctx context.Context, review *models.Review) error
	DeleteReview(ctx context.Context, id uint) error
}
