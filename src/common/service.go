package common

import (
	"alxtravel/src/models"
	"alxtravel/src/types"
	"context"
	"fmt"
	"log"
)

const (
	TOPIC_BOOKING_CREATED        = "booking.created"
	TOPIC_BOOKING_STATUS_CHANGED = "booking.status_changed"
	TOPIC_REVIEW_CREATED         = "review.created"
)

// Publisher fans out domain events after they are committed.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

type Service struct {
	store     Store
	publisher Publisher
}

func NewService(store Store, publisher Publisher) *Service {
	return &Service{store: store, publisher: publisher}
}

func (s *Service) publish(ctx context.Context, topic string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, payload); err != nil {
		log.Printf("Error publishing to %s: %s\n", topic, err.Error())
	}
}

func (s *Service) CreateUser(ctx context.Context, user *models.User) error {
	if !user.Role.Valid() {
		return fmt.Errorf("%w: invalid role %q", ErrInvalidUser, user.Role)
	}
	return s.store.CreateUser(ctx, user)
}

func (s *Service) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", id, err)
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context, filters types.UserQueryFilters) ([]models.User, error) {
	return s.store.ListUsers(ctx, filters)
}

// DeleteUser removes the user with every listing they host and every booking
// and review they wrote.
func (s *Service) DeleteUser(ctx context.Context, id uint) error {
	if err := s.store.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("user %d: %w", id, err)
	}
	return nil
}

func (s *Service) CreateListing(ctx context.Context, listing *models.Listing) error {
	if err := ValidateListing(listing); err != nil {
		return err
	}
	host, err := s.store.GetUser(ctx, listing.HostID)
	if err != nil {
		return fmt.Errorf("host %d: %w", listing.HostID, err)
	}
	if !host.IsHost() {
		return ErrNotHost
	}
	if err := s.store.CreateListing(ctx, listing); err != nil {
		return err
	}
	listing.Host = host
	return nil
}

func (s *Service) UpdateListing(ctx context.Context, id uint, patch types.UpdateListingRequestBody) (*models.Listing, error) {
	listing, err := s.store.GetListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing %d: %w", id, err)
	}
	if patch.Title != nil {
		listing.Title = *patch.Title
	}
	if patch.Description != nil {
		listing.Description = *patch.Description
	}
	if patch.PricePerNight != nil {
		listing.PricePerNight = *patch.PricePerNight
	}
	if patch.NumberOfRooms != nil {
		listing.NumberOfRooms = *patch.NumberOfRooms
	}
	if patch.MaxGuests != nil {
		listing.MaxGuests = *patch.MaxGuests
	}
	if patch.City != nil {
		listing.City = *patch.City
	}
	if patch.Country != nil {
		listing.Country = *patch.Country
	}
	if err := ValidateListing(listing); err != nil {
		return nil, err
	}
	if err := s.store.UpdateListing(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// DeleteListing removes the listing together with its bookings and reviews.
func (s *Service) DeleteListing(ctx context.Context, id uint) error {
	if err := s.store.DeleteListing(ctx, id); err != nil {
		return fmt.Errorf("listing %d: %w", id, err)
	}
	return nil
}

// ListingDetail returns the listing with its host, its reviews and the number
// of bookings made for it across all statuses. Nothing is cached.
func (s *Service) ListingDetail(ctx context.Context, id uint) (*types.APIResponseListing, error) {
	listing, err := s.store.GetListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing %d: %w", id, err)
	}
	counts, err := s.store.CountBookings(ctx, listing.ID)
	if err != nil {
		return nil, err
	}
	return SerializeListing(listing, counts[listing.ID]), nil
}

func (s *Service) ListingDetails(ctx context.Context, filters types.ListingQueryFilters) ([]*types.APIResponseListing, error) {
	listings, err := s.store.ListListings(ctx, filters)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	counts, err := s.store.CountBookings(ctx, ids...)
	if err != nil {
		return nil, err
	}
	data := make([]*types.APIResponseListing, 0, len(listings))
	for i := range listings {
		data = append(data, SerializeListing(&listings[i], counts[listings[i].ID]))
	}
	return data, nil
}

// CreateBooking validates the stay, prices it from the listing's nightly rate
// and stores it as pending. A second booking with the same listing and dates
// fails with ErrDuplicateBooking.
func (s *Service) CreateBooking(ctx context.Context, listingId, guestId uint, checkIn, checkOut types.Date) (*models.Booking, error) {
	if err := ValidateBookingDates(checkIn, checkOut); err != nil {
		return nil, err
	}
	listing, err := s.store.GetListing(ctx, listingId)
	if err != nil {
		return nil, fmt.Errorf("listing %d: %w", listingId, err)
	}
	guest, err := s.store.GetUser(ctx, guestId)
	if err != nil {
		return nil, fmt.Errorf("guest %d: %w", guestId, err)
	}
	total, err := PriceBooking(listing, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	booking := models.Booking{
		ListingID:    listing.ID,
		GuestID:      guest.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   total,
		Status:       types.BOOKING_PENDING,
	}
	if err := s.store.CreateBooking(ctx, &booking); err != nil {
		return nil, err
	}
	booking.Listing = listing
	booking.Guest = guest

	s.publish(ctx, TOPIC_BOOKING_CREATED, map[string]any{
		"id":             booking.ID,
		"listing_id":     booking.ListingID,
		"guest_id":       booking.GuestID,
		"check_in_date":  booking.CheckInDate,
		"check_out_date": booking.CheckOutDate,
		"total_price":    booking.TotalPrice.StringFixed(moneyPlaces),
		"status":         booking.Status,
	})
	return &booking, nil
}

func (s *Service) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.store.GetBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking %d: %w", id, err)
	}
	return booking, nil
}

func (s *Service) BookingDetail(ctx context.Context, id uint) (*types.APIResponseBooking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	counts, err := s.store.CountBookings(ctx, booking.ListingID)
	if err != nil {
		return nil, err
	}
	return SerializeBooking(booking, counts[booking.ListingID]), nil
}

func (s *Service) BookingDetails(ctx context.Context, filters types.BookingQueryFilters) ([]*types.APIResponseBooking, error) {
	bookings, err := s.store.ListBookings(ctx, filters)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ListingID)
	}
	counts, err := s.store.CountBookings(ctx, ids...)
	if err != nil {
		return nil, err
	}
	data := make([]*types.APIResponseBooking, 0, len(bookings))
	for i := range bookings {
		data = append(data, SerializeBooking(&bookings[i], counts[bookings[i].ListingID]))
	}
	return data, nil
}

func (s *Service) ConfirmBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return s.transitionBooking(ctx, id, types.BOOKING_CONFIRMED)
}

func (s *Service) CancelBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return s.transitionBooking(ctx, id, types.BOOKING_CANCELED)
}

func (s *Service) transitionBooking(ctx context.Context, id uint, to types.BookingStatus) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	from := booking.Status
	if err := ValidateStatusTransition(from, to); err != nil {
		return nil, err
	}
	if err := s.store.UpdateBookingStatus(ctx, id, from, to); err != nil {
		return nil, fmt.Errorf("booking %d: %w", id, err)
	}
	booking.Status = to

	s.publish(ctx, TOPIC_BOOKING_STATUS_CHANGED, map[string]any{
		"id":         booking.ID,
		"listing_id": booking.ListingID,
		"guest_id":   booking.GuestID,
		"from":       from,
		"to":         to,
	})
	return booking, nil
}

func (s *Service) DeleteBooking(ctx context.Context, id uint) error {
	if err := s.store.DeleteBooking(ctx, id); err != nil {
		return fmt.Errorf("booking %d: %w", id, err)
	}
	return nil
}

// CancelLapsedBookings cancels pending bookings whose check-in date is before
// today. Failures are logged per booking and do not stop the sweep.
func (s *Service) CancelLapsedBookings(ctx context.Context, today types.Date) (int, error) {
	bookings, err := s.store.ListLapsedBookings(ctx, today)
	if err != nil {
		return 0, err
	}
	canceled := 0
	for _, b := range bookings {
		if _, err := s.CancelBooking(ctx, b.ID); err != nil {
			log.Printf("Could not cancel lapsed booking [%d]: %s\n", b.ID, err.Error())
			continue
		}
		canceled++
	}
	return canceled, nil
}

// RegisterReview records a guest's single review of a listing.
func (s *Service) RegisterReview(ctx context.Context, listingId, guestId uint, rating int, comment *string) (*models.Review, error) {
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}
	if _, err := s.store.GetListing(ctx, listingId); err != nil {
		return nil, fmt.Errorf("listing %d: %w", listingId, err)
	}
	guest, err := s.store.GetUser(ctx, guestId)
	if err != nil {
		return nil, fmt.Errorf("guest %d: %w", guestId, err)
	}
	review := models.Review{
		ListingID: listingId,
		GuestID:   guest.ID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.store.CreateReview(ctx, &review); err != nil {
		return nil, err
	}
	review.Guest = guest

	s.publish(ctx, TOPIC_REVIEW_CREATED, map[string]any{
		"id":         review.ID,
		"listing_id": review.ListingID,
		"guest_id":   review.GuestID,
		"rating":     review.Rating,
	})
	return &review, nil
}

func (s *Service) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	review, err := s.store.GetReview(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("review %d: %w", id, err)
	}
	return review, nil
}

func (s *Service) ListReviews(ctx context.Context, filters types.ReviewQueryFilters) ([]models.Review, error) {
	return s.store.ListReviews(ctx, filters)
}

// UpdateReview changes rating and comment. The (listing, guest) pair of a
// review never changes.
func (s *Service) UpdateReview(ctx context.Context, id uint, rating *int, comment *string) (*models.Review, error) {
	review, err := s.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating != nil {
		if err := ValidateRating(*rating); err != nil {
			return nil, err
		}
		review.Rating = *rating
	}
	if comment != nil {
		review.Comment = comment
	}
	if err := s.store.UpdateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("review %d: %w", id, err)
	}
	return review, nil
}

func (s *Service) DeleteReview(ctx context.Context, id uint) error {
	if err := s.store.DeleteReview(ctx, id); err != nil {
		return fmt.Errorf("review %d: %w", id, err)
	}
	return nil
}
