package db

import (
	"alxtravel/src/common"
	"alxtravel/src/config"
	"alxtravel/src/models"
	"alxtravel/src/types"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *Store
	host    models.User
	guest   models.User
	listing models.Listing
}

func (s *StoreTestSuite) SetupTest() {
	gormDB, err := Open(config.DRIVER_SQLITE, "file::memory:?_foreign_keys=on")
	require.NoError(s.T(), err)
	require.NoError(s.T(), Migrate(gormDB))

	s.ctx = context.Background()
	s.store = NewStore(gormDB)

	s.host = models.User{Username: "host1", Email: "host1@example.com", Role: types.ROLE_HOST}
	s.guest = models.User{Username: "guest1", Email: "guest1@example.com", Role: types.ROLE_GUEST}
	require.NoError(s.T(), s.store.CreateUser(s.ctx, &s.host))
	require.NoError(s.T(), s.store.CreateUser(s.ctx, &s.guest))

	s.listing = models.Listing{
		Title:         "Cozy Apartment in City Center",
		Description:   "A beautiful apartment close to all amenities.",
		PricePerNight: decimal.RequireFromString("75.00"),
		NumberOfRooms: 2,
		MaxGuests:     4,
		City:          "Paris",
		Country:       "France",
		HostID:        s.host.ID,
	}
	require.NoError(s.T(), s.store.CreateListing(s.ctx, &s.listing))
}

func (s *StoreTestSuite) booking(checkIn, checkOut types.Date) *models.Booking {
	return &models.Booking{
		ListingID:    s.listing.ID,
		GuestID:      s.guest.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   s.listing.PricePerNight.Mul(decimal.NewFromInt(checkIn.DaysUntil(checkOut))),
		Status:       types.BOOKING_PENDING,
	}
}

func (s *StoreTestSuite) TestDuplicateUsername() {
	dup := models.User{Username: "host1", Email: "other@example.com", Role: types.ROLE_HOST}
	s.ErrorIs(s.store.CreateUser(s.ctx, &dup), common.ErrDuplicateUser)
}

func (s *StoreTestSuite) TestBookingRoundTrip() {
	b := s.booking(types.NewDate(2025, time.August, 1), types.NewDate(2025, time.August, 4))
	s.Require().NoError(s.store.CreateBooking(s.ctx, b))

	got, err := s.store.GetBooking(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Equal("2025-08-01", got.CheckInDate.String())
	s.Equal("2025-08-04", got.CheckOutDate.String())
	s.Equal("225.00", got.TotalPrice.StringFixed(2))
	s.Equal(types.BOOKING_PENDING, got.Status)
	s.Require().NotNil(got.Listing)
	s.Require().NotNil(got.Listing.Host)
	s.Equal(s.host.ID, got.Listing.Host.ID)
	s.Require().NotNil(got.Guest)
	s.Equal("guest1", got.Guest.Username)
}

func (s *StoreTestSuite) TestDuplicateBookingExactDates() {
	checkIn := types.NewDate(2025, time.August, 1)
	checkOut := types.NewDate(2025, time.August, 4)
	s.Require().NoError(s.store.CreateBooking(s.ctx, s.booking(checkIn, checkOut)))

	s.ErrorIs(s.store.CreateBooking(s.ctx, s.booking(checkIn, checkOut)), common.ErrDuplicateBooking)

	overlapping := s.booking(types.NewDate(2025, time.August, 2), checkOut)
	s.NoError(s.store.CreateBooking(s.ctx, overlapping))

	counts, err := s.store.CountBookings(s.ctx, s.listing.ID)
	s.Require().NoError(err)
	s.Equal(int64(2), counts[s.listing.ID])
}

func (s *StoreTestSuite) TestBookingForUnknownListing() {
	b := s.booking(types.NewDate(2025, time.August, 1), types.NewDate(2025, time.August, 2))
	b.ListingID = 999
	s.ErrorIs(s.store.CreateBooking(s.ctx, b), common.ErrNotFound)
}

func (s *StoreTestSuite) TestUpdateBookingStatus() {
	b := s.booking(types.NewDate(2025, time.August, 1), types.NewDate(2025, time.August, 3))
	s.Require().NoError(s.store.CreateBooking(s.ctx, b))

	s.NoError(s.store.UpdateBookingStatus(s.ctx, b.ID, types.BOOKING_PENDING, types.BOOKING_CONFIRMED))
	s.ErrorIs(s.store.UpdateBookingStatus(s.ctx, b.ID, types.BOOKING_PENDING, types.BOOKING_CANCELED), common.ErrInvalidStatusTransition)
	s.ErrorIs(s.store.UpdateBookingStatus(s.ctx, 999, types.BOOKING_PENDING, types.BOOKING_CANCELED), common.ErrNotFound)
	s.ErrorIs(s.store.UpdateBookingStatus(s.ctx, b.ID, types.BOOKING_CONFIRMED, types.BookingStatus("archived")), common.ErrInvalidStatusTransition)

	got, err := s.store.GetBooking(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Equal(types.BOOKING_CONFIRMED, got.Status)
}

func (s *StoreTestSuite) TestListLapsedBookings() {
	lapsed := s.booking(types.NewDate(2025, time.July, 1), types.NewDate(2025, time.July, 3))
	upcoming := s.booking(types.NewDate(2025, time.September, 1), types.NewDate(2025, time.September, 3))
	confirmed := s.booking(types.NewDate(2025, time.June, 1), types.NewDate(2025, time.June, 3))
	confirmed.Status = types.BOOKING_CONFIRMED
	for _, b := range []*models.Booking{lapsed, upcoming, confirmed} {
		s.Require().NoError(s.store.CreateBooking(s.ctx, b))
	}

	bookings, err := s.store.ListLapsedBookings(s.ctx, types.NewDate(2025, time.August, 1))
	s.Require().NoError(err)
	s.Require().Len(bookings, 1)
	s.Equal(lapsed.ID, bookings[0].ID)
}

func (s *StoreTestSuite) TestDuplicateReview() {
	first := models.Review{ListingID: s.listing.ID, GuestID: s.guest.ID, Rating: 4}
	s.Require().NoError(s.store.CreateReview(s.ctx, &first))

	second := models.Review{ListingID: s.listing.ID, GuestID: s.guest.ID, Rating: 2}
	s.ErrorIs(s.store.CreateReview(s.ctx, &second), common.ErrDuplicateReview)

	listing, err := s.store.GetListing(s.ctx, s.listing.ID)
	s.Require().NoError(err)
	s.Require().Len(listing.Reviews, 1)
	s.Equal(4, listing.Reviews[0].Rating)
	s.Require().NotNil(listing.Reviews[0].Guest)
	s.Equal("guest1", listing.Reviews[0].Guest.Username)
}

func (s *StoreTestSuite) TestDeleteListingCascades() {
	b := s.booking(types.NewDate(2025, time.August, 1), types.NewDate(2025, time.August, 3))
	s.Require().NoError(s.store.CreateBooking(s.ctx, b))
	r := models.Review{ListingID: s.listing.ID, GuestID: s.guest.ID, Rating: 5}
	s.Require().NoError(s.store.CreateReview(s.ctx, &r))

	s.Require().NoError(s.store.DeleteListing(s.ctx, s.listing.ID))

	_, err := s.store.GetBooking(s.ctx, b.ID)
	s.ErrorIs(err, common.ErrNotFound)
	_, err = s.store.GetReview(s.ctx, r.ID)
	s.ErrorIs(err, common.ErrNotFound)
	s.ErrorIs(s.store.DeleteListing(s.ctx, s.listing.ID), common.ErrNotFound)
}

func (s *StoreTestSuite) TestDeleteUserCascades() {
	b := s.booking(types.NewDate(2025, time.August, 1), types.NewDate(2025, time.August, 3))
	s.Require().NoError(s.store.CreateBooking(s.ctx, b))

	s.Require().NoError(s.store.DeleteUser(s.ctx, s.host.ID))

	_, err := s.store.GetListing(s.ctx, s.listing.ID)
	s.ErrorIs(err, common.ErrNotFound)
	_, err = s.store.GetBooking(s.ctx, b.ID)
	s.ErrorIs(err, common.ErrNotFound)
	_, err = s.store.GetUser(s.ctx, s.guest.ID)
	s.NoError(err)
}

func (s *StoreTestSuite) TestDeleteUserRemovesEveryHostedListing() {
	second := s.listing
	second.ID = 0
	second.Title = "Beachfront Bungalow"
	s.Require().NoError(s.store.CreateListing(s.ctx, &second))

	s.Require().NoError(s.store.DeleteUser(s.ctx, s.host.ID))

	listings, err := s.store.ListListings(s.ctx, types.ListingQueryFilters{})
	s.Require().NoError(err)
	s.Empty(listings)
}

func (s *StoreTestSuite) TestListListingsFilters() {
	other := s.listing
	other.ID = 0
	other.Title = "Beachfront Bungalow"
	other.City = "Marseille"
	s.Require().NoError(s.store.CreateListing(s.ctx, &other))

	listings, err := s.store.ListListings(s.ctx, types.ListingQueryFilters{City: "Marseille"})
	s.Require().NoError(err)
	s.Require().Len(listings, 1)
	s.Equal("Beachfront Bungalow", listings[0].Title)

	listings, err = s.store.ListListings(s.ctx, types.ListingQueryFilters{Country: "France"})
	s.Require().NoError(err)
	s.Len(listings, 2)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
