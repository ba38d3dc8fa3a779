package common

import (
	"alxtravel/src/models"
	"alxtravel/src/types"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBookingDates(t *testing.T) {
	day := types.NewDate(2025, time.August, 1)

	assert.NoError(t, ValidateBookingDates(day, day.AddDays(1)))
	assert.ErrorIs(t, ValidateBookingDates(day, day), ErrInvalidDateRange)
	assert.ErrorIs(t, ValidateBookingDates(day.AddDays(3), day), ErrInvalidDateRange)
	assert.NoError(t, ValidateBookingDates(types.Date{}, types.NewDate(1, time.January, 4)))
	assert.ErrorIs(t, ValidateBookingDates(types.Date{}, types.Date{}), ErrInvalidDateRange)
	assert.Equal(t, "Check-out date must be after check-in date.", ErrInvalidDateRange.Error())
}

func TestPriceBooking(t *testing.T) {
	listing := &models.Listing{PricePerNight: decimal.RequireFromString("75.00")}

	total, err := PriceBooking(listing, types.NewDate(2025, time.August, 1), types.NewDate(2025, time.August, 4))
	require.NoError(t, err)
	assert.Equal(t, "225.00", total.StringFixed(2))

	_, err = PriceBooking(listing, types.NewDate(2025, time.August, 4), types.NewDate(2025, time.August, 1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = PriceBooking(nil, types.NewDate(2025, time.August, 1), types.NewDate(2025, time.August, 4))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPriceBookingIsExactForEveryStay(t *testing.T) {
	price := decimal.RequireFromString("19.99")
	listing := &models.Listing{PricePerNight: price}
	checkIn := types.NewDate(2024, time.February, 20)

	for nights := 1; nights <= 400; nights++ {
		total, err := PriceBooking(listing, checkIn, checkIn.AddDays(nights))
		require.NoError(t, err)
		assert.True(t, total.Equal(price.Mul(decimal.NewFromInt(int64(nights)))), "nights=%d total=%s", nights, total)
	}
}

func TestPriceBookingOverCenturies(t *testing.T) {
	listing := &models.Listing{PricePerNight: decimal.RequireFromString("1.00")}

	total, err := PriceBooking(listing, types.NewDate(1700, time.January, 1), types.NewDate(2100, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, "146097.00", total.StringFixed(2))

	total, err = PriceBooking(listing, types.Date{}, types.NewDate(1, time.January, 4))
	require.NoError(t, err)
	assert.Equal(t, "3.00", total.StringFixed(2))
}

func TestPriceBookingRejectsUnstorableTotal(t *testing.T) {
	listing := &models.Listing{PricePerNight: decimal.RequireFromString("99999999.99")}
	checkIn := types.NewDate(2025, time.August, 1)

	total, err := PriceBooking(listing, checkIn, checkIn.AddDays(1))
	require.NoError(t, err)
	assert.Equal(t, "99999999.99", total.StringFixed(2))

	_, err = PriceBooking(listing, checkIn, checkIn.AddDays(2))
	assert.ErrorIs(t, err, ErrTotalTooLarge)

	listing.PricePerNight = decimal.RequireFromString("1000.00")
	_, err = PriceBooking(listing, checkIn, checkIn.AddDays(100000))
	assert.ErrorIs(t, err, ErrTotalTooLarge)
}

func TestBookingNightsAcrossLeapDay(t *testing.T) {
	nights, err := BookingNights(types.NewDate(2024, time.February, 28), types.NewDate(2024, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), nights)
}

func TestValidateStatusTransition(t *testing.T) {
	allowed := [][2]types.BookingStatus{
		{types.BOOKING_PENDING, types.BOOKING_CONFIRMED},
		{types.BOOKING_PENDING, types.BOOKING_CANCELED},
		{types.BOOKING_CONFIRMED, types.BOOKING_CANCELED},
	}
	for _, tr := range allowed {
		assert.NoError(t, ValidateStatusTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	rejected := [][2]types.BookingStatus{
		{types.BOOKING_CONFIRMED, types.BOOKING_PENDING},
		{types.BOOKING_CANCELED, types.BOOKING_PENDING},
		{types.BOOKING_CANCELED, types.BOOKING_CONFIRMED},
		{types.BOOKING_PENDING, types.BOOKING_PENDING},
		{types.BOOKING_CANCELED, types.BOOKING_CANCELED},
	}
	for _, tr := range rejected {
		assert.ErrorIs(t, ValidateStatusTransition(tr[0], tr[1]), ErrInvalidStatusTransition, "%s -> %s", tr[0], tr[1])
	}
}

func TestValidateRating(t *testing.T) {
	for rating := MinRating; rating <= MaxRating; rating++ {
		assert.NoError(t, ValidateRating(rating))
	}
	for _, rating := range []int{-1, 0, 6, 10} {
		assert.ErrorIs(t, ValidateRating(rating), ErrInvalidRating)
	}
}

func TestValidateListing(t *testing.T) {
	valid := func() *models.Listing {
		return &models.Listing{Title: "Beachfront Bungalow", PricePerNight: decimal.RequireFromString("150.00"), NumberOfRooms: 3, MaxGuests: 6}
	}
	assert.NoError(t, ValidateListing(valid()))

	cases := map[string]func(l *models.Listing){
		"empty title":     func(l *models.Listing) { l.Title = "  " },
		"negative price":  func(l *models.Listing) { l.PricePerNight = decimal.RequireFromString("-1") },
		"three places":    func(l *models.Listing) { l.PricePerNight = decimal.RequireFromString("10.001") },
		"too large":       func(l *models.Listing) { l.PricePerNight = decimal.RequireFromString("100000000") },
		"negative rooms":  func(l *models.Listing) { l.NumberOfRooms = -1 },
		"negative guests": func(l *models.Listing) { l.MaxGuests = -1 },
	}
	for name, mutate := range cases {
		l := valid()
		mutate(l)
		assert.ErrorIs(t, ValidateListing(l), ErrInvalidListing, name)
	}
}

func TestSerializeListing(t *testing.T) {
	comment := "Great stay at Beachfront Bungalow!"
	listing := &models.Listing{
		ID:            3,
		Title:         "Beachfront Bungalow",
		PricePerNight: decimal.RequireFromString("150"),
		Host:          &models.User{ID: 1, Username: "host1"},
		Reviews: []models.Review{
			{ID: 9, ListingID: 3, Rating: 4, Comment: &comment, Guest: &models.User{ID: 2, Username: "guest1"}},
		},
	}

	data := SerializeListing(listing, 2)
	assert.Equal(t, "150.00", data.PricePerNight)
	assert.Equal(t, int64(2), data.BookingsCount)
	assert.Equal(t, "host1", data.Host.Username)
	require.Len(t, data.Reviews, 1)
	assert.Equal(t, uint(3), data.Reviews[0].Listing)
	assert.Equal(t, "guest1", data.Reviews[0].Guest.Username)

	empty := SerializeListing(&models.Listing{PricePerNight: decimal.Zero}, 0)
	assert.NotNil(t, empty.Reviews)
	assert.Nil(t, empty.Host)
}
