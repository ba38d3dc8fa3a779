package common

import (
	"alxtravel/src/models"
	"alxtravel/src/types"
)

const moneyPlaces = 2

func SerializeUser(user *models.User) *types.APIResponseUser {
	if user == nil {
		return nil
	}
	return &types.APIResponseUser{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func SerializeReview(review *models.Review) *types.APIResponseReview {
	return &types.APIResponseReview{
		ID:        review.ID,
		Listing:   review.ListingID,
		Guest:     SerializeUser(review.Guest),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func SerializeReviews(reviews []models.Review) []*types.APIResponseReview {
	data := make([]*types.APIResponseReview, 0, len(reviews))
	for i := range reviews {
		data = append(data, SerializeReview(&reviews[i]))
	}
	return data
}

// SerializeListing expects Host and Reviews (with Guest) to be loaded.
func SerializeListing(listing *models.Listing, bookingsCount int64) *types.APIResponseListing {
	return &types.APIResponseListing{
		ID:            listing.ID,
		Title:         listing.Title,
		Description:   listing.Description,
		PricePerNight: listing.PricePerNight.StringFixed(moneyPlaces),
		NumberOfRooms: listing.NumberOfRooms,
		MaxGuests:     listing.MaxGuests,
		City:          listing.City,
		Country:       listing.Country,
		Host:          SerializeUser(listing.Host),
		Reviews:       SerializeReviews(listing.Reviews),
		BookingsCount: bookingsCount,
		CreatedAt:     listing.CreatedAt,
		UpdatedAt:     listing.UpdatedAt,
	}
}

func SerializeBooking(booking *models.Booking, listingBookingsCount int64) *types.APIResponseBooking {
	data := &types.APIResponseBooking{
		ID:           booking.ID,
		Guest:        SerializeUser(booking.Guest),
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		TotalPrice:   booking.TotalPrice.StringFixed(moneyPlaces),
		Status:       booking.Status,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}
	if booking.Listing != nil {
		data.Listing = SerializeListing(booking.Listing, listingBookingsCount)
	}
	return data
}
