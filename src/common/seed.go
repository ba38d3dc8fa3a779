package common

import (
	"alxtravel/src/models"
	"alxtravel/src/types"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

// Rand is the randomness a Seeder draws from. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

type SeedReport struct {
	Users    int      `json:"users"`
	Listings int      `json:"listings"`
	Bookings int      `json:"bookings"`
	Reviews  int      `json:"reviews"`
	Warnings []string `json:"warnings"`
}

type Seeder struct {
	Service *Service
	Rand    Rand
	Logger  *log.Logger
	// Today defaults to the current UTC date.
	Today func() types.Date
}

const (
	SEED_BOOKINGS = 5
	SEED_REVIEWS  = 3
)

var seedUsers = []models.User{
	{Username: "host1", Email: "host1@example.com", FirstName: "Alice", LastName: "Host", Role: types.ROLE_HOST},
	{Username: "guest1", Email: "guest1@example.com", FirstName: "Bob", LastName: "Guest", Role: types.ROLE_GUEST},
	{Username: "guest2", Email: "guest2@example.com", FirstName: "Charlie", LastName: "Guest", Role: types.ROLE_GUEST},
}

var seedListings = []models.Listing{
	{
		Title:         "Cozy Apartment in City Center",
		Description:   "A beautiful apartment close to all amenities.",
		PricePerNight: decimal.RequireFromString("75.00"),
		NumberOfRooms: 2,
		MaxGuests:     4,
		City:          "Paris",
		Country:       "France",
	},
	{
		Title:         "Spacious Villa with Pool",
		Description:   "Perfect for a family getaway.",
		PricePerNight: decimal.RequireFromString("200.00"),
		NumberOfRooms: 5,
		MaxGuests:     10,
		City:          "Nice",
		Country:       "France",
	},
	{
		Title:         "Beachfront Bungalow",
		Description:   "Wake up to the sound of waves.",
		PricePerNight: decimal.RequireFromString("150.00"),
		NumberOfRooms: 3,
		MaxGuests:     6,
		City:          "Marseille",
		Country:       "France",
	},
}

func (s *Seeder) today() types.Date {
	if s.Today != nil {
		return s.Today()
	}
	return types.DateOf(time.Now().UTC())
}

func (s *Seeder) warn(report *SeedReport, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	report.Warnings = append(report.Warnings, msg)
	s.Logger.Println(msg)
}

// Run populates an empty or partly seeded database with sample users,
// listings, bookings and reviews. Each step is skipped when its table already
// has rows. Individual failures such as duplicate bookings are logged and
// skipped.
func (s *Seeder) Run(ctx context.Context) (*SeedReport, error) {
	report := &SeedReport{}
	store := s.Service.store

	users, err := store.ListUsers(ctx, types.UserQueryFilters{})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		for _, u := range seedUsers {
			user := u
			if err := s.Service.CreateUser(ctx, &user); err != nil {
				s.warn(report, "Could not create user %s: %s", user.Username, err.Error())
				continue
			}
			report.Users++
		}
		s.Logger.Printf("Created %d users\n", report.Users)
	} else {
		s.Logger.Println("Users already exist, skipping user creation")
	}

	hosts, err := store.ListUsers(ctx, types.UserQueryFilters{Role: types.ROLE_HOST})
	if err != nil {
		return nil, err
	}
	guests, err := store.ListUsers(ctx, types.UserQueryFilters{Role: types.ROLE_GUEST})
	if err != nil {
		return nil, err
	}
	if len(hosts) == 0 || len(guests) == 0 {
		s.warn(report, "Not enough hosts or guests, need at least one of each")
		return report, nil
	}

	listings, err := store.ListListings(ctx, types.ListingQueryFilters{})
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		for _, l := range seedListings {
			listing := l
			listing.HostID = hosts[s.Rand.IntN(len(hosts))].ID
			if err := s.Service.CreateListing(ctx, &listing); err != nil {
				s.warn(report, "Could not create listing %q: %s", listing.Title, err.Error())
				continue
			}
			listings = append(listings, listing)
			report.Listings++
		}
		s.Logger.Printf("Created %d listings\n", report.Listings)
	} else {
		s.Logger.Println("Listings already exist, skipping listing creation")
	}
	if len(listings) == 0 {
		return report, nil
	}

	bookings, err := store.ListBookings(ctx, types.BookingQueryFilters{})
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		s.seedBookings(ctx, report, listings, guests)
	} else {
		s.Logger.Println("Bookings already exist, skipping booking creation")
	}

	reviews, err := store.ListReviews(ctx, types.ReviewQueryFilters{})
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		s.seedReviews(ctx, report, listings, guests)
	} else {
		s.Logger.Println("Reviews already exist, skipping review creation")
	}

	s.Logger.Println("Database seeding completed")
	return report, nil
}

func (s *Seeder) seedBookings(ctx context.Context, report *SeedReport, listings []models.Listing, guests []models.User) {
	today := s.today()
	for range SEED_BOOKINGS {
		listing := listings[s.Rand.IntN(len(listings))]
		guest := guests[s.Rand.IntN(len(guests))]
		checkIn := today.AddDays(1 + s.Rand.IntN(30))
		checkOut := checkIn.AddDays(2 + s.Rand.IntN(6))
		confirm := s.Rand.IntN(2) == 1

		booking, err := s.Service.CreateBooking(ctx, listing.ID, guest.ID, checkIn, checkOut)
		if err != nil {
			s.warn(report, "Could not create booking for %q: %s", listing.Title, err.Error())
			continue
		}
		if confirm {
			if _, err := s.Service.ConfirmBooking(ctx, booking.ID); err != nil {
				s.warn(report, "Could not confirm booking [%d]: %s", booking.ID, err.Error())
			}
		}
		report.Bookings++
	}
	s.Logger.Printf("Created %d bookings\n", report.Bookings)
}

func (s *Seeder) seedReviews(ctx context.Context, report *SeedReport, listings []models.Listing, guests []models.User) {
	for range SEED_REVIEWS {
		listing := listings[s.Rand.IntN(len(listings))]
		guest := guests[s.Rand.IntN(len(guests))]
		rating := MinRating + s.Rand.IntN(MaxRating-MinRating+1)
		var comment *string
		if s.Rand.Float64() > 0.5 {
			text := fmt.Sprintf("Great stay at %s!", listing.Title)
			comment = &text
		}

		if _, err := s.Service.RegisterReview(ctx, listing.ID, guest.ID, rating, comment); err != nil {
			s.warn(report, "Could not create review for %q: %s", listing.Title, err.Error())
			continue
		}
		report.Reviews++
	}
	s.Logger.Printf("Created %d reviews\n", report.Reviews)
}
