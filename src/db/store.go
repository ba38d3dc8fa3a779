package db

import (
	"alxtravel/src/common"
	"alxtravel/src/models"
	"alxtravel/src/models/scopes"
	"alxtravel/src/types"
	"context"
	"errors"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	myDuplicateEntry      = 1062
	myNoReferencedRow     = 1452
)

// Store persists users, listings, bookings and reviews with gorm.
type Store struct {
	db *gorm.DB
}

var _ common.Store = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == myDuplicateEntry
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == myNoReferencedRow
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}

// translate maps driver errors onto the domain errors. duplicate is returned
// for unique violations.
func translate(err error, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return common.ErrNotFound
	case duplicate != nil && isDuplicate(err):
		return duplicate
	case isForeignKeyViolation(err):
		return common.ErrNotFound
	}
	return err
}

func rowsOrNotFound(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func withListingAggregate(prefix string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Preload(prefix + "Host").
			Preload(prefix+"Reviews", func(db *gorm.DB) *gorm.DB {
				return db.Order("id asc")
			}).
			Preload(prefix + "Reviews.Guest")
	}
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
	return translate(err, common.ErrDuplicateUser)
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Scopes(scopes.WithID(id)).First(&user).Error; err != nil {
		return nil, translate(err, nil)
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context, filters types.UserQueryFilters) ([]models.User, error) {
	var users []models.User
	q := s.db.WithContext(ctx).Model(&models.User{})
	if filters.Role != "" {
		q = q.Where("role = ?", filters.Role)
	}
	if err := q.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes the user, the listings they host and every booking and
// review attached to either.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listingIds []uint
		err := tx.
			Model(&models.Listing{}).
			Where("host_id = ?", id).
			Pluck("id", &listingIds).
			Error
		if err != nil {
			return err
		}
		if len(listingIds) > 0 {
			if err := tx.Where("listing_id IN ?", listingIds).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("listing_id IN ?", listingIds).Delete(&models.Booking{}).Error; err != nil {
				return err
			}
			if err := tx.Scopes(scopes.WithIDs(listingIds...)).Delete(&models.Listing{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("guest_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("guest_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return rowsOrNotFound(tx.Delete(&models.User{}, id))
	})
}

func (s *Store) CreateListing(ctx context.Context, listing *models.Listing) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(listing).Error
	return translate(err, nil)
}

func (s *Store) GetListing(ctx context.Context, id uint) (*models.Listing, error) {
	var listing models.Listing
	err := s.db.WithContext(ctx).
		Scopes(withListingAggregate(""), scopes.WithID(id)).
		First(&listing).
		Error
	if err != nil {
		return nil, translate(err, nil)
	}
	return &listing, nil
}

func (s *Store) ListListings(ctx context.Context, filters types.ListingQueryFilters) ([]models.Listing, error) {
	var listings []models.Listing
	q := s.db.WithContext(ctx).Model(&models.Listing{}).Scopes(withListingAggregate(""))
	if filters.City != "" {
		q = q.Where("city = ?", filters.City)
	}
	if filters.Country != "" {
		q = q.Where("country = ?", filters.Country)
	}
	if filters.HostID != 0 {
		q = q.Where("host_id = ?", filters.HostID)
	}
	if err := q.Order("id asc").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (s *Store) UpdateListing(ctx context.Context, listing *models.Listing) error {
	res := s.db.WithContext(ctx).
		Model(listing).
		Select("Title", "Description", "PricePerNight", "NumberOfRooms", "MaxGuests", "City", "Country").
		Updates(listing)
	return rowsOrNotFound(res)
}

func (s *Store) DeleteListing(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(scopes.WithListing(id)).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Scopes(scopes.WithListing(id)).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return rowsOrNotFound(tx.Delete(&models.Listing{}, id))
	})
}

// CountBookings counts bookings of every status per listing. Listings without
// bookings are absent from the result.
func (s *Store) CountBookings(ctx context.Context, listingIds ...uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(listingIds))
	if len(listingIds) == 0 {
		return counts, nil
	}
	var rows []struct {
		ListingID uint
		Count     int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("listing_id, count(*) as count").
		Where("listing_id IN ?", listingIds).
		Group("listing_id").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.ListingID] = r.Count
	}
	return counts, nil
}

func (s *Store) CreateBooking(ctx context.Context, booking *models.Booking) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(booking).Error
	return translate(err, common.ErrDuplicateBooking)
}

func (s *Store) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).
		Preload("Guest").
		Preload("Listing").
		Scopes(withListingAggregate("Listing."), scopes.WithID(id)).
		First(&booking).
		Error
	if err != nil {
		return nil, translate(err, nil)
	}
	return &booking, nil
}

func (s *Store) ListBookings(ctx context.Context, filters types.BookingQueryFilters) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Model(&models.Booking{}).
		Preload("Guest").
		Preload("Listing").
		Scopes(
			withListingAggregate("Listing."),
			scopes.WithListing(filters.ListingID),
			scopes.WithGuest(filters.GuestID),
			scopes.WithStatus(filters.Status),
		).
		Order("id asc").
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Store) UpdateBookingStatus(ctx context.Context, id uint, from, to types.BookingStatus) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: %q -> %q", common.ErrInvalidStatusTransition, from, to)
	}
	tx := s.db.WithContext(ctx)
	res := tx.
		Model(&models.Booking{}).
		Scopes(scopes.WithID(id), scopes.WithStatus(from)).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var count int64
	if err := tx.Model(&models.Booking{}).Scopes(scopes.WithID(id)).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return common.ErrNotFound
	}
	return common.ErrInvalidStatusTransition
}

func (s *Store) ListLapsedBookings(ctx context.Context, today types.Date) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Model(&models.Booking{}).
		Scopes(scopes.WithPendingStatus, scopes.CheckInBefore(today)).
		Order("id asc").
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Store) DeleteBooking(ctx context.Context, id uint) error {
	return rowsOrNotFound(s.db.WithContext(ctx).Delete(&models.Booking{}, id))
}

func (s *Store) CreateReview(ctx context.Context, review *models.Review) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error
	return translate(err, common.ErrDuplicateReview)
}

func (s *Store) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	err := s.db.WithContext(ctx).
		Preload("Guest").
		Scopes(scopes.WithID(id)).
		First(&review).
		Error
	if err != nil {
		return nil, translate(err, nil)
	}
	return &review, nil
}

func (s *Store) ListReviews(ctx context.Context, filters types.ReviewQueryFilters) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Preload("Guest").
		Scopes(scopes.WithListing(filters.ListingID), scopes.WithGuest(filters.GuestID)).
		Order("id asc").
		Find(&reviews).
		Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Store) UpdateReview(ctx context.Context, review *models.Review) error {
	res := s.db.WithContext(ctx).
		Model(review).
		Select("Rating", "Comment").
		Updates(review)
	return rowsOrNotFound(res)
}

func (s *Store) DeleteReview(ctx context.Context, id uint) error {
	return rowsOrNotFound(s.db.WithContext(ctx).Delete(&models.Review{}, id))
}
