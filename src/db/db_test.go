package db

import (
	"alxtravel/src/common"
	"alxtravel/src/models"
	"alxtravel/src/types"
	"context"
	"log"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	sqldb, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqldb}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

func GetMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	gormDB, mock := NewMockDB()
	db = gormDB
	return gormDB, mock
}

func TestDB(t *testing.T) {
	gormDB, _ := GetMockDB()

	assert.Equal(t, "postgres", db.Name())
	assert.Same(t, gormDB, GetDb())
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestCreateBookingUniqueViolation(t *testing.T) {
	gormDB, mock := NewMockDB()
	store := NewStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_booking_listing_dates"})
	mock.ExpectRollback()

	err := store.CreateBooking(context.Background(), &models.Booking{
		ListingID:    1,
		GuestID:      2,
		CheckInDate:  types.NewDate(2025, time.August, 1),
		CheckOutDate: types.NewDate(2025, time.August, 4),
		TotalPrice:   decimal.RequireFromString("225.00"),
		Status:       types.BOOKING_PENDING,
	})

	assert.ErrorIs(t, err, common.ErrDuplicateBooking)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReviewUniqueViolation(t *testing.T) {
	gormDB, mock := NewMockDB()
	store := NewStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
	mock.ExpectRollback()

	err := store.CreateReview(context.Background(), &models.Review{ListingID: 1, GuestID: 2, Rating: 5})

	assert.ErrorIs(t, err, common.ErrDuplicateReview)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingForeignKeyViolation(t *testing.T) {
	gormDB, mock := NewMockDB()
	store := NewStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})
	mock.ExpectRollback()

	err := store.CreateBooking(context.Background(), &models.Booking{
		ListingID:    99,
		GuestID:      2,
		CheckInDate:  types.NewDate(2025, time.August, 1),
		CheckOutDate: types.NewDate(2025, time.August, 2),
		TotalPrice:   decimal.RequireFromString("75.00"),
		Status:       types.BOOKING_PENDING,
	})

	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBookingStatusStale(t *testing.T) {
	gormDB, mock := NewMockDB()
	store := NewStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET "status"=\$1,"updated_at"=\$2 WHERE id = \$3 AND status = \$4`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := store.UpdateBookingStatus(context.Background(), 7, types.BOOKING_PENDING, types.BOOKING_CONFIRMED)

	assert.ErrorIs(t, err, common.ErrInvalidStatusTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil, common.ErrDuplicateBooking))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound, nil), common.ErrNotFound)
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey, common.ErrDuplicateReview), common.ErrDuplicateReview)
	assert.ErrorIs(t, translate(gorm.ErrForeignKeyViolated, nil), common.ErrNotFound)
	assert.ErrorIs(t, translate(&pgconn.PgError{Code: pgUniqueViolation}, common.ErrDuplicateUser), common.ErrDuplicateUser)
}
