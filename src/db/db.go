package db

import (
	"alxtravel/src/config"
	"alxtravel/src/models"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

// Open connects with the named driver. Dialect errors are translated so that
// unique and foreign key violations surface as gorm sentinels.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DRIVER_POSTGRES, "":
		dialector = postgres.Open(dsn)
	case config.DRIVER_MYSQL:
		dialector = mysql.Open(dsn)
	case config.DRIVER_SQLITE:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	_db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	sqlDB, err := _db.DB()
	if err != nil {
		return nil, err
	}
	if driver == config.DRIVER_SQLITE {
		// a single connection keeps in-memory databases shared
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}
	return _db, nil
}

func GetDb() *gorm.DB {
	if db != nil {
		return db
	}
	_db, err := Open(config.GetDriver(), config.GetDSN())
	if err != nil {
		log.Printf("Error connecting to database: %s\n", err.Error())
		panic(err)
	}
	db = _db
	return _db
}

func NewDB(newdb *gorm.DB) {
	db = newdb
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
		&models.Review{},
	)
}
