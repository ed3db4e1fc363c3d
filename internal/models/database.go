package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/Flexingg/Savings-Web/internal/types"
	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

func init() {
	// Amounts are plain JSON numbers on the wire
	decimal.MarshalJSONWithoutQuotes = true
}

// Connect opens the SQLite database, migrates the schema and configures
// the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},

		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	// If you have ideas how to improve this, you are very welcome to open an issue or a PR. Thank you!
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	// Query callbacks
	err = db.Callback().Query().After("*").Register("savings_web:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("savings_web:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("savings_web:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("savings_web:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("savings_web:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// migrate migrates the schema and runs the one-off data migrations.
func migrate(db *gorm.DB) (err error) {
	// Expenses created before the date column existed only carry the
	// day-of-week index. Detect this before AutoMigrate adds the column
	// so the dates can be backfilled afterwards.
	backfillDates := db.Migrator().HasTable(&Expense{}) && !db.Migrator().HasColumn(&Expense{}, "date")

	err = db.AutoMigrate(Settings{}, Expense{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	if backfillDates {
		err = backfillExpenseDates(db)
		if err != nil {
			return fmt.Errorf("error during expense date backfill: %w", err)
		}
	}

	// The settings singleton always exists
	var settings Settings
	err = db.Attrs(defaultSettings()).FirstOrCreate(&settings).Error
	if err != nil {
		return fmt.Errorf("error during settings initialization: %w", err)
	}

	return nil
}

// backfillExpenseDates sets the date of all expenses without one by
// placing their day-of-week index into the current calendar week.
//
// It is idempotent, expenses that already have a date are not touched.
func backfillExpenseDates(db *gorm.DB) error {
	week := types.CurrentWeek()

	var expenses []Expense
	err := db.Find(&expenses).Error
	if err != nil {
		return err
	}

	for _, expense := range expenses {
		if !expense.Date.IsZero() {
			continue
		}

		err = db.Model(&expense).Update("date", week.Day(expense.Day)).Error
		if err != nil {
			return err
		}
	}

	return nil
}
