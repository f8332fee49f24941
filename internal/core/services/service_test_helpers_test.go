package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB wraps a sqlmock connection in a GORM MySQL dialector, configured
// like the production connection (no implicit transactions).
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func bookRows(id uint, title, author string, stock int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "title", "author", "stock", "created_at", "updated_at"}).
		AddRow(id, title, author, stock, now, now)
}

func loanRows(id uint, reference string, userID, bookID uint, title, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "reference", "user_id", "book_id", "book_title", "status", "borrow_date", "return_date"}).
		AddRow(id, reference, userID, bookID, title, status, time.Now(), nil)
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count(*)"}).AddRow(n)
}
