package services

import (
	"context"
	"testing"
	"time"

	"libshelf/internal/adapters/persistence/models"
	"libshelf/internal/adapters/persistence/repositories"
	"libshelf/internal/core/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoanService(t *testing.T) (*LoanService, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	svc := NewLoanService(db, repositories.NewLoanRepository(db), repositories.NewBookRepository(db))
	return svc, mock
}

func TestLoanService_Borrow(t *testing.T) {
	svc, mock := newLoanService(t)

	mock.ExpectQuery("SELECT \\* FROM `books`").
		WillReturnRows(bookRows(1, "1984", "George Orwell", 1))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `books` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `borrows`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	loan, err := svc.Borrow(context.Background(), 3, 1)
	require.NoError(t, err)

	assert.Equal(t, models.LoanStatusBorrowed, loan.Status)
	assert.Equal(t, "1984", loan.BookTitle)
	assert.Equal(t, uint(3), loan.UserID)
	assert.NotEmpty(t, loan.Reference)
	assert.Nil(t, loan.ReturnDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanService_Borrow_BookNotFound(t *testing.T) {
	svc, mock := newLoanService(t)

	mock.ExpectQuery("SELECT \\* FROM `books`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author", "stock"}))

	_, err := svc.Borrow(context.Background(), 3, 999)
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanService_Borrow_OutOfStock(t *testing.T) {
	svc, mock := newLoanService(t)

	mock.ExpectQuery("SELECT \\* FROM `books`").
		WillReturnRows(bookRows(1, "1984", "George Orwell", 0))

	_, err := svc.Borrow(context.Background(), 3, 1)
	assert.ErrorIs(t, err, domain.ErrOutOfStock)

	// stock check failed before any write
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanService_Borrow_LostRaceOnLastCopy(t *testing.T) {
	svc, mock := newLoanService(t)

	mock.ExpectQuery("SELECT \\* FROM `books`").
		WillReturnRows(bookRows(1, "1984", "George Orwell", 1))
	mock.ExpectBegin()
	// guarded update finds no row with stock > 0 anymore
	mock.ExpectExec("UPDATE `books` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.Borrow(context.Background(), 3, 1)
	assert.ErrorIs(t, err, domain.ErrOutOfStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanService_Return(t *testing.T) {
	svc, mock := newLoanService(t)

	mock.ExpectQuery("SELECT \\* FROM `borrows`").
		WillReturnRows(loanRows(7, "ref-7", 3, 1, "1984", models.LoanStatusBorrowed))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `books` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `borrows` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	loan, err := svc.Return(context.Background(), 3, 1)
	require.NoError(t, err)

	assert.Equal(t, models.LoanStatusReturned, loan.Status)
	require.NotNil(t, loan.ReturnDate)
	assert.False(t, loan.ReturnDate.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanService_Return_NoMatchingLoan(t *testing.T) {
	svc, mock := newLoanService(t)

	mock.ExpectQuery("SELECT \\* FROM `borrows`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "reference", "user_id", "book_id", "book_title", "status"}))

	_, err := svc.Return(context.Background(), 3, 1)
	assert.ErrorIs(t, err, domain.ErrLoanNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanService_History(t *testing.T) {
	svc, mock := newLoanService(t)

	rows := loanRows(7, "ref-7", 3, 1, "1984", models.LoanStatusReturned).
		AddRow(8, "ref-8", 2, 4, "Animal Farm", models.LoanStatusBorrowed, time.Now(), nil)
	mock.ExpectQuery("SELECT \\* FROM `borrows`").WillReturnRows(rows)

	loans, err := svc.History(context.Background(), 0, 5)
	require.NoError(t, err)
	assert.Len(t, loans, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanService_History_EmptyPageIsNotNil(t *testing.T) {
	svc, mock := newLoanService(t)

	mock.ExpectQuery("SELECT \\* FROM `borrows`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	loans, err := svc.History(context.Background(), 50, 5)
	require.NoError(t, err)
	assert.NotNil(t, loans)
	assert.Empty(t, loans)
}
