package services

import (
	"context"
	"testing"

	"libshelf/internal/adapters/persistence/repositories"
	"libshelf/internal/core/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func newUserService(t *testing.T) (*UserService, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	svc := NewUserService(db, repositories.NewLoanRepository(db))
	return svc, mock
}

func TestUserService_Unregister(t *testing.T) {
	svc, mock := newUserService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `borrows`").
		WillReturnRows(countRows(0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `borrows`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.Unregister(context.Background(), 3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Unregister_ActiveLoanBlocks(t *testing.T) {
	svc, mock := newUserService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `borrows`").
		WillReturnRows(countRows(1))

	err := svc.Unregister(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrActiveLoan)

	// nothing was deleted
	assert.NoError(t, mock.ExpectationsWereMet())
}
