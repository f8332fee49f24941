package repositories

import (
	"context"
	"time"

	"libshelf/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// BookRepository defines book repository interface
type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	GetByID(ctx context.Context, id uint) (*models.Book, error)
	List(ctx context.Context, params SearchParams) ([]models.Book, error)
}

// LoanRepository defines loan repository interface
type LoanRepository interface {
	GetActiveByUserAndBook(ctx context.Context, userID, bookID uint) (*models.Loan, error)
	List(ctx context.Context, offset, limit int) ([]models.Loan, error)
	ListOverdueSince(ctx context.Context, before time.Time) ([]models.Loan, error)
	CountActiveByUserID(ctx context.Context, userID uint) (int64, error)
}
