package services

import (
	"context"
	"errors"
	"log"
	"time"

	"libshelf/internal/adapters/persistence/models"
	"libshelf/internal/adapters/persistence/repositories"
	"libshelf/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoanService handles the borrow/return workflow
type LoanService struct {
	db       *gorm.DB
	loanRepo repositories.LoanRepository
	bookRepo repositories.BookRepository
}

// NewLoanService creates a new loan service
func NewLoanService(db *gorm.DB, loanRepo repositories.LoanRepository, bookRepo repositories.BookRepository) *LoanService {
	return &LoanService{
		db:       db,
		loanRepo: loanRepo,
		bookRepo: bookRepo,
	}
}

// Borrow decrements stock and opens a loan for the user. Both writes run in
// one transaction with a guarded update, so stock cannot go negative even
// under concurrent borrows of the last copy.
func (s *LoanService) Borrow(ctx context.Context, userID, bookID uint) (*models.Loan, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	if book.Stock <= 0 {
		return nil, domain.ErrOutOfStock
	}

	loan := &models.Loan{
		Reference: uuid.New().String(),
		UserID:    userID,
		BookID:    bookID,
		BookTitle: book.Title,
		Status:    models.LoanStatusBorrowed,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Book{}).
			Where("id = ? AND stock > 0", bookID).
			UpdateColumn("stock", gorm.Expr("stock - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrOutOfStock
		}
		return tx.Create(loan).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("📖 Book borrowed: %q by user %d", loan.BookTitle, userID)
	return loan, nil
}

// Return closes the user's open loan for the book and restores stock by one
func (s *LoanService) Return(ctx context.Context, userID, bookID uint) (*models.Loan, error) {
	loan, err := s.loanRepo.GetActiveByUserAndBook(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, err
	}

	now := time.Now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Book{}).
			Where("id = ?", bookID).
			UpdateColumn("stock", gorm.Expr("stock + 1")).Error; err != nil {
			return err
		}
		return tx.Model(&models.Loan{}).
			Where("id = ?", loan.ID).
			Updates(map[string]interface{}{
				"status":      models.LoanStatusReturned,
				"return_date": now,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	loan.Status = models.LoanStatusReturned
	loan.ReturnDate = &now

	log.Printf("📚 Book returned: %q by user %d", loan.BookTitle, userID)
	return loan, nil
}

// History lists all users' loans, newest first
func (s *LoanService) History(ctx context.Context, offset, limit int) ([]models.Loan, error) {
	loans, err := s.loanRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	if loans == nil {
		loans = []models.Loan{}
	}
	return loans, nil
}
