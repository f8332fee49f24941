package repositories

import (
	"context"
	"time"

	"libshelf/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// loanRepository implements LoanRepository
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// GetActiveByUserAndBook gets the open loan of a user for a book
func (r *loanRepository) GetActiveByUserAndBook(ctx context.Context, userID, bookID uint) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ? AND status = ?", userID, bookID, models.LoanStatusBorrowed).
		First(&loan).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// List lists loans of all users, newest first
func (r *loanRepository) List(ctx context.Context, offset, limit int) ([]models.Loan, error) {
	var loans []models.Loan
	err := r.db.WithContext(ctx).
		Order("borrow_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&loans).Error
	return loans, err
}

// ListOverdueSince lists open loans borrowed before the cutoff
func (r *loanRepository) ListOverdueSince(ctx context.Context, before time.Time) ([]models.Loan, error) {
	var loans []models.Loan
	err := r.db.WithContext(ctx).
		Where("status = ? AND borrow_date < ?", models.LoanStatusBorrowed, before).
		Order("borrow_date ASC").
		Find(&loans).Error
	return loans, err
}

// CountActiveByUserID counts open loans held by a user
func (r *loanRepository) CountActiveByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Loan{}).
		Where("user_id = ? AND status = ?", userID, models.LoanStatusBorrowed).
		Count(&count).Error
	return count, err
}
