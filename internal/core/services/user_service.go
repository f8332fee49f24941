package services

import (
	"context"
	"log"

	"libshelf/internal/adapters/persistence/models"
	"libshelf/internal/adapters/persistence/repositories"
	"libshelf/internal/core/domain"

	"gorm.io/gorm"
)

// UserService handles account management beyond auth
type UserService struct {
	db       *gorm.DB
	loanRepo repositories.LoanRepository
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, loanRepo repositories.LoanRepository) *UserService {
	return &UserService{
		db:       db,
		loanRepo: loanRepo,
	}
}

// Unregister deletes a user and their loan history. Refused while the user
// still holds a borrowed book. History and account are removed in one
// transaction so a failure cannot orphan loan rows.
func (s *UserService) Unregister(ctx context.Context, userID uint) error {
	active, err := s.loanRepo.CountActiveByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if active > 0 {
		return domain.ErrActiveLoan
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Loan{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return err
	}

	log.Printf("🗑️ User deleted: ID %d", userID)
	return nil
}
