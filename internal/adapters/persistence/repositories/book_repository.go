package repositories

import (
	"context"

	"libshelf/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// bookRepository implements BookRepository
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// Create creates a new book
func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

// GetByID gets a book by ID
func (r *bookRepository) GetByID(ctx context.Context, id uint) (*models.Book, error) {
	var book models.Book
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// List lists books matching the search parameters
func (r *bookRepository) List(ctx context.Context, params SearchParams) ([]models.Book, error) {
	sql, args, err := buildBookListQuery(params)
	if err != nil {
		return nil, err
	}

	var books []models.Book
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}
