package services

import (
	"context"

	"libshelf/internal/adapters/persistence/models"
	"libshelf/internal/adapters/persistence/repositories"
)

// Listing modes
const (
	ModeListAll       = "list_all"
	ModeSearchPartial = "search_partial"
	ModeSearchExact   = "search_exact"
)

// BookService handles book listing and search
type BookService struct {
	bookRepo repositories.BookRepository
}

// NewBookService creates a new book service
func NewBookService(bookRepo repositories.BookRepository) *BookService {
	return &BookService{bookRepo: bookRepo}
}

// ListInput represents book listing input
type ListInput struct {
	Page   int
	Limit  int
	Offset int
	Search string
	Exact  bool
}

// BookListResult is the listing payload.
//
// TotalFound counts the rows of the current page only; no total-count query
// is issued.
type BookListResult struct {
	Status        string        `json:"status"`
	Mode          string        `json:"mode"`
	Page          int           `json:"page"`
	Limit         int           `json:"limit"`
	TotalFound    int           `json:"total_found"`
	SearchKeyword string        `json:"search_keyword"`
	IsExactMatch  bool          `json:"is_exact_match"`
	Data          []models.Book `json:"data"`
}

// List lists books with optional search and pagination
func (s *BookService) List(ctx context.Context, input *ListInput) (*BookListResult, error) {
	books, err := s.bookRepo.List(ctx, repositories.SearchParams{
		Search: input.Search,
		Exact:  input.Exact,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, err
	}

	mode := ModeListAll
	if input.Search != "" {
		if input.Exact {
			mode = ModeSearchExact
		} else {
			mode = ModeSearchPartial
		}
	}

	if books == nil {
		books = []models.Book{}
	}

	return &BookListResult{
		Status:        "success",
		Mode:          mode,
		Page:          input.Page,
		Limit:         input.Limit,
		TotalFound:    len(books),
		SearchKeyword: input.Search,
		IsExactMatch:  input.Exact,
		Data:          books,
	}, nil
}
