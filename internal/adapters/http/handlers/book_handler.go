package handlers

import (
	"libshelf/internal/core/services"
	"libshelf/internal/pkg/pagination"
	"libshelf/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BookHandler handles book listing endpoints
type BookHandler struct {
	bookService *services.BookService
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService *services.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// List handles book listing with search and pagination
// @Summary List books
// @Description Paginated book listing with optional partial or exact search
// @Tags Books
// @Produce json
// @Param page query int false "Page number"
// @Param search query string false "Search keyword"
// @Param exact query bool false "Exact match mode"
// @Success 200 {object} services.BookListResult
// @Router /api/books [get]
func (h *BookHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	input := &services.ListInput{
		Page:   params.Page,
		Limit:  params.Limit,
		Offset: params.Offset,
		Search: c.Query("search", ""),
		Exact:  c.Query("exact") == "true",
	}

	result, err := h.bookService.List(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}

	return c.JSON(result)
}
