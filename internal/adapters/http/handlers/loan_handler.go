package handlers

import (
	"errors"

	"libshelf/internal/core/domain"
	"libshelf/internal/core/services"
	"libshelf/internal/pkg/pagination"
	"libshelf/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles borrow/return endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// LoanRequest represents borrow/return request body
type LoanRequest struct {
	BookID uint `json:"bookId"`
}

// Borrow handles borrowing a book
// @Summary Borrow a book
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body LoanRequest true "Book to borrow"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/borrow [post]
func (h *LoanHandler) Borrow(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req LoanRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.BookID == 0 {
		return response.BadRequest(c, "bookId is required")
	}

	loan, err := h.loanService.Borrow(c.Context(), userID, req.BookID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookNotFound):
			return response.NotFound(c, "Book not found")
		case errors.Is(err, domain.ErrOutOfStock):
			return response.BadRequest(c, "Book out of stock")
		default:
			return response.InternalServerError(c, err.Error())
		}
	}

	return response.Success(c, "Book borrowed successfully", loan)
}

// Return handles returning a book
// @Summary Return a book
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body LoanRequest true "Book to return"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/return [post]
func (h *LoanHandler) Return(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req LoanRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.BookID == 0 {
		return response.BadRequest(c, "bookId is required")
	}

	loan, err := h.loanService.Return(c.Context(), userID, req.BookID)
	if err != nil {
		if errors.Is(err, domain.ErrLoanNotFound) {
			return response.BadRequest(c, "No matching borrow record found")
		}
		return response.InternalServerError(c, err.Error())
	}

	return response.Success(c, "Book returned successfully", loan)
}

// History handles the loan history listing
// @Summary Loan history
// @Description Paginated borrow history across all users
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} map[string]interface{}
// @Router /api/borrows [get]
func (h *LoanHandler) History(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	loans, err := h.loanService.History(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"page":   params.Page,
		"limit":  params.Limit,
		"data":   loans,
	})
}
