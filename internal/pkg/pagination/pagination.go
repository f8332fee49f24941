package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// PageSize is the fixed number of items per page
const PageSize = 5

// Params represents pagination parameters
type Params struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"-"`
}

// GetParams extracts the page number from the request and clamps it to 1.
// The page size is fixed.
func GetParams(c *fiber.Ctx) *Params {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}

	return &Params{
		Page:   page,
		Limit:  PageSize,
		Offset: (page - 1) * PageSize,
	}
}
