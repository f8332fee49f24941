package repositories

import (
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql"
)

// SearchParams holds the book listing filters
type SearchParams struct {
	Search string
	Exact  bool
	Limit  int
	Offset int
}

// buildBookListQuery renders the book listing statement with bound
// parameters. The keyword is never interpolated into the SQL text.
//
// Plain listing only shows books in stock; searching ignores the stock
// filter so depleted titles still show up in results.
func buildBookListQuery(p SearchParams) (string, []interface{}, error) {
	ds := goqu.Dialect("mysql").
		From("books").
		Order(goqu.I("title").Asc()).
		Limit(uint(p.Limit)).
		Offset(uint(p.Offset))

	if p.Search != "" {
		keyword := strings.ToLower(p.Search)
		op := "="
		if !p.Exact {
			op = "LIKE"
			keyword = "%" + keyword + "%"
		}
		ds = ds.Where(goqu.Or(
			goqu.L("LOWER(title) "+op+" ?", keyword),
			goqu.L("LOWER(author) "+op+" ?", keyword),
		))
	} else {
		ds = ds.Where(goqu.C("stock").Gt(0))
	}

	return ds.Prepared(true).ToSQL()
}
