package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// applyFilter applies pagination and ordering to a query. Only columns in
// the allowlist may be used for ordering, to keep user-supplied sort keys
// out of raw SQL.
func applyFilter(query *gorm.DB, filter shared.Filter, sortable map[string]bool) *gorm.DB {
	if filter.OrderBy != "" && sortable[filter.OrderBy] {
		dir := "ASC"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + dir)
	}
	return query.Offset(filter.Offset()).Limit(filter.Limit())
}
