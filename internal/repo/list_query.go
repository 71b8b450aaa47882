package repo

import (
	"fmt"

	"gorm.io/gorm"

	"talentdesk/internal/domain"
)

// applyList translates the generic list contract (equality where-clauses,
// orderBy, limit) onto a gorm query. Owner scoping is applied by the
// caller before this and never flows through Where.
func applyList(tx *gorm.DB, q domain.ListQuery) *gorm.DB {
	for col, v := range q.Where {
		tx = tx.Where(fmt.Sprintf("%s = ?", col), v)
	}
	if q.OrderBy != nil {
		dir := "asc"
		if q.OrderBy.Desc {
			dir = "desc"
		}
		tx = tx.Order(q.OrderBy.Field + " " + dir)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	return tx
}
