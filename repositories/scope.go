package repositories

import (
	"yournews/models"

	"gorm.io/gorm"
)

// applyContentScope narrows a content query to what the scope allows. The
// table name prefixes every column so the query survives joins.
func applyContentScope(query *gorm.DB, table string, scope models.ContentScope, hasStatus bool) *gorm.DB {
	if !scope.Unrestricted {
		journalists, publishers := scope.JournalistIDs, scope.PublisherIDs
		switch {
		case len(journalists) > 0 && len(publishers) > 0:
			query = query.Where("("+table+".journalist_id IN ? OR "+table+".publisher_id IN ?)", journalists, publishers)
		case len(journalists) > 0:
			query = query.Where(table+".journalist_id IN ?", journalists)
		case len(publishers) > 0:
			query = query.Where(table+".publisher_id IN ?", publishers)
		default:
			// nothing subscribed, nothing visible
			query = query.Where("1 = 0")
		}
	}

	if hasStatus {
		if scope.ApprovedOnly {
			query = query.Where(table+".status = ?", models.StatusApproved)
		} else if scope.Query.Status != "" {
			query = query.Where(table+".status = ?", scope.Query.Status)
		}
	}

	if scope.Query.JournalistID != nil {
		query = query.Where(table+".journalist_id = ?", *scope.Query.JournalistID)
	}
	if scope.Query.PublisherID != nil {
		query = query.Where(table+".publisher_id = ?", *scope.Query.PublisherID)
	}
	return query
}

// paginate orders newest first with the id as tie breaker.
func paginate(query *gorm.DB, table string, q models.ContentQuery) *gorm.DB {
	query = query.Order(table + ".created_at DESC").Order(table + ".id DESC")
	if q.PageSize > 0 {
		query = query.Offset(q.Offset()).Limit(q.PageSize)
	}
	return query
}
