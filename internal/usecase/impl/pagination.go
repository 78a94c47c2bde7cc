package impl

import (
	"strings"

	"plantcare/internal/domain/constants"
)

// normalizePagination clamps page and limit to the listing bounds and returns the row offset.
func normalizePagination(page, limit int) (int, int, int) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}

	return page, limit, (page - 1) * limit
}

var searchReplacer = strings.NewReplacer("<", "", ">", "")

// sanitizeSearch drops angle brackets and surrounding whitespace from free-text filters.
func sanitizeSearch(s string) string {
	return strings.TrimSpace(searchReplacer.Replace(s))
}
