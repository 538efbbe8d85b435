package handlers

import (
	"net/http"
	"strconv"
)

// parseListQuery reads the shared admin list parameters with the defaults
// every CRUD screen uses.
func parseListQuery(r *http.Request) (search string, page, limit int) {
	query := r.URL.Query()

	search = query.Get("search")

	page = 1
	if v, err := strconv.Atoi(query.Get("page")); err == nil && v > 0 {
		page = v
	}

	limit = 10
	if v, err := strconv.Atoi(query.Get("limit")); err == nil && v > 0 {
		limit = v
	}

	return search, page, limit
}
