package registrants

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aayakar/webinar-backend/internal/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	// maxLimit caps page size so a single request cannot pull the whole table.
	maxLimit = 100

	defaultSortBy    = "registrationDate"
	defaultSortOrder = "desc"
)

// sortColumns whitelists sortBy values and maps them to columns.
var sortColumns = map[string]string{
	"name":             "name",
	"email":            "email",
	"registrationDate": "registration_date",
	"status":           "status",
	"createdAt":        "created_at",
}

// ListParams are the applied filters for the admin listing endpoint. Page and
// limit are echoed through the pagination block, not the filters echo.
type ListParams struct {
	Page      int    `json:"-"`
	Limit     int    `json:"-"`
	Status    string `json:"status,omitempty"`
	Search    string `json:"search,omitempty"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// Pagination is the page summary returned alongside listing results.
type Pagination struct {
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
	Limit   int `json:"limit"`
}

// ParseListParams normalizes raw query values into applied list parameters.
// Unknown sortBy values fall back to the default; an invalid status is an error.
func ParseListParams(page, limit, status, search, sortBy, sortOrder string) (ListParams, error) {
	p := ListParams{
		Page:      defaultPage,
		Limit:     defaultLimit,
		SortBy:    defaultSortBy,
		SortOrder: defaultSortOrder,
	}
	if page != "" {
		if n, err := strconv.Atoi(page); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n >= 1 {
			p.Limit = n
		}
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if status != "" {
		if !models.ValidStatus(status) {
			return p, fmt.Errorf("status must be one of: %s", strings.Join(models.Statuses(), ", "))
		}
		p.Status = status
	}
	p.Search = strings.TrimSpace(search)
	if _, ok := sortColumns[sortBy]; ok {
		p.SortBy = sortBy
	}
	if sortOrder != "" {
		// Anything other than "desc" sorts ascending.
		if sortOrder == "desc" {
			p.SortOrder = "desc"
		} else {
			p.SortOrder = "asc"
		}
	}
	return p, nil
}

// Skip returns the row offset for the page.
func (p ListParams) Skip() int {
	return (p.Page - 1) * p.Limit
}

// OrderClause returns the SQL ORDER BY expression for the applied sort.
func (p ListParams) OrderClause() string {
	col := sortColumns[p.SortBy]
	dir := "ASC"
	if p.SortOrder == "desc" {
		dir = "DESC"
	}
	return col + " " + dir
}

// WhereClause returns the SQL WHERE expression and its arguments for the
// applied filters. Returns an empty string when no filter applies.
func (p ListParams) WhereClause() (string, []interface{}) {
	var conds []string
	var args []interface{}
	if p.Status != "" {
		args = append(args, p.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if p.Search != "" {
		args = append(args, "%"+p.Search+"%")
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", len(args), len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// PageSummary computes the pagination block for a total match count.
func (p ListParams) PageSummary(total int) Pagination {
	pages := 0
	if total > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Pagination{Current: p.Page, Pages: pages, Total: total, Limit: p.Limit}
}
