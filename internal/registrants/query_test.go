package registrants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseListParams(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		p, err := ParseListParams("", "", "", "", "", "")
		require.NoError(t, err)
		require.Equal(t, 1, p.Page)
		require.Equal(t, 10, p.Limit)
		require.Equal(t, "registrationDate", p.SortBy)
		require.Equal(t, "desc", p.SortOrder)
		require.Empty(t, p.Status)
		require.Empty(t, p.Search)
	})

	t.Run("ignores non-numeric and non-positive page and limit", func(t *testing.T) {
		p, err := ParseListParams("abc", "-5", "", "", "", "")
		require.NoError(t, err)
		require.Equal(t, 1, p.Page)
		require.Equal(t, 10, p.Limit)
	})

	t.Run("caps limit", func(t *testing.T) {
		p, err := ParseListParams("1", "5000", "", "", "", "")
		require.NoError(t, err)
		require.Equal(t, maxLimit, p.Limit)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := ParseListParams("", "", "pending", "", "", "")
		require.Error(t, err)
	})

	t.Run("accepts valid status", func(t *testing.T) {
		p, err := ParseListParams("", "", "confirmed", "", "", "")
		require.NoError(t, err)
		require.Equal(t, "confirmed", p.Status)
	})

	t.Run("unknown sortBy falls back to default", func(t *testing.T) {
		p, err := ParseListParams("", "", "", "", "passwordHash", "")
		require.NoError(t, err)
		require.Equal(t, "registrationDate", p.SortBy)
	})

	t.Run("non-desc sortOrder sorts ascending", func(t *testing.T) {
		p, err := ParseListParams("", "", "", "", "name", "ascending")
		require.NoError(t, err)
		require.Equal(t, "asc", p.SortOrder)
		require.Equal(t, "name ASC", p.OrderClause())
	})
}

func TestListParamsSkip(t *testing.T) {
	t.Parallel()

	p := ListParams{Page: 3, Limit: 10}
	require.Equal(t, 20, p.Skip())

	p = ListParams{Page: 1, Limit: 25}
	require.Equal(t, 0, p.Skip())
}

func TestListParamsWhereClause(t *testing.T) {
	t.Parallel()

	t.Run("empty without filters", func(t *testing.T) {
		where, args := ListParams{}.WhereClause()
		require.Empty(t, where)
		require.Empty(t, args)
	})

	t.Run("status only", func(t *testing.T) {
		where, args := ListParams{Status: "attended"}.WhereClause()
		require.Equal(t, " WHERE status = $1", where)
		require.Equal(t, []interface{}{"attended"}, args)
	})

	t.Run("search wraps pattern and matches name or email", func(t *testing.T) {
		where, args := ListParams{Search: "smith"}.WhereClause()
		require.Equal(t, " WHERE (name ILIKE $1 OR email ILIKE $1)", where)
		require.Equal(t, []interface{}{"%smith%"}, args)
	})

	t.Run("status and search combine", func(t *testing.T) {
		where, args := ListParams{Status: "registered", Search: "smith"}.WhereClause()
		require.Equal(t, " WHERE status = $1 AND (name ILIKE $2 OR email ILIKE $2)", where)
		require.Len(t, args, 2)
	})
}

func TestPageSummary(t *testing.T) {
	t.Parallel()

	p := ListParams{Page: 2, Limit: 10}

	t.Run("rounds pages up", func(t *testing.T) {
		sum := p.PageSummary(25)
		require.Equal(t, 2, sum.Current)
		require.Equal(t, 3, sum.Pages)
		require.Equal(t, 25, sum.Total)
		require.Equal(t, 10, sum.Limit)
	})

	t.Run("exact multiple", func(t *testing.T) {
		require.Equal(t, 2, p.PageSummary(20).Pages)
	})

	t.Run("zero total yields zero pages", func(t *testing.T) {
		require.Equal(t, 0, p.PageSummary(0).Pages)
	})
}
