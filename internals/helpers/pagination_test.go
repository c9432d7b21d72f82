package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOn(t *testing.T, target string, opt PageOptions) PageParams {
	t.Helper()
	app := fiber.New()
	var got PageParams
	app.Get("/list", func(c *fiber.Ctx) error {
		got = ParsePageWith(c, "created_at", "desc", opt)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParsePageDefaults(t *testing.T) {
	p := parseOn(t, "/list", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestParsePageClampsPerPage(t *testing.T) {
	p := parseOn(t, "/list?per_page=9999", DefaultOpts)
	assert.Equal(t, 200, p.PerPage)

	p = parseOn(t, "/list?per_page=-5", DefaultOpts)
	assert.Equal(t, 25, p.PerPage)

	p = parseOn(t, "/list?page=0", DefaultOpts)
	assert.Equal(t, 1, p.Page)
}

func TestParsePageAdminPreset(t *testing.T) {
	p := parseOn(t, "/list", AdminOpts)
	assert.Equal(t, 50, p.PerPage)

	p = parseOn(t, "/list?limit=400", AdminOpts)
	assert.Equal(t, 400, p.PerPage)
}

func TestSafeOrderClauseWhitelist(t *testing.T) {
	allowed := map[string]string{
		"created_at": "student_created_at",
		"name":       "student_name",
	}

	p := PageParams{SortBy: "name", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "student_name ASC", clause)

	// unknown key falls back to the default column, never raw user input
	p = PageParams{SortBy: "password; DROP TABLE students", SortOrder: "desc"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "student_created_at DESC", clause)
}

func TestOffset(t *testing.T) {
	p := PageParams{Page: 3, PerPage: 25}
	assert.Equal(t, 50, p.Offset())
	assert.Equal(t, 25, p.Limit())
}

func TestBuildPageMeta(t *testing.T) {
	meta := BuildPageMeta(101, PageParams{Page: 2, PerPage: 25})
	assert.Equal(t, 5, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, 3, *meta.NextPage)

	empty := BuildPageMeta(0, PageParams{Page: 1, PerPage: 25})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.Nil(t, empty.NextPage)
}
