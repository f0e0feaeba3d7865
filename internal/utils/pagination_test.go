package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseWith(t *testing.T, target string, parse func(c *fiber.Ctx)) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		parse(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   Pagination
	}{
		{"defaults", "/", Pagination{Page: 1, Limit: 10}},
		{"explicit values", "/?page=3&limit=25", Pagination{Page: 3, Limit: 25}},
		{"negative page clamps", "/?page=-2", Pagination{Page: 1, Limit: 10}},
		{"zero limit clamps", "/?limit=0", Pagination{Page: 1, Limit: 10}},
		{"garbage falls back", "/?page=abc&limit=xyz", Pagination{Page: 1, Limit: 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parseWith(t, tc.target, func(c *fiber.Ctx) {
				assert.Equal(t, tc.want, ParsePagination(c))
			})
		})
	}
}

func TestParsePositiveInt(t *testing.T) {
	parseWith(t, "/?days=45&bad=-1&junk=x", func(c *fiber.Ctx) {
		assert.Equal(t, 45, ParsePositiveInt(c, "days", 30))
		assert.Equal(t, 30, ParsePositiveInt(c, "bad", 30))
		assert.Equal(t, 30, ParsePositiveInt(c, "junk", 30))
		assert.Equal(t, 30, ParsePositiveInt(c, "missing", 30))
	})
}

func TestParseDate(t *testing.T) {
	parseWith(t, "/?start=2024-01-15&bad=15/01/2024", func(c *fiber.Ctx) {
		parsed := ParseDate(c, "start")
		require.NotNil(t, parsed)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *parsed)

		assert.Nil(t, ParseDate(c, "bad"))
		assert.Nil(t, ParseDate(c, "missing"))
	})
}
