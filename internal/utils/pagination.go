package utils

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pagination holds pagination parameters.
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination reads page and limit query params with sane defaults.
// Malformed or out-of-range values are clamped, never rejected.
func ParsePagination(c *fiber.Ctx) Pagination {
	page := parseInt(c.Query("page", "1"), 1)
	limit := parseInt(c.Query("limit", "10"), 10)
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	return Pagination{
		Page:  page,
		Limit: limit,
	}
}

// ParsePositiveInt reads a positive integer query param, falling back when the
// value is missing, malformed or not positive.
func ParsePositiveInt(c *fiber.Ctx, key string, fallback int) int {
	value := parseInt(c.Query(key), fallback)
	if value <= 0 {
		return fallback
	}
	return value
}

// ParseDate reads a calendar-date query param (YYYY-MM-DD). Missing or
// malformed values yield nil, which callers treat as "filter absent".
func ParseDate(c *fiber.Ctx, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
