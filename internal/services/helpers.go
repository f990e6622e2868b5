package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"shoutout_backend/internal/algorithms"
	"shoutout_backend/internal/models"
)

// buildPagination assembles listing metadata, including the page
// button window rendered by clients.
func buildPagination(page, limit int, total int64) models.Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}
	return models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
		Pages:      algorithms.PageWindow(page, totalPages),
	}
}

// generateOrderNumber produces a human-quotable order reference like
// SO-20260901-4F2A1C.
func generateOrderNumber(now time.Time) string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// fall back to the clock; uniqueness is still enforced by the
		// order_number unique index
		return fmt.Sprintf("SO-%s-%06d", now.Format("20060102"), now.UnixNano()%1000000)
	}
	return fmt.Sprintf("SO-%s-%s", now.Format("20060102"), hex.EncodeToString(buf))
}

func generateSecureToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
