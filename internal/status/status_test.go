package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"firstaidcheck/internal/domain"
)

func TestStock(t *testing.T) {
	assert.Equal(t, domain.StockOK, Stock(6, 6))
	assert.Equal(t, domain.StockLow, Stock(6, 4))
	assert.Equal(t, domain.StockOver, Stock(6, 10))
	assert.Equal(t, domain.StockOK, Stock(0, 0))
}

func TestExpiry(t *testing.T) {
	today := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, domain.ExpiryExpired, Expiry("2024-12-01", today))
	assert.Equal(t, domain.ExpirySoon, Expiry("2025-02-01", today))
	assert.Equal(t, domain.ExpiryNone, Expiry("2026-01-01", today))
	assert.Equal(t, domain.ExpiryNone, Expiry("", today))
}

func TestExpiryToday(t *testing.T) {
	today := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// Expiring today is not yet expired, but well inside the 90-day window.
	assert.Equal(t, domain.ExpirySoon, Expiry("2025-01-01", today))
}

func TestExpiryWindowBoundary(t *testing.T) {
	today := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// 89 days out is soon; exactly 90 days out is not.
	assert.Equal(t, domain.ExpirySoon, Expiry("2025-03-31", today))
	assert.Equal(t, domain.ExpiryNone, Expiry("2025-04-01", today))
}

func TestExpiryIgnoresTimeOfDay(t *testing.T) {
	lateToday := time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, domain.ExpirySoon, Expiry("2025-01-01", lateToday))
}

func TestExpiryUnparsableTreatedAsAbsent(t *testing.T) {
	today := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, domain.ExpiryNone, Expiry("2025/02/01", today))
	assert.Equal(t, domain.ExpiryNone, Expiry("soon", today))
	assert.Equal(t, domain.ExpiryNone, Expiry("2025-02-30", today))
}
