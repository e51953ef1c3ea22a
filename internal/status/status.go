// Package status derives stock and expiry status labels for check items.
// All functions are pure; "today" is passed in by the caller.
package status

import (
	"time"

	"firstaidcheck/internal/domain"
)

const dateLayout = "2006-01-02"

// expiryWindow is how far ahead of today an expiry date counts as
// expiring soon.
const expiryWindow = 90 * 24 * time.Hour

// Stock compares the observed quantity against the standard quantity.
func Stock(standard, current int) domain.StockStatus {
	switch {
	case current < standard:
		return domain.StockLow
	case current > standard:
		return domain.StockOver
	default:
		return domain.StockOK
	}
}

// Expiry classifies an ISO YYYY-MM-DD expiry date relative to today.
// An empty or unparsable date yields ExpiryNone; expiry tracking is
// optional per item, so malformed input is treated as absent.
func Expiry(expiryDate string, today time.Time) domain.ExpiryStatus {
	if expiryDate == "" {
		return domain.ExpiryNone
	}
	exp, err := time.Parse(dateLayout, expiryDate)
	if err != nil {
		return domain.ExpiryNone
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case exp.Before(day):
		return domain.ExpiryExpired
	case exp.Sub(day) < expiryWindow:
		return domain.ExpirySoon
	default:
		return domain.ExpiryNone
	}
}
