// Package validate converts raw string field values into validated typed
// values before they reach storage. All checks are local and synchronous.
package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"firstaidcheck/internal/catalog"
)

// DateLayout is the calendar date format used everywhere: 4-digit year,
// 2-digit month, 2-digit day, hyphen-separated.
const DateLayout = "2006-01-02"

// ErrInvalidBox is returned when no known first aid box was selected.
var ErrInvalidBox = errors.New("a known first aid box must be selected")

// InvalidQuantityError identifies the item whose quantity input did not
// parse as a non-negative integer.
type InvalidQuantityError struct {
	Item string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity for %q must be a non-negative whole number", e.Item)
}

// InvalidDateError identifies a date field whose value is not a valid
// YYYY-MM-DD calendar date.
type InvalidDateError struct {
	Field string
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s %q must be a valid YYYY-MM-DD date", e.Field, e.Value)
}

// Quantity parses a raw quantity input. Empty means zero.
func Quantity(item, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &InvalidQuantityError{Item: item}
	}
	return n, nil
}

// ExpiryDate parses a raw per-item expiry date. Empty is allowed; expiry
// tracking is optional.
func ExpiryDate(item, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse(DateLayout, raw); err != nil {
		return "", &InvalidDateError{Field: "expiry date for " + item, Value: raw}
	}
	return raw, nil
}

// CheckDate parses the check date, defaulting to today when empty.
func CheckDate(raw string, today time.Time) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return today.Format(DateLayout), nil
	}
	if _, err := time.Parse(DateLayout, raw); err != nil {
		return "", &InvalidDateError{Field: "check date", Value: raw}
	}
	return raw, nil
}

// Box verifies that a known first aid box was selected.
func Box(name string) error {
	if !catalog.IsKnownBox(name) {
		return ErrInvalidBox
	}
	return nil
}
