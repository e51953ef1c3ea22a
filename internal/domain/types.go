package domain

import "time"

// StockStatus describes how an observed quantity compares to the standard
// quantity for the item.
type StockStatus string

const (
	StockOK   StockStatus = "OK"
	StockLow  StockStatus = "LOW_STOCK"
	StockOver StockStatus = "OVERSTOCK"
)

// ExpiryStatus describes how an item's expiry date relates to today.
// Items without a usable expiry date are ExpiryNone.
type ExpiryStatus string

const (
	ExpiryNone    ExpiryStatus = "NONE"
	ExpiryExpired ExpiryStatus = "EXPIRED"
	ExpirySoon    ExpiryStatus = "EXPIRING_SOON"
)

// CatalogEntry is one line of the standard first aid box contents.
type CatalogEntry struct {
	Name             string `json:"item_name"`
	StandardQuantity int    `json:"standard_quantity"`
}

// Check is one inspection of one first aid box on one date. CheckDate is an
// ISO YYYY-MM-DD string, matching the storage format.
type Check struct {
	ID           int64     `json:"id"`
	BoxName      string    `json:"box_name"`
	CheckDate    string    `json:"check_date"`
	GeneralNotes string    `json:"general_notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// CheckItem is one catalog item as observed during a check. StandardQuantity
// is a snapshot of the catalog value at save time, so old checks stay
// interpretable if the catalog changes later. ExpiryDate is ISO YYYY-MM-DD
// or empty.
type CheckItem struct {
	ID               int64  `json:"id"`
	CheckID          int64  `json:"check_id"`
	Name             string `json:"item_name"`
	StandardQuantity int    `json:"standard_quantity"`
	CurrentQuantity  int    `json:"current_quantity"`
	ExpiryDate       string `json:"expiry_date"`
	Notes            string `json:"item_notes"`
}
