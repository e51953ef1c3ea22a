// Package reconcile merges persisted check item rows against the full
// catalog, producing exactly one entry per catalog item.
package reconcile

import "firstaidcheck/internal/domain"

// Merge returns one CheckItem per catalog entry, in catalog order. Items
// absent from existing get zero quantity and empty expiry/notes. Items
// present keep their persisted values but take the catalog's current
// standard quantity, not the stored snapshot: a new catalog item shows up
// in every future edit, while the saved row keeps the quantity that was
// standard at save time. Names match by exact case-sensitive equality.
func Merge(entries []domain.CatalogEntry, existing []*domain.CheckItem) []*domain.CheckItem {
	byName := make(map[string]*domain.CheckItem, len(existing))
	for _, item := range existing {
		byName[item.Name] = item
	}

	out := make([]*domain.CheckItem, 0, len(entries))
	for _, entry := range entries {
		item := &domain.CheckItem{
			Name:             entry.Name,
			StandardQuantity: entry.StandardQuantity,
		}
		if prev, ok := byName[entry.Name]; ok {
			item.ID = prev.ID
			item.CheckID = prev.CheckID
			item.CurrentQuantity = prev.CurrentQuantity
			item.ExpiryDate = prev.ExpiryDate
			item.Notes = prev.Notes
		}
		out = append(out, item)
	}
	return out
}
