// Package catalog holds the fixed standard contents of a first aid box and
// the set of known boxes. Static reference data; never mutated at runtime.
package catalog

import "firstaidcheck/internal/domain"

// entries lists every standard item and its expected quantity, in the order
// checks are presented and reconciled.
var entries = []domain.CatalogEntry{
	{Name: "General First Aid Guidance Card", StandardQuantity: 1},
	{Name: "Assorted Sterile Plasters", StandardQuantity: 20},
	{Name: "Safety Pins", StandardQuantity: 6},
	{Name: "Medium Sterile Dressing (12cm x 12cm)", StandardQuantity: 6},
	{Name: "Large Sterile Dressing (18cm x 18cm)", StandardQuantity: 2},
	{Name: "Sterile Eye Pad Dressing", StandardQuantity: 2},
	{Name: "Sterile Saline Alcohol Free Cleansing Wipe", StandardQuantity: 6},
	{Name: "Nitrile Examination Gloves - Large (Pair)", StandardQuantity: 4},
	{Name: "Non Sterile Non Woven Triangular Bandage", StandardQuantity: 4},
}

var boxes = []string{"Back Kitchen", "Cafe", "Upstairs"}

// Entries returns the standard box contents in catalog order. The returned
// slice is a copy; callers may modify it freely.
func Entries() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(entries))
	copy(out, entries)
	return out
}

// Boxes returns the names of the known first aid boxes.
func Boxes() []string {
	out := make([]string, len(boxes))
	copy(out, boxes)
	return out
}

// StandardQuantity returns the expected quantity for an item, or 0 if the
// item is not in the catalog.
func StandardQuantity(name string) int {
	for _, e := range entries {
		if e.Name == name {
			return e.StandardQuantity
		}
	}
	return 0
}

// IsKnownBox reports whether name is one of the known first aid boxes.
func IsKnownBox(name string) bool {
	for _, b := range boxes {
		if b == name {
			return true
		}
	}
	return false
}
