package cart

import (
	"github.com/google/uuid"

	"github.com/RenektonHokage/Tairet-MVP-sub001/internal/models"
)

// IsWellFormedID reports whether value matches the canonical UUID text form
// (8-4-4-4-12 hex groups, case-insensitive). Other UUID encodings accepted by
// the uuid package (braces, urn prefix, bare hex) do not count.
func IsWellFormedID(value string) bool {
	if len(value) != 36 {
		return false
	}
	return uuid.Validate(value) == nil
}

// ComputeInvalid reports whether any line references a missing or malformed
// catalog id. Lines of unrecognized kind are never flagged.
func ComputeInvalid(items []models.CartLineItem) bool {
	for _, item := range items {
		if itemInvalid(item) {
			return true
		}
	}
	return false
}

func itemInvalid(item models.CartLineItem) bool {
	catalogID, ok := item.CatalogID()
	if !ok {
		return false
	}
	return !IsWellFormedID(catalogID)
}
