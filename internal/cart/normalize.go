package cart

import "github.com/RenektonHokage/Tairet-MVP-sub001/internal/models"

// Normalize runs the one-shot rehydration pass over persisted lines: any
// ticket or table line whose catalog id is missing or not UUID-shaped gets
// its _invalid marker set, so the UI can badge exactly those legacy lines.
// All other fields are left untouched. Normalize never clears a marker that
// was already set.
func Normalize(items []models.CartLineItem) []models.CartLineItem {
	next := make([]models.CartLineItem, len(items))
	copy(next, items)

	for i := range next {
		if itemInvalid(next[i]) {
			next[i].Invalid = true
		}
	}

	return next
}
