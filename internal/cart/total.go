package cart

import "github.com/RenektonHokage/Tairet-MVP-sub001/internal/models"

// ComputeTotal sums every line's total price. Currency formatting is a
// presentation concern and happens elsewhere.
func ComputeTotal(items []models.CartLineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.TotalPrice
	}
	return total
}
