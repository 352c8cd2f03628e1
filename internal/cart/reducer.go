package cart

import "github.com/RenektonHokage/Tairet-MVP-sub001/internal/models"

// EmptyState returns the initial cart state.
func EmptyState() models.CartState {
	return models.CartState{Items: []models.CartLineItem{}}
}

// Reduce maps (state, action) to the next state. The input state is never
// mutated; total and hasInvalidItems are recomputed from the resulting
// items on every transition. A nil or unrecognized action returns the input
// state unchanged.
func Reduce(state models.CartState, action Action) models.CartState {
	switch a := action.(type) {
	case AddItem:
		return stateFor(addItem(state.Items, a.Item))
	case SetQuantity:
		return stateFor(setQuantity(state.Items, a.ID, a.Quantity))
	case RemoveItem:
		return stateFor(removeByID(state.Items, a.ID))
	case RemoveItemByIndex:
		return stateFor(removeByIndex(state.Items, a.Index))
	case ClearCart:
		return EmptyState()
	case LoadFromStorage:
		return stateFor(Normalize(a.Items))
	default:
		return state
	}
}

func stateFor(items []models.CartLineItem) models.CartState {
	return models.CartState{
		Items:           items,
		Total:           ComputeTotal(items),
		HasInvalidItems: ComputeInvalid(items),
	}
}

// addItem merges by line id: the existing line keeps its own price and gains
// the incoming quantity. Unknown ids append at the end.
func addItem(items []models.CartLineItem, incoming models.CartLineItem) []models.CartLineItem {
	next := make([]models.CartLineItem, len(items))
	copy(next, items)

	for i := range next {
		if next[i].ID == incoming.ID {
			next[i].Quantity += incoming.Quantity
			next[i].TotalPrice = next[i].Price * int64(next[i].Quantity)
			return next
		}
	}

	return append(next, incoming)
}

func setQuantity(items []models.CartLineItem, id string, quantity int) []models.CartLineItem {
	if quantity <= 0 {
		return removeByID(items, id)
	}

	next := make([]models.CartLineItem, len(items))
	copy(next, items)

	for i := range next {
		if next[i].ID == id {
			next[i].Quantity = quantity
			next[i].TotalPrice = next[i].Price * int64(quantity)
		}
	}

	return next
}

func removeByID(items []models.CartLineItem, id string) []models.CartLineItem {
	next := make([]models.CartLineItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			next = append(next, item)
		}
	}
	return next
}

// removeByIndex keeps filter semantics: an out-of-range index removes nothing.
func removeByIndex(items []models.CartLineItem, index int) []models.CartLineItem {
	next := make([]models.CartLineItem, 0, len(items))
	for i, item := range items {
		if i != index {
			next = append(next, item)
		}
	}
	return next
}
