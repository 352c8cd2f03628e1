package cart

import "github.com/RenektonHokage/Tairet-MVP-sub001/internal/models"

// Action is the closed set of cart state transitions. The unexported marker
// method keeps the set closed so Reduce can switch over every variant.
type Action interface {
	isAction()
}

// AddItem appends a new line, or merges quantities into the existing line
// when one with the same id is already in the cart.
type AddItem struct {
	Item models.CartLineItem
}

// SetQuantity updates one line's quantity. A quantity of zero or less
// removes the line.
type SetQuantity struct {
	ID       string
	Quantity int
}

// RemoveItem removes the line with the given id.
type RemoveItem struct {
	ID string
}

// RemoveItemByIndex removes the line at the given position.
type RemoveItemByIndex struct {
	Index int
}

// ClearCart resets the cart to empty.
type ClearCart struct{}

// LoadFromStorage replaces the cart with persisted lines, running the
// normalization pass over them first. Dispatched once, at startup.
type LoadFromStorage struct {
	Items []models.CartLineItem
}

func (AddItem) isAction()           {}
func (SetQuantity) isAction()       {}
func (RemoveItem) isAction()        {}
func (RemoveItemByIndex) isAction() {}
func (ClearCart) isAction()         {}
func (LoadFromStorage) isAction()   {}
