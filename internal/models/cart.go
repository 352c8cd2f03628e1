package models

import "encoding/json"

// ItemKind identifies what a cart line sells
type ItemKind string

const (
	KindTicket ItemKind = "ticket"
	KindTable  ItemKind = "table"
)

// CartLineItem represents one selected ticket or table in the shopping cart.
// The JSON field names mirror the persisted cart layout, so carts written by
// older clients load without migration.
type CartLineItem struct {
	ID           string   `json:"id"`
	Kind         ItemKind `json:"kind"`
	TicketTypeID string   `json:"ticket_type_id,omitempty"`
	TableTypeID  string   `json:"table_type_id,omitempty"`
	Name         string   `json:"name"`
	Venue        string   `json:"venue"`
	LocalID      string   `json:"localId"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Quantity     int      `json:"quantity"`
	Price        int64    `json:"price"` // Price in minor currency units
	TotalPrice   int64    `json:"totalPrice"`
	Invalid      bool     `json:"_invalid,omitempty"`
}

// CartState represents the shopping cart aggregate
type CartState struct {
	Items           []CartLineItem `json:"items"`
	Total           int64          `json:"total"`
	HasInvalidItems bool           `json:"hasInvalidItems"`
}

// CatalogID returns the catalog reference matching the line's kind.
// Unrecognized kinds have no catalog reference.
func (i CartLineItem) CatalogID() (string, bool) {
	switch i.Kind {
	case KindTicket:
		return i.TicketTypeID, true
	case KindTable:
		return i.TableTypeID, true
	default:
		return "", false
	}
}

// cartLineItemJSON carries the legacy "type" alias for Kind. Older persisted
// carts wrote the kind under "type"; both names are emitted and accepted.
type cartLineItemJSON struct {
	ID           string   `json:"id"`
	Kind         ItemKind `json:"kind,omitempty"`
	LegacyKind   ItemKind `json:"type,omitempty"`
	TicketTypeID string   `json:"ticket_type_id,omitempty"`
	TableTypeID  string   `json:"table_type_id,omitempty"`
	Name         string   `json:"name"`
	Venue        string   `json:"venue"`
	LocalID      string   `json:"localId"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Quantity     int      `json:"quantity"`
	Price        int64    `json:"price"`
	TotalPrice   int64    `json:"totalPrice"`
	Invalid      bool     `json:"_invalid,omitempty"`
}

// MarshalJSON writes the kind under both "kind" and the legacy "type" alias
func (i CartLineItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(cartLineItemJSON{
		ID:           i.ID,
		Kind:         i.Kind,
		LegacyKind:   i.Kind,
		TicketTypeID: i.TicketTypeID,
		TableTypeID:  i.TableTypeID,
		Name:         i.Name,
		Venue:        i.Venue,
		LocalID:      i.LocalID,
		Date:         i.Date,
		Time:         i.Time,
		Quantity:     i.Quantity,
		Price:        i.Price,
		TotalPrice:   i.TotalPrice,
		Invalid:      i.Invalid,
	})
}

// UnmarshalJSON accepts the kind under "kind" or the legacy "type" alias,
// preferring "kind" when both are present
func (i *CartLineItem) UnmarshalJSON(data []byte) error {
	var aux cartLineItemJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	kind := aux.Kind
	if kind == "" {
		kind = aux.LegacyKind
	}

	*i = CartLineItem{
		ID:           aux.ID,
		Kind:         kind,
		TicketTypeID: aux.TicketTypeID,
		TableTypeID:  aux.TableTypeID,
		Name:         aux.Name,
		Venue:        aux.Venue,
		LocalID:      aux.LocalID,
		Date:         aux.Date,
		Time:         aux.Time,
		Quantity:     aux.Quantity,
		Price:        aux.Price,
		TotalPrice:   aux.TotalPrice,
		Invalid:      aux.Invalid,
	}
	return nil
}
