package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/RenektonHokage/Tairet-MVP-sub001/internal/models"
	"github.com/RenektonHokage/Tairet-MVP-sub001/internal/storage"
)

// StorageKey is the fixed key the cart persists under. Persisted carts are a
// bare JSON array of line items, no envelope, which keeps them readable by
// every client version that has ever written one.
const StorageKey = "tairet-cart"

// Store owns the live cart state and the persistence bridge around it.
// Every operation dispatches into Reduce and writes the resulting items back
// through the storage adapter; write failures are logged and the in-memory
// state stays authoritative for the rest of the session.
type Store struct {
	mu      sync.Mutex
	storage storage.Storage
	state   models.CartState
	loaded  bool
}

// NewStore creates a store with the empty initial state. Call Init to
// rehydrate persisted lines before the first user action.
func NewStore(st storage.Storage) *Store {
	return &Store{
		storage: st,
		state:   EmptyState(),
	}
}

// Init performs the one-shot load from storage. A missing value leaves the
// cart empty; an unreadable or unparsable value is discarded with a warning
// and the cart stays empty. Init never returns an error to the caller and
// does nothing after the first call.
func (s *Store) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return
	}
	s.loaded = true

	raw, ok, err := s.storage.Get(StorageKey)
	if err != nil {
		log.Printf("cart: reading persisted cart: %v", err)
		return
	}
	if !ok {
		return
	}

	var items []models.CartLineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("cart: discarding unparsable persisted cart: %v", err)
		return
	}

	s.state = Reduce(s.state, LoadFromStorage{Items: items})
	s.persistLocked()
}

// Dispose flushes the current items to storage. The store itself lives for
// the session; Dispose exists so shutdown paths can force a final write.
func (s *Store) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistLocked()
}

// State returns a snapshot of the current cart state. The items slice is
// copied, so callers cannot reach into the live state.
func (s *Store) State() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	items := make([]models.CartLineItem, len(s.state.Items))
	copy(items, s.state.Items)
	snapshot.Items = items

	return snapshot
}

// AddItem adds a line to the cart, merging quantities when a line with the
// same id already exists. The caller constructs the line with its id and
// totalPrice set.
func (s *Store) AddItem(item models.CartLineItem) {
	s.dispatch(AddItem{Item: item})
}

// SetQuantity updates a line's quantity; zero or negative removes the line.
func (s *Store) SetQuantity(id string, quantity int) {
	s.dispatch(SetQuantity{ID: id, Quantity: quantity})
}

// RemoveItem removes the line with the given id, if present.
func (s *Store) RemoveItem(id string) {
	s.dispatch(RemoveItem{ID: id})
}

// RemoveFromCart removes the line at the given position; out-of-range
// indexes are a no-op.
func (s *Store) RemoveFromCart(index int) {
	s.dispatch(RemoveItemByIndex{Index: index})
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.dispatch(ClearCart{})
}

func (s *Store) dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, action)
	s.persistLocked()
}

// persistLocked serializes the items and overwrites the stored value in
// full. Failures never propagate to the caller.
func (s *Store) persistLocked() {
	raw, err := json.Marshal(s.state.Items)
	if err != nil {
		log.Printf("cart: serializing cart: %v", err)
		return
	}

	if err := s.storage.Set(StorageKey, string(raw)); err != nil {
		log.Printf("cart: persisting cart: %v", err)
	}
}
