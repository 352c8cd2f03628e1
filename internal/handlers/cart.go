package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/RenektonHokage/Tairet-MVP-sub001/internal/cart"
	"github.com/RenektonHokage/Tairet-MVP-sub001/internal/models"
	"github.com/RenektonHokage/Tairet-MVP-sub001/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// CartHandler handles shopping cart and checkout requests
type CartHandler struct {
	store       sessions.Store
	sessionName string
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store sessions.Store, sessionName string) *CartHandler {
	return &CartHandler{
		store:       store,
		sessionName: sessionName,
	}
}

// CheckoutResponse is returned after a successful checkout
type CheckoutResponse struct {
	OrderReference string `json:"order_reference"`
	Amount         int64  `json:"amount"`
}

// AddToCart adds a ticket or table selection to the shopping cart. Venue
// pages post the full line here; a line for the same selection made earlier
// in the session merges quantities instead of duplicating the row.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	kind := models.ItemKind(r.FormValue("kind"))
	if kind != models.KindTicket && kind != models.KindTable {
		http.Error(w, "Invalid item kind", http.StatusBadRequest)
		return
	}

	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity <= 0 {
		http.Error(w, "Invalid quantity", http.StatusBadRequest)
		return
	}

	price, err := strconv.ParseInt(r.FormValue("price"), 10, 64)
	if err != nil || price < 0 {
		http.Error(w, "Invalid price", http.StatusBadRequest)
		return
	}

	item := models.CartLineItem{
		Kind:     kind,
		Name:     r.FormValue("name"),
		Venue:    r.FormValue("venue"),
		LocalID:  r.FormValue("venue_id"),
		Date:     r.FormValue("date"),
		Time:     r.FormValue("time"),
		Quantity: quantity,
		Price:    price,
	}

	var catalogID string
	switch kind {
	case models.KindTicket:
		catalogID = r.FormValue("ticket_type_id")
		item.TicketTypeID = catalogID
	case models.KindTable:
		catalogID = r.FormValue("table_type_id")
		item.TableTypeID = catalogID
	}

	// The line id doubles as the merge key: the same selection added twice
	// within one millisecond still merges because the id repeats.
	item.ID = fmt.Sprintf("%s-%s-%d", kind, catalogID, time.Now().UnixMilli())
	item.TotalPrice = item.Price * int64(item.Quantity)

	cartStore := h.cartStore(w, r)
	cartStore.AddItem(item)

	h.writeJSON(w, http.StatusOK, cartStore.State())
}

// ViewCart returns the current cart snapshot. The hasInvalidItems flag tells
// the cart screen to badge legacy lines and disable submission.
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	cartStore := h.cartStore(w, r)
	h.writeJSON(w, http.StatusOK, cartStore.State())
}

// UpdateCartItem sets the quantity of one cart line; a quantity of zero
// removes the line
func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}

	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		http.Error(w, "Invalid quantity", http.StatusBadRequest)
		return
	}

	cartStore := h.cartStore(w, r)
	cartStore.SetQuantity(itemID, quantity)

	h.writeJSON(w, http.StatusOK, cartStore.State())
}

// RemoveCartItem removes one cart line by id; an unknown id is a no-op
func (h *CartHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}

	cartStore := h.cartStore(w, r)
	cartStore.RemoveItem(itemID)

	h.writeJSON(w, http.StatusOK, cartStore.State())
}

// RemoveCartItemByIndex removes one cart line by position; an out-of-range
// index is a no-op. The checkout screen deletes by row position.
func (h *CartHandler) RemoveCartItemByIndex(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "Invalid item index", http.StatusBadRequest)
		return
	}

	cartStore := h.cartStore(w, r)
	cartStore.RemoveFromCart(index)

	h.writeJSON(w, http.StatusOK, cartStore.State())
}

// ClearCart empties the shopping cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cartStore := h.cartStore(w, r)
	cartStore.ClearCart()

	h.writeJSON(w, http.StatusOK, cartStore.State())
}

// ProcessCheckout submits the cart as an order. Submission is refused while
// the cart is empty or still carries lines with invalid catalog references;
// on success the cart is cleared and an order reference returned. Payment
// collection happens downstream of the returned reference.
func (h *CartHandler) ProcessCheckout(w http.ResponseWriter, r *http.Request) {
	cartStore := h.cartStore(w, r)
	state := cartStore.State()

	if len(state.Items) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	if state.HasInvalidItems {
		http.Error(w, "Cart contains items that are no longer available", http.StatusUnprocessableEntity)
		return
	}

	response := CheckoutResponse{
		OrderReference: uuid.New().String(),
		Amount:         state.Total,
	}

	cartStore.ClearCart()

	h.writeJSON(w, http.StatusOK, response)
}

// Helper methods

// cartStore builds the session-backed cart store for this request and
// rehydrates it before the first operation.
func (h *CartHandler) cartStore(w http.ResponseWriter, r *http.Request) *cart.Store {
	adapter := storage.NewSession(h.store, h.sessionName, w, r)
	cartStore := cart.NewStore(adapter)
	cartStore.Init()
	return cartStore
}

func (h *CartHandler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
