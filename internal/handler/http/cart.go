package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/store"
	apperrors "github.com/PrajwalKamdi/Women-Empower-sub000/pkg/errors"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/httputil"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/validator"
)

// CartHandler serves the cart surface. Reads degrade to empty carts; cart
// mutations propagate their errors so the client can surface them.
type CartHandler struct {
	cart   *store.CartStore
	logger *slog.Logger
}

// NewCartHandler creates a cart handler.
func NewCartHandler(cart *store.CartStore, logger *slog.Logger) *CartHandler {
	return &CartHandler{cart: cart, logger: logger}
}

// AddItemRequest is the JSON body for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemRequest is the JSON body for changing an entry's quantity.
// Values below the minimum are clamped, not rejected.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// cartView is the cart response shape: the items plus derived totals.
type cartView struct {
	Items     []domain.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Total     float64           `json:"total"`
}

func newCartView(items []domain.CartItem) cartView {
	cart := domain.Cart{Items: items}
	return cartView{
		Items:     items,
		ItemCount: cart.ItemCount(),
		Total:     cart.Total(),
	}
}

// GetCart serves GET /api/v1/cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	items := h.cart.Items(r.Context(), sess)
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(newCartView(items)))
}

// AddItem serves POST /api/v1/cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	sess := sessionFrom(r.Context())
	if err := h.cart.Add(r.Context(), sess, req.ProductID, req.Quantity); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	items := h.cart.Items(r.Context(), sess)
	httputil.WriteJSON(w, http.StatusCreated, httputil.OK(newCartView(items)))
}

// UpdateItem serves PUT /api/v1/cart/items/{id}.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")
	if entryID == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("cart entry id is required"), h.logger)
		return
	}

	var req UpdateItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	sess := sessionFrom(r.Context())
	if err := h.cart.UpdateQuantity(r.Context(), sess, entryID, req.Quantity); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	items := h.cart.Items(r.Context(), sess)
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(newCartView(items)))
}

// RemoveItem serves DELETE /api/v1/cart/items/{id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")
	if entryID == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("cart entry id is required"), h.logger)
		return
	}

	sess := sessionFrom(r.Context())
	if err := h.cart.Remove(r.Context(), sess, entryID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	items := h.cart.Items(r.Context(), sess)
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(newCartView(items)))
}
