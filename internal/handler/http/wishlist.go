package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/store"
	apperrors "github.com/PrajwalKamdi/Women-Empower-sub000/pkg/errors"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/httputil"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/validator"
)

// WishlistHandler serves the wishlist surface.
type WishlistHandler struct {
	wishlist *store.WishlistStore
	logger   *slog.Logger
}

// NewWishlistHandler creates a wishlist handler.
func NewWishlistHandler(wishlist *store.WishlistStore, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist, logger: logger}
}

// SaveItemRequest is the JSON body for saving a product to the wishlist.
type SaveItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// GetWishlist serves GET /api/v1/wishlist.
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	items := h.wishlist.Items(r.Context(), sess)
	httputil.WriteJSON(w, http.StatusOK, httputil.OK(items))
}

// SaveItem serves POST /api/v1/wishlist/items.
func (h *WishlistHandler) SaveItem(w http.ResponseWriter, r *http.Request) {
	var req SaveItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	sess := sessionFrom(r.Context())
	if err := h.wishlist.Add(r.Context(), sess, req.ProductID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	items := h.wishlist.Items(r.Context(), sess)
	httputil.WriteJSON(w, http.StatusCreated, httputil.OK(items))
}

// RemoveItem serves DELETE /api/v1/wishlist/items/{productId}. The response
// reports whether anything was actually removed; asking to remove a product
// that is not on the list is not an error.
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("product id is required"), h.logger)
		return
	}

	sess := sessionFrom(r.Context())
	removed, err := h.wishlist.Remove(r.Context(), sess, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.OK(map[string]bool{"removed": removed}))
}
