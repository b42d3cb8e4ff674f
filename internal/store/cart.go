package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/backend"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/domain"
	"github.com/PrajwalKamdi/Women-Empower-sub000/internal/event"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/errors"
)

// cartBackend is the slice of the backend client the cart store uses.
type cartBackend interface {
	GetCartItems(ctx context.Context, token, userID string) ([]domain.CartItem, error)
	AddCartItem(ctx context.Context, token string, input backend.AddCartInput) error
	UpdateCartItem(ctx context.Context, token, entryID string, input backend.UpdateCartInput) error
	RemoveCartItem(ctx context.Context, token, entryID string) error
}

// cartState is one user's cached cart plus the generation counters that
// discard stale re-fetches: a fetch only lands if no newer fetch was issued
// while it was in flight.
type cartState struct {
	items   []domain.CartItem
	pending uint64
	applied uint64
}

// CartStore keeps a working copy of each user's cart. Mutations go to the
// backend and then re-fetch the canonical cart; there is no optimistic merge.
type CartStore struct {
	notifier
	mu       sync.Mutex
	backend  cartBackend
	activity *event.ActivityPublisher
	logger   *slog.Logger
	carts    map[string]*cartState
}

// NewCartStore creates a cart store.
func NewCartStore(b cartBackend, activity *event.ActivityPublisher, log *slog.Logger) *CartStore {
	return &CartStore{
		backend:  b,
		activity: activity,
		logger:   log,
		carts:    make(map[string]*cartState),
	}
}

// Items returns the user's cart after refreshing it from the backend. Fetch
// failures degrade to the last known copy so the page still renders.
func (s *CartStore) Items(ctx context.Context, sess Session) []domain.CartItem {
	if !sess.Authenticated {
		return []domain.CartItem{}
	}

	if err := s.refresh(ctx, sess); err != nil {
		s.logger.WarnContext(ctx, "cart refresh failed, serving cached copy",
			slog.String("error", err.Error()),
		)
	}
	return s.snapshot(sess.UserID())
}

// Add puts a product in the cart. Requires an authenticated session; the
// quantity is clamped to the minimum before it reaches the backend.
func (s *CartStore) Add(ctx context.Context, sess Session, productID string, quantity int) error {
	if !sess.Authenticated {
		return errors.LoginRequired("add items to your cart")
	}

	quantity = domain.ClampQuantity(quantity)
	input := backend.AddCartInput{ProductID: productID, Quantity: quantity}
	if err := s.backend.AddCartItem(ctx, sess.Token, input); err != nil {
		return err
	}

	if err := s.refresh(ctx, sess); err != nil {
		return err
	}

	s.activity.Emit(ctx, event.TypeCartItemAdded, sess.UserID(), input)
	s.notify()
	return nil
}

// UpdateQuantity changes a cart entry's quantity, clamped to the minimum.
func (s *CartStore) UpdateQuantity(ctx context.Context, sess Session, entryID string, quantity int) error {
	if !sess.Authenticated {
		return errors.LoginRequired("update your cart")
	}

	quantity = domain.ClampQuantity(quantity)
	if err := s.backend.UpdateCartItem(ctx, sess.Token, entryID, backend.UpdateCartInput{Quantity: quantity}); err != nil {
		return err
	}

	if err := s.refresh(ctx, sess); err != nil {
		return err
	}

	s.activity.Emit(ctx, event.TypeCartItemUpdated, sess.UserID(), map[string]any{
		"entry_id": entryID,
		"quantity": quantity,
	})
	s.notify()
	return nil
}

// Remove deletes a cart entry.
func (s *CartStore) Remove(ctx context.Context, sess Session, entryID string) error {
	if !sess.Authenticated {
		return errors.LoginRequired("update your cart")
	}

	if err := s.backend.RemoveCartItem(ctx, sess.Token, entryID); err != nil {
		return err
	}

	if err := s.refresh(ctx, sess); err != nil {
		return err
	}

	s.activity.Emit(ctx, event.TypeCartItemRemoved, sess.UserID(), map[string]string{"entry_id": entryID})
	s.notify()
	return nil
}

// ItemCount returns the total quantity in the cached cart. No backend call.
func (s *CartStore) ItemCount(sess Session) int {
	cart := domain.Cart{Items: s.snapshot(sess.UserID())}
	return cart.ItemCount()
}

// IsInCart reports whether the product is in the cached cart. No backend call.
func (s *CartStore) IsInCart(sess Session, productID string) bool {
	cart := domain.Cart{Items: s.snapshot(sess.UserID())}
	return cart.FindByProduct(productID) >= 0
}

// QuantityOf returns the cached quantity for a product, zero when absent.
// No backend call.
func (s *CartStore) QuantityOf(sess Session, productID string) int {
	cart := domain.Cart{Items: s.snapshot(sess.UserID())}
	if i := cart.FindByProduct(productID); i >= 0 {
		return cart.Items[i].Quantity
	}
	return 0
}

// refresh re-fetches the canonical cart. A fetch that raced with a newer one
// is dropped instead of overwriting fresher data.
func (s *CartStore) refresh(ctx context.Context, sess Session) error {
	uid := sess.UserID()

	s.mu.Lock()
	st, ok := s.carts[uid]
	if !ok {
		st = &cartState{}
		s.carts[uid] = st
	}
	st.pending++
	gen := st.pending
	s.mu.Unlock()

	items, err := s.backend.GetCartItems(ctx, sess.Token, uid)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if gen > st.applied {
		st.applied = gen
		st.items = items
	}
	s.mu.Unlock()
	return nil
}

func (s *CartStore) snapshot(uid string) []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.carts[uid]
	if !ok || len(st.items) == 0 {
		return []domain.CartItem{}
	}
	out := make([]domain.CartItem, len(st.items))
	copy(out, st.items)
	return out
}
