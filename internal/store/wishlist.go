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

// wishlistBackend is the slice of the backend client the wishlist store uses.
type wishlistBackend interface {
	GetWishlistItems(ctx context.Context, token, userID string) ([]domain.WishlistItem, error)
	AddWishlistItem(ctx context.Context, token string, input backend.AddWishlistInput) error
	RemoveWishlistItem(ctx context.Context, token, entryID string) error
}

type wishlistState struct {
	items   []domain.WishlistItem
	pending uint64
	applied uint64
}

// WishlistStore keeps a working copy of each user's wishlist. Removal goes
// through the wishlist-entry id resolved from the working copy, never the
// product id.
type WishlistStore struct {
	notifier
	mu       sync.Mutex
	backend  wishlistBackend
	activity *event.ActivityPublisher
	logger   *slog.Logger
	lists    map[string]*wishlistState
}

// NewWishlistStore creates a wishlist store.
func NewWishlistStore(b wishlistBackend, activity *event.ActivityPublisher, log *slog.Logger) *WishlistStore {
	return &WishlistStore{
		backend:  b,
		activity: activity,
		logger:   log,
		lists:    make(map[string]*wishlistState),
	}
}

// Items returns the user's wishlist after refreshing it from the backend.
// Fetch failures degrade to the last known copy.
func (s *WishlistStore) Items(ctx context.Context, sess Session) []domain.WishlistItem {
	if !sess.Authenticated {
		return []domain.WishlistItem{}
	}

	if err := s.refresh(ctx, sess); err != nil {
		s.logger.WarnContext(ctx, "wishlist refresh failed, serving cached copy",
			slog.String("error", err.Error()),
		)
	}
	return s.snapshot(sess.UserID())
}

// Add saves a product to the wishlist.
func (s *WishlistStore) Add(ctx context.Context, sess Session, productID string) error {
	if !sess.Authenticated {
		return errors.LoginRequired("save items to your wishlist")
	}

	input := backend.AddWishlistInput{ProductID: productID}
	if err := s.backend.AddWishlistItem(ctx, sess.Token, input); err != nil {
		return err
	}

	if err := s.refresh(ctx, sess); err != nil {
		return err
	}

	s.activity.Emit(ctx, event.TypeWishlistItemAdded, sess.UserID(), input)
	s.notify()
	return nil
}

// Remove deletes a product from the wishlist. The entry id is resolved from
// the working copy first; when the product is not there the call returns
// false without touching the backend.
func (s *WishlistStore) Remove(ctx context.Context, sess Session, productID string) (bool, error) {
	if !sess.Authenticated {
		return false, errors.LoginRequired("update your wishlist")
	}

	list := domain.Wishlist{Items: s.snapshot(sess.UserID())}
	entryID, ok := list.EntryIDForProduct(productID)
	if !ok {
		return false, nil
	}

	if err := s.backend.RemoveWishlistItem(ctx, sess.Token, entryID); err != nil {
		return false, err
	}

	if err := s.refresh(ctx, sess); err != nil {
		return false, err
	}

	s.activity.Emit(ctx, event.TypeWishlistItemRemoved, sess.UserID(), map[string]string{
		"entry_id":   entryID,
		"product_id": productID,
	})
	s.notify()
	return true, nil
}

// Contains reports whether the product is in the cached wishlist. No
// backend call.
func (s *WishlistStore) Contains(sess Session, productID string) bool {
	list := domain.Wishlist{Items: s.snapshot(sess.UserID())}
	return list.Contains(productID)
}

func (s *WishlistStore) refresh(ctx context.Context, sess Session) error {
	uid := sess.UserID()

	s.mu.Lock()
	st, ok := s.lists[uid]
	if !ok {
		st = &wishlistState{}
		s.lists[uid] = st
	}
	st.pending++
	gen := st.pending
	s.mu.Unlock()

	items, err := s.backend.GetWishlistItems(ctx, sess.Token, uid)
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

func (s *WishlistStore) snapshot(uid string) []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.lists[uid]
	if !ok || len(st.items) == 0 {
		return []domain.WishlistItem{}
	}
	out := make([]domain.WishlistItem, len(st.items))
	copy(out, st.items)
	return out
}
