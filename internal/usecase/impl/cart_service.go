package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type cartService struct {
	api    service.APIClient
	guests repository.CartStore
	logger *slog.Logger
}

// NewCartService creates the cart use case.
func NewCartService(api service.APIClient, guests repository.CartStore, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		api:    api,
		guests: guests,
		logger: logger,
	}
}

func (s *cartService) Cart(ctx context.Context, sess *usecase.Session) (*entity.Cart, error) {
	if !sess.IsAuthenticated() {
		return s.guests.Load(ctx, sess.ID)
	}

	resp, err := s.api.Get(ctx, "/cart")
	if err != nil {
		return nil, err
	}

	cart := &entity.Cart{}
	if err := resp.Decode(cart); err != nil {
		return nil, err
	}
	cart.MarkAll(entity.SyncConfirmed)

	return cart, nil
}

func (s *cartService) AddToCart(ctx context.Context, sess *usecase.Session, productID string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.fetchProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.Cart(ctx, sess)
	if err != nil {
		return nil, err
	}
	snapshot := cart.Clone()

	if existing := cart.Item(productID); existing != nil {
		// Merging never duplicates the line; the resulting quantity is
		// clamped to the last known stock. A clamp target under 1 would
		// leave a zero-quantity line, so it fails instead.
		if product.Stock < 1 {
			return nil, domainerrors.ErrInsufficientStock
		}
		merged := existing.Quantity + quantity
		if merged > product.Stock {
			merged = product.Stock
		}
		existing.Quantity = merged
		existing.Stock = product.Stock
		existing.SyncState = entity.SyncPending
	} else {
		if product.Stock < quantity {
			return nil, domainerrors.ErrInsufficientStock
		}
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price, // price snapshot at add time
			Image:     product.Image,
			Stock:     product.Stock,
			Quantity:  quantity,
			SyncState: entity.SyncPending,
			AddedAt:   time.Now(),
		})
	}

	return s.commit(ctx, sess, cart, snapshot, productID, func() (*service.APIResponse, error) {
		return s.api.Post(ctx, "/cart/items", map[string]any{
			"productId": productID,
			"quantity":  quantity,
		})
	})
}

func (s *cartService) UpdateQuantity(ctx context.Context, sess *usecase.Session, productID string, quantity int) (*entity.Cart, error) {
	cart, err := s.Cart(ctx, sess)
	if err != nil {
		return nil, err
	}

	item := cart.Item(productID)
	if item == nil {
		return nil, domainerrors.ErrCartItemNotFound
	}

	// Below 1 is a no-op; callers remove instead. State never holds a
	// quantity under 1.
	if quantity < 1 {
		return cart, nil
	}
	// An out-of-stock line cannot be clamped to a valid quantity.
	if item.Stock < 1 {
		return nil, domainerrors.ErrInsufficientStock
	}
	if quantity > item.Stock {
		quantity = item.Stock
	}
	if quantity == item.Quantity {
		return cart, nil
	}

	snapshot := cart.Clone()
	item.Quantity = quantity
	item.SyncState = entity.SyncPending

	return s.commit(ctx, sess, cart, snapshot, productID, func() (*service.APIResponse, error) {
		return s.api.Patch(ctx, "/cart/items/"+productID, map[string]any{
			"quantity": quantity,
		})
	})
}

func (s *cartService) RemoveFromCart(ctx context.Context, sess *usecase.Session, productID string) (*entity.Cart, error) {
	cart, err := s.Cart(ctx, sess)
	if err != nil {
		return nil, err
	}

	index := cart.ItemIndex(productID)
	if index < 0 {
		return nil, domainerrors.ErrCartItemNotFound
	}

	snapshot := cart.Clone()
	cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)

	return s.commit(ctx, sess, cart, snapshot, "", func() (*service.APIResponse, error) {
		return s.api.Delete(ctx, "/cart/items/"+productID, nil)
	})
}

func (s *cartService) RemoveMultiple(ctx context.Context, sess *usecase.Session, productIDs []string) (*entity.Cart, error) {
	if len(productIDs) == 0 {
		return s.Cart(ctx, sess)
	}

	cart, err := s.Cart(ctx, sess)
	if err != nil {
		return nil, err
	}

	snapshot := cart.Clone()
	doomed := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		doomed[id] = true
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if !doomed[item.ProductID] {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	// One batched request for the whole set. Looping single deletes loses
	// updates when responses reconcile out of order.
	return s.commit(ctx, sess, cart, snapshot, "", func() (*service.APIResponse, error) {
		return s.api.Post(ctx, "/cart/items/batch-delete", map[string]any{
			"productIds": productIDs,
		})
	})
}

func (s *cartService) ClearCart(ctx context.Context, sess *usecase.Session) (*entity.Cart, error) {
	if !sess.IsAuthenticated() {
		if err := s.guests.Delete(ctx, sess.ID); err != nil {
			return nil, err
		}

		return &entity.Cart{}, nil
	}

	if _, err := s.api.Delete(ctx, "/cart", nil); err != nil {
		return nil, err
	}

	return &entity.Cart{}, nil
}

func (s *cartService) AdoptGuestCart(ctx context.Context, sess *usecase.Session) error {
	if !sess.IsAuthenticated() {
		return nil
	}

	guestCart, err := s.guests.Load(ctx, sess.ID)
	if err != nil {
		return err
	}
	if len(guestCart.Items) == 0 {
		return nil
	}

	items := make([]map[string]any, 0, len(guestCart.Items))
	for _, item := range guestCart.Items {
		items = append(items, map[string]any{
			"productId": item.ProductID,
			"quantity":  item.Quantity,
		})
	}

	if _, err := s.api.Post(ctx, "/cart/merge", map[string]any{"items": items}); err != nil {
		return err
	}

	return s.guests.Delete(ctx, sess.ID)
}

func (s *cartService) fetchProduct(ctx context.Context, productID string) (*entity.Product, error) {
	resp, err := s.api.Get(ctx, "/products/"+productID, service.WithNoAuth())
	if err != nil {
		return nil, err
	}

	product := &entity.Product{}
	if err := resp.Decode(product); err != nil {
		return nil, err
	}

	return product, nil
}

// commit persists an optimistically mutated cart. Guests write to the local
// store; signed-in sessions call the backend and reconcile with its
// authoritative cart. On failure the pre-mutation snapshot is restored with
// the touched item marked reverted.
func (s *cartService) commit(
	ctx context.Context,
	sess *usecase.Session,
	cart, snapshot *entity.Cart,
	touchedProductID string,
	call func() (*service.APIResponse, error),
) (*entity.Cart, error) {
	if !sess.IsAuthenticated() {
		// A local write is its own confirmation.
		cart.MarkAll(entity.SyncConfirmed)
		if err := s.guests.Save(ctx, sess.ID, cart); err != nil {
			return nil, err
		}

		return cart, nil
	}

	resp, err := call()
	if err != nil {
		if touched := snapshot.Item(touchedProductID); touched != nil {
			touched.SyncState = entity.SyncReverted
		}

		return snapshot, err
	}

	serverCart := &entity.Cart{}
	if decodeErr := resp.Decode(serverCart); decodeErr != nil {
		s.logger.Warn("cart reconciliation failed, keeping local state",
			slog.Any("error", decodeErr))
		cart.MarkAll(entity.SyncPending)

		return cart, nil
	}

	// Last server response wins.
	serverCart.MarkAll(entity.SyncConfirmed)

	return serverCart, nil
}
