package entity

import "time"

// SyncState tracks where a cart mutation stands against the backend.
// Every optimistic local change starts as pending and either becomes
// confirmed once the server's cart is reconciled in, or reverted when the
// backend call fails and the previous snapshot is restored.
type SyncState string

const (
	// SyncPending marks an optimistic local change not yet acknowledged.
	SyncPending SyncState = "pending"
	// SyncConfirmed marks an item reconciled against the server response.
	SyncConfirmed SyncState = "confirmed"
	// SyncReverted marks an item restored from the pre-mutation snapshot.
	SyncReverted SyncState = "reverted"
)

// CartItem is a single line in the cart. Price and image are snapshots taken
// at add time; Stock is the last known stock used for quantity clamping.
type CartItem struct {
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Stock     int       `json:"stock"`
	Quantity  int       `json:"quantity"`
	SyncState SyncState `json:"syncState,omitempty"`
	AddedAt   time.Time `json:"addedAt"`
}

// Cart is the ordered, deduplicated collection of line items for one
// browser session. At most one item exists per product id.
type Cart struct {
	Items []CartItem `json:"items"`
}

// ItemIndex returns the position of the line item for productID, or -1.
func (c *Cart) ItemIndex(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}

	return -1
}

// Item returns the line item for productID, or nil if absent.
func (c *Cart) Item(productID string) *CartItem {
	if i := c.ItemIndex(productID); i >= 0 {
		return &c.Items[i]
	}

	return nil
}

// TotalQuantity returns the summed quantity across all line items.
func (c *Cart) TotalQuantity() int {
	total := 0
	for i := range c.Items {
		total += c.Items[i].Quantity
	}

	return total
}

// Subtotal returns the price-times-quantity sum across all line items.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for i := range c.Items {
		sum += c.Items[i].Price * float64(c.Items[i].Quantity)
	}

	return sum
}

// Clone returns a deep copy, used to snapshot state before an optimistic
// mutation so a failed backend call can revert.
func (c *Cart) Clone() *Cart {
	clone := &Cart{Items: make([]CartItem, len(c.Items))}
	copy(clone.Items, c.Items)

	return clone
}

// MarkAll sets the sync state on every line item.
func (c *Cart) MarkAll(state SyncState) {
	for i := range c.Items {
		c.Items[i].SyncState = state
	}
}
