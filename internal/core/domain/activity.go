package domain

import "time"

type ActivityKind string

const (
	ActivityCartAdd        ActivityKind = "cart.add"
	ActivityCartSetQty     ActivityKind = "cart.set_qty"
	ActivityCartRemove     ActivityKind = "cart.remove"
	ActivityCartClear      ActivityKind = "cart.clear"
	ActivityWishlistAdd    ActivityKind = "wishlist.add"
	ActivityWishlistRemove ActivityKind = "wishlist.remove"
	ActivityWishlistClear  ActivityKind = "wishlist.clear"
)

// An ActivityEvent records a shopper mutation of the cart or wishlist.
type ActivityEvent struct {
	ID         string
	Kind       ActivityKind
	ProductID  int
	Qty        int
	OccurredAt time.Time
}
