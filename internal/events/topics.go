package events

// Topic names a kind of change notification.
type Topic string

const (
	// CartChanged is published after every committed cart mutation.
	CartChanged Topic = "cart_changed"
	// WishlistChanged is published after every committed wishlist mutation.
	WishlistChanged Topic = "wishlist_changed"
)

func (t Topic) String() string {
	return string(t)
}
