package types

import "time"

// Service types accepted by the storefront. FollowersLikes is reserved
// for free-trial orders and is never accepted on the paid path.
const (
	ServiceFollowers      = "followers"
	ServiceLikes          = "likes"
	ServiceFollowersLikes = "followers_likes"
)

// OrderStatusPending is the only status an order ever holds; nothing in
// this system transitions orders past it.
const OrderStatusPending = "pending"

// Order represents a boosting order placed against an Instagram account.
type Order struct {
	ID int `json:"id" db:"id"`

	// UserID is the account the order is attributed to.
	UserID int `json:"user_id" db:"user_id"`

	ServiceType string `json:"service_type" db:"service_type"`
	Quantity    int    `json:"quantity" db:"quantity"`

	// AmountUSD is the charge as a fixed two-decimal string, e.g. "0.20".
	// It is stored as text so the persisted value is byte-for-byte what
	// the client agreed to.
	AmountUSD string `json:"amount_usd" db:"amount_usd"`

	Status          string    `json:"status" db:"status"`
	InstagramTarget string    `json:"instagram_target" db:"instagram_target"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
