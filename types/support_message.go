package types

import "time"

// SupportMessage is one entry in the support chat log. Messages are
// append-only and read back in insertion order.
type SupportMessage struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Message   string    `json:"message" db:"message"`
	IsAdmin   bool      `json:"is_admin" db:"is_admin"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
