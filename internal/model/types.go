package model

import "time"

// OrderType distinguishes the two sides of the market.
type OrderType string

const (
	OrderTypeSell OrderType = "sell"
	OrderTypeBuy  OrderType = "buy"
)

// Valid reports whether t is one of the two known order types.
func (t OrderType) Valid() bool {
	return t == OrderTypeSell || t == OrderTypeBuy
}

// Item is a marketplace catalog entry.
type Item struct {
	ID      string // Opaque marketplace ID
	Name    string // Display name (e.g., "Ash Prime Set")
	URLName string // Slug used in API paths (e.g., "ash_prime_set")
}

// Order is a buy or sell listing tied to an Item.
type Order struct {
	ID         string    // Opaque marketplace ID
	Type       OrderType // "sell" or "buy"
	Item       Item      // The listed item
	Quantity   int       // Units offered or wanted
	Platinum   int       // Price per unit in platinum
	User       string    // In-game name of the order's owner
	LastUpdate time.Time // Server-side last-modified timestamp
}
