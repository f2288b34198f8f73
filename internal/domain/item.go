package domain

import "time"

// Item is one row of a category's current price list.
type Item struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriceHistoryRecord captures an item's price at the moment of a write.
// Records are append-only; nothing in the system updates or deletes them,
// and they outlive the item they point at.
type PriceHistoryRecord struct {
	ID        uint      `json:"id"`
	ItemID    uint      `json:"item_id"`
	Price     float64   `json:"price"`
	UpdatedAt time.Time `json:"updated_at"`
}
