package m_cart_slot

import "time"

// Data represents the database model for the cart_slots table.
type Data struct {
	SlotKey   string    `spanner:"slot_key"`
	Payload   string    `spanner:"payload"`
	UpdatedAt time.Time `spanner:"updated_at"`
}
