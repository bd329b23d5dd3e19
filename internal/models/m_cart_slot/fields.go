package m_cart_slot

// Field name constants for the cart_slots table.
const (
	TableName = "cart_slots"

	SlotKey   = "slot_key"
	Payload   = "payload"
	UpdatedAt = "updated_at"
)

// Columns returns all column names in table order.
func Columns() []string {
	return []string{SlotKey, Payload, UpdatedAt}
}
