package domain

// DomainEvent is the base interface for all cart events.
type DomainEvent interface {
	EventType() string
}

// ItemAddedEvent is emitted when a product is added to the cart.
type ItemAddedEvent struct {
	ProductID int64
	Name      string
	Quantity  int
}

func (e *ItemAddedEvent) EventType() string {
	return "cart.item.added"
}

// QuantityChangedEvent is emitted when a line quantity is set.
type QuantityChangedEvent struct {
	ProductID int64
	Quantity  int
}

func (e *QuantityChangedEvent) EventType() string {
	return "cart.item.quantity_changed"
}

// ItemRemovedEvent is emitted when a line leaves the cart.
type ItemRemovedEvent struct {
	ProductID int64
}

func (e *ItemRemovedEvent) EventType() string {
	return "cart.item.removed"
}

// CartClearedEvent is emitted when a non-empty cart is emptied.
type CartClearedEvent struct{}

func (e *CartClearedEvent) EventType() string {
	return "cart.cleared"
}

// CartRestoredEvent is emitted when the cart is replaced with persisted lines.
type CartRestoredEvent struct {
	Lines int
}

func (e *CartRestoredEvent) EventType() string {
	return "cart.restored"
}

// CartReconciledEvent is emitted after lines are re-resolved against a fresh catalog.
type CartReconciledEvent struct {
	Refreshed int
	Dropped   []int64
}

func (e *CartReconciledEvent) EventType() string {
	return "cart.reconciled"
}
