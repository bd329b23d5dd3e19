package domain

// CartLine is one product's entry in the cart: a snapshot of the product's
// display fields plus the chosen quantity. It serializes flat, product fields
// alongside "quantity".
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price × quantity for the line.
func (l CartLine) Subtotal() Money {
	return l.Price.Times(l.Quantity)
}

// OutOfStock reports whether the snapshot says the product can no longer be bought.
// Such lines stay in the cart; callers only use this for a warning.
func (l CartLine) OutOfStock() bool {
	return l.SoldOut()
}

// AtStockLimit reports whether the quantity can no longer be incremented.
func (l CartLine) AtStockLimit() bool {
	n, known := l.StockLimit()
	return known && n > 0 && l.Quantity >= n
}

// CartSummary is derived from the cart on every read and never stored.
type CartSummary struct {
	Quantity int   `json:"quantity"`
	Total    Money `json:"total"`
}

// Cart is the visitor's shopping cart. Lines iterate in the order their product
// was first added, and there is at most one line per product id.
// All mutations go through the methods below, which record domain events
// for the session to persist and notify on.
type Cart struct {
	lines  []CartLine
	events []DomainEvent
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		lines:  make([]CartLine, 0),
		events: make([]DomainEvent, 0),
	}
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	for i, l := range c.lines {
		out[i] = CartLine{Product: l.Product.clone(), Quantity: l.Quantity}
	}
	return out
}

// Line returns the line for a product id.
func (c *Cart) Line(productID int64) (CartLine, bool) {
	if i := c.indexOf(productID); i >= 0 {
		l := c.lines[i]
		return CartLine{Product: l.Product.clone(), Quantity: l.Quantity}, true
	}
	return CartLine{}, false
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty returns true if the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Add puts quantity units of the product in the cart. A nil product is ignored.
// Quantities below 1 count as 1. Both a new line and an existing one are
// clamped to the product's stock when the stock is known; an unknown stock is unbounded.
func (c *Cart) Add(product *Product, quantity int) error {
	if product == nil {
		return nil
	}
	if product.SoldOut() {
		return ErrOutOfStock
	}
	if quantity < 1 {
		quantity = 1
	}

	var lineQty int
	if i := c.indexOf(product.ID); i >= 0 {
		lineQty = clampToStock(c.lines[i].Quantity+quantity, product.Stock)
		c.lines[i].Quantity = lineQty
	} else {
		lineQty = clampToStock(quantity, product.Stock)
		c.lines = append(c.lines, CartLine{Product: product.clone(), Quantity: lineQty})
	}

	c.recordEvent(&ItemAddedEvent{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  lineQty,
	})
	return nil
}

// SetQuantity sets a line's quantity, clamped to the line's known positive stock.
// A quantity of zero or less removes the line. Unknown ids are ignored.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}

	if quantity <= 0 {
		c.removeAt(i)
		return
	}

	quantity = clampToStock(quantity, c.lines[i].Stock)
	c.lines[i].Quantity = quantity
	c.dropNonPositive()

	c.recordEvent(&QuantityChangedEvent{
		ProductID: productID,
		Quantity:  quantity,
	})
}

// Remove drops the line for a product id. Unknown ids are ignored.
func (c *Cart) Remove(productID int64) {
	if i := c.indexOf(productID); i >= 0 {
		c.removeAt(i)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	if len(c.lines) == 0 {
		return
	}
	c.lines = make([]CartLine, 0)
	c.recordEvent(&CartClearedEvent{})
}

// Summary totals quantities and prices over the current lines.
func (c *Cart) Summary() CartSummary {
	var s CartSummary
	for _, l := range c.lines {
		s.Quantity += l.Quantity
		s.Total += l.Subtotal()
	}
	return s
}

// Replace swaps the cart contents for persisted lines. Later duplicates of a
// product id and lines with a non-positive quantity are discarded.
func (c *Cart) Replace(lines []CartLine) {
	restored := make([]CartLine, 0, len(lines))
	seen := make(map[int64]bool, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 || seen[l.ID] {
			continue
		}
		seen[l.ID] = true
		restored = append(restored, CartLine{Product: l.Product.clone(), Quantity: l.Quantity})
	}
	c.lines = restored

	c.recordEvent(&CartRestoredEvent{Lines: len(restored)})
}

// Reconcile re-resolves every line against a freshly loaded catalog. Found
// lines get the new product data and keep their quantity; lines whose product
// disappeared are dropped. It returns the dropped product ids.
func (c *Cart) Reconcile(products []Product) []int64 {
	kept := make([]CartLine, 0, len(c.lines))
	dropped := make([]int64, 0)

	for _, l := range c.lines {
		p, ok := FindProduct(products, l.ID)
		if !ok {
			dropped = append(dropped, l.ID)
			continue
		}
		kept = append(kept, CartLine{Product: p, Quantity: l.Quantity})
	}
	c.lines = kept

	c.recordEvent(&CartReconciledEvent{
		Refreshed: len(kept),
		Dropped:   dropped,
	})
	return dropped
}

// DomainEvents returns the events recorded since the last ClearEvents.
func (c *Cart) DomainEvents() []DomainEvent {
	return c.events
}

// ClearEvents clears all recorded events (called after they are handled).
func (c *Cart) ClearEvents() {
	c.events = make([]DomainEvent, 0)
}

func (c *Cart) indexOf(productID int64) int {
	for i, l := range c.lines {
		if l.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	productID := c.lines[i].ID
	c.lines = append(c.lines[:i:i], c.lines[i+1:]...)
	c.recordEvent(&ItemRemovedEvent{ProductID: productID})
}

// dropNonPositive is a safety net: no path may leave a line below quantity 1.
func (c *Cart) dropNonPositive() {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.Quantity > 0 {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

func (c *Cart) recordEvent(event DomainEvent) {
	c.events = append(c.events, event)
}

// clampToStock caps a quantity at the stock when the stock is known and positive.
func clampToStock(quantity int, stock *int) int {
	if stock != nil && *stock > 0 && quantity > *stock {
		return *stock
	}
	return quantity
}
