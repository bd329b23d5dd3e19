// Package session holds the client-side catalog and cart state of one visitor:
// loaded products, filter criteria, cart, selection and the transient notice.
package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/furniture-catalog/internal/pkg/clock"
)

// LoadErrorMessage is the user-visible text after a failed catalog load.
const LoadErrorMessage = "Error al cargar productos"

// Option configures a Session.
type Option func(*options)

type options struct {
	slotKey        string
	noticeDuration time.Duration
}

// WithSlotKey overrides the slot key the cart is persisted under.
func WithSlotKey(key string) Option {
	return func(o *options) { o.slotKey = key }
}

// WithNoticeDuration overrides how long the "item added" notice stays visible.
func WithNoticeDuration(d time.Duration) Option {
	return func(o *options) { o.noticeDuration = d }
}

type visibleKey struct {
	criteria   domain.FilterCriteria
	generation uint64
}

// Session is the explicit state container for one visitor. All methods are
// safe for concurrent use; the catalog load and the notice timer run on other
// goroutines.
type Session struct {
	mu       sync.Mutex
	source   contracts.ProductSource
	bridge   *Bridge
	notifier *Notifier
	logger   *zap.Logger

	products   []domain.Product
	generation uint64
	bounds     domain.PriceBounds
	categories []string
	criteria   domain.FilterCriteria

	cart        *domain.Cart
	lastDropped []int64

	selectedID     int64
	hasSelection   bool
	detailQuantity int

	loading bool
	errMsg  string

	visible    []domain.Product
	visibleFor visibleKey
	visibleOK  bool
}

// New creates a Session reading products from source and persisting the cart in slot.
func New(source contracts.ProductSource, slot contracts.SlotStore, clk clock.Clock, logger *zap.Logger, opts ...Option) *Session {
	o := options{slotKey: DefaultSlotKey, noticeDuration: DefaultNoticeDuration}
	for _, opt := range opts {
		opt(&o)
	}

	return &Session{
		source:         source,
		bridge:         NewBridge(slot, o.slotKey, logger),
		notifier:       NewNotifier(clk, o.noticeDuration),
		logger:         logger,
		products:       make([]domain.Product, 0),
		categories:     make([]string, 0),
		criteria:       domain.DefaultCriteria(),
		cart:           domain.NewCart(),
		detailQuantity: 1,
	}
}

// Start restores the persisted cart, then loads the catalog.
func (s *Session) Start(ctx context.Context) error {
	s.Restore(ctx)
	return s.Load(ctx)
}

// Restore replaces the cart with the persisted lines, if any.
func (s *Session) Restore(ctx context.Context) {
	lines := s.bridge.Restore(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(lines) == 0 {
		return
	}
	s.cart.Replace(lines)
	s.handleCartEvents(ctx)
}

// Load fetches the catalog. On failure the products stay empty, the
// user-visible error is set and the cart is left untouched.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	products, err := s.source.FetchProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	s.generation++

	if err != nil {
		s.logger.Error("failed to load products", zap.Error(err))
		s.errMsg = LoadErrorMessage
		s.setProducts(nil)
		return fmt.Errorf("failed to load products: %w", err)
	}

	s.setProducts(products)
	if len(s.products) == 0 {
		return nil
	}

	s.selectLocked(s.products[0].ID)

	dropped := s.cart.Reconcile(s.products)
	s.lastDropped = dropped
	s.handleCartEvents(ctx)
	return nil
}

// LoadAsync runs Load in the background. The channel receives its result and is closed.
func (s *Session) LoadAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- s.Load(ctx)
	}()
	return done
}

// Close stops the pending notice timer.
func (s *Session) Close() {
	s.notifier.Stop()
}

func (s *Session) setProducts(products []domain.Product) {
	if products == nil {
		products = make([]domain.Product, 0)
	}
	s.products = products
	s.bounds = domain.ComputeBounds(products)
	s.categories = domain.Categories(products)
	s.criteria.PriceCeiling = s.bounds.Max
	s.visibleOK = false
}

// Loading reports whether a catalog load is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the user-visible load error, or "".
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Products returns the loaded catalog in source order.
func (s *Session) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CopyProducts(s.products)
}

// Bounds returns the price bounds of the loaded catalog.
func (s *Session) Bounds() domain.PriceBounds {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bounds
}

// Categories returns the distinct categories of the loaded catalog.
func (s *Session) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.categories...)
}

// Criteria returns the current filter criteria.
func (s *Session) Criteria() domain.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// LastDropped returns the product ids removed from the cart by the last reconciliation.
func (s *Session) LastDropped() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.lastDropped...)
}

// SetQuery sets the free-text search.
func (s *Session) SetQuery(q string) {
	s.updateCriteria(func(c *domain.FilterCriteria) { c.Query = q })
}

// SetPriceCeiling sets the maximum price. 0 disables the price filter.
func (s *Session) SetPriceCeiling(ceiling domain.Money) {
	if ceiling.IsNegative() {
		return
	}
	s.updateCriteria(func(c *domain.FilterCriteria) { c.PriceCeiling = ceiling })
}

// SetOnlyInStock toggles the stock-only filter.
func (s *Session) SetOnlyInStock(only bool) {
	s.updateCriteria(func(c *domain.FilterCriteria) { c.OnlyInStock = only })
}

// SetCategory filters by exact category. domain.AllCategories disables it.
func (s *Session) SetCategory(category string) {
	if category == "" {
		category = domain.AllCategories
	}
	s.updateCriteria(func(c *domain.FilterCriteria) { c.Category = category })
}

// SetSort sets the ordering of the visible list.
func (s *Session) SetSort(mode domain.SortMode) {
	s.updateCriteria(func(c *domain.FilterCriteria) { c.Sort = mode })
}

// ResetFilters restores the default criteria with the ceiling at the catalog maximum.
func (s *Session) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = domain.DefaultCriteria()
	s.criteria.PriceCeiling = s.bounds.Max
}

func (s *Session) updateCriteria(fn func(*domain.FilterCriteria)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.criteria)
}

// Visible returns the filtered and sorted products. It is empty while loading
// and recomputed only when the criteria or the catalog change.
func (s *Session) Visible() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading {
		return make([]domain.Product, 0)
	}

	key := visibleKey{criteria: s.criteria, generation: s.generation}
	if !s.visibleOK || s.visibleFor != key {
		s.visible = domain.ApplyCriteria(s.products, s.criteria)
		s.visibleFor = key
		s.visibleOK = true
	}
	return domain.CopyProducts(s.visible)
}

// Select makes a product the selected one and resets the detail quantity to 1.
func (s *Session) Select(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := domain.FindProduct(s.products, productID); !ok {
		return domain.ErrProductNotFound
	}
	s.selectLocked(productID)
	return nil
}

func (s *Session) selectLocked(productID int64) {
	if !s.hasSelection || s.selectedID != productID {
		s.detailQuantity = 1
	}
	s.selectedID = productID
	s.hasSelection = true
}

// Selected returns the selected product.
func (s *Session) Selected() (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasSelection {
		return domain.Product{}, false
	}
	return domain.FindProduct(s.products, s.selectedID)
}

// DetailQuantity returns the quantity chosen on the selected product's detail view.
func (s *Session) DetailQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detailQuantity
}

// SetDetailQuantity parses input and clamps it to [1, stock], where an
// unknown or zero stock counts as 1. Non-numeric input is ignored.
func (s *Session) SetDetailQuantity(input string) {
	q, ok := parseQuantity(input)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasSelection {
		return
	}
	p, found := domain.FindProduct(s.products, s.selectedID)
	if !found {
		return
	}

	limit := p.StockOrZero()
	if limit <= 0 {
		limit = 1
	}
	s.detailQuantity = max(1, min(q, limit))
}

// AddSelected adds the selected product with the detail quantity.
func (s *Session) AddSelected(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasSelection {
		return domain.ErrProductNotFound
	}
	return s.addLocked(ctx, s.selectedID, s.detailQuantity)
}

// AddToCart adds quantity units of a loaded product.
func (s *Session) AddToCart(ctx context.Context, productID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(ctx, productID, quantity)
}

func (s *Session) addLocked(ctx context.Context, productID int64, quantity int) error {
	p, ok := domain.FindProduct(s.products, productID)
	if !ok {
		return domain.ErrProductNotFound
	}

	if err := s.cart.Add(&p, quantity); err != nil {
		return err
	}
	s.handleCartEvents(ctx)
	return nil
}

// SetQuantity sets a line's quantity. Zero or less removes the line.
func (s *Session) SetQuantity(ctx context.Context, productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.SetQuantity(productID, quantity)
	s.handleCartEvents(ctx)
}

// SetQuantityInput parses a typed quantity. Non-numeric input is ignored and
// values below 1 are raised to 1.
func (s *Session) SetQuantityInput(ctx context.Context, productID int64, input string) {
	q, ok := parseQuantity(input)
	if !ok {
		return
	}
	s.SetQuantity(ctx, productID, max(1, q))
}

// Increment adds one unit to a line, up to its known stock.
func (s *Session) Increment(ctx context.Context, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.cart.Line(productID)
	if !ok || line.AtStockLimit() {
		return
	}
	s.cart.SetQuantity(productID, line.Quantity+1)
	s.handleCartEvents(ctx)
}

// Decrement removes one unit from a line, stopping at 1.
func (s *Session) Decrement(ctx context.Context, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.cart.Line(productID)
	if !ok || line.Quantity <= 1 {
		return
	}
	s.cart.SetQuantity(productID, line.Quantity-1)
	s.handleCartEvents(ctx)
}

// RemoveFromCart drops a line.
func (s *Session) RemoveFromCart(ctx context.Context, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Remove(productID)
	s.handleCartEvents(ctx)
}

// ClearCart empties the cart.
func (s *Session) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.handleCartEvents(ctx)
}

// Cart returns the cart lines in the order they were first added.
func (s *Session) Cart() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// Summary returns the cart totals.
func (s *Session) Summary() domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Summary()
}

// Notice returns the transient "item added" text, or "".
func (s *Session) Notice() string {
	return s.notifier.Text()
}

// handleCartEvents drains the cart's events: any change is persisted and
// additions raise the notice. Callers hold s.mu.
func (s *Session) handleCartEvents(ctx context.Context) {
	events := s.cart.DomainEvents()
	if len(events) == 0 {
		return
	}
	s.cart.ClearEvents()

	for _, event := range events {
		switch e := event.(type) {
		case *domain.ItemAddedEvent:
			s.notifier.Show(e.Name + " agregado al carrito")
		case *domain.CartReconciledEvent:
			if len(e.Dropped) > 0 {
				s.logger.Info("dropped cart lines missing from catalog",
					zap.Int64s("product_ids", e.Dropped),
					zap.Int("kept", e.Refreshed))
			}
		default:
			s.logger.Debug("cart changed", zap.String("event", event.EventType()))
		}
	}

	s.bridge.Persist(ctx, s.cart.Lines())
}

func parseQuantity(input string) (int, bool) {
	q, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, false
	}
	return q, true
}
