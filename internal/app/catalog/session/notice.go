package session

import (
	"sync"
	"time"

	"github.com/light-bringer/furniture-catalog/internal/pkg/clock"
)

// DefaultNoticeDuration is how long the "item added" notice stays visible.
const DefaultNoticeDuration = 2500 * time.Millisecond

// Notifier holds one transient notice. Showing a new notice cancels the
// pending clear of the previous one, so at most one clear is scheduled.
type Notifier struct {
	mu       sync.Mutex
	clock    clock.Clock
	duration time.Duration

	text  string
	gen   uint64
	timer clock.Timer
}

// NewNotifier creates a Notifier. A non-positive duration uses DefaultNoticeDuration.
func NewNotifier(clk clock.Clock, duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultNoticeDuration
	}
	return &Notifier{clock: clk, duration: duration}
}

// Show replaces the current notice and restarts the clear timer.
func (n *Notifier) Show(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.gen++
	gen := n.gen
	n.text = text

	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = n.clock.AfterFunc(n.duration, func() {
		n.expire(gen)
	})
}

// Text returns the visible notice, or "" when none.
func (n *Notifier) Text() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.text
}

// Stop clears the notice and cancels the pending timer.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.gen++
	n.text = ""
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

// expire clears the notice only if no newer notice was shown since gen.
func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.gen != gen {
		return
	}
	n.text = ""
	n.timer = nil
}
