// Package nav implements the in-app back stack: a bounded, FIFO-evicting
// list of visited routes with hardcoded fallbacks for cold starts.
package nav

import (
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultLimit is the number of history entries retained; the oldest entry
// is evicted first.
const DefaultLimit = 20

// Entry is one recorded route transition.
type Entry struct {
	Path string
	At   time.Time
}

// History tracks visited routes for back navigation.
type History struct {
	clock clockwork.Clock
	limit int

	mu       sync.Mutex
	entries  []Entry
	previous string
	started  bool
}

// NewHistory creates an empty history retaining at most limit entries.
func NewHistory(clock clockwork.Clock, limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{clock: clock, limit: limit}
}

// Visit records a route change. The route left behind is appended to the
// history; consecutive duplicates are skipped.
func (h *History) Visit(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.started && h.previous != path {
		last := ""
		if n := len(h.entries); n > 0 {
			last = h.entries[n-1].Path
		}
		if last != h.previous {
			h.entries = append(h.entries, Entry{Path: h.previous, At: h.clock.Now()})
			if len(h.entries) > h.limit {
				h.entries = h.entries[1:]
			}
		}
	}
	h.previous = path
	h.started = true
}

// Back pops the most recent route different from current. Entries recorded
// after the popped route are discarded. With no usable history it falls back
// to a route derived from current.
func (h *History) Back(current string) string {
	h.mu.Lock()
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].Path != current {
			path := h.entries[i].Path
			h.entries = h.entries[:i+1]
			h.mu.Unlock()
			return path
		}
	}
	h.mu.Unlock()
	return fallbackRoute(current)
}

// CanGoBack reports whether back navigation makes sense from current. The
// intake flow at the root is the only place it does not.
func (h *History) CanGoBack(current string) bool {
	return current != "/"
}

// Len reports the number of retained entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func fallbackRoute(current string) string {
	switch {
	case strings.HasPrefix(current, "/now-playing/"):
		return "/audio-pharmacy"
	case current == "/audiobooks",
		current == "/audio-pharmacy",
		current == "/regional-radio",
		current == "/cinema",
		current == "/visual-escapes",
		current == "/staff":
		return "/dashboard"
	case current == "/dashboard":
		return "/"
	default:
		return "/dashboard"
	}
}
