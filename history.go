package toybox

// DefaultHistorySize is the number of past generations retained.
const DefaultHistorySize = 10

// History is a bounded, most-recent-first collection of past successful
// generations. Insertion always happens at the front; once the capacity is
// reached the oldest item is dropped. Items are immutable and are never
// updated in place or removed other than by capacity eviction.
//
// History is not safe for concurrent use; it is owned outright by the
// Session and mutated only under the session lock.
type History struct {
	capacity int
	items    []HistoryItem
}

// NewHistory creates an empty history with the given capacity.
// Non-positive capacities fall back to DefaultHistorySize.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{
		capacity: capacity,
		items:    make([]HistoryItem, 0, capacity),
	}
}

// Insert prepends an item, evicting the oldest entry if the history is full.
func (h *History) Insert(item HistoryItem) {
	h.items = append([]HistoryItem{item}, h.items...)
	if len(h.items) > h.capacity {
		h.items = h.items[:h.capacity]
	}
}

// Items returns a copy of the history, most recent first.
// The returned slice is safe to modify without affecting the history.
func (h *History) Items() []HistoryItem {
	if len(h.items) == 0 {
		return nil
	}
	items := make([]HistoryItem, len(h.items))
	copy(items, h.items)
	return items
}

// Len returns the number of retained items.
func (h *History) Len() int {
	return len(h.items)
}

// Capacity returns the maximum number of retained items.
func (h *History) Capacity() int {
	return h.capacity
}

// ByID looks up an item by its identifier.
func (h *History) ByID(id string) (HistoryItem, bool) {
	for _, item := range h.items {
		if item.ID == id {
			return item, true
		}
	}
	return HistoryItem{}, false
}
