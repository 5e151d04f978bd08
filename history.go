package vtcore

// History is a FIFO of retired lines with a bounded capacity: Page.ScrollUp
// pushes lines leaving the top of the scroll region onto it, and
// Page.ScrollDown pops them back. Lines are linked intrusively (see
// Line.link/linkTail/unlink) so push/pop never allocate.
type History struct {
	head, tail *Line
	count      int
	maxLines   int
}

// NewHistory returns an empty history with the given scroll-back
// capacity. A cap of 0 means no scroll-back at all: Push becomes a no-op
// that immediately discards what it's given.
func NewHistory(maxLines int) *History {
	return &History{maxLines: maxLines}
}

// Len returns the number of lines currently retained.
func (h *History) Len() int {
	return h.count
}

// Cap returns the configured maximum line count.
func (h *History) Cap() int {
	return h.maxLines
}

// Clear detaches every retained line.
func (h *History) Clear() {
	for l := h.head; l != nil; {
		next := l.next
		l.prev, l.next = nil, nil
		l = next
	}
	h.head, h.tail, h.count = nil, nil, 0
}

// Trim evicts from the head until at most max lines remain, and stores
// max as the new capacity.
func (h *History) Trim(max int) {
	h.maxLines = max
	for h.count > max {
		h.evictHead()
	}
}

// Push appends line at the tail, evicting from the head if that exceeds
// capacity. Pushing onto a zero-capacity history discards line outright.
func (h *History) Push(line *Line) {
	if h.maxLines == 0 {
		return
	}
	line.linkTail(h)
	h.count++
	for h.count > h.maxLines {
		h.evictHead()
	}
}

// evictHead detaches and drops the oldest retained line.
func (h *History) evictHead() {
	if h.head == nil {
		return
	}
	l := h.head
	l.unlink(h)
	h.count--
}

// Pop detaches the most recently pushed line and reserves it to
// reserveWidth, preserving its existing content via a protectWidth of
// min(fill, reserveWidth). It returns nil if the history is empty.
func (h *History) Pop(reserveWidth int, attr Attributes, age Age) *Line {
	if h.tail == nil {
		return nil
	}
	l := h.tail
	l.unlink(h)
	h.count--
	protect := l.Fill
	if reserveWidth < protect {
		protect = reserveWidth
	}
	l.Reserve(reserveWidth, attr, age, protect)
	return l
}

// Peek returns how many lines, up to max, could be popped right now
// without modifying the list. The history only ever pops from the tail,
// so this is simply min(max, Len()); it exists as a named operation for
// resize planning call sites that mirror Page.scroll_down's pop budget.
func (h *History) Peek(max int) int {
	if h.count < max {
		return h.count
	}
	return max
}
