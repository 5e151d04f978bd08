package vtcore

// Age is a monotone counter used for incremental redraw. Every mutating
// operation on a Cell, Line, or Page stamps the things it touched with the
// Age supplied by the caller; a renderer that remembers the last Age it
// drew can compare against the current Age to find the dirty set without
// walking the whole grid.
//
// Age is free to wrap around a 64-bit counter; NullAge is the only value
// that carries special meaning.
type Age uint64

// NullAge means "force redraw" when compared against a renderer's
// last-seen age, and "force this cell/line specifically" when it appears
// as a Cell or Line's own age. It is never produced by incrementing a
// normal counter in the ordinary course of operation — callers that want
// to force a full redraw pass it explicitly.
const NullAge Age = 0

// NeedsRedraw reports whether content stamped with current should be
// redrawn by a renderer whose most recent redraw covered everything up to
// and including lastSeen. It implements the aging contract from the data
// model: redraw if either age is NullAge, or if current is strictly newer
// than lastSeen.
func NeedsRedraw(current, lastSeen Age) bool {
	if current == NullAge || lastSeen == NullAge {
		return true
	}
	return current > lastSeen
}

// maxAge returns the age to record when something whose age is a is
// stamped with b: the greater of the two, except that stamping with
// NullAge yields NullAge and a prior NullAge is replaced by b, so a
// NullAge stamp "sticks" until the next real age comes through — matching
// the force-redraw sentinel semantics.
func maxAge(a, b Age) Age {
	if b == NullAge {
		return NullAge
	}
	if a == NullAge {
		return b
	}
	if a > b {
		return a
	}
	return b
}
