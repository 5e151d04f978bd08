package vtcore

// Character is a cell's character content: empty, a single inline UCS-4
// code point, or a base code point plus an unbounded run of combining
// marks. Values up to three code points long are stored inline with no
// allocation; longer runs are promoted to an owned heap slice.
//
// The zero value is the empty character.
//
// Character is a plain value type — copying a Character struct copies the
// inline form exactly (no combining marks are lost), but two independent
// owned Characters that happen to hold equal content are not Same; use
// Equal to compare by value and Same to compare by identity.
type Character struct {
	inline  [3]rune
	inlineN int8
	owned   *[]rune
}

// NewChar returns a Character whose base code point is r. Passing 0
// returns the empty character, mirroring Set's "append==0 frees and
// returns empty" rule.
func NewChar(r rune) Character {
	if r == 0 {
		return Character{}
	}
	return Character{inline: [3]rune{r}, inlineN: 1}
}

// Set replaces prev with a new character whose base is appended. In a
// garbage-collected runtime there is nothing to explicitly free; prev is
// accepted (rather than dropped from the signature) only to keep the
// operation's shape the same as the rest of this API's value-in/value-out
// style.
func Set(prev Character, appended rune) Character {
	_ = prev
	return NewChar(appended)
}

// IsEmpty reports whether c holds no character at all.
func (c Character) IsEmpty() bool {
	return c.owned == nil && c.inlineN == 0
}

// Base returns the base code point, or 0 if c is empty.
func (c Character) Base() rune {
	switch {
	case c.owned != nil:
		if len(*c.owned) == 0 {
			return 0
		}
		return (*c.owned)[0]
	case c.inlineN > 0:
		return c.inline[0]
	default:
		return 0
	}
}

// Width returns the display width of c's base code point using the
// standard (non-CJK) width table. Combining marks never contribute to
// width, so only the base matters.
func (c Character) Width() int {
	return Width(c.Base())
}

// Len returns the number of code points (base + combining marks) that
// make up c.
func (c Character) Len() int {
	switch {
	case c.owned != nil:
		return len(*c.owned)
	default:
		return int(c.inlineN)
	}
}

// Merge extends c with one combining code point, promoting from inline to
// an owned heap sequence if the inline capacity (3 code points) is
// exceeded. It returns the updated character; the receiver's own storage
// is not mutated (Merge is pure), matching Dup/DupAppend's value
// semantics.
func (c Character) Merge(mark rune) Character {
	if c.owned == nil && c.inlineN == 0 {
		// A combining mark with no base character has nothing to land on.
		return c
	}
	if c.owned == nil && c.inlineN < int8(len(c.inline)) {
		next := c
		next.inline[next.inlineN] = mark
		next.inlineN++
		return next
	}
	var scratch [4]rune
	seq := c.Resolve(scratch[:])
	combined := make([]rune, len(seq)+1)
	copy(combined, seq)
	combined[len(seq)] = mark
	return Character{owned: &combined}
}

// Dup returns a deep copy of c. For an owned character the copy has its
// own backing array, so Same(c, c.Dup()) is false even though Equal(c,
// c.Dup()) is true.
func (c Character) Dup() Character {
	if c.owned == nil {
		return c
	}
	cp := make([]rune, len(*c.owned))
	copy(cp, *c.owned)
	return Character{owned: &cp}
}

// DupAppend combines mark onto base without mutating base, returning a
// brand-new character distinct in identity from base.
func (c Character) DupAppend(mark rune) Character {
	return c.Dup().Merge(mark)
}

// Resolve returns the full code-point sequence (base followed by any
// combining marks) as a slice. For an inline character the sequence is
// copied into scratch, which must have room for at least 4 elements, and
// the returned slice aliases scratch. For an owned character the returned
// slice aliases the owned buffer directly; callers must not retain it
// past the character's next mutation.
func (c Character) Resolve(scratch []rune) []rune {
	if c.owned != nil {
		return *c.owned
	}
	n := copy(scratch, c.inline[:c.inlineN])
	return scratch[:n]
}

// Free releases c's ownership of any heap-allocated combining sequence.
// In vtcore's garbage-collected runtime this is a no-op kept only so
// callers porting logic from the reference C API have a symmetrical call
// to make; simply dropping the last reference to c is equally sufficient.
func (c Character) Free() {}

// Same reports whether a and b are the same character by identity: two
// inline characters are Same when their contents are equal (there is no
// separate allocation to distinguish), and two owned characters are Same
// only when they share the same backing buffer.
func Same(a, b Character) bool {
	if a.owned != nil || b.owned != nil {
		return a.owned != nil && b.owned != nil && a.owned == b.owned
	}
	return a.inlineN == b.inlineN && a.inline == b.inline
}

// Equal reports whether a and b hold the same code-point sequence,
// resolving both to their full base+combining-marks form first.
func Equal(a, b Character) bool {
	var sa, sb [4]rune
	ra, rb := a.Resolve(sa[:]), b.Resolve(sb[:])
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if ra[i] != rb[i] {
			return false
		}
	}
	return true
}
