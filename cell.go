package vtcore

// Cell is one grid position: a character, the style it's drawn with, the
// age it was last touched, and a cached display width so callers never
// need to re-run width lookups on the hot path.
//
// cached_width is refreshed on every write; for the trailing half of a
// double-width character the cell holds an empty Character with the same
// Age/Attributes as its partner, so a renderer can tell the two apart
// without consulting the neighboring cell.
type Cell struct {
	Char        Character
	Age         Age
	Attributes  Attributes
	CachedWidth int
}

// blankCell returns an empty cell carrying attr and age, as produced by
// erase/reset.
func blankCell(attr Attributes, age Age) Cell {
	return Cell{Attributes: attr, Age: age}
}

// IsEmpty reports whether c holds no character.
func (c Cell) IsEmpty() bool {
	return c.Char.IsEmpty()
}
