package vtcore

// Line is a variable-width row of cells. Width is the visible column
// count; Cells may be longer than Width (retained capacity from a prior,
// wider Reserve). Fill is a conservative high-water mark: the count of
// columns from the left that might hold non-blank content. Writes push
// Fill forward; Erase/Reset may pull it back.
//
// prev/next make Line an intrusive doubly linked list node so History can
// thread retired lines through it without a second allocation.
type Line struct {
	Width int
	Cells []Cell
	Fill  int
	Age   Age

	prev, next *Line
}

// NewLine returns an empty line: width 0, no cells, fill 0, age NullAge.
func NewLine() *Line {
	return &Line{}
}

// IsEmptyLine reports whether the line has no non-blank content, per its
// Fill watermark.
func (l *Line) IsEmptyLine() bool {
	return l.Fill == 0
}

// Reserve ensures the line has at least width cells and sets its visible
// width to width. Cells already within the old visible width are left
// untouched (this is what lets a resize preserve content). Cells newly
// exposed by growing the width are blanked with attr/age, except that one
// within the leftmost protectWidth columns whose Protect flag is already
// set is left as-is; this is what lets History.pop hand back a widened
// line without clobbering the protected content it carried into history.
func (l *Line) Reserve(width int, attr Attributes, age Age, protectWidth int) {
	oldWidth := l.Width
	if cap(l.Cells) < width {
		grown := make([]Cell, len(l.Cells), width)
		copy(grown, l.Cells)
		l.Cells = grown
	}
	for len(l.Cells) < width {
		l.Cells = append(l.Cells, Cell{})
	}
	start := oldWidth
	if start > width {
		start = width
	}
	for i := start; i < width; i++ {
		if i < protectWidth && l.Cells[i].Attributes.Protect {
			continue
		}
		l.Cells[i] = blankCell(attr, age)
	}
	l.Width = width
	if l.Fill > width {
		l.Fill = width
	}
	l.Age = maxAge(l.Age, age)
}

// SetWidth changes the visible width without reallocating. It only
// shrinks the visible window (callers needing more capacity must call
// Reserve); Fill is clamped to the new width.
func (l *Line) SetWidth(width int) {
	if width > l.Width {
		width = l.Width
	}
	l.Width = width
	if l.Fill > width {
		l.Fill = width
	}
}

// Write places ch at column x with display width cwidth. If x+cwidth
// exceeds the line's width, Write is a no-op and returns false.
//
// When insertMode is set, cells from x onward are right-shifted by cwidth
// first (dropping the cwidth rightmost cells); otherwise the target cells
// are overwritten directly. A double-width write also stamps the
// following cell as the glyph's right half: an empty character sharing
// the same attributes and age, with CachedWidth 0.
func (l *Line) Write(x int, ch Character, cwidth int, attr Attributes, age Age, insertMode bool) bool {
	if x < 0 || cwidth < 0 || x+cwidth > l.Width {
		return false
	}
	if insertMode && cwidth > 0 {
		copy(l.Cells[x+cwidth:l.Width], l.Cells[x:l.Width-cwidth])
	}
	l.Cells[x] = Cell{Char: ch, Age: age, Attributes: attr, CachedWidth: cwidth}
	if cwidth == 2 {
		l.Cells[x+1] = Cell{Age: age, Attributes: attr, CachedWidth: 0}
	}
	if x+cwidth > l.Fill {
		l.Fill = x + cwidth
	}
	l.Age = maxAge(l.Age, age)
	return true
}

// Insert right-shifts cells starting at from by num columns, blanking the
// newly opened columns with attr/age. Cells pushed past Width are
// dropped.
func (l *Line) Insert(from, num int, attr Attributes, age Age) {
	if from < 0 || from >= l.Width || num <= 0 {
		return
	}
	if num > l.Width-from {
		num = l.Width - from
	}
	copy(l.Cells[from+num:l.Width], l.Cells[from:l.Width-num])
	for i := from; i < from+num; i++ {
		l.Cells[i] = blankCell(attr, age)
	}
	if l.Fill > from {
		l.Fill += num
		if l.Fill > l.Width {
			l.Fill = l.Width
		}
	}
	l.Age = maxAge(l.Age, age)
}

// Delete left-shifts cells beginning at from+num into from, blanking the
// rightmost num columns.
func (l *Line) Delete(from, num int, attr Attributes, age Age) {
	if from < 0 || from >= l.Width || num <= 0 {
		return
	}
	if num > l.Width-from {
		num = l.Width - from
	}
	copy(l.Cells[from:l.Width-num], l.Cells[from+num:l.Width])
	for i := l.Width - num; i < l.Width; i++ {
		l.Cells[i] = blankCell(attr, age)
	}
	if l.Fill > from {
		l.Fill -= num
		if l.Fill < from {
			l.Fill = from
		}
	}
	l.Age = maxAge(l.Age, age)
}

// AppendCombChar combines ucs4 onto the character already at column x. If
// that cell is empty, a combining mark has nothing to land on and this is
// a no-op. CachedWidth never changes, matching the invariant that
// combining marks contribute no width.
func (l *Line) AppendCombChar(x int, ucs4 rune, age Age) {
	if x < 0 || x >= l.Width || l.Cells[x].IsEmpty() {
		return
	}
	l.Cells[x].Char = l.Cells[x].Char.Merge(ucs4)
	l.Cells[x].Age = age
	l.Age = maxAge(l.Age, age)
}

// Erase blanks num cells starting at from with attr/age. If keepProtected
// is set, cells whose existing Protect flag is set are left untouched.
// Fill is pulled back if the erase reached its current high-water mark.
func (l *Line) Erase(from, num int, attr Attributes, age Age, keepProtected bool) {
	if from < 0 {
		from = 0
	}
	to := from + num
	if to > l.Width {
		to = l.Width
	}
	for i := from; i < to; i++ {
		if keepProtected && l.Cells[i].Attributes.Protect {
			continue
		}
		l.Cells[i] = blankCell(attr, age)
	}
	for l.Fill > 0 && l.Fill <= l.Width && l.Cells[l.Fill-1].IsEmpty() {
		l.Fill--
	}
	l.Age = maxAge(l.Age, age)
}

// Reset blanks the whole line, sets Fill to 0, and stamps age.
func (l *Line) Reset(attr Attributes, age Age) {
	for i := 0; i < l.Width; i++ {
		l.Cells[i] = blankCell(attr, age)
	}
	l.Fill = 0
	l.Age = maxAge(l.Age, age)
}

// link inserts l at the head of h, the intrusive list used by History.
func (l *Line) link(h *History) {
	l.prev = nil
	l.next = h.head
	if h.head != nil {
		h.head.prev = l
	}
	h.head = l
	if h.tail == nil {
		h.tail = l
	}
}

// linkTail inserts l at the tail of h.
func (l *Line) linkTail(h *History) {
	l.next = nil
	l.prev = h.tail
	if h.tail != nil {
		h.tail.next = l
	}
	h.tail = l
	if h.head == nil {
		h.head = l
	}
}

// unlink removes l from h, wherever in the list it sits.
func (l *Line) unlink(h *History) {
	if l.prev != nil {
		l.prev.next = l.next
	} else if h.head == l {
		h.head = l.next
	}
	if l.next != nil {
		l.next.prev = l.prev
	} else if h.tail == l {
		h.tail = l.prev
	}
	l.prev, l.next = nil, nil
}
