package vtcore

// Page is the 2-D grid: a rectangle of lines, each wide enough to hold
// Width cells, with a scroll region that bounds which rows participate in
// ScrollUp/ScrollDown and their interaction with a History.
//
// Invariants: scrollIdx+scrollNum <= Height; scrollNum == 0 means the
// scroll region is the whole visible height.
type Page struct {
	Width, Height int
	Lines         []*Line

	scrollIdx, scrollNum, scrollFill int

	Age Age

	cache []*Line // scratch buffer reused by scroll/resize shifts
}

// NewPage returns an empty page: zero width and height, no lines.
func NewPage() *Page {
	return &Page{}
}

// Reserve ensures the page has at least rows lines, each reserved to
// cols, leaving existing geometry untouched otherwise. Unlike Resize it
// never changes Width/Height or touches the scroll region.
func (p *Page) Reserve(cols, rows int, attr Attributes, age Age) {
	for len(p.Lines) < rows {
		p.Lines = append(p.Lines, NewLine())
	}
	for i := 0; i < rows; i++ {
		p.Lines[i].Reserve(cols, attr, age, 0)
	}
	if cap(p.cache) < rows {
		p.cache = make([]*Line, rows)
	}
}

// Resize changes the page's visible geometry. Width changes first (every
// line reserved and re-windowed to cols); then height changes: shrinking
// pushes lines off the top into history (if non-nil, preserving order) or
// drops them, and growing appends fresh blank lines at the bottom. The
// scroll region always resets to the full page, and Age is bumped.
func (p *Page) Resize(cols, rows int, attr Attributes, age Age, history *History) {
	for _, l := range p.Lines {
		l.Reserve(cols, attr, age, l.Fill)
		l.SetWidth(cols)
	}
	p.Width = cols

	switch {
	case rows < len(p.Lines):
		overflow := len(p.Lines) - rows
		if history != nil {
			for i := 0; i < overflow; i++ {
				history.Push(p.Lines[i])
			}
		}
		p.Lines = append(p.Lines[:0:0], p.Lines[overflow:]...)
	case rows > len(p.Lines):
		for len(p.Lines) < rows {
			l := NewLine()
			l.Reserve(cols, attr, age, 0)
			p.Lines = append(p.Lines, l)
		}
	}
	p.Height = rows
	if cap(p.cache) < rows {
		p.cache = make([]*Line, rows)
	}

	p.scrollIdx, p.scrollNum, p.scrollFill = 0, 0, 0
	p.Age = maxAge(p.Age, age)
}

// GetCell returns a pointer to the cell at (x, y), or nil if out of
// range.
func (p *Page) GetCell(x, y int) *Cell {
	if x < 0 || y < 0 || y >= len(p.Lines) || x >= p.Lines[y].Width {
		return nil
	}
	return &p.Lines[y].Cells[x]
}

// Reset blanks every line, resets the scroll region to the full page, and
// bumps Age.
func (p *Page) Reset(attr Attributes, age Age) {
	for _, l := range p.Lines {
		l.Reset(attr, age)
	}
	p.scrollIdx, p.scrollNum, p.scrollFill = 0, 0, 0
	p.Age = maxAge(p.Age, age)
}

// scrollRegion returns the current scroll region bounds [idx, idx+num),
// resolving scrollNum == 0 to the full page height.
func (p *Page) scrollRegion() (idx, num int) {
	if p.scrollNum == 0 {
		return 0, p.Height
	}
	return p.scrollIdx, p.scrollNum
}
