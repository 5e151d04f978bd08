package vtcore

// Write dispatches to the line at y, with bounds checks. It returns false
// if y is out of range or the line rejects the write (e.g. it would run
// past the line's width).
func (p *Page) Write(x, y int, ch Character, cwidth int, attr Attributes, age Age, insertMode bool) bool {
	if y < 0 || y >= len(p.Lines) {
		return false
	}
	ok := p.Lines[y].Write(x, ch, cwidth, attr, age, insertMode)
	if ok {
		p.Age = maxAge(p.Age, age)
	}
	return ok
}

// InsertCells dispatches to the line at y.
func (p *Page) InsertCells(y, from, num int, attr Attributes, age Age) {
	if y < 0 || y >= len(p.Lines) {
		return
	}
	p.Lines[y].Insert(from, num, attr, age)
	p.Age = maxAge(p.Age, age)
}

// DeleteCells dispatches to the line at y.
func (p *Page) DeleteCells(y, from, num int, attr Attributes, age Age) {
	if y < 0 || y >= len(p.Lines) {
		return
	}
	p.Lines[y].Delete(from, num, attr, age)
	p.Age = maxAge(p.Age, age)
}

// AppendCombChar dispatches to the line at y.
func (p *Page) AppendCombChar(x, y int, ucs4 rune, age Age) {
	if y < 0 || y >= len(p.Lines) {
		return
	}
	p.Lines[y].AppendCombChar(x, ucs4, age)
	p.Age = maxAge(p.Age, age)
}

// Erase blanks a rectangular-or-linear region, mirroring ED/EL semantics
// as implemented by a dispatcher: if fromY == toY, only columns
// fromX..toX on that row are erased; otherwise fromX..end-of-line on
// fromY, every full row strictly between, and columns 0..toX on toY.
func (p *Page) Erase(fromX, fromY, toX, toY int, attr Attributes, age Age, keepProtected bool) {
	if fromY < 0 || toY >= len(p.Lines) || fromY > toY {
		return
	}
	if fromY == toY {
		l := p.Lines[fromY]
		l.Erase(fromX, toX-fromX+1, attr, age, keepProtected)
		p.Age = maxAge(p.Age, age)
		return
	}
	first := p.Lines[fromY]
	first.Erase(fromX, first.Width-fromX, attr, age, keepProtected)
	for y := fromY + 1; y < toY; y++ {
		l := p.Lines[y]
		l.Erase(0, l.Width, attr, age, keepProtected)
	}
	last := p.Lines[toY]
	last.Erase(0, toX+1, attr, age, keepProtected)
	p.Age = maxAge(p.Age, age)
}
