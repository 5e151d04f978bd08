package vtcore

// SetScrollRegion validates and installs a new scroll region [idx,
// idx+num), clamping to the page height, and resets scrollFill.
func (p *Page) SetScrollRegion(idx, num int) {
	if idx < 0 {
		idx = 0
	}
	if idx > p.Height {
		idx = p.Height
	}
	if idx+num > p.Height {
		num = p.Height - idx
	}
	if num < 0 {
		num = 0
	}
	p.scrollIdx, p.scrollNum = idx, num
	p.scrollFill = 0
}

// ScrollUp moves the top min(num, region size) lines out of the scroll
// region. When the region starts at row 0 and history is non-nil, those
// lines are pushed onto it in order; otherwise they are recycled in
// place. The remaining region lines shift up and the newly opened bottom
// rows are filled with erased lines stamped with attr/age.
func (p *Page) ScrollUp(num int, attr Attributes, age Age, history *History) {
	idx, regionNum := p.scrollRegion()
	if regionNum <= 0 || num <= 0 {
		return
	}
	if num > regionNum {
		num = regionNum
	}
	region := p.Lines[idx : idx+regionNum]

	evicted := append([]*Line(nil), region[:num]...)
	copy(region, region[num:])

	toHistory := idx == 0 && history != nil
	if toHistory {
		for _, l := range evicted {
			history.Push(l)
		}
	}
	for i := 0; i < num; i++ {
		var l *Line
		if toHistory {
			l = NewLine()
			l.Reserve(p.Width, attr, age, 0)
		} else {
			l = evicted[i]
			l.Reserve(p.Width, attr, age, 0)
			l.Reset(attr, age)
		}
		region[regionNum-num+i] = l
	}

	if p.scrollFill > num {
		p.scrollFill -= num
	} else {
		p.scrollFill = 0
	}
	p.Age = maxAge(p.Age, age)
}

// ScrollDown moves the bottom lines of the scroll region out (their
// content is discarded) and fills the top by popping from history when
// the region starts at row 0 and history has lines to offer; otherwise
// the top is filled with erased lines, reusing the displaced ones.
// Popped lines are reserved to the page width with protectWidth equal to
// their own prior fill, so previously visible content survives the
// round-trip through history.
func (p *Page) ScrollDown(num int, attr Attributes, age Age, history *History) {
	idx, regionNum := p.scrollRegion()
	if regionNum <= 0 || num <= 0 {
		return
	}
	if num > regionNum {
		num = regionNum
	}
	region := p.Lines[idx : idx+regionNum]

	displaced := append([]*Line(nil), region[regionNum-num:]...)
	copy(region[num:], region[:regionNum-num])

	fromHistory := idx == 0 && history != nil
	popped := 0
	for i := 0; i < num; i++ {
		var l *Line
		if fromHistory {
			l = history.Pop(p.Width, attr, age)
		}
		if l != nil {
			popped++
		} else {
			l = displaced[i]
			l.Reserve(p.Width, attr, age, 0)
			l.Reset(attr, age)
		}
		region[i] = l
	}

	if popped > 0 {
		p.scrollFill += popped
		if p.scrollFill > regionNum {
			p.scrollFill = regionNum
		}
	}
	p.Age = maxAge(p.Age, age)
}

// InsertLines shifts lines within the scroll region down from y, clipped
// to the region, opening num blank rows at y.
func (p *Page) InsertLines(y, num int, attr Attributes, age Age) {
	idx, regionNum := p.scrollRegion()
	if y < idx || y >= idx+regionNum || num <= 0 {
		return
	}
	regionEnd := idx + regionNum
	if num > regionEnd-y {
		num = regionEnd - y
	}
	copy(p.Lines[y+num:regionEnd], p.Lines[y:regionEnd-num])
	for i := y; i < y+num; i++ {
		l := NewLine()
		l.Reserve(p.Width, attr, age, 0)
		p.Lines[i] = l
	}
	p.Age = maxAge(p.Age, age)
}

// DeleteLines shifts lines within the scroll region up into y, clipped to
// the region, filling the opened rows at the bottom of the region with
// blank lines.
func (p *Page) DeleteLines(y, num int, attr Attributes, age Age) {
	idx, regionNum := p.scrollRegion()
	if y < idx || y >= idx+regionNum || num <= 0 {
		return
	}
	regionEnd := idx + regionNum
	if num > regionEnd-y {
		num = regionEnd - y
	}
	copy(p.Lines[y:regionEnd-num], p.Lines[y+num:regionEnd])
	for i := regionEnd - num; i < regionEnd; i++ {
		l := NewLine()
		l.Reserve(p.Width, attr, age, 0)
		p.Lines[i] = l
	}
	p.Age = maxAge(p.Age, age)
}
