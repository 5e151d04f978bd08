package vtcore

import "testing"

// TestPageWriteThreeCells is scenario S4: into a 3x1 page with default
// attrs, write 'A','B','C' at x=0,1,2 age=1; cells read back with age 1;
// line.fill=3; page.age>=1.
func TestPageWriteThreeCells(t *testing.T) {
	p := NewPage()
	p.Reserve(3, 1, Attributes{}, 1)
	p.Width, p.Height = 3, 1

	for i, r := range []rune{'A', 'B', 'C'} {
		if !p.Write(i, 0, NewChar(r), 1, Attributes{}, 1, false) {
			t.Fatalf("write at %d failed", i)
		}
	}
	for i, want := range []rune{'A', 'B', 'C'} {
		cell := p.GetCell(i, 0)
		if cell == nil || cell.Char.Base() != want || cell.Age != 1 {
			t.Fatalf("cell %d = %+v, want %q@age1", i, cell, want)
		}
	}
	if p.Lines[0].Fill != 3 {
		t.Fatalf("line.fill = %d, want 3", p.Lines[0].Fill)
	}
	if p.Age < 1 {
		t.Fatalf("page.age = %d, want >= 1", p.Age)
	}
}

// TestPageScrollUpPushesToHistory is scenario S5.
func TestPageScrollUpPushesToHistory(t *testing.T) {
	p := NewPage()
	p.Reserve(3, 1, Attributes{}, 1)
	p.Width, p.Height = 3, 1
	for i, r := range []rune{'A', 'B', 'C'} {
		p.Write(i, 0, NewChar(r), 1, Attributes{}, 1, false)
	}
	p.SetScrollRegion(0, 1)

	h := NewHistory(10)
	p.ScrollUp(1, Attributes{}, 2, h)

	if h.Len() != 1 {
		t.Fatalf("history.Len() = %d, want 1", h.Len())
	}
	retired := h.Pop(3, Attributes{}, 3)
	for i, want := range []rune{'A', 'B', 'C'} {
		if retired.Cells[i].Char.Base() != want {
			t.Errorf("retired cell %d = %q, want %q", i, retired.Cells[i].Char.Base(), want)
		}
	}
	if !p.Lines[0].IsEmptyLine() {
		t.Fatal("visible row should have been erased after scroll_up")
	}
}

// TestScrollUpDownRoundTrip is invariant 7: scroll_up(n) followed by
// scroll_down(n) with sufficient history restores the scroll region
// cell-by-cell.
func TestScrollUpDownRoundTrip(t *testing.T) {
	p := NewPage()
	p.Reserve(3, 2, Attributes{}, 1)
	p.Width, p.Height = 3, 2
	for i, r := range []rune{'A', 'B', 'C'} {
		p.Write(i, 0, NewChar(r), 1, Attributes{}, 1, false)
	}
	for i, r := range []rune{'D', 'E', 'F'} {
		p.Write(i, 1, NewChar(r), 1, Attributes{}, 1, false)
	}
	p.SetScrollRegion(0, 2)
	h := NewHistory(10)

	p.ScrollUp(1, Attributes{}, 2, h)
	p.ScrollDown(1, Attributes{}, 3, h)

	for i, want := range []rune{'A', 'B', 'C'} {
		if got := p.GetCell(i, 0).Char.Base(); got != want {
			t.Errorf("row0 cell %d = %q, want %q", i, got, want)
		}
	}
}

func TestPageScrollRegionInvariant(t *testing.T) {
	p := NewPage()
	p.Reserve(3, 5, Attributes{}, 1)
	p.Width, p.Height = 3, 5
	p.SetScrollRegion(2, 10)
	idx, num := p.scrollIdx, p.scrollNum
	if idx+num > p.Height {
		t.Fatalf("scroll_idx+scroll_num = %d, exceeds height %d", idx+num, p.Height)
	}
}

func TestPageResizePreservesIntersection(t *testing.T) {
	p := NewPage()
	p.Reserve(3, 2, Attributes{}, 1)
	p.Width, p.Height = 3, 2
	p.Write(0, 0, NewChar('A'), 1, Attributes{}, 1, false)
	p.Write(0, 1, NewChar('B'), 1, Attributes{}, 1, false)

	p.Resize(5, 3, Attributes{}, 2, nil)
	p.Resize(3, 2, Attributes{}, 3, nil)

	// Shrinking 3->2 rows evicts the top row ('A'); the former row 1 ('B')
	// moves up to row 0 with its content intact.
	if got := p.GetCell(0, 0).Char.Base(); got != 'B' {
		t.Fatalf("cell (0,0) = %q after resize round-trip, want 'B'", got)
	}
}
