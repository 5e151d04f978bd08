package vtcore

import "testing"

func TestWidth(t *testing.T) {
	cases := []struct {
		r    rune
		want int
	}{
		{'A', 1},
		{0x0301, 0}, // combining acute accent
		{0x00, 0},   // NUL
		{0x4E2D, 2}, // CJK ideograph "middle"
		{0x1F600, 2},
	}
	for _, c := range cases {
		if got := Width(c.r); got != c.want {
			t.Errorf("Width(%#x) = %d, want %d", c.r, got, c.want)
		}
	}
}

func TestWidthOfString(t *testing.T) {
	got := WidthOfString([]rune{'A', 'B', 0x4E2D})
	if want := 4; got != want {
		t.Errorf("WidthOfString = %d, want %d", got, want)
	}
}
