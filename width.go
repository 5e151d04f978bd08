package vtcore

import "github.com/mattn/go-runewidth"

// cjkCondition renders wide any code point whose East Asian Width property
// is "Ambiguous", matching the CJK-locale behavior xterm and friends use
// when running under a CJK $LANG.
var cjkCondition = &runewidth.Condition{EastAsianWidth: true}

// stdCondition renders "Ambiguous" code points narrow regardless of the
// process locale.
var stdCondition = &runewidth.Condition{EastAsianWidth: false}

// Width returns the display width of a UCS-4 code point: 0 for combining
// marks and C0/C1 controls, 1 for ordinary characters, 2 for East-Asian
// wide characters.
func Width(r rune) int {
	return stdCondition.RuneWidth(r)
}

// WidthCJK is Width's CJK variant: code points in the Unicode "Ambiguous"
// East Asian Width class are treated as wide (2) instead of narrow (1).
func WidthCJK(r rune) int {
	return cjkCondition.RuneWidth(r)
}

// WidthOfString sums the display width of a sequence of code points using
// Width. A rune with negative width (there are none from runewidth, but
// callers that hand-roll a width function may produce one) aborts the sum
// and WidthOfString returns -1 to signal the error, per spec section 4.1.
func WidthOfString(seq []rune) int {
	return widthOfString(seq, Width)
}

// WidthOfStringCJK is WidthOfString using the CJK-ambiguous-as-wide table.
func WidthOfStringCJK(seq []rune) int {
	return widthOfString(seq, WidthCJK)
}

func widthOfString(seq []rune, width func(rune) int) int {
	total := 0
	for _, r := range seq {
		w := width(r)
		if w < 0 {
			return -1
		}
		total += w
	}
	return total
}
