package vtcore

// ColorKind discriminates how a Color's value should be interpreted.
type ColorKind uint8

const (
	// ColorDefault is the renderer-chosen default foreground/background.
	ColorDefault ColorKind = iota
	// ColorPalette selects one of 256 indexed palette entries.
	ColorPalette
	// ColorRGB is an explicit 24-bit true color.
	ColorRGB
	// ColorNamed selects one of the 16 classic named ANSI colors.
	ColorNamed
)

// Named palette codes 0..15, usable with ColorNamed.
const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	LightBlack
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	LightWhite
)

// NamedColor is one of the 16 classic ANSI color codes.
type NamedColor uint8

// Color is a pure value type: a discriminant plus whichever auxiliary
// field that discriminant uses. The zero value is ColorDefault.
type Color struct {
	Kind    ColorKind
	Index   uint8 // valid when Kind == ColorPalette
	Named   NamedColor
	R, G, B uint8 // valid when Kind == ColorRGB
}

// DefaultColor is the renderer-chosen default color.
var DefaultColor = Color{Kind: ColorDefault}

// PaletteColor returns a Color selecting the given 256-color palette index.
func PaletteColor(index uint8) Color {
	return Color{Kind: ColorPalette, Index: index}
}

// RGBColor returns a Color with an explicit true-color value.
func RGBColor(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// NamedColorValue returns a Color selecting one of the 16 classic ANSI
// colors.
func NamedColorValue(n NamedColor) Color {
	return Color{Kind: ColorNamed, Named: n}
}

// Attributes is a cell's style: a foreground and background color plus
// seven independent boolean flags. It is a pure value type compared
// elementwise; the zero value is default/default with every flag clear.
type Attributes struct {
	Foreground Color
	Background Color

	Bold      bool
	Italic    bool
	Underline bool
	Inverse   bool
	Protect   bool
	Blink     bool
	Hidden    bool
}

// DefaultAttributes returns the zero-value attribute set: default colors,
// no flags.
func DefaultAttributes() Attributes {
	return Attributes{}
}

// Equal reports whether a and b describe the same style, comparing every
// field.
func (a Attributes) Equal(b Attributes) bool {
	return a == b
}
