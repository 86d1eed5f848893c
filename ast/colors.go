package ast

// Color names a terminal color usable with 'zipettecolor'. The set is
// closed; the parser rejects anything else at parse time.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
	ColorCyan   Color = "cyan"
	ColorOrange Color = "orange"
	ColorWhite  Color = "white"
	ColorBrown  Color = "brown"
	ColorPink   Color = "pink"

	// ColorMulti picks a random color per character.
	ColorMulti Color = "multicolor"
)

var colors = map[string]Color{
	"red":        ColorRed,
	"blue":       ColorBlue,
	"green":      ColorGreen,
	"yellow":     ColorYellow,
	"purple":     ColorPurple,
	"cyan":       ColorCyan,
	"orange":     ColorOrange,
	"white":      ColorWhite,
	"brown":      ColorBrown,
	"pink":       ColorPink,
	"multicolor": ColorMulti,
}

// LookupColor resolves a color name from source text.
func LookupColor(name string) (Color, bool) {
	c, ok := colors[name]
	return c, ok
}
