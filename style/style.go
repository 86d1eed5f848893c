// Package style renders plain text with terminal colors. It is the
// only place aware of how colors end up on screen; the rest of the
// interpreter deals in (text, color name) pairs.
package style

import (
	"math/rand"
	"strings"

	"github.com/fatih/color"

	"go.creack.net/zipette/ast"
)

var palette = map[ast.Color]*color.Color{
	ast.ColorRed:    color.New(color.FgRed),
	ast.ColorBlue:   color.New(color.FgBlue),
	ast.ColorGreen:  color.New(color.FgGreen),
	ast.ColorYellow: color.New(color.FgYellow),
	ast.ColorPurple: color.New(color.FgMagenta),
	ast.ColorCyan:   color.New(color.FgCyan),
	ast.ColorWhite:  color.New(color.FgWhite),
	ast.ColorOrange: color.RGB(255, 165, 0),
	ast.ColorBrown:  color.RGB(165, 42, 42),
	ast.ColorPink:   color.RGB(255, 192, 203),
}

// multiOrder fixes the order colors are drawn from in multicolor mode
// so a given rand source always produces the same sequence.
var multiOrder = []ast.Color{
	ast.ColorRed, ast.ColorBlue, ast.ColorGreen, ast.ColorYellow,
	ast.ColorPurple, ast.ColorCyan, ast.ColorOrange, ast.ColorWhite,
	ast.ColorBrown, ast.ColorPink,
}

// Styler renders text in a given color. The rand source driving
// multicolor mode is explicit so callers can pin a seed.
type Styler struct {
	rng *rand.Rand
}

// New creates a Styler drawing multicolor picks from src.
func New(src rand.Source) *Styler {
	return &Styler{rng: rand.New(src)}
}

// Render returns text styled in the given color. Multicolor picks an
// independent random color for every rune.
func (s *Styler) Render(text string, c ast.Color) string {
	if c == ast.ColorMulti {
		return s.renderMulti(text)
	}
	return palette[c].Sprint(text)
}

func (s *Styler) renderMulti(text string) string {
	var out strings.Builder
	for _, r := range text {
		c := multiOrder[s.rng.Intn(len(multiOrder))]
		out.WriteString(palette[c].Sprint(string(r)))
	}
	return out.String()
}
