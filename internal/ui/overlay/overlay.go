// Package overlay composites modal content over a background view
// without clearing the screen. Splicing is ANSI-aware so styling in
// both layers survives.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Anchor selects the vertical placement of the overlay. Horizontal
// placement is always centered.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTop
	AnchorBottom
)

// Compose renders fg on top of bg inside a width x height viewport.
// pad is the vertical gap from the anchored edge; it is ignored for
// AnchorCenter.
func Compose(fg, bg string, width, height int, anchor Anchor, pad int) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	for len(bgLines) < height {
		bgLines = append(bgLines, strings.Repeat(" ", width))
	}

	x, y := origin(width, height, lipgloss.Width(fg), len(fgLines), anchor, pad)

	for i, fgLine := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], fgLine, x)
	}

	return strings.Join(bgLines, "\n")
}

// Center composites fg over bg centered in the viewport.
func Center(fg, bg string, width, height int) string {
	return Compose(fg, bg, width, height, AnchorCenter, 0)
}

// Bottom composites fg over bg at the bottom center, pad rows above
// the bottom edge.
func Bottom(fg, bg string, width, height, pad int) string {
	return Compose(fg, bg, width, height, AnchorBottom, pad)
}

// splice replaces the cells of bgLine starting at column x with
// fgLine, preserving escape sequences on both sides.
func splice(bgLine, fgLine string, x int) string {
	left := ansi.Truncate(bgLine, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	end := x + ansi.StringWidth(fgLine)
	var right string
	if end < ansi.StringWidth(bgLine) {
		right = ansi.TruncateLeft(bgLine, end, "")
	}

	return left + fgLine + right
}

func origin(width, height, fgWidth, fgHeight int, anchor Anchor, pad int) (x, y int) {
	x = (width - fgWidth) / 2
	switch anchor {
	case AnchorTop:
		y = pad
	case AnchorBottom:
		y = height - fgHeight - pad
	default:
		y = (height - fgHeight) / 2
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
