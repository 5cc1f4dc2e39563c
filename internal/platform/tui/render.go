package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/trackgen/internal/core"
	"github.com/vovakirdan/trackgen/internal/level"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Markers drawn for level objects.
var objectCells = map[level.ObjectType]core.Cell{
	level.ObjectPlayer: {Rune: 'P', Color: core.ColorYellow},
	level.ObjectExit:   {Rune: 'E', Color: core.ColorCyan},
	level.ObjectApple:  {Rune: 'A', Color: core.ColorRed},
	level.ObjectKiller: {Rune: 'K', Color: core.ColorOrange},
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Projection maps level coordinates onto screen cells. The level's y axis
// points up, the screen's down.
type Projection struct {
	bounds core.Bounds
	sx, sy float64
	w, h   int
}

// NewProjection fits bounds into a w x h cell area, stretching each axis
// independently.
func NewProjection(bounds core.Bounds, w, h int) Projection {
	p := Projection{bounds: bounds, w: w, h: h}
	if bw := bounds.Width(); bw > 0 && w > 1 {
		p.sx = float64(w-1) / bw
	}
	if bh := bounds.Height(); bh > 0 && h > 1 {
		p.sy = float64(h-1) / bh
	}
	return p
}

// Cell returns the screen cell of a level position. Positions outside the
// bounds are pinned to the screen edge.
func (p Projection) Cell(pos core.Position) (x, y int) {
	x = int(math.Round((pos.X - p.bounds.Min.X) * p.sx))
	y = p.h - 1 - int(math.Round((pos.Y-p.bounds.Min.Y)*p.sy))
	return core.Clamp(x, 0, p.w-1), core.Clamp(y, 0, p.h-1)
}

// DrawLevel rasterises the polygons and objects of l onto dst, scaled to
// fill the whole screen. Objects are drawn last so they stay visible.
func DrawLevel(dst *core.Screen, l *level.Level) {
	if l == nil || len(l.Polygons) == 0 || dst.Width() < 2 || dst.Height() < 2 {
		return
	}

	proj := NewProjection(l.Bounds(), dst.Width(), dst.Height())

	for _, poly := range l.Polygons {
		color := core.ColorBrightWhite
		if poly.Grass {
			color = core.ColorGreen
		}

		n := len(poly.Vertices)
		for i := range n {
			x0, y0 := proj.Cell(poly.Vertices[i])
			x1, y1 := proj.Cell(poly.Vertices[(i+1)%n])
			dst.DrawLine(x0, y0, x1, y1, core.Cell{Rune: edgeRune(x1-x0, y1-y0), Color: color})
		}
	}

	for _, obj := range l.Objects {
		cell, ok := objectCells[obj.Type]
		if !ok {
			continue
		}
		x, y := proj.Cell(obj.Position)
		// Objects sit on the floor line; lift the marker one row above it.
		if y > 0 {
			y--
		}
		dst.SetCell(x, y, cell)
	}
}

// edgeRune picks a glyph for an edge with the given screen-space direction.
func edgeRune(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '·'
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// RenderLevel draws l onto a fresh w x h screen and returns it as plain text.
func RenderLevel(l *level.Level, w, h int) string {
	s := core.NewScreen(w, h)
	DrawLevel(s, l)
	return s.String()
}
