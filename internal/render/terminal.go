package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const (
	lineRune = '·'
	ringRune = 'o'
)

// Terminal draws onto a tcell screen. World coordinates are divided by
// Scale to obtain cell coordinates.
type Terminal struct {
	screen tcell.Screen
	scale  float64
}

func NewTerminal(screen tcell.Screen, scale float64) *Terminal {
	if scale <= 0 {
		scale = 1
	}
	return &Terminal{screen: screen, scale: scale}
}

func (t *Terminal) DrawCircle(center Vector, radius float64, style Style) {
	cx, cy := t.cell(center.X), t.cell(center.Y)
	r := radius / t.scale
	fill, hasFill := ParseColor(style.FillStyle)
	stroke, hasStroke := ParseColor(style.StrokeStyle)

	if r < 1 {
		t.paint(cx, cy, fill, hasFill, stroke, hasStroke)
		return
	}

	span := int(math.Ceil(r))
	for y := cy - span; y <= cy+span; y++ {
		for x := cx - span; x <= cx+span; x++ {
			d := math.Hypot(float64(x-cx), float64(y-cy))
			if d > r {
				continue
			}
			ring := d > r-1
			t.paint(x, y, fill, hasFill, stroke, hasStroke && ring)
		}
	}
}

func (t *Terminal) DrawLine(from, to Vector, style Style) {
	color, ok := ParseColor(style.StrokeStyle)
	if !ok {
		color = tcell.ColorWhite
	}

	x0, y0 := t.cell(from.X), t.cell(from.Y)
	x1, y1 := t.cell(to.X), t.cell(to.Y)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		_, _, current, _ := t.screen.GetContent(x0, y0)
		t.screen.SetContent(x0, y0, lineRune, nil, current.Foreground(color))
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (t *Terminal) WriteText(x, y float64, text string, style Style) {
	runes := []rune(text)
	cx, cy := t.cell(x), t.cell(y)
	switch style.TextAlign {
	case "center":
		cx -= len(runes) / 2
	case "right", "end":
		cx -= len(runes)
	}

	color, hasColor := ParseColor(style.FillStyle)
	for i, r := range runes {
		_, _, current, _ := t.screen.GetContent(cx+i, cy)
		if hasColor {
			current = current.Foreground(color)
		}
		t.screen.SetContent(cx+i, cy, r, nil, current)
	}
}

// Show flushes pending cells to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) paint(x, y int, fill tcell.Color, hasFill bool, stroke tcell.Color, ring bool) {
	mainc, _, current, _ := t.screen.GetContent(x, y)
	switch {
	case ring:
		t.screen.SetContent(x, y, ringRune, nil, current.Foreground(stroke))
	case hasFill:
		t.screen.SetContent(x, y, ' ', nil, current.Background(fill))
	default:
		t.screen.SetContent(x, y, mainc, nil, current)
	}
}

func (t *Terminal) cell(v float64) int {
	return int(math.Floor(v / t.scale))
}

// ParseColor understands tcell color names, "#rrggbb" and "rgb(r,g,b)".
func ParseColor(s string) (tcell.Color, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return tcell.ColorDefault, false
	}
	if strings.HasPrefix(s, "rgb(") {
		var r, g, b int32
		if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			return tcell.ColorDefault, false
		}
		return tcell.NewRGBColor(r, g, b), true
	}
	color := tcell.GetColor(s)
	if color == tcell.ColorDefault {
		return color, false
	}
	return color, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
