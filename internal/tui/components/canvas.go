package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mehtalab/fixlab/internal/assets"
	"github.com/mehtalab/fixlab/internal/engine"
	"github.com/mehtalab/fixlab/internal/geom"
	"github.com/mehtalab/fixlab/internal/tui/styles"
)

// cellStyle indexes the small palette a playfield frame is drawn with.
type cellStyle uint8

const (
	styleBlank cellStyle = iota
	styleObject
	styleStaging
	styleWall
	styleTable
	styleGap
	stylePlatform
)

var palette = map[cellStyle]lipgloss.Style{
	styleObject:   styles.ObjectStyle,
	styleStaging:  styles.StagingZoneStyle,
	styleWall:     styles.WallZoneStyle,
	styleTable:    styles.TableZoneStyle,
	styleGap:      styles.GapZoneStyle,
	stylePlatform: styles.PlatformZoneStyle,
}

var zoneStyles = map[engine.ZoneStyle]cellStyle{
	engine.ZoneStaging:  styleStaging,
	engine.ZoneWall:     styleWall,
	engine.ZoneTable:    styleTable,
	engine.ZoneGap:      styleGap,
	engine.ZonePlatform: stylePlatform,
}

type cell struct {
	r rune
	s cellStyle
}

// Canvas is a cell grid the engine renders each frame onto: zones as shaded
// regions, objects as text-art sprites blitted over them.
type Canvas struct {
	w, h    int
	cells   [][]cell
	sprites *assets.Provider
}

// NewCanvas creates a canvas of the given playfield size.
func NewCanvas(w, h int, sprites *assets.Provider) *Canvas {
	c := &Canvas{w: w, h: h, sprites: sprites}
	c.Clear()
	return c
}

// Clear resets every cell to blank, ready for the next frame.
func (c *Canvas) Clear() {
	c.cells = make([][]cell, c.h)
	for y := range c.cells {
		row := make([]cell, c.w)
		for x := range row {
			row[x] = cell{r: ' ', s: styleBlank}
		}
		c.cells[y] = row
	}
}

// DrawZone fills a region with its zone shading.
func (c *Canvas) DrawZone(r geom.Rect, style engine.ZoneStyle) {
	s, ok := zoneStyles[style]
	if !ok {
		s = styleBlank
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if c.inBounds(x, y) {
				c.cells[y][x] = cell{r: '░', s: s}
			}
		}
	}
}

// DrawSprite blits an object's text art into the grid. Sprites are opaque:
// every cell of the rect is overwritten so objects read as solid shapes.
func (c *Canvas) DrawSprite(visualID string, r geom.Rect) {
	sprite := c.sprites.Load(visualID, r.Size())
	for dy, line := range sprite.Lines {
		y := r.Y + dy
		for dx, ch := range []rune(line) {
			x := r.X + dx
			if c.inBounds(x, y) {
				c.cells[y][x] = cell{r: ch, s: styleObject}
			}
		}
	}
}

// Rune returns the character at a cell, for tests and debugging.
func (c *Canvas) Rune(x, y int) rune {
	if !c.inBounds(x, y) {
		return 0
	}
	return c.cells[y][x].r
}

// View renders the grid as styled terminal lines. Runs of equally styled
// cells are rendered together to keep the escape-sequence volume down.
func (c *Canvas) View() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		x := 0
		for x < c.w {
			s := row[x].s
			var run strings.Builder
			for x < c.w && row[x].s == s {
				run.WriteRune(row[x].r)
				x++
			}
			if style, ok := palette[s]; ok {
				b.WriteString(style.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
		}
	}
	return b.String()
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}
