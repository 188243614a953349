// Package draw renders the playfield to a terminal using half-block
// characters for 2x vertical resolution.
package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Block characters used for rendering.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a drawing buffer that maps a world-coordinate rectangle
// (X right, Y up) onto terminal cells (columns right, rows down) with 2x
// vertical sub-pixel resolution.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int    // termHeight * 2
	pixels         []bool // flat: [y*termWidth + x]

	// World rectangle projected onto the canvas.
	worldMinX, worldMaxX float64
	worldMinY, worldMaxY float64
	scaleX               float64 // pixels per world unit, X
	scaleY               float64 // sub-pixels per world unit, Y

	renderBuf strings.Builder // reused between frames
	numBuf    [20]byte        // scratch for allocation-free int formatting
}

// NewCanvas creates a canvas projecting the given world rectangle onto the
// given terminal dimensions.
func NewCanvas(termWidth, termHeight int, minX, maxX, minY, maxY float64) *Canvas {
	c := &Canvas{
		worldMinX: minX,
		worldMaxX: maxX,
		worldMinY: minY,
		worldMaxY: maxY,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// world rectangle.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / (c.worldMaxX - c.worldMinX)
	c.scaleY = float64(subPixelHeight) / (c.worldMaxY - c.worldMinY)
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at sub-pixel terminal coordinates.
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// project converts world coordinates to sub-pixel coordinates. World Y
// grows upward; pixel rows grow downward.
func (c *Canvas) project(wx, wy float64) (px, py float64) {
	return (wx - c.worldMinX) * c.scaleX, (c.worldMaxY - wy) * c.scaleY
}

// setWorld sets the pixel nearest the world position.
func (c *Canvas) setWorld(wx, wy float64) {
	px, py := c.project(wx, wy)
	c.setPixel(int(math.Round(px)), int(math.Round(py)))
}

// FillRect fills an axis-aligned rectangle centered at (cx, cy) with the
// given full world extents.
func (c *Canvas) FillRect(cx, cy, w, h float64) {
	x0, y0 := c.project(cx-w*0.5, cy+h*0.5)
	x1, y1 := c.project(cx+w*0.5, cy-h*0.5)

	for py := int(math.Round(y0)); py <= int(math.Round(y1)); py++ {
		for px := int(math.Round(x0)); px <= int(math.Round(x1)); px++ {
			c.setPixel(px, py)
		}
	}
}

// FillDisc fills a circle centered at (cx, cy) with world radius r.
func (c *Canvas) FillDisc(cx, cy, r float64) {
	x0, y0 := c.project(cx-r, cy+r)
	x1, y1 := c.project(cx+r, cy-r)
	pcx, pcy := c.project(cx, cy)

	// Radius in pixel units per axis (X and Y scales differ)
	rx := r * c.scaleX
	ry := r * c.scaleY
	if rx <= 0 || ry <= 0 {
		c.setPixel(int(math.Round(pcx)), int(math.Round(pcy)))
		return
	}

	for py := int(math.Floor(y0)); py <= int(math.Ceil(y1)); py++ {
		for px := int(math.Floor(x0)); px <= int(math.Ceil(x1)); px++ {
			dx := (float64(px) - pcx) / rx
			dy := (float64(py) - pcy) / ry
			if dx*dx+dy*dy <= 1 {
				c.setPixel(px, py)
			}
		}
	}
}

// HLine draws a horizontal line across the canvas at world height wy.
func (c *Canvas) HLine(wy float64) {
	_, py := c.project(0, wy)
	row := int(math.Round(py))
	for px := 0; px < c.termWidth; px++ {
		c.setPixel(px, row)
	}
}

// Render writes the canvas to w using half-block characters. Empty cells
// are skipped; each emitted cell carries its own cursor move so the output
// is independent of what was previously on screen.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight / 2)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}

			c.renderBuf.WriteString("\033[")
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1), 10))
			c.renderBuf.WriteByte(';')
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1), 10))
			c.renderBuf.WriteByte('H')
			c.renderBuf.WriteRune(ch)
		}
	}

	io.WriteString(w, c.renderBuf.String())
}

// TerminalWidth returns the terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// WorldToCell converts world coordinates to a 1-based terminal position,
// for placing text overlays near canvas-drawn objects.
func (c *Canvas) WorldToCell(wx, wy float64) (col, row int) {
	px, py := c.project(wx, wy)
	return int(math.Round(px)) + 1, int(math.Round(py))/2 + 1
}
