// Package ui lays out the lander's text screens (HUD, menus, results and
// a coarse rendition of the scene) into a CP437 cell grid that both the
// graphical and the terminal front-ends can draw.
package ui

// Grid dimensions: an 800x600 window split into 10x20 pixel cells.
const (
	Cols  = 80
	Rows  = 30
	CellW = 10
	CellH = 20
)

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // CP437 code (0-255)
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15)
}

// Rune returns the Unicode rune drawn for the cell's glyph.
func (c Cell) Rune() rune { return CP437ToUnicode[c.Glyph] }

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}
	}
}

// WriteString writes a string starting at (x, y). Each rune occupies one cell.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	offset := 0
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		b.Set(x+offset, y, byte(ch), fg, bg)
		offset++
	}
}

// WriteCentered writes s horizontally centred on row y.
func (b *CellBuffer) WriteCentered(y int, s string, fg, bg uint8) {
	n := len([]rune(s))
	b.WriteString((b.Cols-n)/2, y, s, fg, bg)
}

// Text reads row y back as a string, for tests and logs.
func (b *CellBuffer) Text(y int) string {
	if y < 0 || y >= b.Rows {
		return ""
	}
	out := make([]rune, b.Cols)
	for x := range b.Cols {
		out[x] = b.Cells[y*b.Cols+x].Rune()
	}
	return string(out)
}

// CP437ToUnicode maps code page 437 to the runes it displays as.
var CP437ToUnicode [256]rune

const (
	cp437Low  = " ☺☻♥♦♣♠•◘○◙♂♀♪♫☼►◄↕‼¶§▬↨↑↓→←∟↔▲▼"
	cp437High = "ÇüéâäàåçêëèïîìÄÅÉæÆôöòûùÿÖÜ¢£¥₧ƒáíóúñÑªº¿⌐¬½¼¡«»" +
		"░▒▓│┤╡╢╖╕╣║╗╝╜╛┐└┴┬├─┼╞╟╚╔╩╦╠═╬╧╨╤╥╙╘╒╓╫╪┘┌█▄▌▐▀" +
		"αßΓπΣσµτΦΘΩδ∞φε∩≡±≥≤⌠⌡÷≈°∙·√ⁿ²■ "
)

func init() {
	for i, r := range []rune(cp437Low) {
		CP437ToUnicode[i] = r
	}
	for i := 32; i < 127; i++ {
		CP437ToUnicode[i] = rune(i)
	}
	CP437ToUnicode[127] = '⌂'
	for i, r := range []rune(cp437High) {
		CP437ToUnicode[128+i] = r
	}
}
