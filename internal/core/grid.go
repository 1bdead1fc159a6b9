package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyGrid is returned when a maze source contains no rows.
	ErrEmptyGrid = errors.New("maze has no rows")
	// ErrRaggedGrid is returned when maze rows differ in length.
	ErrRaggedGrid = errors.New("maze rows have unequal length")
)

// Grid stores a rectangular maze of cell symbols in row-major order.
type Grid struct {
	W, H int
	data []Cell

	// eol is the line terminator of the source; empty means "\n".
	eol string
	// openEnd is set when the source had no terminator after its last row.
	openEnd bool
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{W: w, H: h, data: make([]Cell, w*h)}
	for i := range g.data {
		g.data[i] = Empty
	}
	return g
}

// GridFromRows builds a grid from equal-length string rows.
func GridFromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	w := utf8.RuneCountInString(rows[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{W: w, H: len(rows), data: make([]Cell, 0, w*len(rows))}
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRaggedGrid, i+1, n, w)
		}
		for _, r := range row {
			g.data = append(g.data, Cell(r))
		}
	}
	return g, nil
}

// ReadGrid parses newline-delimited rows. LF and CRLF endings are accepted,
// with or without a terminator after the last row; WriteTo reproduces the
// form that was read.
func ReadGrid(r io.Reader) (*Grid, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}
	src := string(raw)
	eol := "\n"
	if i := strings.IndexByte(src, '\n'); i > 0 && src[i-1] == '\r' {
		eol = "\r\n"
	}
	openEnd := !strings.HasSuffix(src, "\n")
	src = strings.TrimSuffix(src, "\n")

	rows := strings.Split(src, "\n")
	for i, row := range rows {
		rows[i] = strings.TrimSuffix(row, "\r")
	}
	g, err := GridFromRows(rows)
	if err != nil {
		return nil, err
	}
	g.eol, g.openEnd = eol, openEnd
	return g, nil
}

// LoadGrid reads a maze file from disk.
func LoadGrid(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maze %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("load maze %s: %w", path, err)
	}
	return g, nil
}

// Index returns the linear slice index for column x and row y.
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether column x and row y address a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the cell at column x, row y, or Empty outside the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.data[g.Index(x, y)]
}

// Set overwrites a cell. Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[g.Index(x, y)] = c
}

// Row returns row y as a string.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.H {
		return ""
	}
	var b strings.Builder
	for _, c := range g.data[y*g.W : (y+1)*g.W] {
		b.WriteRune(rune(c))
	}
	return b.String()
}

// WriteTo serializes the grid row by row using the line terminator it was
// read with. Grids built in memory use "\n" after every row.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	eol := g.eol
	if eol == "" {
		eol = "\n"
	}
	var total int64
	for y := 0; y < g.H; y++ {
		line := g.Row(y)
		if y < g.H-1 || !g.openEnd {
			line += eol
		}
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders the grid in its file form.
func (g *Grid) String() string {
	var b strings.Builder
	g.WriteTo(&b)
	return b.String()
}

// Find returns the last cell matching c in row-major order.
func (g *Grid) Find(c Cell) (row, col int, ok bool) {
	for i := len(g.data) - 1; i >= 0; i-- {
		if g.data[i] == c {
			return i / g.W, i % g.W, true
		}
	}
	return 0, 0, false
}
