package render

// Surface is a width×height buffer of packed 0xRRGGBB colors with a current
// draw color and a background color. Every write is bounds-checked and
// silently dropped when it falls outside the buffer.
type Surface struct {
	Width  int
	Height int
	Buffer []uint32

	background uint32
	current    uint32
}

// NewSurface allocates a black surface drawing in white.
func NewSurface(w, h int) *Surface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Surface{
		Width:   w,
		Height:  h,
		Buffer:  make([]uint32, w*h),
		current: 0xFFFFFF,
	}
}

// Clear fills every pixel with the background color.
func (s *Surface) Clear() {
	for i := range s.Buffer {
		s.Buffer[i] = s.background
	}
}

// SetBackgroundColor sets the color used by Clear.
func (s *Surface) SetBackgroundColor(c uint32) { s.background = c }

// SetCurrentColor sets the color used by the drawing primitives.
func (s *Surface) SetCurrentColor(c uint32) { s.current = c }

// Point writes a single pixel in the current color.
func (s *Surface) Point(x, y int) {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return
	}
	s.Buffer[y*s.Width+x] = s.current
}

// At returns the pixel at (x, y), or 0 outside the surface.
func (s *Surface) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return 0
	}
	return s.Buffer[y*s.Width+x]
}

// FillRect fills a w×h rectangle whose top-left corner is (x, y).
func (s *Surface) FillRect(x, y, w, h int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.Width), min(y+h, s.Height)
	for yi := y0; yi < y1; yi++ {
		row := s.Buffer[yi*s.Width : (yi+1)*s.Width]
		for xi := x0; xi < x1; xi++ {
			row[xi] = s.current
		}
	}
}

// DrawCircle fills every pixel within Euclidean distance radius of (cx, cy).
func (s *Surface) DrawCircle(cx, cy, radius int) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				s.Point(cx+dx, cy+dy)
			}
		}
	}
}

// DrawTexture blits every texel of tex with its top-left corner at (x, y).
// Writes are opaque. The current color is left set to the last texel.
func (s *Surface) DrawTexture(x, y int, tex *Texture) {
	if tex == nil {
		return
	}
	for ty := 0; ty < tex.Height; ty++ {
		for tx := 0; tx < tex.Width; tx++ {
			s.SetCurrentColor(tex.PixelColor(tx, ty))
			s.Point(x+tx, y+ty)
		}
	}
}
