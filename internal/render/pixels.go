package render

import "image"

// fillPackedRGBA converts packed 0xRRGGBB values into opaque RGBA bytes in buf.
func fillPackedRGBA(buf []byte, px []uint32) {
	for i, c := range px {
		base := i * 4
		buf[base+0] = uint8(c >> 16)
		buf[base+1] = uint8(c >> 8)
		buf[base+2] = uint8(c)
		buf[base+3] = 0xFF
	}
}

// FillRGBA writes the surface into buf as RGBA bytes. buf must hold at least
// 4*Width*Height bytes; shorter buffers are left untouched.
func (s *Surface) FillRGBA(buf []byte) {
	if len(buf) < 4*len(s.Buffer) {
		return
	}
	fillPackedRGBA(buf, s.Buffer)
}

// Image copies the surface into a new RGBA image.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	s.FillRGBA(img.Pix)
	return img
}
