package render

import "escape-maze/internal/core"

// WallSet maps wall symbols to their textures.
type WallSet map[core.Cell]*Texture

// Color samples the texture for cell at (u, v) in TextureSize space, scaled to
// the texture's real dimensions. ok is false for Empty and unmapped symbols.
func (w WallSet) Color(cell core.Cell, u, v int) (c uint32, ok bool) {
	if cell == core.Empty {
		return 0, false
	}
	tex, ok := w[cell]
	if !ok || tex == nil {
		return 0, false
	}
	if tex.Width != core.TextureSize {
		u = u * tex.Width / core.TextureSize
	}
	if tex.Height != core.TextureSize {
		v = v * tex.Height / core.TextureSize
	}
	return tex.PixelColor(u, v), true
}
