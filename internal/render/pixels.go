package render

import "image/color"

// fillSpinRGBA converts up (non-zero) and down (zero) cells into RGBA pixels
// in buf. buf must hold 4 bytes per cell.
func fillSpinRGBA(buf []byte, cells []uint8, up, down color.Color) {
	u := toRGBA(up)
	d := toRGBA(down)
	for i, c := range cells {
		px := d
		if c != 0 {
			px = u
		}
		base := i * 4
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
