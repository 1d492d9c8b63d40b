package invaders

import (
	"image"
	"image/color"
)

const (
	displayWidth  = 256
	displayHeight = 224
	vramOffset    = 0x400 // video RAM starts at ram[0x400]
)

// DisplayWidth and DisplayHeight are the framebuffer's fixed dimensions,
// exported for frontends sizing a window or texture around it.
const (
	DisplayWidth  = displayWidth
	DisplayHeight = displayHeight
)

// buildColorMask precomputes the CRT's physical color-overlay film as a
// per-pixel color to AND each monochrome bit against. The cabinet's tube is
// black-and-white; the colored strip is glued to the glass.
func buildColorMask() []color.RGBA {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}

	mask := make([]color.RGBA, displayWidth*displayHeight)
	i := 0
	for row := 0; row < displayHeight; row++ {
		for col := 0; col < displayWidth; col++ {
			var c color.RGBA
			switch {
			case col < 16:
				switch {
				case row < 16:
					c = white
				case row < 118:
					c = green
				default:
					c = white
				}
			case col < 72:
				c = green
			case col < 192:
				c = red
			case col < 224:
				c = green
			default:
				c = white
			}
			mask[i] = c
			i++
		}
	}
	return mask
}

// renderDisplay decodes the 7KB monochrome video RAM at ram[0x400] into fb,
// a pre-allocated 256x224 RGBA framebuffer. Bits are packed LSB-first within
// each byte, with bytes advancing across a row before moving to the next;
// the physical 90-degree cabinet rotation is the display surface's problem,
// not this decoder's.
func renderDisplay(ram []uint8, colorMask []color.RGBA, fb *image.RGBA) {
	vram := ram[vramOffset:]
	maskIdx := 0
	byteIdx := 0

	for row := 0; row < displayHeight; row++ {
		for col := 0; col < displayWidth/8; col++ {
			b := vram[byteIdx]
			byteIdx++

			for bit := 0; bit < 8; bit++ {
				c := colorMask[maskIdx]
				if b&0x01 == 0 {
					c = color.RGBA{A: 255}
				}
				maskIdx++
				b >>= 1

				x := col*8 + bit
				fb.SetRGBA(x, row, c)
			}
		}
	}
}
