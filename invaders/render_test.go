package invaders

import (
	"image"
	"image/color"
	"testing"
)

func TestColorMaskRegions(t *testing.T) {
	mask := buildColorMask()
	at := func(col, row int) color.RGBA { return mask[row*displayWidth+col] }

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}

	cases := []struct {
		name     string
		col, row int
		want     color.RGBA
	}{
		{"left strip top white", 0, 0, white},
		{"left strip middle green", 0, 50, green},
		{"left strip bottom white", 0, 200, white},
		{"green band", 40, 100, green},
		{"red band", 100, 100, red},
		{"right green band", 200, 100, green},
		{"rightmost white", 250, 100, white},
	}

	for _, tc := range cases {
		if got := at(tc.col, tc.row); got != tc.want {
			t.Errorf("%s: mask(%d,%d) = %+v, want %+v", tc.name, tc.col, tc.row, got, tc.want)
		}
	}
}

func TestRenderDisplaySetsLSBFirstPixel(t *testing.T) {
	ram := make([]uint8, 0x2000)
	ram[vramOffset] = 0x01 // bit 0 set: first pixel of the first row lit

	mask := buildColorMask()
	fb := image.NewRGBA(image.Rect(0, 0, displayWidth, displayHeight))
	renderDisplay(ram, mask, fb)

	if fb.RGBAAt(0, 0) == (color.RGBA{A: 255}) {
		t.Error("pixel (0,0) should be lit (bit 0 of first VRAM byte is 1)")
	}
	if fb.RGBAAt(1, 0) != (color.RGBA{A: 255}) {
		t.Error("pixel (1,0) should be unlit (bit 1 of first VRAM byte is 0)")
	}
}
