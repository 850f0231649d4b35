package ui

import (
	"bytes"
	"image/png"
	"testing"
)

func argbAt(buf []byte, x, y int) [4]byte {
	offset := (y*iconSize + x) * 4
	return [4]byte{buf[offset], buf[offset+1], buf[offset+2], buf[offset+3]}
}

func isFill(px [4]byte) bool {
	return px == [4]byte{ringFill.A, ringFill.R, ringFill.G, ringFill.B}
}

func isBackground(px [4]byte) bool {
	return px == [4]byte{ringBackground.A, ringBackground.R, ringBackground.G, ringBackground.B}
}

func countRingPixels(buf []byte) (fill, background int) {
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			px := argbAt(buf, x, y)
			switch {
			case isFill(px):
				fill++
			case isBackground(px):
				background++
			}
		}
	}
	return fill, background
}

func TestRenderStatusIcon_BufferShape(t *testing.T) {
	buf := RenderStatusIcon("50%", IconRing)
	if len(buf) != iconSize*iconSize*4 {
		t.Fatalf("buffer length = %d, want %d", len(buf), iconSize*iconSize*4)
	}
}

func TestRing_EmptyAndFullGauge(t *testing.T) {
	fill, background := countRingPixels(RenderStatusIcon("0%", IconRing))
	if fill != 0 {
		t.Errorf("0%% gauge painted %d fill pixels, want none", fill)
	}
	if background == 0 {
		t.Error("0% gauge should still paint the annulus background")
	}
	annulus := background

	fill, background = countRingPixels(RenderStatusIcon("100%", IconRing))
	if background != 0 {
		t.Errorf("100%% gauge left %d background pixels, want none", background)
	}
	if fill != annulus {
		t.Errorf("100%% gauge painted %d pixels, want the whole annulus (%d)", fill, annulus)
	}
}

func TestRing_QuarterGauge(t *testing.T) {
	fill, background := countRingPixels(RenderStatusIcon("25%", IconRing))
	total := fill + background
	ratio := float64(fill) / float64(total)
	if ratio < 0.2 || ratio > 0.3 {
		t.Errorf("25%% gauge filled %.2f of the annulus, want about 0.25", ratio)
	}
}

func TestRing_ClockwiseFromTop(t *testing.T) {
	// The pixel at the middle of the right side sits a quarter turn
	// clockwise from the top.
	buf := RenderStatusIcon("50%", IconRing)
	if !isFill(argbAt(buf, 55, 31)) {
		t.Error("50% gauge should have filled the right side (quarter turn)")
	}

	buf = RenderStatusIcon("20%", IconRing)
	if !isBackground(argbAt(buf, 55, 31)) {
		t.Error("20% gauge should not reach the right side")
	}

	// Just clockwise of the top is the very start of the sweep.
	buf = RenderStatusIcon("5%", IconRing)
	if !isFill(argbAt(buf, 33, 7)) {
		t.Error("the sweep should start immediately clockwise of the top")
	}
}

func TestRing_UnparseablePercentage(t *testing.T) {
	for _, text := range []string{"?", "", "abc", "%"} {
		fill, _ := countRingPixels(RenderStatusIcon(text, IconRing))
		if fill != 0 {
			t.Errorf("gauge for %q painted %d fill pixels, want none", text, fill)
		}
	}
}

func TestGlyph_HorizontallyCentered(t *testing.T) {
	for _, text := range []string{"50", "7", "100", "D", "?"} {
		buf := RenderStatusIcon(text, IconGlyph)

		minX, maxX := iconSize, -1
		for y := 0; y < iconSize; y++ {
			for x := 0; x < iconSize; x++ {
				if argbAt(buf, x, y)[0] != 0 {
					if x < minX {
						minX = x
					}
					if x > maxX {
						maxX = x
					}
				}
			}
		}
		if maxX < 0 {
			t.Fatalf("glyph %q rendered no pixels", text)
		}

		// Ink extent should be symmetric about the vertical midline,
		// within rounding.
		left := minX
		right := iconSize - 1 - maxX
		if diff := left - right; diff < -3 || diff > 3 {
			t.Errorf("glyph %q off center: %d px left margin vs %d right", text, left, right)
		}
	}
}

func TestRenderStatusIconPNG(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(RenderStatusIconPNG("50%", IconRing)))
	if err != nil {
		t.Fatal(err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != iconSize || bounds.Dy() != iconSize {
		t.Errorf("PNG size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), iconSize, iconSize)
	}
}
