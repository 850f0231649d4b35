// Package ui provides the graphical user interface for Buds Manager.
// This file contains the status icon rasterizer for the system tray.
package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/dcampos/buds-manager/common"
)

// IconMode selects the rendering path for the status icon.
type IconMode int

const (
	// IconGlyph renders the status text centered on a transparent
	// background.
	IconGlyph IconMode = iota
	// IconRing renders a percentage as a circular gauge.
	IconRing
)

const (
	iconSize   = common.TrayIconSize
	glyphScale = 48.0

	// Annulus radii for the ring gauge, in pixels from the icon center.
	ringInnerRadius = 22.0
	ringOuterRadius = 28.0
)

var (
	glyphColor     = color.RGBA{255, 255, 255, 255}
	ringBackground = color.RGBA{60, 60, 60, 255}
	ringFill       = color.RGBA{76, 175, 80, 255}
)

var (
	glyphFaceOnce sync.Once
	glyphFace     font.Face
)

// loadGlyphFace parses the embedded font once. A nil face means the
// font failed to load and glyph icons degrade to fully transparent.
func loadGlyphFace() font.Face {
	glyphFaceOnce.Do(func() {
		parsed, err := opentype.Parse(goregular.TTF)
		if err != nil {
			common.LogWarn("Icon font unavailable: %v", err)
			return
		}
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    glyphScale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			common.LogWarn("Icon font face unavailable: %v", err)
			return
		}
		glyphFace = face
	})
	return glyphFace
}

// RenderStatusIcon rasterizes the given status text into a 64x64 pixel
// buffer encoded as one byte per channel in alpha-red-green-blue
// order. The channel order is part of the tray host contract.
func RenderStatusIcon(text string, mode IconMode) []byte {
	return encodeARGB(renderStatusImage(text, mode))
}

// RenderStatusIconPNG rasterizes the status text as PNG bytes for tray
// hosts that take image files rather than raw buffers.
func RenderStatusIconPNG(text string, mode IconMode) []byte {
	var buf bytes.Buffer
	png.Encode(&buf, renderStatusImage(text, mode))
	return buf.Bytes()
}

func renderStatusImage(text string, mode IconMode) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	switch mode {
	case IconRing:
		drawRing(img, parsePercent(text))
	default:
		drawGlyph(img, text)
	}
	return img
}

// drawGlyph centers the text on the icon. The horizontal offset comes
// from the summed advance widths; the vertical offset is a fixed
// fraction of the font scale below center.
func drawGlyph(img *image.RGBA, text string) {
	face := loadGlyphFace()
	if face == nil {
		return
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(glyphColor),
		Face: face,
	}
	width := drawer.MeasureString(text)

	x := (fixed.I(iconSize) - width) / 2
	baseline := float64(iconSize)/2 + glyphScale*0.35
	drawer.Dot = fixed.Point26_6{X: x, Y: fixed.Int26_6(baseline * 64)}
	drawer.DrawString(text)
}

// drawRing paints the annulus. Every annulus pixel gets the background
// color; pixels whose clockwise angle from the top is strictly less
// than frac*2pi get the fill color instead.
func drawRing(img *image.RGBA, frac float64) {
	center := float64(iconSize) / 2
	threshold := frac * 2 * math.Pi

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			r := math.Sqrt(dx*dx + dy*dy)
			if r < ringInnerRadius || r > ringOuterRadius {
				continue
			}

			// Angle zero at the top, increasing clockwise, in [0, 2pi).
			angle := math.Atan2(dx, -dy)
			if angle < 0 {
				angle += 2 * math.Pi
			}

			if angle < threshold {
				img.SetRGBA(x, y, ringFill)
			} else {
				img.SetRGBA(x, y, ringBackground)
			}
		}
	}
}

// parsePercent converts a "P%" string to a fraction in [0, 1].
// Anything unparseable counts as zero.
func parsePercent(text string) float64 {
	trimmed := strings.TrimSuffix(strings.TrimSpace(text), "%")
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 1
	}
	return value / 100
}

// encodeARGB flattens the image into the ARGB byte layout the tray
// host expects.
func encodeARGB(img *image.RGBA) []byte {
	bounds := img.Bounds()
	out := make([]byte, 0, bounds.Dx()*bounds.Dy()*4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			out = append(out, c.A, c.R, c.G, c.B)
		}
	}
	return out
}
