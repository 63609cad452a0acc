// Package raster renders scene frames in software.
//
// Output matches what the GL renderer presents: world Y points up, so rows are
// flipped on the way to the image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"dasa.cc/interact/scene"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/f32"
)

// Options control extras drawn over the frame.
type Options struct {
	// Caption is drawn along the bottom left when not empty.
	Caption  string
	FontSize float64
}

// RGBA converts a 0..1 color to color.RGBA, rounding each channel.
func RGBA(c f32.Vec3) color.RGBA {
	u := func(x float32) uint8 {
		switch {
		case x <= 0:
			return 0
		case x >= 1:
			return 255
		}
		return uint8(x*255 + 0.5)
	}
	return color.RGBA{u(c[0]), u(c[1]), u(c[2]), 255}
}

// Draw renders frame at its viewport size.
func Draw(frame scene.Frame, opts Options) (image.Image, error) {
	w, h := frame.Viewport.Width, frame.Viewport.Height
	dc := gg.NewContext(w, h)
	dc.SetColor(RGBA(frame.Background))
	dc.Clear()

	// world to image rows
	dc.InvertY()

	for _, q := range frame.Quads {
		for i, v := range q.Verts {
			if i == 0 {
				dc.MoveTo(float64(v[0]), float64(v[1]))
			} else {
				dc.LineTo(float64(v[0]), float64(v[1]))
			}
		}
		dc.ClosePath()
		dc.SetColor(RGBA(q.Color))
		dc.Fill()
	}

	if opts.Caption != "" {
		dc.Identity()
		if err := caption(dc, opts); err != nil {
			return nil, err
		}
	}
	return dc.Image(), nil
}

func caption(dc *gg.Context, opts Options) error {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	size := opts.FontSize
	if size <= 0 {
		size = 12
	}
	dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}))
	dc.SetColor(color.Black)
	dc.DrawString(opts.Caption, 4, float64(dc.Height())-4)
	return nil
}

// Scale resizes img by factor with bilinear interpolation; factor 1 or less
// than or equal to zero returns img.
func Scale(img image.Image, factor float64) image.Image {
	if factor <= 0 || factor == 1 {
		return img
	}
	b := img.Bounds()
	w := uint(float64(b.Dx())*factor + 0.5)
	if w == 0 {
		w = 1
	}
	return resize.Resize(w, 0, img, resize.Bilinear)
}

// Save writes img as a png file at path.
func Save(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Encode writes img as png.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
