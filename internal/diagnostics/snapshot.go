package diagnostics

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"gbcore/internal/ppu"
)

// frameToImage converts a completed PPU framebuffer into a standard
// library image, the same pixel layout the teacher's display package
// blits from (pkg/display.Display.Update).
func frameToImage(frame []ppu.Color) (*image.RGBA, error) {
	if len(frame) != ppu.ScreenWidth*ppu.ScreenHeight {
		return nil, fmt.Errorf("diagnostics: framebuffer has %d pixels, want %d", len(frame), ppu.ScreenWidth*ppu.ScreenHeight)
	}
	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			c := frame[y*ppu.ScreenWidth+x]
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	return img, nil
}

// SnapshotPNG encodes a completed framebuffer as a PNG, scaled up by
// scale (1 leaves it at native 160x144). Scaling uses x/image/draw's
// nearest-neighbor resampler so pixel-art edges stay crisp, the same
// way the teacher upsamples the framebuffer for its own window
// (pkg/display.Display, PixelScale).
func SnapshotPNG(w io.Writer, frame []ppu.Color, scale int) error {
	if scale < 1 {
		scale = 1
	}
	img, err := frameToImage(frame)
	if err != nil {
		return err
	}
	if scale == 1 {
		return png.Encode(w, img)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth*scale, ppu.ScreenHeight*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return png.Encode(w, scaled)
}
