package graphics

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
)

// SaveScreenshot writes the frame as an opaque PNG.
func SaveScreenshot(frame *ebiten.Image, w io.Writer) error {
	b := frame.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	frame.ReadPixels(pix)
	return encodeOpaquePNG(pix, b.Dx(), b.Dy(), w)
}

// encodeOpaquePNG forces every pixel's alpha to 255 before encoding, so
// translucent composites do not show through in viewers.
func encodeOpaquePNG(pix []byte, width, height int, w io.Writer) error {
	if len(pix) != 4*width*height {
		return fmt.Errorf("screenshot: expected %d bytes, got %d", 4*width*height, len(pix))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode screenshot: %w", err)
	}
	return nil
}
