package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// WritePPM encodes the image as plain-text PPM (P3): a header followed by
// one "r g b" triple per pixel in raster order, top-to-bottom and
// left-to-right.
func WritePPM(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	buf := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, err := fmt.Fprintf(buf, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}

	return buf.Flush()
}
