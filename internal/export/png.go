package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/ballpit/internal/dynamo"
)

var (
	background = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	textColor  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// SnapshotImage rasterizes snap at one pixel per world unit with the
// counters overlaid in the top-left corner.
func SnapshotImage(snap dynamo.Snapshot) *image.RGBA {
	w := max(int(math.Ceil(snap.Width)), 1)
	h := max(int(math.Ceil(snap.Height)), 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	for _, b := range snap.Bodies {
		fillCircle(img, b.X, b.Y, b.Radius, b.Color)
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(8, 16),
	}
	d.DrawString(fmt.Sprintf("Bounces: %d  Collisions: %d", snap.Bounces, snap.Collisions))

	return img
}

// fillCircle sets every pixel whose center lies within r of (cx, cy).
func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	bounds := img.Bounds()
	x0 := max(int(math.Floor(cx-r)), bounds.Min.X)
	x1 := min(int(math.Ceil(cx+r)), bounds.Max.X-1)
	y0 := max(int(math.Floor(cy-r)), bounds.Min.Y)
	y1 := min(int(math.Ceil(cy+r)), bounds.Max.Y-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func WritePNG(w io.Writer, snap dynamo.Snapshot) error {
	return png.Encode(w, SnapshotImage(snap))
}
