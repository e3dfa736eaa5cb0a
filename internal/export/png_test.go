package export

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/san-kum/ballpit/internal/dynamo"
)

func TestSnapshotImage(t *testing.T) {
	w := dynamo.NewWorld(200, 100)
	red := color.RGBA{R: 255, A: 255}
	w.Particles = []dynamo.Particle{
		{Pos: dynamo.Vec2{X: 150, Y: 60}, Radius: 10, Color: red},
	}

	img := SnapshotImage(w.Snapshot())

	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("image size %v, want 200x100", b)
	}
	if got := img.RGBAAt(150, 60); got != red {
		t.Errorf("center pixel = %v, want %v", got, red)
	}
	if got := img.RGBAAt(150, 75); got != background {
		t.Errorf("pixel outside the circle = %v, want background", got)
	}
}

func TestWritePNG(t *testing.T) {
	w := dynamo.NewWorld(64, 48)
	w.Particles = []dynamo.Particle{
		{Pos: dynamo.Vec2{X: 2, Y: 2}, Radius: 5, Color: color.RGBA{G: 255, A: 255}},
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, w.Snapshot()); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("decoded size %v", b)
	}
}
