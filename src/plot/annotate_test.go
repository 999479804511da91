package plot

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestBlank(t *testing.T) {
	img := Blank(10, 5)
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 5 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.At(0, 0); got != (color.RGBA{R: 18, G: 18, B: 18, A: 255}) {
		t.Fatalf("background = %v", got)
	}
}

func TestDrawNoteStampsPixels(t *testing.T) {
	base := Blank(120, 40)
	noted := drawNote(base, "a1", 8, 20)
	if noted.Bounds() != base.Bounds() {
		t.Fatalf("bounds changed: %v", noted.Bounds())
	}
	changed := false
	for y := 0; y < 40 && !changed; y++ {
		for x := 0; x < 120; x++ {
			if noted.At(x, y) != base.At(x, y) {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Fatal("note did not change any pixel")
	}
}

func TestDrawNoteEmptyText(t *testing.T) {
	base := Blank(10, 10)
	if got := drawNote(base, "   ", 2, 5); got != base {
		t.Fatal("blank text should return the image unchanged")
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(path, Blank(6, 4)); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b != image.Rect(0, 0, 6, 4) {
		t.Fatalf("bounds = %v", b)
	}
}
