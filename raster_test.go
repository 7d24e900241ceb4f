package icongen

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestSVGRasterizerRasterize(t *testing.T) {
	ctx := context.Background()
	svg, err := os.ReadFile(filepath.Join("testdata", "icon.svg"))
	if err != nil {
		t.Fatal(err)
	}
	r := NewSVGRasterizer()
	if !r.Available() {
		t.Fatal("built-in rasterizer must always be available")
	}
	for _, size := range Sizes {
		t.Run(fmt.Sprintf("%d", size), func(t *testing.T) {
			img, err := r.Rasterize(ctx, svg, size)
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
				t.Errorf("bounds = %dx%d, want %dx%d", b.Dx(), b.Dy(), size, size)
			}
			// The fixture has a white circle centered on a red square
			got := color.RGBAModel.Convert(img.At(size/2, size/2)).(color.RGBA)
			if (got != color.RGBA{0xff, 0xff, 0xff, 0xff}) {
				t.Errorf("center pixel = %v, want white", got)
			}
			got = color.RGBAModel.Convert(img.At(1, 1)).(color.RGBA)
			if (got != color.RGBA{0xdc, 0x26, 0x26, 0xff}) {
				t.Errorf("corner pixel = %v, want red", got)
			}
		})
	}
}

// Inputs without an <svg> root must be rejected, including ones the underlying
// parser would silently turn into an empty icon.
var invalidSVGs = []struct {
	name string
	in   string
}{
	{"plain text", "junk"},
	{"prose", "not an svg"},
	{"non-svg xml", "<b>hi</b>"},
	{"truncated xml", "<not-svg"},
	{"empty", ""},
}

func TestSVGRasterizerParseError(t *testing.T) {
	ctx := context.Background()
	r := NewSVGRasterizer()
	for _, tt := range invalidSVGs {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Rasterize(ctx, []byte(tt.in), 16); err == nil {
				t.Errorf("Rasterize(%q) succeeded on invalid input", tt.in)
			}
		})
	}
}

func TestValidateSVG(t *testing.T) {
	svg, err := os.ReadFile(filepath.Join("testdata", "icon.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if err := ValidateSVG(svg); err != nil {
		t.Errorf("ValidateSVG() = %v, want nil", err)
	}
	for _, tt := range invalidSVGs {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateSVG([]byte(tt.in)); err == nil {
				t.Errorf("ValidateSVG(%q) succeeded on invalid input", tt.in)
			}
		})
	}
}
