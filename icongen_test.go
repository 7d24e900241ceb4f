package icongen

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// Scenario: no icon.svg present and no rasterization capability. The
// procedural path draws all three icons with the BlueHawk palette.
func TestGenerateProceduralWithoutCapability(t *testing.T) {
	ctx := context.Background()
	tmp := t.TempDir()
	g, err := New(
		WithOutDir(tmp),
		WithRasterizer(NewExternalRasterizer("icongen-no-such-rasterizer {{size}}")),
	)
	if err != nil {
		t.Fatal(err)
	}
	results, err := g.Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertIconSet(t, tmp, results, ModeProcedural)
	img := decodeIcon(t, tmp, 128)
	got := color.RGBAModel.Convert(img.At(64, 2)).(color.RGBA)
	if (got != color.RGBA{0x1e, 0x3a, 0x5f, 0xff}) {
		t.Errorf("background pixel = %v, want #1e3a5f", got)
	}
	got = color.RGBAModel.Convert(img.At(68, 67)).(color.RGBA)
	if (got != color.RGBA{0xf5, 0x9e, 0x0b, 0xff}) {
		t.Errorf("silhouette pixel = %v, want #f59e0b", got)
	}
}

// Scenario: a valid icon.svg and the built-in rasterizer. The pixel content
// derives from the vector file, not from the hard-coded polygons.
func TestGenerateVector(t *testing.T) {
	ctx := context.Background()
	tmp := t.TempDir()
	copySVGFixture(t, tmp)
	g, err := New(WithOutDir(tmp))
	if err != nil {
		t.Fatal(err)
	}
	results, err := g.Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertIconSet(t, tmp, results, ModeVector)
	img := decodeIcon(t, tmp, 128)
	got := color.RGBAModel.Convert(img.At(64, 64)).(color.RGBA)
	if (got != color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("center pixel = %v, want white circle from the SVG", got)
	}
	got = color.RGBAModel.Convert(img.At(4, 4)).(color.RGBA)
	if (got != color.RGBA{0xdc, 0x26, 0x26, 0xff}) {
		t.Errorf("corner pixel = %v, want red rect from the SVG", got)
	}
}

// Scenario: the capability is present but icon.svg is missing. The fallback
// still triggers.
func TestGenerateFallbackWhenSVGMissing(t *testing.T) {
	ctx := context.Background()
	tmp := t.TempDir()
	g, err := New(WithOutDir(tmp))
	if err != nil {
		t.Fatal(err)
	}
	results, err := g.Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertIconSet(t, tmp, results, ModeProcedural)
}

func TestGenerateUnparseableSVGIsFatal(t *testing.T) {
	ctx := context.Background()
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, DefaultSVGName), []byte("not an svg"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := New(WithOutDir(tmp))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Generate(ctx); err == nil {
		t.Error("Generate() succeeded, want parse error")
	}
}

func TestGenerateIdempotent(t *testing.T) {
	ctx := context.Background()
	tmp := t.TempDir()
	g, err := New(WithOutDir(tmp))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Generate(ctx); err != nil {
		t.Fatal(err)
	}
	first := map[int][]byte{}
	for _, size := range Sizes {
		first[size] = readIcon(t, tmp, size)
	}
	if _, err := g.Generate(ctx); err != nil {
		t.Fatal(err)
	}
	for _, size := range Sizes {
		if !bytes.Equal(first[size], readIcon(t, tmp, size)) {
			t.Errorf("%s: second run produced different bytes", IconName(size))
		}
	}
}

func TestNewOptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"empty out dir", WithOutDir("")},
		{"invalid theme color", WithTheme(Theme{Background: "blue", Silhouette: "#f59e0b", Eye: "#0d1b2a", Key: "#22c55e"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Error("New() succeeded, want error")
			}
		})
	}
}

func assertIconSet(t *testing.T, dir string, results []Result, mode Mode) {
	t.Helper()
	if len(results) != len(Sizes) {
		t.Fatalf("got %d results, want %d", len(results), len(Sizes))
	}
	for i, size := range Sizes {
		r := results[i]
		if r.File != IconName(size) || r.Size != size {
			t.Errorf("result %d = %+v, want %s", i, r, IconName(size))
		}
		if r.Mode != mode {
			t.Errorf("%s: mode = %s, want %s", r.File, r.Mode, mode)
		}
		if r.Checksum == 0 {
			t.Errorf("%s: checksum is zero", r.File)
		}
		img := decodeIcon(t, dir, size)
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("%s: bounds = %dx%d, want %dx%d", r.File, b.Dx(), b.Dy(), size, size)
		}
		if countOpaque(img) == 0 {
			t.Errorf("%s: image is fully transparent", r.File)
		}
	}
}

func decodeIcon(t *testing.T, dir string, size int) image.Image {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, IconName(size)))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func readIcon(t *testing.T, dir string, size int) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, IconName(size)))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func copySVGFixture(t *testing.T, dir string) {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", "icon.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, DefaultSVGName), b, 0o644); err != nil {
		t.Fatal(err)
	}
}
