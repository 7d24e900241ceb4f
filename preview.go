package icongen

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"

	"github.com/k1LoW/errors"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	previewCell    = 128
	previewPadding = 16
	previewLabelH  = 24
	checkerStep    = 8
)

// PreviewSheet loads the generated icon files and lays them out on a
// checkerboard sheet that exposes transparency. Each icon is upscaled to a
// common cell with nearest-neighbor so individual pixels stay inspectable,
// and labeled with its native size.
func (g *Generator) PreviewSheet() (_ image.Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	width := previewPadding + len(Sizes)*(previewCell+previewPadding)
	height := previewPadding + previewCell + previewLabelH + previewPadding
	sheet := image.NewRGBA(image.Rect(0, 0, width, height))
	drawCheckerboard(sheet)

	face := basicfont.Face7x13
	for idx, size := range Sizes {
		i, err := NewImageFromFile(filepath.Join(g.outDir, IconName(size)))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s (run icongen first): %w", IconName(size), err)
		}
		img, err := i.Image()
		if err != nil {
			return nil, err
		}
		x := previewPadding + idx*(previewCell+previewPadding)
		y := previewPadding
		cell := image.Rect(x, y, x+previewCell, y+previewCell)
		xdraw.NearestNeighbor.Scale(sheet, cell, img, img.Bounds(), xdraw.Over, nil)

		label := fmt.Sprintf("%dpx", size)
		d := &font.Drawer{
			Dst:  sheet,
			Src:  image.NewUniform(color.RGBA{0x33, 0x33, 0x33, 0xff}),
			Face: face,
		}
		lw := d.MeasureString(label).Ceil()
		d.Dot = fixed.P(x+(previewCell-lw)/2, y+previewCell+face.Metrics().Ascent.Ceil()+4)
		d.DrawString(label)
	}
	return sheet, nil
}

func drawCheckerboard(dst *image.RGBA) {
	light := image.NewUniform(color.RGBA{0xff, 0xff, 0xff, 0xff})
	dark := image.NewUniform(color.RGBA{0xe5, 0xe5, 0xe5, 0xff})
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += checkerStep {
		for x := b.Min.X; x < b.Max.X; x += checkerStep {
			src := light
			if (x/checkerStep+y/checkerStep)%2 == 1 {
				src = dark
			}
			cell := image.Rect(x, y, x+checkerStep, y+checkerStep).Intersect(b)
			draw.Draw(dst, cell, src, image.Point{}, draw.Src)
		}
	}
}
