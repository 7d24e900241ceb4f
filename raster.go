package icongen

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"image"

	"github.com/k1LoW/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterizer converts an SVG document into a square pixel buffer.
type Rasterizer interface {
	// Available reports whether the rasterization capability can be used in
	// this environment.
	Available() bool
	// Rasterize renders the SVG document onto a transparent size x size canvas.
	Rasterize(ctx context.Context, svg []byte, size int) (image.Image, error)
}

// SVGRasterizer is the built-in rasterizer (oksvg + rasterx). It is compiled
// in, so it is always available.
type SVGRasterizer struct{}

func NewSVGRasterizer() *SVGRasterizer {
	return &SVGRasterizer{}
}

func (r *SVGRasterizer) Available() bool {
	return true
}

func (r *SVGRasterizer) Rasterize(ctx context.Context, svg []byte, size int) (_ image.Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := checkSVGRoot(svg); err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}
	if icon.ViewBox.W == 0 || icon.ViewBox.H == 0 {
		// No usable viewBox, treat the document as already square
		icon.ViewBox.W = float64(size)
		icon.ViewBox.H = float64(size)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// ValidateSVG reports whether the bytes parse as an SVG document.
func ValidateSVG(svg []byte) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := checkSVGRoot(svg); err != nil {
		return err
	}
	if _, err := oksvg.ReadIconStream(bytes.NewReader(svg)); err != nil {
		return fmt.Errorf("failed to parse SVG: %w", err)
	}
	return nil
}

// checkSVGRoot requires an <svg> root element. oksvg is lenient and yields an
// empty icon for arbitrary input, so broken sources must be rejected before
// rendering.
func checkSVGRoot(svg []byte) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	dec := xml.NewDecoder(bytes.NewReader(svg))
	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to parse SVG: %w", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			if se.Name.Local != "svg" {
				return fmt.Errorf("not an SVG document: root element is <%s>", se.Name.Local)
			}
			return nil
		}
	}
}
