package icongen

import "image"

// All logo shapes are defined in a normalized 128-unit coordinate space and
// scaled by size/128 at draw time. Scaled coordinates are truncated to
// integers, matching the extension's original asset pipeline, so the
// generated pixels stay stable across runs.
const baseSize = 128

var (
	headPoints = []image.Point{{85, 30}, {100, 45}, {90, 55}, {75, 50}, {65, 40}, {70, 28}}
	bodyPoints = []image.Point{{65, 40}, {50, 55}, {45, 75}, {55, 90}, {80, 85}, {90, 70}, {85, 55}, {75, 50}}
)

// layout holds the pixel-space geometry of the hawk-and-key logo for one
// icon size. Dimensions that would truncate to zero at 16px are clamped so
// the smallest icon stays legible.
type layout struct {
	Size         int
	CornerRadius int
	Head         []image.Point
	Body         []image.Point
	EyeX         int
	EyeY         int
	EyeRadius    int
	KeyX         int
	KeyY         int
	KeyRadius    int
	KeyWidth     int
	ShaftStart   int
	ShaftEnd     int
	ToothWidth   int
	ToothHeight  int
}

func layoutFor(size int) layout {
	s := float64(size) / baseSize
	l := layout{
		Size:         size,
		CornerRadius: int(float64(size) * 0.19),
		Head:         scalePoints(headPoints, s),
		Body:         scalePoints(bodyPoints, s),
		EyeX:         int(82 * s),
		EyeY:         int(38 * s),
		EyeRadius:    max(2, int(4*s)),
		KeyX:         int(25 * s),
		KeyY:         int(95 * s),
		KeyRadius:    max(3, int(8*s)),
		KeyWidth:     max(2, int(3*s)),
		ToothWidth:   max(2, int(3*s)),
		ToothHeight:  max(3, int(6*s)),
	}
	l.ShaftStart = l.KeyX + l.KeyRadius
	l.ShaftEnd = int(65 * s)
	return l
}

func scalePoints(points []image.Point, s float64) []image.Point {
	scaled := make([]image.Point, len(points))
	for i, p := range points {
		scaled[i] = image.Point{X: int(float64(p.X) * s), Y: int(float64(p.Y) * s)}
	}
	return scaled
}
