package icongen

import (
	"image"

	"github.com/fogleman/gg"
)

// drawLogo draws the hawk-and-key logo at the given size. Z-order is fixed:
// background, silhouette, eye, key.
func drawLogo(size int, theme Theme) image.Image {
	l := layoutFor(size)
	dc := gg.NewContext(size, size)

	// Rounded-rectangle background
	dc.SetHexColor(theme.Background)
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), float64(l.CornerRadius))
	dc.Fill()

	// Hawk silhouette
	dc.SetHexColor(theme.Silhouette)
	fillPolygon(dc, l.Head)
	fillPolygon(dc, l.Body)

	// Eye
	dc.SetHexColor(theme.Eye)
	dc.DrawCircle(float64(l.EyeX), float64(l.EyeY), float64(l.EyeRadius))
	dc.Fill()

	// Key ring
	dc.SetHexColor(theme.Key)
	dc.SetLineWidth(float64(l.KeyWidth))
	dc.DrawCircle(float64(l.KeyX), float64(l.KeyY), float64(l.KeyRadius))
	dc.Stroke()

	// Key shaft
	dc.DrawRectangle(float64(l.ShaftStart), float64(l.KeyY-l.KeyWidth), float64(l.ShaftEnd-l.ShaftStart), float64(2*l.KeyWidth))
	dc.Fill()

	// Key teeth hang above the shaft end
	dc.DrawRectangle(float64(l.ShaftEnd-3*l.ToothWidth), float64(l.KeyY-l.KeyWidth-l.ToothHeight), float64(l.ToothWidth), float64(l.ToothHeight))
	dc.DrawRectangle(float64(l.ShaftEnd-l.ToothWidth), float64(l.KeyY-l.KeyWidth-l.ToothHeight), float64(l.ToothWidth), float64(l.ToothHeight))
	dc.Fill()

	return dc.Image()
}

func fillPolygon(dc *gg.Context, points []image.Point) {
	if len(points) == 0 {
		return
	}
	dc.MoveTo(float64(points[0].X), float64(points[0].Y))
	for _, p := range points[1:] {
		dc.LineTo(float64(p.X), float64(p.Y))
	}
	dc.ClosePath()
	dc.Fill()
}
