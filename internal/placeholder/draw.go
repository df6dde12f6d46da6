package placeholder

import (
	"math/rand/v2"

	"github.com/fogleman/gg"
)

// Source is the random source used for decoration placement. *rand.Rand
// satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the process-wide generator, which is safe for
// concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// between returns a uniform integer in [lo, hi]. A degenerate range yields lo.
func between(rng Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func paintBackground(dc *gg.Context, g Gradient) {
	w, h := float64(dc.Width()), float64(dc.Height())

	var grad gg.Gradient
	if g.Direction == Horizontal {
		grad = gg.NewLinearGradient(0, 0, w, 0)
	} else {
		grad = gg.NewLinearGradient(0, 0, 0, h)
	}
	grad.AddColorStop(0, g.From)
	grad.AddColorStop(1, g.To)

	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
}

// drawTrees scatters dark green triangles rooted on the bottom edge.
func drawTrees(dc *gg.Context, rng Source) {
	w, h := dc.Width(), dc.Height()
	dc.SetRGB255(0, 80, 0)
	for range 10 {
		x1 := float64(between(rng, 0, w))
		y1 := float64(between(rng, h/2, h))
		x2 := x1 + float64(between(rng, 20, 50))

		dc.MoveTo(x1, y1)
		dc.LineTo(x2, float64(h))
		dc.LineTo(x1-20, float64(h))
		dc.ClosePath()
		dc.Fill()
	}
}

// drawBuildings places grey blocks with a grid of lit windows.
func drawBuildings(dc *gg.Context, rng Source) {
	w, h := dc.Width(), dc.Height()
	dc.SetLineWidth(1)
	for range 5 {
		x := between(rng, 0, w-100)
		y := between(rng, 0, h/2)
		bw := between(rng, 80, 150)
		bh := between(rng, 100, h-y)

		dc.DrawRectangle(float64(x), float64(y), float64(bw), float64(bh))
		dc.SetRGB255(100, 100, 100)
		dc.FillPreserve()
		dc.SetRGB255(200, 200, 200)
		dc.Stroke()

		dc.SetRGB255(220, 220, 150)
		for i := range 3 {
			for j := range 4 {
				wx := x + 20 + i*25
				wy := y + 20 + j*30
				dc.DrawRectangle(float64(wx), float64(wy), 15, 20)
			}
		}
		dc.Fill()
	}
}

// drawFigure draws a head-and-shoulders silhouette centred horizontally.
func drawFigure(dc *gg.Context, _ Source) {
	w, h := float64(dc.Width()), float64(dc.Height())
	cx := float64(int(w) / 2)
	headY := float64(int(h) / 3)

	dc.SetRGB255(70, 70, 70)
	dc.DrawCircle(cx, headY, 30)
	dc.Fill()

	dc.MoveTo(cx, headY+30)
	dc.LineTo(cx-50, h-50)
	dc.LineTo(cx+50, h-50)
	dc.ClosePath()
	dc.Fill()
}

// drawGround stacks grey blocks of random width from the lower half to the
// bottom edge.
func drawGround(dc *gg.Context, rng Source) {
	w, h := dc.Width(), dc.Height()
	for range 20 {
		x1 := between(rng, 0, w)
		y1 := between(rng, h/2, h)
		bw := between(rng, 10, 100)
		shade := between(rng, 50, 150)

		dc.SetRGB255(shade, shade, shade)
		dc.DrawRectangle(float64(x1), float64(y1), float64(bw), float64(h-y1))
		dc.Fill()
	}
}

// drawOrbs scatters grey ellipses anywhere in the frame.
func drawOrbs(dc *gg.Context, rng Source) {
	w, h := dc.Width(), dc.Height()
	for range 10 {
		x1 := between(rng, 0, w)
		y1 := between(rng, 0, h)
		ew := between(rng, 50, 200)
		eh := between(rng, 50, 200)
		shade := between(rng, 50, 200)

		dc.SetRGB255(shade, shade, shade)
		dc.DrawEllipse(float64(x1)+float64(ew)/2, float64(y1)+float64(eh)/2, float64(ew)/2, float64(eh)/2)
		dc.Fill()
	}
}
