package game

import "math"

// FootprintKind selects the collision shape used for blocking and range math.
type FootprintKind int

const (
	FootprintCircle FootprintKind = iota
	FootprintRect
)

// Footprint is an entity's collision shape, centered on its position.
// Circles use Radius; rects use HalfW/HalfH (axis-aligned).
type Footprint struct {
	Kind   FootprintKind
	Radius float64
	HalfW  float64
	HalfH  float64
}

func CircleFootprint(radius float64) Footprint {
	return Footprint{Kind: FootprintCircle, Radius: radius}
}

func RectFootprint(width, height float64) Footprint {
	return Footprint{Kind: FootprintRect, HalfW: width / 2, HalfH: height / 2}
}

// SurfaceDistance returns the gap between two footprints' surfaces, 0 when
// they touch or overlap. Range checks use this, never center-to-center.
func SurfaceDistance(aPos Vec2, a Footprint, bPos Vec2, b Footprint) float64 {
	switch {
	case a.Kind == FootprintCircle && b.Kind == FootprintCircle:
		d := aPos.Dist(bPos) - a.Radius - b.Radius
		return math.Max(0, d)
	case a.Kind == FootprintRect && b.Kind == FootprintRect:
		dx := math.Max(0, math.Abs(aPos.X-bPos.X)-a.HalfW-b.HalfW)
		dy := math.Max(0, math.Abs(aPos.Y-bPos.Y)-a.HalfH-b.HalfH)
		return math.Hypot(dx, dy)
	case a.Kind == FootprintCircle:
		return circleRectDistance(aPos, a.Radius, bPos, b)
	default:
		return circleRectDistance(bPos, b.Radius, aPos, a)
	}
}

func circleRectDistance(c Vec2, radius float64, rPos Vec2, r Footprint) float64 {
	// Closest point on the rect to the circle center.
	cx := clamp(c.X, rPos.X-r.HalfW, rPos.X+r.HalfW)
	cy := clamp(c.Y, rPos.Y-r.HalfH, rPos.Y+r.HalfH)
	d := math.Hypot(c.X-cx, c.Y-cy) - radius
	return math.Max(0, d)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
