// Package wheel turns Creator calendar coordinates into the angles, tick
// marks and ring radii a renderer needs to draw the calendar wheel. Angles are
// in degrees with 0 pointing right and positive values turning clockwise in
// screen space, so -90 is the 12 o'clock position.
package wheel

import "math"

// DefaultSize is used when a non-positive size is requested
const DefaultSize = 600.0

// Ring identifies one of the six concentric rings, outermost first
type Ring int

const (
	RingSun Ring = iota
	RingLeaders
	RingMonthDays
	RingWeeks
	RingDays
	RingDayParts
	ringCount
)

var ringNames = [ringCount]string{"sun", "leaders", "monthdays", "weeks", "days", "dayparts"}

// String returns the ring's short name
func (r Ring) String() string {
	if r < 0 || r >= ringCount {
		return "unknown"
	}
	return ringNames[r]
}

// ParseRing looks up a ring by its short name
func ParseRing(name string) (Ring, bool) {
	for i, n := range ringNames {
		if n == name {
			return Ring(i), true
		}
	}
	return 0, false
}

// ringFractions are outer and inner radii as fractions of the wheel size.
// The sun ring touches the edge of the bounding square.
var ringFractions = [ringCount][2]float64{
	RingSun:       {0.50, 0.44},
	RingLeaders:   {0.44, 0.39},
	RingMonthDays: {0.39, 0.34},
	RingWeeks:     {0.34, 0.28},
	RingDays:      {0.28, 0.20},
	RingDayParts:  {0.20, 0.12},
}

// RingGeometry holds the radii of one ring
type RingGeometry struct {
	Ring        string  `json:"ring"`
	OuterRadius float64 `json:"outerRadius"`
	InnerRadius float64 `json:"innerRadius"`
}

// Width returns the radial thickness of the ring
func (g RingGeometry) Width() float64 {
	return g.OuterRadius - g.InnerRadius
}

// Mid returns the radius halfway through the ring
func (g RingGeometry) Mid() float64 {
	return (g.OuterRadius + g.InnerRadius) / 2
}

// Geometry is the static layout of all six rings for one wheel size
type Geometry struct {
	Size  float64                 `json:"size"`
	Rings [ringCount]RingGeometry `json:"rings"`
}

// Point is a position in the wheel's coordinate space, origin top-left
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewGeometry lays out the rings for a wheel drawn inside a size×size square
func NewGeometry(size float64) Geometry {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		size = DefaultSize
	}
	g := Geometry{Size: size}
	for r := Ring(0); r < ringCount; r++ {
		g.Rings[r] = RingGeometry{
			Ring:        r.String(),
			OuterRadius: ringFractions[r][0] * size,
			InnerRadius: ringFractions[r][1] * size,
		}
	}
	return g
}

// Ring returns the radii of a ring
func (g Geometry) Ring(r Ring) RingGeometry {
	if r < 0 || r >= ringCount {
		return RingGeometry{}
	}
	return g.Rings[r]
}

// Center returns the center of the wheel
func (g Geometry) Center() Point {
	return Point{X: g.Size / 2, Y: g.Size / 2}
}

// PointAt returns the point at the given angle and radius from the center
func (g Geometry) PointAt(angleDegrees, radius float64) Point {
	c := g.Center()
	rad := angleDegrees * math.Pi / 180
	return Point{
		X: c.X + radius*math.Cos(rad),
		Y: c.Y + radius*math.Sin(rad),
	}
}

// TickLine returns the end points of a radial tick spanning fraction of a
// ring's width, measured inward from its outer edge.
func (g Geometry) TickLine(r Ring, angleDegrees, fraction float64) (outer, inner Point) {
	rg := g.Ring(r)
	fraction = math.Max(0, math.Min(1, fraction))
	outer = g.PointAt(angleDegrees, rg.OuterRadius)
	inner = g.PointAt(angleDegrees, rg.OuterRadius-rg.Width()*fraction)
	return outer, inner
}

// SegmentSpan returns the start and end angles of segment index out of count
// equal segments, with segment 0 starting at 12 o'clock.
func SegmentSpan(index, count int) (start, end float64) {
	if count <= 0 {
		return -90, 270
	}
	step := 360 / float64(count)
	start = float64(index)*step - 90
	return start, start + step
}

// NormalizeAngle wraps an angle to the range [0, 360)
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}
