package trplot

import (
	"github.com/celskeggs/trajanim/ctrl/traj"
	"gonum.org/v1/gonum/mat"
	"math"
)

// Bounds is the axis-aligned box shown by a Scene.
type Bounds struct {
	Min [3]float64
	Max [3]float64
}

var DefaultBounds = Bounds{
	Min: [3]float64{-10, -10, -0.5},
	Max: [3]float64{10, 10, 0.5},
}

// Normalize maps a point into the unit cube [-1,1]^3, one axis at a time.
func (b Bounds) Normalize(p traj.Point) [3]float64 {
	v := [3]float64{p.X, p.Y, p.Z}
	for i := range v {
		span := b.Max[i] - b.Min[i]
		if span == 0 {
			v[i] = 0
		} else {
			v[i] = 2*(v[i]-b.Min[i])/span - 1
		}
	}
	return v
}

// Corner returns the box corner selected by the low three bits of bits; a set bit picks Max.
func (b Bounds) Corner(bits int) traj.Point {
	var v [3]float64
	for i := range v {
		if bits&(1<<i) != 0 {
			v[i] = b.Max[i]
		} else {
			v[i] = b.Min[i]
		}
	}
	return traj.Point{X: v[0], Y: v[1], Z: v[2]}
}

// View is an orthographic camera direction, in degrees.
type View struct {
	Azimuth   float64
	Elevation float64
}

var DefaultView = View{Azimuth: -60, Elevation: 30}

// Clamped limits the elevation to straight up or straight down.
func (v View) Clamped() View {
	v.Elevation = math.Max(-90, math.Min(90, v.Elevation))
	return v
}

// Matrix has the screen-right, screen-up and eye vectors as its rows.
func (v View) Matrix() *mat.Dense {
	az := v.Azimuth * math.Pi / 180
	el := v.Elevation * math.Pi / 180
	sa, ca := math.Sin(az), math.Cos(az)
	se, ce := math.Sin(el), math.Cos(el)
	return mat.NewDense(3, 3, []float64{
		-sa, ca, 0,
		-se * ca, -se * sa, ce,
		ce * ca, ce * sa, se,
	})
}

type Projector struct {
	bounds Bounds
	view   *mat.Dense
}

func NewProjector(bounds Bounds, view View) *Projector {
	return &Projector{
		bounds: bounds,
		view:   view.Clamped().Matrix(),
	}
}

// Project returns screen coordinates within [-√3, √3] and a depth that grows towards the viewer.
func (p *Projector) Project(pt traj.Point) (x, y, depth float64) {
	n := p.bounds.Normalize(pt)
	var out mat.VecDense
	out.MulVec(p.view, mat.NewVecDense(3, n[:]))
	return out.AtVec(0), out.AtVec(1), out.AtVec(2)
}
