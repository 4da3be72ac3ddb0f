package trplot

import (
	"github.com/celskeggs/trajanim/ctrl/traj"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"math"
	"sort"
	"strconv"
)

// sceneExtent bounds the projection of the unit cube from any direction.
var sceneExtent = math.Sqrt(3)

type Line3D struct {
	Points traj.Series
	Style  draw.LineStyle
	// Head marks the newest point when its radius is nonzero.
	Head draw.GlyphStyle
}

type Scene struct {
	Bounds    Bounds
	View      View
	Lines     []Line3D
	Labels    [3]string
	BoxStyle  draw.LineStyle
	TextStyle draw.TextStyle
}

var _ plot.Plotter = &Scene{}
var _ plot.DataRanger = &Scene{}

func NewScene(bounds Bounds, view View) *Scene {
	box := plotter.DefaultLineStyle
	box.Width = vg.Points(0.5)
	box.Color = plotter.DefaultGridLineStyle.Color
	return &Scene{
		Bounds:   bounds,
		View:     view,
		Labels:   [3]string{"X", "Y", "Z"},
		BoxStyle: box,
		TextStyle: text.Style{
			Font:     font.From(plotter.DefaultFont, plotter.DefaultFontSize),
			Rotation: 0,
			XAlign:   draw.XCenter,
			YAlign:   draw.YCenter,
			Handler:  plot.DefaultTextHandler,
		},
	}
}

// boxEdges lists the twelve cube edges as pairs of corner indices.
func boxEdges() (edges [][2]int) {
	for corner := 0; corner < 8; corner++ {
		for axis := 0; axis < 3; axis++ {
			if corner&(1<<axis) == 0 {
				edges = append(edges, [2]int{corner, corner | 1<<axis})
			}
		}
	}
	return edges
}

func meanDepth(proj *Projector, pts traj.Series) float64 {
	total := 0.0
	for _, pt := range pts {
		_, _, d := proj.Project(pt)
		total += d
	}
	return total / float64(len(pts))
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func (s *Scene) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	proj := NewProjector(s.Bounds, s.View)
	toCanvas := func(pt traj.Point) vg.Point {
		x, y, _ := proj.Project(pt)
		return vg.Point{X: trX(x), Y: trY(y)}
	}

	for _, edge := range boxEdges() {
		seg := []vg.Point{toCanvas(s.Bounds.Corner(edge[0])), toCanvas(s.Bounds.Corner(edge[1]))}
		c.StrokeLines(s.BoxStyle, c.ClipLinesXY(seg)...)
	}

	// label the three edges leaving the minimum corner
	origin := s.Bounds.Corner(0)
	for axis, label := range s.Labels {
		end := s.Bounds.Corner(1 << axis)
		a, b := toCanvas(origin), toCanvas(end)
		mid := vg.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
		if label != "" && c.Contains(mid) {
			c.FillText(s.TextStyle, mid, label)
		}
		if c.Contains(b) {
			c.FillText(s.TextStyle, b, formatBound(s.Bounds.Max[axis]))
		}
	}
	if a := toCanvas(origin); c.Contains(a) {
		c.FillText(s.TextStyle, a, formatBound(s.Bounds.Min[0]))
	}

	var order []int
	for i, line := range s.Lines {
		if len(line.Points) > 0 {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return meanDepth(proj, s.Lines[order[i]].Points) < meanDepth(proj, s.Lines[order[j]].Points)
	})
	for _, i := range order {
		line := s.Lines[i]
		pts := make([]vg.Point, len(line.Points))
		for j, pt := range line.Points {
			pts[j] = toCanvas(pt)
		}
		if len(pts) > 1 {
			c.StrokeLines(line.Style, c.ClipLinesXY(pts)...)
		}
		head := pts[len(pts)-1]
		if line.Head.Radius > 0 && c.Contains(head) {
			c.DrawGlyph(line.Head, head)
		}
	}
}

func (s *Scene) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -sceneExtent, sceneExtent, -sceneExtent, sceneExtent
}
