package trplot

import (
	"github.com/celskeggs/trajanim/ctrl/traj"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"image"
	"image/color"
	"time"
)

const DefaultInterval = 50 * time.Millisecond

var (
	MainColor   = color.RGBA{31, 119, 180, 255}
	PlanetColor = color.RGBA{255, 127, 14, 255}
)

// Animation steps through the main series, showing the trailing window of both series.
type Animation struct {
	Title      string
	Trajectory *traj.Trajectory
	Bounds     Bounds
	View       View
	Interval   time.Duration

	MainStyle   draw.LineStyle
	PlanetStyle draw.LineStyle
}

func lineStyle(c color.Color) draw.LineStyle {
	style := plotter.DefaultLineStyle
	style.Color = c
	style.Width = vg.Points(1.5)
	return style
}

func NewAnimation(t *traj.Trajectory, title string) *Animation {
	return &Animation{
		Title:       title,
		Trajectory:  t,
		Bounds:      DefaultBounds,
		View:        DefaultView,
		Interval:    DefaultInterval,
		MainStyle:   lineStyle(MainColor),
		PlanetStyle: lineStyle(PlanetColor),
	}
}

// FrameCount is the number of main series points; the pl1 series does not extend it.
func (a *Animation) FrameCount() int {
	return len(a.Trajectory.Main)
}

// Mismatch reports whether the pl1 series is a different length from the main series,
// in which case its window runs out early or never reaches its final points.
func (a *Animation) Mismatch() bool {
	return len(a.Trajectory.Planet) != len(a.Trajectory.Main)
}

// NextFrame advances num, wrapping back to zero after the last frame.
func (a *Animation) NextFrame(num int) int {
	if a.FrameCount() == 0 {
		return 0
	}
	return (num + 1) % a.FrameCount()
}

// FrameAt converts a position along the progress bar (0 to 1) into a frame index.
func (a *Animation) FrameAt(frac float64) int {
	n := a.FrameCount()
	if n == 0 {
		return 0
	}
	num := int(frac * float64(n))
	if num < 0 {
		num = 0
	}
	if num >= n {
		num = n - 1
	}
	return num
}

func headGlyph(c color.Color) draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  c,
		Radius: vg.Points(2.5),
		Shape:  draw.CircleGlyph{},
	}
}

func (a *Animation) BuildScene(num int, view View) *Scene {
	scene := NewScene(a.Bounds, view)
	scene.Lines = []Line3D{
		{
			Points: a.Trajectory.Main.Window(num),
			Style:  a.MainStyle,
			Head:   headGlyph(a.MainStyle.Color),
		},
		{
			Points: a.Trajectory.Planet.Window(num),
			Style:  a.PlanetStyle,
			Head:   headGlyph(a.PlanetStyle.Color),
		},
	}
	return scene
}

func (a *Animation) BuildPlot(num int, view View) *plot.Plot {
	p := plot.New()
	p.Title.Text = a.Title
	p.HideAxes()
	p.Add(a.BuildScene(num, view))
	p.Legend.Top = true
	p.Legend.Add("main", &plotter.Line{LineStyle: a.MainStyle})
	p.Legend.Add(traj.PlanetLabel, &plotter.Line{LineStyle: a.PlanetStyle})
	return p
}

func (a *Animation) RenderFrame(num int, view View, w, h vg.Length, dpi int) image.Image {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	a.BuildPlot(num, view).Draw(draw.New(c))
	return c.Image()
}
