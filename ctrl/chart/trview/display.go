package trview

import (
	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/celskeggs/trajanim/ctrl/chart/trplot"
	"gonum.org/v1/plot/vg"
	"image"
	"image/color"
	"log"
	"math"
	"os"
	"time"
)

// degrees of rotation per pixel dragged
const dragSensitivity = 0.4

type AnimationWidget struct {
	trplot.Playback
	DPI       int
	AdjWidth  vg.Length
	AdjHeight vg.Length

	View trplot.View

	Dragging  bool
	DragStart f32.Point
	DragView  trplot.View

	Dirty bool
	Busy  bool
	Ready chan image.Image
	Image image.Image
}

func (w *AnimationWidget) GenImage(frame int, view trplot.View, width, height vg.Length) image.Image {
	return w.Anim.RenderFrame(frame, view, width, height, w.DPI)
}

func (w *AnimationWidget) OnReady(ready image.Image) {
	if !w.Busy {
		panic("should be busy")
	}
	w.Image = ready
	w.Busy = false
}

func (w *AnimationWidget) GetImage(size image.Point) image.Image {
	wAdjusted := vg.Points(float64(size.X) * vg.Inch.Points() / float64(w.DPI))
	hAdjusted := vg.Points(float64(size.Y) * vg.Inch.Points() / float64(w.DPI))
	if w.Image == nil {
		w.Image = w.GenImage(w.Frame, w.View, wAdjusted, hAdjusted)
		w.AdjWidth = wAdjusted
		w.AdjHeight = hAdjusted
		w.Dirty = false
	} else if w.Dirty || w.AdjWidth != wAdjusted || w.AdjHeight != hAdjusted {
		if !w.Busy {
			w.Busy = true
			frame, view := w.Frame, w.View
			go func() {
				w.Ready <- w.GenImage(frame, view, wAdjusted, hAdjusted)
			}()
			w.AdjWidth = wAdjusted
			w.AdjHeight = hAdjusted
			w.Dirty = false
		}
	}

	return w.Image
}

// distinct allocations; zero-size values may share an address
var (
	progressTag = new(int)
	plotTag     = new(int)
)

func (w *AnimationWidget) handleProgress(gtx layout.Context) {
	for _, ev := range gtx.Queue.Events(progressTag) {
		if x, ok := ev.(pointer.Event); ok {
			if x.Type == pointer.Press || x.Type == pointer.Drag {
				frac := math.Max(0, math.Min(1, float64(x.Position.X)/float64(gtx.Constraints.Max.X)))
				if w.Seek(w.Anim.FrameAt(frac)) {
					w.Dirty = true
				}
			}
		}
	}
}

func (w *AnimationWidget) handleRotate(gtx layout.Context) {
	for _, ev := range gtx.Queue.Events(plotTag) {
		if x, ok := ev.(pointer.Event); ok {
			switch x.Type {
			case pointer.Press:
				w.Dragging = true
				w.DragStart = x.Position
				w.DragView = w.View
			case pointer.Drag:
				if w.Dragging {
					delta := x.Position.Sub(w.DragStart)
					w.View = trplot.View{
						Azimuth:   w.DragView.Azimuth - float64(delta.X)*dragSensitivity,
						Elevation: w.DragView.Elevation + float64(delta.Y)*dragSensitivity,
					}.Clamped()
					w.Dirty = true
				}
			case pointer.Release, pointer.Cancel:
				w.Dragging = false
			}
		}
	}
}

func (w *AnimationWidget) Layout(gtx layout.Context) layout.Dimensions {
	defer op.Save(gtx.Ops).Load()

	progressY := 20
	if progressY > gtx.Constraints.Max.Y/4 {
		progressY = gtx.Constraints.Max.Y / 4
	}

	w.handleProgress(gtx)

	base := op.Save(gtx.Ops)

	pointer.Rect(image.Rectangle{
		Max: image.Point{
			X: gtx.Constraints.Max.X,
			Y: progressY,
		},
	}).Add(gtx.Ops)
	pointer.InputOp{
		Tag:   progressTag,
		Types: pointer.Press | pointer.Drag | pointer.Release,
	}.Add(gtx.Ops)

	// render progress background
	clip.Rect{
		Max: image.Point{
			X: gtx.Constraints.Max.X,
			Y: progressY,
		},
	}.Add(gtx.Ops)
	paint.ColorOp{
		Color: color.NRGBA{192, 192, 192, 255},
	}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	base.Load()

	// render progress foreground
	done := w.Progress()
	barColor := color.NRGBA{128, 128, 128, 255}
	if w.Paused {
		barColor = color.NRGBA{192, 128, 128, 255}
	}
	clip.Rect{
		Max: image.Point{
			X: int(float64(gtx.Constraints.Max.X) * done),
			Y: progressY,
		},
	}.Add(gtx.Ops)
	paint.ColorOp{
		Color: barColor,
	}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	base.Load()

	op.Offset(f32.Point{Y: float32(progressY * 2)}).Add(gtx.Ops)

	plotArea := image.Point{
		X: gtx.Constraints.Max.X,
		Y: gtx.Constraints.Max.Y - progressY*2,
	}

	w.handleRotate(gtx)

	pointer.Rect(image.Rectangle{Max: plotArea}).Add(gtx.Ops)
	pointer.InputOp{
		Tag:   plotTag,
		Types: pointer.Press | pointer.Drag | pointer.Release,
		Grab:  w.Dragging,
	}.Add(gtx.Ops)

	// render the current frame
	clip.Rect{Max: plotArea}.Add(gtx.Ops)
	paint.NewImageOp(w.GetImage(plotArea)).Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

// DisplayAnimation plays the animation in a window until it is closed. An animation
// without frames is not displayed at all.
func DisplayAnimation(anim *trplot.Animation) error {
	if anim.FrameCount() == 0 {
		return nil
	}

	widget := &AnimationWidget{
		Playback: trplot.Playback{
			Anim: anim,
		},
		DPI:   128,
		View:  anim.View,
		Ready: make(chan image.Image),
	}

	go func() {
		win := app.NewWindow(
			app.Title(anim.Title),
			app.Size(
				unit.Px(1024),
				unit.Px(768),
			),
		)
		defer win.Close()

		ticker := time.NewTicker(anim.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if widget.Tick() {
					widget.Dirty = true
					win.Invalidate()
				}
			case ready := <-widget.Ready:
				widget.OnReady(ready)
				win.Invalidate()
			case e := <-win.Events():
				switch e := e.(type) {
				case system.FrameEvent:
					ops := new(op.Ops)
					gtx := layout.NewContext(ops, e)
					layout.UniformInset(unit.Dp(30)).Layout(gtx, widget.Layout)
					e.Frame(ops)
				case key.Event:
					if e.State != key.Press {
						break
					}
					switch e.Name {
					case "Q", key.NameEscape:
						win.Close()
					case "P":
						widget.Paused = !widget.Paused
						win.Invalidate()
					case key.NameLeftArrow:
						if widget.Step(-1) {
							widget.Dirty = true
						}
						win.Invalidate()
					case key.NameRightArrow:
						if widget.Step(1) {
							widget.Dirty = true
						}
						win.Invalidate()
					}

				case system.DestroyEvent:
					if e.Err != nil {
						log.Fatal(e.Err)
					}
					os.Exit(0)
				}
			}
		}
	}()

	app.Main()
	return nil
}
