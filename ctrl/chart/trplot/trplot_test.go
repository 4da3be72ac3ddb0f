package trplot

import (
	"github.com/celskeggs/trajanim/ctrl/traj"
	"gonum.org/v1/plot/vg"
	"math"
	"testing"
)

const tolerance = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestNormalize(t *testing.T) {
	n := DefaultBounds.Normalize(traj.Point{X: -10, Y: 0, Z: 0.5})
	if !near(n[0], -1) || !near(n[1], 0) || !near(n[2], 1) {
		t.Errorf("unexpected normalization %v", n)
	}
	flat := Bounds{Max: [3]float64{1, 1, 0}}
	if n := flat.Normalize(traj.Point{X: 1, Y: 0, Z: 7}); !near(n[0], 1) || !near(n[1], -1) || n[2] != 0 {
		t.Errorf("unexpected normalization with empty span %v", n)
	}
}

func TestProjectAxes(t *testing.T) {
	b := Bounds{Min: [3]float64{-1, -1, -1}, Max: [3]float64{1, 1, 1}}
	proj := NewProjector(b, View{Azimuth: 0, Elevation: 0})

	x, y, d := proj.Project(traj.Point{Y: 1})
	if !near(x, 1) || !near(y, 0) || !near(d, 0) {
		t.Errorf("+Y projected to (%v, %v, %v), want screen right", x, y, d)
	}
	x, y, d = proj.Project(traj.Point{Z: 1})
	if !near(x, 0) || !near(y, 1) || !near(d, 0) {
		t.Errorf("+Z projected to (%v, %v, %v), want screen up", x, y, d)
	}
	x, y, d = proj.Project(traj.Point{X: 1})
	if !near(x, 0) || !near(y, 0) || !near(d, 1) {
		t.Errorf("+X projected to (%v, %v, %v), want towards the viewer", x, y, d)
	}
}

func TestProjectEyeToOrigin(t *testing.T) {
	b := Bounds{Min: [3]float64{-1, -1, -1}, Max: [3]float64{1, 1, 1}}
	v := DefaultView
	az, el := v.Azimuth*math.Pi/180, v.Elevation*math.Pi/180
	eye := traj.Point{X: math.Cos(el) * math.Cos(az), Y: math.Cos(el) * math.Sin(az), Z: math.Sin(el)}
	x, y, d := NewProjector(b, v).Project(eye)
	if !near(x, 0) || !near(y, 0) || !near(d, 1) {
		t.Errorf("eye direction projected to (%v, %v, %v)", x, y, d)
	}
}

func TestProjectionStaysInExtent(t *testing.T) {
	for _, view := range []View{DefaultView, {Azimuth: 45, Elevation: 35.26}, {Azimuth: 10, Elevation: 120}} {
		proj := NewProjector(DefaultBounds, view)
		for corner := 0; corner < 8; corner++ {
			x, y, _ := proj.Project(DefaultBounds.Corner(corner))
			if math.Abs(x) > sceneExtent+tolerance || math.Abs(y) > sceneExtent+tolerance {
				t.Errorf("view %v: corner %d projected outside the scene to (%v, %v)", view, corner, x, y)
			}
		}
	}
}

func TestBoxEdges(t *testing.T) {
	edges := boxEdges()
	if len(edges) != 12 {
		t.Fatalf("expected 12 edges, got %d", len(edges))
	}
	for _, e := range edges {
		diff := e[0] ^ e[1]
		if diff != 1 && diff != 2 && diff != 4 {
			t.Errorf("edge %v does not follow a single axis", e)
		}
	}
}

func sampleTrajectory(mainLen, planetLen int) *traj.Trajectory {
	tr := &traj.Trajectory{}
	for i := 0; i < mainLen; i++ {
		tr.Main = append(tr.Main, traj.Point{X: float64(i) - 5, Y: float64(i) / 2, Z: 0.1})
	}
	for i := 0; i < planetLen; i++ {
		tr.Planet = append(tr.Planet, traj.Point{X: 5 - float64(i), Y: -float64(i) / 2, Z: -0.1})
	}
	return tr
}

func TestAnimationFrames(t *testing.T) {
	a := NewAnimation(sampleTrajectory(10, 4), "test")
	if a.FrameCount() != 10 {
		t.Errorf("expected 10 frames, got %d", a.FrameCount())
	}
	if !a.Mismatch() {
		t.Error("expected series length mismatch to be reported")
	}
	if a.NextFrame(3) != 4 || a.NextFrame(9) != 0 {
		t.Error("unexpected frame advance")
	}
	if a.FrameAt(0) != 0 || a.FrameAt(0.55) != 5 || a.FrameAt(1) != 9 || a.FrameAt(-2) != 0 {
		t.Error("unexpected frame for progress position")
	}

	scene := a.BuildScene(8, DefaultView)
	if got := len(scene.Lines[0].Points); got != 5 {
		t.Errorf("expected 5 main points at frame 8, got %d", got)
	}
	if got := len(scene.Lines[1].Points); got != 1 {
		t.Errorf("expected the pl1 window clamped to 1 point at frame 8, got %d", got)
	}
	if got := len(a.BuildScene(0, DefaultView).Lines[0].Points); got != 0 {
		t.Errorf("expected an empty window at frame 0, got %d", got)
	}
}

func TestAnimationEmpty(t *testing.T) {
	a := NewAnimation(&traj.Trajectory{}, "empty")
	if a.FrameCount() != 0 || a.Mismatch() {
		t.Error("expected zero frames and matching lengths")
	}
	if a.NextFrame(0) != 0 || a.FrameAt(0.5) != 0 {
		t.Error("expected frame zero for an empty animation")
	}
}

func TestRenderFrame(t *testing.T) {
	a := NewAnimation(sampleTrajectory(10, 10), "render")
	for _, num := range []int{0, 1, 6, 9} {
		img := a.RenderFrame(num, DefaultView, 4*vg.Inch, 3*vg.Inch, 50)
		size := img.Bounds().Size()
		if size.X != 200 || size.Y != 150 {
			t.Errorf("frame %d: unexpected image size %v", num, size)
		}
	}
}

func TestSceneDataRange(t *testing.T) {
	xmin, xmax, ymin, ymax := NewScene(DefaultBounds, DefaultView).DataRange()
	if !near(xmin, -math.Sqrt(3)) || !near(xmax, math.Sqrt(3)) || xmin != ymin || xmax != ymax {
		t.Errorf("unexpected data range (%v, %v, %v, %v)", xmin, xmax, ymin, ymax)
	}
}
