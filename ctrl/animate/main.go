package main

import (
	"fmt"
	"github.com/celskeggs/trajanim/ctrl/chart/trplot"
	"github.com/celskeggs/trajanim/ctrl/chart/trview"
	"github.com/celskeggs/trajanim/ctrl/traj"
	"github.com/celskeggs/trajanim/ctrl/util"
	"log"
	"os"
	"path/filepath"
)

func main() {
	path, help, ok := util.SingleArg(os.Args[1:])
	if !ok {
		if help {
			fmt.Printf("Usage: %s <trajectory-file>\n", os.Args[0])
			fmt.Printf("Keys: P pauses, Left/Right step frames, Q or Escape quits. Drag the plot to rotate.\n")
			return
		}
		log.Fatalf("Usage: %s <trajectory-file>", os.Args[0])
	}
	t, err := traj.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded %d points and %d %s points from %s", len(t.Main), len(t.Planet), traj.PlanetLabel, path)

	anim := trplot.NewAnimation(t, filepath.Base(path))
	if anim.Mismatch() {
		log.Printf("Warning: %s series has %d points but the animation runs for %d frames; its window will not track the main series",
			traj.PlanetLabel, len(t.Planet), anim.FrameCount())
	}
	if anim.FrameCount() == 0 {
		log.Printf("Nothing to animate")
		return
	}
	if err := trview.DisplayAnimation(anim); err != nil {
		log.Fatal(err)
	}
}
