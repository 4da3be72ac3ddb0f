package traj

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/celskeggs/trajanim/ctrl/util"
	"io"
	"strconv"
	"strings"
)

// PlanetLabel marks the records that belong to the separately drawn series.
const PlanetLabel = "pl1"

// WindowSize is the number of trailing points shown for each frame.
const WindowSize = 5

// first coordinate column; x, y and z are read from this column and the two after it
const coordColumn = 2

type Point struct {
	X, Y, Z float64
}

type Series []Point

type Trajectory struct {
	Main   Series
	Planet Series
}

// Window returns the half-open range [max(num-WindowSize, 0), num), clamped to n.
func Window(num int, n int) (lo, hi int) {
	lo, hi = num-WindowSize, num
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

// Window returns the points visible at frame num. Frames past the end yield an empty series.
func (s Series) Window(num int) Series {
	lo, hi := Window(num, len(s))
	return s[lo:hi]
}

var ErrBadNumber = errors.New("invalid number")

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// ParseCoord reads a decimal float. Hexadecimal forms are rejected; single
// underscores between digits are allowed and ignored.
func ParseCoord(s string) (float64, error) {
	if strings.ContainsAny(s, "xX") {
		return 0, fmt.Errorf("%q: %w", s, ErrBadNumber)
	}
	if strings.Contains(s, "_") {
		for i := 0; i < len(s); i++ {
			if s[i] == '_' && (i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1])) {
				return 0, fmt.Errorf("%q: %w", s, ErrBadNumber)
			}
		}
		s = strings.ReplaceAll(s, "_", "")
	}
	return strconv.ParseFloat(s, 64)
}

func ParseLine(line string) (label string, p Point, err error) {
	fields := strings.Fields(line)
	if len(fields) < coordColumn+3 {
		return "", Point{}, fmt.Errorf("expected at least %d columns, found %d", coordColumn+3, len(fields))
	}
	var coords [3]float64
	for i := range coords {
		coords[i], err = ParseCoord(fields[coordColumn+i])
		if err != nil {
			return "", Point{}, fmt.Errorf("column %d: %w", coordColumn+i, err)
		}
	}
	return fields[0], Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

func Parse(r io.Reader) (*Trajectory, error) {
	t := &Trajectory{}
	br := bufio.NewReader(r)
	lineNum := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line == "" {
			// end of input; a final newline does not start another record
			return t, nil
		}
		lineNum++
		label, p, perr := ParseLine(line)
		if perr != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, perr)
		}
		if label == PlanetLabel {
			t.Planet = append(t.Planet, p)
		} else {
			t.Main = append(t.Main, p)
		}
		if err == io.EOF {
			return t, nil
		}
	}
}

func Load(path string) (t *Trajectory, err error) {
	r, err := util.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = util.CombineErrors(err, r.Close())
		if err != nil {
			t = nil
		}
	}()
	t, err = Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
