package persistence

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/lixenwraith/ant-colony/environment"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/vmath"
)

// endMarker terminates every record file
const endMarker = "END"

var ErrMalformed = errors.New("persistence: malformed scene file")

// tokens reads whitespace separated fields
type tokens struct {
	sc *bufio.Scanner
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

func (t *tokens) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected end of input reading %s", ErrMalformed, what)
	}
	return t.sc.Text(), nil
}

func (t *tokens) float(what string) (float64, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s: %q is not a finite number", ErrMalformed, what, s)
	}
	return v, nil
}

func (t *tokens) count(what string) (int, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s: %q is not a non-negative integer", ErrMalformed, what, s)
	}
	return v, nil
}

func (t *tokens) end() error {
	s, err := t.next("end marker")
	if err != nil {
		return err
	}
	if s != endMarker {
		return fmt.Errorf("%w: expected %s, got %q", ErrMalformed, endMarker, s)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FoodRecord is one saved food cluster; particles are regenerated on load
type FoodRecord struct {
	Circle vmath.Circle
	Count  int
}

// parseObstacles reads "N", N lines "x y width height", then END
func parseObstacles(r io.Reader) ([]vmath.Rect, error) {
	t := newTokens(r)
	n, err := t.count("obstacle count")
	if err != nil {
		return nil, err
	}
	var rects []vmath.Rect
	for i := range n {
		var v [4]float64
		for j, what := range []string{"x", "y", "width", "height"} {
			if v[j], err = t.float(fmt.Sprintf("obstacle %d %s", i, what)); err != nil {
				return nil, err
			}
		}
		rect, err := vmath.NewRect(vmath.V2(v[0], v[1]), v[2], v[3])
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		rects = append(rects, rect)
	}
	if err := t.end(); err != nil {
		return nil, err
	}
	return rects, nil
}

// parseFood reads "N", N lines "cx cy radius count", then END
func parseFood(r io.Reader) ([]FoodRecord, error) {
	t := newTokens(r)
	n, err := t.count("cluster count")
	if err != nil {
		return nil, err
	}
	var records []FoodRecord
	for i := range n {
		var v [3]float64
		for j, what := range []string{"x", "y", "radius"} {
			if v[j], err = t.float(fmt.Sprintf("cluster %d %s", i, what)); err != nil {
				return nil, err
			}
		}
		count, err := t.count(fmt.Sprintf("cluster %d particle count", i))
		if err != nil {
			return nil, err
		}
		if count > parameter.FoodMaxClusterCount {
			return nil, fmt.Errorf("%w: cluster %d particle count %d exceeds %d",
				ErrMalformed, i, count, parameter.FoodMaxClusterCount)
		}
		circle, err := vmath.NewCircle(vmath.V2(v[0], v[1]), v[2])
		if err != nil {
			return nil, fmt.Errorf("cluster %d: %w", i, err)
		}
		records = append(records, FoodRecord{Circle: circle, Count: count})
	}
	if err := t.end(); err != nil {
		return nil, err
	}
	return records, nil
}

// parseAnthill reads "cx cy radius food", then END
func parseAnthill(r io.Reader) (vmath.Circle, int, error) {
	t := newTokens(r)
	var v [3]float64
	var err error
	for j, what := range []string{"x", "y", "radius"} {
		if v[j], err = t.float("anthill " + what); err != nil {
			return vmath.Circle{}, 0, err
		}
	}
	food, err := t.count("anthill food")
	if err != nil {
		return vmath.Circle{}, 0, err
	}
	circle, err := vmath.NewCircle(vmath.V2(v[0], v[1]), v[2])
	if err != nil {
		return vmath.Circle{}, 0, fmt.Errorf("anthill: %w", err)
	}
	if err := t.end(); err != nil {
		return vmath.Circle{}, 0, err
	}
	return circle, food, nil
}

// checkFood refuses any record whose circle touches an obstacle
func checkFood(records []FoodRecord, obstacles *environment.Obstacles) error {
	for i, rec := range records {
		if obstacles.AnyInCircle(rec.Circle) {
			return fmt.Errorf("cluster %d: %w", i, environment.ErrClusterBlocked)
		}
	}
	return nil
}

// applyFood replaces the field contents; records must already pass checkFood
func applyFood(dst *environment.Food, records []FoodRecord, obstacles *environment.Obstacles) error {
	dst.Clear()
	for i, rec := range records {
		ok, err := dst.GenerateInCircle(rec.Circle, rec.Count, obstacles)
		if err != nil {
			return fmt.Errorf("cluster %d: %w", i, err)
		}
		if !ok {
			return fmt.Errorf("cluster %d: %w", i, environment.ErrClusterBlocked)
		}
	}
	return nil
}

// ReadObstacles replaces dst with the obstacles in r
// On error dst is left unchanged
func ReadObstacles(r io.Reader, dst *environment.Obstacles) error {
	rects, err := parseObstacles(r)
	if err != nil {
		return err
	}
	dst.Replace(rects)
	return nil
}

func WriteObstacles(w io.Writer, src *environment.Obstacles) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", src.Len())
	for rect := range src.All() {
		tl := rect.TopLeft()
		fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n",
			formatFloat(tl.X), formatFloat(tl.Y), formatFloat(rect.Width()), formatFloat(rect.Height()))
	}
	fmt.Fprintln(bw, endMarker)
	return bw.Flush()
}

// ReadFood replaces dst with clusters regenerated from r
// Every circle is checked against obstacles before any particle is drawn,
// so a refused file leaves both dst and its random source untouched
func ReadFood(r io.Reader, dst *environment.Food, obstacles *environment.Obstacles) error {
	records, err := parseFood(r)
	if err != nil {
		return err
	}
	if err := checkFood(records, obstacles); err != nil {
		return err
	}
	return applyFood(dst, records, obstacles)
}

// WriteFood saves each cluster with its remaining particle count
func WriteFood(w io.Writer, src *environment.Food) error {
	bw := bufio.NewWriter(w)
	n := 0
	for range src.Clusters() {
		n++
	}
	fmt.Fprintf(bw, "%d\n", n)
	for cluster := range src.Clusters() {
		c := cluster.Circle()
		fmt.Fprintf(bw, "%s\t%s\t%s\t%d\n",
			formatFloat(c.Center().X), formatFloat(c.Center().Y), formatFloat(c.Radius()), cluster.Len())
	}
	fmt.Fprintln(bw, endMarker)
	return bw.Flush()
}

// ReadAnthill replaces circle and counter of dst
// On error dst is left unchanged
func ReadAnthill(r io.Reader, dst *environment.Anthill) error {
	circle, food, err := parseAnthill(r)
	if err != nil {
		return err
	}
	return dst.Set(circle, food)
}

func WriteAnthill(w io.Writer, src *environment.Anthill) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\t%s\t%s\t%d\n",
		formatFloat(src.Center().X), formatFloat(src.Center().Y), formatFloat(src.Radius()), src.Food())
	fmt.Fprintln(bw, endMarker)
	return bw.Flush()
}
