// Command mazeview walks a generated maze in the terminal, one 2-D slice at a time.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/roxymeskell/mdmaze/game"
	"github.com/roxymeskell/mdmaze/maze"
	"github.com/roxymeskell/mdmaze/view"
)

const help = "arrows move  u/d climb  x/y/z rotate (shift reverses)  q quit"

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stairStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	viewerStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	textStyle   = tcell.StyleDefault
)

type viewer struct {
	screen tcell.Screen
	runner *game.Runner
	scale  view.Scale
	status string
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("[MAZEVIEW] [FATAL] %v", err)
	}
}

func run() error {
	extentsFlag := flag.String("extents", "5,5,5", "comma separated extent of each dimension (at least three)")
	seed := flag.Int64("seed", 0, "generation seed, 0 for a random one")
	merge := flag.Float64("merge", maze.DefaultMergeProbability, "chance a join step opens a wall")
	flag.Parse()

	extents, err := parseExtents(*extentsFlag)
	if err != nil {
		return err
	}
	if len(extents) < 3 {
		return errors.New("a viewable maze needs at least three dimensions")
	}

	world, err := maze.Generate(extents, maze.Options{Seed: *seed, MergeProbability: *merge})
	if err != nil {
		return fmt.Errorf("generating maze: %w", err)
	}
	path, err := world.Solve()
	if err != nil {
		return err
	}
	rnd := maze.NewRandom(world.Stats().Seed)
	spec, err := view.RandomSpec(rnd, len(extents), 0)
	if err != nil {
		return err
	}
	runner, err := game.NewRunner(world, spec)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &viewer{
		screen: screen,
		runner: runner,
		scale:  view.Scale{Cell: 3, Bound: 1},
		status: fmt.Sprintf("maze %s seed %d, exit is %d moves away", world.Dimensions(), world.Stats().Seed, len(path)),
	}
	for {
		if err := v.draw(); err != nil {
			return err
		}
		if !v.handleInput(screen.PollEvent()) {
			return nil
		}
	}
}

func parseExtents(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	extents := make([]int, 0, len(parts))
	for _, p := range parts {
		e, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad extent %q: %w", p, err)
		}
		extents = append(extents, e)
	}
	return extents, nil
}

func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		var err error
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			err = v.runner.Step(view.AxisX, -1)
		case tcell.KeyRight:
			err = v.runner.Step(view.AxisX, 1)
		case tcell.KeyUp:
			err = v.runner.Step(view.AxisY, -1)
		case tcell.KeyDown:
			err = v.runner.Step(view.AxisY, 1)
		case tcell.KeyRune:
			switch r := ev.Rune(); r {
			case 'q':
				return false
			case 'u':
				err = v.runner.Ascend()
			case 'd':
				err = v.runner.Descend()
			case 'x', 'y', 'z', 'X', 'Y', 'Z':
				axis, _ := view.ParseAxis(string(r))
				step := 1
				if r >= 'A' && r <= 'Z' {
					step = -1
				}
				err = v.runner.Rotate(axis, step)
			}
		}
		v.report(err)

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) report(err error) {
	switch {
	case err == nil && v.runner.Finished():
		v.status = fmt.Sprintf("out through the exit in %d moves", v.runner.Moves())
	case err == nil:
		v.status = ""
	case errors.Is(err, game.ErrMoveBlocked):
		v.status = "a wall blocks the way"
	case errors.Is(err, game.ErrFinished):
		v.status = "already out, press q"
	default:
		v.status = err.Error()
	}
}

func (v *viewer) draw() error {
	g, err := v.runner.View()
	if err != nil {
		return err
	}
	spec := v.runner.Spec()
	pos := v.runner.Position()

	v.screen.Clear()
	for vy := 0; vy < g.Height; vy++ {
		for vx := 0; vx < g.Width; vx++ {
			s := g.At(vx, vy)
			if s.IsBound() {
				for _, r := range v.scale.BoundRects(g, vx, vy, spec, pos) {
					v.fill(r, '█', wallStyle)
				}
				continue
			}
			rects := v.scale.InteriorRects(g, vx, vy, spec, pos)
			if s.Ascending() {
				v.fill(rects[0], '^', stairStyle)
				rects = rects[1:]
			}
			if s.Descending() {
				v.fill(rects[0], 'v', stairStyle)
			}
		}
	}

	here := v.scale.Area(2*pos[spec.X]+1, 2*pos[spec.Y]+1)
	v.screen.SetContent(here.CX, here.CY, '@', nil, viewerStyle)

	_, height := v.scale.Size(g)
	v.text(0, height+1, fmt.Sprintf("at %v  x=dim %d  y=dim %d  z=dim %d  moves %d",
		pos, spec.X, spec.Y, spec.Z, v.runner.Moves()))
	v.text(0, height+2, v.status)
	v.text(0, height+3, help)
	v.screen.Show()
	return nil
}

// fill paints r, whose centre is (CX, CY).
func (v *viewer) fill(r view.Rect, ch rune, style tcell.Style) {
	x0, y0 := r.CX-r.W/2, r.CY-r.D/2
	for y := y0; y < y0+r.D; y++ {
		for x := x0; x < x0+r.W; x++ {
			v.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (v *viewer) text(x, y int, s string) {
	for i, ch := range s {
		v.screen.SetContent(x+i, y, ch, nil, textStyle)
	}
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: mazeview [-extents 5,5,5] [-seed n] [-merge p]\n%s\n", help)
		flag.PrintDefaults()
	}
}
