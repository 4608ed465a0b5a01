package view

// Rect is a drawable box centred on (CX, CY), W wide and D deep, in drawing units.
type Rect struct {
	CX int `json:"cx"`
	CY int `json:"cy"`
	W  int `json:"w"`
	D  int `json:"d"`
}

// Scale sets drawing sizes for a view.
type Scale struct {
	Cell  int
	Bound int
}

// DefaultScale draws cells three units across with one unit walls.
var DefaultScale = Scale{Cell: 3, Bound: 1}

func (sc Scale) pitch() int {
	return sc.Cell + sc.Bound
}

// origin returns the drawing offset of the first unit covered by slot v.
func (sc Scale) origin(v int) int {
	if v%2 == 0 {
		return (v / 2) * sc.pitch()
	}
	return sc.Bound + (v/2)*sc.pitch()
}

// span returns how many drawing units slot v covers.
func (sc Scale) span(v int) int {
	if v%2 == 0 {
		return sc.Bound
	}
	return sc.Cell
}

// Size returns the drawing size of g.
func (sc Scale) Size(g *Grid) (int, int) {
	return sc.origin(g.Width-1) + sc.span(g.Width-1), sc.origin(g.Height-1) + sc.span(g.Height-1)
}

// Area returns the drawing area of slot (vx, vy).
func (sc Scale) Area(vx, vy int) Rect {
	w, d := sc.span(vx), sc.span(vy)
	return Rect{CX: sc.origin(vx) + w/2, CY: sc.origin(vy) + d/2, W: w, D: d}
}

// FindOpeningCenter places the gap of an opening inside its cell so that
// neighbouring openings do not line up. The result is relative to the cell's
// upper left corner. axis is the direction the opening faces; forwards picks
// the positive wall, otherwise the wall shared with the previous cell.
func (sc Scale) FindOpeningCenter(axis Axis, forwards bool, vx, vy int, spec Spec, current []int) [2]int {
	cellCoor := [3]int{(vx - 1) / 2, (vy - 1) / 2, current[spec.Z]}
	if !forwards {
		cellCoor[axis]--
	}

	var constants [2]int
	dim := spec.Dim(axis)
	for i := range current {
		v := current[i]
		if i == spec.X {
			v = cellCoor[AxisX]
		} else if i == spec.Y {
			v = cellCoor[AxisY]
		}
		if i < dim {
			constants[0] += v
		}
		if i > dim {
			constants[1] += v
		}
	}

	c := cellCoor[axis]
	sections := [2]int{section(c - 1), section(c - 3)}

	var center [2]int
	for k := range center {
		div, offset := 1, 0
		if sections[k] != 0 {
			div, offset = 2, sections[k]-1
		}
		m := sc.Cell/div + 1 - sc.Bound
		if m <= 0 {
			m = 1
		}
		center[k] = ((constants[k]*c+c)%m+m)%m + sc.Bound/2 + (offset*sc.Cell+1)/2
	}
	return center
}

// section splits cells into runs of four: 0 for the whole cell, 1 for the
// first half, 2 for the second.
func section(t int) int {
	switch {
	case t%4 == 0:
		return 0
	case t%8 > 4:
		return ((t%8)+1)%2 + 1
	}
	return (t%8)%2 + 1
}

// BoundRects returns the boxes that draw the bound slot (vx, vy). A closed
// bound is one box. An open wall is two boxes either side of its gap.
func (sc Scale) BoundRects(g *Grid, vx, vy int, spec Spec, current []int) []Rect {
	s := g.At(vx, vy)
	if !s.IsBound() {
		return nil
	}
	area := sc.Area(vx, vy)
	if s.ClosedBound() || (vx%2 == 0) == (vy%2 == 0) {
		return []Rect{area}
	}

	half := sc.Bound / 2
	if vx%2 == 0 {
		top := sc.origin(vy)
		gap := sc.FindOpeningCenter(AxisX, true, vx, vy, spec, current)[1]
		return []Rect{
			{CX: area.CX, CY: top + (gap-half)/2, W: sc.Bound, D: gap - half},
			{CX: area.CX, CY: top + (sc.Cell+gap+half)/2, W: sc.Bound, D: sc.Cell - gap - half},
		}
	}
	left := sc.origin(vx)
	gap := sc.FindOpeningCenter(AxisY, true, vx, vy, spec, current)[0]
	return []Rect{
		{CX: left + (gap-half)/2, CY: area.CY, W: gap - half, D: sc.Bound},
		{CX: left + (sc.Cell+gap+half)/2, CY: area.CY, W: sc.Cell - gap - half, D: sc.Bound},
	}
}

// InteriorRects returns the stair openings drawn in the interior slot
// (vx, vy): up first, then down.
func (sc Scale) InteriorRects(g *Grid, vx, vy int, spec Spec, current []int) []Rect {
	s := g.At(vx, vy)
	if !s.IsInterior() {
		return nil
	}
	left, top := sc.origin(vx), sc.origin(vy)

	var rects []Rect
	for _, dir := range []struct {
		on       bool
		forwards bool
	}{{s.Ascending(), true}, {s.Descending(), false}} {
		if !dir.on {
			continue
		}
		c := sc.FindOpeningCenter(AxisZ, dir.forwards, vx, vy, spec, current)
		rects = append(rects, Rect{CX: left + c[0], CY: top + c[1], W: sc.Bound, D: sc.Bound})
	}
	return rects
}
