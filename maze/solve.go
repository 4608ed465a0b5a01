package maze

import (
	"errors"
	"slices"
)

var ErrNoPath = errors.New("no path between cells")

// Path returns the shortest walk from one cell to another through open walls,
// both ends included.
func (w *World) Path(from, to []int) ([][]int, error) {
	if err := w.dims.Validate(from); err != nil {
		return nil, err
	}
	if err := w.dims.Validate(to); err != nil {
		return nil, err
	}

	start, goal := w.dims.Index(from), w.dims.Index(to)
	parent := make([]int, len(w.bounds))
	for i := range parent {
		parent[i] = -1
	}
	parent[start] = start

	queue := []int{start}
	var next []int
	for len(queue) > 0 && parent[goal] == -1 {
		current := shift(&queue)
		next = w.openNeighbors(current, next[:0])
		for _, n := range next {
			if parent[n] == -1 {
				parent[n] = current
				queue = append(queue, n)
			}
		}
	}
	if parent[goal] == -1 {
		return nil, ErrNoPath
	}

	var path [][]int
	for idx := goal; ; idx = parent[idx] {
		path = append(path, w.dims.Coordinate(idx))
		if idx == start {
			break
		}
	}
	slices.Reverse(path)
	return path, nil
}

// Solve returns the shortest walk from the entrance to the exit.
func (w *World) Solve() ([][]int, error) {
	return w.Path(w.entrance, w.exit)
}

// shift removes and returns the first element of a queue.
func shift(q *[]int) int {
	first := (*q)[0]
	*q = (*q)[1:]
	return first
}
