package maze

import (
	"io"
	"log"
)

const (
	// DefaultMergeProbability is the chance that the join phase tries to merge
	// at each cell it visits.
	DefaultMergeProbability = 0.5

	joinRoundsPerCell = 64
	chancePrecision   = 1000
)

// Options configures a Builder. The zero value is usable.
type Options struct {
	Random           Randomizer  // Source of randomness; defaults to NewRandom(Seed)
	Seed             int64       // Seed for the default Random; 0 picks one
	MergeProbability float64     // Values outside (0, 1] use DefaultMergeProbability
	Validate         bool        // Check forest invariants after every structural change
	Logger           *log.Logger // Defaults to a discarding logger
}

// Builder generates one maze. A Builder is single use and not safe for
// concurrent use.
type Builder struct {
	dims    Dimensions
	strides []int
	rnd     Randomizer
	merge   float64
	logger  *log.Logger

	forest  *forest
	world   *World
	created []bool
	stats   Stats
	built   bool
}

// NewBuilder validates extents and prepares a Builder.
func NewBuilder(extents []int, opts Options) (*Builder, error) {
	dims, err := NewDimensions(extents...)
	if err != nil {
		return nil, err
	}

	rnd := opts.Random
	if rnd == nil {
		rnd = NewRandom(opts.Seed)
	}
	merge := opts.MergeProbability
	if merge <= 0 || merge > 1 {
		merge = DefaultMergeProbability
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	b := &Builder{
		dims:    dims,
		strides: dims.Strides(),
		rnd:     rnd,
		merge:   merge,
		logger:  logger,
		forest:  newForest(len(dims), opts.Validate),
		world:   newWorld(dims),
		created: make([]bool, dims.CellCount()),
	}
	if s, ok := rnd.(interface{ Seed() int64 }); ok {
		b.stats.Seed = s.Seed()
	}
	return b, nil
}

// Generate builds a maze with the given extents.
func Generate(extents []int, opts Options) (*World, error) {
	b, err := NewBuilder(extents, opts)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// Build runs generation and returns the finished World.
func (b *Builder) Build() (*World, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}
	b.built = true

	b.newCell(0)
	for d := len(b.dims) - 1; d >= 0; d-- {
		pos := 0
		for i := 0; i < b.dims[d]-1; i++ {
			next, ok := b.neighbor(pos, d)
			if !ok {
				break
			}
			pos = next
		}
		if b.forest.err != nil {
			return nil, b.forest.err
		}
	}

	if err := b.joinSets(); err != nil {
		b.logger.Printf("[ERROR] joining sets of maze %s: %s", b.dims, err)
		return nil, err
	}
	for b.forest.roots.len() > 0 {
		b.writeSet(b.forest.roots.get(0))
	}
	if b.forest.err != nil {
		return nil, b.forest.err
	}

	b.world.entrance = b.rnd.Opening(b.dims)
	b.world.exit = b.rnd.OpeningExcluding(b.dims, b.world.entrance)
	b.stats.CellsMoved = b.forest.moved
	b.world.stats = b.stats

	b.logger.Printf("[INFO] generated maze %s: %d cells, %d merges, %d forced openings",
		b.dims, b.stats.CellsCreated, b.stats.Merges, b.stats.ForcedOpen)
	return b.world, nil
}

func (b *Builder) newCell(pos int) {
	b.created[pos] = true
	b.forest.add(pos, closedBounds(len(b.dims)))
	b.stats.CellsCreated++
	if n := b.forest.live(); n > b.stats.PeakLiveCells {
		b.stats.PeakLiveCells = n
	}
}

// atEnd reports whether pos is on the last layer of dimension d.
func (b *Builder) atEnd(pos, d int) bool {
	return (pos/b.strides[d])%b.dims[d] == b.dims[d]-1
}

func (b *Builder) hasNeighbor(pos, d int) bool {
	return !b.atEnd(pos, d) && b.created[pos+b.strides[d]]
}

// neighbor returns the cell at pos+e_d, creating it on first use. Creating a
// cell decides the wall between them, mirrors the new cell into every higher
// dimension pos already reaches, and along dimension 0 writes pos out.
func (b *Builder) neighbor(pos, d int) (int, bool) {
	if b.atEnd(pos, d) {
		return 0, false
	}
	next := pos + b.strides[d]
	if b.created[next] {
		return next, true
	}

	b.newCell(next)
	b.defineBound(pos, d)

	for n := len(b.dims) - 1; n > d; n-- {
		if !b.hasNeighbor(pos, n) {
			continue
		}
		if _, ok := b.neighbor(pos+b.strides[n], d); ok {
			b.defineBound(next, n)
		}
	}

	if d == 0 {
		if id, ok := b.forest.lookup(pos); ok {
			b.write(id)
			b.stats.CellsWritten++
		}
	}
	return next, true
}

// defineBound decides the wall of pos along d. Walls inside one set stay
// closed. A root written along dimension 0 must open toward its successor so
// its set keeps a live member.
func (b *Builder) defineBound(pos, d int) {
	id, ok := b.forest.lookup(pos)
	if !ok {
		return
	}
	nid, live := b.forest.lookup(pos + b.strides[d])

	closed := b.rnd.Int(1) == 1
	if (live && b.forest.sameSet(id, nid)) || b.atEnd(pos, d) {
		closed = true
	}
	if d == 0 && b.forest.parent(id) == noCell && !b.atEnd(pos, d) {
		closed = false
	}

	b.forest.cells[id].bounds = b.forest.cells[id].bounds.Set(d, closed)
	if !closed && live && b.forest.merge(id, nid) {
		b.stats.Merges++
	}
}

// write stores a live cell's walls in the World and closes it.
func (b *Builder) write(id cellID) {
	c := b.forest.cells[id]
	b.world.bounds[c.pos] = c.bounds
	b.forest.remove(id)
	b.forest.release(id)
}

// joinSets merges the remaining sets until one is left.
func (b *Builder) joinSets() error {
	limit := joinRoundsPerCell * b.dims.CellCount()
	for rounds := 0; ; rounds++ {
		b.forest.compactRoots()
		if b.forest.roots.len() <= 1 {
			return nil
		}
		if rounds >= limit {
			return ErrJoinStalled
		}

		root := b.forest.roots.get(b.rnd.Int(b.forest.roots.len() - 1))
		b.joinFrom(root)
		b.stats.JoinRounds++
		if b.forest.err != nil {
			return b.forest.err
		}
	}
}

// joinFrom walks root's set breadth first and stops at the first successful merge.
func (b *Builder) joinFrom(root cellID) bool {
	queue := []cellID{root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if b.chance() && b.randMerge(current) {
			return true
		}
		queue = append(queue, b.forest.children(current)...)
	}
	return false
}

func (b *Builder) chance() bool {
	return b.rnd.Int(chancePrecision-1) < int(b.merge*chancePrecision)
}

// randMerge opens a random wall from id toward a live cell of another set.
func (b *Builder) randMerge(id cellID) bool {
	pos := b.forest.cells[id].pos
	var candidates []int
	for d := range b.dims {
		if b.atEnd(pos, d) {
			continue
		}
		if nid, ok := b.forest.lookup(pos + b.strides[d]); ok && !b.forest.sameSet(id, nid) {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return false
	}

	d := candidates[b.rnd.Int(len(candidates)-1)]
	nid, _ := b.forest.lookup(pos + b.strides[d])
	b.forest.cells[id].bounds = b.forest.cells[id].bounds.Set(d, false)
	b.forest.merge(id, nid)
	b.stats.ForcedOpen++
	b.stats.Merges++
	return true
}

// writeSet writes every cell of root's set, leaves first.
func (b *Builder) writeSet(root cellID) {
	stack := []cellID{root}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if kids := b.forest.children(top); len(kids) > 0 {
			stack = append(stack, kids[0])
			continue
		}
		stack = stack[:len(stack)-1]

		c := b.forest.cells[top]
		b.world.bounds[c.pos] = c.bounds
		b.forest.detachLeaf(top)
		b.forest.release(top)
	}
}
