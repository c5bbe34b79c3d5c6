package geometry

import (
	"github.com/katalvlaran/mpscircuit/basis"
	"github.com/katalvlaran/mpscircuit/simerr"
)

func isWrapping(bc basis.BoundaryCondition) bool {
	return bc == basis.Periodic || bc == basis.PeriodicNNN
}

// wrapAdd computes 1-based position p shifted by delta, wrapping modulo L.
func wrapAdd(p, delta, L int) int {
	v := ((p-1+delta)%L + L) % L
	return v + 1
}

// staircaseSites is shared by StaircaseRight, StaircaseLeft and Pointer:
// all three resolve to [p, target] where target is p shifted by signedStride
// (positive for "right"/forward, negative for "left"/backward).
func staircaseSites(op string, p, signedStride, L int, bc basis.BoundaryCondition) ([]int, error) {
	if isWrapping(bc) {
		return []int{p, wrapAdd(p, signedStride, L)}, nil
	}
	target := p + signedStride
	if target < 1 || target > L {
		return nil, simerr.InvalidArgument(op, "position %d with stride %d has no target within [1,%d] under open boundary conditions", p, signedStride, L)
	}
	return []int{p, target}, nil
}

// cycleBound is the modulus Advance cycles a staircase position over:
// 1..L under periodic BC, 1..L-1 under open BC (spec.md §4.2).
func cycleBound(L int, bc basis.BoundaryCondition) int {
	if isWrapping(bc) {
		return L
	}
	return L - 1
}

// advancePosition increments (dir=+1) or decrements (dir=-1) p by one step
// within the cycle bound, wrapping at the ends.
func advancePosition(p, dir, L int, bc basis.BoundaryCondition) int {
	bound := cycleBound(L, bc)
	v := ((p-1+dir)%bound + bound) % bound
	return v + 1
}

// StaircaseRight walks forward across the chain one position each Advance;
// stride is the offset from the position to the element's second site.
type StaircaseRight struct {
	pos    int
	stride int
}

// NewStaircaseRight builds a StaircaseRight starting at start with the
// given stride (stride=1 matches the spec's default).
func NewStaircaseRight(start, stride int) *StaircaseRight {
	return &StaircaseRight{pos: start, stride: stride}
}

func (g *StaircaseRight) Kind() Kind    { return KindStaircaseRight }
func (g *StaircaseRight) Position() int { return g.pos }
func (g *StaircaseRight) Stride() int   { return g.stride }

func (g *StaircaseRight) Elements(L int, bc basis.BoundaryCondition) ([][]int, error) {
	pair, err := staircaseSites("geometry.StaircaseRight.Elements", g.pos, g.stride, L, bc)
	if err != nil {
		return nil, err
	}
	return [][]int{pair}, nil
}

func (g *StaircaseRight) Advance(L int, bc basis.BoundaryCondition) error {
	g.pos = advancePosition(g.pos, +1, L, bc)
	return nil
}

// Clone returns an independent copy, so a Circuit is safe to duplicate
// across concurrent trajectories (spec.md §5, §9).
func (g *StaircaseRight) Clone() *StaircaseRight {
	return &StaircaseRight{pos: g.pos, stride: g.stride}
}

// StaircaseLeft walks backward across the chain one position each Advance;
// stride is the offset from the position back to the element's second site.
type StaircaseLeft struct {
	pos    int
	stride int
}

// NewStaircaseLeft builds a StaircaseLeft starting at start with the given
// stride.
func NewStaircaseLeft(start, stride int) *StaircaseLeft {
	return &StaircaseLeft{pos: start, stride: stride}
}

func (g *StaircaseLeft) Kind() Kind    { return KindStaircaseLeft }
func (g *StaircaseLeft) Position() int { return g.pos }
func (g *StaircaseLeft) Stride() int   { return g.stride }

func (g *StaircaseLeft) Elements(L int, bc basis.BoundaryCondition) ([][]int, error) {
	pair, err := staircaseSites("geometry.StaircaseLeft.Elements", g.pos, -g.stride, L, bc)
	if err != nil {
		return nil, err
	}
	return [][]int{pair}, nil
}

func (g *StaircaseLeft) Advance(L int, bc basis.BoundaryCondition) error {
	g.pos = advancePosition(g.pos, -1, L, bc)
	return nil
}

// Clone returns an independent copy.
func (g *StaircaseLeft) Clone() *StaircaseLeft {
	return &StaircaseLeft{pos: g.pos, stride: g.stride}
}

// Pointer behaves like StaircaseRight but never advances on its own;
// Move is the only way to mutate its position.
type Pointer struct {
	pos    int
	stride int
}

// NewPointer builds a Pointer starting at start with stride 1.
func NewPointer(start int) *Pointer {
	return &Pointer{pos: start, stride: 1}
}

func (g *Pointer) Kind() Kind    { return KindPointer }
func (g *Pointer) Position() int { return g.pos }

func (g *Pointer) Elements(L int, bc basis.BoundaryCondition) ([][]int, error) {
	pair, err := staircaseSites("geometry.Pointer.Elements", g.pos, g.stride, L, bc)
	if err != nil {
		return nil, err
	}
	return [][]int{pair}, nil
}

// Move shifts the pointer by dir (+1 or -1), wrapping exactly like a
// staircase's Advance. Any other dir is InvalidArgument.
func (g *Pointer) Move(dir, L int, bc basis.BoundaryCondition) error {
	if dir != 1 && dir != -1 {
		return simerr.InvalidArgument("geometry.Pointer.Move", "dir must be +1 or -1, got %d", dir)
	}
	g.pos = advancePosition(g.pos, dir, L, bc)
	return nil
}

// Clone returns an independent copy.
func (g *Pointer) Clone() *Pointer {
	return &Pointer{pos: g.pos, stride: g.stride}
}
