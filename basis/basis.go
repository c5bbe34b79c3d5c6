package basis

import "github.com/katalvlaran/mpscircuit/simerr"

// BoundaryCondition selects how physical sites map onto the MPS chain.
type BoundaryCondition int

const (
	// Open is the identity mapping: physical site i sits at RAM index i.
	Open BoundaryCondition = iota
	// Periodic is the folded mapping [1, L, 2, L-1, ...]; requires even L.
	Periodic
	// PeriodicNNN is the outward-from-middle folded mapping, friendly to
	// next-nearest-neighbor geometries under periodic boundary conditions.
	PeriodicNNN
)

// String renders the boundary condition name used in error messages.
func (bc BoundaryCondition) String() string {
	switch bc {
	case Open:
		return "open"
	case Periodic:
		return "periodic"
	case PeriodicNNN:
		return "periodic_nnn"
	default:
		return "unknown"
	}
}

// Mapping is the bidirectional, 1-based bijection between physical site
// labels (1..L) and RAM indices (1..L). PhyToRAM and RAMToPhy are always
// mutual inverses and permutations of 1..L.
type Mapping struct {
	L        int
	BC       BoundaryCondition
	ramToPhy []int // 1-based: ramToPhy[ram-1] == phy
	phyToRam []int // 1-based: phyToRam[phy-1] == ram
}

// New builds the Mapping for L sites under bc.
func New(L int, bc BoundaryCondition) (*Mapping, error) {
	if L < 2 {
		return nil, simerr.InvalidArgument("basis.New", "L must be >= 2, got %d", L)
	}

	var ramToPhy []int
	switch bc {
	case Open:
		ramToPhy = identity(L)
	case Periodic:
		if L%2 != 0 {
			return nil, simerr.InvalidArgument("basis.New", "periodic boundary conditions require even L, got %d", L)
		}
		ramToPhy = folded(L)
	case PeriodicNNN:
		ramToPhy = outwardFromMiddle(L)
	default:
		return nil, simerr.InvalidArgument("basis.New", "unknown boundary condition %v", bc)
	}

	phyToRam := invert(ramToPhy)
	return &Mapping{L: L, BC: bc, ramToPhy: ramToPhy, phyToRam: phyToRam}, nil
}

// RAMToPhy returns the physical site occupying RAM index ram (1-based).
func (m *Mapping) RAMToPhy(ram int) (int, error) {
	if ram < 1 || ram > m.L {
		return 0, simerr.InvalidArgument("basis.Mapping.RAMToPhy", "ram index %d out of range [1,%d]", ram, m.L)
	}
	return m.ramToPhy[ram-1], nil
}

// PhyToRAM returns the RAM index holding physical site phy (1-based).
func (m *Mapping) PhyToRAM(phy int) (int, error) {
	if phy < 1 || phy > m.L {
		return 0, simerr.InvalidArgument("basis.Mapping.PhyToRAM", "physical site %d out of range [1,%d]", phy, m.L)
	}
	return m.phyToRam[phy-1], nil
}

// Validate checks that PhyToRAM and RAMToPhy remain mutual inverse
// permutations of 1..L. Every constructor in this package already
// guarantees this; Validate exists for test suites and callers who build
// a Mapping by hand.
func (m *Mapping) Validate() error {
	seen := make([]bool, m.L+1)
	for ram := 1; ram <= m.L; ram++ {
		phy, err := m.RAMToPhy(ram)
		if err != nil {
			return err
		}
		if phy < 1 || phy > m.L || seen[phy] {
			return simerr.Internal("basis.Mapping.Validate", "ramToPhy is not a permutation of 1..%d", m.L)
		}
		seen[phy] = true

		back, err := m.PhyToRAM(phy)
		if err != nil {
			return err
		}
		if back != ram {
			return simerr.Internal("basis.Mapping.Validate", "PhyToRAM(RAMToPhy(%d)) = %d, want %d", ram, back, ram)
		}
	}
	return nil
}

func identity(L int) []int {
	order := make([]int, L)
	for i := range order {
		order[i] = i + 1
	}
	return order
}

// folded produces the periodic-BC RAM order [1, L, 2, L-1, 3, L-2, ...].
func folded(L int) []int {
	order := make([]int, L)
	for k := 1; k <= L; k++ {
		if k%2 == 1 {
			order[k-1] = (k + 1) / 2
		} else {
			order[k-1] = L - k/2 + 1
		}
	}
	return order
}

// outwardFromMiddle implements the glossary's "outward-from-middle
// permutation": starting at mid = L/2 and right = mid+1, repeatedly append
// left, left-1, then right, advancing the cursors, until both leave 1..L.
func outwardFromMiddle(L int) []int {
	mid := L / 2
	left := mid
	right := mid + 1

	order := make([]int, 0, L)
	for left >= 1 || right <= L {
		if left >= 1 {
			order = append(order, left)
			left--
		}
		if left >= 1 {
			order = append(order, left)
			left--
		}
		if right <= L {
			order = append(order, right)
			right++
		}
	}
	return order
}

func invert(ramToPhy []int) []int {
	L := len(ramToPhy)
	phyToRam := make([]int, L)
	for ram, phy := range ramToPhy {
		phyToRam[phy-1] = ram + 1
	}
	return phyToRam
}
