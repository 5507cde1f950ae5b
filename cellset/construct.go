package cellset

import "github.com/katalvlaran/hexlath/fixedbitset"

// Empty returns the empty cell set for a board of the given size.
func Empty(size int) (Set, error) {
	if err := validateSize(size); err != nil {
		return Set{}, err
	}
	bits, err := fixedbitset.New(size * size)
	if err != nil {
		return Set{}, err
	}
	return wrap(size, bits), nil
}

// Universe returns the cell set containing every cell of a board of the
// given size.
func Universe(size int) (Set, error) {
	if err := validateSize(size); err != nil {
		return Set{}, err
	}
	return wrap(size, geometryFor(size).universe), nil
}

// Top returns the cell set of the board's top edge (row 0).
func Top(size int) (Set, error) {
	if err := validateSize(size); err != nil {
		return Set{}, err
	}
	return wrap(size, geometryFor(size).top), nil
}

// Bottom returns the cell set of the board's bottom edge (row S-1).
func Bottom(size int) (Set, error) {
	if err := validateSize(size); err != nil {
		return Set{}, err
	}
	return wrap(size, geometryFor(size).bottom), nil
}

// Left returns the cell set of the board's left edge (column 0).
func Left(size int) (Set, error) {
	if err := validateSize(size); err != nil {
		return Set{}, err
	}
	return wrap(size, geometryFor(size).left), nil
}

// Right returns the cell set of the board's right edge (column S-1).
func Right(size int) (Set, error) {
	if err := validateSize(size); err != nil {
		return Set{}, err
	}
	return wrap(size, geometryFor(size).right), nil
}

// FromList returns the cell set containing exactly the given cell
// indices, each of which must lie in [0, S·S).
func FromList(size int, idx []int) (Set, error) {
	if err := validateSize(size); err != nil {
		return Set{}, err
	}
	bits, err := fixedbitset.FromList(size*size, idx)
	if err != nil {
		return Set{}, err
	}
	return wrap(size, bits), nil
}

// Single returns the cell set containing exactly cell i.
func Single(size, i int) (Set, error) {
	return FromList(size, []int{i})
}
