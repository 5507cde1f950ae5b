package cellset

// Neighbors returns the set of cells adjacent (by Hex adjacency) to any
// cell in s, minus s itself. Hex adjacency on this left-leaning rhombus
// gives each interior cell six neighbors at linear-index offsets
// {-S, -S+1, -1, +1, +S-1, +S}; the formula below is the set-algebra
// form of that adjacency, after which the members of s are removed:
//
//	neighbors(s) = (s >> S)
//	             | (((s >> (S-1)) | (s << 1))  & ~left())
//	             | (((s << (S-1)) | (s >> 1))  & ~right())
//	             | (s << S)
//
// The +1 and -S+1 offsets move a cell one column to the right, so a cell
// in the last column would wrap into column 0; ~left() drops those. The
// -1 and +S-1 offsets move one column to the left, so a cell in column 0
// would wrap into the last column; ~right() drops those.
func (s Set) Neighbors() Set {
	size := s.size
	g := geometryFor(size)
	notLeft := wrap(size, g.left.Not())
	notRight := wrap(size, g.right.Not())

	up, err := shiftRsh(s, size)
	mustNoErr(err)
	down, err := shiftLsh(s, size)
	mustNoErr(err)

	rsSm1, err := shiftRsh(s, size-1)
	mustNoErr(err)
	ls1, err := shiftLsh(s, 1)
	mustNoErr(err)
	upperDiag := rsSm1.Union(ls1).Intersect(notLeft)

	lsSm1, err := shiftLsh(s, size-1)
	mustNoErr(err)
	rs1, err := shiftRsh(s, 1)
	mustNoErr(err)
	lowerDiag := lsSm1.Union(rs1).Intersect(notRight)

	return up.Union(upperDiag).Union(lowerDiag).Union(down).Diff(s)
}

// FastNeighbors computes the same result as Neighbors but composes the
// shifts, complements, unions, and intersections using the unmasked
// (Fast*) primitives throughout, masking only once at the very end. It is
// the performance-oriented path for repeated neighbor expansion;
// Neighbors and FastNeighbors are cross-checked against each other in
// tests.
func (s Set) FastNeighbors() Set {
	size := s.size
	g := geometryFor(size)
	notLeft := g.left.FastNot()
	notRight := g.right.FastNot()

	up := s.bits.FastRsh(size)
	down := s.bits.FastLsh(size)

	upperDiag := s.bits.FastRsh(size - 1).FastUnion(s.bits.FastLsh(1)).FastIntersect(notLeft)
	lowerDiag := s.bits.FastLsh(size - 1).FastUnion(s.bits.FastRsh(1)).FastIntersect(notRight)

	raw := up.FastUnion(upperDiag).FastUnion(lowerDiag).FastUnion(down)
	return wrap(size, raw.Clean()).Diff(s)
}

func shiftRsh(s Set, k int) (Set, error) {
	if k < 0 {
		k = 0
	}
	b, err := s.bits.Rsh(k)
	return wrap(s.size, b), err
}

func shiftLsh(s Set, k int) (Set, error) {
	if k < 0 {
		k = 0
	}
	b, err := s.bits.Lsh(k)
	return wrap(s.size, b), err
}
