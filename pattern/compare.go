package pattern

// Compare orders two proof patterns for the "cheapest winning pattern"
// choice search makes among the Threats it produces at one level: a
// smaller footprint (|body|) wins outright; tied footprints prefer the
// larger play index (the cell index closer to the end of board order);
// still-tied candidates prefer smaller cost. Compare returns a negative
// number if p sorts before other, zero if they are equivalent by all
// three criteria, and positive otherwise.
func (p Pattern) Compare(other Pattern) int {
	if d := p.body.Count() - other.body.Count(); d != 0 {
		return d
	}
	if d := other.play - p.play; d != 0 {
		return d
	}
	return p.Cost() - other.Cost()
}

// Less reports whether p strictly precedes other by Compare.
func (p Pattern) Less(other Pattern) bool {
	return p.Compare(other) < 0
}
