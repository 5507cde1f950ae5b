package fixedbitset

// Elements returns the set's members in ascending order. Internally this
// is exactly the "repeatedly take Min, then clear it" procedure spec
// §4.2 specifies for enumeration, applied to a throwaway copy (Set is a
// value type, so this never mutates s).
func (s Set) Elements() []int {
	out := make([]int, 0, s.Count())
	cursor := s
	for {
		i, err := cursor.Min()
		if err != nil {
			break
		}
		out = append(out, i)
		_ = cursor.ResetBit(i)
	}
	return out
}

// ForEach calls f for every member in ascending order, stopping early if f
// returns false.
func (s Set) ForEach(f func(i int) bool) {
	cursor := s
	for {
		i, err := cursor.Min()
		if err != nil {
			return
		}
		if !f(i) {
			return
		}
		_ = cursor.ResetBit(i)
	}
}
