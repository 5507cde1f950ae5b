package cellset

// Union returns the union of s and other (same board size assumed).
func (s Set) Union(other Set) Set { return wrap(s.size, s.bits.Union(other.bits)) }

// Intersect returns the intersection of s and other.
func (s Set) Intersect(other Set) Set { return wrap(s.size, s.bits.Intersect(other.bits)) }

// Xor returns the symmetric difference of s and other.
func (s Set) Xor(other Set) Set { return wrap(s.size, s.bits.Xor(other.bits)) }

// Diff returns s with every member of other removed.
func (s Set) Diff(other Set) Set { return wrap(s.size, s.bits.Diff(other.bits)) }

// Not returns the complement of s within the board's cells.
func (s Set) Not() Set { return wrap(s.size, s.bits.Not()) }

// Any reports whether s has at least one member.
func (s Set) Any() bool { return s.bits.Any() }

// None reports whether s has no members.
func (s Set) None() bool { return s.bits.None() }

// All reports whether s contains every cell of the board.
func (s Set) All() bool { return s.bits.All() }

// Count returns the number of members.
func (s Set) Count() int { return s.bits.Count() }

// Test reports whether cell i is a member.
func (s Set) Test(i int) bool { return s.bits.Test(i) }

// Min returns the smallest member cell index.
func (s Set) Min() (int, error) { return s.bits.Min() }

// Max returns the largest member cell index.
func (s Set) Max() (int, error) { return s.bits.Max() }

// Equal reports whether s and other have the same membership.
func (s Set) Equal(other Set) bool { return s.bits.Equal(other.bits) }

// Elements returns the set's members in ascending order.
func (s Set) Elements() []int { return s.bits.Elements() }

// ForEach calls f for every member in ascending order.
func (s Set) ForEach(f func(i int) bool) { s.bits.ForEach(f) }

// SetBit sets cell i.
func (s *Set) SetBit(i int) error { return s.bits.SetBit(i) }

// ResetBit clears cell i.
func (s *Set) ResetBit(i int) error { return s.bits.ResetBit(i) }
