package pattern

// MinimumFork returns the cheapest solid sub-fork of p, considering
// every non-singleton subset (2..k tines) of p's tines. p itself must
// be a solid Fork; if it is not, or if no candidate subset is solid,
// MinimumFork fails with ErrIllegalState.
func (p Pattern) MinimumFork() (Pattern, error) {
	if p.kind != KindFork || !p.Solid() {
		return Pattern{}, ErrIllegalState
	}

	k := len(p.tines)
	var best Pattern
	found := false

	for mask := 1; mask < (1 << uint(k)); mask++ {
		if popcount(mask) < 2 {
			continue
		}
		sub := make([]Pattern, 0, popcount(mask))
		for i := 0; i < k; i++ {
			if mask&(1<<uint(i)) != 0 {
				sub = append(sub, p.tines[i])
			}
		}
		candidate := NewFork(sub)
		if !candidate.Solid() {
			continue
		}
		if !found || candidate.Cost() < best.Cost() {
			best = candidate
			found = true
		}
	}

	if !found {
		return Pattern{}, ErrIllegalState
	}
	return best, nil
}

func popcount(mask int) int {
	n := 0
	for mask != 0 {
		mask &= mask - 1
		n++
	}
	return n
}
