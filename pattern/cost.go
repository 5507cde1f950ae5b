package pattern

// Cost ranks proofs for comparison: a bare Threat costs 1, a Threat with
// a sub-pattern costs 1 plus the sub's cost, and a Fork costs 1 plus a
// quadratic penalty on its tine count plus the sum of its tines' costs.
// The quadratic term heavily penalises wide forks, so proofs prefer few
// deep lines over many shallow ones.
func (p Pattern) Cost() int {
	switch p.kind {
	case KindThreat:
		if p.sub == nil {
			return 1
		}
		return 1 + p.sub.Cost()
	case KindFork:
		n := len(p.tines)
		sum := 0
		for _, t := range p.tines {
			sum += t.Cost()
		}
		return 1 + 100*n*n + sum
	default:
		return 0
	}
}
