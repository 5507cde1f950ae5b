package pattern

// Solid reports whether p is a solid Fork: the intersection of its
// tines' bodies is empty, meaning no single cell belongs to every tine,
// so no one opponent move can neutralise all of them at once. Only
// solid forks are valid opponent-threat witnesses. Non-Fork patterns
// are vacuously solid: a lone Threat has no sibling tines to share a
// cell with.
func (p Pattern) Solid() bool {
	if p.kind != KindFork {
		return true
	}
	if len(p.tines) == 0 {
		return true
	}
	common := p.tines[0].body
	for _, t := range p.tines[1:] {
		common = common.Intersect(t.body)
	}
	return common.None()
}
