package pattern

import "github.com/katalvlaran/hexlath/cellset"

// NewThreat builds a Threat pattern: claiming play wins outright if sub
// is nil, or reduces to guaranteeing sub's connection if not. body must
// contain play; callers (the search) are trusted to pass a body that
// already does, since this is an internal construction helper, not a
// validated public entry point for untrusted input.
func NewThreat(play int, body cellset.Set, sub *Pattern) Pattern {
	return Pattern{kind: KindThreat, play: play, body: body, sub: sub}
}

// NewFork builds a Fork pattern from its tines; body is computed as the
// union of every tine's body.
func NewFork(tines []Pattern) Pattern {
	f := Pattern{kind: KindFork, tines: tines}
	f.body = unionBodies(tines)
	return f
}

func unionBodies(tines []Pattern) cellset.Set {
	var body cellset.Set
	for i, t := range tines {
		if i == 0 {
			body = t.body
			continue
		}
		body = body.Union(t.body)
	}
	return body
}
