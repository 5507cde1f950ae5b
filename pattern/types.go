package pattern

import "github.com/katalvlaran/hexlath/cellset"

// Kind discriminates a Pattern's variant.
type Kind int

const (
	// None is the absent/sentinel pattern: the zero value.
	None Kind = iota
	// KindThreat: claiming play wins, or reduces to sub.
	KindThreat
	// KindFork: any one of tines, unanswerable simultaneously.
	KindFork
)

// Pattern is the proof witness: None, a Threat, or a Fork. See
// NewThreat and NewFork for construction; Kind, Play, Body, Sub, and
// Tines observe the relevant fields for the pattern's actual variant.
type Pattern struct {
	kind  Kind
	play  int
	body  cellset.Set
	sub   *Pattern
	tines []Pattern
}

// Kind returns which variant p holds.
func (p Pattern) Kind() Kind { return p.kind }

// Play returns the claimed cell of a Threat. Meaningless for other
// kinds.
func (p Pattern) Play() int { return p.play }

// Body returns the pattern's footprint: for a Threat, play plus sub's
// body (if any); for a Fork, the union of its tines' bodies.
func (p Pattern) Body() cellset.Set { return p.body }

// Sub returns a Threat's sub-pattern, or nil if it has none or p is not
// a Threat.
func (p Pattern) Sub() *Pattern { return p.sub }

// Tines returns a Fork's alternative threats, or nil if p is not a
// Fork.
func (p Pattern) Tines() []Pattern { return p.tines }

// IsNone reports whether p is the absent sentinel.
func (p Pattern) IsNone() bool { return p.kind == None }
