// Package rules holds the static adjacency rule table and validates
// geometric contacts against it.
package rules

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/floorplan/layout"
	"github.com/katalvlaran/floorplan/roomgraph"
)

// Reason strings attached to verdicts.
const (
	ReasonPreferred = "Preferred connection"
	ReasonNeutral   = "Neutral connection"
)

// Rule describes how one room type relates to the others.
type Rule struct {
	// Anchor marks the type placed first when present.
	Anchor bool
	// External marks outdoor types.
	External bool
	// AspectRatio is the preferred width/height ratio.
	AspectRatio float64
	// Prefer maps neighbour types to a preference weight.
	Prefer map[string]int
	// Forbid lists types this one must not touch.
	Forbid []string
}

// Forbids reports whether other is in the forbid list.
func (r Rule) Forbids(other string) bool {
	for _, f := range r.Forbid {
		if f == other {
			return true
		}
	}

	return false
}

// Prefers reports whether other appears in the preference table.
func (r Rule) Prefers(other string) bool {
	_, ok := r.Prefer[other]

	return ok
}

// Lookup returns a copy of the rule for roomType, or the default rule
// (prefer living with weight 2, forbid nothing) for unknown types.
func Lookup(roomType string) Rule {
	r, ok := table[roomType]
	if !ok {
		r = defaultRule
	}
	cp := r
	cp.Prefer = make(map[string]int, len(r.Prefer))
	for k, v := range r.Prefer {
		cp.Prefer[k] = v
	}
	cp.Forbid = append([]string(nil), r.Forbid...)

	return cp
}

// Known reports whether roomType has its own rule.
func Known(roomType string) bool {
	_, ok := table[roomType]

	return ok
}

// Types returns every type with its own rule, sorted.
func Types() []string {
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Verdict is the outcome of checking one pair of types.
type Verdict struct {
	Valid  bool
	Kind   layout.EdgeKind
	Reason string
}

// Check applies the table to a pair of types: a forbid on either side
// rejects (a's list is consulted first), a preference on either side
// accepts as preferred, anything else is a neutral accept.
func Check(typeA, typeB string) Verdict {
	ra, rb := ruleOf(typeA), ruleOf(typeB)
	switch {
	case ra.Forbids(typeB):
		return Verdict{Kind: layout.Forbidden, Reason: fmt.Sprintf("%s should not touch %s", typeA, typeB)}
	case rb.Forbids(typeA):
		return Verdict{Kind: layout.Forbidden, Reason: fmt.Sprintf("%s should not touch %s", typeB, typeA)}
	case ra.Prefers(typeB) || rb.Prefers(typeA):
		return Verdict{Valid: true, Kind: layout.Preferred, Reason: ReasonPreferred}
	}

	return Verdict{Valid: true, Kind: layout.Neutral, Reason: ReasonNeutral}
}

func ruleOf(roomType string) Rule {
	if r, ok := table[roomType]; ok {
		return r
	}

	return defaultRule
}

// Validate partitions contacts into accepted and rejected edges, keeping
// input order within each list.
func Validate(contacts []roomgraph.Contact) (accepted, rejected []layout.AdjacencyEdge) {
	for _, c := range contacts {
		v := Check(c.TypeA, c.TypeB)
		e := layout.AdjacencyEdge{
			RoomA:   c.RoomA,
			RoomB:   c.RoomB,
			Valid:   v.Valid,
			Kind:    v.Kind,
			Reason:  v.Reason,
			Contact: c.Length,
		}
		if v.Valid {
			accepted = append(accepted, e)
		} else {
			rejected = append(rejected, e)
		}
	}

	return accepted, rejected
}
