// Package pathfind provides a grid traversal graph with capability-gated
// edges and interchangeable search strategies.
package pathfind

import (
	"fmt"
	"strings"
)

// Motility is a set of locomotion capabilities. Nodes, edges and agents all
// carry one; movement is allowed when the sets overlap.
type Motility uint16

const (
	Land Motility = 1 << iota
	Swim
	Climb
	Fly
	Burrow
	Incorporeal

	// Unconstrained skips all capability checks. A node or edge tagged with it
	// admits every agent, and an agent carrying it ignores node and edge masks.
	Unconstrained Motility = 1 << 15
)

// None blocks every agent.
const None Motility = 0

var motilityNames = []struct {
	m    Motility
	name string
}{
	{Land, "land"},
	{Swim, "swim"},
	{Climb, "climb"},
	{Fly, "fly"},
	{Burrow, "burrow"},
	{Incorporeal, "incorporeal"},
	{Unconstrained, "unconstrained"},
}

// Union returns the combined capabilities of m and o.
func (m Motility) Union(o Motility) Motility { return m | o }

// Intersect returns the capabilities shared by m and o.
func (m Motility) Intersect(o Motility) Motility { return m & o }

// Subtract returns m with every capability of o removed.
func (m Motility) Subtract(o Motility) Motility { return m &^ o }

// Contains reports whether m and o share at least one capability.
func (m Motility) Contains(o Motility) bool { return m&o != 0 }

// Has reports whether m carries every capability in o.
func (m Motility) Has(o Motility) bool { return m&o == o }

// IsUnconstrained reports whether m carries the Unconstrained sentinel.
func (m Motility) IsUnconstrained() bool { return m&Unconstrained != 0 }

// Allows reports whether an agent with motility agent may use something
// tagged with m.
func (m Motility) Allows(agent Motility) bool {
	if m.IsUnconstrained() || agent.IsUnconstrained() {
		return true
	}
	return m.Contains(agent)
}

func (m Motility) String() string {
	if m == None {
		return "none"
	}
	var parts []string
	for _, n := range motilityNames {
		if m&n.m != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseMotility converts capability names such as "land" or "fly" into a
// Motility. Names are case-insensitive.
func ParseMotility(names ...string) (Motility, error) {
	var m Motility
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "none" || name == "" {
			continue
		}
		found := false
		for _, n := range motilityNames {
			if n.name == name {
				m |= n.m
				found = true
				break
			}
		}
		if !found {
			return None, fmt.Errorf("unknown motility %q", raw)
		}
	}
	return m, nil
}

// Shape selects which neighbors an agent may step to.
type Shape uint8

const (
	FourWay Shape = 1 << iota
	EightWay
	// AllNeighbors is the union of every connectivity flag.
	AllNeighbors = FourWay | EightWay
)

// Directions returns the neighbor directions implied by s. A zero Shape
// behaves like AllNeighbors.
func (s Shape) Directions() []Direction {
	if s&EightWay != 0 || s == 0 {
		return Clockwise
	}
	return Cardinal
}

func (s Shape) String() string {
	switch {
	case s == 0 || s&EightWay != 0:
		return "eight-way"
	default:
		return "four-way"
	}
}

// ParseShape converts "four-way" or "eight-way" into a Shape. An empty name
// yields AllNeighbors.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "all", "eight-way", "eightway", "8":
		return AllNeighbors, nil
	case "four-way", "fourway", "4":
		return FourWay, nil
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Agent describes who is moving: its locomotion and its connectivity shape.
type Agent struct {
	Motility Motility
	Shape    Shape
}

// Walker is an eight-way land agent.
var Walker = Agent{Motility: Land, Shape: AllNeighbors}
