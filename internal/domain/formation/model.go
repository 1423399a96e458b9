package formation

import (
	"errors"
	"fmt"
	"strings"
)

// TeamSize is the number of players fielded in an XI.
const TeamSize = 11

const DefaultName = "4-3-3"

var ErrInvalidRequirement = errors.New("invalid formation requirement")

// Requirement asks for Count players whose position tags contain Label.
type Requirement struct {
	Label string
	Count int
}

// Requirements is an ordered table. The order is part of the selection
// contract: a player eligible for two labels goes to the earlier one.
type Requirements struct {
	items []Requirement
}

func NewRequirements(items ...Requirement) (Requirements, error) {
	seen := make(map[string]struct{}, len(items))
	out := make([]Requirement, 0, len(items))
	for i, item := range items {
		label := strings.TrimSpace(item.Label)
		if label == "" {
			return Requirements{}, fmt.Errorf("%w: empty label at index %d", ErrInvalidRequirement, i)
		}
		if item.Count < 0 {
			return Requirements{}, fmt.Errorf("%w: label=%s count=%d must be >= 0", ErrInvalidRequirement, label, item.Count)
		}
		if _, dup := seen[label]; dup {
			return Requirements{}, fmt.Errorf("%w: duplicate label %s", ErrInvalidRequirement, label)
		}
		seen[label] = struct{}{}
		out = append(out, Requirement{Label: label, Count: item.Count})
	}

	return Requirements{items: out}, nil
}

func MustRequirements(items ...Requirement) Requirements {
	reqs, err := NewRequirements(items...)
	if err != nil {
		panic(err)
	}
	return reqs
}

// Items returns a copy of the table in canonical order.
func (r Requirements) Items() []Requirement {
	return append([]Requirement(nil), r.items...)
}

func (r Requirements) Len() int {
	return len(r.items)
}

func (r Requirements) Total() int {
	total := 0
	for _, item := range r.items {
		total += item.Count
	}
	return total
}

// CountFor returns the headcount for label, or 0 when the label is absent.
func (r Requirements) CountFor(label string) int {
	for _, item := range r.items {
		if item.Label == label {
			return item.Count
		}
	}
	return 0
}

// Formation is a named requirement table.
type Formation struct {
	Name         string
	Requirements Requirements
}

var fourThreeThree = Formation{
	Name: DefaultName,
	Requirements: MustRequirements(
		Requirement{Label: "GK", Count: 1},
		Requirement{Label: "RB", Count: 1},
		Requirement{Label: "CB", Count: 2},
		Requirement{Label: "LB", Count: 1},
		Requirement{Label: "CDM", Count: 1},
		Requirement{Label: "CM", Count: 2},
		Requirement{Label: "LW", Count: 1},
		Requirement{Label: "ST", Count: 1},
		Requirement{Label: "RW", Count: 1},
	),
}

func Default() Formation {
	return fourThreeThree
}

// Resolve maps a requested formation name to a table. Only 4-3-3 exists, so
// any other name falls back to it; honoured reports whether the request matched.
func Resolve(name string) (f Formation, honoured bool) {
	name = strings.TrimSpace(name)
	return fourThreeThree, name == "" || name == DefaultName
}
