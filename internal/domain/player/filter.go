package player

import "strings"

// Matches evaluates the filter in memory with the same semantics the SQL
// repository applies.
func (f Filter) Matches(p Player) bool {
	if f.Name != "" && !containsFold(p.ShortName, f.Name) && !containsFold(p.LongName, f.Name) {
		return false
	}
	if !containsFold(p.ShortName, f.ShortName) ||
		!containsFold(p.LongName, f.LongName) ||
		!containsFold(p.ClubName, f.ClubName) ||
		!containsFold(p.LeagueName, f.LeagueName) ||
		!containsFold(p.Nationality, f.Nationality) ||
		!containsFold(p.Positions, f.Positions) {
		return false
	}
	if f.AgeMin != nil && p.Age < *f.AgeMin {
		return false
	}
	if f.AgeMax != nil && p.Age > *f.AgeMax {
		return false
	}
	if f.OverallMin != nil && p.Overall < *f.OverallMin {
		return false
	}
	if f.OverallMax != nil && p.Overall > *f.OverallMax {
		return false
	}
	return true
}

// IsZero reports whether the filter matches every player.
func (f Filter) IsZero() bool {
	return f.Name == "" && f.ShortName == "" && f.LongName == "" && f.ClubName == "" &&
		f.LeagueName == "" && f.Nationality == "" && f.Positions == "" &&
		f.AgeMin == nil && f.AgeMax == nil && f.OverallMin == nil && f.OverallMax == nil
}

func containsFold(value, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}
