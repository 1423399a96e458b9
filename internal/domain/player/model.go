package player

import (
	"fmt"
	"strings"
)

const (
	MinRating = 0
	MaxRating = 99
)

// Player is an imported sofifa record. Records are read-only once imported.
type Player struct {
	ID            int64
	PlayerURL     string
	ShortName     string
	LongName      string
	Age           int
	ClubName      string
	LeagueName    string
	Nationality   string
	Positions     string
	Overall       int
	Potential     int
	ValueEUR      float64
	RealFace      string
	RealFaceLocal string
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if strings.TrimSpace(p.ShortName) == "" {
		return fmt.Errorf("player short name is required")
	}
	if strings.TrimSpace(p.LongName) == "" {
		return fmt.Errorf("player long name is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("player age must be >= 0")
	}
	if p.Overall < MinRating || p.Overall > MaxRating {
		return fmt.Errorf("player overall must be within %d..%d, got %d", MinRating, MaxRating, p.Overall)
	}
	if p.Potential < MinRating || p.Potential > MaxRating {
		return fmt.Errorf("player potential must be within %d..%d, got %d", MinRating, MaxRating, p.Potential)
	}
	if p.ValueEUR < 0 {
		return fmt.Errorf("player value must be >= 0")
	}

	return nil
}

// HasPosition reports whether label occurs anywhere in the raw tag string.
// "CB" therefore also matches "LCB" or "RCB"; callers rely on this.
func (p Player) HasPosition(label string) bool {
	return strings.Contains(p.Positions, label)
}

// PositionTags splits the tag string, e.g. "RW, ST, CF" -> [RW ST CF].
func (p Player) PositionTags() []string {
	parts := strings.Split(p.Positions, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}

func (p Player) HasLocalImage() bool {
	return strings.TrimSpace(p.RealFaceLocal) != ""
}
