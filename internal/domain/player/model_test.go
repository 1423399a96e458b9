package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_Validate(t *testing.T) {
	valid := Player{ID: 158023, ShortName: "L. Messi", LongName: "Lionel Andrés Messi Cuccittini", Age: 33, Overall: 93, Potential: 93}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Player)
	}{
		{name: "zero id", mutate: func(p *Player) { p.ID = 0 }},
		{name: "empty short name", mutate: func(p *Player) { p.ShortName = " " }},
		{name: "empty long name", mutate: func(p *Player) { p.LongName = "" }},
		{name: "negative age", mutate: func(p *Player) { p.Age = -1 }},
		{name: "overall above bound", mutate: func(p *Player) { p.Overall = 100 }},
		{name: "negative potential", mutate: func(p *Player) { p.Potential = -3 }},
		{name: "negative value", mutate: func(p *Player) { p.ValueEUR = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestPlayer_HasPositionUsesSubstring(t *testing.T) {
	p := Player{Positions: "LCB, CDM"}

	assert.True(t, p.HasPosition("CB"))
	assert.True(t, p.HasPosition("CDM"))
	assert.True(t, p.HasPosition("CD"))
	assert.False(t, p.HasPosition("ST"))
	assert.Equal(t, []string{"LCB", "CDM"}, p.PositionTags())
}

func TestFilter_Matches(t *testing.T) {
	p := Player{
		ShortName:   "Sergio Ramos",
		LongName:    "Sergio Ramos García",
		ClubName:    "Real Madrid",
		LeagueName:  "Spain Primera Division",
		Nationality: "Spain",
		Positions:   "CB",
		Age:         34,
		Overall:     89,
	}
	ageMin, ageMax := 30, 35
	overallTooHigh := 90

	assert.True(t, Filter{}.Matches(p))
	assert.True(t, Filter{LeagueName: "spain"}.Matches(p))
	assert.True(t, Filter{Name: "garcía"}.Matches(p))
	assert.True(t, Filter{AgeMin: &ageMin, AgeMax: &ageMax}.Matches(p))
	assert.False(t, Filter{OverallMin: &overallTooHigh}.Matches(p))
	assert.False(t, Filter{Nationality: "Argentina"}.Matches(p))
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Positions: "CB"}.IsZero())
}
