package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/player-scout/internal/domain/formation"
	"github.com/riskibarqy/player-scout/internal/domain/player"
	"github.com/riskibarqy/player-scout/internal/infrastructure/repository/memory"
)

func intPtr(v int) *int { return &v }

func newSeededPlayerService() *PlayerService {
	return NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()), PaginationConfig{}, nil)
}

func TestPlayerService_Filter(t *testing.T) {
	t.Parallel()

	service := newSeededPlayerService()
	page, err := service.Filter(context.Background(), FilterInput{
		LeagueName: "premier",
		Positions:  "CB",
		AgeMax:     intPtr(30),
	}, PageRequest{})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if page.Total == 0 {
		t.Fatalf("expected matches")
	}
	for _, p := range page.Items {
		if p.LeagueName != "Premier League" || !p.HasPosition("CB") || p.Age > 30 {
			t.Fatalf("player %d does not satisfy the filter: %+v", p.ID, p)
		}
	}
}

func TestPlayerService_Filter_InvalidRanges(t *testing.T) {
	t.Parallel()

	service := newSeededPlayerService()
	cases := []FilterInput{
		{AgeMin: intPtr(-5)},
		{AgeMin: intPtr(30), AgeMax: intPtr(20)},
		{OverallMax: intPtr(120)},
		{OverallMin: intPtr(90), OverallMax: intPtr(80)},
	}
	for _, input := range cases {
		if _, err := service.Filter(context.Background(), input, PageRequest{}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestPlayerService_Search(t *testing.T) {
	t.Parallel()

	service := newSeededPlayerService()
	page, err := service.Search(context.Background(), "lionel", PageRequest{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if page.Total != 1 || page.Items[0].ID != 158023 {
		t.Fatalf("expected only Messi to match long name, got %+v", page.Items)
	}

	all, err := service.Search(context.Background(), "  ", PageRequest{PageSize: 100})
	if err != nil {
		t.Fatalf("search all: %v", err)
	}
	if all.Total != len(memory.SeedPlayers()) {
		t.Fatalf("empty query should list everything: got %d", all.Total)
	}
}

func TestPlayerService_TopK(t *testing.T) {
	t.Parallel()

	service := newSeededPlayerService()
	items, err := service.TopK(context.Background(), TopKInput{K: 3, Positions: "ST"})
	if err != nil {
		t.Fatalf("top-k: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 players, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Overall < items[i].Overall {
			t.Fatalf("top-k not sorted by overall desc: %+v", items)
		}
	}

	defaults, err := service.TopK(context.Background(), TopKInput{})
	if err != nil {
		t.Fatalf("top-k defaults: %v", err)
	}
	if len(defaults) != DefaultTopK {
		t.Fatalf("expected default k=%d, got %d", DefaultTopK, len(defaults))
	}

	if _, err := service.TopK(context.Background(), TopKInput{K: MaxTopK + 1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for k over max, got %v", err)
	}
}

func TestPlayerService_TopByCriteria(t *testing.T) {
	t.Parallel()

	service := newSeededPlayerService()
	items, err := service.TopByCriteria(context.Background(), TopByCriteriaInput{Criteria: "nationality", Value: "brazil", K: 5})
	if err != nil {
		t.Fatalf("top by criteria: %v", err)
	}
	for _, p := range items {
		if p.Nationality != "Brazil" {
			t.Fatalf("unexpected nationality %q", p.Nationality)
		}
	}

	if _, err := service.TopByCriteria(context.Background(), TopByCriteriaInput{Criteria: "height"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown criteria, got %v", err)
	}

	overall, err := service.TopByCriteria(context.Background(), TopByCriteriaInput{Value: "ignored", K: 1})
	if err != nil {
		t.Fatalf("top by overall: %v", err)
	}
	if len(overall) != 1 || overall[0].Overall != 91 {
		t.Fatalf("expected a 91 rated player, got %+v", overall)
	}
}

func TestPlayerService_BestTeam(t *testing.T) {
	t.Parallel()

	service := newSeededPlayerService()
	result, err := service.BestTeam(context.Background(), BestTeamInput{})
	if err != nil {
		t.Fatalf("best team: %v", err)
	}
	if !result.Honoured || result.Formation != formation.DefaultName {
		t.Fatalf("unexpected formation: %+v", result)
	}
	if len(result.Picks) != formation.TeamSize {
		t.Fatalf("expected %d picks, got %d", formation.TeamSize, len(result.Picks))
	}
	if result.Picks[0].Position != "GK" || result.Picks[0].Player.ID != 192119 {
		t.Fatalf("expected Courtois in goal, got %+v", result.Picks[0])
	}

	seen := make(map[int64]bool, len(result.Picks))
	for _, pick := range result.Picks {
		if seen[pick.Player.ID] {
			t.Fatalf("player %d picked twice", pick.Player.ID)
		}
		seen[pick.Player.ID] = true
	}
}

func TestPlayerService_BestTeam_FallsBackForUnknownFormation(t *testing.T) {
	t.Parallel()

	service := newSeededPlayerService()
	result, err := service.BestTeam(context.Background(), BestTeamInput{Formation: "3-5-2", LeagueName: "la liga"})
	if err != nil {
		t.Fatalf("best team: %v", err)
	}
	if result.Honoured || result.Requested != "3-5-2" || result.Formation != formation.DefaultName {
		t.Fatalf("unexpected formation resolution: %+v", result)
	}
	for _, pick := range result.Picks {
		if pick.Player.LeagueName != "La Liga" {
			t.Fatalf("picked player outside the filter: %+v", pick.Player)
		}
	}
}

func TestPlayerService_BestTeam_TiesPreferLowerID(t *testing.T) {
	t.Parallel()

	repo := memory.NewPlayerRepository([]player.Player{
		{ID: 30, ShortName: "C", LongName: "C", Positions: "GK", Overall: 80},
		{ID: 10, ShortName: "A", LongName: "A", Positions: "GK", Overall: 80},
		{ID: 20, ShortName: "B", LongName: "B", Positions: "GK", Overall: 80},
	})
	service := NewPlayerService(repo, PaginationConfig{}, nil)

	result, err := service.BestTeam(context.Background(), BestTeamInput{})
	if err != nil {
		t.Fatalf("best team: %v", err)
	}
	if len(result.Picks) == 0 || result.Picks[0].Player.ID != 10 {
		t.Fatalf("expected id 10 in goal, got %+v", result.Picks)
	}
}
