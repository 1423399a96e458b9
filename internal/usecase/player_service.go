package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/player-scout/internal/domain/formation"
	"github.com/riskibarqy/player-scout/internal/domain/player"
	"github.com/riskibarqy/player-scout/internal/platform/logging"
)

const (
	DefaultTopK = 10
	MaxTopK     = 100
)

// Criteria names accepted by TopByCriteria.
const (
	CriteriaOverall     = "overall"
	CriteriaPosition    = "position"
	CriteriaNationality = "nationality"
	CriteriaLeague      = "league"
	CriteriaClub        = "club"
)

type FilterInput struct {
	ShortName   string
	LongName    string
	ClubName    string
	LeagueName  string
	Nationality string
	Positions   string
	AgeMin      *int
	AgeMax      *int
	OverallMin  *int
	OverallMax  *int
}

type TopKInput struct {
	K           int
	Positions   string
	Nationality string
	LeagueName  string
	ClubName    string
}

type TopByCriteriaInput struct {
	Criteria string
	Value    string
	K        int
}

type BestTeamInput struct {
	Formation   string
	LeagueName  string
	Nationality string
}

type BestTeamResult struct {
	// Formation is the table that was applied; Requested echoes the input.
	Formation string
	Requested string
	Honoured  bool
	Picks     []formation.Pick
}

type PlayerService struct {
	playerRepo player.Repository
	pagination PaginationConfig
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, pagination PaginationConfig, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		pagination: pagination.normalize(),
		logger:     logger,
	}
}

func (s *PlayerService) List(ctx context.Context, req PageRequest) (Page[player.Player], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	return s.page(ctx, player.Filter{}, req)
}

func (s *PlayerService) Filter(ctx context.Context, input FilterInput, req PageRequest) (Page[player.Player], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Filter")
	defer span.End()

	if err := validateRange("age", input.AgeMin, input.AgeMax, 0, -1); err != nil {
		return Page[player.Player]{}, err
	}
	if err := validateRange("overall", input.OverallMin, input.OverallMax, player.MinRating, player.MaxRating); err != nil {
		return Page[player.Player]{}, err
	}

	filter := player.Filter{
		ShortName:   strings.TrimSpace(input.ShortName),
		LongName:    strings.TrimSpace(input.LongName),
		ClubName:    strings.TrimSpace(input.ClubName),
		LeagueName:  strings.TrimSpace(input.LeagueName),
		Nationality: strings.TrimSpace(input.Nationality),
		Positions:   strings.TrimSpace(input.Positions),
		AgeMin:      input.AgeMin,
		AgeMax:      input.AgeMax,
		OverallMin:  input.OverallMin,
		OverallMax:  input.OverallMax,
	}

	return s.page(ctx, filter, req)
}

// Search matches q against short and long names. An empty q lists everything.
func (s *PlayerService) Search(ctx context.Context, q string, req PageRequest) (Page[player.Player], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Search")
	defer span.End()

	return s.page(ctx, player.Filter{Name: strings.TrimSpace(q)}, req)
}

func (s *PlayerService) TopK(ctx context.Context, input TopKInput) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TopK")
	defer span.End()

	k, err := resolveK(input.K)
	if err != nil {
		return nil, err
	}

	return s.top(ctx, player.Filter{
		Positions:   strings.TrimSpace(input.Positions),
		Nationality: strings.TrimSpace(input.Nationality),
		LeagueName:  strings.TrimSpace(input.LeagueName),
		ClubName:    strings.TrimSpace(input.ClubName),
	}, k)
}

func (s *PlayerService) TopByCriteria(ctx context.Context, input TopByCriteriaInput) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TopByCriteria")
	defer span.End()

	k, err := resolveK(input.K)
	if err != nil {
		return nil, err
	}

	criteria := strings.ToLower(strings.TrimSpace(input.Criteria))
	if criteria == "" {
		criteria = CriteriaOverall
	}
	value := strings.TrimSpace(input.Value)

	var filter player.Filter
	switch criteria {
	case CriteriaOverall:
	case CriteriaPosition:
		filter.Positions = value
	case CriteriaNationality:
		filter.Nationality = value
	case CriteriaLeague:
		filter.LeagueName = value
	case CriteriaClub:
		filter.ClubName = value
	default:
		return nil, fmt.Errorf("%w: unknown criteria %q", ErrInvalidInput, input.Criteria)
	}

	return s.top(ctx, filter, k)
}

func (s *PlayerService) GetByID(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByID")
	defer span.End()

	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	return item, nil
}

// BestTeam loads the filtered pool ordered by id, so equal ratings are
// resolved in favour of the lower id, and runs the greedy selector.
func (s *PlayerService) BestTeam(ctx context.Context, input BestTeamInput) (BestTeamResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.BestTeam")
	defer span.End()

	requested := strings.TrimSpace(input.Formation)
	team, honoured := formation.Resolve(requested)
	if !honoured {
		s.logger.DebugContext(ctx, "unsupported formation requested, using default",
			"requested", requested,
			"formation", team.Name,
		)
	}

	pool, err := s.playerRepo.List(ctx, player.Query{
		Filter: player.Filter{
			LeagueName:  strings.TrimSpace(input.LeagueName),
			Nationality: strings.TrimSpace(input.Nationality),
		},
		Sort: player.SortByID,
	})
	if err != nil {
		return BestTeamResult{}, fmt.Errorf("list best team candidates: %w", err)
	}

	if requested == "" {
		requested = formation.DefaultName
	}

	return BestTeamResult{
		Formation: team.Name,
		Requested: requested,
		Honoured:  honoured,
		Picks:     formation.SelectBestTeam(pool, team.Requirements),
	}, nil
}

func (s *PlayerService) page(ctx context.Context, filter player.Filter, req PageRequest) (Page[player.Player], error) {
	page, size, err := s.pagination.resolve(req)
	if err != nil {
		return Page[player.Player]{}, err
	}

	total, err := s.playerRepo.Count(ctx, filter)
	if err != nil {
		return Page[player.Player]{}, fmt.Errorf("count players: %w", err)
	}

	offset := (page - 1) * size
	if page > 1 && offset >= total {
		return Page[player.Player]{}, fmt.Errorf("%w: page %d is out of range", ErrNotFound, page)
	}

	items, err := s.playerRepo.List(ctx, player.Query{
		Filter: filter,
		Sort:   player.SortByID,
		Limit:  size,
		Offset: offset,
	})
	if err != nil {
		return Page[player.Player]{}, fmt.Errorf("list players: %w", err)
	}

	return Page[player.Player]{
		Items:    items,
		Page:     page,
		PageSize: size,
		Total:    total,
		HasNext:  offset+len(items) < total,
	}, nil
}

func (s *PlayerService) top(ctx context.Context, filter player.Filter, k int) ([]player.Player, error) {
	items, err := s.playerRepo.List(ctx, player.Query{
		Filter: filter,
		Sort:   player.SortByOverallDesc,
		Limit:  k,
	})
	if err != nil {
		return nil, fmt.Errorf("list top players: %w", err)
	}

	return items, nil
}

func resolveK(k int) (int, error) {
	if k == 0 {
		return DefaultTopK, nil
	}
	if k < 1 || k > MaxTopK {
		return 0, fmt.Errorf("%w: k must be within 1..%d", ErrInvalidInput, MaxTopK)
	}
	return k, nil
}

// validateRange checks lo <= hi and the floor/ceiling bounds; ceiling < 0
// means unbounded above.
func validateRange(name string, lo, hi *int, floor, ceiling int) error {
	for _, v := range []*int{lo, hi} {
		if v == nil {
			continue
		}
		if *v < floor {
			return fmt.Errorf("%w: %s must be >= %d", ErrInvalidInput, name, floor)
		}
		if ceiling >= 0 && *v > ceiling {
			return fmt.Errorf("%w: %s must be <= %d", ErrInvalidInput, name, ceiling)
		}
	}
	if lo != nil && hi != nil && *lo > *hi {
		return fmt.Errorf("%w: %s_min must be <= %s_max", ErrInvalidInput, name, name)
	}
	return nil
}
