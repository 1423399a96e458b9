package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/player-scout/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	index   map[int64]int
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{index: make(map[int64]int, len(players))}
	r.upsertLocked(players)
	return r
}

func (r *PlayerRepository) List(_ context.Context, query player.Query) ([]player.Player, error) {
	if query.Offset < 0 {
		return nil, fmt.Errorf("offset must be >= 0")
	}

	r.mu.RLock()
	matched := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		if query.Filter.Matches(p) {
			matched = append(matched, p)
		}
	}
	r.mu.RUnlock()

	switch query.Sort {
	case player.SortByOverallDesc:
		slices.SortFunc(matched, func(a, b player.Player) int {
			if c := cmp.Compare(b.Overall, a.Overall); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
	default:
		slices.SortFunc(matched, func(a, b player.Player) int {
			return cmp.Compare(a.ID, b.ID)
		})
	}

	if query.Offset >= len(matched) {
		return []player.Player{}, nil
	}
	matched = matched[query.Offset:]
	if query.Limit > 0 && query.Limit < len(matched) {
		matched = matched[:query.Limit]
	}

	return matched, nil
}

func (r *PlayerRepository) Count(_ context.Context, filter player.Filter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, p := range r.players {
		if filter.Matches(p) {
			total++
		}
	}

	return total, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return player.Player{}, false, nil
	}

	return r.players[i], true, nil
}

func (r *PlayerRepository) Upsert(_ context.Context, players []player.Player) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.upsertLocked(players), nil
}

func (r *PlayerRepository) UpdateLocalImage(_ context.Context, id int64, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return fmt.Errorf("%w: id=%d", player.ErrNotFound, id)
	}
	r.players[i].RealFaceLocal = path

	return nil
}

func (r *PlayerRepository) upsertLocked(players []player.Player) int {
	for _, p := range players {
		if i, ok := r.index[p.ID]; ok {
			if p.RealFaceLocal == "" {
				p.RealFaceLocal = r.players[i].RealFaceLocal
			}
			r.players[i] = p
			continue
		}
		r.index[p.ID] = len(r.players)
		r.players = append(r.players, p)
	}

	return len(players)
}
