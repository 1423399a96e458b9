package formation

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/player-scout/internal/domain/player"
)

// Pick is one selected player and the label it fills.
type Pick struct {
	Player   player.Player
	Position string
}

// SelectBestTeam greedily fills reqs from candidates.
//
// Each requirement, in table order, takes its highest rated unclaimed
// candidates whose position tags contain the label. When that leaves the XI
// short, the remaining candidates, highest rated first, backfill the first
// requirement that is still open. Ties keep the candidates' input order.
// The result is not globally optimal.
func SelectBestTeam(candidates []player.Player, reqs Requirements) []Pick {
	if len(candidates) == 0 || reqs.Len() == 0 {
		return []Pick{}
	}

	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, byOverallDesc)

	picks := make([]Pick, 0, min(TeamSize, reqs.Total()))
	claimed := make(map[int64]struct{}, TeamSize)
	filled := make([]int, reqs.Len())

	for i, req := range reqs.items {
		for _, p := range ranked {
			if filled[i] >= req.Count || len(picks) >= TeamSize {
				break
			}
			if _, taken := claimed[p.ID]; taken || !p.HasPosition(req.Label) {
				continue
			}
			claimed[p.ID] = struct{}{}
			filled[i]++
			picks = append(picks, Pick{Player: p, Position: req.Label})
		}
	}

	for _, p := range ranked {
		if len(picks) >= TeamSize {
			break
		}
		if _, taken := claimed[p.ID]; taken {
			continue
		}
		slot := firstOpen(reqs.items, filled)
		if slot < 0 {
			break
		}
		claimed[p.ID] = struct{}{}
		filled[slot]++
		picks = append(picks, Pick{Player: p, Position: reqs.items[slot].Label})
	}

	return picks
}

func firstOpen(items []Requirement, filled []int) int {
	for i, item := range items {
		if filled[i] < item.Count {
			return i
		}
	}
	return -1
}

func byOverallDesc(a, b player.Player) int {
	return cmp.Compare(b.Overall, a.Overall)
}
