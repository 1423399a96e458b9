package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/player-scout/internal/domain/player"
	qb "github.com/riskibarqy/player-scout/internal/platform/querybuilder"
)

const (
	playersTable = "players"

	// Keeps a single statement well under the 65535 bind parameter limit.
	upsertChunkSize = 1000
)

const upsertSuffix = `ON CONFLICT (sofifa_id) DO UPDATE SET
	player_url = EXCLUDED.player_url,
	short_name = EXCLUDED.short_name,
	long_name = EXCLUDED.long_name,
	age = EXCLUDED.age,
	club_name = EXCLUDED.club_name,
	league_name = EXCLUDED.league_name,
	nationality = EXCLUDED.nationality,
	player_positions = EXCLUDED.player_positions,
	overall = EXCLUDED.overall,
	potential = EXCLUDED.potential,
	value_eur = EXCLUDED.value_eur,
	real_face = EXCLUDED.real_face,
	real_face_local = COALESCE(EXCLUDED.real_face_local, players.real_face_local),
	updated_at = NOW()`

var playerSelectColumns = []string{
	"sofifa_id",
	"player_url",
	"short_name",
	"long_name",
	"age",
	"club_name",
	"league_name",
	"nationality",
	"player_positions",
	"overall",
	"potential",
	"value_eur",
	"real_face",
	"real_face_local",
	"created_at",
	"updated_at",
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, query player.Query) ([]player.Player, error) {
	sqlQuery, args, err := buildListQuery(query)
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) Count(ctx context.Context, filter player.Filter) (int, error) {
	sqlQuery, args, err := qb.Select("COUNT(*)").From(playersTable).
		Where(filterConditions(filter)...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count players query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, sqlQuery, args...); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}

	return total, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	sqlQuery, args, err := qb.Select(playerSelectColumns...).From(playersTable).
		Where(qb.Eq("sofifa_id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, sqlQuery, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player id=%d: %w", id, err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, players []player.Player) (int, error) {
	if len(players) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin upsert players tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	affected := 0
	for start := 0; start < len(players); start += upsertChunkSize {
		end := min(start+upsertChunkSize, len(players))
		models := make([]playerInsertModel, 0, end-start)
		for _, p := range dedupeByID(players[start:end]) {
			models = append(models, newPlayerInsertModel(p))
		}

		sqlQuery, args, err := qb.InsertModels(playersTable, models, upsertSuffix)
		if err != nil {
			return 0, fmt.Errorf("build upsert players query: %w", err)
		}

		result, err := tx.ExecContext(ctx, sqlQuery, args...)
		if err != nil {
			return 0, fmt.Errorf("upsert players: %w", err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("upsert players rows affected: %w", err)
		}
		affected += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit upsert players tx: %w", err)
	}

	return affected, nil
}

func (r *PlayerRepository) UpdateLocalImage(ctx context.Context, id int64, path string) error {
	sqlQuery, args, err := qb.Update(playersTable).
		Set("real_face_local", nullString(path)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("sofifa_id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player image query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("update player image id=%d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update player image rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id=%d", player.ErrNotFound, id)
	}

	return nil
}

func buildListQuery(query player.Query) (string, []any, error) {
	return qb.Select(playerSelectColumns...).From(playersTable).
		Where(filterConditions(query.Filter)...).
		OrderBy(orderBy(query.Sort)...).
		Limit(query.Limit).
		Offset(query.Offset).
		ToSQL()
}

func orderBy(sort player.Sort) []string {
	switch sort {
	case player.SortByOverallDesc:
		return []string{"overall DESC", "sofifa_id"}
	default:
		return []string{"sofifa_id"}
	}
}

func filterConditions(f player.Filter) []qb.Condition {
	conds := make([]qb.Condition, 0, 10)
	if name := strings.TrimSpace(f.Name); name != "" {
		conds = append(conds, qb.AnyOf(qb.ILike("short_name", name), qb.ILike("long_name", name)))
	}

	text := []struct {
		column string
		value  string
	}{
		{"short_name", f.ShortName},
		{"long_name", f.LongName},
		{"club_name", f.ClubName},
		{"league_name", f.LeagueName},
		{"nationality", f.Nationality},
		{"player_positions", f.Positions},
	}
	for _, item := range text {
		if v := strings.TrimSpace(item.value); v != "" {
			conds = append(conds, qb.ILike(item.column, v))
		}
	}

	if f.AgeMin != nil {
		conds = append(conds, qb.Gte("age", *f.AgeMin))
	}
	if f.AgeMax != nil {
		conds = append(conds, qb.Lte("age", *f.AgeMax))
	}
	if f.OverallMin != nil {
		conds = append(conds, qb.Gte("overall", *f.OverallMin))
	}
	if f.OverallMax != nil {
		conds = append(conds, qb.Lte("overall", *f.OverallMax))
	}

	return conds
}

// dedupeByID keeps the last occurrence of each id; a single INSERT ... ON
// CONFLICT statement cannot touch the same row twice.
func dedupeByID(players []player.Player) []player.Player {
	index := make(map[int64]int, len(players))
	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if i, ok := index[p.ID]; ok {
			out[i] = p
			continue
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	return out
}
