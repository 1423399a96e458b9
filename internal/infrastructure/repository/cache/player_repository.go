package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/player-scout/internal/domain/player"
	basecache "github.com/riskibarqy/player-scout/internal/platform/cache"
	"github.com/valyala/bytebufferpool"
)

const playerKeyPrefix = "player:"

// PlayerRepository is a read-through cache in front of another repository.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context, query player.Query) ([]player.Player, error) {
	key := playerKeyPrefix + "list:" + queryKey(query)
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]player.Player, error) {
		return r.next.List(ctx, query)
	})
	if err != nil {
		return nil, err
	}

	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) Count(ctx context.Context, filter player.Filter) (int, error) {
	key := playerKeyPrefix + "count:" + filterKey(filter)
	return basecache.Load(ctx, r.cache, key, func(ctx context.Context) (int, error) {
		return r.next.Count(ctx, filter)
	})
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	key := playerKeyPrefix + "id:" + strconv.FormatInt(id, 10)
	cached, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (cachedPlayerByID, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return cachedPlayerByID{}, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	return cached.value, cached.exists, nil
}

// Invalidate drops every cached player read.
func (r *PlayerRepository) Invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, playerKeyPrefix)
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

func queryKey(query player.Query) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeFilter(buf, query.Filter)
	_, _ = buf.WriteString("|sort=")
	_, _ = buf.WriteString(strconv.Itoa(int(query.Sort)))
	_, _ = buf.WriteString("|limit=")
	_, _ = buf.WriteString(strconv.Itoa(query.Limit))
	_, _ = buf.WriteString("|offset=")
	_, _ = buf.WriteString(strconv.Itoa(query.Offset))

	return buf.String()
}

func filterKey(filter player.Filter) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeFilter(buf, filter)
	return buf.String()
}

func writeFilter(buf *bytebufferpool.ByteBuffer, f player.Filter) {
	texts := [...]struct {
		name  string
		value string
	}{
		{"name", f.Name},
		{"short", f.ShortName},
		{"long", f.LongName},
		{"club", f.ClubName},
		{"league", f.LeagueName},
		{"nat", f.Nationality},
		{"pos", f.Positions},
	}
	for i, item := range texts {
		if i > 0 {
			_ = buf.WriteByte('|')
		}
		_, _ = buf.WriteString(item.name)
		_ = buf.WriteByte('=')
		_, _ = buf.WriteString(strconv.Quote(item.value))
	}

	bounds := [...]struct {
		name  string
		value *int
	}{
		{"age_min", f.AgeMin},
		{"age_max", f.AgeMax},
		{"ovr_min", f.OverallMin},
		{"ovr_max", f.OverallMax},
	}
	for _, item := range bounds {
		_ = buf.WriteByte('|')
		_, _ = buf.WriteString(item.name)
		_ = buf.WriteByte('=')
		if item.value == nil {
			_ = buf.WriteByte('-')
			continue
		}
		_, _ = buf.WriteString(strconv.Itoa(*item.value))
	}
}
