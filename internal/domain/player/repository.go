package player

import (
	"context"
	"errors"
)

// ErrNotFound is returned by writers when the target player does not exist.
var ErrNotFound = errors.New("player not found")

// Sort selects the ordering applied by List.
type Sort int

const (
	SortByID Sort = iota
	SortByOverallDesc
)

// Filter narrows the player set. Text fields are case-insensitive substring
// matches; numeric bounds are inclusive and nil means unbounded.
type Filter struct {
	Name        string
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

type Query struct {
	Filter Filter
	Sort   Sort
	Limit  int
	Offset int
}

// Repository describes player reads needed by use cases.
type Repository interface {
	List(ctx context.Context, query Query) ([]Player, error)
	Count(ctx context.Context, filter Filter) (int, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
}

// Writer is used by the import and image maintenance commands.
type Writer interface {
	Upsert(ctx context.Context, players []Player) (int, error)
	UpdateLocalImage(ctx context.Context, id int64, path string) error
}

// Store is a repository that can also be written to.
type Store interface {
	Repository
	Writer
}
