package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/player-scout/internal/domain/player"
	playermock "github.com/riskibarqy/player-scout/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

func TestPlayerService_GetByID_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, PaginationConfig{}, nil)

	repo.On("GetByID", mock.Anything, int64(42)).Return(player.Player{}, false, nil).Once()

	_, err := service.GetByID(ctx, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_GetByID_RejectsInvalidIDWithoutRepositoryCall(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, PaginationConfig{}, nil)

	_, err := service.GetByID(context.Background(), 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_List_PassesPagingToRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, PaginationConfig{DefaultPageSize: 2, MaxPageSize: 5}, nil)

	repo.On("Count", mock.Anything, player.Filter{}).Return(5, nil).Once()
	repo.
		On("List", mock.Anything, player.Query{Sort: player.SortByID, Limit: 2, Offset: 2}).
		Return([]player.Player{{ID: 3}, {ID: 4}}, nil).
		Once()

	page, err := service.List(ctx, PageRequest{Page: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 5 || page.PageSize != 2 || page.Page != 2 || !page.HasNext {
		t.Fatalf("unexpected page metadata: %+v", page)
	}
	if len(page.Items) != 2 || page.Items[0].ID != 3 {
		t.Fatalf("unexpected items: %+v", page.Items)
	}
}

func TestPlayerService_List_ClampsPageSize(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100}, nil)

	repo.On("Count", mock.Anything, player.Filter{}).Return(0, nil).Once()
	repo.
		On("List", mock.Anything, mock.MatchedBy(func(q player.Query) bool { return q.Limit == 100 })).
		Return([]player.Player{}, nil).
		Once()

	page, err := service.List(context.Background(), PageRequest{PageSize: 500})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.PageSize != 100 || page.HasNext {
		t.Fatalf("unexpected page metadata: %+v", page)
	}
}

func TestPlayerService_List_PageOutOfRange(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, PaginationConfig{}, nil)

	repo.On("Count", mock.Anything, player.Filter{}).Return(3, nil).Once()

	_, err := service.List(context.Background(), PageRequest{Page: 2})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_BestTeam_RepositoryError(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, PaginationConfig{}, nil)
	boom := errors.New("db down")

	repo.
		On("List", mock.Anything, player.Query{Filter: player.Filter{LeagueName: "Serie A"}, Sort: player.SortByID}).
		Return(nil, boom).
		Once()

	_, err := service.BestTeam(context.Background(), BestTeamInput{LeagueName: " Serie A "})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}
