package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/player-scout/internal/domain/player"
	"github.com/riskibarqy/player-scout/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/player-scout/internal/platform/media"
)

func TestImageSyncService_DownloadAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := media.NewStore(t.TempDir())
	if err := store.Write("players/2.png", []byte("old")); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	repo := memory.NewPlayerRepository([]player.Player{
		{ID: 1, ShortName: "A", LongName: "A", RealFace: "https://cdn.test/1.png"},
		{ID: 2, ShortName: "B", LongName: "B", RealFaceLocal: "players/2.png"},
		{ID: 3, ShortName: "C", LongName: "C"},
	})
	fetcher := newFakePhotoFetcher()
	fetcher.failIDs[3] = errors.New("status 404")
	service := NewImageSyncService(repo, store, fetcher, 2, nil)

	result, err := service.DownloadAll(ctx, DownloadInput{})
	if err != nil {
		t.Fatalf("download all: %v", err)
	}
	if result.TaskCount != 3 || result.UpdatedCount != 1 || result.SkippedCount != 1 || result.FailedCount != 1 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.WorkerCount != 2 {
		t.Fatalf("expected configured worker count, got %d", result.WorkerCount)
	}
	wantStatus := map[int64]string{1: imageStatusUpdated, 2: imageStatusSkipped, 3: imageStatusFailed}
	for _, task := range result.Tasks {
		if task.Status != wantStatus[task.PlayerID] {
			t.Fatalf("player %d: status=%s want=%s", task.PlayerID, task.Status, wantStatus[task.PlayerID])
		}
	}

	body, err := store.Read("players/1.png")
	if err != nil || string(body) != "photo-1" {
		t.Fatalf("expected downloaded photo on disk, got %q err=%v", body, err)
	}
	got, _, _ := repo.GetByID(ctx, 1)
	if got.RealFaceLocal != "players/1.png" {
		t.Fatalf("expected real_face_local to be updated, got %q", got.RealFaceLocal)
	}
	if fetcher.calls[3] != "" {
		t.Fatalf("player without real_face should let the fetcher derive the URL, got %q", fetcher.calls[3])
	}
}

func TestImageSyncService_DownloadAll_Overwrite(t *testing.T) {
	t.Parallel()

	store := media.NewStore(t.TempDir())
	if err := store.Write("players/2.png", []byte("old")); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	repo := memory.NewPlayerRepository([]player.Player{{ID: 2, ShortName: "B", LongName: "B", RealFaceLocal: "players/2.png"}})
	service := NewImageSyncService(repo, store, newFakePhotoFetcher(), 0, nil)

	result, err := service.DownloadAll(context.Background(), DownloadInput{Overwrite: true, Workers: 1})
	if err != nil {
		t.Fatalf("download all: %v", err)
	}
	if result.UpdatedCount != 1 {
		t.Fatalf("expected overwrite to re-download, got %+v", result)
	}
	body, _ := store.Read("players/2.png")
	if string(body) != "photo-2" {
		t.Fatalf("expected file to be replaced, got %q", body)
	}
}

func TestImageSyncService_Normalize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := media.NewStore(t.TempDir())
	for _, rel := range []string{"player_images/1.png", "players/2.png"} {
		if err := store.Write(rel, []byte("x")); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	repo := memory.NewPlayerRepository([]player.Player{
		{ID: 1, ShortName: "A", LongName: "A", RealFaceLocal: "player_images/1.png"},
		{ID: 2, ShortName: "B", LongName: "B", RealFaceLocal: "players/2.png"},
		{ID: 3, ShortName: "C", LongName: "C", RealFaceLocal: "player_images/3.png"},
		{ID: 4, ShortName: "D", LongName: "D", RealFaceLocal: "https://cdn.test/4.png"},
		{ID: 5, ShortName: "E", LongName: "E"},
	})
	service := NewImageSyncService(repo, store, newFakePhotoFetcher(), 4, nil)

	result, err := service.Normalize(ctx)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if result != (NormalizeResult{Moved: 1, Unchanged: 1, Missing: 1}) {
		t.Fatalf("unexpected normalize result: %+v", result)
	}
	if !store.Exists("players/1.png") || store.Exists("player_images/1.png") {
		t.Fatalf("expected file to be moved into players/")
	}
	got, _, _ := repo.GetByID(ctx, 1)
	if got.RealFaceLocal != "players/1.png" {
		t.Fatalf("expected path rewrite, got %q", got.RealFaceLocal)
	}
}

func TestImageSyncService_CleanLegacy(t *testing.T) {
	t.Parallel()

	store := media.NewStore(t.TempDir())
	if err := store.Write("player_images/1.png", []byte("x")); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	service := NewImageSyncService(memory.NewPlayerRepository(nil), store, nil, 1, nil)

	result, err := service.CleanLegacy(context.Background(), nil)
	if err != nil {
		t.Fatalf("clean legacy: %v", err)
	}
	if len(result.Removed) != 1 || result.Removed[0] != "player_images" {
		t.Fatalf("unexpected removed dirs: %+v", result)
	}
	if len(result.Missing) != 1 || result.Missing[0] != "players_images" {
		t.Fatalf("unexpected missing dirs: %+v", result)
	}

	if _, err := service.CleanLegacy(context.Background(), []string{"players"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput when targeting the live dir, got %v", err)
	}
}
