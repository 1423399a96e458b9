package usecase

import (
	"cmp"
	"context"
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/player-scout/internal/domain/player"
	"github.com/riskibarqy/player-scout/internal/platform/logging"
	"github.com/riskibarqy/player-scout/internal/platform/media"
	"github.com/sourcegraph/conc/pool"
)

const (
	// PlayersMediaDir is where downloaded photos live below the media root.
	PlayersMediaDir = "players"

	DefaultImageSyncWorkers = 10

	imageStatusUpdated = "updated"
	imageStatusSkipped = "skipped"
	imageStatusFailed  = "failed"

	imageSyncPageSize = 500
)

// LegacyMediaDirs held photos before they were normalized into PlayersMediaDir.
var LegacyMediaDirs = []string{"player_images", "players_images"}

type DownloadInput struct {
	Workers int
	// Overwrite re-downloads photos that already exist locally.
	Overwrite bool
}

type ImageTaskResult struct {
	PlayerID   int64  `json:"player_id"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type DownloadResult struct {
	TaskCount    int               `json:"task_count"`
	UpdatedCount int               `json:"updated_count"`
	SkippedCount int               `json:"skipped_count"`
	FailedCount  int               `json:"failed_count"`
	WorkerCount  int               `json:"worker_count"`
	Tasks        []ImageTaskResult `json:"tasks"`
}

type NormalizeResult struct {
	Moved     int `json:"moved"`
	Unchanged int `json:"unchanged"`
	Missing   int `json:"missing"`
	Failed    int `json:"failed"`
}

type CleanResult struct {
	Removed []string `json:"removed"`
	Missing []string `json:"missing"`
}

type ImageSyncService struct {
	store   player.Store
	media   *media.Store
	fetcher PhotoFetcher
	workers int
	logger  *logging.Logger
}

func NewImageSyncService(store player.Store, mediaStore *media.Store, fetcher PhotoFetcher, workers int, logger *logging.Logger) *ImageSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = DefaultImageSyncWorkers
	}

	return &ImageSyncService{
		store:   store,
		media:   mediaStore,
		fetcher: fetcher,
		workers: workers,
		logger:  logger,
	}
}

// DownloadAll fetches every player's photo through a bounded worker pool.
// Each task succeeds or fails on its own; a failed task never aborts the run.
func (s *ImageSyncService) DownloadAll(ctx context.Context, input DownloadInput) (DownloadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImageSyncService.DownloadAll")
	defer span.End()

	players, err := s.allPlayers(ctx)
	if err != nil {
		return DownloadResult{}, err
	}

	workerCount := input.Workers
	if workerCount < 1 {
		workerCount = s.workers
	}
	result := DownloadResult{
		TaskCount:   len(players),
		WorkerCount: workerCount,
		Tasks:       make([]ImageTaskResult, 0, len(players)),
	}
	if len(players) == 0 {
		return result, nil
	}

	results := make(chan ImageTaskResult, len(players))
	var updatedCount atomic.Int32
	var skippedCount atomic.Int32
	var failedCount atomic.Int32

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return DownloadResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	var submitErr error
	for _, item := range players {
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := s.downloadOne(ctx, item, input.Overwrite)
			row.DurationMs = time.Since(start).Milliseconds()

			switch row.Status {
			case imageStatusUpdated:
				updatedCount.Add(1)
			case imageStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			submitErr = fmt.Errorf("submit task to worker pool: %w", err)
			break
		}
	}

	workers.Wait()
	close(results)
	if submitErr != nil {
		return DownloadResult{}, submitErr
	}

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	slices.SortFunc(result.Tasks, func(a, b ImageTaskResult) int {
		return cmp.Compare(a.PlayerID, b.PlayerID)
	})

	result.UpdatedCount = int(updatedCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	result.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "player image download finished",
		"tasks", result.TaskCount,
		"updated", result.UpdatedCount,
		"skipped", result.SkippedCount,
		"failed", result.FailedCount,
		"workers", result.WorkerCount,
	)

	return result, nil
}

func (s *ImageSyncService) downloadOne(ctx context.Context, item player.Player, overwrite bool) ImageTaskResult {
	row := ImageTaskResult{PlayerID: item.ID}

	if err := ctx.Err(); err != nil {
		row.Status = imageStatusFailed
		row.Message = err.Error()
		return row
	}

	local := strings.TrimSpace(item.RealFaceLocal)
	if !overwrite && local != "" && !isRemoteURL(local) && s.media.Exists(local) {
		row.Status = imageStatusSkipped
		row.Message = "already downloaded"
		return row
	}

	remoteURL := item.RealFace
	if isRemoteURL(local) && strings.TrimSpace(remoteURL) == "" {
		remoteURL = local
	}

	photo, err := s.fetcher.FetchPhoto(ctx, item.ID, remoteURL)
	if err != nil {
		row.Status = imageStatusFailed
		row.Message = err.Error()
		s.logger.DebugContext(ctx, "player image download failed", "player_id", item.ID, "error", err)
		return row
	}

	rel := PlayerPhotoPath(item.ID)
	if err := s.media.Write(rel, photo.Body); err != nil {
		row.Status = imageStatusFailed
		row.Message = fmt.Sprintf("write photo: %v", err)
		return row
	}
	if err := s.store.UpdateLocalImage(ctx, item.ID, rel); err != nil {
		row.Status = imageStatusFailed
		row.Message = fmt.Sprintf("update player image: %v", err)
		return row
	}

	row.Status = imageStatusUpdated
	return row
}

// Normalize moves downloaded photos into PlayersMediaDir and rewrites the
// stored paths. Players without a local file are counted as missing.
func (s *ImageSyncService) Normalize(ctx context.Context) (NormalizeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImageSyncService.Normalize")
	defer span.End()

	players, err := s.allPlayers(ctx)
	if err != nil {
		return NormalizeResult{}, err
	}

	var moved, unchanged, missing, failed atomic.Int32
	p := pool.New().WithMaxGoroutines(s.workers)
	for _, item := range players {
		local := strings.TrimSpace(item.RealFaceLocal)
		if local == "" || isRemoteURL(local) {
			continue
		}

		p.Go(func() {
			target := path.Join(PlayersMediaDir, path.Base(local))
			if local == target {
				unchanged.Add(1)
				return
			}

			switch {
			case s.media.Exists(target):
			case s.media.Exists(local):
				if err := s.media.Move(local, target); err != nil {
					failed.Add(1)
					s.logger.WarnContext(ctx, "move player image failed", "player_id", item.ID, "from", local, "to", target, "error", err)
					return
				}
			default:
				missing.Add(1)
				s.logger.InfoContext(ctx, "player image file not found", "player_id", item.ID, "path", local)
				return
			}

			if err := s.store.UpdateLocalImage(ctx, item.ID, target); err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "update player image path failed", "player_id", item.ID, "error", err)
				return
			}
			moved.Add(1)
		})
	}
	p.Wait()

	result := NormalizeResult{
		Moved:     int(moved.Load()),
		Unchanged: int(unchanged.Load()),
		Missing:   int(missing.Load()),
		Failed:    int(failed.Load()),
	}
	s.logger.InfoContext(ctx, "player image normalize finished",
		"moved", result.Moved,
		"unchanged", result.Unchanged,
		"missing", result.Missing,
		"failed", result.Failed,
	)

	return result, nil
}

// CleanLegacy removes old photo directories. Empty dirs means LegacyMediaDirs.
func (s *ImageSyncService) CleanLegacy(ctx context.Context, dirs []string) (CleanResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImageSyncService.CleanLegacy")
	defer span.End()

	if len(dirs) == 0 {
		dirs = LegacyMediaDirs
	}

	result := CleanResult{Removed: []string{}, Missing: []string{}}
	for _, dir := range dirs {
		dir = strings.Trim(path.Clean("/"+strings.TrimSpace(dir)), "/")
		if dir == "" || dir == PlayersMediaDir {
			return CleanResult{}, fmt.Errorf("%w: refusing to remove %q", ErrInvalidInput, dir)
		}

		removed, err := s.media.RemoveDir(dir)
		if err != nil {
			return CleanResult{}, fmt.Errorf("remove legacy dir %s: %w", dir, err)
		}
		if removed {
			result.Removed = append(result.Removed, dir)
			s.logger.InfoContext(ctx, "removed legacy image dir", "dir", dir)
			continue
		}
		result.Missing = append(result.Missing, dir)
	}

	return result, nil
}

func (s *ImageSyncService) allPlayers(ctx context.Context) ([]player.Player, error) {
	out := make([]player.Player, 0, imageSyncPageSize)
	for offset := 0; ; offset += imageSyncPageSize {
		items, err := s.store.List(ctx, player.Query{
			Sort:   player.SortByID,
			Limit:  imageSyncPageSize,
			Offset: offset,
		})
		if err != nil {
			return nil, fmt.Errorf("list players offset=%d: %w", offset, err)
		}
		out = append(out, items...)
		if len(items) < imageSyncPageSize {
			return out, nil
		}
	}
}

// PlayerPhotoPath is the media-relative path of a downloaded photo.
func PlayerPhotoPath(playerID int64) string {
	return path.Join(PlayersMediaDir, strconv.FormatInt(playerID, 10)+".png")
}
