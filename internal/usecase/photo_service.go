package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/riskibarqy/player-scout/internal/domain/player"
	"github.com/riskibarqy/player-scout/internal/platform/logging"
	"github.com/riskibarqy/player-scout/internal/platform/media"
)

type PhotoSource string

const (
	PhotoSourceLocal  PhotoSource = "local"
	PhotoSourceRemote PhotoSource = "remote"
)

type Photo struct {
	Body        []byte
	ContentType string
	Source      PhotoSource
}

// PhotoFetcher downloads player photos from the CDN. An empty rawURL asks the
// fetcher to derive the address from the player id.
type PhotoFetcher interface {
	FetchPhoto(ctx context.Context, playerID int64, rawURL string) (Photo, error)
}

type PhotoService struct {
	playerRepo player.Repository
	media      *media.Store
	fetcher    PhotoFetcher
	logger     *logging.Logger
}

func NewPhotoService(playerRepo player.Repository, mediaStore *media.Store, fetcher PhotoFetcher, logger *logging.Logger) *PhotoService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PhotoService{
		playerRepo: playerRepo,
		media:      mediaStore,
		fetcher:    fetcher,
		logger:     logger,
	}
}

// Photo serves the downloaded file when one exists and proxies the CDN otherwise.
func (s *PhotoService) Photo(ctx context.Context, playerID int64) (Photo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhotoService.Photo")
	defer span.End()

	if playerID <= 0 {
		return Photo{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return Photo{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return Photo{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	remoteURL := item.RealFace
	if local := strings.TrimSpace(item.RealFaceLocal); local != "" {
		if isRemoteURL(local) {
			remoteURL = local
		} else if photo, ok := s.readLocal(ctx, item.ID, local); ok {
			return photo, nil
		}
	}

	if s.fetcher == nil {
		return Photo{}, fmt.Errorf("%w: photo fetcher is not configured", ErrDependencyUnavailable)
	}

	photo, err := s.fetcher.FetchPhoto(ctx, item.ID, remoteURL)
	if err != nil {
		return Photo{}, fmt.Errorf("fetch photo player=%d: %w", item.ID, err)
	}

	return photo, nil
}

func (s *PhotoService) readLocal(ctx context.Context, playerID int64, rel string) (Photo, bool) {
	if s.media == nil {
		return Photo{}, false
	}

	body, err := s.media.Read(rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.DebugContext(ctx, "local photo missing, falling back to CDN", "player_id", playerID, "path", rel)
		} else {
			s.logger.WarnContext(ctx, "read local photo failed", "player_id", playerID, "path", rel, "error", err)
		}
		return Photo{}, false
	}

	return Photo{
		Body:        body,
		ContentType: http.DetectContentType(body),
		Source:      PhotoSourceLocal,
	}, true
}

func isRemoteURL(v string) bool {
	lower := strings.ToLower(v)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
