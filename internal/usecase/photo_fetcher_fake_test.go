package usecase

import (
	"context"
	"fmt"
	"sync"
)

type fakePhotoFetcher struct {
	mu      sync.Mutex
	calls   map[int64]string
	failIDs map[int64]error
}

func newFakePhotoFetcher() *fakePhotoFetcher {
	return &fakePhotoFetcher{calls: map[int64]string{}, failIDs: map[int64]error{}}
}

func (f *fakePhotoFetcher) FetchPhoto(_ context.Context, playerID int64, rawURL string) (Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[playerID] = rawURL
	if err, ok := f.failIDs[playerID]; ok {
		return Photo{}, err
	}
	return Photo{
		Body:        []byte(fmt.Sprintf("photo-%d", playerID)),
		ContentType: "image/png",
		Source:      PhotoSourceRemote,
	}, nil
}

func (f *fakePhotoFetcher) PhotoURL(playerID int64) string {
	return fmt.Sprintf("https://cdn.test/players/%d.png", playerID)
}

func (f *fakePhotoFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
