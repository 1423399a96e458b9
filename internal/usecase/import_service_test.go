package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/player-scout/internal/domain/player"
	"github.com/riskibarqy/player-scout/internal/infrastructure/repository/memory"
)

const importFixture = `sofifa_id,player_url,short_name,long_name,age,club_name,league_name,nationality,player_positions,overall,potential,value_eur,player_face_url
158023,https://sofifa.com/player/158023,L. Messi,Lionel Andrés Messi Cuccittini,36,Inter Miami,Major League Soccer,Argentina,"CF, RW",90,90,41000000.0,https://cdn.sofifa.net/players/158/023/24_120.png
abc,,Broken,Broken Row,20,,,,ST,60,60,0,
20801,https://sofifa.com/player/20801,Cristiano Ronaldo,Cristiano Ronaldo dos Santos Aveiro,38,Al Nassr,Pro League,Portugal,ST,86,86,23500000.0,
192985,,K. De Bruyne,Kevin De Bruyne,32,Manchester City,Premier League,Belgium,"CM, CAM",150,91,1,
`

type failingWriter struct{ err error }

func (w failingWriter) Upsert(context.Context, []player.Player) (int, error) { return 0, w.err }
func (w failingWriter) UpdateLocalImage(context.Context, int64, string) error { return nil }

func TestImportService_Import(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewPlayerRepository(nil)
	service := NewImportService(repo, newFakePhotoFetcher(), ImportConfig{BatchSize: 1, Workers: 2}, nil)

	result, err := service.Import(ctx, strings.NewReader(importFixture))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Rows != 4 || result.Imported != 2 || result.Skipped != 2 || result.Batches != 2 {
		t.Fatalf("unexpected import result: %+v", result)
	}
	if result.Errors[0].SofifaID != "abc" || result.Errors[0].Line != 3 {
		t.Fatalf("unexpected first row error: %+v", result.Errors[0])
	}

	messi, ok, _ := repo.GetByID(ctx, 158023)
	if !ok {
		t.Fatalf("expected Messi to be imported")
	}
	if messi.Positions != "CF, RW" || messi.ValueEUR != 41000000 {
		t.Fatalf("unexpected imported fields: %+v", messi)
	}
	if messi.RealFace != "https://cdn.sofifa.net/players/158/023/24_120.png" {
		t.Fatalf("expected CSV face URL to be kept, got %q", messi.RealFace)
	}

	ronaldo, ok, _ := repo.GetByID(ctx, 20801)
	if !ok || ronaldo.RealFace != "https://cdn.test/players/20801.png" {
		t.Fatalf("expected derived CDN URL, got %+v", ronaldo)
	}
}

func TestImportService_MissingRequiredColumn(t *testing.T) {
	t.Parallel()

	service := NewImportService(memory.NewPlayerRepository(nil), nil, ImportConfig{}, nil)
	_, err := service.Import(context.Background(), strings.NewReader("sofifa_id,short_name\n1,A\n"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = service.Import(context.Background(), strings.NewReader(""))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty csv, got %v", err)
	}
}

func TestImportService_WriteFailureAborts(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	service := NewImportService(failingWriter{err: boom}, nil, ImportConfig{BatchSize: 1, Workers: 1}, nil)

	_, err := service.Import(context.Background(), strings.NewReader(importFixture))
	if !errors.Is(err, boom) {
		t.Fatalf("expected write error, got %v", err)
	}
}
