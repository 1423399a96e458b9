package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/riskibarqy/player-scout/internal/domain/player"
	"github.com/riskibarqy/player-scout/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const (
	DefaultImportBatchSize = 500
	DefaultImportWorkers   = 4

	maxReportedRowErrors = 100
)

var requiredImportColumns = []string{"sofifa_id", "short_name", "long_name"}

// PhotoURLBuilder derives the CDN photo address of a player.
type PhotoURLBuilder interface {
	PhotoURL(playerID int64) string
}

type ImportConfig struct {
	BatchSize int
	Workers   int
}

type ImportRowError struct {
	Line     int    `json:"line"`
	SofifaID string `json:"sofifa_id"`
	Reason   string `json:"reason"`
}

type ImportResult struct {
	Rows     int              `json:"rows"`
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Batches  int              `json:"batches"`
	Errors   []ImportRowError `json:"errors"`
}

type ImportService struct {
	writer    player.Writer
	urls      PhotoURLBuilder
	batchSize int
	workers   int
	logger    *logging.Logger
}

func NewImportService(writer player.Writer, urls PhotoURLBuilder, cfg ImportConfig, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = DefaultImportBatchSize
	}
	if cfg.Workers < 1 {
		cfg.Workers = DefaultImportWorkers
	}

	return &ImportService{
		writer:    writer,
		urls:      urls,
		batchSize: cfg.BatchSize,
		workers:   cfg.Workers,
		logger:    logger,
	}
}

// Import reads a header-led sofifa CSV and upserts its rows in concurrent
// batches. Rows with an invalid id or invalid values are skipped and
// reported; the first write failure aborts the import.
func (s *ImportService) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import")
	defer span.End()

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return ImportResult{}, fmt.Errorf("%w: csv is empty", ErrInvalidInput)
	}
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: read csv header: %v", ErrInvalidInput, err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Errors: []ImportRowError{}}
	var imported atomic.Int64
	recordRowError := func(rowErr ImportRowError) {
		result.Skipped++
		if len(result.Errors) < maxReportedRowErrors {
			result.Errors = append(result.Errors, rowErr)
		}
	}

	writers := pool.New().WithMaxGoroutines(s.workers).WithContext(ctx).WithCancelOnError().WithFirstError()
	flush := func(batch []player.Player) {
		result.Batches++
		writers.Go(func(ctx context.Context) error {
			n, err := s.writer.Upsert(ctx, batch)
			if err != nil {
				return fmt.Errorf("upsert batch of %d players: %w", len(batch), err)
			}
			imported.Add(int64(n))
			return nil
		})
	}

	batch := make([]player.Player, 0, s.batchSize)
	for {
		if err := ctx.Err(); err != nil {
			break
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
				result.Rows++
				recordRowError(ImportRowError{Line: parseErr.Line, Reason: "wrong number of fields"})
				continue
			}
			_ = writers.Wait()
			return ImportResult{}, fmt.Errorf("%w: read csv: %v", ErrInvalidInput, err)
		}
		result.Rows++
		line, _ := reader.FieldPos(0)

		item, err := s.parseRow(record, cols)
		if err != nil {
			recordRowError(ImportRowError{Line: line, SofifaID: cols.value(record, "sofifa_id"), Reason: err.Error()})
			continue
		}

		batch = append(batch, item)
		if len(batch) >= s.batchSize {
			flush(batch)
			batch = make([]player.Player, 0, s.batchSize)
		}
	}
	if len(batch) > 0 {
		flush(batch)
	}

	if err := writers.Wait(); err != nil {
		return ImportResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return ImportResult{}, err
	}
	result.Imported = int(imported.Load())

	s.logger.InfoContext(ctx, "player import finished",
		"rows", result.Rows,
		"imported", result.Imported,
		"skipped", result.Skipped,
		"batches", result.Batches,
	)

	return result, nil
}

func (s *ImportService) parseRow(record []string, cols csvColumns) (player.Player, error) {
	rawID := cols.value(record, "sofifa_id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return player.Player{}, fmt.Errorf("invalid sofifa_id %q", rawID)
	}

	age, err := cols.intValue(record, "age")
	if err != nil {
		return player.Player{}, err
	}
	overall, err := cols.intValue(record, "overall")
	if err != nil {
		return player.Player{}, err
	}
	potential, err := cols.intValue(record, "potential")
	if err != nil {
		return player.Player{}, err
	}
	value, err := cols.floatValue(record, "value_eur")
	if err != nil {
		return player.Player{}, err
	}

	item := player.Player{
		ID:          id,
		PlayerURL:   cols.value(record, "player_url"),
		ShortName:   cols.value(record, "short_name"),
		LongName:    cols.value(record, "long_name"),
		Age:         age,
		ClubName:    cols.value(record, "club_name"),
		LeagueName:  cols.value(record, "league_name"),
		Nationality: firstNonEmpty(cols.value(record, "nationality"), cols.value(record, "nationality_name")),
		Positions:   cols.value(record, "player_positions"),
		Overall:     overall,
		Potential:   potential,
		ValueEUR:    value,
		RealFace:    s.photoURL(id, cols.value(record, "real_face"), cols.value(record, "player_face_url")),
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, err
	}

	return item, nil
}

func (s *ImportService) photoURL(id int64, candidates ...string) string {
	for _, candidate := range candidates {
		if isRemoteURL(candidate) {
			return candidate
		}
	}
	if s.urls == nil {
		return ""
	}
	return s.urls.PhotoURL(id)
}

type csvColumns map[string]int

func indexColumns(header []string) (csvColumns, error) {
	cols := make(csvColumns, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if name == "" {
			continue
		}
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	for _, required := range requiredImportColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: csv header is missing column %q", ErrInvalidInput, required)
		}
	}

	return cols, nil
}

func (c csvColumns) value(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (c csvColumns) intValue(record []string, name string) (int, error) {
	raw := c.value(record, name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

func (c csvColumns) floatValue(record []string, name string) (float64, error) {
	raw := c.value(record, name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
