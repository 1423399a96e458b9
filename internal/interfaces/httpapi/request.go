package httpapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/player-scout/internal/usecase"
)

type pageQuery struct {
	Page     int `validate:"gte=0"`
	PageSize int `validate:"gte=0"`
}

type searchQuery struct {
	pageQuery
	Q string `validate:"max=100"`
}

type filterQuery struct {
	pageQuery
	ShortName   string `validate:"max=100"`
	LongName    string `validate:"max=200"`
	ClubName    string `validate:"max=100"`
	LeagueName  string `validate:"max=100"`
	Nationality string `validate:"max=100"`
	Positions   string `validate:"max=50"`
	AgeMin      *int   `validate:"omitempty,gte=0"`
	AgeMax      *int   `validate:"omitempty,gte=0"`
	OverallMin  *int   `validate:"omitempty,gte=0,lte=99"`
	OverallMax  *int   `validate:"omitempty,gte=0,lte=99"`
}

type topKQuery struct {
	K           int    `validate:"gte=0,lte=100"`
	Positions   string `validate:"max=50"`
	Nationality string `validate:"max=100"`
	LeagueName  string `validate:"max=100"`
	ClubName    string `validate:"max=100"`
}

type topByCriteriaQuery struct {
	Criteria string `validate:"omitempty,oneof=overall position nationality league club"`
	Value    string `validate:"max=100"`
	K        int    `validate:"gte=0,lte=100"`
}

type bestTeamQuery struct {
	Formation   string `validate:"max=20"`
	LeagueName  string `validate:"max=100"`
	Nationality string `validate:"max=100"`
}

// queryReader collects the first parse failure so handlers check once.
type queryReader struct {
	values url.Values
	err    error
}

func newQueryReader(values url.Values) *queryReader {
	return &queryReader{values: values}
}

func (q *queryReader) str(name string) string {
	return strings.TrimSpace(q.values.Get(name))
}

func (q *queryReader) intValue(name string) int {
	v := q.intPtr(name)
	if v == nil {
		return 0
	}
	return *v
}

func (q *queryReader) intPtr(name string) *int {
	raw := q.str(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		if q.err == nil {
			q.err = fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
		}
		return nil
	}
	return &v
}

func (q *queryReader) page() pageQuery {
	return pageQuery{
		Page:     q.intValue("page"),
		PageSize: q.intValue("page_size"),
	}
}

func (p pageQuery) toRequest() usecase.PageRequest {
	return usecase.PageRequest{Page: p.Page, PageSize: p.PageSize}
}

func parsePlayerID(raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: player id must be a positive integer", usecase.ErrInvalidInput)
	}
	return v, nil
}
