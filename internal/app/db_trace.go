package app

import (
	"regexp"
	"strconv"
	"strings"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	// Two or more placeholder tuples, as produced by batched player upserts.
	valuesTuplesRegex = regexp.MustCompile(`\(\$\d+(?:, \$\d+)*\)(?:, \(\$\d+(?:, \$\d+)*\))+`)
	valuesTupleRegex  = regexp.MustCompile(`\(\$\d+(?:, \$\d+)*\)`)
)

func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	normalized = valuesTuplesRegex.ReplaceAllStringFunc(normalized, func(tuples string) string {
		rows := valuesTupleRegex.FindAllString(tuples, -1)
		return rows[0] + " /* " + strconv.Itoa(len(rows)) + " rows */"
	})
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
