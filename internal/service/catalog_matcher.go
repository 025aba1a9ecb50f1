package service

import (
	"strings"

	"github.com/guttosm/freight-service/internal/domain/model"
)

// assemblyMarker flags 90000-series assembly part numbers, whose suffixes vary in length.
const assemblyMarker = "-9"

// MatchCatalog returns the candidates whose model matches query, in input order.
// An empty result means "not found" and is not an error. Ties are left to the caller.
//
// Matching is tiered and the first applicable tier decides:
//  1. If either side contains "-9", one must contain the other.
//  2. Otherwise the digits before the first hyphen must be equal when both sides have some.
//  3. A query without such digits matches any candidate that contains it.
func MatchCatalog(query string, candidates []model.PartSpec) []model.PartSpec {
	q := normalizeQuery(query)
	qDigits := leadingDigits(q)

	matches := make([]model.PartSpec, 0)
	for _, candidate := range candidates {
		if modelMatches(q, qDigits, normalizeModel(candidate.Model)) {
			matches = append(matches, candidate)
		}
	}
	return matches
}

func modelMatches(q, qDigits, candidate string) bool {
	if strings.Contains(q, assemblyMarker) || strings.Contains(candidate, assemblyMarker) {
		return strings.Contains(candidate, q) || strings.Contains(q, candidate)
	}
	if qDigits == "" {
		return strings.Contains(candidate, q)
	}
	cDigits := leadingDigits(candidate)
	return cDigits != "" && cDigits == qDigits
}

// exactModel returns the only candidate whose normalized model equals the query.
func exactModel(query string, candidates []model.PartSpec) (model.PartSpec, bool) {
	q := normalizeModel(query)
	var (
		found model.PartSpec
		n     int
	)
	for _, c := range candidates {
		if normalizeModel(c.Model) == q {
			found = c
			n++
		}
	}
	return found, n == 1
}

func normalizeQuery(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// normalizeModel also collapses internal whitespace runs to a single space.
func normalizeModel(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}

// leadingDigits keeps the digit characters of the part before the first hyphen.
func leadingDigits(s string) string {
	head, _, _ := strings.Cut(s, "-")
	var b strings.Builder
	for _, r := range head {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
