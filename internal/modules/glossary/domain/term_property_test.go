package domain_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"pontutor/internal/modules/glossary/domain"
)

func isSubsequence(sub, full []domain.Term) bool {
	i := 0
	for _, t := range full {
		if i < len(sub) && sub[i] == t {
			i++
		}
	}
	return i == len(sub)
}

func fields(t domain.Term) []string {
	return []string{t.Display, t.Full, t.Simple, t.Function, t.Example, t.ReadAs}
}

func TestFilterProperties(t *testing.T) {
	terms := loadTerms(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("result is an ordered subsequence of the term list", prop.ForAll(
		func(query string) bool {
			return isSubsequence(domain.Filter(terms, query), terms)
		},
		gen.AnyString(),
	))

	properties.Property("every term matches a case-scrambled slice of its own fields", prop.ForAll(
		func(termIdx, fieldIdx, start, length int, flips []bool) bool {
			term := terms[termIdx%len(terms)]
			field := []rune(fields(term)[fieldIdx])
			if len(field) == 0 {
				return true
			}
			start %= len(field)
			end := start + length
			if end > len(field) {
				end = len(field)
			}
			sub := make([]rune, 0, end-start)
			for i, r := range field[start:end] {
				if flips[i%len(flips)] {
					r = unicode.ToUpper(r)
				}
				sub = append(sub, r)
			}
			for _, got := range domain.Filter(terms, string(sub)) {
				if got.Key == term.Key {
					return true
				}
			}
			return false
		},
		gen.IntRange(0, 3),
		gen.IntRange(0, 5),
		gen.IntRange(0, 300),
		gen.IntRange(1, 40),
		gen.SliceOfN(16, gen.Bool()),
	))

	properties.Property("query case does not change the result", prop.ForAll(
		func(query string) bool {
			lower := domain.Filter(terms, strings.ToLower(query))
			upper := domain.Filter(terms, strings.ToUpper(query))
			return len(keys(lower)) == len(keys(upper)) && isSubsequence(lower, upper)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
