package query

import (
	"math"
	"strconv"
	"strings"
)

// DefaultLimit is the number of records requested when the input carries
// fewer than three numbers.
const DefaultLimit = 5

// Request is a structured search derived from free-text input.
type Request struct {
	Phrase string
	// PriceFrom and PriceTo hold the typed digits with leading zeros removed.
	// Empty means the bound is absent.
	PriceFrom string
	PriceTo   string
	// Limit caps the number of extracted records. Zero is a literal value,
	// not "use the default".
	Limit int
	// PageSize is the page size sent to the portal in the typed digits.
	// When empty it is rendered from Limit.
	PageSize string
}

// ParseInput splits raw on whitespace and assigns all-digit tokens, in order,
// to price-from, price-to and limit. Remaining tokens form the phrase.
// Numbers beyond the third are dropped. It never fails.
func ParseInput(raw string) Request {
	tokens := strings.Fields(raw)
	words := make([]string, 0, len(tokens))
	var numbers []string
	for _, tok := range tokens {
		if isDigits(tok) {
			numbers = append(numbers, normalizeDigits(tok))
			continue
		}
		words = append(words, tok)
	}

	req := Request{Phrase: strings.Join(words, " "), Limit: DefaultLimit}
	if len(numbers) >= 1 {
		req.PriceFrom = numbers[0]
	}
	if len(numbers) >= 2 {
		req.PriceTo = numbers[1]
	}
	if len(numbers) >= 3 {
		req.PageSize = numbers[2]
		req.Limit = parseLimit(numbers[2])
	}
	return req
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// normalizeDigits drops leading zeros, keeping a single "0" for all-zero runs.
func normalizeDigits(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

// parseLimit saturates at math.MaxInt; the extractor cannot return more
// records than that anyway.
func parseLimit(s string) int {
	v, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return math.MaxInt
	}
	return int(v)
}
