package query

import (
	"math"
	"strings"
	"testing"
)

func TestParseInput_PhraseAndThreeNumbers(t *testing.T) {
	req := ParseInput("тендер 1000 5000 3")
	if req.Phrase != "тендер" {
		t.Fatalf("phrase=%q, want тендер", req.Phrase)
	}
	if req.PriceFrom != "1000" {
		t.Fatalf("priceFrom=%q, want 1000", req.PriceFrom)
	}
	if req.PriceTo != "5000" {
		t.Fatalf("priceTo=%q, want 5000", req.PriceTo)
	}
	if req.Limit != 3 {
		t.Fatalf("limit=%d, want 3", req.Limit)
	}
}

func TestParseInput_PhraseOnly(t *testing.T) {
	req := ParseInput("школа")
	if req.Phrase != "школа" {
		t.Fatalf("phrase=%q", req.Phrase)
	}
	if req.PriceFrom != "" || req.PriceTo != "" {
		t.Fatalf("expected no price bounds, got %q %q", req.PriceFrom, req.PriceTo)
	}
	if req.Limit != DefaultLimit {
		t.Fatalf("limit=%d, want %d", req.Limit, DefaultLimit)
	}
}

func TestParseInput_PositionalSlots(t *testing.T) {
	cases := []struct {
		in       string
		phrase   string
		from, to string // empty means absent
		limit    int
	}{
		{"", "", "", "", 5},
		{"   ", "", "", "", 5},
		{"ремонт кровли", "ремонт кровли", "", "", 5},
		{"ремонт 100", "ремонт", "100", "", 5},
		{"100 ремонт 200", "ремонт", "100", "200", 5},
		{"1 2 3 4 5", "", "1", "2", 3},
		{"a 1 b 2 c 3 d 4", "a b c d", "1", "2", 3},
		{"бумага 10 20 0", "бумага", "10", "20", 0},
		{"бумага 000 20 007", "бумага", "0", "20", 7},
		{"007 x", "x", "7", "", 5},
	}
	for _, tc := range cases {
		req := ParseInput(tc.in)
		if req.Phrase != tc.phrase {
			t.Fatalf("%q: phrase=%q want %q", tc.in, req.Phrase, tc.phrase)
		}
		if req.PriceFrom != tc.from || req.PriceTo != tc.to {
			t.Fatalf("%q: bounds=%q,%q want %q,%q", tc.in, req.PriceFrom, req.PriceTo, tc.from, tc.to)
		}
		if req.Limit != tc.limit {
			t.Fatalf("%q: limit=%d want %d", tc.in, req.Limit, tc.limit)
		}
	}
}

// Tokens with signs, decimal points or mixed characters stay in the phrase.
func TestParseInput_NonDigitTokensArePhrase(t *testing.T) {
	req := ParseInput("-5 1.5 44-ФЗ 2024г +7")
	if req.Phrase != "-5 1.5 44-ФЗ 2024г +7" {
		t.Fatalf("phrase=%q", req.Phrase)
	}
	if req.PriceFrom != "" || req.Limit != DefaultLimit {
		t.Fatalf("expected no numeric slots, got %+v", req)
	}
}

func TestParseInput_CollapsesWhitespace(t *testing.T) {
	req := ParseInput("\tпоставка \n  угля  ")
	if req.Phrase != "поставка угля" {
		t.Fatalf("phrase=%q", req.Phrase)
	}
}

// Digit runs wider than any integer type reach the URL as typed; only the
// extraction limit saturates.
func TestParseInput_Overflow(t *testing.T) {
	u := BuildSearchURL(ParseInput("x 99999999999999999999999 5"), 1)
	if !strings.Contains(u, "priceFromGeneral=99999999999999999999999&") {
		t.Fatalf("priceFrom not forwarded verbatim: %s", u)
	}
	if !strings.Contains(u, "priceToGeneral=5&") {
		t.Fatalf("priceTo missing: %s", u)
	}

	req := ParseInput("x 1 2 000099999999999999999999")
	if req.Limit != math.MaxInt {
		t.Fatalf("expected saturated limit, got %d", req.Limit)
	}
	u = BuildSearchURL(req, 1)
	if !strings.Contains(u, "recordsPerPage=_99999999999999999999&") {
		t.Fatalf("page size not forwarded verbatim: %s", u)
	}
	if req.Phrase != "x" {
		t.Fatalf("phrase=%q", req.Phrase)
	}
}
