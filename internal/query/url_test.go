package query

import (
	"net/url"
	"strings"
	"testing"
)

func TestBuildSearchURL_Parameters(t *testing.T) {
	raw := BuildSearchURL(ParseInput("тендер 1000 5000 3"), 1)
	if !strings.HasPrefix(raw, DefaultEndpoint+"?") {
		t.Fatalf("unexpected prefix: %s", raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := u.Query()
	want := map[string]string{
		"searchString":       "тендер",
		"morphology":         "on",
		"search-filter":      "Дата размещения",
		"monitoringFilter":   "off",
		"sortBy":             "DATE_CREATED",
		"sortDirection":      "false",
		"recordsPerPage":     "_3",
		"showLotsInfoHidden": "false",
		"pageNumber":         "1",
		"fz44":               "on",
		"af":                 "on",
		"currencyIdGeneral":  "-1",
		"priceFromGeneral":   "1000",
		"priceToGeneral":     "5000",
	}
	for k, v := range want {
		if got := q.Get(k); got != v {
			t.Fatalf("%s=%q, want %q", k, got, v)
		}
	}
	if len(q) != len(want) {
		t.Fatalf("expected %d params, got %d: %v", len(want), len(q), q)
	}
}

func TestBuildSearchURL_OmitsAbsentPrices(t *testing.T) {
	raw := BuildSearchURL(ParseInput("школа"), 2)
	if strings.Contains(raw, "priceFromGeneral") || strings.Contains(raw, "priceToGeneral") {
		t.Fatalf("expected no price params: %s", raw)
	}
	if !strings.Contains(raw, "pageNumber=2") || !strings.Contains(raw, "recordsPerPage=_5") {
		t.Fatalf("missing page or size: %s", raw)
	}
}

func TestBuildSearchURL_PercentEncodesUTF8(t *testing.T) {
	raw := BuildSearchURL(Request{Phrase: "школа №1", Limit: 5}, 1)
	if !strings.Contains(raw, "searchString=%D1%88%D0%BA%D0%BE%D0%BB%D0%B0+%E2%84%961") {
		t.Fatalf("phrase not percent-encoded as UTF-8: %s", raw)
	}
	if !strings.Contains(raw, "search-filter=%D0%94%D0%B0%D1%82%D0%B0+%D1%80%D0%B0%D0%B7%D0%BC%D0%B5%D1%89%D0%B5%D0%BD%D0%B8%D1%8F") {
		t.Fatalf("filter label not encoded: %s", raw)
	}
}

func TestBuildSearchURL_Deterministic(t *testing.T) {
	req := ParseInput("уголь 10 20 7")
	first := BuildSearchURL(req, 1)
	for i := 0; i < 50; i++ {
		if got := BuildSearchURL(req, 1); got != first {
			t.Fatalf("non-deterministic url:\n%s\n%s", first, got)
		}
	}
}

func TestBuilder_ClampsPageAndUsesEndpoint(t *testing.T) {
	b := Builder{Endpoint: "http://127.0.0.1:8080/search?keep=1&pageNumber=9"}
	u, err := url.Parse(b.URL(Request{Limit: 0}, 0))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.Host != "127.0.0.1:8080" || u.Path != "/search" {
		t.Fatalf("endpoint not honored: %s", u)
	}
	q := u.Query()
	if q.Get("keep") != "1" {
		t.Fatalf("endpoint params dropped: %v", q)
	}
	if q.Get("pageNumber") != "1" {
		t.Fatalf("pageNumber=%q, want 1", q.Get("pageNumber"))
	}
	if q.Get("recordsPerPage") != "_0" {
		t.Fatalf("recordsPerPage=%q, want _0", q.Get("recordsPerPage"))
	}
}
