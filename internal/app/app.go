package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gozakupki/internal/extract"
	"github.com/hyperifyio/gozakupki/internal/fetch"
	"github.com/hyperifyio/gozakupki/internal/query"
	"github.com/hyperifyio/gozakupki/internal/report"
)

// App runs the search pipeline: parse input, build URL, fetch, extract.
type App struct {
	cfg       Config
	builder   query.Builder
	source    fetch.Source
	extractor extract.Extractor
}

// Outcome is the result of one search.
type Outcome struct {
	Request query.Request
	URL     string
	Records []extract.Record
	// Status is the HTTP status of a failed fetch, zero on success.
	Status int
}

// New validates cfg and wires the pipeline. A MarkupFile replaces the network.
func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	a := &App{
		cfg:       cfg,
		builder:   query.Builder{Endpoint: cfg.Endpoint},
		extractor: extract.RegistryExtractor{},
	}
	if strings.TrimSpace(cfg.MarkupFile) != "" {
		a.source = &fetch.FileSource{Path: cfg.MarkupFile}
	} else {
		a.source = &fetch.Client{
			UserAgent:         cfg.UserAgent,
			PerRequestTimeout: cfg.Timeout,
			RedirectMaxHops:   5,
		}
	}
	return a, nil
}

// Search runs the pipeline for raw input. A non-200 status is not an error:
// it is reported in Outcome.Status with no records.
func (a *App) Search(ctx context.Context, raw string) (Outcome, error) {
	req := query.ParseInput(raw)
	out := Outcome{Request: req, URL: a.builder.URL(req, a.page())}
	log.Debug().Str("phrase", req.Phrase).Int("limit", req.Limit).Str("url", out.URL).Msg("search url built")
	return a.fetchRecords(ctx, out)
}

func (a *App) fetchRecords(ctx context.Context, out Outcome) (Outcome, error) {
	out.Records = []extract.Record{}
	body, err := a.source.Get(ctx, out.URL)
	if err != nil {
		if code, ok := fetch.StatusCode(err); ok {
			log.Debug().Int("status", code).Str("url", out.URL).Msg("search page not loaded")
			out.Status = code
			return out, nil
		}
		return out, fmt.Errorf("fetch: %w", err)
	}
	out.Records = a.extractor.Extract(body, out.Request.Limit)
	log.Debug().Int("bytes", len(body)).Int("records", len(out.Records)).Int("limit", out.Request.Limit).Msg("records extracted")
	return out, nil
}

// Run executes one search and renders it in the configured format. Text goes
// to stdout unless OutputPath is set; PDF always goes to OutputPath. The
// output file is only created once the page has been fetched.
func (a *App) Run(ctx context.Context, raw string, stdout io.Writer) error {
	if a.cfg.OutputPath == "" {
		return a.render(ctx, raw, stdout)
	}
	var buf bytes.Buffer
	if err := a.render(ctx, raw, &buf); err != nil {
		return err
	}
	return writeOutput(a.cfg.OutputPath, buf.Bytes())
}

func (a *App) render(ctx context.Context, raw string, w io.Writer) error {
	format := strings.ToLower(strings.TrimSpace(a.cfg.Format))
	if format == "" {
		format = FormatText
	}

	req := query.ParseInput(raw)
	out := Outcome{Request: req, URL: a.builder.URL(req, a.page())}
	if format == FormatText {
		if err := report.WriteSearching(w, out.URL); err != nil {
			return err
		}
	} else {
		log.Info().Str("url", out.URL).Msg("searching")
	}

	out, err := a.fetchRecords(ctx, out)
	if err != nil {
		return err
	}
	if out.Status != 0 {
		if format == FormatText {
			if err := report.WriteFetchError(w, out.Status); err != nil {
				return err
			}
		} else {
			log.Error().Int("status", out.Status).Msg(report.FetchErrorLabel + " " + fmt.Sprint(out.Status))
		}
	}

	switch format {
	case FormatJSON:
		return report.WriteJSON(w, out.Records)
	case FormatPDF:
		if err := report.WritePDF(w, out.Records, report.PDFOptions{FontPath: a.cfg.PDFFontPath, Heading: out.URL}); err != nil {
			return err
		}
		log.Info().Str("out", a.cfg.OutputPath).Int("records", len(out.Records)).Msg("wrote pdf")
		return nil
	default:
		return report.WriteText(w, out.Records)
	}
}

func writeOutput(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func (a *App) page() int {
	if a.cfg.Page < 1 {
		return 1
	}
	return a.cfg.Page
}
