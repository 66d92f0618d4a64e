package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gozakupki/internal/app"
)

const prompt = "Введите запрос: "

// errConfig marks failures that happen before the pipeline starts.
var errConfig = errors.New("config")

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Error().Err(err).Msg("run failed")
		if errors.Is(err, errConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, words, showVersion, err := parseFlags(args)
	if err != nil {
		return err
	}
	if showVersion {
		_, err := fmt.Fprintln(stdout, app.VersionString())
		return err
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}

	raw := strings.Join(words, " ")
	if len(words) == 0 {
		raw, err = readQuery(stdin, stdout)
		if err != nil {
			return fmt.Errorf("read query: %w", err)
		}
	}
	return a.Run(ctx, raw, stdout)
}

// parseFlags resolves configuration with precedence flags > env > file > defaults.
func parseFlags(args []string) (app.Config, []string, bool, error) {
	def := app.DefaultConfig()
	fs := flag.NewFlagSet("gozakupki", flag.ContinueOnError)

	var (
		configPath  string
		envFiles    string
		showVersion bool
		flagCfg     = def
	)
	fs.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	fs.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files loaded before reading env")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.StringVar(&flagCfg.Endpoint, "endpoint", def.Endpoint, "Search endpoint (default: public portal)")
	fs.IntVar(&flagCfg.Page, "page", def.Page, "Results page number")
	fs.StringVar(&flagCfg.UserAgent, "ua", def.UserAgent, "User-Agent header")
	fs.DurationVar(&flagCfg.Timeout, "timeout", def.Timeout, "Request timeout (0 uses the HTTP client default)")
	fs.StringVar(&flagCfg.MarkupFile, "markup", def.MarkupFile, "Read the results page from a saved HTML file instead of the network")
	fs.StringVar(&flagCfg.Format, "format", def.Format, "Output format: text, json or pdf")
	fs.StringVar(&flagCfg.OutputPath, "output", def.OutputPath, "Write output to this file instead of stdout")
	fs.StringVar(&flagCfg.PDFFontPath, "pdf.font", def.PDFFontPath, "UTF-8 TrueType font for PDF output")
	fs.BoolVar(&flagCfg.Verbose, "v", def.Verbose, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return app.Config{}, nil, false, err
	}

	if err := app.LoadEnvFiles(strings.Split(envFiles, ",")...); err != nil {
		return app.Config{}, nil, false, fmt.Errorf("%w: load env: %v", errConfig, err)
	}

	cfg := def
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			return app.Config{}, nil, false, fmt.Errorf("%w: %v", errConfig, err)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvOverrides(&cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "endpoint":
			cfg.Endpoint = flagCfg.Endpoint
		case "page":
			cfg.Page = flagCfg.Page
		case "ua":
			cfg.UserAgent = flagCfg.UserAgent
		case "timeout":
			cfg.Timeout = flagCfg.Timeout
		case "markup":
			cfg.MarkupFile = flagCfg.MarkupFile
		case "format":
			cfg.Format = flagCfg.Format
		case "output":
			cfg.OutputPath = flagCfg.OutputPath
		case "pdf.font":
			cfg.PDFFontPath = flagCfg.PDFFontPath
		case "v":
			cfg.Verbose = flagCfg.Verbose
		}
	})
	return cfg, fs.Args(), showVersion, nil
}

// readQuery shows the prompt and reads one line. EOF without input yields
// an empty query.
func readQuery(stdin io.Reader, stdout io.Writer) (string, error) {
	if _, err := fmt.Fprint(stdout, prompt); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
