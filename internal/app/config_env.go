package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvOverrides forcefully overrides cfg fields with environment variables
// when the corresponding env vars are set. This lets env take precedence over
// a config file while flags remain highest precedence.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}
	if v := os.Getenv("ZAKUPKI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ZAKUPKI_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if d, ok := envDuration("ZAKUPKI_TIMEOUT"); ok {
		cfg.Timeout = d
	}
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("ZAKUPKI_PAGE"))); err == nil && n > 0 {
		cfg.Page = n
	}
	if v := os.Getenv("ZAKUPKI_MARKUP_FILE"); v != "" {
		cfg.MarkupFile = v
	}
	if v := os.Getenv("ZAKUPKI_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("ZAKUPKI_OUTPUT"); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv("ZAKUPKI_PDF_FONT"); v != "" {
		cfg.PDFFontPath = v
	}
	if v, ok := envBool("VERBOSE"); ok {
		cfg.Verbose = v
	}
}

func envDuration(key string) (time.Duration, bool) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return 0, false
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, false
	}
	return d, true
}

func envBool(key string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}
