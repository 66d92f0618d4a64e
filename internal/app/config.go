package app

import "time"

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// Defaults applied by DefaultConfig and recognised by ApplyFileConfig as
// "not explicitly set".
const (
	defaultUserAgent = "Mozilla/5.0"
	defaultFormat    = FormatText
	defaultPage      = 1
)

// Config holds runtime configuration for the application.
type Config struct {
	// Search endpoint; empty means the public portal.
	Endpoint string
	// Page is the results page number sent to the portal.
	Page int

	// HTTP
	UserAgent string
	Timeout   time.Duration

	// MarkupFile, when set, replaces the network fetch with a saved page.
	MarkupFile string

	// Output
	Format      string
	OutputPath  string
	PDFFontPath string

	Verbose bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Page:      defaultPage,
		UserAgent: defaultUserAgent,
		Format:    defaultFormat,
	}
}
