package report

import (
	"encoding/json"
	"io"

	"github.com/hyperifyio/gozakupki/internal/extract"
)

// WriteJSON encodes records as an indented JSON array. Non-ASCII text is
// written as UTF-8 rather than escaped.
func WriteJSON(w io.Writer, records []extract.Record) error {
	if records == nil {
		records = []extract.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
