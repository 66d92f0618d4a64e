package extract

// Extractor turns a results page into listing records.
// Implementations must be deterministic and never fail on missing fields.
type Extractor interface {
	Extract(markup []byte, limit int) []Record
}

// RegistryExtractor reads the portal's search-registry entry blocks.
type RegistryExtractor struct{}

func (RegistryExtractor) Extract(markup []byte, limit int) []Record {
	return Extract(markup, limit)
}
