package fetch

import (
	"context"
	"errors"
	"os"
	"strings"
)

// FileSource serves a saved results page from disk for offline runs.
// The requested URL is ignored.
type FileSource struct {
	Path string
}

func (f *FileSource) Get(ctx context.Context, _ string) ([]byte, error) {
	if strings.TrimSpace(f.Path) == "" {
		return nil, errors.New("markup file path is empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(f.Path)
}
