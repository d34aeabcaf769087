package patterns

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format names an input layout.
type Format string

// Supported formats.
const (
	FormatCSV      Format = "csv"
	FormatTSV      Format = "tsv"
	FormatWordlist Format = "wordlist"
	FormatJSON     Format = "json"
)

// ParseFormat validates a format name. The empty name is returned as is
// and means "guess from the file extension".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatCSV, FormatTSV, FormatWordlist, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath guesses the format from the file extension: .json is a
// fixture, .tsv and .tab are tab-separated matrices, anything else is CSV.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".tsv", ".tab":
		return FormatTSV
	default:
		return FormatCSV
	}
}

// ReadFile opens path and reads it in the given format (guessed from the
// extension if empty). The Dataset is named after the file without extension.
func ReadFile(path string, format Format, opts ...Option) (*Dataset, error) {
	if format == "" {
		format = FormatFromPath(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("patterns: open %s: %w", path, err)
	}
	defer f.Close()

	var ds *Dataset
	switch format {
	case FormatCSV:
		ds, err = ReadMatrix(f, append([]Option{WithComma(',')}, opts...)...)
	case FormatTSV:
		ds, err = ReadMatrix(f, append([]Option{WithComma('\t')}, opts...)...)
	case FormatWordlist:
		ds, err = ReadWordlist(f, append([]Option{WithComma('\t')}, opts...)...)
	case FormatJSON:
		ds, err = ReadFixture(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ds.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return ds, nil
}
