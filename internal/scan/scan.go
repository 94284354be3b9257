// Package scan defines the document-scan collaborator: an interface that
// turns an uploaded file into a flat set of extracted fields, plus a
// deterministic stub used in development and tests. How extraction happens
// (OCR, upload service) is outside this package; the wizard only consumes the
// field map through the declarative transforms on scan screens.
package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Kind identifies what sort of document was scanned. Scan screens declare
// their kind so the extraction backend can pick the right model.
type Kind string

const (
	KindLohnausweis   Kind = "lohnausweis"
	KindBankauszug    Kind = "bankauszug"
	KindWertschriften Kind = "wertschriften"
	KindSaeule3a      Kind = "saeule3a"
)

// Fields is the flat result of a scan: extracted field name to raw string
// value. Transforms on scan screens map these into topic shapes.
type Fields map[string]string

// Get returns the raw value for a field, empty string if absent.
func (f Fields) Get(key string) string { return f[key] }

// Amount parses a field as a decimal amount. Returns 0 for absent or
// unparseable values; scan output is best-effort by nature.
func (f Fields) Amount(key string) float64 {
	v, err := strconv.ParseFloat(f[key], 64)
	if err != nil {
		return 0
	}
	return v
}

// Scanner extracts fields from a document file.
type Scanner interface {
	Scan(ctx context.Context, file string, kind Kind) (Fields, error)
}

// StubScanner is the development scanner. It reads a JSON sidecar next to the
// scanned file (<file>.json) containing the extracted fields directly, which
// makes scan flows reproducible without an OCR backend.
type StubScanner struct{}

// Scan implements Scanner.
func (StubScanner) Scan(ctx context.Context, file string, kind Kind) (Fields, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(file + ".json")
	if err != nil {
		return nil, fmt.Errorf("reading scan sidecar for %s: %w", file, err)
	}
	var fields Fields
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parsing scan sidecar for %s: %w", file, err)
	}
	return fields, nil
}
