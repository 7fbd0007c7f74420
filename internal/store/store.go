// Package store loads the fixed result collection from a static document.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"searchbar/internal/domain"
)

// maxDocumentSize bounds how much of a remote document is read
const maxDocumentSize = 8 << 20

// ErrMissingResults is returned when the document has no "results" key
var ErrMissingResults = errors.New(`document has no "results" list`)

// LoadError reports a source that is unreachable or malformed
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load results from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// document is the on-disk shape: { "results": [ ... ] }
type document struct {
	Results *[]domain.ResultRecord `json:"results" yaml:"results"`
}

// Fetch reads and validates the result document at source, which is a file path
// or an http(s) URL. The format is YAML for .yaml/.yml sources and JSON otherwise.
func Fetch(ctx context.Context, source string) ([]domain.ResultRecord, error) {
	data, err := read(ctx, source)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	records, err := decode(source, data)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return records, nil
}

func read(ctx context.Context, source string) ([]byte, error) {
	if !isURL(source) {
		return os.ReadFile(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
}

func decode(source string, data []byte) ([]domain.ResultRecord, error) {
	var doc document
	switch formatOf(source) {
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	}

	if doc.Results == nil {
		return nil, ErrMissingResults
	}

	records := *doc.Results
	for i, r := range records {
		if !r.Type.Valid() {
			return nil, fmt.Errorf("record %d (%q): unknown type %q", i, r.Title, r.Type)
		}
	}
	return records, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func formatOf(source string) string {
	p := source
	if isURL(source) {
		// drop query and fragment before looking at the extension
		if i := strings.IndexAny(p, "?#"); i >= 0 {
			p = p[:i]
		}
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// Open loads the result collection once. A failed load is reported to the
// diagnostic sink and yields an empty store; the error is also returned so the
// caller can publish it.
func Open(ctx context.Context, source string, sink *zap.Logger) (*MemoryStore, error) {
	if sink == nil {
		sink = zap.NewNop()
	}

	records, err := Fetch(ctx, source)
	if err != nil {
		sink.Error("error fetching search results", zap.String("source", source), zap.Error(err))
		return NewMemoryStore(nil), err
	}

	sink.Info("search results loaded", zap.String("source", source), zap.Int("count", len(records)))
	return NewMemoryStore(records), nil
}
