package dataset

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"

	"compute-sales-go/internal/config"
	"compute-sales-go/internal/logger"
	"compute-sales-go/internal/types"
)

// Numbers stay json.Number so prices and quantities keep their exact value.
var json = jsoniter.Config{
	EscapeHTML: true,
	UseNumber:  true,
}.Froze()

// Loader reads JSON arrays of objects from local files or http(s) URLs.
type Loader struct {
	client          *http.Client
	maxRetry        time.Duration
	initialInterval time.Duration
	log             *logger.Logger
}

func NewLoader(cfg config.Remote) *Loader {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	maxRetry := cfg.MaxRetry
	if maxRetry <= 0 {
		maxRetry = 30 * time.Second
	}
	return &Loader{
		client:   &http.Client{Timeout: timeout},
		maxRetry: maxRetry,
		log:      logger.New(),
	}
}

// WithLogger returns a copy of l that logs through log.
func (l *Loader) WithLogger(log *logger.Logger) *Loader {
	if log == nil {
		return l
	}
	cp := *l
	cp.log = log
	return &cp
}

// IsRemote reports whether path should be fetched over HTTP.
func IsRemote(path string) bool {
	l := strings.ToLower(path)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// LoadRecords returns the objects of the top-level JSON array at path.
// Failures are *LoadError values wrapping ErrFileNotFound, ErrEncoding,
// ErrDecode or ErrFetch.
func (l *Loader) LoadRecords(ctx context.Context, path string) ([]types.Record, error) {
	log := l.log.WithField("component", "dataset.loader").WithField("path", path)

	var (
		raw []byte
		err error
	)
	if IsRemote(path) {
		raw, err = l.fetch(ctx, path)
	} else {
		raw, err = os.ReadFile(path)
		if err != nil {
			err = newLoadError(path, ErrFileNotFound, err.Error())
		}
	}
	if err != nil {
		log.WithError(err).Error("read failed")
		return nil, err
	}

	records, err := decodeRecords(path, raw)
	if err != nil {
		log.WithError(err).Error("decode failed")
		return nil, err
	}
	log.WithField("records", len(records)).Debug("records loaded")
	return records, nil
}

func decodeRecords(path string, raw []byte) ([]types.Record, error) {
	// text is decoded before it is parsed, so encoding errors win
	if !utf8.Valid(raw) {
		return nil, newLoadError(path, ErrEncoding, "invalid UTF-8 byte sequence")
	}

	// jsoniter accepts numbers like 01 or 1. that are not JSON
	if !json.Valid(raw) {
		return nil, newLoadError(path, ErrDecode, "invalid JSON")
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, newLoadError(path, ErrDecode, err.Error())
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, newLoadError(path, ErrDecode, "top level is not an array")
	}

	out := make([]types.Record, 0, len(items))
	for i, it := range items {
		rec, ok := it.(map[string]any)
		if !ok {
			return nil, newLoadError(path, ErrDecode, fmt.Sprintf("element %d is not an object", i))
		}
		out = append(out, rec)
	}
	return out, nil
}

// LoadCatalog loads path and keeps the entries with a string title and a
// numeric price.
func (l *Loader) LoadCatalog(ctx context.Context, path string) ([]types.CatalogEntry, error) {
	log := l.log.WithField("component", "dataset.catalog").WithField("path", path)

	records, err := l.LoadRecords(ctx, path)
	if err != nil {
		return nil, err
	}
	catalog := make([]types.CatalogEntry, 0, len(records))
	for i, rec := range records {
		entry, err := ParseCatalogEntry(rec)
		if err != nil {
			log.WithField("index", i).WithError(err).Warn("skipping catalog entry")
			continue
		}
		catalog = append(catalog, entry)
	}
	log.WithField("products", len(catalog)).Info("catalog loaded")
	return catalog, nil
}
