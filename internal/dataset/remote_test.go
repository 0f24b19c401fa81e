package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compute-sales-go/internal/config"
)

func fastLoader() *Loader {
	l := NewLoader(config.Remote{Timeout: time.Second, MaxRetry: 2 * time.Second})
	l.initialInterval = 5 * time.Millisecond
	return l
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"title":"A","price":10}]`))
	}))
	defer srv.Close()

	catalog, err := fastLoader().LoadCatalog(context.Background(), srv.URL+"/catalog.json")
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "A", catalog[0].Title)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchNotFoundIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	url := srv.URL + "/missing.json"
	_, err := fastLoader().LoadRecords(context.Background(), url)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.Equal(t, int32(1), calls.Load())

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "No se pudo encontrar el archivo: "+url, loadErr.Diagnostic())
}

func TestFetchClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := fastLoader().LoadRecords(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch))
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchGivesUpAfterMaxRetry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	l := fastLoader()
	l.maxRetry = 100 * time.Millisecond

	_, err := l.LoadRecords(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch))
}

func TestFetchBodyIsValidated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := fastLoader().LoadRecords(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}
