package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
)

// fetch GETs url, retrying transport errors and 5xx answers with exponential
// backoff. 404 and 410 map to ErrFileNotFound; other 4xx are not retried.
func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	log := l.log.WithField("component", "dataset.remote").WithField("url", url)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = l.maxRetry
	if l.initialInterval > 0 {
		bo.InitialInterval = l.initialInterval
	}

	var (
		body    []byte
		lastErr error
		attempt int
	)
	op := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			lastErr = newLoadError(url, ErrFetch, err.Error())
			return backoff.Permanent(lastErr)
		}
		resp, err := l.client.Do(req)
		if err != nil {
			lastErr = newLoadError(url, ErrFetch, err.Error())
			log.WithField("attempt", attempt).WithError(err).Warn("request failed")
			return lastErr
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			lastErr = newLoadError(url, ErrFetch, err.Error())
			return lastErr
		}
		switch {
		case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
			lastErr = newLoadError(url, ErrFileNotFound, resp.Status)
			return backoff.Permanent(lastErr)
		case resp.StatusCode >= 500:
			lastErr = newLoadError(url, ErrFetch, fmt.Sprintf("server error: %s", resp.Status))
			log.WithField("attempt", attempt).WithField("http_status", resp.StatusCode).Warn("server error")
			return lastErr
		case resp.StatusCode >= 300:
			lastErr = newLoadError(url, ErrFetch, fmt.Sprintf("unexpected status: %s", resp.Status))
			return backoff.Permanent(lastErr)
		}
		body = b
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		if lastErr == nil {
			lastErr = newLoadError(url, ErrFetch, err.Error())
		}
		return nil, lastErr
	}
	log.WithField("attempts", attempt).WithField("bytes", len(body)).Debug("fetched")
	return body, nil
}
