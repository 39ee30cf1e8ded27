package httputil

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	maxAttempts   = 3
	baseDelay     = 1 * time.Second
	attemptBudget = 15 * time.Second
)

// DoWithRetry executes the request up to three times with exponential
// backoff (1s, 2s, 4s). Only 5xx responses, 429s, and transport errors are
// retried; other 4xx responses come back to the caller as-is. Each attempt
// gets its own 15 second budget. makeReq must build a fresh request per
// attempt since request bodies are single-use.
func DoWithRetry(ctx context.Context, client *http.Client, tag string, makeReq func(ctx context.Context) (*http.Request, error)) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptBudget)

		req, err := makeReq(attemptCtx)
		if err != nil {
			cancel()
			return nil, err
		}

		resp, err := client.Do(req)
		if err == nil && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			// Success or a non-retryable client error. The attempt context
			// has to outlive this call while the caller reads the body, so
			// tie its cancellation to Close.
			resp.Body = &cancelBody{ReadCloser: resp.Body, cancel: cancel}
			return resp, nil
		}

		if err != nil {
			lastErr = err
			log.Printf("[%s] attempt %d/%d failed: %v", tag, attempt+1, maxAttempts, err)
		} else {
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			log.Printf("[%s] attempt %d/%d failed: status %d", tag, attempt+1, maxAttempts, resp.StatusCode)
		}
		cancel()

		if attempt < maxAttempts-1 {
			delay := baseDelay << attempt
			log.Printf("[%s] retrying in %s", tag, delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("all %d attempts failed: %w", maxAttempts, lastErr)
}

type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}
