package lolalytics

import (
	"context"
	"net/http"
	"time"
)

// FetchRequest captures everything needed to retrieve a document.
type FetchRequest struct {
	URL     string
	Headers http.Header
}

// FetchResponse is the raw document returned by a Fetcher.
type FetchResponse struct {
	URL        string
	StatusCode int
	Body       []byte
	Duration   time.Duration
}

// Fetcher performs a single HTTP GET against the target URL. Implementations
// must not retry or cache; a failure is terminal for the call. The Client
// depends on this interface so callers can inject their own transport.
type Fetcher interface {
	Fetch(ctx context.Context, req FetchRequest) (FetchResponse, error)
}
