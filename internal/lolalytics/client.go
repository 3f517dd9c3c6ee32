package lolalytics

import (
	"bytes"
	"context"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// DefaultBaseURL is the production site root.
const DefaultBaseURL = "https://lolalytics.com"

// Config controls Client behavior. Headers are passed through to the
// Fetcher unchanged on every request.
type Config struct {
	BaseURL string
	Headers http.Header
}

// Client is the request orchestrator: it resolves filter aliases, builds
// the target URL, drives the Fetcher, and extracts structured records from
// the retrieved document. A Client performs no caching and keeps no state
// between calls; it is safe for concurrent use.
type Client struct {
	baseURL string
	headers http.Header
	fetcher Fetcher
	logger  *zap.Logger
}

// NewClient constructs a Client around the given Fetcher.
func NewClient(cfg Config, fetcher Fetcher, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		headers: cfg.Headers,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Tierlist returns up to n tier list rows for the given raw lane and rank
// filters. Empty filters fall back to the site defaults.
func (c *Client) Tierlist(ctx context.Context, n int, lane, rank string) ([]TierlistEntry, error) {
	req, err := c.resolve(Request{Op: OpTierlist, Limit: n}, lane, rank)
	if err != nil {
		return nil, err
	}
	doc, err := c.fetchDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	return ExtractTierlist(doc, n)
}

// Counters returns up to n counter rows for the champion under the given
// raw rank filter.
func (c *Client) Counters(ctx context.Context, n int, champion, rank string) ([]CounterEntry, error) {
	req, err := c.resolve(Request{Op: OpCounters, Champion: champion, Limit: n}, "", rank)
	if err != nil {
		return nil, err
	}
	doc, err := c.fetchDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	return ExtractCounters(doc, n)
}

// ChampionData returns the build page summary for the champion.
func (c *Client) ChampionData(ctx context.Context, champion, lane, rank string) (ChampionStats, error) {
	req, err := c.resolve(Request{Op: OpChampionData, Champion: champion}, lane, rank)
	if err != nil {
		return ChampionStats{}, err
	}
	doc, err := c.fetchDocument(ctx, req)
	if err != nil {
		return ChampionStats{}, err
	}
	return ExtractChampionStats(doc)
}

// Matchup returns the head-to-head summary for champion against opponent.
func (c *Client) Matchup(ctx context.Context, champion, opponent, lane, rank string) (MatchupStats, error) {
	req, err := c.resolve(Request{Op: OpMatchup, Champion: champion, Opponent: opponent}, lane, rank)
	if err != nil {
		return MatchupStats{}, err
	}
	doc, err := c.fetchDocument(ctx, req)
	if err != nil {
		return MatchupStats{}, err
	}
	return ExtractMatchup(doc)
}

// PatchNotes returns the current patch change groups for the category under
// the given raw rank filter.
func (c *Client) PatchNotes(ctx context.Context, category, rank string) (PatchNotes, error) {
	req, err := c.resolve(Request{Op: OpPatchNotes, Category: PatchCategory(category)}, "", rank)
	if err != nil {
		return nil, err
	}
	doc, err := c.fetchDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	return ExtractPatchNotes(doc, req.Category)
}

// resolve normalizes the raw filters onto the request and validates it
// before any network activity.
func (c *Client) resolve(req Request, lane, rank string) (Request, error) {
	l, err := ResolveLane(lane)
	if err != nil {
		return Request{}, err
	}
	r, err := ResolveRank(rank)
	if err != nil {
		return Request{}, err
	}
	req.Lane = l
	req.Rank = r
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// fetchDocument performs the single network round trip for the request and
// parses the response body. Transport failures are never retried.
func (c *Client) fetchDocument(ctx context.Context, req Request) (*goquery.Document, error) {
	target, err := BuildURL(c.baseURL, req)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetching document",
		zap.String("operation", string(req.Op)),
		zap.String("url", target),
	)
	resp, err := c.fetcher.Fetch(ctx, FetchRequest{URL: target, Headers: c.headers})
	if err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Status: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, &ExtractionError{Op: req.Op, Reason: "parse document: " + err.Error()}
	}
	c.logger.Debug("document fetched",
		zap.String("operation", string(req.Op)),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(resp.Body)),
		zap.Duration("duration", resp.Duration),
	)
	return doc, nil
}
