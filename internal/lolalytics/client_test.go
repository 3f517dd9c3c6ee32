package lolalytics

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher is a transport spy: it records every request and serves a
// canned response without touching the network.
type stubFetcher struct {
	mu       sync.Mutex
	calls    int
	requests []FetchRequest
	status   int
	body     []byte
	err      error
}

func (s *stubFetcher) Fetch(_ context.Context, req FetchRequest) (FetchResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.requests = append(s.requests, req)
	if s.err != nil {
		return FetchResponse{}, s.err
	}
	status := s.status
	if status == 0 {
		status = http.StatusOK
	}
	return FetchResponse{URL: req.URL, StatusCode: status, Body: s.body}, nil
}

func (s *stubFetcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func fixtureFetcher(t *testing.T, name string) *stubFetcher {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return &stubFetcher{body: body}
}

func TestClientTierlist(t *testing.T) {
	t.Parallel()

	fetcher := fixtureFetcher(t, "tierlist.html")
	client := NewClient(Config{}, fetcher, nil)

	entries, err := client.Tierlist(context.Background(), 5, "top", "diamond+")
	require.NoError(t, err)
	require.Len(t, entries, 5)
	assert.Equal(t, "Darius", entries[0].Champion)
	assert.Equal(t, "S+", entries[0].Tier)
	assert.NotEmpty(t, entries[0].Winrate)

	require.Equal(t, 1, fetcher.callCount())
	assert.Equal(t, "https://lolalytics.com/lol/tierlist/?lane=top&tier=diamond_plus", fetcher.requests[0].URL)
}

func TestClientTierlistInvalidLaneSkipsTransport(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{}
	client := NewClient(Config{}, fetcher, nil)

	_, err := client.Tierlist(context.Background(), 5, "invalid_lane", "")
	var invalid *InvalidLaneError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "invalid_lane", invalid.Raw)
	assert.Zero(t, fetcher.callCount(), "no transport call may happen on validation failure")
}

func TestClientInvalidRankSkipsTransport(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{}
	client := NewClient(Config{}, fetcher, nil)

	_, err := client.Counters(context.Background(), 10, "yasuo", "wood")
	var invalid *InvalidRankError
	require.ErrorAs(t, err, &invalid)
	assert.Zero(t, fetcher.callCount())
}

func TestClientCountersTruncates(t *testing.T) {
	t.Parallel()

	fetcher := fixtureFetcher(t, "counters.html")
	client := NewClient(Config{}, fetcher, nil)

	entries, err := client.Counters(context.Background(), 10, "yasuo", "master+")
	require.NoError(t, err)
	assert.Len(t, entries, 3, "only 3 rows available, no error")
	assert.Equal(t, "https://lolalytics.com/lol/yasuo/counters/?tier=master_plus", fetcher.requests[0].URL)
}

func TestClientCountersEmptyChampion(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{}
	client := NewClient(Config{}, fetcher, nil)

	_, err := client.Counters(context.Background(), 10, "", "")
	require.ErrorIs(t, err, ErrEmptyChampion)
	assert.Zero(t, fetcher.callCount())
}

func TestClientChampionData(t *testing.T) {
	t.Parallel()

	fetcher := fixtureFetcher(t, "champion.html")
	client := NewClient(Config{}, fetcher, nil)

	stats, err := client.ChampionData(context.Background(), "Jax", "top", "")
	require.NoError(t, err)
	assert.Equal(t, "50.84%", stats.Winrate)
	assert.Equal(t, "15,708", stats.Games)
	assert.Equal(t, "62.8%", stats.Damage.PhysicalPct)
	assert.Equal(t, "https://lolalytics.com/lol/jax/build/?lane=top", fetcher.requests[0].URL)
}

func TestClientMatchup(t *testing.T) {
	t.Parallel()

	fetcher := fixtureFetcher(t, "matchup.html")
	client := NewClient(Config{}, fetcher, nil)

	stats, err := client.Matchup(context.Background(), "jax", "fiora", "", "")
	require.NoError(t, err)
	assert.Equal(t, MatchupStats{Winrate: "47.15", Games: "5,821"}, stats)
}

func TestClientMatchupNoRegion(t *testing.T) {
	t.Parallel()

	fetcher := fixtureFetcher(t, "matchup_missing.html")
	client := NewClient(Config{}, fetcher, nil)

	_, err := client.Matchup(context.Background(), "jax", "fiora", "", "")
	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, OpMatchup, extractErr.Op)
}

func TestClientMatchupSameChampion(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{}
	client := NewClient(Config{}, fetcher, nil)

	_, err := client.Matchup(context.Background(), "jax", "Jax", "", "")
	require.ErrorIs(t, err, ErrSameChampion)
	assert.Zero(t, fetcher.callCount())
}

func TestClientPatchNotesEmptyCategory(t *testing.T) {
	t.Parallel()

	fetcher := fixtureFetcher(t, "patch_empty_buffed.html")
	client := NewClient(Config{}, fetcher, nil)

	notes, err := client.PatchNotes(context.Background(), "buffed", "")
	require.NoError(t, err)
	buffed, ok := notes[CategoryBuffed]
	require.True(t, ok)
	assert.Empty(t, buffed)
}

func TestClientPatchNotesUnknownCategory(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{}
	client := NewClient(Config{}, fetcher, nil)

	_, err := client.PatchNotes(context.Background(), "reworked", "")
	require.ErrorIs(t, err, ErrUnknownCategory)
	assert.Zero(t, fetcher.callCount())
}

func TestClientTransportStatusError(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{status: http.StatusServiceUnavailable, body: []byte("oops")}
	client := NewClient(Config{}, fetcher, nil)

	_, err := client.Tierlist(context.Background(), 5, "", "")
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusServiceUnavailable, transportErr.Status)
}

func TestClientTransportNetworkError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	fetcher := &stubFetcher{err: cause}
	client := NewClient(Config{}, fetcher, nil)

	_, err := client.Tierlist(context.Background(), 5, "", "")
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, cause, "cause must stay reachable via Unwrap")
}

func TestClientPassesConfiguredHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{"X-Custom": {"yes"}}
	fetcher := fixtureFetcher(t, "tierlist.html")
	client := NewClient(Config{Headers: headers}, fetcher, nil)

	_, err := client.Tierlist(context.Background(), 1, "", "")
	require.NoError(t, err)
	require.Len(t, fetcher.requests, 1)
	assert.Equal(t, "yes", fetcher.requests[0].Headers.Get("X-Custom"))
}

func TestClientCustomBaseURL(t *testing.T) {
	t.Parallel()

	fetcher := fixtureFetcher(t, "tierlist.html")
	client := NewClient(Config{BaseURL: "http://localhost:9999"}, fetcher, nil)

	_, err := client.Tierlist(context.Background(), 1, "", "")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/lol/tierlist/", fetcher.requests[0].URL)
}

func TestClientConcurrentCalls(t *testing.T) {
	t.Parallel()

	fetcher := fixtureFetcher(t, "tierlist.html")
	client := NewClient(Config{}, fetcher, nil)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Tierlist(context.Background(), 3, "jg", "gold+")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 8, fetcher.callCount())
}
