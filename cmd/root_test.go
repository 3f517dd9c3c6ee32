package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lolscout/internal/config"
	"lolscout/internal/lolalytics"
)

// mockApp satisfies the App interface without touching the network.
type mockApp struct {
	cfg    config.Config
	closed bool
}

func (m *mockApp) Close()                        { m.closed = true }
func (m *mockApp) GetConfig() config.Config      { return m.cfg }
func (m *mockApp) GetLogger() *zap.Logger        { return zap.NewNop() }
func (m *mockApp) GetClient() *lolalytics.Client { return nil }

func withMockApp(t *testing.T, mock *mockApp) {
	t.Helper()
	orig := newApp
	newApp = func(_ context.Context) (App, error) {
		return mock, nil
	}
	t.Cleanup(func() { newApp = orig })
}

func TestLanesCommand(t *testing.T) {
	mock := &mockApp{}
	withMockApp(t, mock)

	root := newRootCmd()
	root.SetArgs([]string{"lanes"})
	require.NoError(t, root.Execute())
	assert.True(t, mock.closed)
}

func TestRanksCommandJSON(t *testing.T) {
	withMockApp(t, &mockApp{})

	root := newRootCmd()
	root.SetArgs([]string{"ranks", "--json"})
	require.NoError(t, root.Execute())
}

func TestCountersRequiresArgument(t *testing.T) {
	withMockApp(t, &mockApp{})

	root := newRootCmd()
	root.SetArgs([]string{"counters"})
	require.Error(t, root.Execute())
}

func TestMatchupRequiresTwoArguments(t *testing.T) {
	withMockApp(t, &mockApp{})

	root := newRootCmd()
	root.SetArgs([]string{"matchup", "jax"})
	require.Error(t, root.Execute())
}

func TestLaneAndRankFallBackToConfigDefaults(t *testing.T) {
	cfg := config.Config{}
	cfg.Defaults.Lane = "mid"
	cfg.Defaults.Rank = "gold+"

	laneFlag, rankFlag = "", ""
	assert.Equal(t, "mid", laneArg(cfg))
	assert.Equal(t, "gold+", rankArg(cfg))

	laneFlag, rankFlag = "top", "dia+"
	t.Cleanup(func() { laneFlag, rankFlag = "", "" })
	assert.Equal(t, "top", laneArg(cfg))
	assert.Equal(t, "dia+", rankArg(cfg))
}
