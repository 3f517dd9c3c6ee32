package lolalytics

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDoc(t *testing.T, name string) *goquery.Document {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	require.NoError(t, err)
	return doc
}

func TestExtractTierlist(t *testing.T) {
	t.Parallel()

	entries, err := ExtractTierlist(loadDoc(t, "tierlist.html"), 5)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	assert.Equal(t, TierlistEntry{
		Rank:     "1",
		Champion: "Darius",
		Tier:     "S+",
		Winrate:  "52.31%",
		PBI:      "87",
	}, entries[0])

	// Document order is preserved.
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Champion)
	}
	assert.Equal(t, []string{"Darius", "Garen", "Sett", "Mordekaiser", "Fiora"}, names)
}

func TestExtractTierlistTruncates(t *testing.T) {
	t.Parallel()

	// The fixture holds 8 rows; asking for more returns them all.
	entries, err := ExtractTierlist(loadDoc(t, "tierlist.html"), 20)
	require.NoError(t, err)
	assert.Len(t, entries, 8)
	assert.Equal(t, "Camille", entries[7].Champion)
}

func TestExtractTierlistMissingTable(t *testing.T) {
	t.Parallel()

	_, err := ExtractTierlist(loadDoc(t, "matchup_missing.html"), 5)
	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, OpTierlist, extractErr.Op)
}

func TestExtractCounters(t *testing.T) {
	t.Parallel()

	entries, err := ExtractCounters(loadDoc(t, "counters.html"), 10)
	require.NoError(t, err)
	require.Len(t, entries, 3, "3 available rows, no padding")

	assert.Equal(t, CounterEntry{Champion: "Annie", Winrate: "54.21"}, entries[0])
	assert.Equal(t, "Pantheon", entries[2].Champion)
}

func TestExtractCountersLimit(t *testing.T) {
	t.Parallel()

	entries, err := ExtractCounters(loadDoc(t, "counters.html"), 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestExtractChampionStats(t *testing.T) {
	t.Parallel()

	stats, err := ExtractChampionStats(loadDoc(t, "champion.html"))
	require.NoError(t, err)

	assert.Equal(t, "50.84%", stats.Winrate)
	assert.Equal(t, "+1.31", stats.WRDelta)
	assert.Equal(t, "50.12", stats.GameAvgWR)
	assert.Equal(t, "8.2%", stats.Pickrate)
	assert.Equal(t, "A", stats.Tier)
	assert.Equal(t, "18 / 63", stats.Rank)
	assert.Equal(t, "4.3%", stats.Banrate)
	assert.Equal(t, "15,708", stats.Games)

	assert.Equal(t, DamageProfile{
		Physical:    "15708",
		Magic:       "8200",
		True:        "1100",
		Total:       "25008",
		PhysicalPct: "62.8%",
		MagicPct:    "32.8%",
		TruePct:     "4.4%",
	}, stats.Damage)
}

func TestExtractChampionStatsMissingSummary(t *testing.T) {
	t.Parallel()

	_, err := ExtractChampionStats(loadDoc(t, "matchup_missing.html"))
	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, OpChampionData, extractErr.Op)
}

func TestExtractMatchup(t *testing.T) {
	t.Parallel()

	stats, err := ExtractMatchup(loadDoc(t, "matchup.html"))
	require.NoError(t, err)
	assert.Equal(t, MatchupStats{Winrate: "47.15", Games: "5,821"}, stats)
}

func TestExtractMatchupMissingRegion(t *testing.T) {
	t.Parallel()

	_, err := ExtractMatchup(loadDoc(t, "matchup_missing.html"))
	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, OpMatchup, extractErr.Op)
}

func TestExtractPatchNotesAll(t *testing.T) {
	t.Parallel()

	notes, err := ExtractPatchNotes(loadDoc(t, "patch.html"), CategoryAll)
	require.NoError(t, err)
	require.Len(t, notes, 3)

	buffed := notes[CategoryBuffed]
	require.Len(t, buffed, 2)
	assert.Equal(t, PatchEntry{
		Champion: "Ahri",
		Winrate:  "51.24%",
		Pickrate: "12.1%",
		Banrate:  "3.4%",
	}, buffed[0])
	assert.Equal(t, "Zed", buffed[1].Champion)

	require.Len(t, notes[CategoryNerfed], 1)
	assert.Equal(t, "Kayn", notes[CategoryNerfed][0].Champion)

	adjusted, ok := notes[CategoryAdjusted]
	require.True(t, ok, "empty category still present")
	assert.NotNil(t, adjusted)
	assert.Empty(t, adjusted)
}

func TestExtractPatchNotesSingleCategory(t *testing.T) {
	t.Parallel()

	notes, err := ExtractPatchNotes(loadDoc(t, "patch.html"), CategoryNerfed)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Kayn", notes[CategoryNerfed][0].Champion)
}

func TestExtractPatchNotesEmptyGroup(t *testing.T) {
	t.Parallel()

	notes, err := ExtractPatchNotes(loadDoc(t, "patch_empty_buffed.html"), CategoryBuffed)
	require.NoError(t, err)

	buffed, ok := notes[CategoryBuffed]
	require.True(t, ok, "requested category must be present")
	assert.NotNil(t, buffed)
	assert.Empty(t, buffed)
}

func TestExtractPatchNotesMissingAnchor(t *testing.T) {
	t.Parallel()

	_, err := ExtractPatchNotes(loadDoc(t, "matchup_missing.html"), CategoryAll)
	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, OpPatchNotes, extractErr.Op)
}

func TestLeadingNumber(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"15,708":          15708,
		"15,708\n18 / 63": 15708,
		"52.3%":           52,
		"":                0,
		"n/a":             0,
	}
	for in, want := range cases {
		assert.Equal(t, want, leadingNumber(in), "input %q", in)
	}
}
