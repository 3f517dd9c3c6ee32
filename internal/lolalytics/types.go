// Package lolalytics implements the fetch-normalize-parse pipeline for
// champion statistics scraped from lolalytics.com. It covers alias
// resolution for lane/rank filters, deterministic URL construction,
// transport over a pluggable Fetcher, and extraction of structured
// records from the retrieved markup.
package lolalytics

// Operation identifies one of the supported scrape operations.
type Operation string

// Supported operations.
const (
	OpTierlist     Operation = "tierlist"
	OpCounters     Operation = "counters"
	OpChampionData Operation = "champion_data"
	OpMatchup      Operation = "matchup"
	OpPatchNotes   Operation = "patch_notes"
)

// TierlistEntry is one row of the champion tier list, in display order.
// PBI (pick-ban influence) is empty when the column is absent from the page.
type TierlistEntry struct {
	Rank     string `json:"rank"`
	Champion string `json:"champion"`
	Tier     string `json:"tier"`
	Winrate  string `json:"winrate"`
	PBI      string `json:"pbi,omitempty"`
}

// CounterEntry is one counter matchup row, ordered by counter strength.
// Winrate carries no "%" suffix.
type CounterEntry struct {
	Champion string `json:"champion"`
	Winrate  string `json:"winrate"`
}

// DamageProfile is the damage breakdown section of a champion page.
// Absolute values are raw counts; percentage fields are formatted strings.
type DamageProfile struct {
	Physical    string `json:"physical"`
	Magic       string `json:"magic"`
	True        string `json:"true"`
	Total       string `json:"total"`
	PhysicalPct string `json:"physical_pct"`
	MagicPct    string `json:"magic_pct"`
	TruePct     string `json:"true_pct"`
}

// ChampionStats is the summary block of a champion build page. All values
// are the literal page text after whitespace trimming; no numeric coercion.
type ChampionStats struct {
	Winrate   string        `json:"winrate"`
	WRDelta   string        `json:"wr_delta"`
	GameAvgWR string        `json:"game_avg_wr"`
	Pickrate  string        `json:"pickrate"`
	Tier      string        `json:"tier"`
	Rank      string        `json:"rank"`
	Banrate   string        `json:"banrate"`
	Games     string        `json:"games"`
	Damage    DamageProfile `json:"damage"`
}

// MatchupStats summarizes a head-to-head matchup. Winrate is the first
// champion's winrate against the second, without the "%" suffix.
type MatchupStats struct {
	Winrate string `json:"winrate"`
	Games   string `json:"number_of_games"`
}

// PatchCategory names a patch-note change group.
type PatchCategory string

// Patch note categories accepted by PatchNotes. CategoryAll expands to the
// three concrete groups.
const (
	CategoryAll      PatchCategory = "all"
	CategoryBuffed   PatchCategory = "buffed"
	CategoryNerfed   PatchCategory = "nerfed"
	CategoryAdjusted PatchCategory = "adjusted"
)

// PatchEntry is one champion change from the current patch summary.
type PatchEntry struct {
	Champion string `json:"champion"`
	Winrate  string `json:"winrate"`
	Pickrate string `json:"pickrate"`
	Banrate  string `json:"banrate"`
}

// PatchNotes maps each requested category to its entries in page order.
// A requested category with no entries maps to an empty slice, never a
// missing key.
type PatchNotes map[PatchCategory][]PatchEntry
