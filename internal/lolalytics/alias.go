package lolalytics

// Lane is a canonical lane filter. The empty value means "all lanes" and
// causes the lane parameter to be omitted from the query.
type Lane string

// Canonical lanes.
const (
	LaneAll     Lane = ""
	LaneTop     Lane = "top"
	LaneJungle  Lane = "jungle"
	LaneMiddle  Lane = "middle"
	LaneBottom  Lane = "bottom"
	LaneSupport Lane = "support"
)

// Rank is a canonical rank filter. The empty value means the site default
// tier and causes the tier parameter to be omitted from the query.
type Rank string

// Canonical ranks.
const (
	RankDefault         Rank = ""
	RankChallenger      Rank = "challenger"
	RankGrandmasterPlus Rank = "grandmaster_plus"
	RankGrandmaster     Rank = "grandmaster"
	RankMasterPlus      Rank = "master_plus"
	RankMaster          Rank = "master"
	RankDiamondPlus     Rank = "diamond_plus"
	RankDiamond         Rank = "diamond"
	RankEmerald         Rank = "emerald"
	RankPlatinumPlus    Rank = "platinum_plus"
	RankPlatinum        Rank = "platinum"
	RankGoldPlus        Rank = "gold_plus"
	RankGold            Rank = "gold"
	RankSilver          Rank = "silver"
	RankBronze          Rank = "bronze"
	RankIron            Rank = "iron"
	RankUnranked        Rank = "unranked"
	RankAll             Rank = "all"
	RankOneTrick        Rank = "1trick"
)

// laneAliases maps accepted input spellings to canonical lanes. The table
// is never mutated after initialization and is safe for concurrent reads.
var laneAliases = map[string]Lane{
	"top":     LaneTop,
	"jg":      LaneJungle,
	"jng":     LaneJungle,
	"jungle":  LaneJungle,
	"mid":     LaneMiddle,
	"middle":  LaneMiddle,
	"bottom":  LaneBottom,
	"bot":     LaneBottom,
	"adc":     LaneBottom,
	"support": LaneSupport,
	"supp":    LaneSupport,
	"sup":     LaneSupport,
}

// rankAliases maps accepted input spellings to canonical ranks.
var rankAliases = map[string]Rank{
	"challenger":       RankChallenger,
	"chall":            RankChallenger,
	"c":                RankChallenger,
	"grandmaster_plus": RankGrandmasterPlus,
	"grandmaster+":     RankGrandmasterPlus,
	"gm+":              RankGrandmasterPlus,
	"grandmaster":      RankGrandmaster,
	"grandm":           RankGrandmaster,
	"gm":               RankGrandmaster,
	"master_plus":      RankMasterPlus,
	"master+":          RankMasterPlus,
	"mast+":            RankMasterPlus,
	"m+":               RankMasterPlus,
	"master":           RankMaster,
	"mast":             RankMaster,
	"m":                RankMaster,
	"diamond_plus":     RankDiamondPlus,
	"diamond+":         RankDiamondPlus,
	"diam+":            RankDiamondPlus,
	"dia+":             RankDiamondPlus,
	"d+":               RankDiamondPlus,
	"diamond":          RankDiamond,
	"diam":             RankDiamond,
	"dia":              RankDiamond,
	"d":                RankDiamond,
	"emerald":          RankEmerald,
	"eme":              RankEmerald,
	"em":               RankEmerald,
	"e":                RankEmerald,
	"platinum_plus":    RankPlatinumPlus,
	"platinum+":        RankPlatinumPlus,
	"plat+":            RankPlatinumPlus,
	"pl+":              RankPlatinumPlus,
	"p+":               RankPlatinumPlus,
	"platinum":         RankPlatinum,
	"plat":             RankPlatinum,
	"pl":               RankPlatinum,
	"p":                RankPlatinum,
	"gold_plus":        RankGoldPlus,
	"gold+":            RankGoldPlus,
	"g+":               RankGoldPlus,
	"gold":             RankGold,
	"g":                RankGold,
	"silver":           RankSilver,
	"silv":             RankSilver,
	"s":                RankSilver,
	"bronze":           RankBronze,
	"br":               RankBronze,
	"b":                RankBronze,
	"iron":             RankIron,
	"i":                RankIron,
	"unranked":         RankUnranked,
	"unrank":           RankUnranked,
	"unr":              RankUnranked,
	"un":               RankUnranked,
	"none":             RankUnranked,
	"null":             RankUnranked,
	"-":                RankUnranked,
	"all":              RankAll,
	"otp":              RankOneTrick,
	"1trick":           RankOneTrick,
	"1-trick":          RankOneTrick,
	"1trickpony":       RankOneTrick,
	"onetrickpony":     RankOneTrick,
	"onetrick":         RankOneTrick,
}

// ResolveLane normalizes a raw lane string to its canonical value. An empty
// string resolves to LaneAll without error. Matching is case-sensitive; the
// table keys are all lowercase.
func ResolveLane(raw string) (Lane, error) {
	if raw == "" {
		return LaneAll, nil
	}
	lane, ok := laneAliases[raw]
	if !ok {
		return LaneAll, &InvalidLaneError{Raw: raw}
	}
	return lane, nil
}

// ResolveRank normalizes a raw rank string to its canonical value. An empty
// string resolves to RankDefault without error.
func ResolveRank(raw string) (Rank, error) {
	if raw == "" {
		return RankDefault, nil
	}
	rank, ok := rankAliases[raw]
	if !ok {
		return RankDefault, &InvalidRankError{Raw: raw}
	}
	return rank, nil
}

// LaneAliases returns a copy of the lane alias table, for callers that
// display valid values to an end user.
func LaneAliases() map[string]Lane {
	out := make(map[string]Lane, len(laneAliases))
	for k, v := range laneAliases {
		out[k] = v
	}
	return out
}

// RankAliases returns a copy of the rank alias table.
func RankAliases() map[string]Rank {
	out := make(map[string]Rank, len(rankAliases))
	for k, v := range rankAliases {
		out[k] = v
	}
	return out
}
