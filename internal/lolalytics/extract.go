package lolalytics

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// patchGroupIndex maps each concrete patch category to its position among
// the patch summary columns.
var patchGroupIndex = map[PatchCategory]int{
	CategoryBuffed:   1,
	CategoryNerfed:   2,
	CategoryAdjusted: 3,
}

// ExtractTierlist walks the tier list rows in document order and returns up
// to limit entries. Fewer rows than limit is not an error; the result is
// silently truncated to what the page holds.
func ExtractTierlist(doc *goquery.Document, limit int) ([]TierlistEntry, error) {
	table, err := anchor(doc, OpTierlist, "tier list table", 6)
	if err != nil {
		return nil, err
	}

	rows := table.ChildrenFiltered("div")
	entries := make([]TierlistEntry, 0, limit)
	// The first two children are header rows.
	for i := 2; i < rows.Length() && len(entries) < limit; i++ {
		row := rows.Eq(i)
		cells := row.ChildrenFiltered("div")
		if cells.Length() < 6 {
			break
		}
		champion := clean(nthDiv(row, 3).Find("a").First().Text())
		if champion == "" {
			break
		}
		entries = append(entries, TierlistEntry{
			Rank:     clean(nthDiv(row, 1).Text()),
			Champion: champion,
			Tier:     clean(nthDiv(row, 4).Text()),
			Winrate:  clean(nthDiv(row, 6).Find("span").First().Text()),
			PBI:      clean(nthDiv(nthDiv(row, 8), 1).Text()),
		})
	}
	return entries, nil
}

// ExtractCounters returns up to limit counter rows, ordered by counter
// strength as the page presents them. Winrates are stripped of the "%"
// suffix and anything after it.
func ExtractCounters(doc *goquery.Document, limit int) ([]CounterEntry, error) {
	table, err := anchor(doc, OpCounters, "counter list", 6, 1, 2)
	if err != nil {
		return nil, err
	}

	cards := table.ChildrenFiltered("span")
	entries := make([]CounterEntry, 0, limit)
	for i := 0; i < cards.Length() && len(entries) < limit; i++ {
		body := cards.Eq(i).Find("a").First().ChildrenFiltered("div").First()
		champion := clean(nthDiv(body, 1).Text())
		if champion == "" {
			break
		}
		entries = append(entries, CounterEntry{
			Champion: champion,
			Winrate:  beforePercent(nthDiv(nthDiv(body, 2), 1).Text()),
		})
	}
	return entries, nil
}

// ExtractChampionStats reads the eight summary cells and the damage
// breakdown from a champion build page.
func ExtractChampionStats(doc *goquery.Document) (ChampionStats, error) {
	summary, err := anchor(doc, OpChampionData, "champion summary", 5, 1, 2, 2)
	if err != nil {
		return ChampionStats{}, err
	}

	rows := summary.ChildrenFiltered("div")
	if rows.Length() < 2 {
		return ChampionStats{}, &ExtractionError{Op: OpChampionData, Reason: "champion summary incomplete"}
	}
	cell := func(row, col int) string {
		return firstLine(nthDiv(nthDiv(rows.Eq(row), col), 1).Text())
	}
	stats := ChampionStats{
		Winrate:   cell(0, 1),
		WRDelta:   cell(0, 2),
		GameAvgWR: cell(0, 3),
		Pickrate:  cell(0, 4),
		Tier:      cell(1, 1),
		Rank:      cell(1, 2),
		Banrate:   cell(1, 3),
		Games:     cell(1, 4),
	}
	if stats.Winrate == "" {
		return ChampionStats{}, &ExtractionError{Op: OpChampionData, Reason: "champion summary incomplete"}
	}
	stats.Damage = extractDamage(doc)
	return stats, nil
}

// ExtractMatchup reads the head-to-head summary from a versus build page.
// When the page carries more than one candidate region the first structural
// match wins.
func ExtractMatchup(doc *goquery.Document) (MatchupStats, error) {
	region, err := anchor(doc, OpMatchup, "matchup summary", 5, 1, 2, 3)
	if err != nil {
		return MatchupStats{}, err
	}

	box := region.ChildrenFiltered("div").First().ChildrenFiltered("div").First()
	winrate := beforePercent(nthDiv(nthDiv(box, 1), 1).Text())
	games := clean(nthDiv(nthDiv(box, 2), 1).Text())
	if winrate == "" || games == "" {
		return MatchupStats{}, &ExtractionError{Op: OpMatchup, Reason: "matchup summary incomplete"}
	}
	return MatchupStats{Winrate: winrate, Games: games}, nil
}

// ExtractPatchNotes reads the current patch change groups. CategoryAll
// returns every concrete group; otherwise only the requested one. A group
// with no rows yields an empty slice.
func ExtractPatchNotes(doc *goquery.Document, category PatchCategory) (PatchNotes, error) {
	groups, err := anchor(doc, OpPatchNotes, "patch summary", 5, 4)
	if err != nil {
		return nil, err
	}

	wanted := []PatchCategory{category}
	if category == CategoryAll {
		wanted = []PatchCategory{CategoryBuffed, CategoryNerfed, CategoryAdjusted}
	}

	notes := make(PatchNotes, len(wanted))
	for _, cat := range wanted {
		group := nthDiv(groups, patchGroupIndex[cat])
		rows := group.ChildrenFiltered("div").First().ChildrenFiltered("div")
		entries := make([]PatchEntry, 0, rows.Length())
		for i := 0; i < rows.Length(); i++ {
			body := rows.Eq(i).ChildrenFiltered("div").First()
			champion := clean(nthDiv(body, 1).Find("a").First().Text())
			if champion == "" {
				break
			}
			rates := nthDiv(body, 3).ChildrenFiltered("span")
			entries = append(entries, PatchEntry{
				Champion: champion,
				Winrate:  clean(nthDiv(body, 2).Find("span").First().Text()),
				Pickrate: clean(rates.Eq(0).Text()),
				Banrate:  clean(rates.Eq(1).Text()),
			})
		}
		notes[cat] = entries
	}
	return notes, nil
}

// extractDamage locates the damage breakdown cells by their label text, the
// only stable anchor in that section. Absent labels count as zero; a missing
// total falls back to the sum of the parts.
func extractDamage(doc *goquery.Document) DamageProfile {
	physical := damageValue(doc, "physical damage")
	magic := damageValue(doc, "magic damage")
	trueDmg := damageValue(doc, "true damage")
	total := damageValue(doc, "total damage")
	if total == 0 {
		total = physical + magic + trueDmg
	}
	return DamageProfile{
		Physical:    strconv.Itoa(physical),
		Magic:       strconv.Itoa(magic),
		True:        strconv.Itoa(trueDmg),
		Total:       strconv.Itoa(total),
		PhysicalPct: percentOf(physical, total),
		MagicPct:    percentOf(magic, total),
		TruePct:     percentOf(trueDmg, total),
	}
}

// damageValue finds the innermost div whose text contains the label and
// parses the leading number of its next div sibling.
func damageValue(doc *goquery.Document, label string) int {
	value := 0
	doc.Find("div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(clean(s.Text())), label) {
			return true
		}
		if s.ChildrenFiltered("div").Length() > 0 {
			return true
		}
		value = leadingNumber(s.NextAllFiltered("div").First().Text())
		return false
	})
	return value
}

// anchor descends from the page's main element through the given 1-based
// div-child positions, mirroring the site's structural layout. A missing
// step fails with an ExtractionError.
func anchor(doc *goquery.Document, op Operation, what string, steps ...int) (*goquery.Selection, error) {
	sel := doc.Find("body > main").First()
	if sel.Length() == 0 {
		return nil, &ExtractionError{Op: op, Reason: "main content not found"}
	}
	for _, n := range steps {
		sel = nthDiv(sel, n)
		if sel.Length() == 0 {
			return nil, &ExtractionError{Op: op, Reason: what + " not found"}
		}
	}
	return sel, nil
}

// nthDiv returns the n-th (1-based) div child of the selection.
func nthDiv(s *goquery.Selection, n int) *goquery.Selection {
	return s.ChildrenFiltered("div").Eq(n - 1)
}

func clean(s string) string {
	return strings.TrimSpace(s)
}

func firstLine(s string) string {
	return strings.TrimSpace(strings.SplitN(strings.TrimSpace(s), "\n", 2)[0])
}

func beforePercent(s string) string {
	return strings.TrimSpace(strings.SplitN(strings.TrimSpace(s), "%", 2)[0])
}

// leadingNumber parses the leading numeric run of the first line, ignoring
// thousands separators. Unparseable text counts as zero.
func leadingNumber(s string) int {
	text := strings.ReplaceAll(firstLine(s), ",", "")
	end := 0
	for end < len(text) && (text[end] >= '0' && text[end] <= '9' || text[end] == '.') {
		end++
	}
	if end == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(text[:end], 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// percentOf formats part/whole as a percentage with one decimal place.
func percentOf(part, whole int) string {
	if whole <= 0 {
		return "0%"
	}
	return strconv.FormatFloat(float64(part)/float64(whole)*100, 'f', 1, 64) + "%"
}
