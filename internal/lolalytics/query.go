package lolalytics

import (
	"fmt"
	"net/url"
	"strings"
)

// Request is an ephemeral value object describing one validated scrape
// call: the operation plus its canonical filters and entity names.
type Request struct {
	Op       Operation
	Lane     Lane
	Rank     Rank
	Champion string
	Opponent string
	Limit    int
	Category PatchCategory
}

// Validate enforces structural requirements before any network activity.
func (r Request) Validate() error {
	switch r.Op {
	case OpTierlist:
		if r.Limit <= 0 {
			return ErrNonPositiveLimit
		}
	case OpCounters:
		if r.Limit <= 0 {
			return ErrNonPositiveLimit
		}
		if r.Champion == "" {
			return ErrEmptyChampion
		}
	case OpChampionData:
		if r.Champion == "" {
			return ErrEmptyChampion
		}
	case OpMatchup:
		if r.Champion == "" || r.Opponent == "" {
			return ErrEmptyChampion
		}
		if strings.EqualFold(r.Champion, r.Opponent) {
			return ErrSameChampion
		}
	case OpPatchNotes:
		switch r.Category {
		case CategoryAll, CategoryBuffed, CategoryNerfed, CategoryAdjusted:
		default:
			return ErrUnknownCategory
		}
	default:
		return fmt.Errorf("unknown operation %q", r.Op)
	}
	return nil
}

// path returns the site path for the request. Champion names are lowercased
// here; the site accepts no other spelling normalization.
func (r Request) path() string {
	switch r.Op {
	case OpTierlist:
		return "lol/tierlist/"
	case OpCounters:
		return fmt.Sprintf("lol/%s/counters/", strings.ToLower(r.Champion))
	case OpChampionData:
		return fmt.Sprintf("lol/%s/build/", strings.ToLower(r.Champion))
	case OpMatchup:
		return fmt.Sprintf("lol/%s/vs/%s/build/", strings.ToLower(r.Champion), strings.ToLower(r.Opponent))
	default:
		// Patch notes live on the front page.
		return ""
	}
}

// BuildURL turns a validated request into the target URL. The result is
// deterministic: identical inputs yield byte-identical URLs, with query
// parameters in sorted key order.
func BuildURL(baseURL string, r Request) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	base, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	target := base
	if p := r.path(); p != "" {
		target = base.JoinPath(p)
	}

	params := url.Values{}
	if r.Lane != LaneAll {
		params.Set("lane", string(r.Lane))
	}
	if r.Rank != RankDefault {
		params.Set("tier", string(r.Rank))
	}
	target.RawQuery = params.Encode()

	return target.String(), nil
}
