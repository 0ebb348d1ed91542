package matching

import "sort"

const (
	// minOverallScore is the score-based threshold applied after the
	// hard filters: weak matches are dropped rather than shown low.
	minOverallScore = 50

	defaultMaxResults = 20
)

// FindCulturalMatches runs the full pipeline: hard-filter the candidate
// pool, score each survivor, drop anything below the compatibility
// threshold, sort descending by overall score and truncate to maxResults.
//
// Nil filters fall back to DefaultMatchingFilters; maxResults <= 0 falls
// back to 20. Input slices are never mutated; ties may reorder between
// calls since the sort is not stable.
func (e *Engine) FindCulturalMatches(user *MatchProfile, candidates []*MatchProfile, filters *MatchingFilters, maxResults int, lang Language) []*RankedMatch {
	if filters == nil {
		filters = DefaultMatchingFilters()
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	eligible := e.EligibleCandidates(user, candidates, filters)

	matches := make([]*RankedMatch, 0, len(eligible))
	for _, candidate := range eligible {
		score := e.Score(user, candidate, filters, lang)
		if score.Overall < minOverallScore {
			continue
		}
		matches = append(matches, &RankedMatch{
			Profile:       candidate,
			Compatibility: score,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Compatibility.Overall > matches[j].Compatibility.Overall
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	return matches
}
