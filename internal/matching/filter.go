package matching

// minSafetyScore is always enforced, independent of caller filters.
// Profiles below it never enter scoring.
const minSafetyScore = 6

// EligibleCandidates applies the hard constraints to a candidate pool
// before any scoring happens. Checks run in a fixed order and
// short-circuit on the first failure per candidate. The returned slice
// is freshly allocated; the input is never mutated.
func (e *Engine) EligibleCandidates(user *MatchProfile, candidates []*MatchProfile, filters *MatchingFilters) []*MatchProfile {
	eligible := make([]*MatchProfile, 0, len(candidates))
	for _, candidate := range candidates {
		if e.isEligible(user, candidate, filters) {
			eligible = append(eligible, candidate)
		}
	}
	return eligible
}

func (e *Engine) isEligible(user, candidate *MatchProfile, filters *MatchingFilters) bool {
	// 1. No self-match.
	if candidate.UserID == user.UserID {
		return false
	}

	// 2. Age range, inclusive on both bounds.
	if candidate.Age < filters.AgeMin || candidate.Age > filters.AgeMax {
		return false
	}

	// 3. Distance is a hard cutoff here, not the banded score.
	distanceKm := e.HaversineKm(user.Latitude, user.Longitude, candidate.Latitude, candidate.Longitude)
	if distanceKm > filters.MaxDistanceKm {
		return false
	}

	// 4. Cultural allow-list. Empty list means no cultural filter.
	if len(filters.CulturalBackgrounds) > 0 && len(intersect(candidate.CulturalBackground, filters.CulturalBackgrounds)) == 0 {
		return false
	}

	// 5. Verified-only toggle.
	if filters.VerifiedOnly && !candidate.IsVerified {
		return false
	}

	// 6. Safety floor, regardless of filters.
	if candidate.SafetyScore < minSafetyScore {
		return false
	}

	return true
}
