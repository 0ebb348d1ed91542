package matching

import "math"

// Engine computes cultural compatibility between two profiles. It is
// stateless and pure: every call reads its arguments and allocates fresh
// output, so concurrent use needs no synchronization.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Sub-score weights. Cultural affinity carries the largest weight:
// LusoTown matches around shared heritage first, logistics second.
const (
	weightCultural  = 0.3
	weightLocation  = 0.2
	weightLanguage  = 0.2
	weightInterests = 0.2
	weightAge       = 0.1
)

// HaversineKm returns the great-circle distance in kilometers between two
// points in decimal degrees. Inputs are not validated; out-of-range
// coordinates produce mathematically defined but meaningless results.
func (e *Engine) HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371 // km

	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// culturalScore rewards overlap relative to the larger of the two
// background sets: a profile listing many countries matched against one
// listing few scores low unless the overlap is high.
func (e *Engine) culturalScore(backgrounds1, backgrounds2 []string) float64 {
	shared := len(intersect(backgrounds1, backgrounds2))
	larger := len(backgrounds1)
	if len(backgrounds2) > larger {
		larger = len(backgrounds2)
	}
	if larger < 1 {
		larger = 1
	}
	return float64(shared) / float64(larger) * 100
}

// interestScore is scored from the caller's perspective: how much of the
// caller's interests does the candidate share. The denominator is the
// caller's set only, unlike culturalScore which is symmetric.
func (e *Engine) interestScore(callerInterests, candidateInterests []string) float64 {
	shared := len(intersect(callerInterests, candidateInterests))
	denom := len(callerInterests)
	if denom < 1 {
		denom = 1
	}
	return float64(shared) / float64(denom) * 100
}

// languageScore awards 50 points per axis for identical proficiency.
// There is no partial credit for adjacent levels; fluent vs native scores
// zero on that axis just like beginner vs native.
func (e *Engine) languageScore(p1, p2 *MatchProfile) float64 {
	score := 0.0
	if p1.PortugueseLevel == p2.PortugueseLevel {
		score += 50
	}
	if p1.EnglishLevel == p2.EnglishLevel {
		score += 50
	}
	return score
}

// locationScore is a discrete banding of the haversine distance against
// the caller's configured maximum, not a continuous decay.
func (e *Engine) locationScore(distanceKm, maxDistanceKm float64) float64 {
	switch {
	case distanceKm <= 0.3*maxDistanceKm:
		return 100
	case distanceKm <= 0.6*maxDistanceKm:
		return 80
	case distanceKm <= maxDistanceKm:
		return 60
	default:
		return 0
	}
}

// ageScore steps down with the absolute age difference but never reaches
// zero: any pair keeps a floor of 20.
func (e *Engine) ageScore(age1, age2 int) float64 {
	diff := age1 - age2
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 3:
		return 100
	case diff <= 7:
		return 80
	case diff <= 12:
		return 60
	case diff <= 18:
		return 40
	default:
		return 20
	}
}

// Score computes the full compatibility of a candidate against the
// querying user, including shared elements, icebreakers and connection
// reasons in the requested language.
func (e *Engine) Score(user, candidate *MatchProfile, filters *MatchingFilters, lang Language) CompatibilityScore {
	distanceKm := e.HaversineKm(user.Latitude, user.Longitude, candidate.Latitude, candidate.Longitude)

	cultural := e.culturalScore(user.CulturalBackground, candidate.CulturalBackground)
	location := e.locationScore(distanceKm, filters.MaxDistanceKm)
	language := e.languageScore(user, candidate)
	interests := e.interestScore(user.Interests, candidate.Interests)
	age := e.ageScore(user.Age, candidate.Age)

	// Overall is rounded once, from the unrounded sub-scores. The
	// breakdown fields are rounded independently for display.
	overall := cultural*weightCultural +
		location*weightLocation +
		language*weightLanguage +
		interests*weightInterests +
		age*weightAge

	sharedBackgrounds := intersect(user.CulturalBackground, candidate.CulturalBackground)
	sharedInterests := intersect(user.Interests, candidate.Interests)

	shared := make([]string, 0, len(sharedBackgrounds)+len(sharedInterests))
	shared = append(shared, sharedBackgrounds...)
	shared = append(shared, sharedInterests...)

	return CompatibilityScore{
		Overall: int(math.Round(overall)),
		Breakdown: ScoreBreakdown{
			Cultural:  int(math.Round(cultural)),
			Location:  int(math.Round(location)),
			Language:  int(math.Round(language)),
			Interests: int(math.Round(interests)),
			Age:       int(math.Round(age)),
		},
		SharedElements:         shared,
		RecommendedIcebreakers: Icebreakers(sharedInterests),
		ConnectionReasons: ConnectionReasons(
			sharedBackgrounds,
			len(sharedInterests),
			user.PortugueseLevel == candidate.PortugueseLevel,
			distanceKm,
			lang,
		),
	}
}

// intersect returns the elements of a that also appear in b, preserving
// the order of a. Duplicate tags are meaningless and counted once.
func intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	inB := make(map[string]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}
	var shared []string
	seen := make(map[string]bool, len(a))
	for _, v := range a {
		if inB[v] && !seen[v] {
			shared = append(shared, v)
			seen[v] = true
		}
	}
	return shared
}
