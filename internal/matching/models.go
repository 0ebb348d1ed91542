package matching

import "time"

// LanguageLevel is a self-reported proficiency for Portuguese or English.
type LanguageLevel string

const (
	LevelNative       LanguageLevel = "native"
	LevelFluent       LanguageLevel = "fluent"
	LevelIntermediate LanguageLevel = "intermediate"
	LevelBeginner     LanguageLevel = "beginner"
)

// Language selects the language of generated connection reasons.
type Language string

const (
	LangEnglish    Language = "en"
	LangPortuguese Language = "pt"
)

// LanguagePreference is the caller's stated conversational preference.
// It is carried on the filters for the UI but does not affect scoring.
type LanguagePreference string

const (
	PrefPortuguese LanguagePreference = "portuguese"
	PrefBilingual  LanguagePreference = "bilingual"
	PrefEnglish    LanguagePreference = "english"
)

// MatchProfile is a community member's matchable attributes, snapshotted
// at match time. Profiles reaching the engine are assumed complete; the
// persistence layer validates required fields before handing them over.
type MatchProfile struct {
	UserID             string        `json:"user_id" db:"user_id"`
	Name               string        `json:"name" db:"display_name"`
	Age                int           `json:"age" db:"age"`
	Bio                string        `json:"bio" db:"bio"`
	Latitude           float64       `json:"latitude" db:"location_lat"`
	Longitude          float64       `json:"longitude" db:"location_lng"`
	City               string        `json:"city" db:"city"`
	Interests          []string      `json:"interests"`
	CulturalBackground []string      `json:"cultural_background"`
	PortugueseLevel    LanguageLevel `json:"portuguese_level" db:"portuguese_level"`
	EnglishLevel       LanguageLevel `json:"english_level" db:"english_level"`
	IsVerified         bool          `json:"is_verified" db:"is_verified"`
	LastActive         time.Time     `json:"last_active" db:"last_active"`
	SafetyScore        int           `json:"safety_score" db:"safety_score"`
}

// MatchingFilters are the caller-supplied hard constraints applied before
// any scoring. An empty CulturalBackgrounds list means no cultural filter.
// LanguagePreference and Interests are carried for the client but are not
// consulted by the candidate filter.
type MatchingFilters struct {
	AgeMin              int                `json:"age_min"`
	AgeMax              int                `json:"age_max"`
	MaxDistanceKm       float64            `json:"max_distance_km"`
	CulturalBackgrounds []string           `json:"cultural_backgrounds"`
	LanguagePreference  LanguagePreference `json:"language_preference"`
	Interests           []string           `json:"interests"`
	VerifiedOnly        bool               `json:"verified_only"`
}

// DefaultMatchingFilters returns the documented defaults used when the
// caller supplies no filters.
func DefaultMatchingFilters() *MatchingFilters {
	return &MatchingFilters{
		AgeMin:             18,
		AgeMax:             65,
		MaxDistanceKm:      50,
		LanguagePreference: PrefBilingual,
		VerifiedOnly:       false,
	}
}

// ScoreBreakdown holds the five sub-scores, each independently rounded
// to an integer for display.
type ScoreBreakdown struct {
	Cultural  int `json:"cultural"`
	Location  int `json:"location"`
	Language  int `json:"language"`
	Interests int `json:"interests"`
	Age       int `json:"age"`
}

// CompatibilityScore is the engine's output for one matched pair.
//
// Overall is rounded from the unrounded sub-scores, so it is not
// necessarily the weighted sum of the rounded Breakdown values.
type CompatibilityScore struct {
	Overall                int            `json:"overall"`
	Breakdown              ScoreBreakdown `json:"breakdown"`
	SharedElements         []string       `json:"shared_elements"`
	RecommendedIcebreakers []string       `json:"recommended_icebreakers"`
	ConnectionReasons      []string       `json:"connection_reasons"`
}

// RankedMatch is a candidate profile augmented with its compatibility
// against the querying user.
type RankedMatch struct {
	Profile       *MatchProfile      `json:"profile"`
	Compatibility CompatibilityScore `json:"compatibility"`
}
