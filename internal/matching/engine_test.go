package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestProfile returns a complete, safe profile that tests mutate as
// needed.
func newTestProfile(id string) *MatchProfile {
	return &MatchProfile{
		UserID:             id,
		Name:               "Test Member",
		Age:                30,
		Bio:                "Fado nights and weekend hikes.",
		Latitude:           38.7223, // Lisbon
		Longitude:          -9.1393,
		City:               "Lisbon",
		Interests:          []string{"fado", "football"},
		CulturalBackground: []string{"PT"},
		PortugueseLevel:    LevelNative,
		EnglishLevel:       LevelFluent,
		IsVerified:         true,
		SafetyScore:        8,
	}
}

func TestHaversineIdenticalPoints(t *testing.T) {
	e := NewEngine()
	assert.Equal(t, 0.0, e.HaversineKm(38.7223, -9.1393, 38.7223, -9.1393))
}

func TestHaversineSymmetry(t *testing.T) {
	e := NewEngine()
	pairs := [][4]float64{
		{51.5074, -0.1278, 38.7223, -9.1393}, // London - Lisbon
		{-22.9068, -43.1729, 38.7223, -9.1393}, // Rio - Lisbon
		{0, 0, 45, 90},
	}
	for _, p := range pairs {
		assert.Equal(t,
			e.HaversineKm(p[0], p[1], p[2], p[3]),
			e.HaversineKm(p[2], p[3], p[0], p[1]),
		)
	}
}

func TestHaversineKnownDistances(t *testing.T) {
	e := NewEngine()

	// London to Lisbon is roughly 1585 km.
	assert.InDelta(t, 1585, e.HaversineKm(51.5074, -0.1278, 38.7223, -9.1393), 10)

	// Antipodal points sit half the Earth's circumference apart.
	assert.InDelta(t, 20015, e.HaversineKm(0, 0, 0, 180), 1)
}

func TestCulturalScore(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical single", []string{"PT"}, []string{"PT"}, 100},
		{"half overlap vs larger set", []string{"PT"}, []string{"PT", "BR"}, 50},
		{"one of three", []string{"PT", "BR", "AO"}, []string{"PT"}, 100.0 / 3},
		{"no overlap", []string{"PT"}, []string{"BR"}, 0},
		{"both empty", nil, nil, 0},
		{"one empty", []string{"PT"}, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, e.culturalScore(tt.a, tt.b), 1e-9)
		})
	}
}

func TestInterestScoreIsCallerNormalized(t *testing.T) {
	e := NewEngine()

	caller := []string{"fado", "football"}
	candidate := []string{"fado", "cooking", "surf", "wine"}

	// Normalized by the caller's set size, not the larger set.
	assert.InDelta(t, 50, e.interestScore(caller, candidate), 1e-9)
	assert.InDelta(t, 25, e.interestScore(candidate, caller), 1e-9)
}

func TestInterestScoreEmptySets(t *testing.T) {
	e := NewEngine()
	assert.Equal(t, 0.0, e.interestScore(nil, nil))
	assert.Equal(t, 0.0, e.interestScore(nil, []string{"fado"}))
	assert.Equal(t, 0.0, e.interestScore([]string{"fado"}, nil))
}

func TestLanguageScoreDiscreteness(t *testing.T) {
	e := NewEngine()

	levels := []LanguageLevel{LevelNative, LevelFluent, LevelIntermediate, LevelBeginner}
	for _, pt1 := range levels {
		for _, en1 := range levels {
			for _, pt2 := range levels {
				for _, en2 := range levels {
					a := newTestProfile("a")
					a.PortugueseLevel, a.EnglishLevel = pt1, en1
					b := newTestProfile("b")
					b.PortugueseLevel, b.EnglishLevel = pt2, en2

					score := e.languageScore(a, b)
					assert.Contains(t, []float64{0, 50, 100}, score)
				}
			}
		}
	}
}

func TestLanguageScoreNoAdjacencyCredit(t *testing.T) {
	e := NewEngine()

	a := newTestProfile("a")
	a.PortugueseLevel, a.EnglishLevel = LevelNative, LevelBeginner
	b := newTestProfile("b")
	b.PortugueseLevel, b.EnglishLevel = LevelFluent, LevelNative

	// Fluent vs native scores the same as beginner vs native: nothing.
	assert.Equal(t, 0.0, e.languageScore(a, b))
}

func TestLocationScoreBands(t *testing.T) {
	e := NewEngine()
	const maxDistance = 100.0

	tests := []struct {
		distance float64
		want     float64
	}{
		{0, 100},
		{30, 100},
		{30.01, 80},
		{60, 80},
		{60.01, 60},
		{100, 60},
		{100.01, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, e.locationScore(tt.distance, maxDistance), "distance %v", tt.distance)
	}
}

func TestAgeScoreBands(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		diff int
		want float64
	}{
		{0, 100}, {3, 100},
		{4, 80}, {7, 80},
		{8, 60}, {12, 60},
		{13, 40}, {18, 40},
		{19, 20}, {50, 20},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, e.ageScore(30, 30+tt.diff), "diff %d", tt.diff)
		assert.Equal(t, tt.want, e.ageScore(30+tt.diff, 30), "diff -%d", tt.diff)
	}
}

func TestAgeScoreFloor(t *testing.T) {
	e := NewEngine()
	for diff := 0; diff <= 80; diff++ {
		assert.GreaterOrEqual(t, e.ageScore(18, 18+diff), 20.0)
	}
}

func TestScoreLisbonScenario(t *testing.T) {
	e := NewEngine()

	a := newTestProfile("a")
	b := newTestProfile("b")
	b.Age = 31
	b.CulturalBackground = []string{"PT", "BR"}
	b.Interests = []string{"fado", "cooking"}
	b.SafetyScore = 9

	score := e.Score(a, b, DefaultMatchingFilters(), LangEnglish)

	assert.Equal(t, 100, score.Breakdown.Location)
	assert.Equal(t, 100, score.Breakdown.Language)
	assert.Equal(t, 100, score.Breakdown.Age)
	assert.Equal(t, 50, score.Breakdown.Cultural)
	assert.Equal(t, 50, score.Breakdown.Interests)
	assert.Equal(t, 75, score.Overall)

	assert.Equal(t, []string{"PT", "fado"}, score.SharedElements)
}

func TestScoreOverallRoundedFromUnroundedSubScores(t *testing.T) {
	e := NewEngine()

	a := newTestProfile("a")
	a.Interests = []string{"fado", "hiking", "wine"}
	a.EnglishLevel = LevelIntermediate
	b := newTestProfile("b")
	b.Interests = []string{"fado", "surf", "kizomba"}
	b.EnglishLevel = LevelFluent

	score := e.Score(a, b, DefaultMatchingFilters(), LangEnglish)

	// cultural 100, location 100, language 50, interests 33.33, age 100:
	// 30 + 20 + 10 + 6.667 + 10 = 76.667 -> 77. The breakdown shows the
	// independently rounded 33.
	assert.Equal(t, 33, score.Breakdown.Interests)
	assert.Equal(t, 77, score.Overall)
}

func TestScoreAttachesIcebreakersAndReasons(t *testing.T) {
	e := NewEngine()

	a := newTestProfile("a")
	b := newTestProfile("b")
	b.Age = 31

	score := e.Score(a, b, DefaultMatchingFilters(), LangEnglish)

	require.NotEmpty(t, score.RecommendedIcebreakers)
	assert.LessOrEqual(t, len(score.RecommendedIcebreakers), 5)
	require.NotEmpty(t, score.ConnectionReasons)
}
