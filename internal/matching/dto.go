package matching

// DTOs for the matching API surface.

type MatchQueryDTO struct {
	AgeMin              int      `json:"age_min" validate:"omitempty,min=18,max=120"`
	AgeMax              int      `json:"age_max" validate:"omitempty,min=18,max=120"`
	MaxDistanceKm       float64  `json:"max_distance_km" validate:"omitempty,gt=0,max=1000"`
	CulturalBackgrounds []string `json:"cultural_backgrounds" validate:"omitempty,dive,len=2"`
	LanguagePreference  string   `json:"language_preference" validate:"omitempty,oneof=portuguese bilingual english"`
	VerifiedOnly        bool     `json:"verified_only"`
	Limit               int      `json:"limit" validate:"omitempty,min=1,max=100"`
	Lang                string   `json:"lang" validate:"omitempty,oneof=en pt"`
}

// ToFilters carries over exactly what the caller set. Zero fields stay
// zero so the service can overlay its configured defaults.
func (d *MatchQueryDTO) ToFilters() *MatchingFilters {
	return &MatchingFilters{
		AgeMin:              d.AgeMin,
		AgeMax:              d.AgeMax,
		MaxDistanceKm:       d.MaxDistanceKm,
		CulturalBackgrounds: d.CulturalBackgrounds,
		LanguagePreference:  LanguagePreference(d.LanguagePreference),
		VerifiedOnly:        d.VerifiedOnly,
	}
}

func (d *MatchQueryDTO) Language() Language {
	if d.Lang == string(LangPortuguese) {
		return LangPortuguese
	}
	return LangEnglish
}

type BackgroundNameResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Lang string `json:"lang"`
}

type StartersResponse struct {
	Starters []string `json:"starters"`
}
