package matching

import "strings"

// countryNames maps the cultural-background codes used across the
// Portuguese-speaking world to display names per language.
var countryNames = map[string]map[Language]string{
	"PT": {LangEnglish: "Portugal", LangPortuguese: "Portugal"},
	"BR": {LangEnglish: "Brazil", LangPortuguese: "Brasil"},
	"AO": {LangEnglish: "Angola", LangPortuguese: "Angola"},
	"MZ": {LangEnglish: "Mozambique", LangPortuguese: "Moçambique"},
	"CV": {LangEnglish: "Cape Verde", LangPortuguese: "Cabo Verde"},
	"GW": {LangEnglish: "Guinea-Bissau", LangPortuguese: "Guiné-Bissau"},
	"ST": {LangEnglish: "São Tomé and Príncipe", LangPortuguese: "São Tomé e Príncipe"},
	"TL": {LangEnglish: "East Timor", LangPortuguese: "Timor-Leste"},
	"MO": {LangEnglish: "Macau", LangPortuguese: "Macau"},
}

// CulturalBackgroundName translates a country code to a display name in
// the requested language. Unknown codes fall back to the code itself.
func CulturalBackgroundName(code string, lang Language) string {
	names, ok := countryNames[strings.ToUpper(code)]
	if !ok {
		return code
	}
	if name, ok := names[lang]; ok {
		return name
	}
	return names[LangEnglish]
}

// Interest category tables. Membership is matched case-insensitively on
// the raw interest tag.

var foodInterests = tagSet(
	"cooking", "food", "gastronomy", "wine", "baking", "pastelaria",
)

var traditionInterests = tagSet(
	"fado", "folklore", "festas", "santos populares", "traditions", "handicrafts",
)

var musicInterests = tagSet(
	"fado", "music", "kizomba", "samba", "morna", "guitarra",
)

var socialInterests = tagSet(
	"football", "futebol", "nightlife", "networking", "community events", "dancing",
)

func tagSet(tags ...string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		set[tag] = true
	}
	return set
}

// anyInCategory reports whether any of the tags belongs to the category.
func anyInCategory(tags []string, category map[string]bool) bool {
	for _, tag := range tags {
		if category[strings.ToLower(tag)] {
			return true
		}
	}
	return false
}
