package matching

import "fmt"

const maxIcebreakers = 5

// Icebreaker pools. Pools are consulted in a fixed priority order and
// contribute a fixed number of entries each. Icebreakers are currently
// English-only; the bilingual phrases live in ConversationStarters.
var (
	foodIcebreakers = []string{
		"What's your favourite Portuguese dish? I'm always after a proper bacalhau recipe.",
		"Do you know any good Portuguese restaurants around here?",
	}
	cultureIcebreakers = []string{
		"Do you enjoy Fado? I'd love to swap favourite singers.",
		"Which festas do you miss most from back home?",
	}
	locationIcebreakers = []string{
		"How are you finding life in the UK so far?",
	}
	socialIcebreakers = []string{
		"Do you follow Portuguese football? Benfica, Sporting or Porto?",
	}
)

// Icebreakers deterministically selects up to five openers based on which
// interest categories the shared interests fall into. The food and
// culture pools contribute two entries each, location and social one.
// The location pool is always included.
func Icebreakers(sharedInterests []string) []string {
	var picks []string

	if anyInCategory(sharedInterests, foodInterests) {
		picks = append(picks, foodIcebreakers[:2]...)
	}
	if anyInCategory(sharedInterests, traditionInterests) || anyInCategory(sharedInterests, musicInterests) {
		picks = append(picks, cultureIcebreakers[:2]...)
	}
	picks = append(picks, locationIcebreakers[:1]...)
	if anyInCategory(sharedInterests, socialInterests) {
		picks = append(picks, socialIcebreakers[:1]...)
	}

	return dedupeTruncate(picks, maxIcebreakers)
}

// ConnectionReasons produces the human-readable sentences shown under a
// match card, in a fixed order: shared heritage, shared interests, same
// Portuguese level, proximity. The 10 km proximity threshold is fixed and
// independent of the caller's distance filter.
func ConnectionReasons(sharedBackgrounds []string, sharedInterestCount int, samePortugueseLevel bool, distanceKm float64, lang Language) []string {
	var reasons []string

	if len(sharedBackgrounds) > 0 {
		names := make([]string, len(sharedBackgrounds))
		for i, code := range sharedBackgrounds {
			names[i] = CulturalBackgroundName(code, lang)
		}
		if lang == LangPortuguese {
			reasons = append(reasons, fmt.Sprintf("Vocês partilham herança de %s", joinNames(names, " e ")))
		} else {
			reasons = append(reasons, fmt.Sprintf("You both share %s heritage", joinNames(names, " and ")))
		}
	}

	if sharedInterestCount > 0 {
		if lang == LangPortuguese {
			reasons = append(reasons, fmt.Sprintf("Têm %d interesses em comum", sharedInterestCount))
		} else {
			reasons = append(reasons, fmt.Sprintf("You have %d interests in common", sharedInterestCount))
		}
	}

	if samePortugueseLevel {
		if lang == LangPortuguese {
			reasons = append(reasons, "Falam português ao mesmo nível")
		} else {
			reasons = append(reasons, "You speak Portuguese at the same level")
		}
	}

	if distanceKm <= 10 {
		if lang == LangPortuguese {
			reasons = append(reasons, "Vivem perto um do outro")
		} else {
			reasons = append(reasons, "You live close to each other")
		}
	}

	return reasons
}

// ConversationStarters is the bilingual starter-phrase generator, distinct
// from the icebreaker pools above. It branches on shared heritage and
// shared interests and returns at most five phrases.
func ConversationStarters(sharedInterests, sharedBackgrounds []string, lang Language) []string {
	var starters []string

	for _, code := range sharedBackgrounds {
		switch code {
		case "PT":
			if lang == LangPortuguese {
				starters = append(starters, "Já voltaste a Portugal recentemente?")
			} else {
				starters = append(starters, "Have you been back to Portugal recently?")
			}
		case "BR":
			if lang == LangPortuguese {
				starters = append(starters, "De que parte do Brasil é a tua família?")
			} else {
				starters = append(starters, "Which part of Brazil is your family from?")
			}
		case "CV":
			if lang == LangPortuguese {
				starters = append(starters, "Gostas de morna? Cesária Évora é eterna.")
			} else {
				starters = append(starters, "Do you like morna? Cesária Évora is timeless.")
			}
		default:
			if lang == LangPortuguese {
				starters = append(starters, fmt.Sprintf("Como é a comunidade de %s aqui no Reino Unido?", CulturalBackgroundName(code, lang)))
			} else {
				starters = append(starters, fmt.Sprintf("What's the %s community like here in the UK?", CulturalBackgroundName(code, lang)))
			}
		}
	}

	for _, interest := range sharedInterests {
		if lang == LangPortuguese {
			starters = append(starters, fmt.Sprintf("Vi que também gostas de %s — como começaste?", interest))
		} else {
			starters = append(starters, fmt.Sprintf("I saw you're also into %s — how did you get started?", interest))
		}
	}

	if lang == LangPortuguese {
		starters = append(starters, "O que te trouxe ao Reino Unido?")
	} else {
		starters = append(starters, "What brought you to the UK?")
	}

	return dedupeTruncate(starters, maxIcebreakers)
}

func dedupeTruncate(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, limit)
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}

func joinNames(names []string, sep string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		joined := names[0]
		for _, name := range names[1 : len(names)-1] {
			joined += ", " + name
		}
		return joined + sep + names[len(names)-1]
	}
}
