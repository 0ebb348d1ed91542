package matching

import "strings"

// bioDenylist holds substrings that flag a bio as a likely scam or
// off-platform solicitation attempt.
var bioDenylist = []string{
	"money",
	"investment",
	"business opportunity",
	"whatsapp",
	"telegram",
}

// ValidateProfileSafety is a standalone guard usable independently of
// matching: the profile must hold a safety score of at least 6, be
// verified, be an adult, and carry a bio free of denylisted phrases.
func ValidateProfileSafety(p *MatchProfile) bool {
	if p.SafetyScore < minSafetyScore {
		return false
	}
	if !p.IsVerified {
		return false
	}
	if p.Age < 18 {
		return false
	}
	bio := strings.ToLower(p.Bio)
	for _, phrase := range bioDenylist {
		if strings.Contains(bio, phrase) {
			return false
		}
	}
	return true
}
