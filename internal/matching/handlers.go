package matching

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lusotown/lusotown-backend/internal/auth"
	"github.com/lusotown/lusotown-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetMatches returns the ranked match list for the authenticated user.
// Filters arrive as query parameters and are validated before use.
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	dto, err := parseMatchQuery(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	matches, err := h.service.FindMatches(r.Context(), userID, dto.ToFilters(), dto.Limit, dto.Language())
	if err != nil {
		switch {
		case errors.Is(err, ErrProfileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Matching profile not found")
		case errors.Is(err, ErrProfileIneligible):
			utils.RespondWithError(w, http.StatusForbidden, "Profile not eligible for matching")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to find matches")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, matches)
}

// GetCompatibility scores the authenticated user against one other member.
func (h *Handler) GetCompatibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	otherID := mux.Vars(r)["userId"]
	if _, err := uuid.Parse(otherID); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	score, err := h.service.Compatibility(r.Context(), userID, otherID, langFromQuery(r))
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Matching profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute compatibility")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, score)
}

// GetStarters returns bilingual conversation starters for a pair.
func (h *Handler) GetStarters(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	otherID := mux.Vars(r)["userId"]
	if _, err := uuid.Parse(otherID); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	starters, err := h.service.Starters(r.Context(), userID, otherID, langFromQuery(r))
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Matching profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate starters")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, StartersResponse{Starters: starters})
}

// GetBackgroundName translates a cultural-background code.
func (h *Handler) GetBackgroundName(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	lang := langFromQuery(r)

	utils.RespondWithJSON(w, http.StatusOK, BackgroundNameResponse{
		Code: strings.ToUpper(code),
		Name: CulturalBackgroundName(code, lang),
		Lang: string(lang),
	})
}

func parseMatchQuery(r *http.Request) (*MatchQueryDTO, error) {
	q := r.URL.Query()
	dto := &MatchQueryDTO{
		LanguagePreference: q.Get("language_preference"),
		VerifiedOnly:       q.Get("verified_only") == "true",
		Lang:               q.Get("lang"),
	}

	var err error
	if dto.AgeMin, err = queryInt(q.Get("age_min")); err != nil {
		return nil, errors.New("age_min must be an integer")
	}
	if dto.AgeMax, err = queryInt(q.Get("age_max")); err != nil {
		return nil, errors.New("age_max must be an integer")
	}
	if dto.Limit, err = queryInt(q.Get("limit")); err != nil {
		return nil, errors.New("limit must be an integer")
	}
	if raw := q.Get("max_distance_km"); raw != "" {
		if dto.MaxDistanceKm, err = strconv.ParseFloat(raw, 64); err != nil {
			return nil, errors.New("max_distance_km must be a number")
		}
	}
	if raw := q.Get("backgrounds"); raw != "" {
		for _, code := range strings.Split(raw, ",") {
			code = strings.TrimSpace(code)
			if code != "" {
				dto.CulturalBackgrounds = append(dto.CulturalBackgrounds, strings.ToUpper(code))
			}
		}
	}

	return dto, nil
}

func queryInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func langFromQuery(r *http.Request) Language {
	if r.URL.Query().Get("lang") == string(LangPortuguese) {
		return LangPortuguese
	}
	return LangEnglish
}
