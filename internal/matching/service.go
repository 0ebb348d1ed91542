package matching

import (
	"context"
	"errors"
	"time"
)

var (
	ErrProfileNotFound   = errors.New("matching profile not found")
	ErrProfileIneligible = errors.New("profile not eligible for matching")
)

type Service interface {
	FindMatches(ctx context.Context, userID string, filters *MatchingFilters, maxResults int, lang Language) ([]*RankedMatch, error)
	Compatibility(ctx context.Context, userID, otherID string, lang Language) (*CompatibilityScore, error)
	Starters(ctx context.Context, userID, otherID string, lang Language) ([]string, error)
}

// ServiceConfig carries the deployment-tunable matching defaults. Zero
// fields fall back to the documented package defaults.
type ServiceConfig struct {
	DefaultFilters     *MatchingFilters
	DefaultMaxResults  int
	CandidatePoolLimit int
}

type service struct {
	repo       Repository
	engine     *Engine
	cache      *ResultCache // nil disables caching
	defaults   *MatchingFilters
	maxResults int
	poolLimit  int
}

// NewService wires the pure engine to its data source. The cache is an
// explicit dependency per the engine's no-global-state rule; pass nil to
// disable it.
func NewService(repo Repository, engine *Engine, cache *ResultCache, cfg ServiceConfig) Service {
	if cfg.DefaultFilters == nil {
		cfg.DefaultFilters = DefaultMatchingFilters()
	}
	if cfg.DefaultMaxResults <= 0 {
		cfg.DefaultMaxResults = defaultMaxResults
	}
	if cfg.CandidatePoolLimit <= 0 {
		cfg.CandidatePoolLimit = 500
	}
	return &service{
		repo:       repo,
		engine:     engine,
		cache:      cache,
		defaults:   cfg.DefaultFilters,
		maxResults: cfg.DefaultMaxResults,
		poolLimit:  cfg.CandidatePoolLimit,
	}
}

// effectiveFilters overlays the caller's set fields onto the service's
// configured defaults. Unset numeric fields mean "use the default", so
// the env-tunable age bounds and distance actually take effect.
func (s *service) effectiveFilters(filters *MatchingFilters) *MatchingFilters {
	merged := *s.defaults
	if filters == nil {
		return &merged
	}
	if filters.AgeMin > 0 {
		merged.AgeMin = filters.AgeMin
	}
	if filters.AgeMax > 0 {
		merged.AgeMax = filters.AgeMax
	}
	if filters.MaxDistanceKm > 0 {
		merged.MaxDistanceKm = filters.MaxDistanceKm
	}
	if len(filters.CulturalBackgrounds) > 0 {
		merged.CulturalBackgrounds = filters.CulturalBackgrounds
	}
	if filters.LanguagePreference != "" {
		merged.LanguagePreference = filters.LanguagePreference
	}
	if len(filters.Interests) > 0 {
		merged.Interests = filters.Interests
	}
	merged.VerifiedOnly = filters.VerifiedOnly
	return &merged
}

func (s *service) FindMatches(ctx context.Context, userID string, filters *MatchingFilters, maxResults int, lang Language) ([]*RankedMatch, error) {
	filters = s.effectiveFilters(filters)
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	key := CacheKey(userID, filters, maxResults, lang)
	if cached := s.cache.Get(ctx, key); cached != nil {
		recordMatchRequest("cached")
		return cached, nil
	}

	user, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		recordMatchRequest("error")
		return nil, err
	}
	if !ValidateProfileSafety(user) {
		recordMatchRequest("ineligible")
		return nil, ErrProfileIneligible
	}

	candidates, err := s.repo.FindCandidates(ctx, userID, filters, s.poolLimit)
	if err != nil {
		recordMatchRequest("error")
		return nil, err
	}

	start := time.Now()
	matches := s.engine.FindCulturalMatches(user, candidates, filters, maxResults, lang)
	recordPipeline(len(candidates), len(matches), time.Since(start))
	recordScores(matches)
	recordMatchRequest("ok")

	s.cache.Set(ctx, key, matches)
	return matches, nil
}

func (s *service) Compatibility(ctx context.Context, userID, otherID string, lang Language) (*CompatibilityScore, error) {
	user, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	other, err := s.repo.GetProfile(ctx, otherID)
	if err != nil {
		return nil, err
	}

	score := s.engine.Score(user, other, s.effectiveFilters(nil), lang)
	return &score, nil
}

func (s *service) Starters(ctx context.Context, userID, otherID string, lang Language) ([]string, error) {
	user, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	other, err := s.repo.GetProfile(ctx, otherID)
	if err != nil {
		return nil, err
	}

	sharedInterests := intersect(user.Interests, other.Interests)
	sharedBackgrounds := intersect(user.CulturalBackground, other.CulturalBackground)
	return ConversationStarters(sharedInterests, sharedBackgrounds, lang), nil
}
