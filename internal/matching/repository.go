package matching

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository interface {
	GetProfile(ctx context.Context, userID string) (*MatchProfile, error)
	FindCandidates(ctx context.Context, userID string, filters *MatchingFilters, limit int) ([]*MatchProfile, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

// profileRow mirrors the matching_profiles view. Array columns need
// pq.StringArray before they become plain slices on MatchProfile.
type profileRow struct {
	UserID             string         `db:"user_id"`
	Name               string         `db:"display_name"`
	Age                int            `db:"age"`
	Bio                string         `db:"bio"`
	Latitude           float64        `db:"location_lat"`
	Longitude          float64        `db:"location_lng"`
	City               string         `db:"city"`
	Interests          pq.StringArray `db:"interests"`
	CulturalBackground pq.StringArray `db:"cultural_background"`
	PortugueseLevel    string         `db:"portuguese_level"`
	EnglishLevel       string         `db:"english_level"`
	IsVerified         bool           `db:"is_verified"`
	LastActive         sql.NullTime   `db:"last_active"`
	SafetyScore        int            `db:"safety_score"`
}

func (r *profileRow) toProfile() *MatchProfile {
	p := &MatchProfile{
		UserID:             r.UserID,
		Name:               r.Name,
		Age:                r.Age,
		Bio:                r.Bio,
		Latitude:           r.Latitude,
		Longitude:          r.Longitude,
		City:               r.City,
		Interests:          []string(r.Interests),
		CulturalBackground: []string(r.CulturalBackground),
		PortugueseLevel:    LanguageLevel(r.PortugueseLevel),
		EnglishLevel:       LanguageLevel(r.EnglishLevel),
		IsVerified:         r.IsVerified,
		SafetyScore:        r.SafetyScore,
	}
	if r.LastActive.Valid {
		p.LastActive = r.LastActive.Time
	}
	return p
}

const profileColumns = `
	user_id, display_name, age, bio, location_lat, location_lng, city,
	interests, cultural_background, portuguese_level, english_level,
	is_verified, last_active, safety_score
`

func (r *postgresRepository) GetProfile(ctx context.Context, userID string) (*MatchProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM matching_profiles WHERE user_id = $1`

	var row profileRow
	err := r.db.GetContext(ctx, &row, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toProfile(), nil
}

// FindCandidates pre-filters candidates with coarse SQL (self-exclusion,
// age band, verification, safety floor). The engine re-applies the exact
// constraints in memory, including the distance cutoff, which is cheaper
// to do per-pair than in SQL without PostGIS.
func (r *postgresRepository) FindCandidates(ctx context.Context, userID string, filters *MatchingFilters, limit int) ([]*MatchProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM matching_profiles
		WHERE user_id != $1
		  AND age BETWEEN $2 AND $3
		  AND safety_score >= $4
	`
	args := []interface{}{userID, filters.AgeMin, filters.AgeMax, minSafetyScore}

	if filters.VerifiedOnly {
		query += ` AND is_verified = TRUE`
	}
	if len(filters.CulturalBackgrounds) > 0 {
		query += ` AND cultural_background && $5`
		args = append(args, pq.Array(filters.CulturalBackgrounds))
	}

	query += fmt.Sprintf(` ORDER BY last_active DESC NULLS LAST LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []*MatchProfile
	for rows.Next() {
		var row profileRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		candidates = append(candidates, row.toProfile())
	}
	return candidates, rows.Err()
}
