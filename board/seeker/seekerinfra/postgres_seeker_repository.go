package seekerinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/internlink/internlink/board/seeker"
	"github.com/internlink/internlink/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresSeekerRepository implements seeker.Repository using PostgreSQL
type PostgresSeekerRepository struct {
	db *sqlx.DB
}

// NewPostgresSeekerRepository creates a new PostgreSQL seeker repository
func NewPostgresSeekerRepository(db *sqlx.DB) *PostgresSeekerRepository {
	return &PostgresSeekerRepository{
		db: db,
	}
}

type profileModel struct {
	UserID      string         `db:"user_id"`
	Name        string         `db:"name"`
	University  string         `db:"university"`
	Course      string         `db:"course"`
	YearOfStudy *int           `db:"year_of_study"`
	Skills      pq.StringArray `db:"skills"`
	Bio         string         `db:"bio"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (m *profileModel) toEntity() *seeker.Profile {
	skills := make([]kernel.Tag, 0, len(m.Skills))
	for _, s := range m.Skills {
		skills = append(skills, kernel.Tag(s))
	}

	return &seeker.Profile{
		UserID:      kernel.UserID(m.UserID),
		Name:        m.Name,
		University:  m.University,
		Course:      m.Course,
		YearOfStudy: m.YearOfStudy,
		Skills:      skills,
		Bio:         m.Bio,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromEntity(p *seeker.Profile) *profileModel {
	skills := make(pq.StringArray, 0, len(p.Skills))
	for _, s := range p.Skills {
		skills = append(skills, string(s))
	}

	return &profileModel{
		UserID:      string(p.UserID),
		Name:        p.Name,
		University:  p.University,
		Course:      p.Course,
		YearOfStudy: p.YearOfStudy,
		Skills:      skills,
		Bio:         p.Bio,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// GetByUserID retrieves a profile by the owning account id
func (r *PostgresSeekerRepository) GetByUserID(ctx context.Context, userID kernel.UserID) (*seeker.Profile, error) {
	query := `
		SELECT user_id, name, university, course, year_of_study, skills, bio, created_at, updated_at
		FROM seeker_profiles
		WHERE user_id = $1
	`

	var model profileModel
	err := r.db.GetContext(ctx, &model, query, string(userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, seeker.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get seeker profile: %w", err)
	}

	return model.toEntity(), nil
}

// Upsert inserts or replaces the profile for its user id
func (r *PostgresSeekerRepository) Upsert(ctx context.Context, profile *seeker.Profile) error {
	model := fromEntity(profile)

	query := `
		INSERT INTO seeker_profiles (
			user_id, name, university, course, year_of_study, skills, bio, created_at, updated_at
		) VALUES (
			:user_id, :name, :university, :course, :year_of_study, :skills, :bio, :created_at, :updated_at
		)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			university = EXCLUDED.university,
			course = EXCLUDED.course,
			year_of_study = EXCLUDED.year_of_study,
			skills = EXCLUDED.skills,
			bio = EXCLUDED.bio,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to upsert seeker profile: %w", err)
	}

	return nil
}
