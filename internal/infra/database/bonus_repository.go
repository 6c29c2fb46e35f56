package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-cursos/internal/entity"
)

type BonusRepository struct {
	DB *sql.DB
}

func NewBonusRepository(db *sql.DB) *BonusRepository {
	return &BonusRepository{DB: db}
}

func (r *BonusRepository) ListByCourse(ctx context.Context, courseID string) ([]entity.Bonus, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, course_id, name, description, original_value,
		       max_claims, current_claims, expires_at
		FROM bonuses
		WHERE course_id = $1
		ORDER BY original_value DESC
	`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bonuses []entity.Bonus
	for rows.Next() {
		var b entity.Bonus
		var description sql.NullString
		var expires sql.NullTime
		err := rows.Scan(&b.ID, &b.CourseID, &b.Name, &description,
			&b.OriginalValue, &b.MaxClaims, &b.CurrentClaims, &expires)
		if err != nil {
			return nil, err
		}
		b.Description = description.String
		if expires.Valid {
			b.ExpiresAt = expires.Time
		}
		bonuses = append(bonuses, b)
	}
	return bonuses, rows.Err()
}
