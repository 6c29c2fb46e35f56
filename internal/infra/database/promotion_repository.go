package database

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/xavierca1/ligue-cursos/internal/entity"
)

type PromotionRepository struct {
	DB *sql.DB
}

func NewPromotionRepository(db *sql.DB) *PromotionRepository {
	return &PromotionRepository{DB: db}
}

func (r *PromotionRepository) List(ctx context.Context) ([]entity.Promotion, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, description, expiry_date, course_ids
		FROM promotions
		WHERE expiry_date IS NULL OR expiry_date > NOW()
		ORDER BY expiry_date NULLS LAST
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promos []entity.Promotion
	for rows.Next() {
		var p entity.Promotion
		var description sql.NullString
		var expiry sql.NullTime
		if err := rows.Scan(&p.ID, &p.Name, &description, &expiry, pq.Array(&p.CourseIDs)); err != nil {
			return nil, err
		}
		p.Description = description.String
		if expiry.Valid {
			p.ExpiryDate = expiry.Time
		}
		promos = append(promos, p)
	}
	return promos, rows.Err()
}
