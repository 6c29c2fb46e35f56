package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/xavierca1/ligue-cursos/internal/entity"
)

type InteractionRepository struct {
	DB *sql.DB
}

func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

// Append: las interacciones son append-only; el orden lo da el store.
func (r *InteractionRepository) Append(ctx context.Context, it *entity.Interaction) error {
	var metadata []byte
	if len(it.Metadata) > 0 {
		raw, err := json.Marshal(it.Metadata)
		if err != nil {
			return err
		}
		metadata = raw
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO interactions (id, lead_id, course_id, type, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		it.ID,
		it.LeadID,
		nullString(it.CourseID),
		string(it.Type),
		metadata,
		it.Timestamp,
	)
	return err
}
