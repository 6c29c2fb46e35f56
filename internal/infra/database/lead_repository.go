package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-cursos/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Upsert espeja el lead de la sesión en el CRM, clave por user id.
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (user_id, name, email, phone, privacy_accepted,
			stage, selected_course_id, source, interest_score,
			pending_escalation, last_interaction, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET
			name = COALESCE(EXCLUDED.name, leads.name),
			email = COALESCE(EXCLUDED.email, leads.email),
			phone = COALESCE(EXCLUDED.phone, leads.phone),
			privacy_accepted = EXCLUDED.privacy_accepted,
			stage = EXCLUDED.stage,
			selected_course_id = COALESCE(EXCLUDED.selected_course_id, leads.selected_course_id),
			source = EXCLUDED.source,
			interest_score = EXCLUDED.interest_score,
			pending_escalation = EXCLUDED.pending_escalation,
			last_interaction = EXCLUDED.last_interaction,
			updated_at = NOW()
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		lead.UserID,
		nullString(lead.Name),
		nullString(lead.Email),
		nullString(lead.Phone),
		lead.PrivacyAccepted,
		string(lead.Stage),
		nullString(lead.SelectedCourseID),
		lead.Source,
		lead.InterestScore,
		lead.PendingEscalation,
		lead.LastInteraction,
	)

	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
