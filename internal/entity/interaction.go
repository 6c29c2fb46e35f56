package entity

import (
	"time"

	"github.com/google/uuid"
)

type InteractionType string

const (
	InteractionInquiry      InteractionType = "inquiry"
	InteractionView         InteractionType = "view"
	InteractionPreviewWatch InteractionType = "preview_watch"
	InteractionSyllabusView InteractionType = "syllabus_view"
	InteractionOfferShown   InteractionType = "offer_shown"
	InteractionPricingView  InteractionType = "pricing_view"
	InteractionEscalate     InteractionType = "escalate"
)

// Interaction es un evento append-only; lo escribe únicamente el dispatcher.
type Interaction struct {
	ID        string            `json:"id"`
	LeadID    string            `json:"lead_id"`
	CourseID  string            `json:"course_id,omitempty"`
	Type      InteractionType   `json:"type"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Factory
func NewInteraction(leadID, courseID string, t InteractionType) *Interaction {
	return &Interaction{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		CourseID:  courseID,
		Type:      t,
		Timestamp: time.Now(),
	}
}
