package entity

import (
	"time"
	// IMPORTANTE: NO agregar imports de usecase o infra aquí!
)

type Stage string

const (
	StageNew                  Stage = "new"
	StageAwaitingPrivacy      Stage = "awaiting_privacy"
	StageAwaitingName         Stage = "awaiting_name"
	StageExploring            Stage = "exploring"
	StageCourseSelected       Stage = "course_selected"
	StageAwaitingEmail        Stage = "awaiting_email"
	StageAwaitingPhone        Stage = "awaiting_phone"
	StageAwaitingConfirmation Stage = "awaiting_confirmation"
	StageEscalated            Stage = "escalated"
	StageIdle                 Stage = "idle"
)

// HistoryLimit acota el historial por lead (se desaloja el más viejo).
const HistoryLimit = 50

type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Inbound   string    `json:"inbound"`
	Outbound  string    `json:"outbound"`
}

// Entidad: Lead — un registro por identidad de usuario de la plataforma.
type Lead struct {
	UserID string `json:"user_id"`
	ChatID int64  `json:"chat_id"`

	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	PrivacyAccepted bool       `json:"privacy_accepted"`
	AcceptedAt      *time.Time `json:"accepted_at,omitempty"`

	Stage             Stage  `json:"stage"`
	SelectedCourseID  string `json:"selected_course_id,omitempty"`
	Source            string `json:"source"`
	InterestScore     int    `json:"interest_score"`
	PendingEscalation bool   `json:"pending_escalation"`

	History         []HistoryEntry `json:"history"`
	LastInteraction time.Time      `json:"last_interaction"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Factory
func NewLead(userID string) *Lead {
	now := time.Now()
	return &Lead{
		UserID:    userID,
		Stage:     StageNew,
		Source:    "organic",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CaptureMode indica que el lead está en captura de datos: se suprime
// cualquier respuesta generada por el LLM.
func (l *Lead) CaptureMode() bool {
	switch l.Stage {
	case StageAwaitingEmail, StageAwaitingPhone, StageAwaitingConfirmation:
		return true
	}
	return false
}

func (l *Lead) AcceptPrivacy(at time.Time) {
	l.PrivacyAccepted = true
	l.AcceptedAt = &at
}

// CanExplore: exploring exige consentimiento + nombre capturado.
func (l *Lead) CanExplore() bool {
	return l.PrivacyAccepted && l.Name != ""
}

func (l *Lead) AppendHistory(inbound, outbound string, at time.Time) {
	l.History = append(l.History, HistoryEntry{Timestamp: at, Inbound: inbound, Outbound: outbound})
	if len(l.History) > HistoryLimit {
		l.History = l.History[len(l.History)-HistoryLimit:]
	}
}

// RecentHistory devuelve las últimas n entradas (para el payload del asesor).
func (l *Lead) RecentHistory(n int) []HistoryEntry {
	if len(l.History) <= n {
		return l.History
	}
	return l.History[len(l.History)-n:]
}

func (l *Lead) Touch(at time.Time) {
	l.LastInteraction = at
	l.UpdatedAt = at
}
