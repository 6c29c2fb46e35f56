package usecase

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/ligue-cursos/internal/entity"
)

// advisorHistoryEntries: cuántas entradas del historial viajan al asesor.
const advisorHistoryEntries = 10

// Escalator arma el payload de escalamiento y lo emite al canal del asesor.
type Escalator struct {
	Notifier AdvisorNotifier
}

func NewEscalator(notifier AdvisorNotifier) *Escalator {
	return &Escalator{Notifier: notifier}
}

// Escalate notifica al asesor con un reintento. Si el canal falla, el lead
// queda marcado pending_escalation para reconciliación posterior y el
// usuario igual recibe confirmación (soft error).
func (e *Escalator) Escalate(ctx context.Context, lead *entity.Lead, courseName string) bool {
	notification := AdvisorNotification{
		UserID:        lead.UserID,
		Name:          lead.Name,
		Email:         lead.Email,
		Phone:         lead.Phone,
		CourseName:    courseName,
		InterestScore: lead.InterestScore,
		Source:        lead.Source,
		History:       lead.RecentHistory(advisorHistoryEntries),
	}

	policy := RetryPolicy{Attempts: 2, Backoff: LinearBackoff(time.Second)}
	err := Retry(ctx, policy, func(ctx context.Context) error {
		return e.Notifier.NotifyAdvisor(ctx, notification)
	})
	if err != nil {
		log.Printf("❌ Escalamiento: canal del asesor falló para %s: %v", lead.UserID, err)
		lead.PendingEscalation = true
		return false
	}

	lead.PendingEscalation = false
	return true
}
