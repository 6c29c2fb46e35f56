package queue

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/ligue-cursos/internal/entity"
	"github.com/xavierca1/ligue-cursos/internal/usecase"
)

// PendingLister expone los leads con escalamiento pendiente.
type PendingLister interface {
	PendingEscalations(ctx context.Context) ([]*entity.Lead, error)
}

// Reconciler recorre los leads pending_escalation y reintenta publicar el
// escalamiento. Corre en un ticker hasta que el contexto muera.
type Reconciler struct {
	Store        PendingLister
	Sessions     usecase.SessionStore
	Notifier     usecase.AdvisorNotifier
	tickInterval time.Duration
}

func NewReconciler(store PendingLister, sessions usecase.SessionStore, notifier usecase.AdvisorNotifier) *Reconciler {
	return &Reconciler{
		Store:        store,
		Sessions:     sessions,
		Notifier:     notifier,
		tickInterval: 5 * time.Minute,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	log.Println("🕒 Reconciliador de escalamientos iniciado (cada 5min)")

	ticker := time.NewTicker(r.tickInterval)
	defer ticker.Stop()

	r.reconcile(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Reconciliador de escalamientos detenido")
			return
		case <-ticker.C:
			r.reconcile(ctx)
		}
	}
}

func (r *Reconciler) reconcile(ctx context.Context) {
	pending, err := r.Store.PendingEscalations(ctx)
	if err != nil {
		log.Printf("❌ Reconciliador: no se pudieron listar pendientes: %v", err)
		return
	}

	recovered := 0
	for _, lead := range pending {
		if lead.Email == "" || lead.Phone == "" {
			continue // datos incompletos, no hay nada que notificar
		}

		n := usecase.AdvisorNotification{
			UserID:        lead.UserID,
			Name:          lead.Name,
			Email:         lead.Email,
			Phone:         lead.Phone,
			InterestScore: lead.InterestScore,
			Source:        lead.Source,
			History:       lead.RecentHistory(10),
		}
		if err := r.Notifier.NotifyAdvisor(ctx, n); err != nil {
			log.Printf("⚠️ Reconciliador: reintento falló para %s: %v", lead.UserID, err)
			continue
		}

		lead.PendingEscalation = false
		if err := r.Sessions.Save(ctx, lead); err != nil {
			log.Printf("⚠️ Reconciliador: no se pudo limpiar el flag de %s: %v", lead.UserID, err)
			continue
		}
		recovered++
	}

	if recovered > 0 {
		log.Printf("✅ Reconciliador: %d escalamiento(s) recuperado(s)", recovered)
	}
}
