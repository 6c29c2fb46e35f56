package usecase

import (
	"context"

	"github.com/xavierca1/ligue-cursos/internal/entity"
)

// SessionStore es el dueño exclusivo de los registros Lead.
type SessionStore interface {
	Load(ctx context.Context, userID string) (*entity.Lead, error)
	Save(ctx context.Context, lead *entity.Lead) error
	Reset(ctx context.Context, userID string) error
}

// CatalogGateway esconde si el backing store es SQL, HTTP o memoria.
// Las lecturas son snapshots inmutables.
type CatalogGateway interface {
	ListCourses(ctx context.Context) ([]entity.Course, error)
	GetCourse(ctx context.Context, id string) (*entity.Course, error)
	ListPromotions(ctx context.Context) ([]entity.Promotion, error)
	ListBonuses(ctx context.Context, courseID string) ([]entity.Bonus, error)
	GetResource(ctx context.Context, key string) (string, error)
	UpsertLead(ctx context.Context, lead *entity.Lead) error
	RegisterInteraction(ctx context.Context, it *entity.Interaction) error
}

// ChatSender es la superficie mínima de la plataforma de chat que el
// bot necesita. Devuelve el message id para poder borrar avisos.
type ChatSender interface {
	SendMessage(ctx context.Context, chatID int64, msg entity.OutboundMessage) (int, error)
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
}

// LLMClient genera una respuesta libre; única dependencia de modelo externo.
type LLMClient interface {
	Reply(ctx context.Context, userText, leadContext string) (string, error)
}

// AdvisorNotifier emite la notificación de escalamiento al canal del asesor.
type AdvisorNotifier interface {
	NotifyAdvisor(ctx context.Context, n AdvisorNotification) error
}

// AdvisorNotification es el payload que llega al asesor humano.
type AdvisorNotification struct {
	UserID        string                `json:"user_id"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Phone         string                `json:"phone"`
	CourseName    string                `json:"course_name"`
	InterestScore int                   `json:"interest_score"`
	Source        string                `json:"source"`
	History       []entity.HistoryEntry `json:"history"`
}
