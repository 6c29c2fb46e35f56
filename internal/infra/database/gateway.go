package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/ligue-cursos/internal/entity"
	"github.com/xavierca1/ligue-cursos/internal/usecase"
)

var ErrResourceNotFound = &usecase.DomainError{
	Code:    "RESOURCE_NOT_FOUND",
	Message: "recurso no encontrado",
}

// Gateway junta los repositorios detrás del contrato CatalogGateway.
// El Controller nunca toca los repos directamente.
type Gateway struct {
	Courses      *CourseRepository
	Promotions   *PromotionRepository
	Bonuses      *BonusRepository
	Leads        *LeadRepository
	Interactions *InteractionRepository
	DB           *sql.DB
}

func NewGateway(db *sql.DB) *Gateway {
	return &Gateway{
		Courses:      NewCourseRepository(db),
		Promotions:   NewPromotionRepository(db),
		Bonuses:      NewBonusRepository(db),
		Leads:        NewLeadRepository(db),
		Interactions: NewInteractionRepository(db),
		DB:           db,
	}
}

func (g *Gateway) ListCourses(ctx context.Context) ([]entity.Course, error) {
	return g.Courses.List(ctx)
}

func (g *Gateway) GetCourse(ctx context.Context, id string) (*entity.Course, error) {
	return g.Courses.FindByID(ctx, id)
}

func (g *Gateway) ListPromotions(ctx context.Context) ([]entity.Promotion, error) {
	return g.Promotions.List(ctx)
}

func (g *Gateway) ListBonuses(ctx context.Context, courseID string) ([]entity.Bonus, error) {
	return g.Bonuses.ListByCourse(ctx, courseID)
}

func (g *Gateway) GetResource(ctx context.Context, key string) (string, error) {
	var url string
	err := g.DB.QueryRowContext(ctx, `SELECT url FROM resources WHERE key = $1`, key).Scan(&url)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrResourceNotFound
	}
	return url, err
}

func (g *Gateway) UpsertLead(ctx context.Context, lead *entity.Lead) error {
	return g.Leads.Upsert(ctx, lead)
}

func (g *Gateway) RegisterInteraction(ctx context.Context, it *entity.Interaction) error {
	return g.Interactions.Append(ctx, it)
}
