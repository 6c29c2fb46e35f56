package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xavierca1/ligue-cursos/internal/entity"
)

// Dispatcher mapea intents a herramientas con efecto (mostrar temario,
// comparar precio, arrancar escalamiento, responder con LLM...).
type Dispatcher struct {
	Catalog  CatalogGateway
	LLM      LLMClient
	Renderer *Renderer
}

func NewDispatcher(catalog CatalogGateway, llm LLMClient, renderer *Renderer) *Dispatcher {
	return &Dispatcher{Catalog: catalog, LLM: llm, Renderer: renderer}
}

// ToolResult es la salida de una herramienta. StartEscalation avisa al
// controller que debe entrar al flujo de captura de contacto.
type ToolResult struct {
	Messages        []entity.OutboundMessage
	Interaction     entity.InteractionType
	HasInteraction  bool
	StartEscalation bool
	Context         string // contexto forzado para el CTA ("" = derivar del lead)
}

// Dispatch ejecuta la herramienta del intent. El curso seleccionado puede
// ser nil; cada herramienta degrada con copy fijo en ese caso.
func (d *Dispatcher) Dispatch(ctx context.Context, lead *entity.Lead, course *entity.Course, intent Intent, text string) ToolResult {
	now := time.Now()

	switch intent {
	case IntentContentInquiry:
		if course == nil {
			return ToolResult{Messages: d.needCourse()}
		}
		return ToolResult{
			Messages:       []entity.OutboundMessage{d.Renderer.Syllabus(course)},
			Interaction:    entity.InteractionSyllabusView,
			HasInteraction: true,
		}

	case IntentPriceObjection, IntentBudgetConcern:
		if course == nil {
			return ToolResult{Messages: d.needCourse(), Context: ContextPricingInquiry}
		}
		return ToolResult{
			Messages:       []entity.OutboundMessage{d.Renderer.Pricing(course, now)},
			Interaction:    entity.InteractionPricingView,
			HasInteraction: true,
			Context:        ContextPricingInquiry,
		}

	case IntentContactRequest:
		return ToolResult{StartEscalation: true}

	case IntentResourceRequest:
		url, err := d.Catalog.GetResource(ctx, "free_resource")
		if err != nil {
			log.Printf("⚠️ Dispatcher: recurso gratuito no disponible: %v", err)
			url = ""
		}
		return ToolResult{Messages: []entity.OutboundMessage{d.Renderer.FreeResource(url)}}

	case IntentDemoRequest:
		msgs := []entity.OutboundMessage{d.Renderer.DemoLink(course)}
		if course != nil {
			return ToolResult{Messages: msgs, Interaction: entity.InteractionPreviewWatch, HasInteraction: true}
		}
		return ToolResult{Messages: msgs}

	case IntentGuaranteeInquiry:
		return ToolResult{Messages: []entity.OutboundMessage{d.Renderer.Guarantee()}}

	case IntentTestimonialRequest:
		return ToolResult{Messages: []entity.OutboundMessage{{
			Text: "⭐ Más de 1,200 estudiantes han tomado nuestros cursos con una " +
				"calificación promedio de 4.8/5. Pídele casos concretos al asesor. 😉",
		}}}

	case IntentSpecialOffer:
		if course == nil {
			return ToolResult{Messages: d.needCourse()}
		}
		bonuses, err := d.Catalog.ListBonuses(ctx, course.ID)
		if err != nil {
			return ToolResult{Messages: []entity.OutboundMessage{d.Renderer.CatalogUnavailable()}}
		}
		return ToolResult{
			Messages:       []entity.OutboundMessage{d.Renderer.Bonuses(course, bonuses, now)},
			Interaction:    entity.InteractionOfferShown,
			HasInteraction: true,
		}
	}

	// generic → llm_reply
	return ToolResult{Messages: []entity.OutboundMessage{d.llmReply(ctx, lead, course, text)}}
}

func (d *Dispatcher) needCourse() []entity.OutboundMessage {
	return []entity.OutboundMessage{{
		Text:     "🤓 Cuéntame primero qué curso te interesa y te doy todos los detalles.",
		Keyboard: entity.Keyboard{{entity.CallbackButton("📚 Ver Cursos", "ver_cursos")}},
	}}
}

// llmReply llama al modelo con un contexto corto del lead; si falla cae a
// una respuesta determinística.
func (d *Dispatcher) llmReply(ctx context.Context, lead *entity.Lead, course *entity.Course, text string) entity.OutboundMessage {
	leadContext := fmt.Sprintf("nombre=%s score=%d", lead.Name, lead.InterestScore)
	if course != nil {
		leadContext += " curso=" + course.Name
	}

	reply, err := d.LLM.Reply(ctx, text, leadContext)
	if err != nil {
		log.Printf("⚠️ Dispatcher: LLM falló, usando respuesta de respaldo: %v", err)
		return entity.OutboundMessage{
			Text: "🤖 Estoy aquí para ayudarte con cualquier duda sobre nuestros cursos. " +
				"¿Quieres ver el catálogo o hablar con un asesor?",
		}
	}
	return entity.OutboundMessage{Text: reply}
}
