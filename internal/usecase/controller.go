package usecase

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/xavierca1/ligue-cursos/internal/entity"
)

const resetText = "🔄 Reiniciar Conversación"

// Controller es el dueño único del ruteo: máquina de estados de la
// conversación, puerta de privacidad y transiciones de etapa. Muta el Lead
// solo aquí; nada más escribe sesiones.
type Controller struct {
	Store       SessionStore
	Catalog     CatalogGateway
	Renderer    *Renderer
	Dispatcher  *Dispatcher
	Escalator   *Escalator
	UmbralPromo int
}

func NewController(store SessionStore, catalog CatalogGateway, renderer *Renderer, dispatcher *Dispatcher, escalator *Escalator, umbralPromo int) *Controller {
	if umbralPromo <= 0 {
		umbralPromo = UmbralPromoDefault
	}
	return &Controller{
		Store:       store,
		Catalog:     catalog,
		Renderer:    renderer,
		Dispatcher:  dispatcher,
		Escalator:   escalator,
		UmbralPromo: umbralPromo,
	}
}

// HandleEvent procesa un evento entrante y devuelve los mensajes salientes.
// Toda condición recuperable se convierte acá en copy visible al usuario.
func (c *Controller) HandleEvent(ctx context.Context, ev entity.Event) []entity.OutboundMessage {
	lead, err := c.Store.Load(ctx, ev.UserID)
	if err != nil || lead == nil {
		log.Printf("⚠️ Controller: sesión ilegible para %s, arrancando lead limpio: %v", ev.UserID, err)
		lead = entity.NewLead(ev.UserID)
	}
	lead.ChatID = ev.ChatID

	// Reinicio: válido en cualquier estado.
	if isResetTrigger(ev) {
		return c.reset(ctx, ev)
	}

	var out []entity.OutboundMessage
	switch lead.Stage {
	case entity.StageNew:
		out = c.handleNew(ctx, lead, ev)
	case entity.StageAwaitingPrivacy:
		out = c.handleAwaitingPrivacy(ctx, lead, ev)
	case entity.StageAwaitingName:
		out = c.handleAwaitingName(lead, ev)
	case entity.StageAwaitingEmail:
		out = c.handleAwaitingEmail(lead, ev)
	case entity.StageAwaitingPhone:
		out = c.handleAwaitingPhone(ctx, lead, ev)
	case entity.StageAwaitingConfirmation:
		out = c.handleAwaitingConfirmation(ctx, lead, ev)
	case entity.StageEscalated:
		// El escalamiento cierra el loop de captura; el siguiente evento
		// devuelve al usuario a exploración.
		lead.Stage = entity.StageExploring
		out = c.handleExploring(ctx, lead, ev)
	default:
		out = c.handleExploring(ctx, lead, ev)
	}

	now := time.Now()
	lead.AppendHistory(ev.Inbound(), firstText(out), now)
	lead.Touch(now)
	c.persist(ctx, lead)

	return out
}

func isResetTrigger(ev entity.Event) bool {
	if ev.Kind == entity.EventCallback && ev.Token == "reiniciar" {
		return true
	}
	return ev.Kind == entity.EventText && strings.TrimSpace(ev.Body) == resetText
}

func (c *Controller) reset(ctx context.Context, ev entity.Event) []entity.OutboundMessage {
	if err := c.Store.Reset(ctx, ev.UserID); err != nil {
		log.Printf("⚠️ Controller: reset falló para %s: %v", ev.UserID, err)
	}
	lead := entity.NewLead(ev.UserID)
	lead.ChatID = ev.ChatID
	lead.Stage = entity.StageAwaitingPrivacy

	out := []entity.OutboundMessage{c.Renderer.PrivacyPrompt()}
	now := time.Now()
	lead.AppendHistory(ev.Inbound(), firstText(out), now)
	lead.Touch(now)
	c.persist(ctx, lead)
	return out
}

// handleNew: primer evento de un usuario desconocido. Un hashtag de curso o
// de campaña supera a la clasificación de intent — se atribuye la fuente y
// el curso antes de retomar el flujo de privacidad.
func (c *Controller) handleNew(ctx context.Context, lead *entity.Lead, ev entity.Event) []entity.OutboundMessage {
	switch ev.Kind {
	case entity.EventText:
		hashtags := ExtractHashtags(ev.Body)
		lead.InterestScore = InitialScore(ev.Body, hashtags)
		if IsCampaignEntry(hashtags) {
			lead.Source = ResolveCampaign(hashtags)
			courseID, err := ResolveCourse(ctx, c.Catalog, hashtags)
			if err != nil {
				log.Printf("⚠️ Controller: catálogo no disponible al resolver curso: %v", err)
			} else if courseID != "" {
				lead.SelectedCourseID = courseID
			}
			c.registerInteraction(ctx, lead, entity.NewInteraction(lead.UserID, lead.SelectedCourseID, entity.InteractionInquiry), false)
		}
	case entity.EventCommand:
		if ev.Name == "start" && strings.HasPrefix(ev.Args, "ad_") {
			lead.Source = ev.Args
		}
		lead.InterestScore = initialScoreBase
	default:
		lead.InterestScore = initialScoreBase
	}

	// La puerta de privacidad es absoluta: nada de catálogo antes del
	// consentimiento.
	lead.Stage = entity.StageAwaitingPrivacy
	return []entity.OutboundMessage{c.Renderer.PrivacyPrompt()}
}

func (c *Controller) handleAwaitingPrivacy(ctx context.Context, lead *entity.Lead, ev entity.Event) []entity.OutboundMessage {
	if ev.Kind == entity.EventCallback {
		switch ev.Token {
		case "privacy_accept":
			lead.AcceptPrivacy(time.Now())
			if lead.Name == "" {
				lead.Stage = entity.StageAwaitingName
				return []entity.OutboundMessage{c.Renderer.AskName()}
			}
			lead.Stage = entity.StageExploring
			return []entity.OutboundMessage{c.Renderer.MainMenu()}
		case "privacy_view":
			return []entity.OutboundMessage{c.Renderer.PrivacyNotice()}
		case "privacy_back":
			return []entity.OutboundMessage{c.Renderer.PrivacyPrompt()}
		}
	}
	// Cualquier texto u otro botón: se reemite el aviso.
	return []entity.OutboundMessage{c.Renderer.PrivacyPrompt()}
}

func (c *Controller) handleAwaitingName(lead *entity.Lead, ev entity.Event) []entity.OutboundMessage {
	if ev.Kind != entity.EventText || !ValidateName(ev.Body) {
		return []entity.OutboundMessage{c.Renderer.InvalidName()}
	}

	lead.Name = TitleCaseName(ev.Body)
	lead.Stage = entity.StageExploring
	fromAd := strings.HasPrefix(lead.Source, "ad_")
	return []entity.OutboundMessage{c.Renderer.Welcome(lead.Name, fromAd)}
}

// --- Captura de contacto (LLM suprimido en estas etapas) ---

func (c *Controller) handleAwaitingEmail(lead *entity.Lead, ev entity.Event) []entity.OutboundMessage {
	if ev.Kind != entity.EventText {
		return []entity.OutboundMessage{c.Renderer.AskEmail()}
	}
	if !ValidateEmail(ev.Body) {
		return []entity.OutboundMessage{c.Renderer.InvalidEmail()}
	}

	lead.Email = strings.TrimSpace(ev.Body)
	lead.Stage = entity.StageAwaitingPhone
	return []entity.OutboundMessage{c.Renderer.AskPhone()}
}

func (c *Controller) handleAwaitingPhone(ctx context.Context, lead *entity.Lead, ev entity.Event) []entity.OutboundMessage {
	if ev.Kind != entity.EventText {
		return []entity.OutboundMessage{c.Renderer.AskPhone()}
	}
	if !ValidatePhone(ev.Body) {
		return []entity.OutboundMessage{c.Renderer.InvalidPhone()}
	}

	lead.Phone = strings.TrimSpace(ev.Body)
	lead.Stage = entity.StageAwaitingConfirmation
	return []entity.OutboundMessage{c.Renderer.ConfirmSummary(lead, c.selectedCourseName(ctx, lead))}
}

func (c *Controller) handleAwaitingConfirmation(ctx context.Context, lead *entity.Lead, ev entity.Event) []entity.OutboundMessage {
	if ev.Kind == entity.EventCallback {
		switch ev.Token {
		case "confirmar_datos":
			courseName := c.selectedCourseName(ctx, lead)
			ok := c.Escalator.Escalate(ctx, lead, courseName)
			c.registerInteraction(ctx, lead, entity.NewInteraction(lead.UserID, lead.SelectedCourseID, entity.InteractionEscalate), false)
			lead.Stage = entity.StageExploring
			if !ok {
				return []entity.OutboundMessage{c.Renderer.EscalationSoftError()}
			}
			return []entity.OutboundMessage{c.Renderer.EscalationAck(lead.Name)}
		case "editar_datos":
			lead.Stage = entity.StageAwaitingEmail
			return []entity.OutboundMessage{c.Renderer.AskEmail()}
		}
	}
	return []entity.OutboundMessage{c.Renderer.ConfirmSummary(lead, c.selectedCourseName(ctx, lead))}
}

// --- Exploración (estado estable) ---

func (c *Controller) handleExploring(ctx context.Context, lead *entity.Lead, ev entity.Event) []entity.OutboundMessage {
	if !lead.CanExplore() {
		// Puerta de privacidad / nombre: reentrar al flujo anterior.
		if !lead.PrivacyAccepted {
			lead.Stage = entity.StageAwaitingPrivacy
			return []entity.OutboundMessage{c.Renderer.PrivacyPrompt()}
		}
		lead.Stage = entity.StageAwaitingName
		return []entity.OutboundMessage{c.Renderer.AskName()}
	}

	switch ev.Kind {
	case entity.EventCommand:
		if ev.Name == "start" {
			return []entity.OutboundMessage{c.Renderer.MainMenu()}
		}
		return []entity.OutboundMessage{c.Renderer.MainMenu()}
	case entity.EventCallback:
		return c.handleCallback(ctx, lead, ev.Token)
	default:
		return c.handleText(ctx, lead, ev.Body)
	}
}

// handleCallback rutea la gramática de tokens de los botones inline.
func (c *Controller) handleCallback(ctx context.Context, lead *entity.Lead, token string) []entity.OutboundMessage {
	now := time.Now()

	switch {
	case token == "menu_principal":
		return []entity.OutboundMessage{c.Renderer.MainMenu()}

	case token == "ver_cursos":
		courses, err := c.Catalog.ListCourses(ctx)
		if err != nil {
			return c.catalogDown(err)
		}
		return []entity.OutboundMessage{c.Renderer.CoursesList(courses)}

	case strings.HasPrefix(token, "course_"):
		course, err := c.Catalog.GetCourse(ctx, strings.TrimPrefix(token, "course_"))
		if err != nil {
			return c.catalogDown(err)
		}
		lead.SelectedCourseID = course.ID
		c.registerInteraction(ctx, lead, entity.NewInteraction(lead.UserID, course.ID, entity.InteractionView), true)
		return []entity.OutboundMessage{c.Renderer.CourseDetail(course)}

	case strings.HasPrefix(token, "info_"):
		course, err := c.Catalog.GetCourse(ctx, strings.TrimPrefix(token, "info_"))
		if err != nil {
			return c.catalogDown(err)
		}
		c.registerInteraction(ctx, lead, entity.NewInteraction(lead.UserID, course.ID, entity.InteractionView), true)
		return []entity.OutboundMessage{c.Renderer.CourseDetail(course)}

	case strings.HasPrefix(token, "modules_"), strings.HasPrefix(token, "show_syllabus_"):
		id := strings.TrimPrefix(strings.TrimPrefix(token, "show_syllabus_"), "modules_")
		course, err := c.Catalog.GetCourse(ctx, id)
		if err != nil {
			return c.catalogDown(err)
		}
		c.registerInteraction(ctx, lead, entity.NewInteraction(lead.UserID, course.ID, entity.InteractionSyllabusView), true)
		return []entity.OutboundMessage{c.Renderer.Syllabus(course)}

	case strings.HasPrefix(token, "show_preview_"):
		course, err := c.Catalog.GetCourse(ctx, strings.TrimPrefix(token, "show_preview_"))
		if err != nil {
			return c.catalogDown(err)
		}
		c.registerInteraction(ctx, lead, entity.NewInteraction(lead.UserID, course.ID, entity.InteractionPreviewWatch), true)
		return []entity.OutboundMessage{c.Renderer.Preview(course)}

	case strings.HasPrefix(token, "show_pricing_"):
		course, err := c.Catalog.GetCourse(ctx, strings.TrimPrefix(token, "show_pricing_"))
		if err != nil {
			return c.catalogDown(err)
		}
		c.registerInteraction(ctx, lead, entity.NewInteraction(lead.UserID, course.ID, entity.InteractionPricingView), true)
		return []entity.OutboundMessage{c.Renderer.Pricing(course, now)}

	case strings.HasPrefix(token, "buy_course_"):
		course, err := c.Catalog.GetCourse(ctx, strings.TrimPrefix(token, "buy_course_"))
		if err != nil {
			return c.catalogDown(err)
		}
		c.registerInteraction(ctx, lead, entity.NewInteraction(lead.UserID, course.ID, entity.InteractionPricingView), true)
		return []entity.OutboundMessage{c.Renderer.Purchase(course, now)}

	case strings.HasPrefix(token, "schedule_call_"):
		course, err := c.Catalog.GetCourse(ctx, strings.TrimPrefix(token, "schedule_call_"))
		if err != nil {
			return c.catalogDown(err)
		}
		it := entity.NewInteraction(lead.UserID, course.ID, entity.InteractionInquiry)
		it.Metadata = map[string]string{"action": "schedule_call"}
		c.registerInteraction(ctx, lead, it, false)
		return []entity.OutboundMessage{c.Renderer.DemoLink(course)}

	case strings.HasPrefix(token, "bonos_"):
		course, err := c.Catalog.GetCourse(ctx, strings.TrimPrefix(token, "bonos_"))
		if err != nil {
			return c.catalogDown(err)
		}
		bonuses, err := c.Catalog.ListBonuses(ctx, course.ID)
		if err != nil {
			return c.catalogDown(err)
		}
		c.registerInteraction(ctx, lead, entity.NewInteraction(lead.UserID, course.ID, entity.InteractionOfferShown), true)
		return []entity.OutboundMessage{c.Renderer.Bonuses(course, bonuses, now)}

	case token == "contacto", token == "contactar_asesor":
		return c.startEscalation(lead)

	case token == "promociones":
		if lead.InterestScore < c.UmbralPromo {
			return []entity.OutboundMessage{c.Renderer.PromoLocked()}
		}
		promos, err := c.Catalog.ListPromotions(ctx)
		if err != nil {
			return c.catalogDown(err)
		}
		c.registerInteraction(ctx, lead, entity.NewInteraction(lead.UserID, lead.SelectedCourseID, entity.InteractionOfferShown), true)
		return []entity.OutboundMessage{c.Renderer.Promotions(promos, now)}

	case strings.HasPrefix(token, "promo_"):
		promos, err := c.Catalog.ListPromotions(ctx)
		if err != nil {
			return c.catalogDown(err)
		}
		id := strings.TrimPrefix(token, "promo_")
		for i := range promos {
			if promos[i].ID == id {
				courses, err := c.Catalog.ListCourses(ctx)
				if err != nil {
					return c.catalogDown(err)
				}
				return []entity.OutboundMessage{c.Renderer.PromotionDetail(&promos[i], courses)}
			}
		}
		return []entity.OutboundMessage{c.Renderer.Promotions(promos, now)}

	case token == "faq":
		return []entity.OutboundMessage{c.Renderer.FAQList()}

	case strings.HasPrefix(token, "faq_q_"):
		i, err := strconv.Atoi(strings.TrimPrefix(token, "faq_q_"))
		if err != nil {
			return []entity.OutboundMessage{c.Renderer.FAQList()}
		}
		return []entity.OutboundMessage{c.Renderer.FAQAnswer(i)}

	case token == "plan_pagos":
		return []entity.OutboundMessage{c.Renderer.PaymentPlans()}
	}

	log.Printf("⚠️ Controller: token desconocido %q de %s", token, lead.UserID)
	return []entity.OutboundMessage{c.Renderer.MainMenu()}
}

// handleText: clasifica intent, despacha la herramienta, ajusta el score y
// envuelve la respuesta con el CTA contextual.
func (c *Controller) handleText(ctx context.Context, lead *entity.Lead, text string) []entity.OutboundMessage {
	intent := ClassifyIntent(text)
	negative := DetectNegativeFeedback(text)
	AdjustScore(lead, IntentDelta(intent, negative))

	var course *entity.Course
	if lead.SelectedCourseID != "" {
		var err error
		course, err = c.Catalog.GetCourse(ctx, lead.SelectedCourseID)
		if err != nil {
			log.Printf("⚠️ Controller: curso seleccionado ilegible (%s): %v", lead.SelectedCourseID, err)
			course = nil
		}
	}

	result := c.Dispatcher.Dispatch(ctx, lead, course, intent, text)

	if result.StartEscalation {
		return c.startEscalation(lead)
	}

	if result.HasInteraction {
		// El delta de score por interacción aplica solo a eventos de botón;
		// en texto el ajuste ya vino por el intent.
		c.registerInteraction(ctx, lead, entity.NewInteraction(lead.UserID, lead.SelectedCourseID, result.Interaction), false)
	}

	ctaContext := result.Context
	if ctaContext == "" {
		ctaContext = ScoreContext(lead, c.UmbralPromo)
	}

	// En texto la respuesta siempre cierra con el CTA contextual.
	out := result.Messages
	if len(out) > 0 {
		out[len(out)-1].Keyboard = c.Renderer.ContextualCTA(ctaContext, course)
	}
	return out
}

// startEscalation arranca la captura de contacto saltando lo ya conocido.
func (c *Controller) startEscalation(lead *entity.Lead) []entity.OutboundMessage {
	switch {
	case lead.Email == "":
		lead.Stage = entity.StageAwaitingEmail
		return []entity.OutboundMessage{c.Renderer.AskEmail()}
	case lead.Phone == "":
		lead.Stage = entity.StageAwaitingPhone
		return []entity.OutboundMessage{c.Renderer.AskPhone()}
	default:
		lead.Stage = entity.StageAwaitingConfirmation
		return []entity.OutboundMessage{c.Renderer.ConfirmSummary(lead, "")}
	}
}

// --- Helpers ---

func (c *Controller) selectedCourseName(ctx context.Context, lead *entity.Lead) string {
	if lead.SelectedCourseID == "" {
		return ""
	}
	course, err := c.Catalog.GetCourse(ctx, lead.SelectedCourseID)
	if err != nil {
		return ""
	}
	return course.Name
}

// registerInteraction: append best-effort + delta de score opcional.
func (c *Controller) registerInteraction(ctx context.Context, lead *entity.Lead, it *entity.Interaction, applyDelta bool) {
	if err := c.Catalog.RegisterInteraction(ctx, it); err != nil {
		log.Printf("⚠️ Controller: no se pudo registrar interacción %s: %v", it.Type, err)
	}
	if applyDelta {
		AdjustScore(lead, InteractionDelta(it.Type))
	}
}

func (c *Controller) catalogDown(err error) []entity.OutboundMessage {
	log.Printf("❌ Controller: catálogo no disponible: %v", err)
	return []entity.OutboundMessage{c.Renderer.CatalogUnavailable()}
}

// persist guarda la sesión (el store reintenta la escritura una vez) y
// espeja el lead en el CRM; ambas fallas son no fatales.
func (c *Controller) persist(ctx context.Context, lead *entity.Lead) {
	if err := c.Store.Save(ctx, lead); err != nil {
		log.Printf("⚠️ Controller: no se pudo guardar la sesión de %s: %v", lead.UserID, err)
	}
	if err := c.Catalog.UpsertLead(ctx, lead); err != nil {
		log.Printf("⚠️ Controller: upsert de lead falló para %s: %v", lead.UserID, err)
	}
}

func firstText(out []entity.OutboundMessage) string {
	if len(out) == 0 {
		return ""
	}
	texts := make([]string, 0, len(out))
	for _, m := range out {
		texts = append(texts, m.Text)
	}
	return strings.Join(texts, "\n")
}
