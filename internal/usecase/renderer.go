package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/xavierca1/ligue-cursos/internal/entity"
)

// Renderer arma los cuerpos de mensaje y los teclados inline a partir del
// catálogo y el contexto de la sesión. Cuando un campo del catálogo falta
// emite el placeholder fijo "no disponible" — nunca inventa un valor.
type Renderer struct {
	FAQ *FAQDocument
}

func NewRenderer(faq *FAQDocument) *Renderer {
	return &Renderer{FAQ: faq}
}

const placeholderNA = "no disponible"

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholderNA
	}
	return s
}

// --- Privacidad ---

func (r *Renderer) PrivacyPrompt() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "👋 ¡Bienvenido/a!\n\n" +
			"Antes de continuar necesitamos que aceptes nuestro *Aviso de Privacidad*. " +
			"Tus datos se usan únicamente para asesorarte sobre nuestros cursos.",
		Keyboard: entity.Keyboard{
			{entity.CallbackButton("✅ Acepto y continúo", "privacy_accept")},
			{entity.CallbackButton("🔒 Ver Aviso Completo", "privacy_view")},
		},
	}
}

func (r *Renderer) PrivacyNotice() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "🔒 *Aviso de Privacidad*\n\n" +
			"• Guardamos tu nombre y datos de contacto solo para darte seguimiento.\n" +
			"• Nunca compartimos tu información con terceros.\n" +
			"• Puedes pedir la eliminación de tus datos en cualquier momento escribiendo a privacidad@liguecursos.com.",
		Keyboard: entity.Keyboard{
			{entity.CallbackButton("✅ Acepto y continúo", "privacy_accept")},
			{entity.CallbackButton("⬅️ Volver", "privacy_back")},
		},
	}
}

// --- Alta y menú ---

func (r *Renderer) AskName() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "¡Gracias! 🙌\n\n¿Cómo te llamas? Escribe tu nombre para personalizar la asesoría.",
	}
}

func (r *Renderer) InvalidName() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "🤔 No logré leer tu nombre. Escríbelo usando solo letras, por favor.",
	}
}

// Welcome varía si el lead entró por una campaña de anuncios.
func (r *Renderer) Welcome(name string, fromAd bool) entity.OutboundMessage {
	var text string
	if fromAd {
		text = fmt.Sprintf("¡Hola %s! 🎉 Qué bueno que llegaste desde nuestro anuncio.\n\n"+
			"Soy tu asesor virtual de cursos. ¿Quieres ver el curso que te interesó o explorar todo el catálogo?", name)
	} else {
		text = fmt.Sprintf("¡Hola %s! 😊 Soy tu asesor virtual de cursos.\n\n"+
			"Puedo mostrarte el catálogo, promociones vigentes o resolver tus dudas.", name)
	}
	return entity.OutboundMessage{Text: text, Keyboard: r.MainMenuKeyboard()}
}

func (r *Renderer) MainMenu() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text:     "📋 *Menú principal*\n\n¿Qué te gustaría hacer?",
		Keyboard: r.MainMenuKeyboard(),
	}
}

func (r *Renderer) MainMenuKeyboard() entity.Keyboard {
	return entity.Keyboard{
		{
			entity.CallbackButton("📚 Cursos", "ver_cursos"),
			entity.CallbackButton("🎁 Promociones", "promociones"),
		},
		{
			entity.CallbackButton("❓ FAQ", "faq"),
			entity.CallbackButton("👨‍💼 Asesor", "contacto"),
		},
		{
			entity.CallbackButton("🔄 Reiniciar", "reiniciar"),
		},
	}
}

// --- Catálogo ---

func (r *Renderer) CoursesList(courses []entity.Course) entity.OutboundMessage {
	if len(courses) == 0 {
		return entity.OutboundMessage{
			Text:     "😕 Por ahora no hay cursos publicados. Vuelve pronto.",
			Keyboard: entity.Keyboard{{entity.CallbackButton("⬅️ Volver", "menu_principal")}},
		}
	}

	var b strings.Builder
	b.WriteString("📚 *Nuestros cursos*\n\n")
	keyboard := make(entity.Keyboard, 0, len(courses)+1)
	for _, c := range courses {
		fmt.Fprintf(&b, "• *%s* — %s\n", c.Name, orNA(c.ShortDescription))
		keyboard = append(keyboard, entity.ButtonRow{
			entity.CallbackButton(c.Name, "course_"+c.ID),
		})
	}
	keyboard = append(keyboard, entity.ButtonRow{entity.CallbackButton("⬅️ Volver", "menu_principal")})

	return entity.OutboundMessage{Text: b.String(), Keyboard: keyboard}
}

// CourseDetail es la vista de exploración del curso.
func (r *Renderer) CourseDetail(c *entity.Course) entity.OutboundMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "🎓 *%s*\n\n%s\n\n", c.Name, orNA(c.LongDescription))
	fmt.Fprintf(&b, "📊 Nivel: %s\n", orNA(c.Level))
	fmt.Fprintf(&b, "⏱️ Duración total: %s\n", orNA(c.TotalDuration))
	fmt.Fprintf(&b, "🗓️ Horario: %s\n", orNA(c.Schedule))
	if len(c.Tools) > 0 {
		fmt.Fprintf(&b, "🛠️ Herramientas: %s\n", strings.Join(c.Tools, ", "))
	}

	return entity.OutboundMessage{
		Text:     b.String(),
		PhotoURL: c.ThumbnailURL,
		Keyboard: r.CourseKeyboard(c.ID),
	}
}

func (r *Renderer) CourseKeyboard(courseID string) entity.Keyboard {
	return entity.Keyboard{
		{
			entity.CallbackButton("📖 Temario", "show_syllabus_"+courseID),
			entity.CallbackButton("🎬 Vista Previa", "show_preview_"+courseID),
		},
		{
			entity.CallbackButton("💰 Precio", "show_pricing_"+courseID),
			entity.CallbackButton("🛒 Comprar", "buy_course_"+courseID),
		},
		{
			entity.CallbackButton("⬅️ Volver", "ver_cursos"),
		},
	}
}

func (r *Renderer) Syllabus(c *entity.Course) entity.OutboundMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "📖 *Temario de %s*\n\n", c.Name)
	if len(c.Modules) == 0 {
		b.WriteString(placeholderNA + "\n")
	}
	for _, m := range c.Modules {
		fmt.Fprintf(&b, "*%d. %s* (%s)\n%s\n\n", m.Index, m.Name, orNA(m.Duration), orNA(m.Description))
	}
	if c.SyllabusURL != "" {
		fmt.Fprintf(&b, "📄 Temario completo: %s\n", c.SyllabusURL)
	}
	return entity.OutboundMessage{Text: b.String(), Keyboard: r.CourseKeyboard(c.ID)}
}

func (r *Renderer) Preview(c *entity.Course) entity.OutboundMessage {
	if c.PreviewURL == "" {
		return entity.OutboundMessage{
			Text:     fmt.Sprintf("🎬 La vista previa de *%s* está %s.", c.Name, placeholderNA),
			Keyboard: r.CourseKeyboard(c.ID),
		}
	}
	return entity.OutboundMessage{
		Text:     fmt.Sprintf("🎬 Vista previa de *%s*. ¡Dale play!", c.Name),
		VideoURL: c.PreviewURL,
		Keyboard: r.CourseKeyboard(c.ID),
	}
}

// Pricing incluye el descuento solo si está activo.
func (r *Renderer) Pricing(c *entity.Course, now time.Time) entity.OutboundMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "💰 *Inversión — %s*\n\n", c.Name)
	if c.HasActiveDiscount(now) {
		fmt.Fprintf(&b, "~Antes: $%.2f~\n", c.OriginalPrice)
		fmt.Fprintf(&b, "*Ahora: $%.2f* (%d%% de descuento)\n", c.Price, c.DiscountPct)
		fmt.Fprintf(&b, "⏳ El descuento termina el %s\n", c.DiscountEndDate.Format("02/01/2006"))
	} else if c.Price > 0 {
		fmt.Fprintf(&b, "*Precio: $%.2f*\n", c.Price)
	} else {
		b.WriteString("Precio: " + placeholderNA + "\n")
	}
	if c.MaxStudents > 0 {
		fmt.Fprintf(&b, "\n👥 Cupo máximo: %d estudiantes\n", c.MaxStudents)
	}
	return entity.OutboundMessage{Text: b.String(), Keyboard: r.CourseKeyboard(c.ID)}
}

func (r *Renderer) Bonuses(c *entity.Course, bonuses []entity.Bonus, now time.Time) entity.OutboundMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "🎁 *Bonos de %s*\n\n", c.Name)
	shown := 0
	for _, bonus := range bonuses {
		if bonus.Expired(now) {
			continue
		}
		fmt.Fprintf(&b, "• *%s* (valor $%.2f)\n  %s\n  Quedan %d cupos\n\n",
			bonus.Name, bonus.OriginalValue, orNA(bonus.Description), bonus.RemainingClaims())
		shown++
	}
	if shown == 0 {
		b.WriteString("Por ahora este curso no tiene bonos activos.\n")
	}
	return entity.OutboundMessage{Text: b.String(), Keyboard: r.CourseKeyboard(c.ID)}
}

// Purchase: variante de compra de la exploración del curso.
func (r *Renderer) Purchase(c *entity.Course, now time.Time) entity.OutboundMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 *Compra %s*\n\n", c.Name)
	if c.HasActiveDiscount(now) {
		fmt.Fprintf(&b, "Aprovecha el %d%% de descuento: *$%.2f* (antes $%.2f)\n",
			c.DiscountPct, c.Price, c.OriginalPrice)
	} else if c.Price > 0 {
		fmt.Fprintf(&b, "Inversión: *$%.2f*\n", c.Price)
	} else {
		b.WriteString("Precio: " + placeholderNA + "\n")
	}

	keyboard := entity.Keyboard{}
	if c.PurchaseLink != "" {
		keyboard = append(keyboard, entity.ButtonRow{entity.URLButton("🛒 Ir a comprar", c.PurchaseLink)})
	} else {
		b.WriteString("\nEl enlace de compra está " + placeholderNA + ". Un asesor puede ayudarte a inscribirte.\n")
		keyboard = append(keyboard, entity.ButtonRow{entity.CallbackButton("👨‍💼 Asesor", "contactar_asesor")})
	}
	keyboard = append(keyboard, entity.ButtonRow{entity.CallbackButton("⬅️ Volver", "course_"+c.ID)})

	return entity.OutboundMessage{Text: b.String(), Keyboard: keyboard}
}

// PaymentPlans: respuesta fija del CTA "Plan Pagos".
func (r *Renderer) PaymentPlans() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "📊 *Planes de pago*\n\n" +
			"• Pago único con descuento\n" +
			"• 3 cuotas mensuales sin interés\n" +
			"• 6 cuotas con tarjeta de crédito\n\n" +
			"Un asesor puede armarte el plan que mejor te acomode.",
		Keyboard: entity.Keyboard{{entity.CallbackButton("👨‍💼 Asesor", "contactar_asesor")}},
	}
}

func (r *Renderer) PromotionDetail(p *entity.Promotion, courses []entity.Course) entity.OutboundMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "🎁 *%s*\n\n%s\n", p.Name, orNA(p.Description))
	if !p.ExpiryDate.IsZero() {
		fmt.Fprintf(&b, "\n⏳ Válida hasta el %s\n", p.ExpiryDate.Format("02/01/2006"))
	}

	keyboard := entity.Keyboard{}
	for _, c := range courses {
		if p.AppliesTo(c.ID) {
			keyboard = append(keyboard, entity.ButtonRow{entity.CallbackButton(c.Name, "course_"+c.ID)})
		}
	}
	keyboard = append(keyboard, entity.ButtonRow{entity.CallbackButton("⬅️ Volver", "promociones")})

	return entity.OutboundMessage{Text: b.String(), Keyboard: keyboard}
}

func (r *Renderer) Promotions(promos []entity.Promotion, now time.Time) entity.OutboundMessage {
	var b strings.Builder
	b.WriteString("🎁 *Promociones vigentes*\n\n")
	keyboard := entity.Keyboard{}
	shown := 0
	for _, p := range promos {
		if !p.Active(now) {
			continue
		}
		fmt.Fprintf(&b, "• *%s* — %s", p.Name, orNA(p.Description))
		if !p.ExpiryDate.IsZero() {
			fmt.Fprintf(&b, " (hasta %s)", p.ExpiryDate.Format("02/01/2006"))
		}
		b.WriteString("\n")
		keyboard = append(keyboard, entity.ButtonRow{entity.CallbackButton(p.Name, "promo_"+p.ID)})
		shown++
	}
	if shown == 0 {
		b.Reset()
		b.WriteString("😕 No hay promociones activas en este momento.\n")
	}
	keyboard = append(keyboard, entity.ButtonRow{entity.CallbackButton("⬅️ Volver", "menu_principal")})
	return entity.OutboundMessage{Text: b.String(), Keyboard: keyboard}
}

// PromoLocked: el lead todavía no desbloquea promociones (score < umbral).
func (r *Renderer) PromoLocked() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text:     "🔐 Las promociones se desbloquean cuando eliges un curso. ¡Mira el catálogo primero!",
		Keyboard: entity.Keyboard{{entity.CallbackButton("📚 Ver Cursos", "ver_cursos")}},
	}
}

func (r *Renderer) Guarantee() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "🛡️ *Garantía de satisfacción*\n\n" +
			"Tienes *7 días* desde el inicio del curso para pedir el reembolso completo, " +
			"sin preguntas. Solo escríbenos y procesamos la devolución.",
	}
}

func (r *Renderer) FreeResource(url string) entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "🎁 ¡Aquí tienes tu recurso gratuito!\n\n" + orNA(url),
	}
}

func (r *Renderer) DemoLink(c *entity.Course) entity.OutboundMessage {
	if c == nil || c.DemoRequestLink == "" {
		return entity.OutboundMessage{
			Text: "🗓️ Para agendar una demo cuéntame primero qué curso te interesa.",
		}
	}
	return entity.OutboundMessage{
		Text: fmt.Sprintf("🗓️ Agenda tu clase demo de *%s* aquí:\n%s", c.Name, c.DemoRequestLink),
	}
}

// --- FAQ ---

func (r *Renderer) FAQList() entity.OutboundMessage {
	if r.FAQ == nil || len(r.FAQ.PreguntasFrecuentes) == 0 {
		return entity.OutboundMessage{Text: "❓ FAQ " + placeholderNA + "."}
	}
	keyboard := make(entity.Keyboard, 0, len(r.FAQ.PreguntasFrecuentes)+1)
	for i, q := range r.FAQ.PreguntasFrecuentes {
		keyboard = append(keyboard, entity.ButtonRow{
			entity.CallbackButton(q.Pregunta, fmt.Sprintf("faq_q_%d", i)),
		})
	}
	keyboard = append(keyboard, entity.ButtonRow{entity.CallbackButton("⬅️ Volver", "menu_principal")})
	return entity.OutboundMessage{
		Text:     "❓ *Preguntas frecuentes*\n\nToca una pregunta para ver la respuesta:",
		Keyboard: keyboard,
	}
}

func (r *Renderer) FAQAnswer(i int) entity.OutboundMessage {
	entry, ok := r.FAQ.Entry(i)
	if !ok {
		return entity.OutboundMessage{Text: "🤔 Esa pregunta ya no está disponible."}
	}
	return entity.OutboundMessage{
		Text:     fmt.Sprintf("❓ *%s*\n\n%s", entry.Pregunta, entry.Respuesta),
		Keyboard: entity.Keyboard{{entity.CallbackButton("⬅️ Más preguntas", "faq")}},
	}
}

// --- Captura de datos / escalamiento ---

func (r *Renderer) AskEmail() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "📧 Para que un asesor te contacte, compárteme tu *correo electrónico*:",
	}
}

func (r *Renderer) InvalidEmail() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "🤔 Ese correo no parece válido. Inténtalo de nuevo (ej: nombre@dominio.com).",
	}
}

func (r *Renderer) AskPhone() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "📱 ¡Perfecto! Ahora compárteme tu *teléfono* (con lada/código de país):",
	}
}

func (r *Renderer) InvalidPhone() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "🤔 Ese teléfono no parece válido. Debe tener al menos 8 caracteres y contener dígitos.",
	}
}

func (r *Renderer) ConfirmSummary(lead *entity.Lead, courseName string) entity.OutboundMessage {
	var b strings.Builder
	b.WriteString("📋 *Confirma tus datos*\n\n")
	fmt.Fprintf(&b, "👤 Nombre: %s\n", orNA(lead.Name))
	fmt.Fprintf(&b, "📧 Correo: %s\n", orNA(lead.Email))
	fmt.Fprintf(&b, "📱 Teléfono: %s\n", orNA(lead.Phone))
	if courseName != "" {
		fmt.Fprintf(&b, "🎓 Curso de interés: %s\n", courseName)
	}
	b.WriteString("\n¿Está todo correcto?")
	return entity.OutboundMessage{
		Text: b.String(),
		Keyboard: entity.Keyboard{
			{
				entity.CallbackButton("✅ Confirmar", "confirmar_datos"),
				entity.CallbackButton("✏️ Editar", "editar_datos"),
			},
		},
	}
}

func (r *Renderer) EscalationAck(name string) entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: fmt.Sprintf("✅ ¡Listo, %s! Un asesor te contactará muy pronto.\n\n"+
			"Mientras tanto puedes seguir explorando los cursos.", orNA(name)),
		Keyboard: r.MainMenuKeyboard(),
	}
}

// EscalationSoftError: el canal del asesor falló pero el usuario ve éxito.
func (r *Renderer) EscalationSoftError() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "✅ ¡Recibimos tus datos! Te contactaremos en breve.",
	}
}

// --- CTA contextual ---

// ContextualCTA arma el teclado según el contexto del lead. Para los
// contextos con botones de curso se necesita el curso seleccionado.
func (r *Renderer) ContextualCTA(context string, c *entity.Course) entity.Keyboard {
	courseID := ""
	if c != nil {
		courseID = c.ID
	}

	switch context {
	case ContextCourseSelected:
		return entity.Keyboard{{
			entity.CallbackButton("🛒 Comprar", "buy_course_"+courseID),
			entity.CallbackButton("🎬 Vista Previa", "show_preview_"+courseID),
			entity.CallbackButton("👨‍💼 Asesor", "contactar_asesor"),
		}}
	case ContextPricingInquiry:
		return entity.Keyboard{{
			entity.CallbackButton("💸 Ver Descuento", "show_pricing_"+courseID),
			entity.CallbackButton("👨‍💼 Asesor", "contactar_asesor"),
			entity.CallbackButton("📊 Plan Pagos", "plan_pagos"),
		}}
	case ContextHighInterest:
		return entity.Keyboard{{
			entity.CallbackButton("🛒 Comprar", "buy_course_"+courseID),
			entity.CallbackButton("🎁 Bonos", "bonos_"+courseID),
			entity.CallbackButton("👨‍💼 Asesor", "contactar_asesor"),
		}}
	case ContextPurchaseIntent:
		row := entity.ButtonRow{}
		if c != nil && c.PurchaseLink != "" {
			row = append(row, entity.URLButton("🛒 Comprar ahora", c.PurchaseLink))
		} else {
			row = append(row, entity.CallbackButton("🛒 Comprar ahora", "buy_course_"+courseID))
		}
		if c != nil && c.DemoRequestLink != "" {
			row = append(row, entity.URLButton("👨‍💼 Asesor", c.DemoRequestLink))
		} else {
			row = append(row, entity.CallbackButton("👨‍💼 Asesor", "contactar_asesor"))
		}
		return entity.Keyboard{row}
	case ContextPromo:
		return entity.Keyboard{{
			entity.CallbackButton("📚 Ver Cursos", "ver_cursos"),
			entity.CallbackButton("👨‍💼 Asesor", "contactar_asesor"),
		}}
	}

	// default
	return entity.Keyboard{{
		entity.CallbackButton("📚 Cursos", "ver_cursos"),
		entity.CallbackButton("🎁 Promociones", "promociones"),
		entity.CallbackButton("❓ FAQ", "faq"),
	}}
}

// --- Errores visibles al usuario ---

func (r *Renderer) Apology() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "😔 Tuvimos un problema al procesar tu mensaje. Intenta de nuevo en un momento.",
	}
}

func (r *Renderer) CatalogUnavailable() entity.OutboundMessage {
	return entity.OutboundMessage{
		Text: "⏳ El catálogo no está disponible temporalmente. Intenta en unos minutos.",
	}
}

func (r *Renderer) Processing() entity.OutboundMessage {
	return entity.OutboundMessage{Text: "⏳ Procesando..."}
}
