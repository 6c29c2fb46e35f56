package usecase

// Diccionarios de palabras clave. Son configuración: el parser y el scorer
// solo los consultan, nunca los mutan.

type Intent string

const (
	IntentContactRequest     Intent = "contact_request"
	IntentPriceObjection     Intent = "price_objection"
	IntentContentInquiry     Intent = "content_inquiry"
	IntentResourceRequest    Intent = "resource_request"
	IntentDemoRequest        Intent = "demo_request"
	IntentGuaranteeInquiry   Intent = "guarantee_inquiry"
	IntentTestimonialRequest Intent = "testimonial_request"
	IntentSpecialOffer       Intent = "special_offer"
	IntentBudgetConcern      Intent = "budget_concern"
	IntentNegativeFeedback   Intent = "negative_feedback"
	IntentGeneric            Intent = "generic"
)

// intentPriority define el orden de desempate de la clasificación.
var intentPriority = []Intent{
	IntentContactRequest,
	IntentPriceObjection,
	IntentContentInquiry,
	IntentResourceRequest,
	IntentDemoRequest,
	IntentGuaranteeInquiry,
	IntentTestimonialRequest,
	IntentSpecialOffer,
	IntentBudgetConcern,
	IntentNegativeFeedback,
	IntentGeneric,
}

var intentKeywords = map[Intent][]string{
	IntentContactRequest: {
		"asesor", "hablar con alguien", "hablar con una persona", "contactar",
		"contacto", "llamar", "llamada", "advisor", "humano",
	},
	IntentPriceObjection: {
		"caro", "muy caro", "carísimo", "no me alcanza", "expensive",
		"descuento", "rebaja", "más barato", "costoso",
	},
	IntentContentInquiry: {
		"temario", "contenido", "módulos", "modulos", "qué voy a aprender",
		"que incluye", "qué incluye", "syllabus", "programa",
	},
	IntentResourceRequest: {
		"recurso gratis", "material gratis", "guía gratis", "guia gratis",
		"ebook", "pdf gratis", "descargar",
	},
	IntentDemoRequest: {
		"demo", "clase de prueba", "clase gratis", "probar", "vista previa",
	},
	IntentGuaranteeInquiry: {
		"garantía", "garantia", "devolución", "devolucion", "reembolso",
		"me devuelven",
	},
	IntentTestimonialRequest: {
		"testimonios", "opiniones", "reseñas", "resenas", "experiencias",
		"otros alumnos",
	},
	IntentSpecialOffer: {
		"oferta", "promoción", "promocion", "bono", "bonos", "regalo",
		"beneficio extra",
	},
	IntentBudgetConcern: {
		"presupuesto", "cuotas", "pagar en partes", "financiamiento",
		"plan de pagos", "mensualidades",
	},
	IntentNegativeFeedback: {
		"no me interesa", "no me gusta", "malo", "pésimo", "pesimo",
		"estafa", "spam", "dejen de escribir", "no molesten",
	},
}

// negativeLexicon alimenta detect_negative_feedback; cualquier término dispara.
var negativeLexicon = []string{
	"no me interesa", "no me gusta", "malo", "pésimo", "pesimo", "horrible",
	"estafa", "spam", "caro", "engaño", "engano", "no molesten", "basura",
}

// Términos de features del score inicial. Se buscan en minúsculas sobre
// el texto normalizado.
var (
	pricingTerms   = []string{"price", "cost", "investment", "pay", "precio", "costo", "cuesta", "inversión", "inversion", "pagar", "vale"}
	logisticsTerms = []string{"schedule", "date", "when", "time", "horario", "fecha", "cuándo", "cuando", "hora"}
	contentTerms   = []string{"content", "topics", "learn", "includes", "contenido", "temas", "aprender", "incluye", "temario"}
	urgencyTerms   = []string{"urgent", "soon", "immediate", "now", "urgente", "pronto", "inmediato", "ahora", "ya mismo"}
)

// adPlatforms: código de dos letras del hashtag ADS → plataforma.
var adPlatforms = map[string]string{
	"IM": "instagram_marketing",
	"FB": "facebook_ads",
	"GO": "google_ads",
	"TW": "twitter_ads",
}
