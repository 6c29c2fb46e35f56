package usecase

import (
	"strings"

	"github.com/xavierca1/ligue-cursos/internal/entity"
)

// Umbrales del score de interés.
const (
	UmbralPromoDefault      = 25
	HighInterestThreshold   = 60
	PurchaseIntentThreshold = 80

	initialScoreBase = 50
)

// Contextos del CTA contextual.
const (
	ContextDefault        = "default"
	ContextCourseSelected = "course_selected"
	ContextPricingInquiry = "pricing_inquiry"
	ContextHighInterest   = "high_interest"
	ContextPurchaseIntent = "purchase_intent"
	ContextPromo          = "promo"
)

// InitialScore calcula el score del primer inbound: base 50 más features
// aditivas, siempre acotado a [0,100].
func InitialScore(text string, hashtags []string) int {
	score := initialScoreBase
	lower := strings.ToLower(text)

	if len(text) > 100 {
		score += 10
	}
	if strings.Contains(text, "?") || strings.Contains(text, "¿") {
		score += 5
	}
	if containsAny(lower, pricingTerms) {
		score += 10
	}
	if containsAny(lower, logisticsTerms) {
		score += 5
	}
	if containsAny(lower, contentTerms) {
		score += 5
	}
	if containsAny(lower, urgencyTerms) {
		score += 15
	}
	if len(hashtags) >= 2 {
		score += 10
	}

	return clampScore(score)
}

// InteractionDelta: ajuste por cada evento de interacción registrado.
func InteractionDelta(t entity.InteractionType) int {
	switch t {
	case entity.InteractionPreviewWatch:
		return 5
	case entity.InteractionSyllabusView:
		return 5
	case entity.InteractionPricingView:
		return 8
	case entity.InteractionOfferShown:
		return 3
	case entity.InteractionView:
		return 1
	}
	return 0
}

// IntentDelta: el pedido de contacto pesa fuerte; el feedback negativo resta.
func IntentDelta(intent Intent, negative bool) int {
	delta := 0
	if intent == IntentContactRequest {
		delta += 20
	}
	if negative {
		delta -= 10
	}
	return delta
}

// AdjustScore aplica un delta al lead con clamp a [0,100].
func AdjustScore(lead *entity.Lead, delta int) {
	lead.InterestScore = clampScore(lead.InterestScore + delta)
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ScoreContext deriva el contexto del CTA a partir del lead. El contexto
// pricing_inquiry lo fuerza el controller cuando detecta objeción de precio.
func ScoreContext(lead *entity.Lead, umbralPromo int) string {
	switch {
	case lead.InterestScore >= PurchaseIntentThreshold && lead.SelectedCourseID != "":
		return ContextPurchaseIntent
	case lead.InterestScore >= HighInterestThreshold:
		return ContextHighInterest
	case lead.SelectedCourseID != "":
		return ContextCourseSelected
	case lead.InterestScore >= umbralPromo:
		return ContextPromo
	}
	return ContextDefault
}
