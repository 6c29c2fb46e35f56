package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/ligue-cursos/internal/entity"
)

func TestInitialScoreBase(t *testing.T) {
	assert.Equal(t, 50, InitialScore("hola", nil))
}

func TestInitialScoreEntradaDeCampania(t *testing.T) {
	text := "#CURSO_IA_CHATGPT #ADSIM_01"
	tags := ExtractHashtags(text)
	// base 50 + 10 por traer dos hashtags
	assert.Equal(t, 60, InitialScore(text, tags))
}

func TestInitialScorePreguntaDePrecio(t *testing.T) {
	// base 50 + 5 por pregunta + 10 por término de precio
	assert.Equal(t, 65, InitialScore("¿cuánto cuesta?", nil))
}

func TestInitialScoreClampSuperior(t *testing.T) {
	// Texto largo con precio, horario, temario y urgencia: supera 100 y se acota.
	text := "¿cuál es el precio y el horario? quiero ver el temario, es urgente " +
		strings.Repeat("más información por favor ", 4) + "#CURSO_IA #ADSIM_01"
	tags := ExtractHashtags(text)
	assert.Greater(t, len(text), 100)
	assert.Equal(t, 100, InitialScore(text, tags))
}

func TestInteractionDelta(t *testing.T) {
	assert.Equal(t, 5, InteractionDelta(entity.InteractionPreviewWatch))
	assert.Equal(t, 5, InteractionDelta(entity.InteractionSyllabusView))
	assert.Equal(t, 8, InteractionDelta(entity.InteractionPricingView))
	assert.Equal(t, 3, InteractionDelta(entity.InteractionOfferShown))
	assert.Equal(t, 1, InteractionDelta(entity.InteractionView))
	assert.Equal(t, 0, InteractionDelta(entity.InteractionInquiry))
}

func TestIntentDelta(t *testing.T) {
	assert.Equal(t, 20, IntentDelta(IntentContactRequest, false))
	assert.Equal(t, -10, IntentDelta(IntentPriceObjection, true))
	assert.Equal(t, 10, IntentDelta(IntentContactRequest, true))
	assert.Equal(t, 0, IntentDelta(IntentGeneric, false))
}

func TestAdjustScoreClamps(t *testing.T) {
	lead := &entity.Lead{InterestScore: 95}
	AdjustScore(lead, 20)
	assert.Equal(t, 100, lead.InterestScore)

	lead.InterestScore = 5
	AdjustScore(lead, -10)
	assert.Equal(t, 0, lead.InterestScore)
}

func TestScoreContext(t *testing.T) {
	cases := []struct {
		name     string
		score    int
		courseID string
		want     string
	}{
		{"frío sin curso", 10, "", ContextDefault},
		{"sobre umbral sin curso", 30, "", ContextPromo},
		{"curso elegido", 30, "ia-chatgpt", ContextCourseSelected},
		{"alto interés", 65, "", ContextHighInterest},
		{"alto interés con curso", 65, "ia-chatgpt", ContextHighInterest},
		{"intención de compra", 85, "ia-chatgpt", ContextPurchaseIntent},
		{"score alto sin curso no es compra", 85, "", ContextHighInterest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lead := &entity.Lead{InterestScore: tc.score, SelectedCourseID: tc.courseID}
			assert.Equal(t, tc.want, ScoreContext(lead, UmbralPromoDefault))
		})
	}
}
