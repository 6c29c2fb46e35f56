package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-cursos/internal/entity"
)

func newTestDispatcher() (*Dispatcher, *MockCatalog, *MockLLM) {
	catalog := new(MockCatalog)
	llm := new(MockLLM)
	return NewDispatcher(catalog, llm, NewRenderer(nil)), catalog, llm
}

func TestDispatchContentInquiryMuestraTemario(t *testing.T) {
	d, _, llm := newTestDispatcher()
	lead := entity.NewLead("u1")

	result := d.Dispatch(context.Background(), lead, testCourse(), IntentContentInquiry, "qué incluye el temario")

	assert.True(t, result.HasInteraction)
	assert.Equal(t, entity.InteractionSyllabusView, result.Interaction)
	assert.Contains(t, result.Messages[0].Text, "Temario de Curso de IA con ChatGPT")
	llm.AssertNotCalled(t, "Reply")
}

func TestDispatchContentInquirySinCursoPideElegir(t *testing.T) {
	d, _, _ := newTestDispatcher()

	result := d.Dispatch(context.Background(), entity.NewLead("u1"), nil, IntentContentInquiry, "temario?")

	assert.False(t, result.HasInteraction)
	assert.Contains(t, result.Messages[0].Text, "qué curso te interesa")
	assert.Equal(t, "ver_cursos", result.Messages[0].Keyboard[0][0].Callback)
}

func TestDispatchPriceObjectionFuerzaContextoDePrecio(t *testing.T) {
	d, _, _ := newTestDispatcher()

	result := d.Dispatch(context.Background(), entity.NewLead("u1"), testCourse(), IntentPriceObjection, "está muy caro")

	assert.Equal(t, ContextPricingInquiry, result.Context)
	assert.Equal(t, entity.InteractionPricingView, result.Interaction)
	assert.Contains(t, result.Messages[0].Text, "Inversión")
}

func TestDispatchContactRequestArrancaEscalamiento(t *testing.T) {
	d, _, _ := newTestDispatcher()

	result := d.Dispatch(context.Background(), entity.NewLead("u1"), nil, IntentContactRequest, "quiero hablar con un asesor")

	assert.True(t, result.StartEscalation)
	assert.Empty(t, result.Messages)
}

func TestDispatchResourceRequestDegradaSinRecurso(t *testing.T) {
	d, catalog, _ := newTestDispatcher()
	catalog.On("GetResource", mock.Anything, "free_resource").Return("", errors.New("sin fila"))

	result := d.Dispatch(context.Background(), entity.NewLead("u1"), nil, IntentResourceRequest, "tienen un ebook?")

	assert.Contains(t, result.Messages[0].Text, "no disponible")
}

func TestDispatchResourceRequestEntregaURL(t *testing.T) {
	d, catalog, _ := newTestDispatcher()
	catalog.On("GetResource", mock.Anything, "free_resource").Return("https://recursos.ejemplo.com/guia.pdf", nil)

	result := d.Dispatch(context.Background(), entity.NewLead("u1"), nil, IntentResourceRequest, "pdf gratis?")

	assert.Contains(t, result.Messages[0].Text, "https://recursos.ejemplo.com/guia.pdf")
}

func TestDispatchSpecialOfferListaBonos(t *testing.T) {
	d, catalog, _ := newTestDispatcher()
	catalog.On("ListBonuses", mock.Anything, "ia-chatgpt").Return([]entity.Bonus{}, nil)

	result := d.Dispatch(context.Background(), entity.NewLead("u1"), testCourse(), IntentSpecialOffer, "hay bonos?")

	assert.True(t, result.HasInteraction)
	assert.Equal(t, entity.InteractionOfferShown, result.Interaction)
}

func TestDispatchGenericUsaLLM(t *testing.T) {
	d, _, llm := newTestDispatcher()
	lead := entity.NewLead("u1")
	lead.Name = "Ana"
	llm.On("Reply", mock.Anything, "hola, buen día", mock.Anything).Return("¡Hola Ana! ¿En qué te ayudo?", nil)

	result := d.Dispatch(context.Background(), lead, nil, IntentGeneric, "hola, buen día")

	assert.Equal(t, "¡Hola Ana! ¿En qué te ayudo?", result.Messages[0].Text)
	llm.AssertCalled(t, "Reply", mock.Anything, "hola, buen día", mock.Anything)
}

func TestDispatchGenericLLMCaidoUsaRespaldo(t *testing.T) {
	d, _, llm := newTestDispatcher()
	llm.On("Reply", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("timeout"))

	result := d.Dispatch(context.Background(), entity.NewLead("u1"), nil, IntentGeneric, "hola")

	// Falla del modelo: respuesta determinística, nunca un error crudo
	assert.Contains(t, result.Messages[0].Text, "catálogo")
}
