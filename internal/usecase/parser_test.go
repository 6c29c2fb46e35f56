package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/ligue-cursos/internal/entity"
)

func TestExtractHashtagsPreservesOrderAndCase(t *testing.T) {
	tags := ExtractHashtags("#A #b_c texto suelto #D1")
	assert.Equal(t, []string{"A", "b_c", "D1"}, tags)
}

func TestExtractHashtagsSinTags(t *testing.T) {
	assert.Empty(t, ExtractHashtags("hola, quiero información"))
}

func TestResolveCampaign(t *testing.T) {
	// Plataforma de dos letras + campaña
	assert.Equal(t, "instagram_marketing_01", ResolveCampaign([]string{"ADSIM_01"}))
	assert.Equal(t, "facebook_ads_verano24", ResolveCampaign([]string{"CURSO_IA", "ADSFB_VERANO24"}))
	assert.Equal(t, "google_ads_black", ResolveCampaign([]string{"adsgo_black"}))

	// Plataforma desconocida
	assert.Equal(t, "other_promo", ResolveCampaign([]string{"ADSXX_PROMO"}))

	// Tag ADS incompleto
	assert.Equal(t, "other", ResolveCampaign([]string{"ADS"}))

	// Sin tag de campaña
	assert.Equal(t, "organic", ResolveCampaign([]string{"CURSO_IA"}))
	assert.Equal(t, "organic", ResolveCampaign(nil))
}

func TestResolveCourseMatcheaPorKeywords(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	catalog.On("ListCourses", ctx).Return([]entity.Course{
		{ID: "mkt-digital", Name: "Marketing Digital desde Cero"},
		{ID: "ia-chatgpt", Name: "Curso de IA con ChatGPT"},
	}, nil)

	id, err := ResolveCourse(ctx, catalog, []string{"CURSO_IA_CHATGPT", "ADSIM_01"})
	assert.NoError(t, err)
	assert.Equal(t, "ia-chatgpt", id)
}

func TestResolveCourseSinMatch(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	catalog.On("ListCourses", ctx).Return([]entity.Course{
		{ID: "mkt-digital", Name: "Marketing Digital desde Cero"},
	}, nil)

	id, err := ResolveCourse(ctx, catalog, []string{"CURSO_BLOCKCHAIN"})
	assert.NoError(t, err)
	assert.Empty(t, id)
}

func TestResolveCourseIgnoraTagsSinCurso(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)

	id, err := ResolveCourse(ctx, catalog, []string{"ADSIM_01", "PROMO2024"})
	assert.NoError(t, err)
	assert.Empty(t, id)
	catalog.AssertNotCalled(t, "ListCourses")
}

func TestClassifyIntentPrioridad(t *testing.T) {
	// contact_request gana aunque haya keywords de precio en el mismo texto
	assert.Equal(t, IntentContactRequest, ClassifyIntent("quiero hablar con un asesor, está caro"))

	assert.Equal(t, IntentPriceObjection, ClassifyIntent("está muy caro"))
	assert.Equal(t, IntentContentInquiry, ClassifyIntent("¿qué incluye el temario?"))
	assert.Equal(t, IntentResourceRequest, ClassifyIntent("tienen algún ebook?"))
	assert.Equal(t, IntentDemoRequest, ClassifyIntent("puedo tomar una clase de prueba"))
	assert.Equal(t, IntentGuaranteeInquiry, ClassifyIntent("tienen garantía de reembolso?"))
	assert.Equal(t, IntentTestimonialRequest, ClassifyIntent("hay opiniones de otros alumnos?"))
	assert.Equal(t, IntentSpecialOffer, ClassifyIntent("tienen algún bono o regalo?"))
	assert.Equal(t, IntentBudgetConcern, ClassifyIntent("se puede pagar en cuotas?"))
	assert.Equal(t, IntentGeneric, ClassifyIntent("hola, buenos días"))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("ana@ejemplo.com"))
	assert.True(t, ValidateEmail("  ana.perez+cursos@sub.dominio.co  "))
	assert.False(t, ValidateEmail("ana@ejemplo"))
	assert.False(t, ValidateEmail("ana ejemplo.com"))
	assert.False(t, ValidateEmail("@dominio.com"))
	assert.False(t, ValidateEmail(""))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+34 600 111 222"))
	assert.True(t, ValidatePhone("5215512345678"))
	assert.False(t, ValidatePhone("12345"))        // muy corto
	assert.False(t, ValidatePhone("sin numeros!")) // sin dígitos
}

func TestValidateName(t *testing.T) {
	assert.True(t, ValidateName("María José"))
	assert.True(t, ValidateName("Ana"))
	assert.False(t, ValidateName("X"))       // un solo carácter
	assert.False(t, ValidateName("Bob123"))  // dígitos
	assert.False(t, ValidateName("ana@bot")) // símbolos
	assert.False(t, ValidateName("   "))
}

func TestTitleCaseName(t *testing.T) {
	assert.Equal(t, "María José", TitleCaseName("maría josé"))
	assert.Equal(t, "Ana Perez", TitleCaseName("  ANA   PEREZ "))
}

func TestDetectNegativeFeedback(t *testing.T) {
	assert.True(t, DetectNegativeFeedback("está muy caro"))
	assert.True(t, DetectNegativeFeedback("no me interesa, dejen de escribir"))
	assert.False(t, DetectNegativeFeedback("me encanta el curso"))
}

func TestIsCampaignEntry(t *testing.T) {
	assert.True(t, IsCampaignEntry([]string{"CURSO_IA_CHATGPT"}))
	assert.True(t, IsCampaignEntry([]string{"ADSIM_01"}))
	assert.False(t, IsCampaignEntry([]string{"PROMO2024"}))
	assert.False(t, IsCampaignEntry(nil))
}
