package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFAQ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.json")
	raw := `{"preguntas_frecuentes":[{"pregunta":"¿Entregan certificado?","respuesta":"Sí."}]}`
	assert.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	doc, err := LoadFAQ(path)
	assert.NoError(t, err)
	assert.Len(t, doc.PreguntasFrecuentes, 1)

	entry, ok := doc.Entry(0)
	assert.True(t, ok)
	assert.Equal(t, "¿Entregan certificado?", entry.Pregunta)
}

func TestLoadFAQArchivoInexistente(t *testing.T) {
	_, err := LoadFAQ(filepath.Join(t.TempDir(), "no-existe.json"))
	assert.Error(t, err)
}

func TestLoadFAQJSONCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.json")
	assert.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o644))

	_, err := LoadFAQ(path)
	assert.Error(t, err)
}

func TestFAQEntryFueraDeRango(t *testing.T) {
	doc := &FAQDocument{PreguntasFrecuentes: []FAQEntry{{Pregunta: "p", Respuesta: "r"}}}

	_, ok := doc.Entry(-1)
	assert.False(t, ok)
	_, ok = doc.Entry(1)
	assert.False(t, ok)

	var nilDoc *FAQDocument
	_, ok = nilDoc.Entry(0)
	assert.False(t, ok)
}
