package usecase

import (
	"encoding/json"
	"fmt"
	"os"
)

type FAQEntry struct {
	Pregunta  string `json:"pregunta"`
	Respuesta string `json:"respuesta"`
}

type FAQDocument struct {
	PreguntasFrecuentes []FAQEntry `json:"preguntas_frecuentes"`
}

// LoadFAQ lee el documento estático de preguntas frecuentes (data/faq.json).
func LoadFAQ(path string) (*FAQDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error al leer FAQ: %w", err)
	}

	var doc FAQDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error al parsear FAQ: %w", err)
	}

	return &doc, nil
}

// Entry devuelve la entrada i o false si el índice no existe (faq_q_<i>).
func (d *FAQDocument) Entry(i int) (FAQEntry, bool) {
	if d == nil || i < 0 || i >= len(d.PreguntasFrecuentes) {
		return FAQEntry{}, false
	}
	return d.PreguntasFrecuentes[i], true
}
