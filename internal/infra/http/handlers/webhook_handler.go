package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/xavierca1/ligue-cursos/internal/entity"
	"github.com/xavierca1/ligue-cursos/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-cursos/internal/infra/integration/telegram"
	"github.com/xavierca1/ligue-cursos/internal/usecase"
)

// CallbackAnswerer cierra el spinner del botón (best effort).
type CallbackAnswerer interface {
	AnswerCallback(ctx context.Context, callbackID string) error
}

// WebhookHandler recibe los updates de Telegram, los convierte a eventos
// etiquetados y los encola en la bomba por usuario. Responde 200 rápido:
// el procesamiento es asíncrono.
type WebhookHandler struct {
	Pump     *usecase.Pump
	Answerer CallbackAnswerer
}

func NewWebhookHandler(pump *usecase.Pump, answerer CallbackAnswerer) *WebhookHandler {
	return &WebhookHandler{Pump: pump, Answerer: answerer}
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var update telegram.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Bad JSON", http.StatusBadRequest)
		return
	}

	ev, ok := ToEvent(update)
	if !ok {
		// Update sin contenido procesable (ediciones, miembros nuevos...)
		w.WriteHeader(http.StatusOK)
		return
	}

	if update.CallbackQuery != nil && h.Answerer != nil {
		if err := h.Answerer.AnswerCallback(r.Context(), update.CallbackQuery.ID); err != nil {
			log.Printf("⚠️ Webhook: answerCallback falló: %v", err)
		}
	}

	middleware.EventsProcessed.WithLabelValues(string(ev.Kind)).Inc()
	h.Pump.Dispatch(context.Background(), ev)

	w.WriteHeader(http.StatusOK)
}

// ToEvent traduce un update de Telegram a la variante etiquetada Event.
func ToEvent(update telegram.Update) (entity.Event, bool) {
	if cb := update.CallbackQuery; cb != nil && cb.From != nil {
		chatID := int64(0)
		if cb.Message != nil {
			chatID = cb.Message.Chat.ID
		}
		return entity.NewCallbackEvent(chatID, strconv.FormatInt(cb.From.ID, 10), cb.Data), true
	}

	msg := update.Message
	if msg == nil || msg.From == nil {
		return entity.Event{}, false
	}
	userID := strconv.FormatInt(msg.From.ID, 10)

	if strings.HasPrefix(msg.Text, "/") {
		parts := strings.SplitN(strings.TrimPrefix(msg.Text, "/"), " ", 2)
		name := parts[0]
		args := ""
		if len(parts) == 2 {
			args = strings.TrimSpace(parts[1])
		}
		return entity.NewCommandEvent(msg.Chat.ID, userID, name, args), true
	}

	if msg.Text == "" {
		return entity.Event{}, false
	}
	return entity.NewTextEvent(msg.Chat.ID, userID, msg.Text), true
}
