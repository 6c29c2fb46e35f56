package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/ligue-cursos/internal/entity"
	"github.com/xavierca1/ligue-cursos/internal/infra/integration/telegram"
)

func TestToEventTexto(t *testing.T) {
	update := telegram.Update{
		Message: &telegram.Message{
			From: &telegram.User{ID: 12345},
			Chat: telegram.Chat{ID: 100},
			Text: "hola",
		},
	}

	ev, ok := ToEvent(update)
	assert.True(t, ok)
	assert.Equal(t, entity.EventText, ev.Kind)
	assert.Equal(t, int64(100), ev.ChatID)
	assert.Equal(t, "12345", ev.UserID)
	assert.Equal(t, "hola", ev.Body)
}

func TestToEventComandoConDeepLink(t *testing.T) {
	update := telegram.Update{
		Message: &telegram.Message{
			From: &telegram.User{ID: 12345},
			Chat: telegram.Chat{ID: 100},
			Text: "/start ad_verano24",
		},
	}

	ev, ok := ToEvent(update)
	assert.True(t, ok)
	assert.Equal(t, entity.EventCommand, ev.Kind)
	assert.Equal(t, "start", ev.Name)
	assert.Equal(t, "ad_verano24", ev.Args)
}

func TestToEventComandoSinArgs(t *testing.T) {
	update := telegram.Update{
		Message: &telegram.Message{
			From: &telegram.User{ID: 12345},
			Chat: telegram.Chat{ID: 100},
			Text: "/start",
		},
	}

	ev, ok := ToEvent(update)
	assert.True(t, ok)
	assert.Equal(t, entity.EventCommand, ev.Kind)
	assert.Equal(t, "start", ev.Name)
	assert.Empty(t, ev.Args)
}

func TestToEventCallback(t *testing.T) {
	update := telegram.Update{
		CallbackQuery: &telegram.CallbackQuery{
			ID:      "cb-1",
			From:    &telegram.User{ID: 12345},
			Message: &telegram.Message{Chat: telegram.Chat{ID: 100}},
			Data:    "course_ia-chatgpt",
		},
	}

	ev, ok := ToEvent(update)
	assert.True(t, ok)
	assert.Equal(t, entity.EventCallback, ev.Kind)
	assert.Equal(t, int64(100), ev.ChatID)
	assert.Equal(t, "course_ia-chatgpt", ev.Token)
}

func TestToEventUpdateSinContenido(t *testing.T) {
	// Ediciones, stickers, miembros nuevos: no hay evento que procesar
	_, ok := ToEvent(telegram.Update{})
	assert.False(t, ok)

	_, ok = ToEvent(telegram.Update{Message: &telegram.Message{
		From: &telegram.User{ID: 1},
		Chat: telegram.Chat{ID: 100},
	}})
	assert.False(t, ok)
}
