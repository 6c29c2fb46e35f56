package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/xavierca1/ligue-cursos/internal/entity"
)

// Client habla con la Bot API de Telegram. Implementa usecase.ChatSender.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: "https://api.telegram.org",
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL se usa en tests para apuntar a un servidor local.
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

// SendMessage elige el método según el media del mensaje (texto, foto o
// video) y devuelve el message id para poder borrarlo después.
func (c *Client) SendMessage(ctx context.Context, chatID int64, msg entity.OutboundMessage) (int, error) {
	markup := toMarkup(msg.Keyboard)

	switch {
	case msg.PhotoURL != "":
		return c.call(ctx, "sendPhoto", sendPhotoPayload{
			ChatID: chatID, Photo: msg.PhotoURL, Caption: msg.Text,
			ParseMode: "Markdown", ReplyMarkup: markup,
		})
	case msg.VideoURL != "":
		return c.call(ctx, "sendVideo", sendVideoPayload{
			ChatID: chatID, Video: msg.VideoURL, Caption: msg.Text,
			ParseMode: "Markdown", ReplyMarkup: markup,
		})
	default:
		return c.call(ctx, "sendMessage", sendMessagePayload{
			ChatID: chatID, Text: msg.Text,
			ParseMode: "Markdown", ReplyMarkup: markup,
		})
	}
}

func (c *Client) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	_, err := c.call(ctx, "deleteMessage", deleteMessagePayload{ChatID: chatID, MessageID: messageID})
	return err
}

// AnswerCallback cierra el "relojito" del botón en el cliente de Telegram.
func (c *Client) AnswerCallback(ctx context.Context, callbackID string) error {
	_, err := c.call(ctx, "answerCallbackQuery", answerCallbackPayload{CallbackQueryID: callbackID})
	return err
}

func (c *Client) call(ctx context.Context, method string, payload any) (int, error) {
	if c.token == "" {
		log.Println("⚠️ Telegram: TELEGRAM_BOT_TOKEN no configurado")
		return 0, fmt.Errorf("telegram no configurado")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("❌ Telegram: error de red en %s: %v", method, err)
		return 0, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var result apiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		log.Printf("❌ Telegram: respuesta ilegible de %s: %s", method, string(respBody))
		return 0, err
	}

	if !result.OK {
		log.Printf("❌ Telegram: %s devolvió %d: %s", method, result.ErrorCode, result.Description)
		return 0, fmt.Errorf("telegram api error: %d %s", result.ErrorCode, result.Description)
	}

	return result.Result.MessageID, nil
}

func toMarkup(keyboard entity.Keyboard) *inlineKeyboardMarkup {
	if len(keyboard) == 0 {
		return nil
	}
	rows := make([][]inlineKeyboardButton, 0, len(keyboard))
	for _, row := range keyboard {
		buttons := make([]inlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, inlineKeyboardButton{
				Text:         b.Label,
				CallbackData: b.Callback,
				URL:          b.URL,
			})
		}
		rows = append(rows, buttons)
	}
	return &inlineKeyboardMarkup{InlineKeyboard: rows}
}
