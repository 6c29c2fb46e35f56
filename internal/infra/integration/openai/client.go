package openai

import (
	"context"
	"fmt"
	"time"

	goopenai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `Eres un asesor de ventas de una academia de cursos en línea.
Responde en español, en tono cercano y breve (máximo 3 párrafos).
Solo hablas de los cursos de la academia; si te preguntan otra cosa,
redirige amablemente hacia los cursos o hacia el asesor humano.
Nunca inventes precios ni fechas.`

// Client envuelve la Chat Completions API. Implementa usecase.LLMClient.
// El timeout por request lo maneja acá: un timeout devuelve error y el
// dispatcher cae a la respuesta determinística.
type Client struct {
	api     *goopenai.Client
	model   string
	timeout time.Duration
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = goopenai.GPT4oMini
	}
	return &Client{
		api:     goopenai.NewClient(apiKey),
		model:   model,
		timeout: 20 * time.Second,
	}
}

func (c *Client) Reply(ctx context.Context, userText, leadContext string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   400,
		Temperature: 0.7,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleSystem, Content: "Contexto del lead: " + leadContext},
			{Role: goopenai.ChatMessageRoleUser, Content: userText},
		},
	})
	if err != nil {
		return "", fmt.Errorf("error del LLM: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("el LLM no devolvió opciones")
	}
	return resp.Choices[0].Message.Content, nil
}
