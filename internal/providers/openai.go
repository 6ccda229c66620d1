package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

var langNames = map[string]string{
	"en": "English",
	"vi": "Vietnamese",
}

// OpenAITranslator runs one translation direction through an OpenAI-style
// chat completion endpoint. The endpoint may be a local inference server
// fronting the bilingual seq2seq model; only the wire format is OpenAI's.
type OpenAITranslator struct {
	client    *openai.Client
	model     string
	direction Direction
}

func NewOpenAITranslator(apiKey, baseURL, model string, direction Direction, timeout time.Duration) (*OpenAITranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrModelUnavailable)
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}

	return &OpenAITranslator{
		client:    openai.NewClientWithConfig(cfg),
		model:     model,
		direction: direction,
	}, nil
}

func (t *OpenAITranslator) Translate(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(
		"Translate the following text from %s to %s. Respond with only the translation, nothing else:\n%s",
		langNames[t.direction.SourceLang()],
		langNames[t.direction.TargetLang()],
		text,
	)

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a professional translator. Translate the given text accurately while preserving the original meaning and tone.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}

	return CleanOutput(resp.Choices[0].Message.Content), nil
}

// CleanOutput strips the whitespace and leading punctuation artifacts some
// models prepend to their decoded output.
func CleanOutput(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimLeft(text, ".,:;-– ")
	return strings.TrimSpace(text)
}
