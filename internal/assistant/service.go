package assistant

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// persona is the fixed system instruction for every completion call.
const persona = `You are Babli Bua, the couple's warm and slightly chatty aunt who is
helping organize their wedding. You answer guests' questions about the wedding schedule,
venues, hotels, and travel using only the context document provided with each message.
You are affectionate, concise, and practical. You never invent details.`

// fallbackReply is returned when the API answers with no choices.
const fallbackReply = "Hmm, I lost my train of thought there. Could you ask me that again?"

const completionTimeout = 30 * time.Second

// completionAPI is the slice of the OpenAI client the service uses,
// extracted so tests can stub the remote call.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Config struct {
	APIKey string
	Model  string
}

type Service struct {
	client  completionAPI
	model   string
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewService creates a completion service. Calls are rate-limited to stay
// inside the API quota and bounded by a per-call timeout so a stuck upstream
// fails the request instead of hanging it.
func NewService(cfg *Config) *Service {
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Service{
		client:  openai.NewClient(cfg.APIKey),
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(2), 4),
		log:     zerolog.New(os.Stdout).With().Timestamp().Str("component", "assistant").Logger(),
	}
}

// Reply sends the rendered prompt to the completion API and returns the
// first choice's text, or a fixed fallback string when no choice comes back.
func (s *Service) Reply(ctx context.Context, prompt string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to acquire rate limit slot: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: persona},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", fmt.Errorf("completion API error: %w", err)
	}

	s.log.Debug().Dur("took", time.Since(start)).Int("choices", len(resp.Choices)).Msg("Completion received")

	if len(resp.Choices) == 0 {
		return fallbackReply, nil
	}
	return resp.Choices[0].Message.Content, nil
}
