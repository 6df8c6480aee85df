package assist

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"

	"github.com/spflow/spflow/log"
	"github.com/spflow/spflow/particle"
)

const (
	// DefaultModelName is the Ollama model used when none is configured.
	DefaultModelName = "llama3.2"

	// DefaultServerURL is the local Ollama endpoint.
	DefaultServerURL = "http://localhost:11434"

	defaultTemperature = 0.7
)

const systemPrompt = `You are a particle mass spectrometry data analyst. You have access to complete particle datasets with detailed composition and combination analysis. Answer questions directly and provide specific insights based on the comprehensive data provided.`

// Reply is the outcome of one assistant exchange.
type Reply struct {
	Question string
	Answer   string
	Err      error
}

// Session is one assistant conversation bound to a dataset snapshot. The
// snapshot is captured at session creation so answers stay consistent even
// while the workflow keeps recomputing upstream.
//
// Session methods are not safe for concurrent use; AskAsync serializes its
// work on a single worker goroutine per call.
type Session struct {
	id          string
	model       llms.Model
	snapshot    *particle.Dataset
	temperature float64
	history     []llms.MessageContent
}

// Option configures a Session.
type Option func(*Session)

// WithTemperature overrides the sampling temperature.
func WithTemperature(temperature float64) Option {
	return func(s *Session) { s.temperature = temperature }
}

// NewSession creates an assistant session over a dataset snapshot. A nil
// snapshot is valid; the assistant then reports that no data is available.
func NewSession(model llms.Model, snapshot *particle.Dataset, opts ...Option) *Session {
	s := &Session{
		id:          uuid.NewString(),
		model:       model,
		snapshot:    snapshot,
		temperature: defaultTemperature,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultModel connects to the local Ollama server with the default model.
func DefaultModel() (llms.Model, error) {
	return NamedModel(DefaultModelName)
}

// NamedModel connects to the local Ollama server with a specific model.
func NamedModel(name string) (llms.Model, error) {
	model, err := ollama.New(
		ollama.WithModel(name),
		ollama.WithServerURL(DefaultServerURL),
	)
	if err != nil {
		return nil, fmt.Errorf("connect ollama: %w", err)
	}
	return model, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Snapshot returns the dataset the session reasons over.
func (s *Session) Snapshot() *particle.Dataset { return s.snapshot }

// Ask sends one question and returns the model's answer. The exchange is
// appended to the session history so followup questions keep their context.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	messages := make([]llms.MessageContent, 0, len(s.history)+2)
	messages = append(messages,
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt+"\n"+DataContext(s.snapshot)))
	messages = append(messages, s.history...)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, question))

	resp, err := s.model.GenerateContent(ctx, messages, llms.WithTemperature(s.temperature))
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	answer := resp.Choices[0].Content

	s.history = append(s.history,
		llms.TextParts(llms.ChatMessageTypeHuman, question),
		llms.TextParts(llms.ChatMessageTypeAI, answer))
	return answer, nil
}

// AskAsync runs Ask on a worker goroutine and delivers the outcome to fn.
// The callback runs on the worker goroutine; UI embedders must marshal back
// to their event loop themselves.
func (s *Session) AskAsync(ctx context.Context, question string, fn func(Reply)) {
	go func() {
		answer, err := s.Ask(ctx, question)
		if err != nil {
			log.Warn("assistant question failed: %v", err)
		}
		fn(Reply{Question: question, Answer: answer, Err: err})
	}()
}

// History returns the exchanges so far, oldest first.
func (s *Session) History() []llms.MessageContent {
	out := make([]llms.MessageContent, len(s.history))
	copy(out, s.history)
	return out
}
