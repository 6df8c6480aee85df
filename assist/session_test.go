package assist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/spflow/spflow/particle"
)

// mockLLM records requests and replays canned answers.
type mockLLM struct {
	answers  []string
	err      error
	requests [][]llms.MessageContent
}

func (m *mockLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.requests = append(m.requests, messages)
	if m.err != nil {
		return nil, m.err
	}
	answer := "ok"
	if len(m.answers) > 0 {
		answer = m.answers[0]
		m.answers = m.answers[1:]
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: answer}},
	}, nil
}

func (m *mockLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := m.GenerateContent(ctx, []llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)}, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

func singleDataset() *particle.Dataset {
	return &particle.Dataset{
		Type:       particle.TypeSingleSample,
		SampleName: "Lake",
		Records: []*particle.Record{
			{
				SourceSample:  "Lake",
				Elements:      map[string]float64{"Fe": 3},
				ElementMassFg: map[string]float64{"Fe": 1.5},
			},
			{
				SourceSample:  "Lake",
				Elements:      map[string]float64{"Fe": 1, "Ti": 2},
				ElementMassFg: map[string]float64{"Fe": 0.5, "Ti": 1.0},
			},
		},
	}
}

func TestSessionAsk(t *testing.T) {
	model := &mockLLM{answers: []string{"iron dominates"}}
	s := NewSession(model, singleDataset())

	answer, err := s.Ask(context.Background(), "what is the main element?")
	require.NoError(t, err)
	assert.Equal(t, "iron dominates", answer)

	require.Len(t, model.requests, 1)
	msgs := model.requests[0]
	require.NotEmpty(t, msgs)
	assert.Equal(t, llms.ChatMessageTypeSystem, msgs[0].Role)

	system := msgs[0].Parts[0].(llms.TextContent).Text
	assert.Contains(t, system, "Sample Name: Lake")
	assert.Contains(t, system, "Total Particles Analyzed: 2")
}

func TestSessionHistoryCarriesForward(t *testing.T) {
	model := &mockLLM{answers: []string{"first", "second"}}
	s := NewSession(model, singleDataset())

	_, err := s.Ask(context.Background(), "q1")
	require.NoError(t, err)
	_, err = s.Ask(context.Background(), "q2")
	require.NoError(t, err)

	require.Len(t, model.requests, 2)
	// system + q1 + answer1 + q2
	assert.Len(t, model.requests[1], 4)
	assert.Len(t, s.History(), 4)
}

func TestSessionAskError(t *testing.T) {
	model := &mockLLM{err: errors.New("model offline")}
	s := NewSession(model, nil)

	_, err := s.Ask(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model offline")
	assert.Empty(t, s.History(), "failed exchanges are not recorded")
}

func TestSessionAskAsync(t *testing.T) {
	model := &mockLLM{answers: []string{"async answer"}}
	s := NewSession(model, singleDataset())

	done := make(chan Reply, 1)
	s.AskAsync(context.Background(), "q", func(r Reply) { done <- r })

	select {
	case reply := <-done:
		require.NoError(t, reply.Err)
		assert.Equal(t, "q", reply.Question)
		assert.Equal(t, "async answer", reply.Answer)
	case <-time.After(time.Second):
		t.Fatal("no reply delivered")
	}
}

func TestSessionNilSnapshot(t *testing.T) {
	model := &mockLLM{}
	s := NewSession(model, nil)

	_, err := s.Ask(context.Background(), "anything")
	require.NoError(t, err)

	system := model.requests[0][0].Parts[0].(llms.TextContent).Text
	assert.Contains(t, system, "No particle data available")
}

func TestSessionOptions(t *testing.T) {
	s := NewSession(&mockLLM{}, nil, WithTemperature(0.2))
	assert.Equal(t, 0.2, s.temperature)
	assert.NotEmpty(t, s.ID())
}
