package agent

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// lazyModel defers building the underlying model to its first use, so a
// missing API key is reported by the first question rather than at startup.
// It is not safe for concurrent use.
type lazyModel struct {
	newModel func() (llms.Model, error)
	model    llms.Model
}

var _ llms.Model = (*lazyModel)(nil)

// NewOpenAIModel returns an OpenAI chat model that authenticates with apiKey.
func NewOpenAIModel(apiKey, model string) llms.Model {
	return &lazyModel{newModel: func() (llms.Model, error) {
		return openai.New(openai.WithToken(apiKey), openai.WithModel(model))
	}}
}

func (m *lazyModel) get() (llms.Model, error) {
	if m.model != nil {
		return m.model, nil
	}
	model, err := m.newModel()
	if err != nil {
		return nil, fmt.Errorf("initializing LLM client: %w", err)
	}
	m.model = model
	return model, nil
}

func (m *lazyModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	model, err := m.get()
	if err != nil {
		return nil, err
	}
	return model.GenerateContent(ctx, messages, options...)
}

func (m *lazyModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}
