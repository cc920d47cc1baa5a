package openrouter

import (
	"context"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

// CompletionClient adapts APIClient to the domain.CompletionClient interface
type CompletionClient struct {
	client APIClient
}

// NewCompletionClientAdapter creates a new adapter
func NewCompletionClientAdapter(client APIClient) CompletionClient {
	return CompletionClient{client: client}
}

// Complete implements domain.CompletionClient.Complete
func (a CompletionClient) Complete(ctx context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	adapterReq := ChatRequest{
		Model:    req.Model,
		Messages: make([]ChatMessage, len(req.Messages)),
	}
	if req.Temperature > 0 {
		temperature := req.Temperature
		adapterReq.Temperature = &temperature
	}
	if req.MaxTokens > 0 {
		maxTokens := req.MaxTokens
		adapterReq.MaxTokens = &maxTokens
	}

	for i, msg := range req.Messages {
		adapterReq.Messages[i] = ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	resp, err := a.client.Chat(spanCtx, adapterReq)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CompletionResult{}, err
	}

	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.CompletionResult{}, err
	}

	result := domain.CompletionResult{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
	}
	if resp.Usage != nil {
		result.Usage = domain.CompletionUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	return result, nil
}

// InitCompletionClient initializes the CompletionClient dependency
type InitCompletionClient struct {
	HttpClient *http.Client `resolve:""`
	APIHost    string       `config:"LLM_API_HOST" default:"https://openrouter.ai/api"`
	APIKey     string       `config:"LLM_API_KEY" default:""`
}

// Initialize registers the CompletionClient
func (i InitCompletionClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CompletionClient](NewCompletionClientAdapter(
		NewAPIClient(i.APIHost, i.APIKey, i.HttpClient),
	))
	return ctx, nil
}
