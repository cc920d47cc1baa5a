package domain

import "context"

// CompletionMessage is one turn of the prompt sent to the language model.
type CompletionMessage struct {
	Role    ChatRole
	Content string
}

// CompletionRequest asks the language model to phrase a reply.
type CompletionRequest struct {
	Model       string
	Messages    []CompletionMessage
	Temperature float32
	MaxTokens   int
}

// CompletionUsage reports token consumption of one completion call.
type CompletionUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// CompletionResult is the model's reply plus accounting data.
type CompletionResult struct {
	Content string
	Model   string
	Usage   CompletionUsage
}

// CompletionClient talks to a hosted language model. The chat flow treats it
// as optional polish: when the call fails, the deterministic reply templates
// are used as-is.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResult, error)
}
