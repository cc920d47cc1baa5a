package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
)

var (
	meter         = otel.Meter("usecases")
	ChatTurns     metric.Int64Counter
	LLMTokensUsed metric.Int64Counter
)

func init() {
	var err error
	ChatTurns, err = meter.Int64Counter(
		"chat_turns_total",
		metric.WithDescription("Total chat turns processed"),
	)
	if err != nil {
		panic(err)
	}

	// Tokens consumed by the LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordChatTurn records one processed chat turn with its classified intent
// and detected language.
func RecordChatTurn(ctx context.Context, intent domain.Intent, lang domain.Language) {
	ChatTurns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("intent", string(intent)),
		attribute.String("language", string(lang)),
	))
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}
