// Package runner owns the single model call: one prompt in, one text reply
// out. Retry and failure policy live with the orchestrator, not here.
package runner

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/openai/openai-go"

	"commenteval/internal/clients"
)

// ProviderError is any transport, auth or quota failure from the
// text-generation service. The runner never suppresses it.
type ProviderError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider: %s: %s", e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Generator is the narrow provider contract the pipeline depends on.
type Generator interface {
	Invoke(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

// OpenAIRunner is a thin synchronous Generator over the OpenAI chat API.
type OpenAIRunner struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAIRunner(model openai.ChatModel) *OpenAIRunner {
	return &OpenAIRunner{
		client: clients.GetAIClient().Client,
		model:  model,
	}
}

func (r *OpenAIRunner) Invoke(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	completion, err := r.client.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			}),
			Model:       openai.F(r.model),
			Temperature: openai.Float(temperature),
			MaxTokens:   openai.Int(int64(maxTokens)),
		})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &ProviderError{
				Code:    strconv.Itoa(apiErr.StatusCode),
				Message: apiErr.Message,
				Err:     err,
			}
		}
		return "", &ProviderError{Code: "transport", Message: err.Error(), Err: err}
	}

	if len(completion.Choices) == 0 {
		return "", &ProviderError{Code: "empty_response", Message: "provider returned no choices"}
	}

	return completion.Choices[0].Message.Content, nil
}
