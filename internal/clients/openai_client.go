package clients

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	openAIRequestTimeout = 60 * time.Second // Timeout for individual OpenAI API requests
)

var (
	aiClientInstance *AIClient
	aiClientOnce     sync.Once
)

type AIClient struct {
	Client *openai.Client
}

func GetAIClient() *AIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		slog.Error("[AIClient] Missing OPENAI_API_KEY in environment variables")
		panic("[AIClient] Missing OPENAI_API_KEY in environment variables")
	}
	aiClientOnce.Do(func() {
		aiClientInstance = &AIClient{
			Client: openai.NewClient(
				option.WithAPIKey(apiKey),
				option.WithRequestTimeout(openAIRequestTimeout),
			),
		}
		slog.Info("[AIClient] OpenAI client initialized with request timeout",
			slog.Duration("timeout", openAIRequestTimeout))
	})
	return aiClientInstance
}
