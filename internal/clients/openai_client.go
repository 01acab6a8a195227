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
	aiOnce           sync.Once
)

type AIClient struct {
	Client *openai.Client
}

func GetAIClient() *AIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		slog.Error("[OpenAIClient] Missing OPENAI_API_KEY in environment variables")
		panic("[OpenAIClient] Missing OPENAI_API_KEY in environment variables")
	}
	aiOnce.Do(func() {
		aiClientInstance = &AIClient{
			Client: openai.NewClient(
				option.WithAPIKey(apiKey),
				option.WithRequestTimeout(openAIRequestTimeout),
			),
		}
		slog.Info("[OpenAIClient] OpenAI client initialized",
			slog.Duration("timeout", openAIRequestTimeout))
	})
	return aiClientInstance
}
