package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"szerzodes-gpt/errs"
)

// CreateOpenAIChatModel 每次调用通过 model.WithModel 指定具体模型，这里只是默认值
func CreateOpenAIChatModel(ctx context.Context, apiKey, baseURL, defaultModel string, timeout time.Duration) (model.ToolCallingChatModel, error) {
	if apiKey == "" {
		return nil, errs.Config("missing OPENAI_API_KEY")
	}
	cfg := &openai.ChatModelConfig{
		APIKey:  apiKey,
		Model:   defaultModel,
		Timeout: timeout,
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	chatModel, err := openai.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create openai chat model failed: %w", err)
	}
	return chatModel, nil
}
