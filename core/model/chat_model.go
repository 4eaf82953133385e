package model

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino-ext/components/model/qwen"
	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/gogf/gf/v2/frame/g"

	"github.com/carevault/docgate/core/errors"
)

// ChatModel is the completion service consumed by the orchestrator.
// The generated text is returned verbatim, no post-processing.
type ChatModel interface {
	Generate(ctx context.Context, messages []*schema.Message) (string, error)
}

// Service wraps an eino chat model behind the ChatModel interface.
type Service struct {
	model einoModel.BaseChatModel
}

// NewServiceFromConfig builds the chat model from the `chat` config
// section. chat.provider selects the backend: "openai" (default, any
// OpenAI-compatible endpoint) or "qwen".
func NewServiceFromConfig(ctx context.Context) (*Service, error) {
	provider := g.Cfg().MustGet(ctx, "chat.provider", "openai").String()

	var (
		cm  einoModel.BaseChatModel
		err error
	)
	switch provider {
	case "qwen":
		cfg := &qwen.ChatModelConfig{}
		if err = g.Cfg().MustGet(ctx, "chat").Scan(cfg); err != nil {
			return nil, errors.Newf(errors.ErrInternalError, "failed to scan chat config: %v", err)
		}
		cm, err = qwen.NewChatModel(ctx, cfg)
	default:
		cfg := &openai.ChatModelConfig{}
		if err = g.Cfg().MustGet(ctx, "chat").Scan(cfg); err != nil {
			return nil, errors.Newf(errors.ErrInternalError, "failed to scan chat config: %v", err)
		}
		cm, err = openai.NewChatModel(ctx, cfg)
	}
	if err != nil {
		return nil, errors.Newf(errors.ErrUpstreamModel, "failed to create chat model (provider: %s): %v", provider, err)
	}

	return NewService(cm), nil
}

// NewService wraps an already constructed eino chat model.
func NewService(cm einoModel.BaseChatModel) *Service {
	return &Service{model: cm}
}

// Generate runs one completion over the given message sequence.
// Failures propagate as upstream model errors; no retry is performed.
func (s *Service) Generate(ctx context.Context, messages []*schema.Message) (string, error) {
	msg, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", errors.Newf(errors.ErrLLMCallFailed, "completion call failed: %v", err)
	}
	return msg.Content, nil
}
