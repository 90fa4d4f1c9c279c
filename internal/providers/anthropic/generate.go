package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/cfranzen/modelhub/types"

	"github.com/anthropics/anthropic-sdk-go"
)

func (p *AnthropicProvider) Generate(ctx context.Context, messages []*types.Message, options ...types.ChatOption) (*types.Completion, error) {
	opts := types.GetChatOptions(&types.ChatOptions{
		Model: DefaultChatModel,
	}, options...)

	params, err := toChatParams(messages, opts)
	if err != nil {
		return nil, err
	}

	rsp, err := p.client.Messages.New(ctx, *params)
	if err != nil {
		return nil, err
	}

	return fromChatCompletion(rsp)
}

func toChatParams(messages []*types.Message, opts *types.ChatOptions) (*anthropic.MessageNewParams, error) {
	params := &anthropic.MessageNewParams{}

	params.Model = anthropic.Model(opts.Model)

	params.MaxTokens = DefaultMaxTokens
	if opts.MaxTokens != nil {
		params.MaxTokens = *opts.MaxTokens
	}

	if opts.Temperature != nil {
		params.Temperature = anthropic.Float(float64(*opts.Temperature))
	}

	if opts.TopP != nil {
		params.TopP = anthropic.Float(float64(*opts.TopP))
	}

	if len(opts.StopSequences) > 0 {
		params.StopSequences = opts.StopSequences
	}

	if opts.Instructions != "" {
		params.System = append(params.System, anthropic.TextBlockParam{Text: opts.Instructions})
	}

	if err := toChatMessages(params, messages); err != nil {
		return nil, err
	}

	return params, nil
}

func toChatMessages(params *anthropic.MessageNewParams, messages []*types.Message) error {
	for _, msg := range messages {
		toMessage := anthropic.MessageParam{}

		switch msg.Role {
		case types.MessageRoleSystem:
			toMessage.Role = RoleSystem
		case types.MessageRoleAssistant:
			toMessage.Role = RoleAssistant
		case types.MessageRoleUser:
			toMessage.Role = RoleUser
		default:
			return fmt.Errorf("role %v not supported", msg.Role)
		}

		for _, part := range msg.Parts {
			// reasoning parts are not replayed to the provider
			if part.Text == nil {
				continue
			}
			toMessage.Content = append(toMessage.Content, anthropic.ContentBlockParamUnion{
				OfText: &anthropic.TextBlockParam{
					Text: part.Text.Text,
				},
			})
		}

		if len(toMessage.Content) == 0 {
			continue
		}

		if toMessage.Role == RoleSystem {
			for _, part := range toMessage.Content {
				if part.OfText != nil {
					params.System = append(params.System, *part.OfText)
				}
			}
		} else {
			params.Messages = append(params.Messages, toMessage)
		}
	}

	return nil
}

func fromChatCompletion(msg *anthropic.Message) (*types.Completion, error) {
	completion := &types.Completion{
		Model: string(msg.Model),
		Message: &types.Message{
			ID:   msg.ID,
			Role: types.MessageRoleAssistant,
		},
		Usage: types.CompletionUsage{
			CompletionTokens: msg.Usage.OutputTokens,
			PromptTokens:     msg.Usage.InputTokens,
			TotalTokens:      msg.Usage.InputTokens + msg.Usage.OutputTokens,
		},
	}

	var (
		contentBuf   = strings.Builder{}
		reasoningBuf = strings.Builder{}
	)

	for _, c := range msg.Content {
		switch variant := c.AsAny().(type) {
		case anthropic.ThinkingBlock:
			reasoningBuf.WriteString(variant.Thinking)
		case anthropic.TextBlock:
			contentBuf.WriteString(variant.Text)
		case anthropic.RedactedThinkingBlock:
			//
		}
	}

	if reasoning := reasoningBuf.String(); reasoning != "" {
		completion.Message.Parts = append(completion.Message.Parts, &types.MessagePart{Reasoning: &types.MessageReasoning{Text: reasoning}})
	}
	if content := contentBuf.String(); content != "" {
		completion.Message.Parts = append(completion.Message.Parts, &types.MessagePart{Text: &types.MessageText{Text: content}})
	}

	return completion, nil
}
