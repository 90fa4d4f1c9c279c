package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cfranzen/modelhub/types"

	"github.com/openai/openai-go/v2"
)

const (
	DefaultChatModel = openai.ChatModelGPT4_1
)

func (p *OpenaiProvider) Generate(ctx context.Context, messages []*types.Message, options ...types.ChatOption) (*types.Completion, error) {
	opts := types.GetChatOptions(&types.ChatOptions{
		Model: DefaultChatModel,
	}, options...)

	params, err := toParams(opts, messages)
	if err != nil {
		return nil, err
	}

	completion, err := p.client.Chat.Completions.New(ctx, *params)
	if err != nil {
		return nil, err
	}

	return fromCompletion(completion)
}

func toMessages(opts *types.ChatOptions, messages []*types.Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	openaiMsgs := []openai.ChatCompletionMessageParamUnion{}
	if opts.Instructions != "" {
		openaiMsgs = append(openaiMsgs, openai.SystemMessage(opts.Instructions))
	}

	for _, msg := range messages {
		switch msg.Role {
		case types.MessageRoleSystem:
			for _, part := range msg.Parts {
				if part.Text != nil {
					openaiMsgs = append(openaiMsgs, openai.SystemMessage(part.Text.Text))
				}
			}
		case types.MessageRoleUser:
			parts := []openai.ChatCompletionContentPartUnionParam{}
			for _, part := range msg.Parts {
				if part.Text != nil {
					parts = append(parts, openai.ChatCompletionContentPartUnionParam{
						OfText: &openai.ChatCompletionContentPartTextParam{
							Text: part.Text.Text,
						},
					})
				}
			}
			if len(parts) > 0 {
				openaiMsgs = append(openaiMsgs, openai.UserMessage(parts))
			}
		case types.MessageRoleAssistant:
			// reasoning parts are not replayed to the provider
			if text := msg.Text(); text != "" {
				openaiMsgs = append(openaiMsgs, openai.AssistantMessage(text))
			}
		default:
			return nil, fmt.Errorf("openai not support role [%s]", msg.Role)
		}
	}

	return openaiMsgs, nil
}

func toParams(opts *types.ChatOptions, messages []*types.Message) (*openai.ChatCompletionNewParams, error) {
	openaiMessages, err := toMessages(opts, messages)
	if err != nil {
		return nil, err
	}

	openaiParams := &openai.ChatCompletionNewParams{
		Model:    opts.Model,
		Messages: openaiMessages,
	}

	if opts.Temperature != nil {
		openaiParams.Temperature = openai.Float(float64(*opts.Temperature))
	}

	if opts.TopP != nil {
		openaiParams.TopP = openai.Float(float64(*opts.TopP))
	}

	if opts.MaxTokens != nil {
		openaiParams.MaxCompletionTokens = openai.Int(*opts.MaxTokens)
	}

	if len(opts.StopSequences) > 0 {
		openaiParams.Stop = openai.ChatCompletionNewParamsStopUnion{
			OfStringArray: opts.StopSequences,
		}
	}

	return openaiParams, nil
}

func fromCompletion(completion *openai.ChatCompletion) (*types.Completion, error) {
	if len(completion.Choices) < 1 {
		return nil, fmt.Errorf("completion no choices")
	}

	choice := completion.Choices[0]
	message := &types.Message{
		ID:   completion.ID,
		Role: types.MessageRoleAssistant,
	}

	if reasoning := reasoningExtra(&choice.Message); reasoning != "" {
		message.Parts = append(message.Parts, &types.MessagePart{Reasoning: &types.MessageReasoning{Text: reasoning}})
	}

	if choice.Message.Content != "" {
		message.Parts = append(message.Parts, &types.MessagePart{Text: &types.MessageText{Text: choice.Message.Content}})
	}

	return &types.Completion{
		Model:   completion.Model,
		Message: message,
		Usage: types.CompletionUsage{
			CompletionTokens: completion.Usage.CompletionTokens,
			PromptTokens:     completion.Usage.PromptTokens,
			TotalTokens:      completion.Usage.TotalTokens,
		},
	}, nil
}

// reasoningExtra lifts the reasoning_content field some openai-compatible
// backends attach to the message. The field is raw json, a quoted string.
func reasoningExtra(msg *openai.ChatCompletionMessage) string {
	field, ok := msg.JSON.ExtraFields["reasoning_content"]
	if !ok {
		return ""
	}

	raw := field.Raw()
	if raw == "" || raw == "null" {
		return ""
	}

	var text string
	if err := json.Unmarshal([]byte(raw), &text); err != nil {
		return ""
	}
	return text
}
