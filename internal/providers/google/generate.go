package google

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/cfranzen/modelhub/types"

	"google.golang.org/genai"
)

func (p *GoogleProvider) Generate(ctx context.Context, messages []*types.Message, options ...types.ChatOption) (*types.Completion, error) {
	opts := types.GetChatOptions(&types.ChatOptions{
		Model: DefaultChatModel,
	}, options...)

	contents, system, err := toChatContents(messages)
	if err != nil {
		return nil, err
	}

	if opts.Instructions == "" && system != "" {
		opts.Instructions = system
	}

	config := toChatConfig(p.settings, opts)

	rsp, err := p.client.Models.GenerateContent(ctx, opts.Model, contents, config)
	if err != nil {
		return nil, err
	}

	return fromChatCompletion(rsp)
}

func toChatConfig(settings Settings, opts *types.ChatOptions) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ResponseModalities: settings.ResponseModalities,
		ThinkingConfig: &genai.ThinkingConfig{
			IncludeThoughts: true,
			ThinkingBudget:  genai.Ptr(settings.ThinkingBudget),
		},
		SafetySettings: settings.SafetySettings,
	}

	if opts.Instructions != "" {
		config.SystemInstruction = &genai.Content{
			Role: RoleSystem,
			Parts: []*genai.Part{
				{Text: opts.Instructions},
			},
		}
	}

	if opts.Temperature != nil {
		config.Temperature = opts.Temperature
	}

	if opts.TopP != nil {
		config.TopP = opts.TopP
	}

	if opts.MaxTokens != nil {
		config.MaxOutputTokens = int32(*opts.MaxTokens)
	}

	if len(opts.StopSequences) > 0 {
		config.StopSequences = opts.StopSequences
	}

	return config
}

// toChatContents maps messages to gemini contents. System text is returned
// separately, gemini takes it as a system instruction, not a content role.
func toChatContents(messages []*types.Message) ([]*genai.Content, string, error) {
	contents := []*genai.Content{}
	systemBuf := strings.Builder{}

	for _, msg := range messages {
		content := &genai.Content{}

		switch msg.Role {
		case types.MessageRoleSystem:
			for _, part := range msg.Parts {
				if part.Text != nil {
					systemBuf.WriteString(part.Text.Text)
				}
			}
			continue
		case types.MessageRoleAssistant:
			content.Role = RoleModel
		case types.MessageRoleUser:
			content.Role = RoleUser
		default:
			return nil, "", fmt.Errorf("role %v not supported", msg.Role)
		}

		var thoughtSignature []byte

		for _, part := range msg.Parts {
			switch {
			case part.Reasoning != nil:
				// thoughts are not replayed, their signature rides the next text part
				if part.Reasoning.ThoughtSignature != "" {
					thoughtSignature, _ = base64.StdEncoding.DecodeString(part.Reasoning.ThoughtSignature)
				}
			case part.Text != nil:
				content.Parts = append(content.Parts, &genai.Part{
					Text:             part.Text.Text,
					ThoughtSignature: thoughtSignature,
				})
				thoughtSignature = nil
			}
		}

		if len(content.Parts) > 0 {
			contents = append(contents, content)
		}
	}

	return contents, systemBuf.String(), nil
}

func fromChatCompletion(rsp *genai.GenerateContentResponse) (*types.Completion, error) {
	if len(rsp.Candidates) < 1 {
		return nil, fmt.Errorf("completion no candidates")
	}

	candidate := rsp.Candidates[0]
	if candidate.Content == nil {
		return nil, fmt.Errorf("completion candidate has no content")
	}

	message := &types.Message{
		ID:   rsp.ResponseID,
		Role: types.MessageRoleAssistant,
	}

	for _, part := range candidate.Content.Parts {
		if part.Text == "" {
			continue
		}

		thoughtSignature := ""
		if len(part.ThoughtSignature) > 0 {
			thoughtSignature = base64.StdEncoding.EncodeToString(part.ThoughtSignature)
		}

		if part.Thought {
			message.Parts = append(message.Parts, &types.MessagePart{Reasoning: &types.MessageReasoning{
				Text:             part.Text,
				ThoughtSignature: thoughtSignature,
			}})
		} else {
			message.Parts = append(message.Parts, &types.MessagePart{Text: &types.MessageText{Text: part.Text}})
		}
	}

	completion := &types.Completion{
		Model:   rsp.ModelVersion,
		Message: message,
		Usage:   types.CompletionUsage{},
	}

	if rsp.UsageMetadata != nil {
		completion.Usage.CompletionTokens = int64(rsp.UsageMetadata.CandidatesTokenCount)
		completion.Usage.PromptTokens = int64(rsp.UsageMetadata.PromptTokenCount)
		completion.Usage.TotalTokens = int64(rsp.UsageMetadata.TotalTokenCount)
	}

	return completion, nil
}
