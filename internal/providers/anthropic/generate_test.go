package anthropic

import (
	"encoding/json"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/require"

	"github.com/cfranzen/modelhub/internal/providers/provider"
	"github.com/cfranzen/modelhub/types"
)

func TestNewAnthropicProvider(t *testing.T) {
	p, err := NewAnthropicProvider(provider.WithSk("sk-ant-test"))
	require.NoError(t, err)
	require.NotNil(t, p.client)
}

func TestToChatParamsMaxTokens(t *testing.T) {
	opts := types.GetChatOptions(&types.ChatOptions{Model: DefaultChatModel})
	params, err := toChatParams(nil, opts)
	require.NoError(t, err)
	require.Equal(t, DefaultMaxTokens, params.MaxTokens)

	opts = types.GetChatOptions(&types.ChatOptions{Model: DefaultChatModel}, types.ChatWithMaxTokens(1000))
	params, err = toChatParams(nil, opts)
	require.NoError(t, err)
	require.Equal(t, int64(1000), params.MaxTokens)
}

func TestToChatParamsOptions(t *testing.T) {
	opts := types.GetChatOptions(nil,
		types.ChatWithModel("claude-sonnet-4-0"),
		types.ChatWithInstructions("answer in one word"),
		types.ChatWithTemperature(0.7),
		types.ChatWithTopP(0.95),
		types.ChatWithStopSequences("STOP"),
	)

	params, err := toChatParams([]*types.Message{types.NewTextMessage(types.MessageRoleUser, "hi")}, opts)
	require.NoError(t, err)

	require.EqualValues(t, "claude-sonnet-4-0", params.Model)
	require.True(t, params.Temperature.Valid())
	require.InDelta(t, 0.7, params.Temperature.Value, 0.0001)
	require.True(t, params.TopP.Valid())
	require.InDelta(t, 0.95, params.TopP.Value, 0.0001)
	require.Equal(t, []string{"STOP"}, params.StopSequences)

	require.Len(t, params.System, 1)
	require.Equal(t, "answer in one word", params.System[0].Text)
}

func TestToChatMessagesRoutesSystemBlocks(t *testing.T) {
	opts := types.GetChatOptions(nil, types.ChatWithModel(DefaultChatModel), types.ChatWithInstructions("first"))
	messages := []*types.Message{
		types.NewTextMessage(types.MessageRoleSystem, "second"),
		types.NewTextMessage(types.MessageRoleUser, "question"),
		types.NewTextMessage(types.MessageRoleAssistant, "earlier answer"),
	}

	params, err := toChatParams(messages, opts)
	require.NoError(t, err)

	require.Len(t, params.System, 2)
	require.Equal(t, "first", params.System[0].Text)
	require.Equal(t, "second", params.System[1].Text)

	require.Len(t, params.Messages, 2)
	require.EqualValues(t, "user", params.Messages[0].Role)
	require.Equal(t, "question", params.Messages[0].Content[0].OfText.Text)
	require.EqualValues(t, "assistant", params.Messages[1].Role)
	require.Equal(t, "earlier answer", params.Messages[1].Content[0].OfText.Text)
}

func TestToChatMessagesSkipsReasoningParts(t *testing.T) {
	messages := []*types.Message{
		{
			Role: types.MessageRoleAssistant,
			Parts: []*types.MessagePart{
				{Reasoning: &types.MessageReasoning{Text: "hidden"}},
				{Text: &types.MessageText{Text: "visible"}},
			},
		},
		{
			Role:  types.MessageRoleAssistant,
			Parts: []*types.MessagePart{{Reasoning: &types.MessageReasoning{Text: "only reasoning"}}},
		},
	}

	params, err := toChatParams(messages, types.GetChatOptions(&types.ChatOptions{Model: DefaultChatModel}))
	require.NoError(t, err)

	require.Len(t, params.Messages, 1)
	require.Len(t, params.Messages[0].Content, 1)
	require.Equal(t, "visible", params.Messages[0].Content[0].OfText.Text)
}

func TestToChatMessagesUnknownRole(t *testing.T) {
	messages := []*types.Message{{Role: "tool"}}

	_, err := toChatParams(messages, types.GetChatOptions(&types.ChatOptions{Model: DefaultChatModel}))
	require.ErrorContains(t, err, "not supported")
}

func TestFromChatCompletion(t *testing.T) {
	payload := `{
		"id": "msg_1",
		"type": "message",
		"role": "assistant",
		"model": "claude-sonnet-4-0",
		"content": [
			{"type": "thinking", "thinking": "working it out", "signature": "sig"},
			{"type": "text", "text": "the answer"}
		],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 3, "output_tokens": 5}
	}`

	msg := &anthropic.Message{}
	require.NoError(t, json.Unmarshal([]byte(payload), msg))

	completion, err := fromChatCompletion(msg)
	require.NoError(t, err)

	require.Equal(t, "claude-sonnet-4-0", completion.Model)
	require.Equal(t, "msg_1", completion.Message.ID)
	require.Len(t, completion.Message.Parts, 2)
	require.Equal(t, "working it out", completion.Message.Reasoning())
	require.Equal(t, "the answer", completion.Message.Text())
	require.Equal(t, int64(3), completion.Usage.PromptTokens)
	require.Equal(t, int64(5), completion.Usage.CompletionTokens)
	require.Equal(t, int64(8), completion.Usage.TotalTokens)
}

func TestFromChatCompletionTextOnly(t *testing.T) {
	payload := `{
		"id": "msg_2",
		"type": "message",
		"role": "assistant",
		"model": "claude-sonnet-4-0",
		"content": [{"type": "text", "text": "plain"}],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 1, "output_tokens": 1}
	}`

	msg := &anthropic.Message{}
	require.NoError(t, json.Unmarshal([]byte(payload), msg))

	completion, err := fromChatCompletion(msg)
	require.NoError(t, err)

	require.Len(t, completion.Message.Parts, 1)
	require.Equal(t, "plain", completion.Message.Text())
	require.Empty(t, completion.Message.Reasoning())
}

func TestFromChatCompletionIgnoresRedactedThinking(t *testing.T) {
	payload := `{
		"id": "msg_3",
		"type": "message",
		"role": "assistant",
		"model": "claude-sonnet-4-0",
		"content": [
			{"type": "redacted_thinking", "data": "opaque"},
			{"type": "text", "text": "visible"}
		],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 1, "output_tokens": 1}
	}`

	msg := &anthropic.Message{}
	require.NoError(t, json.Unmarshal([]byte(payload), msg))

	completion, err := fromChatCompletion(msg)
	require.NoError(t, err)

	require.Len(t, completion.Message.Parts, 1)
	require.Equal(t, "visible", completion.Message.Text())
}
