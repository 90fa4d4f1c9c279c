package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	msg := NewMessage(MessageRoleUser)
	require.NotEmpty(t, msg.ID)
	require.Equal(t, MessageRoleUser, msg.Role)
	require.Empty(t, msg.Parts)

	other := NewMessage(MessageRoleUser)
	require.NotEqual(t, msg.ID, other.ID)
}

func TestNewTextMessage(t *testing.T) {
	msg := NewTextMessage(MessageRoleSystem, "be brief")
	require.Len(t, msg.Parts, 1)
	require.NotNil(t, msg.Parts[0].Text)
	require.Equal(t, "be brief", msg.Parts[0].Text.Text)
}

func TestMessageTextAndReasoning(t *testing.T) {
	msg := &Message{
		Role: MessageRoleAssistant,
		Parts: []*MessagePart{
			{Reasoning: &MessageReasoning{Text: "first "}},
			{Text: &MessageText{Text: "Hello"}},
			{Reasoning: &MessageReasoning{Text: "second"}},
			{Text: &MessageText{Text: " world"}},
		},
	}

	require.Equal(t, "Hello world", msg.Text())
	require.Equal(t, "first second", msg.Reasoning())
}

func TestGetChatOptionsLayering(t *testing.T) {
	opts := GetChatOptions(nil,
		ChatWithModel("first"),
		ChatWithInstructions("stay calm"),
		ChatWithModel("second"),
	)

	require.Equal(t, "second", opts.Model)
	require.Equal(t, "stay calm", opts.Instructions)
}

func TestGetChatOptionsDefaults(t *testing.T) {
	def := &ChatOptions{Model: "fallback"}
	opts := GetChatOptions(def, ChatWithTemperature(0.5))

	require.Equal(t, "fallback", opts.Model)
	require.NotNil(t, opts.Temperature)
	require.InDelta(t, 0.5, *opts.Temperature, 0.0001)
}

func TestChatWithOptionsReplaces(t *testing.T) {
	replacement := &ChatOptions{Model: "only-me"}
	opts := GetChatOptions(&ChatOptions{Model: "gone", Instructions: "gone"}, ChatWithOptions(replacement))

	require.Same(t, replacement, opts)
	require.Equal(t, "only-me", opts.Model)
	require.Empty(t, opts.Instructions)
}

func TestChatOptionSetters(t *testing.T) {
	opts := GetChatOptions(nil,
		ChatWithTopP(0.9),
		ChatWithMaxTokens(2048),
		ChatWithStopSequences("\n\n", "END"),
	)

	require.NotNil(t, opts.TopP)
	require.InDelta(t, 0.9, *opts.TopP, 0.0001)
	require.NotNil(t, opts.MaxTokens)
	require.Equal(t, int64(2048), *opts.MaxTokens)
	require.Equal(t, []string{"\n\n", "END"}, opts.StopSequences)
}
