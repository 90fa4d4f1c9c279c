package google

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/cfranzen/modelhub/internal/providers/provider"
	"github.com/cfranzen/modelhub/types"
)

func TestNewGoogleProvider(t *testing.T) {
	p, err := NewGoogleProvider(DefaultSettings(), provider.WithSk("test-key"))
	require.NoError(t, err)
	require.NotNil(t, p.client)
	require.Equal(t, DefaultSettings(), p.Settings())
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	require.Equal(t, []string{"TEXT"}, settings.ResponseModalities)
	require.Equal(t, int32(1024), settings.ThinkingBudget)

	require.Len(t, settings.SafetySettings, 4)
	categories := map[genai.HarmCategory]bool{}
	for _, s := range settings.SafetySettings {
		require.Equal(t, genai.HarmBlockThresholdBlockMediumAndAbove, s.Threshold)
		categories[s.Category] = true
	}
	require.True(t, categories[genai.HarmCategoryDangerousContent])
	require.True(t, categories[genai.HarmCategoryHateSpeech])
	require.True(t, categories[genai.HarmCategoryHarassment])
	require.True(t, categories[genai.HarmCategorySexuallyExplicit])
}

func TestToChatConfigAppliesSettings(t *testing.T) {
	settings := DefaultSettings()
	config := toChatConfig(settings, types.GetChatOptions(&types.ChatOptions{Model: DefaultChatModel}))

	require.Equal(t, []string{"TEXT"}, config.ResponseModalities)
	require.NotNil(t, config.ThinkingConfig)
	require.True(t, config.ThinkingConfig.IncludeThoughts)
	require.NotNil(t, config.ThinkingConfig.ThinkingBudget)
	require.Equal(t, int32(1024), *config.ThinkingConfig.ThinkingBudget)
	require.Equal(t, settings.SafetySettings, config.SafetySettings)
	require.Nil(t, config.SystemInstruction)
}

func TestToChatConfigOptions(t *testing.T) {
	opts := types.GetChatOptions(nil,
		types.ChatWithInstructions("short answers"),
		types.ChatWithTemperature(0.3),
		types.ChatWithTopP(0.8),
		types.ChatWithMaxTokens(256),
		types.ChatWithStopSequences("DONE"),
	)

	config := toChatConfig(DefaultSettings(), opts)

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	require.Equal(t, "short answers", config.SystemInstruction.Parts[0].Text)
	require.NotNil(t, config.Temperature)
	require.InDelta(t, 0.3, *config.Temperature, 0.0001)
	require.NotNil(t, config.TopP)
	require.InDelta(t, 0.8, *config.TopP, 0.0001)
	require.Equal(t, int32(256), config.MaxOutputTokens)
	require.Equal(t, []string{"DONE"}, config.StopSequences)
}

func TestToChatContents(t *testing.T) {
	messages := []*types.Message{
		types.NewTextMessage(types.MessageRoleSystem, "be helpful"),
		types.NewTextMessage(types.MessageRoleUser, "question"),
		types.NewTextMessage(types.MessageRoleAssistant, "earlier answer"),
	}

	contents, system, err := toChatContents(messages)
	require.NoError(t, err)

	require.Equal(t, "be helpful", system)
	require.Len(t, contents, 2)
	require.Equal(t, RoleUser, contents[0].Role)
	require.Equal(t, "question", contents[0].Parts[0].Text)
	require.Equal(t, RoleModel, contents[1].Role)
	require.Equal(t, "earlier answer", contents[1].Parts[0].Text)
}

func TestToChatContentsThoughtSignature(t *testing.T) {
	signature := base64.StdEncoding.EncodeToString([]byte("sig-bytes"))
	messages := []*types.Message{
		{
			Role: types.MessageRoleAssistant,
			Parts: []*types.MessagePart{
				{Reasoning: &types.MessageReasoning{Text: "hidden", ThoughtSignature: signature}},
				{Text: &types.MessageText{Text: "visible"}},
				{Text: &types.MessageText{Text: "more"}},
			},
		},
	}

	contents, _, err := toChatContents(messages)
	require.NoError(t, err)

	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 2)
	require.Equal(t, "visible", contents[0].Parts[0].Text)
	require.Equal(t, []byte("sig-bytes"), contents[0].Parts[0].ThoughtSignature)
	require.Equal(t, "more", contents[0].Parts[1].Text)
	require.Empty(t, contents[0].Parts[1].ThoughtSignature)
}

func TestToChatContentsSkipsEmptyMessages(t *testing.T) {
	messages := []*types.Message{
		{Role: types.MessageRoleAssistant, Parts: []*types.MessagePart{{Reasoning: &types.MessageReasoning{Text: "only thinking"}}}},
		types.NewTextMessage(types.MessageRoleUser, "hi"),
	}

	contents, system, err := toChatContents(messages)
	require.NoError(t, err)

	require.Empty(t, system)
	require.Len(t, contents, 1)
	require.Equal(t, RoleUser, contents[0].Role)
}

func TestToChatContentsUnknownRole(t *testing.T) {
	_, _, err := toChatContents([]*types.Message{{Role: "tool"}})
	require.ErrorContains(t, err, "not supported")
}

func TestFromChatCompletion(t *testing.T) {
	rsp := &genai.GenerateContentResponse{
		ResponseID:   "rsp-1",
		ModelVersion: "gemini-2.5-flash",
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Role: RoleModel,
					Parts: []*genai.Part{
						{Text: "planning", Thought: true, ThoughtSignature: []byte("sig")},
						{Text: "the answer"},
						{Text: ""},
					},
				},
			},
		},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     3,
			CandidatesTokenCount: 5,
			TotalTokenCount:      8,
		},
	}

	completion, err := fromChatCompletion(rsp)
	require.NoError(t, err)

	require.Equal(t, "gemini-2.5-flash", completion.Model)
	require.Equal(t, "rsp-1", completion.Message.ID)
	require.Len(t, completion.Message.Parts, 2)
	require.Equal(t, "planning", completion.Message.Reasoning())
	require.Equal(t, base64.StdEncoding.EncodeToString([]byte("sig")), completion.Message.Parts[0].Reasoning.ThoughtSignature)
	require.Equal(t, "the answer", completion.Message.Text())
	require.Equal(t, int64(3), completion.Usage.PromptTokens)
	require.Equal(t, int64(5), completion.Usage.CompletionTokens)
	require.Equal(t, int64(8), completion.Usage.TotalTokens)
}

func TestFromChatCompletionNoCandidates(t *testing.T) {
	completion, err := fromChatCompletion(&genai.GenerateContentResponse{})
	require.Nil(t, completion)
	require.ErrorContains(t, err, "no candidates")

	completion, err = fromChatCompletion(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}})
	require.Nil(t, completion)
	require.ErrorContains(t, err, "no content")
}
