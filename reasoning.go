package modelhub

import (
	"context"
	"strings"

	"github.com/cfranzen/modelhub/types"
)

// ThinkTag is the tag reasoning models emit inline around their thinking.
const ThinkTag = "think"

// reasoningExtractor wraps a model whose reasoning arrives inline as
// <think> spans in the text output and moves it to reasoning parts.
// Provider-native reasoning parts pass through untouched.
type reasoningExtractor struct {
	base Model
	tag  string
}

func extractReasoning(base Model, tag string) Model {
	return &reasoningExtractor{base: base, tag: tag}
}

func (m *reasoningExtractor) Generate(ctx context.Context, messages []*types.Message, options ...types.ChatOption) (*types.Completion, error) {
	completion, err := m.base.Generate(ctx, messages, options...)
	if err != nil {
		return nil, err
	}

	if completion == nil || completion.Message == nil {
		return completion, nil
	}

	parts := make([]*types.MessagePart, 0, len(completion.Message.Parts))
	for _, part := range completion.Message.Parts {
		if part.Text == nil {
			parts = append(parts, part)
			continue
		}

		reasoning, text := splitReasoning(m.tag, part.Text.Text)
		if reasoning == "" {
			parts = append(parts, part)
			continue
		}

		parts = append(parts, &types.MessagePart{Reasoning: &types.MessageReasoning{Text: reasoning}})
		if text != "" {
			parts = append(parts, &types.MessagePart{Text: &types.MessageText{Text: text}})
		}
	}
	completion.Message.Parts = parts

	return completion, nil
}

// splitReasoning removes every complete non-empty <tag>...</tag> span
// from text and returns the spans joined with newlines plus the remaining
// text. Without such a span the text comes back verbatim, so running the
// split on already clean output changes nothing.
func splitReasoning(tag, text string) (string, string) {
	var (
		start = "<" + tag + ">"
		end   = "</" + tag + ">"
	)

	var (
		thinks []string
		out    strings.Builder
		rest   = text
	)

	for {
		startPos := strings.Index(rest, start)
		if startPos < 0 {
			break
		}
		endPos := strings.Index(rest[startPos+len(start):], end)
		if endPos < 0 {
			break
		}

		out.WriteString(rest[:startPos])
		if span := rest[startPos+len(start) : startPos+len(start)+endPos]; span != "" {
			thinks = append(thinks, span)
		}
		rest = rest[startPos+len(start)+endPos+len(end):]
	}

	if len(thinks) == 0 {
		return "", text
	}

	out.WriteString(rest)
	return strings.Join(thinks, "\n"), out.String()
}
