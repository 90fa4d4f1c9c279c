package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleSystem    MessageRole = "system"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleUser      MessageRole = "user"
)

type Message struct {
	ID    string         `json:"id,omitempty" yaml:"id,omitempty"`
	Role  MessageRole    `json:"role,omitempty" yaml:"role,omitempty"`
	Parts []*MessagePart `json:"parts,omitempty" yaml:"parts,omitempty"`
}

func NewMessage(role MessageRole) *Message {
	return &Message{
		ID:   uuid.NewString(),
		Role: role,
	}
}

func NewTextMessage(role MessageRole, text string) *Message {
	msg := NewMessage(role)
	msg.Parts = append(msg.Parts, &MessagePart{Text: &MessageText{Text: text}})
	return msg
}

func (m *Message) String() string {
	sb := strings.Builder{}
	sb.WriteString(string(m.Role) + ":\n")
	for _, part := range m.Parts {
		switch {
		case part.Text != nil:
			sb.WriteString(fmt.Sprintf("%s\n", part.Text.Text))
		case part.Reasoning != nil:
			sb.WriteString(fmt.Sprintf("[think] %s\n", part.Reasoning.Text))
		default:
			//
		}
	}

	return sb.String()
}

func (m *Message) Text() string {
	sb := strings.Builder{}
	for _, part := range m.Parts {
		if part.Text != nil {
			sb.WriteString(part.Text.Text)
		}
	}
	return sb.String()
}

func (m *Message) Reasoning() string {
	sb := strings.Builder{}
	for _, part := range m.Parts {
		if part.Reasoning != nil {
			sb.WriteString(part.Reasoning.Text)
		}
	}
	return sb.String()
}

type MessagePart struct {
	// oneof
	Text      *MessageText      `json:"text,omitempty" yaml:"text,omitempty"`
	Reasoning *MessageReasoning `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
}

type MessageText struct {
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

type MessageReasoning struct {
	Text             string `json:"text,omitempty" yaml:"text,omitempty"`
	ThoughtSignature string `json:"thoughtSignature,omitempty" yaml:"thoughtSignature,omitempty"` //for gemini
}

type Completion struct {
	Model   string
	Message *Message
	Usage   CompletionUsage
}

type CompletionUsage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type ChatOption func(*ChatOptions) *ChatOptions
type ChatOptions struct {
	Model         string
	Instructions  string
	Temperature   *float32
	TopP          *float32
	MaxTokens     *int64
	StopSequences []string
}

func ChatWithOptions(options *ChatOptions) ChatOption {
	return func(opts *ChatOptions) *ChatOptions {
		return options
	}
}

func ChatWithModel(model string) ChatOption {
	return func(opts *ChatOptions) *ChatOptions {
		opts.Model = model
		return opts
	}
}

func ChatWithInstructions(instructions string) ChatOption {
	return func(opts *ChatOptions) *ChatOptions {
		opts.Instructions = instructions
		return opts
	}
}

func ChatWithTemperature(temperature float32) ChatOption {
	return func(opts *ChatOptions) *ChatOptions {
		opts.Temperature = &temperature
		return opts
	}
}

func ChatWithTopP(topP float32) ChatOption {
	return func(opts *ChatOptions) *ChatOptions {
		opts.TopP = &topP
		return opts
	}
}

func ChatWithMaxTokens(maxTokens int64) ChatOption {
	return func(opts *ChatOptions) *ChatOptions {
		opts.MaxTokens = &maxTokens
		return opts
	}
}

func ChatWithStopSequences(stops ...string) ChatOption {
	return func(opts *ChatOptions) *ChatOptions {
		opts.StopSequences = stops
		return opts
	}
}

func GetChatOptions(def *ChatOptions, opts ...ChatOption) *ChatOptions {
	if def == nil {
		def = &ChatOptions{}
	}
	for _, opt := range opts {
		def = opt(def)
	}
	return def
}
