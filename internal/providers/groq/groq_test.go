package groq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cfranzen/modelhub/internal/providers/provider"
)

func TestNewGroqProvider(t *testing.T) {
	p, err := NewGroqProvider(provider.WithSk("gsk-test"))
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NotNil(t, p.OpenaiProvider)
}

func TestNewGroqProviderCustomUrl(t *testing.T) {
	p, err := NewGroqProvider(provider.WithSk("gsk-test"), provider.WithUrl("https://groq.internal/v1"))
	require.NoError(t, err)
	require.NotNil(t, p)
}
