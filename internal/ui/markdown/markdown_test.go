package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToDarkStyle(t *testing.T) {
	r, err := New(60, "")
	require.NoError(t, err)
	assert.Equal(t, 60, r.Width())
}

func TestNewAcceptsLightStyle(t *testing.T) {
	_, err := New(60, "light")
	require.NoError(t, err)
}

func TestNewRejectsUnknownStyle(t *testing.T) {
	_, err := New(60, "neon")
	require.Error(t, err)
}

func TestRenderOrRawKeepsContent(t *testing.T) {
	r, err := New(60, "dark")
	require.NoError(t, err)

	out := r.RenderOrRaw("# Channels in Practice")
	assert.Contains(t, out, "Channels in Practice")
}
