package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogo_LoadsAndCaches(t *testing.T) {
	first, err := Logo("tomato.svg")
	require.NoError(t, err)
	assert.Equal(t, "tomato.svg", first.Name())
	assert.Contains(t, string(first.Content()), "<svg")

	second := MustLogo("tomato.svg")
	assert.Same(t, first, second)
}

func TestLogo_Missing(t *testing.T) {
	_, err := Logo("absent.svg")
	assert.Error(t, err)
	assert.Panics(t, func() { MustLogo("absent.svg") })
}
