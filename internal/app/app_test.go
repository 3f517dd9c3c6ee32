package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithDefaults(t *testing.T) {
	a, err := New("")
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.GetLogger())
	assert.NotNil(t, a.GetClient())
	assert.Equal(t, "https://lolalytics.com", a.GetConfig().Site.BaseURL)
}

func TestNewWithMissingConfigFile(t *testing.T) {
	_, err := New("/does/not/exist.yaml")
	require.Error(t, err)
}
