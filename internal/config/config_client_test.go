package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClientFlags(t *testing.T) {
	cfg, err := parseClientFlags(newTestFlagSet(), []string{"-api", "http://natours.local", "-timeout", "3s"})
	require.NoError(t, err)

	assert.Equal(t, "http://natours.local", cfg.Adapter.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestMergeClientConfigs_FirstWins(t *testing.T) {
	cfg, err := mergeClientConfigs(
		&ClientConfig{Adapter: ClientAdapter{APIURL: "http://env"}},
		&ClientConfig{Adapter: ClientAdapter{APIURL: "http://flag", RequestTimeout: time.Second}},
		defaultClientConfig(),
	)
	require.NoError(t, err)

	assert.Equal(t, "http://env", cfg.Adapter.APIURL)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "natours-client.log", cfg.LogFile)
	assert.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, (&ClientConfig{}).validate(), ErrInvalidAdapterConfigs)
}
