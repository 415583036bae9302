package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Storage.DB.URI = "postgres://natours:<password>@localhost:5432/natours"
	cfg.Storage.DB.Password = "secret"
	cfg.Auth.JWTSecret = "jwt-secret"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source
// is not overwritten by a later one, and that later sources fill the gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{Port: 8000}},
		&StructuredConfig{Server: Server{Port: 9000}, App: App{PublicURL: "https://natours.dev"}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "https://natours.dev", cfg.App.PublicURL)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_EXPIRES_IN", "90d")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "development", b.configs[0].App.Env)
	assert.Equal(t, 90*24*time.Hour, b.configs[0].Auth.JWTExpiresIn)
}

// TestWithEnv_SetsErrorOnBadValue verifies that an unparsable value sets b.err.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withEnvFile ───────────────────────────────────────────────────────────────

// TestWithEnvFile_LoadsFile verifies that the env file feeds withEnv.
func TestWithEnvFile_LoadsFile(t *testing.T) {
	path := writeEnvFile(t, "NATOURS_TEST_ONLY=1\nPUBLIC_URL=https://from-file.dev\n")
	t.Setenv("ENV_FILE", path)
	t.Setenv("PUBLIC_URL", "")
	require.NoError(t, os.Unsetenv("PUBLIC_URL"))
	t.Cleanup(func() { os.Unsetenv("NATOURS_TEST_ONLY") })

	b := newConfigBuilder().withEnvFile().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://from-file.dev", b.configs[0].App.PublicURL)
}

// TestWithEnvFile_MissingExplicitFile verifies that a missing ENV_FILE is an error.
func TestWithEnvFile_MissingExplicitFile(t *testing.T) {
	t.Setenv("ENV_FILE", "/nonexistent/config.env")

	b := newConfigBuilder().withEnvFile()
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Env = "development"
	payload.Auth.JWTSecret = "json-secret"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "development", b.configs[1].App.Env)
	assert.Equal(t, "json-secret", b.configs[1].Auth.JWTSecret)
}

// TestWithJSON_UsesFirstPath verifies that the highest-priority source
// decides which JSON file is read.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.PublicURL = "https://first.dev"
	second := StructuredJSONConfig{}
	second.App.PublicURL = "https://second.dev"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "https://first.dev", b.configs[2].App.PublicURL)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_LowestPriority verifies that defaults only fill gaps.
func TestWithDefaults_LowestPriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{Env: EnvDevelopment},
		Storage: Storage{DB: DB{URI: "postgres://localhost/natours"}},
		Auth:    Auth{JWTSecret: "s"},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.App.Env)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 90, cfg.Auth.CookieExpiresInDays)
}
