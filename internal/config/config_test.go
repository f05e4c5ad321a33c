package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/lessonloop/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment does
// not leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LESSONLOOP_LLM_PROVIDER", "GEMINI_API_KEY", "OPENAI_API_KEY", "OPENAI_BASE_URL",
		"ANTHROPIC_API_KEY", "ANTHROPIC_BASE_URL", "OPENROUTER_API_KEY", "LESSONLOOP_GEMINI_MODEL",
		"LESSONLOOP_OPENAI_MODEL", "LESSONLOOP_ANTHROPIC_MODEL", "LESSONLOOP_OPENROUTER_MODEL",
		"LESSONLOOP_TIMEOUT", "LESSONLOOP_MOCK_DELAY", "LESSONLOOP_LOG_FILE", "LESSONLOOP_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_NoCredentialIsOffline(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderMock, cfg.LLM.Provider)
	assert.True(t, cfg.LLM.Offline())
	assert.Equal(t, time.Second, cfg.Agents.MockDelay)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "lessonloop.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "gemini-flash", cfg.LLM.Gemini.Model)
	assert.Empty(t, cfg.EnvFile)
}

func TestLoad_GeminiKeyFromFile(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, "GEMINI_API_KEY=g-file\nLESSONLOOP_MOCK_DELAY=250ms\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "g-file", cfg.LLM.Gemini.APIKey)
	assert.Equal(t, 250*time.Millisecond, cfg.Agents.MockDelay)
	assert.Equal(t, path, cfg.EnvFile)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, "GEMINI_API_KEY=g-file\nLESSONLOOP_GEMINI_MODEL=gemini-pro\n")
	t.Setenv("GEMINI_API_KEY", "g-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "g-env", cfg.LLM.Gemini.APIKey)
	assert.Equal(t, "gemini-pro", cfg.LLM.Gemini.Model)
}

func TestLoad_DiscoveryOrder(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "or")
	t.Setenv("ANTHROPIC_API_KEY", "an")

	cfg, err := Load(filepath.Join(t.TempDir(), "none"))
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderAnthropic, cfg.LLM.Provider)

	t.Setenv("OPENAI_API_KEY", "oa")
	cfg, err = Load(filepath.Join(t.TempDir(), "none"))
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
}

func TestLoad_ExplicitProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("LESSONLOOP_LLM_PROVIDER", "Mock")

	cfg, err := Load(filepath.Join(t.TempDir(), "none"))
	require.NoError(t, err)
	assert.True(t, cfg.LLM.Offline())
}

func TestLoad_AnthropicGateway(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "an")
	t.Setenv("ANTHROPIC_BASE_URL", "http://proxy.internal:8080")

	cfg, err := Load(filepath.Join(t.TempDir(), "none"))
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "http://proxy.internal:8080", cfg.LLM.Anthropic.BaseURL)
}

func TestLoad_ExplicitProviderWithoutKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("LESSONLOOP_LLM_PROVIDER", "openai")

	_, err := Load(filepath.Join(t.TempDir(), "none"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoad_BadValues(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"LESSONLOOP_TIMEOUT", "soon", "LESSONLOOP_TIMEOUT"},
		{"LESSONLOOP_MOCK_DELAY", "-1s", "LESSONLOOP_MOCK_DELAY"},
		{"LESSONLOOP_LOG_LEVEL", "loud", "LESSONLOOP_LOG_LEVEL"},
		{"LESSONLOOP_LLM_PROVIDER", "watson", "unknown LLM provider"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load(filepath.Join(t.TempDir(), "none"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
