package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/abhisek/lessonloop/internal/agents"
	"github.com/abhisek/lessonloop/internal/llm"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// DefaultEnvFile is read when no other dotenv path is given.
const DefaultEnvFile = ".env"

// Config is the process configuration, read once at startup.
type Config struct {
	LLM    llm.Config
	Agents agents.Config

	LogFile  string
	LogLevel string

	// EnvFile is the dotenv file that was read, or "" when none was found.
	EnvFile string
}

// credentials lists provider keys in discovery order.
var credentials = []struct {
	provider string
	key      string
}{
	{llm.ProviderGemini, "GEMINI_API_KEY"},
	{llm.ProviderOpenAI, "OPENAI_API_KEY"},
	{llm.ProviderAnthropic, "ANTHROPIC_API_KEY"},
	{llm.ProviderOpenRouter, "OPENROUTER_API_KEY"},
}

// Load reads envFile (a missing file is fine) and the process environment.
// Environment variables win over the file. An empty envFile means
// DefaultEnvFile.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	v := viper.New()
	v.SetConfigType("env")

	defaults := llm.DefaultConfig()
	agentDefaults := agents.DefaultConfig()
	v.SetDefault("lessonloop_gemini_model", defaults.Gemini.Model)
	v.SetDefault("lessonloop_openai_model", defaults.OpenAI.Model)
	v.SetDefault("lessonloop_anthropic_model", defaults.Anthropic.Model)
	v.SetDefault("lessonloop_openrouter_model", defaults.OpenRouter.Model)
	v.SetDefault("lessonloop_timeout", defaults.Timeout.String())
	v.SetDefault("lessonloop_mock_delay", agentDefaults.MockDelay.String())
	v.SetDefault("lessonloop_log_file", "lessonloop.log")
	v.SetDefault("lessonloop_log_level", "info")

	for _, key := range []string{
		"LESSONLOOP_LLM_PROVIDER",
		"GEMINI_API_KEY",
		"OPENAI_API_KEY",
		"OPENAI_BASE_URL",
		"ANTHROPIC_API_KEY",
		"ANTHROPIC_BASE_URL",
		"OPENROUTER_API_KEY",
		"LESSONLOOP_GEMINI_MODEL",
		"LESSONLOOP_OPENAI_MODEL",
		"LESSONLOOP_ANTHROPIC_MODEL",
		"LESSONLOOP_OPENROUTER_MODEL",
		"LESSONLOOP_TIMEOUT",
		"LESSONLOOP_MOCK_DELAY",
		"LESSONLOOP_LOG_FILE",
		"LESSONLOOP_LOG_LEVEL",
	} {
		v.BindEnv(strings.ToLower(key), key)
	}
	v.AutomaticEnv()

	var cfg Config
	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
		cfg.EnvFile = envFile
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("stat %s: %w", envFile, err)
	}

	timeout, err := duration(v, "lessonloop_timeout")
	if err != nil {
		return Config{}, err
	}
	mockDelay, err := duration(v, "lessonloop_mock_delay")
	if err != nil {
		return Config{}, err
	}

	cfg.LLM = llm.Config{
		Provider: strings.ToLower(strings.TrimSpace(v.GetString("lessonloop_llm_provider"))),
		Gemini: llm.GeminiConfig{
			APIKey: v.GetString("gemini_api_key"),
			Model:  v.GetString("lessonloop_gemini_model"),
		},
		OpenAI: llm.OpenAIConfig{
			APIKey:  v.GetString("openai_api_key"),
			Model:   v.GetString("lessonloop_openai_model"),
			BaseURL: v.GetString("openai_base_url"),
		},
		Anthropic: llm.AnthropicConfig{
			APIKey:  v.GetString("anthropic_api_key"),
			Model:   v.GetString("lessonloop_anthropic_model"),
			BaseURL: v.GetString("anthropic_base_url"),
		},
		OpenRouter: llm.OpenRouterConfig{
			APIKey: v.GetString("openrouter_api_key"),
			Model:  v.GetString("lessonloop_openrouter_model"),
		},
		Timeout: timeout,
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = discoverProvider(v)
	}

	cfg.Agents = agentDefaults
	cfg.Agents.MockDelay = mockDelay

	cfg.LogFile = v.GetString("lessonloop_log_file")
	cfg.LogLevel = v.GetString("lessonloop_log_level")

	return cfg, cfg.Validate()
}

// Validate checks the provider selection and log level.
func (c Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LESSONLOOP_LOG_LEVEL: %w", err)
	}
	if c.Agents.MockDelay < 0 {
		return fmt.Errorf("LESSONLOOP_MOCK_DELAY must not be negative")
	}
	return nil
}

// discoverProvider picks the first provider whose key is set, else mock.
func discoverProvider(v *viper.Viper) string {
	for _, c := range credentials {
		if strings.TrimSpace(v.GetString(strings.ToLower(c.key))) != "" {
			return c.provider
		}
	}
	return llm.ProviderMock
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", strings.ToUpper(key), err)
	}
	return d, nil
}
