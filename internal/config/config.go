// Package config loads citizenprep settings from an optional YAML file and
// CITIZENPREP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/citizenprep/internal/interview"
	"github.com/abhisek/citizenprep/internal/llm"
)

// EnvPrefix prefixes every environment variable, e.g. CITIZENPREP_LLM_PROVIDER.
const EnvPrefix = "CITIZENPREP"

// Config is the resolved application configuration.
type Config struct {
	Log       LogConfig                  `mapstructure:"log"`
	DB        string                     `mapstructure:"db"`
	LLM       llm.Config                 `mapstructure:"llm"`
	Interview interview.CompressorConfig `mapstructure:"interview"`
}

// LogConfig selects the zap encoder and level.
type LogConfig struct {
	Mode  string `mapstructure:"mode"`
	Level string `mapstructure:"level"`
}

// Load reads configuration. path may name a YAML file; when empty, a
// citizenprep.yaml in the working directory or $HOME/.config/citizenprep
// is used if present. Environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("citizenprep")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/citizenprep")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()

	v.SetDefault("log.mode", "dev")
	v.SetDefault("log.level", "warn")
	v.SetDefault("db", "")

	v.SetDefault("llm.provider", d.Provider)
	v.SetDefault("llm.timeout", d.Timeout)

	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.anthropic.base_url", d.Anthropic.BaseURL)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", d.OpenAI.BaseURL)
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", d.OpenRouter.BaseURL)

	v.SetDefault("llm.retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.Retry.Multiplier)

	ic := interview.DefaultCompressorConfig()
	v.SetDefault("interview.max_turns", ic.MaxTurns)
	v.SetDefault("interview.keep_turns", ic.KeepTurns)
	v.SetDefault("interview.max_tokens", ic.MaxTokens)
	v.SetDefault("interview.temperature", ic.Temperature)
}
