package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad_MissingBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_WithDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("VOCAB_FILE", "")
	t.Setenv("NUM_QUESTIONS", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "vocab.toml", cfg.VocabFile)
	assert.Equal(t, 5, cfg.NumQuestions)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("VOCAB_FILE", "genki1.toml")
	t.Setenv("NUM_QUESTIONS", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "genki1.toml", cfg.VocabFile)
	assert.Equal(t, 10, cfg.NumQuestions)
}

func TestLoad_InvalidNumQuestions(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{
			name:  "not a number",
			value: "five",
		},
		{
			name:  "zero",
			value: "0",
		},
		{
			name:  "negative",
			value: "-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BOT_TOKEN", "test_token")
			t.Setenv("NUM_QUESTIONS", tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
