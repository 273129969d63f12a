package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", settings.Host)
	assert.Equal(t, 5001, settings.Port)
	assert.Equal(t, "./vector_db", settings.VectorDBPath)
	assert.Equal(t, "talan_documents", settings.VectorCollection)
	assert.Equal(t, int64(16*1024*1024), settings.MaxContentLength)
	assert.Equal(t, 8, settings.AnalysisBatchSize)
	assert.Equal(t, 3, settings.LLMConcurrency)
	assert.Equal(t, time.Duration(0), settings.AgentRunInterval)
	assert.Equal(t, []string{"*"}, settings.CORSAllowOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ANALYSIS_BATCH_SIZE", "4")
	t.Setenv("AGENT_RUN_INTERVAL", "15m")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, settings.Port)
	assert.Equal(t, 4, settings.AnalysisBatchSize)
	assert.Equal(t, 15*time.Minute, settings.AgentRunInterval)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, settings.CORSAllowOrigins)
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port", key: "PORT", value: "not-a-port"},
		{name: "max content length", key: "MAX_CONTENT_LENGTH", value: "16MiB"},
		{name: "batch size", key: "ANALYSIS_BATCH_SIZE", value: "eight"},
		{name: "run interval", key: "AGENT_RUN_INTERVAL", value: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestConcurrencyClamp(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{value: "1", want: 2},
		{value: "2", want: 2},
		{value: "3", want: 3},
		{value: "4", want: 4},
		{value: "9", want: 4},
	}

	for _, tt := range tests {
		t.Setenv("LLM_CONCURRENCY", tt.value)
		settings, err := Load()
		require.NoError(t, err)
		assert.Equal(t, tt.want, settings.LLMConcurrency, "LLM_CONCURRENCY=%s", tt.value)
	}
}

func TestValidate(t *testing.T) {
	valid := Settings{
		BoardAPIKey:     "board-key",
		LLMAPIKey:       "llm-key",
		CryptoSecretKey: "secret",
	}
	assert.NoError(t, valid.Validate())

	missingBoard := valid
	missingBoard.BoardAPIKey = ""
	assert.ErrorContains(t, missingBoard.Validate(), "BOARD_API_KEY")

	missingLLM := valid
	missingLLM.LLMAPIKey = ""
	assert.ErrorContains(t, missingLLM.Validate(), "LLM_API_KEY")

	missingSecret := valid
	missingSecret.CryptoSecretKey = ""
	assert.ErrorContains(t, missingSecret.Validate(), "CRYPTO_SECRET_KEY")
}

func TestAddr(t *testing.T) {
	s := Settings{Host: "127.0.0.1", Port: 5001}
	assert.Equal(t, "127.0.0.1:5001", s.Addr())
}
