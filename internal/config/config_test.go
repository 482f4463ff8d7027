package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "openai defaults",
			config: Config{
				Secrets: Secrets{OpenAIAPIKey: "sk-test"},
			},
			wantErr: false,
		},
		{
			name:    "missing openai key",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "gemini with keys",
			config: Config{
				Transcription: TranscriptionConfig{Provider: "Gemini"},
				Secrets:       Secrets{GeminiAPIKeys: []string{"k1"}},
			},
			wantErr: false,
		},
		{
			name: "gemini without keys",
			config: Config{
				Transcription: TranscriptionConfig{Provider: "gemini"},
				Secrets:       Secrets{OpenAIAPIKey: "sk-test"},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: Config{
				Transcription: TranscriptionConfig{Provider: "azure"},
				Secrets:       Secrets{OpenAIAPIKey: "sk-test"},
			},
			wantErr: true,
		},
		{
			name: "malformed language",
			config: Config{
				Transcription: TranscriptionConfig{Language: "not a language"},
				Secrets:       Secrets{OpenAIAPIKey: "sk-test"},
			},
			wantErr: true,
		},
		{
			name: "scan extension collides with audio output",
			config: Config{
				Scan:    ScanConfig{Extensions: []string{".mp4", "MP3"}},
				Secrets: Secrets{OpenAIAPIKey: "sk-test"},
			},
			wantErr: true,
		},
		{
			name: "same audio and subtitle extension",
			config: Config{
				Output:  OutputConfig{AudioExt: ".srt"},
				Secrets: Secrets{OpenAIAPIKey: "sk-test"},
			},
			wantErr: true,
		},
		{
			name: "negative timeout",
			config: Config{
				Transcription: TranscriptionConfig{Timeout: -time.Second},
				Secrets:       Secrets{OpenAIAPIKey: "sk-test"},
			},
			wantErr: true,
		},
		{
			name: "unknown log format",
			config: Config{
				Logging: LoggingConfig{Format: "xml"},
				Secrets: Secrets{OpenAIAPIKey: "sk-test"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Secrets: Secrets{OpenAIAPIKey: "sk-test"}}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ProviderOpenAI, cfg.Transcription.Provider)
	assert.Equal(t, "whisper-1", cfg.Transcription.Model)
	assert.Equal(t, "en", cfg.Transcription.Language)
	assert.Equal(t, 10*time.Minute, cfg.Transcription.Timeout)
	assert.Equal(t, "ffmpeg", cfg.FFmpeg.Binary)
	assert.Equal(t, []string{".mp4"}, cfg.Scan.Extensions)
	assert.Equal(t, ".mp3", cfg.Output.AudioExt)
	assert.Equal(t, ".srt", cfg.Output.SubtitleExt)
	assert.False(t, cfg.Output.DocxTranscript)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Watch.SettleDelay)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestValidateNormalizes(t *testing.T) {
	cfg := Config{
		Transcription: TranscriptionConfig{Language: "en-US"},
		Scan:          ScanConfig{Extensions: []string{"MP4", " .mov "}},
		Output:        OutputConfig{AudioExt: "M4A"},
		Secrets:       Secrets{OpenAIAPIKey: "sk-test"},
	}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "en", cfg.Transcription.Language)
	assert.Equal(t, []string{".mp4", ".mov"}, cfg.Scan.Extensions)
	assert.Equal(t, ".m4a", cfg.Output.AudioExt)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "srtgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvOpenAIAPIKey, "sk-from-env")
	t.Setenv(EnvOpenAIBaseURL, "")
	t.Setenv(EnvGeminiAPIKeys, "")

	path := writeConfig(t, `
transcription:
  language: "de"
  prompt: "Vaadin, Hilla"
  timeout: 90s

ffmpeg:
  binary: "/usr/local/bin/ffmpeg"

scan:
  extensions: [".mp4", ".mkv"]

output:
  docx_transcript: true

watch:
  enabled: true
  settle_delay: 500ms

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-from-env", cfg.Secrets.OpenAIAPIKey)
	assert.Equal(t, "de", cfg.Transcription.Language)
	assert.Equal(t, "Vaadin, Hilla", cfg.Transcription.Prompt)
	assert.Equal(t, 90*time.Second, cfg.Transcription.Timeout)
	assert.Equal(t, "/usr/local/bin/ffmpeg", cfg.FFmpeg.Binary)
	assert.Equal(t, []string{".mp4", ".mkv"}, cfg.Scan.Extensions)
	assert.True(t, cfg.Output.DocxTranscript)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.SettleDelay)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadGeminiKeysFromEnv(t *testing.T) {
	t.Setenv(EnvOpenAIAPIKey, "")
	t.Setenv(EnvGeminiAPIKeys, " k1, ,k2 ")

	path := writeConfig(t, "transcription:\n  provider: gemini\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"k1", "k2"}, cfg.Secrets.GeminiAPIKeys)
	assert.Equal(t, "gemini-2.5-flash", cfg.Transcription.Model)
}

func TestLoadBaseURLFromEnv(t *testing.T) {
	t.Setenv(EnvOpenAIAPIKey, "sk-test")
	t.Setenv(EnvOpenAIBaseURL, "http://localhost:9999/v1")

	path := writeConfig(t, "transcription:\n  base_url: http://ignored/v1\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/v1", cfg.Transcription.BaseURL)
}

func TestLoadEmptyFile(t *testing.T) {
	t.Setenv(EnvOpenAIAPIKey, "sk-test")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "whisper-1", cfg.Transcription.Model)
}

func TestLoadUnknownField(t *testing.T) {
	t.Setenv(EnvOpenAIAPIKey, "sk-test")

	_, err := Load(writeConfig(t, "whisper:\n  threads: 8\n"))
	assert.Error(t, err)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	assert.Error(t, err, "Load() should return error for an explicitly named missing file")
}

func TestLoadDefaultPathMayBeMissing(t *testing.T) {
	t.Setenv(EnvOpenAIAPIKey, "sk-test")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ".mp4", cfg.Scan.Extensions[0])
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv(EnvOpenAIAPIKey, "")
	t.Chdir(t.TempDir())

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvOpenAIAPIKey)
}

func TestLoadExampleFile(t *testing.T) {
	t.Setenv(EnvOpenAIAPIKey, "sk-test")
	t.Setenv(EnvOpenAIBaseURL, "")

	cfg, err := Load(filepath.Join("..", "..", "srtgen.example.yaml"))
	require.NoError(t, err)

	defaults := &Config{Secrets: Secrets{OpenAIAPIKey: "sk-test"}}
	require.NoError(t, defaults.Validate())
	assert.Equal(t, defaults, cfg)
}
