package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Transcription TranscriptionConfig `yaml:"transcription"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	Scan          ScanConfig          `yaml:"scan"`
	Output        OutputConfig        `yaml:"output"`
	Watch         WatchConfig         `yaml:"watch"`
	Logging       LoggingConfig       `yaml:"logging"`

	// Secrets are only ever read from the environment.
	Secrets Secrets `yaml:"-"`
}

type TranscriptionConfig struct {
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	Language string        `yaml:"language"`
	Prompt   string        `yaml:"prompt"`
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
}

type FFmpegConfig struct {
	Binary string `yaml:"binary"`
}

type ScanConfig struct {
	Extensions []string `yaml:"extensions"`
}

type OutputConfig struct {
	AudioExt       string `yaml:"audio_ext"`
	SubtitleExt    string `yaml:"subtitle_ext"`
	DocxTranscript bool   `yaml:"docx_transcript"`
}

type WatchConfig struct {
	Enabled     bool          `yaml:"enabled"`
	SettleDelay time.Duration `yaml:"settle_delay"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Secrets struct {
	OpenAIAPIKey  string
	GeminiAPIKeys []string
}

func (c *Config) Validate() error {
	if c.Transcription.Provider == "" {
		c.Transcription.Provider = ProviderOpenAI
	}
	c.Transcription.Provider = strings.ToLower(strings.TrimSpace(c.Transcription.Provider))

	switch c.Transcription.Provider {
	case ProviderOpenAI:
		if c.Secrets.OpenAIAPIKey == "" {
			return fmt.Errorf("%s is required for the openai provider", EnvOpenAIAPIKey)
		}
		if c.Transcription.Model == "" {
			c.Transcription.Model = "whisper-1"
		}
	case ProviderGemini:
		if len(c.Secrets.GeminiAPIKeys) == 0 {
			return fmt.Errorf("%s is required for the gemini provider", EnvGeminiAPIKeys)
		}
		if c.Transcription.Model == "" {
			c.Transcription.Model = "gemini-2.5-flash"
		}
	default:
		return fmt.Errorf("transcription.provider: unsupported value %q", c.Transcription.Provider)
	}

	if c.Transcription.Language == "" {
		c.Transcription.Language = "en"
	}
	lang, err := normalizeLanguage(c.Transcription.Language)
	if err != nil {
		return err
	}
	c.Transcription.Language = lang

	if c.Transcription.Timeout < 0 {
		return fmt.Errorf("transcription.timeout must not be negative")
	}
	if c.Transcription.Timeout == 0 {
		c.Transcription.Timeout = 10 * time.Minute
	}

	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = "ffmpeg"
	}

	if len(c.Scan.Extensions) == 0 {
		c.Scan.Extensions = []string{".mp4"}
	}

	c.Output.AudioExt = normalizeExt(c.Output.AudioExt, ".mp3")
	c.Output.SubtitleExt = normalizeExt(c.Output.SubtitleExt, ".srt")
	exts := make([]string, 0, len(c.Scan.Extensions))
	for _, ext := range c.Scan.Extensions {
		e := normalizeExt(ext, "")
		if e == "" {
			return fmt.Errorf("scan.extensions: empty extension")
		}
		if e == c.Output.AudioExt || e == c.Output.SubtitleExt {
			return fmt.Errorf("scan.extensions: %s collides with an output extension", e)
		}
		exts = append(exts, e)
	}
	c.Scan.Extensions = exts
	if c.Output.AudioExt == c.Output.SubtitleExt {
		return fmt.Errorf("output.audio_ext and output.subtitle_ext must differ")
	}

	if c.Watch.SettleDelay == 0 {
		c.Watch.SettleDelay = 2 * time.Second
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}

	return nil
}

// normalizeLanguage accepts any BCP 47 tag and reduces it to the two-letter
// base code the transcription services expect.
func normalizeLanguage(tag string) (string, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("transcription.language: %w", err)
	}
	base, conf := t.Base()
	if conf == language.No {
		return "", fmt.Errorf("transcription.language: unknown language %q", tag)
	}
	return base.String(), nil
}

func normalizeExt(ext, fallback string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return fallback
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
