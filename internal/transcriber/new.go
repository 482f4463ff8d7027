package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/srtgen/internal/config"
	"github.com/nguyentantai21042004/srtgen/internal/logger"
)

// New builds the Transcriber selected by cfg.Transcription.Provider.
func New(cfg *config.Config, log logger.Logger) (Transcriber, error) {
	tc := cfg.Transcription

	switch tc.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(OpenAIConfig{
			APIKey:   cfg.Secrets.OpenAIAPIKey,
			BaseURL:  tc.BaseURL,
			Model:    tc.Model,
			Language: tc.Language,
			Prompt:   tc.Prompt,
			Timeout:  tc.Timeout,
		}, log)
	case config.ProviderGemini:
		return NewGemini(GeminiConfig{
			APIKeys:  cfg.Secrets.GeminiAPIKeys,
			Model:    tc.Model,
			Language: tc.Language,
			Prompt:   tc.Prompt,
			Timeout:  tc.Timeout,
		}, log)
	default:
		return nil, fmt.Errorf("unsupported transcription provider %q", tc.Provider)
	}
}
