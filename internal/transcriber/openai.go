package transcriber

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/srtgen/internal/logger"
)

// OpenAIConfig holds everything the Whisper backend needs. The API key is
// passed in explicitly; nothing is read from the environment here.
type OpenAIConfig struct {
	APIKey   string
	BaseURL  string
	Model    string
	Language string
	Prompt   string
	Timeout  time.Duration
}

type openAITranscriber struct {
	client   *openai.Client
	model    string
	language string
	prompt   string
	logger   logger.Logger
}

// NewOpenAI creates a Transcriber backed by the OpenAI audio transcription endpoint.
func NewOpenAI(cfg OpenAIConfig, log logger.Logger) (Transcriber, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: API key is required")
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}

	return &openAITranscriber{
		client:   openai.NewClientWithConfig(oc),
		model:    model,
		language: cfg.Language,
		prompt:   cfg.Prompt,
		logger:   log,
	}, nil
}

func (t *openAITranscriber) Name() string {
	return "openai/" + t.model
}

// Transcribe streams the audio file to the service and asks for SRT output.
// For text formats the endpoint answers with the bare subtitle body instead of
// a JSON object; go-openai surfaces that body verbatim in AudioResponse.Text.
func (t *openAITranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	t.logger.Debug(ctx, "Uploading %s to %s (language=%s)", audioPath, t.Name(), t.language)

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
		Reader:   f,
		Prompt:   t.prompt,
		Language: t.language,
		Format:   openai.AudioResponseFormatSRT,
	})
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", classifyOpenAIError(err))
	}

	if err := checkSRT(resp.Text); err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}

	return resp.Text, nil
}

func classifyOpenAIError(err error) error {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return err
}
