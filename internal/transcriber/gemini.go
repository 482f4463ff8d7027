package transcriber

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/srtgen/internal/logger"
)

const geminiPrompt = `Transcribe the spoken %s audio in the attached file.
Return the transcript in SRT subtitle format: cues numbered sequentially from 1,
each with a "HH:MM:SS,mmm --> HH:MM:SS,mmm" timing line followed by the spoken text.
ONLY OUTPUT THE SRT FILE CONTENTS, DO NOT OUTPUT ANYTHING ELSE.`

// GeminiConfig configures the Gemini backend. Keys are tried in order and
// rotated on rate-limit errors.
type GeminiConfig struct {
	APIKeys  []string
	Model    string
	Language string
	Prompt   string
	Timeout  time.Duration
}

// contentGenerator is the part of *genai.Models the backend uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiTranscriber struct {
	apiKeys      []string
	currentKey   int
	model        string
	language     string
	prompt       string
	timeout      time.Duration
	logger       logger.Logger
	newGenerator func(ctx context.Context, apiKey string) (contentGenerator, error)
}

// NewGemini creates a Transcriber backed by the Gemini API.
func NewGemini(cfg GeminiConfig, log logger.Logger) (Transcriber, error) {
	return newGemini(cfg, log, newGenaiGenerator)
}

func newGemini(cfg GeminiConfig, log logger.Logger, gen func(context.Context, string) (contentGenerator, error)) (*geminiTranscriber, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, errors.New("gemini: at least one API key is required")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &geminiTranscriber{
		apiKeys:      cfg.APIKeys,
		model:        model,
		language:     cfg.Language,
		prompt:       cfg.Prompt,
		timeout:      cfg.Timeout,
		logger:       log,
		newGenerator: gen,
	}, nil
}

func newGenaiGenerator(ctx context.Context, apiKey string) (contentGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

func (g *geminiTranscriber) Name() string {
	return "gemini/" + g.model
}

// Transcribe sends the audio inline and asks the model for SRT text.
func (g *geminiTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{Text: g.instructions()},
			{InlineData: &genai.Blob{Data: data, MIMEType: audioMIMEType(audioPath)}},
		},
	}}

	text, err := g.generate(ctx, contents)
	if err != nil {
		return "", fmt.Errorf("gemini transcription: %w", err)
	}

	text = stripCodeFence(text)
	if err := checkSRT(text); err != nil {
		return "", fmt.Errorf("gemini transcription: %w", err)
	}
	return text, nil
}

func (g *geminiTranscriber) instructions() string {
	lang := g.language
	if lang == "" {
		lang = "en"
	}
	prompt := fmt.Sprintf(geminiPrompt, lang)
	if g.prompt != "" {
		prompt += "\nVocabulary and spellings to use: " + g.prompt
	}
	return prompt
}

// generate calls the model, rotating API keys on 429 / quota errors.
func (g *geminiTranscriber) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	var lastErr error

	for range len(g.apiKeys) {
		key := g.apiKeys[g.currentKey]

		gen, err := g.newGenerator(ctx, key)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := gen.GenerateContent(ctx, g.model, contents, nil)
		if err != nil {
			if isQuotaError(err) {
				g.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			if isAuthError(err) {
				return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				if part != nil && part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			return text.String(), nil
		}

		return "", fmt.Errorf("%w: no candidates in response", ErrUnexpectedResponse)
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *geminiTranscriber) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func isAuthError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "API_KEY_INVALID") || strings.Contains(msg, "PERMISSION_DENIED") || strings.Contains(msg, "401")
}

func audioMIMEType(path string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); strings.HasPrefix(t, "audio/") {
		return t
	}
	return "audio/mpeg"
}

// stripCodeFence removes a Markdown fence the model sometimes wraps around
// its answer. Unfenced text is returned untouched.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") || len(trimmed) < 6 {
		return s
	}
	body := strings.TrimSuffix(trimmed, "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		return s
	}
	return strings.TrimSpace(body) + "\n"
}
