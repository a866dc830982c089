// internal/adapters/vision/openai.go
package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pantryos/pantry-be/internal/core/ports"
)

// unableToRead is the sentinel the extraction prompt instructs the model
// to answer when no barcode is legible. It never leaves this package.
const unableToRead = "UNABLE_TO_READ"

const extractionPrompt = `Please analyze this barcode image and extract the numerical code shown in the barcode.
Return ONLY the numerical code of the barcode, nothing else.
If there is no barcode or the code cannot be extracted, respond with "UNABLE_TO_READ".`

// Recognizer reads barcodes from images with a vision-capable chat model.
type Recognizer struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

// Statically assert that *Recognizer implements the BarcodeRecognizer interface.
var _ ports.BarcodeRecognizer = (*Recognizer)(nil)

// Option customizes the recognizer.
type Option func(*Recognizer) []option.RequestOption

// WithBaseURL points the client at an alternate API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(*Recognizer) []option.RequestOption {
		return []option.RequestOption{option.WithBaseURL(baseURL)}
	}
}

// NewRecognizer creates a new vision recognizer
func NewRecognizer(apiKey, model string, logger *slog.Logger, opts ...Option) *Recognizer {
	r := &Recognizer{
		model:  model,
		logger: logger.With(slog.String("component", "vision_recognizer")),
	}
	if r.model == "" {
		r.model = openai.ChatModelGPT4o
	}

	requestOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	for _, opt := range opts {
		requestOpts = append(requestOpts, opt(r)...)
	}
	r.client = openai.NewClient(requestOpts...)

	return r
}

// Recognize submits the image with the extraction prompt and interprets
// the model's answer. detected=false means the model saw no readable code.
func (r *Recognizer) Recognize(ctx context.Context, image []byte) (string, bool, error) {
	dataURI := fmt.Sprintf("data:%s;base64,%s",
		http.DetectContentType(image),
		base64.StdEncoding.EncodeToString(image))

	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(extractionPrompt),
		openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: dataURI,
		}),
	}

	resp, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    r.model,
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(parts)},
	})
	if err != nil {
		return "", false, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", false, fmt.Errorf("empty completion response")
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" || strings.Contains(answer, unableToRead) {
		return "", false, nil
	}

	r.logger.DebugContext(ctx, "barcode extracted",
		slog.String("model", r.model))

	return answer, true, nil
}
