package remote

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/insight-flow/internal/logger"
)

type implGemini struct {
	client      *genai.Client
	temperature float32
	logger      logger.Logger
}

// NewGemini wraps a genai client as a Service. The temperature is fixed low
// so repeated runs over the same input stay as reproducible as the backend
// allows.
func NewGemini(client *genai.Client, temperature float32, log logger.Logger) Service {
	return &implGemini{
		client:      client,
		temperature: temperature,
		logger:      log,
	}
}

// NewClient builds the underlying genai client from an API key. The key is
// passed through to the SDK and never logged.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

func (g *implGemini) Upload(ctx context.Context, r io.Reader, mimeType, displayName string) (Handle, error) {
	file, err := g.client.Files.Upload(ctx, r, &genai.UploadFileConfig{
		MIMEType:    mimeType,
		DisplayName: displayName,
	})
	if err != nil {
		return Handle{}, fmt.Errorf("%w: %s: %v", ErrUpload, displayName, err)
	}

	g.logger.Debug(ctx, "Uploaded %s as %s", displayName, file.Name)
	return handleFromFile(file), nil
}

func (g *implGemini) Status(ctx context.Context, name string) (Handle, error) {
	file, err := g.client.Files.Get(ctx, name, nil)
	if err != nil {
		return Handle{}, fmt.Errorf("%w: get %s: %v", ErrTransport, name, err)
	}
	return handleFromFile(file), nil
}

func (g *implGemini) Generate(ctx context.Context, instructions string, handle Handle, model string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(handle.URI, handle.MIMEType),
			genai.NewPartFromText(instructions),
		}, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrGeneration, handle.Name, err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if text != "" {
			return text, nil
		}
	}

	return "", fmt.Errorf("%w: empty response for %s", ErrGeneration, handle.Name)
}

func handleFromFile(file *genai.File) Handle {
	return Handle{
		URI:      file.URI,
		Name:     file.Name,
		MIMEType: file.MIMEType,
		State:    stateFromFile(file.State),
	}
}

func stateFromFile(s genai.FileState) State {
	switch s {
	case genai.FileStateActive:
		return StateReady
	case genai.FileStateFailed:
		return StateFailed
	case genai.FileStateProcessing:
		return StateProcessing
	default:
		return StatePending
	}
}
