package translate

import (
	"context"
	"fmt"

	gtranslate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// Google calls the Cloud Translation v2 API with an API key.
type Google struct {
	client *gtranslate.Client
	source language.Tag
	target language.Tag
}

// NewGoogle returns a Google translator for English to Arabic, or nil when
// apiKey is empty. Extra options (an endpoint, an HTTP client) are passed to
// the Cloud client after the key.
func NewGoogle(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Google, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := gtranslate.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("google translate client: %w", err)
	}
	return &Google{client: client, source: language.English, target: language.Arabic}, nil
}

// Translate implements Translator.
func (g *Google) Translate(ctx context.Context, text string) (string, error) {
	out, err := g.client.Translate(ctx, []string{text}, g.target, &gtranslate.Options{
		Source: g.source,
		Format: gtranslate.Text,
	})
	if err != nil {
		return "", fmt.Errorf("%w: google: %v", ErrUnavailable, err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("%w: google: empty response", ErrUnavailable)
	}
	return out[0].Text, nil
}

// Close releases the underlying client.
func (g *Google) Close() error {
	return g.client.Close()
}
