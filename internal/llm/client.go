package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// completion is the raw output of one backend call.
type completion struct {
	Text  string
	Model string
	Usage Usage
	Stop  string
}

// backend is one vendor API. It only speaks the wire protocol; model
// selection, truncation and schema checks live in Client.
type backend interface {
	complete(ctx context.Context, model string, req Request) (completion, error)
}

// Client is the Provider for a real vendor backend.
type Client struct {
	name  string
	model string
	be    backend
}

// Backend returns the vendor name, e.g. "anthropic".
func (c *Client) Backend() string { return c.name }

func (c *Client) ModelID() string { return c.model }

func (c *Client) Generate(ctx context.Context, req Request) (*Response, error) {
	model := c.model
	if req.Model != "" {
		model = resolveModel(req.Model)
	}

	out, err := c.be.complete(ctx, model, req)
	if err != nil {
		return nil, err
	}
	if out.Model == "" {
		out.Model = model
	}

	content := json.RawMessage(out.Text)
	if req.Schema != nil {
		if out.Stop == StopMaxTokens {
			return nil, &ErrTruncated{Content: content, MaxTokens: req.MaxTokens}
		}
		if err := req.Schema.Validate(content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content:    content,
		Usage:      out.Usage,
		Model:      out.Model,
		StopReason: out.Stop,
	}, nil
}

func errNoText(vendor string) error {
	return &ErrInvalidResponse{Err: fmt.Errorf("%s reply had no text", vendor)}
}
