// Package gemini wraps the Gemini API client. Credentials are passed
// explicitly at construction and the client lifecycle belongs to the
// caller; nothing is read from the environment at import time.
package gemini

import (
	"context"
	"errors"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrMissingAPIKey = errors.New("gemini: missing API key")

// Client is a handle to the Gemini backend shared by agents and embedders.
type Client struct {
	c *genai.Client
}

// NewClient builds a Gemini client from an API key. Extra client options
// (custom endpoint, transport) are passed through.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	clientOpts := make([]option.ClientOption, 0, len(opts)+1)
	clientOpts = append(clientOpts, option.WithAPIKey(apiKey))
	clientOpts = append(clientOpts, opts...)
	c, err := genai.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{c: c}, nil
}

// GenerativeModel returns the named generative model.
func (c *Client) GenerativeModel(name string) *genai.GenerativeModel {
	return c.c.GenerativeModel(name)
}

// EmbeddingModel returns the named embedding model.
func (c *Client) EmbeddingModel(name string) *genai.EmbeddingModel {
	return c.c.EmbeddingModel(name)
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.c.Close()
}
