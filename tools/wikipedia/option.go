package wikipedia

import "net/http"

type Option func(*Config)

func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.baseURL = baseURL
	}
}

func WithMaxResults(n int) Option {
	return func(c *Config) {
		c.maxResults = n
	}
}

// WithIngestor feeds fetched articles into a knowledge base.
func WithIngestor(ingestor Ingestor) Option {
	return func(c *Config) {
		c.ingestor = ingestor
	}
}

func WithHTTPClient(clt *http.Client) Option {
	return func(c *Config) {
		c.httpClient = clt
	}
}
