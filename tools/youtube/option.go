package youtube

import "net/http"

type Option func(*Config)

// WithCaptions toggles caption retrieval.
func WithCaptions(enabled bool) Option {
	return func(c *Config) {
		c.fetchCaptions = enabled
	}
}

// WithLanguage sets the caption language code.
func WithLanguage(lang string) Option {
	return func(c *Config) {
		c.language = lang
	}
}

func WithOembedURL(u string) Option {
	return func(c *Config) {
		c.oembedURL = u
	}
}

func WithTimedtextURL(u string) Option {
	return func(c *Config) {
		c.timedtextURL = u
	}
}

func WithHTTPClient(clt *http.Client) Option {
	return func(c *Config) {
		c.httpClient = clt
	}
}
