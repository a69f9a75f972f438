// Package youtube is a tool for retrieving video metadata and captions
// from YouTube. Metadata comes from the oEmbed endpoint, captions from the
// timedtext endpoint.
package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/geminikit/agentpack/schema"
	"github.com/geminikit/agentpack/tools"
)

var ErrInvalidVideoURL = errors.New("youtube: not a recognizable video URL")

// Input is the schema for a video data request.
type Input struct {
	schema.Base
	// URL of the YouTube video.
	URL string `json:"url" jsonschema:"title=url,description=URL of the YouTube video." validate:"required"`
}

func NewInput(link string) *Input {
	return &Input{URL: link}
}

func (s Input) String() string {
	return schema.JSONString(s)
}

// Output carries video metadata and, when enabled, the caption transcript.
type Output struct {
	schema.Base
	// VideoID is the extracted video identifier
	VideoID string `json:"video_id" jsonschema:"title=video_id,description=The video identifier."`
	// Title of the video
	Title string `json:"title,omitempty" jsonschema:"title=title,description=The video title."`
	// Author is the channel name
	Author string `json:"author,omitempty" jsonschema:"title=author,description=The channel name."`
	// ThumbnailURL of the video
	ThumbnailURL string `json:"thumbnail_url,omitempty" jsonschema:"title=thumbnail_url,description=The video thumbnail URL."`
	// Captions is the concatenated caption transcript, empty when
	// unavailable or disabled.
	Captions string `json:"captions,omitempty" jsonschema:"title=captions,description=The caption transcript of the video."`
}

func (s Output) String() string {
	return schema.JSONString(s)
}

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type transcript struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Value string `xml:",chardata"`
	} `xml:"text"`
}

type Config struct {
	tools.Config
	fetchCaptions bool
	language      string
	oembedURL     string
	timedtextURL  string
	httpClient    *http.Client
}

// Tool retrieves YouTube video metadata and captions.
type Tool struct {
	Config
}

var _ tools.AnonymousTool = (*Tool)(nil)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	ret.fetchCaptions = true
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("YouTubeTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Retrieves captions and metadata for YouTube videos.")
	}
	if ret.language == "" {
		ret.language = "en"
	}
	if ret.oembedURL == "" {
		ret.oembedURL = "https://www.youtube.com/oembed"
	}
	if ret.timedtextURL == "" {
		ret.timedtextURL = "https://video.google.com/timedtext"
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

// CaptionsEnabled reports whether caption retrieval is enabled.
func (t *Tool) CaptionsEnabled() bool {
	return t.fetchCaptions
}

// Run fetches metadata for the video and its captions when enabled.
// Missing captions are not an error; the Captions field stays empty so the
// agent can fall back to metadata.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	t.OnStart(ctx, t, input)
	videoID, err := ExtractVideoID(input.URL)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	out := &Output{VideoID: videoID}
	if err := t.fetchMetadata(ctx, input.URL, out); err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	if t.fetchCaptions {
		// Caption availability varies per video; failures degrade to
		// metadata only.
		if captions, err := t.fetchTranscript(ctx, videoID); err == nil {
			out.Captions = captions
		}
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

// Functions implements tools.AnonymousTool.
func (t *Tool) Functions() []tools.Function {
	return []tools.Function{
		{
			Name:        "get_video_data",
			Description: "Retrieve title, channel and caption transcript for a YouTube video URL.",
			Parameters:  tools.Reflect(&Input{}),
			Call: func(ctx context.Context, args json.RawMessage) (any, error) {
				input := new(Input)
				if err := tools.DecodeArgs(args, input); err != nil {
					return nil, err
				}
				return t.Run(ctx, input)
			},
		},
	}
}

func (t *Tool) fetchMetadata(ctx context.Context, videoURL string, out *Output) error {
	values := url.Values{}
	values.Set("url", videoURL)
	values.Set("format", "json")
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", t.oembedURL, values.Encode()), nil)
	if err != nil {
		return err
	}
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("non-200 response from oembed endpoint: %d", httpResp.StatusCode)
	}
	var meta oembedResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&meta); err != nil {
		return err
	}
	out.Title = meta.Title
	out.Author = meta.AuthorName
	out.ThumbnailURL = meta.ThumbnailURL
	return nil
}

func (t *Tool) fetchTranscript(ctx context.Context, videoID string) (string, error) {
	values := url.Values{}
	values.Set("lang", t.language)
	values.Set("v", videoID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", t.timedtextURL, values.Encode()), nil)
	if err != nil {
		return "", err
	}
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("non-200 response from timedtext endpoint: %d", httpResp.StatusCode)
	}
	var tr transcript
	if err := xml.NewDecoder(httpResp.Body).Decode(&tr); err != nil {
		return "", err
	}
	lines := make([]string, 0, len(tr.Texts))
	for _, txt := range tr.Texts {
		line := strings.TrimSpace(html.UnescapeString(txt.Value))
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return "", errors.New("youtube: no captions available")
	}
	return strings.Join(lines, " "), nil
}

// ExtractVideoID pulls the video identifier from the common YouTube URL
// shapes (watch, youtu.be, embed, shorts).
func ExtractVideoID(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", ErrInvalidVideoURL
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return id, nil
		}
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		if id := u.Query().Get("v"); id != "" {
			return id, nil
		}
		for _, prefix := range []string{"/embed/", "/shorts/", "/live/"} {
			if strings.HasPrefix(u.Path, prefix) {
				if id := strings.Trim(strings.TrimPrefix(u.Path, prefix), "/"); id != "" {
					return id, nil
				}
			}
		}
	}
	return "", ErrInvalidVideoURL
}
