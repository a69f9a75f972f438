// Package newsreader is a tool for fetching news articles and converting
// them to markdown for summarization.
package newsreader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/atomic"

	"github.com/geminikit/agentpack/schema"
	"github.com/geminikit/agentpack/tools"
)

// Input schema for the NewsReaderTool.
type Input struct {
	schema.Base
	// URL of the article to read.
	URL string `json:"url,omitempty" jsonschema:"title=url,description=URL of the article to read." validate:"required,url"`
	// IncludeLinks Whether to preserve hyperlinks in the markdown output.
	IncludeLinks bool `json:"include_links,omitempty" jsonschema:"title=include_links,description=Whether to preserve hyperlinks in the markdown output."`
}

func NewInput(link string, includeLinks bool) *Input {
	return &Input{
		URL:          link,
		IncludeLinks: includeLinks,
	}
}

func (s Input) String() string {
	return schema.JSONString(s)
}

// Metadata Schema for article metadata
type Metadata struct {
	schema.Base
	// Title is the title of the article.
	Title string `json:"title,omitempty" jsonschema:"title=title,description=The title of the article."`
	// Author is the author of the article.
	Author string `json:"author,omitempty" jsonschema:"title=author,description=The author of the article."`
	// Description is the meta description of the article.
	Description string `json:"description,omitempty" jsonschema:"title=description,description=The meta description of the article."`
	// Keywords is the meta keywords of the article.
	Keywords string `json:"keywords,omitempty" jsonschema:"title=keywords,description=The meta keywords of the article."`
	// SiteName is the name of the website.
	SiteName string `json:"sitename,omitempty" jsonschema:"title=sitename,description=The name of the website."`
	// Domain is the domain name of the website.
	Domain string `json:"domain,omitempty" jsonschema:"title=domain,description=The domain name of the website."`
}

func (s Metadata) String() string {
	return schema.JSONString(s)
}

// Output Schema for the output of the NewsReaderTool.
type Output struct {
	schema.Base
	// Content The article content in markdown format.
	Content string `json:"content,omitempty" jsonschema:"title=content,description=The article content in markdown format."`
	// Metadata is metadata about the article.
	Metadata *Metadata `json:"metadata,omitempty" jsonschema:"title=metadata,description=Metadata about the article."`
}

func NewOutput(content string, metadata *Metadata) *Output {
	return &Output{
		Content:  content,
		Metadata: metadata,
	}
}

func (s Output) String() string {
	return schema.JSONString(s)
}

type Config struct {
	tools.Config
	// userAgent User agent string to use for requests.
	userAgent string
	// timeout Timeout in seconds for HTTP requests
	timeout int
	// maxContentLength Maximum content length in bytes to process.
	maxContentLength int64
	httpClient       *http.Client
}

// Tool fetches an article page and extracts its main content as markdown.
type Tool struct {
	Config
	fetchedBytes atomic.Int64
}

var _ tools.AnonymousTool = (*Tool)(nil)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("NewsReaderTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Reads a news article from a URL and returns its content as markdown with page metadata.")
	}
	if ret.userAgent == "" {
		ret.userAgent = DefaultUserAgent
	}
	if ret.timeout == 0 {
		ret.timeout = 30
	}
	if ret.maxContentLength == 0 {
		ret.maxContentLength = 1_000_000
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Timeout: time.Second * time.Duration(ret.timeout)}
	}
	return ret
}

// TotalFetched reports the cumulative bytes downloaded by this tool.
func (t *Tool) TotalFetched() int64 {
	return t.fetchedBytes.Load()
}

func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	t.OnStart(ctx, t, input)
	out, err := t.run(ctx, input)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

func (t *Tool) run(ctx context.Context, input *Input) (*Output, error) {
	parsedURL, err := url.ParseRequestURI(input.URL)
	if err != nil {
		return nil, err
	}
	doc, err := t.fetch(ctx, input)
	if err != nil {
		return nil, err
	}
	mainContent := t.extractMainContent(doc)
	if !input.IncludeLinks {
		mainContent = stripAnchors(mainContent)
	}
	markdown, err := htmltomarkdown.ConvertString(
		mainContent,
		converter.WithDomain(fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)),
	)
	if err != nil {
		return nil, err
	}
	markdown = t.cleanMarkdownContent(markdown)
	meta := new(Metadata)
	meta.Domain = parsedURL.Host
	t.extractMetadata(doc, meta)
	return NewOutput(markdown, meta), nil
}

func (t *Tool) fetch(ctx context.Context, input *Input) (*goquery.Document, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, input.URL, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("User-Agent", t.userAgent)
	httpReq.Header.Set("Accept", DefaultAccept)
	httpReq.Header.Set("Connection", "keep-alive")
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response: %d", httpResp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(httpResp.Body, t.maxContentLength))
	if err != nil {
		return nil, err
	}
	t.fetchedBytes.Add(int64(len(body)))
	return goquery.NewDocumentFromReader(strings.NewReader(string(body)))
}

// Extracts metadata from the article page
func (t *Tool) extractMetadata(doc *goquery.Document, meta *Metadata) {
	meta.Title = doc.Find("head title").Text()
	meta.Author, _ = doc.Find("meta[name='author']").Attr("content")
	meta.Description, _ = doc.Find("meta[name='description']").Attr("content")
	meta.Keywords, _ = doc.Find("meta[name='keywords']").Attr("content")
	meta.SiteName, _ = doc.Find("meta[property='og:site_name']").Attr("content")
}

// extractMainContent extracts the main content from the page using custom heuristics
func (t *Tool) extractMainContent(doc *goquery.Document) string {
	for _, tag := range []string{"script", "style", "nav", "header", "footer", "aside"} {
		doc.Find(tag).Remove()
	}
	contentCandidates := []string{
		"article",
		"main",
		"#content, #main",
		".content, .main",
		"body",
	}
	var mainContent string
	for _, selector := range contentCandidates {
		sel := doc.Find(selector)
		if sel.Length() > 0 {
			if txt, err := sel.Html(); err == nil {
				mainContent = txt
				break
			}
		}
	}
	if mainContent == "" {
		mainContent, _ = doc.Html()
	}
	return mainContent
}

// Cleans up the markdown content by removing excessive whitespace and normalizing formatting
func (t *Tool) cleanMarkdownContent(content string) string {
	re := regexp.MustCompile(`\r?\n{2,}`)
	content = re.ReplaceAllString(content, "\n\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")
	content = strings.TrimSpace(content) + "\n"
	return content
}

var anchorRe = regexp.MustCompile(`(?is)<a\b[^>]*>(.*?)</a>`)

func stripAnchors(html string) string {
	return anchorRe.ReplaceAllString(html, "$1")
}

// Functions implements tools.AnonymousTool.
func (t *Tool) Functions() []tools.Function {
	return []tools.Function{
		{
			Name:        "read_article",
			Description: "Fetch a news article by URL and return its content as markdown together with title, author and site metadata.",
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
