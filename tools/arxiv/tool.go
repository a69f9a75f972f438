// Package arxiv is a tool for searching academic publications through the
// arXiv Atom API.
package arxiv

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/geminikit/agentpack/schema"
	"github.com/geminikit/agentpack/tools"
)

// Input is the schema for a paper search request.
type Input struct {
	schema.Base
	// Query is the topic or keywords to search for.
	Query string `json:"query" jsonschema:"title=query,description=Topic or keywords to search papers for." validate:"required"`
	// MaxResults caps the number of returned papers.
	MaxResults int `json:"max_results,omitempty" jsonschema:"title=max_results,description=Maximum number of papers to return."`
}

func NewInput(query string, maxResults int) *Input {
	return &Input{Query: query, MaxResults: maxResults}
}

func (s Input) String() string {
	return schema.JSONString(s)
}

// Paper is one search hit.
type Paper struct {
	schema.Base
	// Title of the paper
	Title string `json:"title" jsonschema:"title=title"`
	// Authors of the paper
	Authors []string `json:"authors,omitempty" jsonschema:"title=authors"`
	// Summary is the paper abstract
	Summary string `json:"summary,omitempty" jsonschema:"title=summary"`
	// URL is the abstract page link
	URL string `json:"url,omitempty" jsonschema:"title=url"`
	// PDFURL is the full text link when available
	PDFURL string `json:"pdf_url,omitempty" jsonschema:"title=pdf_url"`
	// Published date of the paper
	Published string `json:"published,omitempty" jsonschema:"title=published"`
	// Categories of the paper
	Categories []string `json:"categories,omitempty" jsonschema:"title=categories"`
}

func (s Paper) String() string {
	return schema.JSONString(s)
}

// Output is the paper search result list.
type Output struct {
	schema.Base
	Papers []Paper `json:"papers,omitempty" jsonschema:"title=papers"`
}

func (s Output) String() string {
	return schema.JSONString(s)
}

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title     string `xml:"title"`
	Summary   string `xml:"summary"`
	Published string `xml:"published"`
	Authors   []struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Links []struct {
		Href  string `xml:"href,attr"`
		Rel   string `xml:"rel,attr"`
		Title string `xml:"title,attr"`
	} `xml:"link"`
	Categories []struct {
		Term string `xml:"term,attr"`
	} `xml:"category"`
}

type Config struct {
	tools.Config
	baseURL    string
	maxResults int
	httpClient *http.Client
}

// Tool searches arXiv for papers.
type Tool struct {
	Config
}

var _ tools.AnonymousTool = (*Tool)(nil)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("ArxivTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Searches arXiv for academic papers and returns titles, authors, abstracts and links.")
	}
	if ret.baseURL == "" {
		ret.baseURL = "https://export.arxiv.org/api/query"
	}
	if ret.maxResults == 0 {
		ret.maxResults = 5
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

// Run searches arXiv and parses the Atom feed into papers.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	t.OnStart(ctx, t, input)
	limit := input.MaxResults
	if limit <= 0 || limit > t.maxResults {
		limit = t.maxResults
	}
	values := url.Values{}
	values.Set("search_query", fmt.Sprintf("all:%s", input.Query))
	values.Set("start", "0")
	values.Set("max_results", fmt.Sprintf("%d", limit))
	values.Set("sortBy", "relevance")
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", t.baseURL, values.Encode()), nil)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, fmt.Errorf("error querying arxiv: %w", err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		err := fmt.Errorf("non-200 response from arxiv: %d", httpResp.StatusCode)
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	var feed atomFeed
	if err := xml.NewDecoder(httpResp.Body).Decode(&feed); err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	out := new(Output)
	for _, entry := range feed.Entries {
		paper := Paper{
			Title:     normalizeSpace(entry.Title),
			Summary:   normalizeSpace(entry.Summary),
			Published: entry.Published,
		}
		for _, author := range entry.Authors {
			paper.Authors = append(paper.Authors, author.Name)
		}
		for _, link := range entry.Links {
			switch {
			case link.Title == "pdf":
				paper.PDFURL = link.Href
			case link.Rel == "alternate" || link.Rel == "":
				paper.URL = link.Href
			}
		}
		for _, category := range entry.Categories {
			paper.Categories = append(paper.Categories, category.Term)
		}
		out.Papers = append(out.Papers, paper)
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

// Functions implements tools.AnonymousTool.
func (t *Tool) Functions() []tools.Function {
	return []tools.Function{
		{
			Name:        "search_arxiv",
			Description: "Search arXiv for academic papers matching a topic and return titles, authors, abstracts and links.",
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

// Atom feeds wrap titles and abstracts across lines.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
