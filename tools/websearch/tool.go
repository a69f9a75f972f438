// Package websearch is a tool for searching the web through a
// SearxNG-compatible JSON endpoint and returning the top results.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/geminikit/agentpack/schema"
	"github.com/geminikit/agentpack/tools"
)

type Category = string

const (
	GeneralCategory Category = "general"
	NewsCategory    Category = "news"
	ScienceCategory Category = "science"
)

// Input is the schema for a web search request.
type Input struct {
	schema.Base
	// Queries list of search queries.
	Queries []string `json:"queries" jsonschema:"title=queries,description=List of search queries." validate:"required,min=1"`
	// Category of the search queries.
	Category Category `json:"category,omitempty" jsonschema:"title=category,enum=general,enum=news,enum=science,default=general,description=Category of the search queries."`
}

func NewInput(category Category, queries []string) *Input {
	if category == "" {
		category = GeneralCategory
	}
	return &Input{
		Queries:  queries,
		Category: category,
	}
}

func (s Input) String() string {
	return schema.JSONString(s)
}

// SearchResultItem represents a single search result item
type SearchResultItem struct {
	schema.Base
	// URL of the search result
	URL string `json:"url" jsonschema:"title=url,description=The URL of the search result."`
	// Title of the search result
	Title string `json:"title" jsonschema:"title=title,description=The title of the search result."`
	// Content snippet of the search result
	Content string `json:"content,omitempty" jsonschema:"title=content,description=The content snippet of the search result."`
	// Query used to obtain this search result
	Query string `json:"query,omitempty" jsonschema:"title=query,description=The query used to obtain this search result."`
}

func (s SearchResultItem) String() string {
	return schema.JSONString(s)
}

type searchResponse struct {
	Query           string             `json:"query"`
	NumberOfResults int                `json:"number_of_results"`
	Results         []SearchResultItem `json:"results"`
}

// Output represents the output of the web search tool.
type Output struct {
	schema.Base
	// Results list of search result items
	Results []SearchResultItem `json:"results,omitempty" jsonschema:"title=results,description=List of search result items."`
	// Category of the search results
	Category Category `json:"category,omitempty" jsonschema:"title=category,description=Category of the search results."`
}

func (s Output) String() string {
	return schema.JSONString(s)
}

type Config struct {
	tools.Config
	baseURL    string
	language   string
	engines    []string
	maxResults int
	httpClient *http.Client
}

// Tool performs searches against a SearxNG-compatible search endpoint.
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
		ret.SetTitle("WebSearchTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Searches the web and returns the top results for each query.")
	}
	if len(ret.engines) == 0 {
		ret.engines = []string{"google"}
	}
	if ret.maxResults == 0 {
		ret.maxResults = 5
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

// BaseURL returns the configured search endpoint.
func (t *Tool) BaseURL() string {
	return t.baseURL
}

// Run executes the search queries and aggregates the top results.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	t.OnStart(ctx, t, input)
	out := &Output{Category: input.Category}
	for _, query := range input.Queries {
		items, err := t.fetchSearchResults(ctx, query, input.Category)
		if err != nil {
			t.OnError(ctx, t, input, err)
			return nil, err
		}
		if len(items) > t.maxResults {
			items = items[:t.maxResults]
		}
		out.Results = append(out.Results, items...)
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

// Functions implements tools.AnonymousTool.
func (t *Tool) Functions() []tools.Function {
	return []tools.Function{
		{
			Name:        "search_web",
			Description: "Search the web for the given queries and return the most relevant results with title, snippet and source URL.",
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

// fetchSearchResults queries the search endpoint and parses the response.
func (t *Tool) fetchSearchResults(ctx context.Context, query string, category Category) ([]SearchResultItem, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("safesearch", "0")
	values.Set("format", "json")
	values.Set("engines", strings.Join(t.engines, ","))
	if t.language != "" {
		values.Set("language", t.language)
	}
	if category != "" {
		values.Set("categories", category)
	}
	searchURL := fmt.Sprintf("%s/search?%s", t.baseURL, values.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error querying search engine: %w", err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response from search engine: %d", httpResp.StatusCode)
	}
	var resp searchResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, err
	}
	for idx := range resp.Results {
		resp.Results[idx].Query = query
	}
	return resp.Results, nil
}
