// Package wikipedia is a tool for searching Wikipedia and fetching article
// extracts through the MediaWiki action API. Fetched articles can be fed
// into a knowledge base through an Ingestor.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/geminikit/agentpack/schema"
	"github.com/geminikit/agentpack/tools"
)

// Ingestor receives fetched articles, typically a vector knowledge base.
type Ingestor interface {
	Add(ctx context.Context, title, content string) error
}

// SearchInput is the schema for a Wikipedia search request.
type SearchInput struct {
	schema.Base
	// Query is the topic to search for.
	Query string `json:"query" jsonschema:"title=query,description=Topic to search Wikipedia for." validate:"required"`
	// MaxResults caps the number of returned hits.
	MaxResults int `json:"max_results,omitempty" jsonschema:"title=max_results,description=Maximum number of results to return."`
}

func (s SearchInput) String() string {
	return schema.JSONString(s)
}

// SearchResultItem is one search hit.
type SearchResultItem struct {
	schema.Base
	// Title of the article
	Title string `json:"title" jsonschema:"title=title"`
	// Snippet is a plain text extract around the match
	Snippet string `json:"snippet,omitempty" jsonschema:"title=snippet"`
	// PageID of the article
	PageID int `json:"page_id,omitempty" jsonschema:"title=page_id"`
}

func (s SearchResultItem) String() string {
	return schema.JSONString(s)
}

// SearchOutput is the search hit list.
type SearchOutput struct {
	schema.Base
	Results []SearchResultItem `json:"results,omitempty" jsonschema:"title=results"`
}

func (s SearchOutput) String() string {
	return schema.JSONString(s)
}

// ArticleInput is the schema for an article fetch request.
type ArticleInput struct {
	schema.Base
	// Title of the article to fetch.
	Title string `json:"title" jsonschema:"title=title,description=Exact title of the Wikipedia article to fetch." validate:"required"`
}

func (s ArticleInput) String() string {
	return schema.JSONString(s)
}

// ArticleOutput carries the fetched article extract.
type ArticleOutput struct {
	schema.Base
	// Title of the article
	Title string `json:"title" jsonschema:"title=title"`
	// Extract is the plain text introduction
	Extract string `json:"extract,omitempty" jsonschema:"title=extract"`
	// URL of the article
	URL string `json:"url,omitempty" jsonschema:"title=url"`
}

func (s ArticleOutput) String() string {
	return schema.JSONString(s)
}

type Config struct {
	tools.Config
	baseURL    string
	maxResults int
	ingestor   Ingestor
	httpClient *http.Client
}

// Tool reads the MediaWiki action API.
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
		ret.SetTitle("WikipediaTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Searches Wikipedia and fetches article extracts.")
	}
	if ret.baseURL == "" {
		ret.baseURL = "https://en.wikipedia.org/w/api.php"
	}
	if ret.maxResults == 0 {
		ret.maxResults = 5
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

// MediaWiki snippets carry search highlight markup.
var tagRe = regexp.MustCompile(`<[^>]+>`)

// Search looks up articles matching a query.
func (t *Tool) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	t.OnStart(ctx, t, input)
	limit := input.MaxResults
	if limit <= 0 || limit > t.maxResults {
		limit = t.maxResults
	}
	values := url.Values{}
	values.Set("action", "query")
	values.Set("list", "search")
	values.Set("srsearch", input.Query)
	values.Set("srlimit", fmt.Sprintf("%d", limit))
	values.Set("format", "json")
	var raw struct {
		Query struct {
			Search []struct {
				Title   string `json:"title"`
				Snippet string `json:"snippet"`
				PageID  int    `json:"pageid"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := t.getJSON(ctx, values, &raw); err != nil {
		t.OnError(ctx, t, input, err)
		return nil, fmt.Errorf("error searching wikipedia: %w", err)
	}
	out := new(SearchOutput)
	for _, hit := range raw.Query.Search {
		out.Results = append(out.Results, SearchResultItem{
			Title:   hit.Title,
			Snippet: tagRe.ReplaceAllString(hit.Snippet, ""),
			PageID:  hit.PageID,
		})
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

// Article fetches the plain text introduction of one article and feeds it
// to the ingestor when configured.
func (t *Tool) Article(ctx context.Context, input *ArticleInput) (*ArticleOutput, error) {
	t.OnStart(ctx, t, input)
	values := url.Values{}
	values.Set("action", "query")
	values.Set("prop", "extracts|info")
	values.Set("exintro", "1")
	values.Set("explaintext", "1")
	values.Set("inprop", "url")
	values.Set("titles", input.Title)
	values.Set("format", "json")
	var raw struct {
		Query struct {
			Pages map[string]struct {
				Title   string `json:"title"`
				Extract string `json:"extract"`
				FullURL string `json:"fullurl"`
				Missing *any   `json:"missing,omitempty"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := t.getJSON(ctx, values, &raw); err != nil {
		t.OnError(ctx, t, input, err)
		return nil, fmt.Errorf("error fetching article: %w", err)
	}
	out := new(ArticleOutput)
	for id, page := range raw.Query.Pages {
		if id == "-1" || page.Missing != nil {
			continue
		}
		out.Title = page.Title
		out.Extract = page.Extract
		out.URL = page.FullURL
		break
	}
	if out.Title == "" {
		err := fmt.Errorf("article %q not found", input.Title)
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	if t.ingestor != nil && out.Extract != "" {
		if err := t.ingestor.Add(ctx, out.Title, out.Extract); err != nil {
			t.OnError(ctx, t, input, err)
			return nil, fmt.Errorf("error ingesting article: %w", err)
		}
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

func (t *Tool) getJSON(ctx context.Context, values url.Values, dist any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", t.baseURL, values.Encode()), nil)
	if err != nil {
		return err
	}
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("non-200 response: %d", httpResp.StatusCode)
	}
	return json.NewDecoder(httpResp.Body).Decode(dist)
}

// Functions implements tools.AnonymousTool.
func (t *Tool) Functions() []tools.Function {
	return []tools.Function{
		{
			Name:        "search_wikipedia",
			Description: "Search Wikipedia for articles matching a topic.",
			Parameters:  tools.Reflect(&SearchInput{}),
			Call: func(ctx context.Context, args json.RawMessage) (any, error) {
				input := new(SearchInput)
				if err := tools.DecodeArgs(args, input); err != nil {
					return nil, err
				}
				return t.Search(ctx, input)
			},
		},
		{
			Name:        "get_article",
			Description: "Fetch the introduction of a Wikipedia article by its exact title.",
			Parameters:  tools.Reflect(&ArticleInput{}),
			Call: func(ctx context.Context, args json.RawMessage) (any, error) {
				input := new(ArticleInput)
				if err := tools.DecodeArgs(args, input); err != nil {
					return nil, err
				}
				return t.Article(ctx, input)
			},
		},
	}
}
