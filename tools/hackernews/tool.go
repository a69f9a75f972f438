// Package hackernews is a tool for reading top stories and user profiles
// from the Hacker News Firebase API.
package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/geminikit/agentpack/schema"
	"github.com/geminikit/agentpack/tools"
)

// StoriesInput is the schema for a top stories request.
type StoriesInput struct {
	schema.Base
	// NumStories caps how many stories are returned.
	NumStories int `json:"num_stories,omitempty" jsonschema:"title=num_stories,description=Number of top stories to return."`
}

func (s StoriesInput) String() string {
	return schema.JSONString(s)
}

// Story is one Hacker News item.
type Story struct {
	schema.Base
	ID          int    `json:"id" jsonschema:"title=id"`
	Title       string `json:"title,omitempty" jsonschema:"title=title"`
	URL         string `json:"url,omitempty" jsonschema:"title=url"`
	By          string `json:"by,omitempty" jsonschema:"title=by"`
	Score       int    `json:"score,omitempty" jsonschema:"title=score"`
	Descendants int    `json:"descendants,omitempty" jsonschema:"title=descendants,description=Total comment count."`
	Time        int64  `json:"time,omitempty" jsonschema:"title=time"`
	Text        string `json:"text,omitempty" jsonschema:"title=text"`
}

func (s Story) String() string {
	return schema.JSONString(s)
}

// StoriesOutput is the list of fetched stories.
type StoriesOutput struct {
	schema.Base
	Stories []Story `json:"stories,omitempty" jsonschema:"title=stories"`
}

func (s StoriesOutput) String() string {
	return schema.JSONString(s)
}

// UserInput is the schema for a user profile request.
type UserInput struct {
	schema.Base
	// Username is the Hacker News account to look up.
	Username string `json:"username" jsonschema:"title=username,description=Hacker News username to look up." validate:"required"`
}

func (s UserInput) String() string {
	return schema.JSONString(s)
}

// UserOutput is a Hacker News user profile.
type UserOutput struct {
	schema.Base
	ID        string `json:"id" jsonschema:"title=id"`
	Karma     int    `json:"karma,omitempty" jsonschema:"title=karma"`
	About     string `json:"about,omitempty" jsonschema:"title=about"`
	Created   int64  `json:"created,omitempty" jsonschema:"title=created"`
	Submitted int    `json:"submitted,omitempty" jsonschema:"title=submitted,description=Number of submitted items."`
}

func (s UserOutput) String() string {
	return schema.JSONString(s)
}

type Config struct {
	tools.Config
	baseURL    string
	maxStories int
	httpClient *http.Client
}

// Tool reads the Hacker News Firebase API.
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
		ret.SetTitle("HackerNewsTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Fetches top stories and user profiles from Hacker News.")
	}
	if ret.baseURL == "" {
		ret.baseURL = "https://hacker-news.firebaseio.com/v0"
	}
	if ret.maxStories == 0 {
		ret.maxStories = 10
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

// TopStories fetches the current top story IDs and resolves each item.
func (t *Tool) TopStories(ctx context.Context, input *StoriesInput) (*StoriesOutput, error) {
	t.OnStart(ctx, t, input)
	limit := input.NumStories
	if limit <= 0 || limit > t.maxStories {
		limit = t.maxStories
	}
	var ids []int
	if err := t.getJSON(ctx, fmt.Sprintf("%s/topstories.json", t.baseURL), &ids); err != nil {
		t.OnError(ctx, t, input, err)
		return nil, fmt.Errorf("error fetching top stories: %w", err)
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}
	out := new(StoriesOutput)
	for _, id := range ids {
		var story Story
		if err := t.getJSON(ctx, fmt.Sprintf("%s/item/%d.json", t.baseURL, id), &story); err != nil {
			t.OnError(ctx, t, input, err)
			return nil, fmt.Errorf("error fetching story %d: %w", id, err)
		}
		out.Stories = append(out.Stories, story)
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

// UserDetails fetches one user profile.
func (t *Tool) UserDetails(ctx context.Context, input *UserInput) (*UserOutput, error) {
	t.OnStart(ctx, t, input)
	var raw struct {
		ID        string `json:"id"`
		Karma     int    `json:"karma"`
		About     string `json:"about"`
		Created   int64  `json:"created"`
		Submitted []int  `json:"submitted"`
	}
	if err := t.getJSON(ctx, fmt.Sprintf("%s/user/%s.json", t.baseURL, input.Username), &raw); err != nil {
		t.OnError(ctx, t, input, err)
		return nil, fmt.Errorf("error fetching user %q: %w", input.Username, err)
	}
	if raw.ID == "" {
		err := fmt.Errorf("user %q not found", input.Username)
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	out := &UserOutput{
		ID:        raw.ID,
		Karma:     raw.Karma,
		About:     raw.About,
		Created:   raw.Created,
		Submitted: len(raw.Submitted),
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

func (t *Tool) getJSON(ctx context.Context, link string, dist any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
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
			Name:        "get_top_stories",
			Description: "Get the current top stories from Hacker News with title, link, author and score.",
			Parameters:  tools.Reflect(&StoriesInput{}),
			Call: func(ctx context.Context, args json.RawMessage) (any, error) {
				input := new(StoriesInput)
				if err := tools.DecodeArgs(args, input); err != nil {
					return nil, err
				}
				return t.TopStories(ctx, input)
			},
		},
		{
			Name:        "get_user_details",
			Description: "Get a Hacker News user profile by username.",
			Parameters:  tools.Reflect(&UserInput{}),
			Call: func(ctx context.Context, args json.RawMessage) (any, error) {
				input := new(UserInput)
				if err := tools.DecodeArgs(args, input); err != nil {
					return nil, err
				}
				return t.UserDetails(ctx, input)
			},
		},
	}
}
