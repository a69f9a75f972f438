package hackernews

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/topstories.json", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]int{1, 2, 3})
	})
	mux.HandleFunc("/item/", func(w http.ResponseWriter, r *http.Request) {
		var id int
		switch r.URL.Path {
		case "/item/1.json":
			id = 1
		case "/item/2.json":
			id = 2
		case "/item/3.json":
			id = 3
		default:
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(Story{ID: id, Title: "story", By: "pg", Score: 100})
	})
	mux.HandleFunc("/user/pg.json", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id":        "pg",
			"karma":     155111,
			"created":   1160418092,
			"submitted": []int{1, 2, 3, 4},
		})
	})
	mux.HandleFunc("/user/nobody.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})
	return httptest.NewServer(mux)
}

func TestTopStories(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()
	tool := New(WithBaseURL(srv.URL))
	out, err := tool.TopStories(context.Background(), &StoriesInput{NumStories: 2})
	if err != nil {
		t.Fatalf("top stories: %v", err)
	}
	if len(out.Stories) != 2 {
		t.Fatalf("expect 2 stories, but got %d", len(out.Stories))
	}
	if out.Stories[0].ID != 1 || out.Stories[1].ID != 2 {
		t.Errorf("unexpected story order %v", out.Stories)
	}
	if out.Stories[0].By != "pg" || out.Stories[0].Score != 100 {
		t.Errorf("unexpected story fields %+v", out.Stories[0])
	}
}

func TestUserDetails(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()
	tool := New(WithBaseURL(srv.URL))
	out, err := tool.UserDetails(context.Background(), &UserInput{Username: "pg"})
	if err != nil {
		t.Fatalf("user details: %v", err)
	}
	if out.ID != "pg" || out.Karma != 155111 || out.Submitted != 4 {
		t.Errorf("unexpected user %+v", out)
	}
	if _, err := tool.UserDetails(context.Background(), &UserInput{Username: "nobody"}); err == nil {
		t.Error("expect error for unknown user")
	}
}
