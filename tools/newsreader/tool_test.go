package newsreader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title>Breaking News</title>
  <meta name="author" content="Jane Reporter">
  <meta name="description" content="Something happened.">
  <meta property="og:site_name" content="Example Times">
</head>
<body>
  <nav>site navigation</nav>
  <article>
    <h1>Breaking News</h1>
    <p>First paragraph of the story with a <a href="/more">link</a>.</p>
    <p>Second paragraph.</p>
  </article>
  <footer>copyright</footer>
</body>
</html>`

func TestReadArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	tool := New()
	out, err := tool.Run(context.Background(), NewInput(srv.URL, false))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.Content, "Breaking News") {
		t.Errorf("expect headline in content, but got %q", out.Content)
	}
	if !strings.Contains(out.Content, "First paragraph") {
		t.Errorf("expect body text in content, but got %q", out.Content)
	}
	if strings.Contains(out.Content, "site navigation") || strings.Contains(out.Content, "copyright") {
		t.Errorf("expect nav and footer removed, but got %q", out.Content)
	}
	if strings.Contains(out.Content, "](") {
		t.Errorf("expect links stripped, but got %q", out.Content)
	}
	if out.Metadata.Title != "Breaking News" {
		t.Errorf("unexpected title %q", out.Metadata.Title)
	}
	if out.Metadata.Author != "Jane Reporter" {
		t.Errorf("unexpected author %q", out.Metadata.Author)
	}
	if out.Metadata.SiteName != "Example Times" {
		t.Errorf("unexpected site name %q", out.Metadata.SiteName)
	}
	if tool.TotalFetched() == 0 {
		t.Error("expect fetched byte counter to advance")
	}
}

func TestReadArticleKeepsLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()
	tool := New()
	out, err := tool.Run(context.Background(), NewInput(srv.URL, true))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.Content, "](") {
		t.Errorf("expect links preserved, but got %q", out.Content)
	}
}

func TestReadArticleNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()
	tool := New()
	if _, err := tool.Run(context.Background(), NewInput(srv.URL, false)); err == nil {
		t.Error("expect error for non-200 response")
	}
}
