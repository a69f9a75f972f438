package arxiv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <title>Advances in
 Language Models</title>
    <summary>  This paper discusses recent advancements.  </summary>
    <published>2024-01-15T00:00:00Z</published>
    <author><name>John Doe</name></author>
    <author><name>Jane Smith</name></author>
    <link href="http://arxiv.org/abs/2401.00001v1" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/2401.00001v1" rel="related" type="application/pdf"/>
    <category term="cs.CL"/>
  </entry>
</feed>`

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("search_query") != "all:language models" {
			t.Errorf("unexpected search_query %q", q.Get("search_query"))
		}
		if q.Get("max_results") != "2" {
			t.Errorf("unexpected max_results %q", q.Get("max_results"))
		}
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	tool := New(WithBaseURL(srv.URL))
	out, err := tool.Run(context.Background(), NewInput("language models", 2))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(out.Papers) != 1 {
		t.Fatalf("expect 1 paper, but got %d", len(out.Papers))
	}
	paper := out.Papers[0]
	if paper.Title != "Advances in Language Models" {
		t.Errorf("expect normalized title, but got %q", paper.Title)
	}
	if paper.Summary != "This paper discusses recent advancements." {
		t.Errorf("expect normalized summary, but got %q", paper.Summary)
	}
	if len(paper.Authors) != 2 || paper.Authors[0] != "John Doe" {
		t.Errorf("unexpected authors %v", paper.Authors)
	}
	if paper.URL != "http://arxiv.org/abs/2401.00001v1" {
		t.Errorf("unexpected url %q", paper.URL)
	}
	if paper.PDFURL != "http://arxiv.org/pdf/2401.00001v1" {
		t.Errorf("unexpected pdf url %q", paper.PDFURL)
	}
	if len(paper.Categories) != 1 || paper.Categories[0] != "cs.CL" {
		t.Errorf("unexpected categories %v", paper.Categories)
	}
}

func TestSearchCapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("max_results"); got != "5" {
			t.Errorf("expect default cap 5, but got %q", got)
		}
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()
	tool := New(WithBaseURL(srv.URL))
	if _, err := tool.Run(context.Background(), NewInput("q", 100)); err != nil {
		t.Fatalf("run: %v", err)
	}
}
