package wikipedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch q.Get("list") {
		case "search":
			if q.Get("srsearch") != "gravity" {
				t.Errorf("unexpected srsearch %q", q.Get("srsearch"))
			}
			w.Write([]byte(`{"query":{"search":[
				{"title":"Gravity","snippet":"<span class=\"searchmatch\">Gravity</span> is a force","pageid":38579},
				{"title":"Gravity (film)","snippet":"a 2013 film","pageid":100}
			]}}`))
		default:
			switch q.Get("titles") {
			case "Gravity":
				w.Write([]byte(`{"query":{"pages":{"38579":{"title":"Gravity","extract":"Gravity is a fundamental interaction.","fullurl":"https://en.wikipedia.org/wiki/Gravity"}}}}`))
			default:
				w.Write([]byte(`{"query":{"pages":{"-1":{"title":"","missing":""}}}}`))
			}
		}
	}))
}

func TestSearch(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()
	tool := New(WithBaseURL(srv.URL))
	out, err := tool.Search(context.Background(), &SearchInput{Query: "gravity"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(out.Results) != 2 {
		t.Fatalf("expect 2 results, but got %d", len(out.Results))
	}
	if out.Results[0].Title != "Gravity" || out.Results[0].PageID != 38579 {
		t.Errorf("unexpected result %+v", out.Results[0])
	}
	if out.Results[0].Snippet != "Gravity is a force" {
		t.Errorf("expect stripped snippet, but got %q", out.Results[0].Snippet)
	}
}

type fakeIngestor struct {
	titles []string
}

func (f *fakeIngestor) Add(ctx context.Context, title, content string) error {
	f.titles = append(f.titles, title)
	return nil
}

func TestArticle(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()
	ingestor := new(fakeIngestor)
	tool := New(WithBaseURL(srv.URL), WithIngestor(ingestor))
	out, err := tool.Article(context.Background(), &ArticleInput{Title: "Gravity"})
	if err != nil {
		t.Fatalf("article: %v", err)
	}
	if out.Extract != "Gravity is a fundamental interaction." {
		t.Errorf("unexpected extract %q", out.Extract)
	}
	if len(ingestor.titles) != 1 || ingestor.titles[0] != "Gravity" {
		t.Errorf("expect article ingested, but got %v", ingestor.titles)
	}
	if _, err := tool.Article(context.Background(), &ArticleInput{Title: "No Such Page"}); err == nil {
		t.Error("expect error for missing article")
	}
}
