package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		link string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=Iv9dewmcFbs", "Iv9dewmcFbs", true},
		{"https://youtu.be/Iv9dewmcFbs", "Iv9dewmcFbs", true},
		{"https://www.youtube.com/embed/Iv9dewmcFbs", "Iv9dewmcFbs", true},
		{"https://www.youtube.com/shorts/abc123", "abc123", true},
		{"https://example.com/watch?v=zzz", "", false},
		{"not a url at all ://", "", false},
	}
	for _, c := range cases {
		got, err := ExtractVideoID(c.link)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("%s: expect %q, got %q (%v)", c.link, c.want, got, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%s: expect error", c.link)
		}
	}
}

func TestRun(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title":"Understanding AI","author_name":"AI Channel","thumbnail_url":"https://i.ytimg.com/x.jpg"}`))
	})
	mux.HandleFunc("/timedtext", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") != "Iv9dewmcFbs" {
			t.Errorf("unexpected video id %q", r.URL.Query().Get("v"))
		}
		w.Write([]byte(`<transcript><text start="0" dur="2">Hello &amp; welcome</text><text start="2" dur="2">to the video</text></transcript>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	tool := New(WithOembedURL(srv.URL+"/oembed"), WithTimedtextURL(srv.URL+"/timedtext"))
	out, err := tool.Run(context.Background(), NewInput("https://www.youtube.com/watch?v=Iv9dewmcFbs"))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Title != "Understanding AI" || out.Author != "AI Channel" {
		t.Errorf("unexpected metadata: %+v", out)
	}
	if out.Captions != "Hello & welcome to the video" {
		t.Errorf("unexpected captions: %q", out.Captions)
	}
}

func TestRunCaptionsDisabled(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title":"T","author_name":"A"}`))
	})
	mux.HandleFunc("/timedtext", func(w http.ResponseWriter, r *http.Request) {
		t.Error("timedtext must not be called when captions are disabled")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	tool := New(WithCaptions(false), WithOembedURL(srv.URL+"/oembed"), WithTimedtextURL(srv.URL+"/timedtext"))
	if tool.CaptionsEnabled() {
		t.Error("expect captions disabled")
	}
	out, err := tool.Run(context.Background(), NewInput("https://youtu.be/abc"))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Captions != "" {
		t.Errorf("expect empty captions, but got %q", out.Captions)
	}
}

func TestRunMissingCaptionsDegrades(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title":"T"}`))
	})
	mux.HandleFunc("/timedtext", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	tool := New(WithOembedURL(srv.URL+"/oembed"), WithTimedtextURL(srv.URL+"/timedtext"))
	out, err := tool.Run(context.Background(), NewInput("https://youtu.be/abc"))
	if err != nil {
		t.Fatalf("expect metadata fallback, but got %v", err)
	}
	if out.Title != "T" || out.Captions != "" {
		t.Errorf("unexpected output: %+v", out)
	}
}
