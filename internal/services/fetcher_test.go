package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alfredoptarigan/resume-refiner/internal/config"
)

func newTestFetcher() JobDescriptionFetcher {
	return NewJobDescriptionFetcher(config.FetcherConfig{
		Timeout:      2 * time.Second,
		MaxBodyBytes: 1 << 20,
		UserAgent:    "test-agent",
	})
}

func TestFetch_NotFoundIsAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	text, ok := newTestFetcher().Fetch(context.Background(), server.URL)
	if ok {
		t.Fatalf("expected absent, got %q", text)
	}
}

func TestFetch_JobDescriptionClassWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "test-agent" {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><style>.x{}</style></head><body>
			<main>Company news and cookie banner</main>
			<div class="job-description">
				<h2>Backend   Engineer</h2>
				<script>track()</script>
				<ul>
					<li>Go</li>
					<li>SQL</li>
				</ul>
			</div>
		</body></html>`))
	}))
	defer server.Close()

	text, ok := newTestFetcher().Fetch(context.Background(), server.URL)
	if !ok {
		t.Fatal("expected job description text")
	}
	if want := "Backend Engineer Go SQL"; text != want {
		t.Errorf("Fetch() = %q, want %q", text, want)
	}
}

func TestFetch_RejectsNonHTTPScheme(t *testing.T) {
	if _, ok := newTestFetcher().Fetch(context.Background(), "file:///etc/passwd"); ok {
		t.Fatal("expected absent for file:// URL")
	}
}

func TestExtractJobDescriptionText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "id selector",
			html: `<body><p>nav</p><section id="jobDetails">Ship  features</section></body>`,
			want: "Ship features",
		},
		{
			name: "earlier selector wins over later one",
			html: `<body><div id="posting-content">late</div><div class="description">early</div></body>`,
			want: "early",
		},
		{
			name: "falls back to article",
			html: `<body><nav>menu</nav><article>Remote role</article></body>`,
			want: "Remote role",
		},
		{
			name: "falls back to body",
			html: `<body><div>Hiring now</div><script>x()</script></body>`,
			want: "Hiring now",
		},
		{
			name: "empty page",
			html: `<html><body>   </body></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJobDescriptionText(tt.html)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractJobDescriptionText() = %q, want %q", got, tt.want)
			}
		})
	}
}
