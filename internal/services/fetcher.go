package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"alfredoptarigan/resume-refiner/internal/config"
)

const maxRedirects = 5

// Class names and ids job boards commonly use for the posting body, in
// priority order.
var jobDescriptionSelectors = []string{
	"job-description",
	"jobDescription",
	"description",
	"job-details",
	"jobDetails",
	"posting-content",
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// JobDescriptionFetcher retrieves a job posting and reduces it to text. A
// failed fetch reports absent instead of an error.
type JobDescriptionFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, bool)
}

type jobDescriptionFetcher struct {
	client       *resty.Client
	maxBodyBytes int64
}

func NewJobDescriptionFetcher(cfg config.FetcherConfig) JobDescriptionFetcher {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects)).
		SetRetryCount(0).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")

	return &jobDescriptionFetcher{
		client:       client,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
}

func (f *jobDescriptionFetcher) Fetch(ctx context.Context, rawURL string) (string, bool) {
	html, err := f.get(ctx, rawURL)
	if err != nil {
		log.Printf("⚠️ Error fetching job description: %v", err)
		return "", false
	}

	text, err := ExtractJobDescriptionText(html)
	if err != nil {
		log.Printf("⚠️ Error parsing job description page: %v", err)
		return "", false
	}
	if text == "" {
		log.Printf("⚠️ No job description text found at %s", rawURL)
		return "", false
	}

	return text, true
}

func (f *jobDescriptionFetcher) get(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme %q", parsed.Scheme)
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(parsed.String())
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode())
	}

	data, err := io.ReadAll(io.LimitReader(body, f.maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(data), nil
}

// ExtractJobDescriptionText picks the first known job-description container
// (class before id) or falls back to main, article, then body.
func ExtractJobDescriptionText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style").Remove()

	content := findJobDescriptionContainer(doc)
	if content == nil {
		return "", nil
	}

	text := strings.TrimSpace(whitespaceRun.ReplaceAllString(content.Text(), " "))

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func findJobDescriptionContainer(doc *goquery.Document) *goquery.Selection {
	for _, selector := range jobDescriptionSelectors {
		if sel := doc.Find("." + selector).First(); sel.Length() > 0 {
			return sel
		}
		if sel := doc.Find("#" + selector).First(); sel.Length() > 0 {
			return sel
		}
	}

	for _, tag := range []string{"main", "article", "body"} {
		if sel := doc.Find(tag).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}
