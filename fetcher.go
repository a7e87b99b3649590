package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// HTTPError represents a non-200 response from a source URL.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// ContentFetcher downloads source pages and converts them to markdown
// for use as generator context.
type ContentFetcher struct {
	client    *http.Client
	converter *md.Converter
}

// NewContentFetcher creates a fetcher with a default HTTP client.
func NewContentFetcher() *ContentFetcher {
	return &ContentFetcher{
		client:    &http.Client{},
		converter: md.NewConverter("", true, nil),
	}
}

// Fetch downloads a URL and returns its content as markdown. Non-HTML
// responses are returned as-is.
func (f *ContentFetcher) Fetch(url string) (string, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return string(body), nil
	}

	markdown, err := f.converter.ConvertString(string(body))
	if err != nil {
		return "", fmt.Errorf("converting %s to markdown: %w", url, err)
	}
	return markdown, nil
}
