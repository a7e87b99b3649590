package main

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aktagon/llmkit/anthropic"
	"github.com/aktagon/llmkit/anthropic/types"
)

//go:embed prompts/digest-system-prompt.md
var digestSystemPrompt string

//go:embed prompts/digest-user-prompt.md
var digestUserPrompt string

const (
	generatorModel     = "claude-sonnet-4-20250514"
	generatorMaxTokens = 4096
)

// PostGenerator produces the daily digest post through the Anthropic API.
type PostGenerator struct {
	apiKey  string
	fetcher *ContentFetcher
	now     func() time.Time
}

// NewPostGenerator creates a generator for the given API key.
func NewPostGenerator(apiKey string) *PostGenerator {
	return &PostGenerator{
		apiKey:  apiKey,
		fetcher: NewContentFetcher(),
		now:     time.Now,
	}
}

// Generate writes today's digest post into outputDir and returns its
// path. sourceURLs are optional pages fetched and appended to the prompt
// as additional context.
func (g *PostGenerator) Generate(outputDir string, sourceURLs []string) (string, error) {
	today := g.now()
	dateStr := today.Format("2006-01-02")
	formattedDate := today.Format("January 2, 2006")

	userPrompt := strings.ReplaceAll(digestUserPrompt, "{{.Date}}", dateStr)
	userPrompt = strings.ReplaceAll(userPrompt, "{{.FormattedDate}}", formattedDate)

	for _, url := range sourceURLs {
		log.Printf("→ Fetching context: %s", url)
		content, err := g.fetcher.Fetch(url)
		if err != nil {
			return "", fmt.Errorf("fetching source context: %w", err)
		}
		userPrompt = fmt.Sprintf("%s\n\nSource content from %s:\n%s", userPrompt, url, content)
	}

	log.Printf("→ Generating daily post for %s...", formattedDate)

	settings := types.RequestSettings{
		Model:     generatorModel,
		MaxTokens: generatorMaxTokens,
	}
	response, err := anthropic.PromptWithSettings(digestSystemPrompt, userPrompt, "", g.apiKey, settings)
	if err != nil {
		return "", fmt.Errorf("generator prompt failed: %w", err)
	}
	if len(response.Content) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var sb strings.Builder
	for _, block := range response.Content {
		sb.WriteString(block.Text)
	}
	content := extractMDX(sb.String())

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, fmt.Sprintf("%s-daily-tech-gnss-news.mdx", dateStr))
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing post: %w", err)
	}

	return outputPath, nil
}

// extractMDX pulls the MDX document out of a ```mdx code fence when the
// model wraps its output in one. Unfenced output is returned unchanged.
func extractMDX(text string) string {
	start := strings.Index(text, "```mdx")
	if start == -1 {
		return text
	}
	start += len("```mdx")
	end := strings.Index(text[start:], "```")
	if end == -1 {
		return text
	}
	return strings.TrimSpace(text[start : start+end])
}
