package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fallbackTitle is used when a post carries no title in its frontmatter.
const fallbackTitle = "Daily Tech & GNSS News"

// Frontmatter is the YAML header of a post. A missing or malformed
// header produces an empty map, never an error.
type Frontmatter map[string]any

func (f Frontmatter) stringKey(key string) string {
	if v, ok := f[key].(string); ok {
		return v
	}
	return ""
}

// Title returns the post title, falling back to a fixed default when the
// frontmatter has none.
func (f Frontmatter) Title() string {
	if t := f.stringKey("title"); t != "" {
		return t
	}
	return fallbackTitle
}

// Description returns the post description, empty when absent.
func (f Frontmatter) Description() string {
	return f.stringKey("description")
}

// Date returns the post date string. Display only. yaml.v3 decodes
// unquoted ISO dates as time.Time, so both forms are handled.
func (f Frontmatter) Date() string {
	switch v := f["date"].(type) {
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02")
	}
	return ""
}

// LoadPost reads a post from disk and parses its header and takeaways.
// The file stem (name without extension) becomes the URL slug.
func LoadPost(path string) (*Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading post %s: %w", path, err)
	}

	content := string(data)
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return &Post{
		Path:        path,
		Stem:        stem,
		Frontmatter: ParseFrontmatter(content),
		Takeaways:   ExtractTakeaways(content),
	}, nil
}

// ParseFrontmatter extracts the YAML header delimited by "---" lines at
// the very start of the document. Returns an empty map when no valid
// header is present.
func ParseFrontmatter(content string) Frontmatter {
	scanner := bufio.NewScanner(strings.NewReader(content))

	// First line must be the opening delimiter
	if !scanner.Scan() || scanner.Text() != "---" {
		return Frontmatter{}
	}

	var lines []string
	closed := false
	for scanner.Scan() {
		line := scanner.Text()
		if line == "---" {
			closed = true
			break
		}
		lines = append(lines, line)
	}
	if !closed {
		return Frontmatter{}
	}

	fm := Frontmatter{}
	if err := yaml.Unmarshal([]byte(strings.Join(lines, "\n")), &fm); err != nil {
		return Frontmatter{}
	}
	return fm
}

const takeawaysHeading = "## Key Takeaways"

// takeawayPattern matches bold-labeled bullets: "- **Label**: Detail".
// Bullets in any other form are intentionally skipped.
var takeawayPattern = regexp.MustCompile(`^- \*\*([^*]+)\*\*: (.+)`)

type scanState int

const (
	stateScanning scanState = iota
	stateCollecting
)

// ExtractTakeaways collects bold-labeled bullets under the Key Takeaways
// heading, formatted as "Label: Detail" in document order. Collection
// stops at the next second-level heading. A document without the heading
// yields no takeaways.
func ExtractTakeaways(content string) []string {
	var takeaways []string
	state := stateScanning

	for _, line := range strings.Split(content, "\n") {
		switch state {
		case stateScanning:
			if strings.Contains(line, takeawaysHeading) {
				state = stateCollecting
			}
		case stateCollecting:
			if strings.HasPrefix(line, "## ") {
				return takeaways
			}
			if m := takeawayPattern.FindStringSubmatch(line); m != nil {
				takeaways = append(takeaways, m[1]+": "+m[2])
			}
		}
	}
	return takeaways
}
