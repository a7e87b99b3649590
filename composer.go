package main

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	senderName     = "Tech & GNSS News"
	defaultSiteURL = "https://techntrek.is-a.dev"
)

var (
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)
	h1Pattern   = regexp.MustCompile(`(?m)^# (.+?)<br>`)
	h2Pattern   = regexp.MustCompile(`(?m)^## (.+?)<br>`)
)

// ComposeMessage builds the digest email for a post. The subject is the
// post title, the body links to {siteURL}/posts/{stem} and lists the
// extracted takeaways. Identical inputs always produce identical output.
func ComposeMessage(post *Post, siteURL string) ComposedMessage {
	title := post.Frontmatter.Title()
	postURL := fmt.Sprintf("%s/posts/%s", siteURL, post.Stem)

	parts := []string{
		"# " + title,
		"",
		post.Frontmatter.Description(),
		"",
		"**Read the full article:** " + postURL,
		"",
		"---",
		"",
		"## Key Takeaways",
		"",
	}
	for _, takeaway := range post.Takeaways {
		parts = append(parts, "• "+takeaway)
	}
	parts = append(parts,
		"",
		"---",
		"",
		"You're receiving this because you subscribed to Tech & GNSS News updates.",
		"To unsubscribe, reply with 'unsubscribe'.",
	)
	body := strings.Join(parts, "\n")

	return ComposedMessage{
		Subject:  title,
		TextBody: body,
		HTMLBody: renderHTML(body),
	}
}

// renderHTML applies a fixed substitution sequence to the plain body:
// line breaks, then bold spans, then h1, then h2. The order matters
// because the heading patterns match against the inserted <br> markers.
// This is a narrow textual transform, not a markdown parser.
func renderHTML(body string) string {
	html := strings.ReplaceAll(body, "\n", "<br>\n")
	html = boldPattern.ReplaceAllString(html, "<strong>$1</strong>")
	html = h1Pattern.ReplaceAllString(html, "<h1>$1</h1>")
	html = h2Pattern.ReplaceAllString(html, "<h2>$1</h2>")
	return "<html><body style='font-family: sans-serif;'>" + html + "</body></html>"
}
