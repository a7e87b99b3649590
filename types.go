package main

// Post represents a published digest post loaded from disk.
type Post struct {
	Path        string
	Stem        string
	Frontmatter Frontmatter
	Takeaways   []string
}

// ComposedMessage is the fully assembled email for one post.
type ComposedMessage struct {
	Subject  string
	TextBody string
	HTMLBody string
}
