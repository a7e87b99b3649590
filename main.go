package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	postPath   string
	outputDir  string
	apiKey     string
	sourceURLs []string
)

var rootCmd = &cobra.Command{
	Use:   "news-digest",
	Short: "Daily tech & GNSS news digest automation",
	Long:  `Generates the daily news digest post and emails a summary of a published post to subscribers.`,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate today's digest post via the Anthropic API",
	Run: func(cmd *cobra.Command, args []string) {
		if apiKey == "" {
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if apiKey == "" {
			log.Fatal("API key required: use --api-key flag or ANTHROPIC_API_KEY environment variable")
		}

		generator := NewPostGenerator(apiKey)
		path, err := generator.Generate(outputDir, sourceURLs)
		if err != nil {
			log.Fatalf("Generating post failed: %v", err)
		}
		log.Printf("✓ Generated: %s", path)
	},
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Email a digest of a published post to subscribers",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadConfig(postPath)
		if err != nil {
			log.Fatalf("Configuration error: %v", err)
		}

		log.Printf("Preparing email for: %s", cfg.PostFile)
		log.Printf("Recipients: %d", len(cfg.Recipients))

		if err := runSend(cfg, NewGmailSender(cfg.Sender, cfg.Password)); err != nil {
			log.Fatalf("Sending failed: %v", err)
		}

		log.Printf("✓ Email sent to %d recipient(s)", len(cfg.Recipients))
	},
}

// runSend drives the send pipeline with an injected sender so the
// pipeline is testable without a network.
func runSend(cfg *Config, sender Sender) error {
	post, err := LoadPost(cfg.PostFile)
	if err != nil {
		return fmt.Errorf("loading post: %w", err)
	}

	msg := ComposeMessage(post, cfg.SiteURL)
	if err := sender.Send(msg, cfg.Recipients); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	return nil
}

func init() {
	generateCmd.Flags().StringVar(&apiKey, "api-key", "", "Anthropic API key")
	generateCmd.Flags().StringVar(&outputDir, "output-dir", "src/content/posts", "Directory to save the generated post")
	generateCmd.Flags().StringSliceVar(&sourceURLs, "source", nil, "Extra source URLs to include as context")
	sendCmd.Flags().StringVar(&postPath, "post", "", "Path to the post to email (falls back to POST_FILE)")
	rootCmd.AddCommand(generateCmd, sendCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
