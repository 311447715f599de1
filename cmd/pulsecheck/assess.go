package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordanh/pulsecheck/internal/config"
	"github.com/jordanh/pulsecheck/internal/observability"
	"github.com/jordanh/pulsecheck/internal/types"
)

var (
	assessInput      string
	assessName       string
	assessWebsite    string
	assessListing    string
	assessSocial     string
	assessAPIKey     string
	assessUseBrowser bool
	assessVerbose    bool
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run a single assessment and print the result as JSON",
	Long: `Run one assessment from a JSON request file and print the full response to stdout.

The input file holds an assessment request, for example:

  {
    "selections": {
      "presenceChannels": ["word_of_mouth", "facebook_page"],
      "teamShape": "solo_or_one_helper",
      "scheduling": "head_notebook",
      "invoicing": "paper_verbal",
      "callHandling": "personal_phone",
      "businessFeeling": "reactive_all_the_time"
    }
  }

Use "-" to read the request from stdin. Source URLs and the display name
can also be supplied as flags, which override the file's values.`,
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().StringVarP(&assessInput, "input", "i", "", "Path to JSON request file, or - for stdin (required)")
	assessCmd.Flags().StringVarP(&assessName, "name", "n", "", "Business display name")
	assessCmd.Flags().StringVar(&assessWebsite, "website", "", "Business website URL for enrichment")
	assessCmd.Flags().StringVar(&assessListing, "listing", "", "Business listing URL for enrichment (e.g. Google Business Profile)")
	assessCmd.Flags().StringVar(&assessSocial, "social", "", "Social page URL for enrichment")
	assessCmd.Flags().StringVar(&assessAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	assessCmd.Flags().BoolVar(&assessUseBrowser, "use-browser", false, "Use headless browser for JS-heavy source pages (requires Chrome)")
	assessCmd.Flags().BoolVarP(&assessVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = assessCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	req, err := readRequest(assessInput)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("name") {
		req.DisplayName = assessName
	}
	if cmd.Flags().Changed("website") {
		req.Sources.Website = assessWebsite
	}
	if cmd.Flags().Changed("listing") {
		req.Sources.Listing = assessListing
	}
	if cmd.Flags().Changed("social") {
		req.Sources.Social = assessSocial
	}

	apiKey := assessAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	runner, cleanup, err := buildRunner(ctx, config.Config{
		APIKey:     apiKey,
		UseBrowser: assessUseBrowser,
		Verbose:    assessVerbose,
	})
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := runner.Assess(ctx, req)
	if err != nil {
		return err
	}

	if assessVerbose {
		// Boxes go to stderr so stdout stays machine-readable.
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintClassification(&resp.Classification)
		printer.PrintNuggets(resp.EvidenceNuggets)
		printer.PrintPanes(&resp.Panes)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// readRequest loads an assessment request from a file or stdin.
func readRequest(path string) (*types.AssessmentRequest, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read request: %w", err)
	}

	var req types.AssessmentRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request JSON: %w", err)
	}
	return &req, nil
}
