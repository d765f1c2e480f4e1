package channel

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/bluestero/ythandle/internal/channel/domain"

	"github.com/spf13/cobra"
)

// printJSON encodes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printSnippetDetail prints a vertical key-value table of a channel snippet.
func printSnippetDetail(cmd *cobra.Command, s *domain.Snippet) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "  ID:\t%s\n", s.ChannelID)
	fmt.Fprintf(w, "  Title:\t%s\n", s.Title)
	fmt.Fprintf(w, "  Handle:\t%s\n", s.Handle())
	fmt.Fprintf(w, "  Custom URL:\t%s\n", s.CustomURL)

	if s.Country != "" {
		fmt.Fprintf(w, "  Country:\t%s\n", s.Country)
	}
	if !s.PublishedAt.IsZero() {
		fmt.Fprintf(w, "  Created:\t%s\n", s.PublishedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	if s.ThumbnailURL != "" {
		fmt.Fprintf(w, "  Thumbnail:\t%s\n", s.ThumbnailURL)
	}

	w.Flush()
}

// printCandidatesTable prints search candidates in search order.
func printCandidatesTable(cmd *cobra.Command, candidates []domain.Candidate) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCHANNEL ID\tTITLE")
	fmt.Fprintln(w, "-\t----------\t-----")
	for i, c := range candidates {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, c.ChannelID, c.Title)
	}
	w.Flush()
}
