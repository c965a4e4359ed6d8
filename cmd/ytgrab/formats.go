package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ytget/ytgrab/internal/engine"
	"github.com/ytget/ytgrab/internal/platform"
)

var formatsCmd = &cobra.Command{
	Use:   "formats <url>",
	Short: "List available download formats for a video",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, args []string) error {
	url := args[0]
	if !platform.IsValidURL(url) {
		return fmt.Errorf("invalid YouTube URL: %s", url)
	}

	eng := engine.New(newLogger())
	formats := eng.ListFormats(cmd.Context(), url)
	if formats == nil {
		return fmt.Errorf("could not fetch information for %s", url)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEXT\tRESOLUTION\tBITRATE\tNOTE")
	for _, f := range formats {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0fk\t%s\n", f.ID, f.Ext, f.Resolution, f.Bitrate, f.Note)
	}
	return w.Flush()
}
