package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ytget/ytgrab/internal/config"
	"github.com/ytget/ytgrab/internal/download"
	"github.com/ytget/ytgrab/internal/platform"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show download history derived from sidecar metadata files",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	root := flagOutput
	if root == "" {
		root = config.Load().GetString(config.KeyDownloadPath)
	}

	entries := download.History(root)
	if len(entries) == 0 {
		fmt.Println("No downloads recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DOWNLOADED\tTITLE\tUPLOADER\tDURATION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.DownloadedAt.Format("2006-01-02 15:04"),
			e.Title, e.Uploader, platform.FormatDuration(int(e.Duration)))
	}
	return w.Flush()
}
