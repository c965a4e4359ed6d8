package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/ytgrab/internal/engine"
	"github.com/ytget/ytgrab/internal/model"
	"github.com/ytget/ytgrab/internal/platform"
)

var infoCmd = &cobra.Command{
	Use:   "info <url>",
	Short: "Show metadata for a video or playlist without downloading",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	url := args[0]
	if !platform.IsValidURL(url) {
		return fmt.Errorf("invalid YouTube URL: %s", url)
	}

	eng := engine.New(newLogger())
	info := eng.FetchInfo(cmd.Context(), url)
	if !info.Available() {
		return fmt.Errorf("could not fetch information for %s", url)
	}

	switch info.Kind {
	case model.InfoSingle:
		printItem(info.Item)
	case model.InfoCollection:
		fmt.Printf("Playlist: %s\n", info.Collection.Title)
		fmt.Printf("Items:    %d (%d available)\n", len(info.Collection.Items), info.Collection.AvailableCount())
		for i, item := range info.Collection.Items {
			if item == nil {
				fmt.Printf("%4d. [unavailable]\n", i+1)
				continue
			}
			fmt.Printf("%4d. %s  %s  (%s)\n", i+1, item.ID, item.Title, item.DurationString())
		}
	}
	return nil
}

func printItem(item *model.MediaItem) {
	fmt.Printf("Title:    %s\n", item.Title)
	fmt.Printf("Uploader: %s\n", item.Uploader)
	fmt.Printf("Duration: %s\n", item.DurationString())
	fmt.Printf("Uploaded: %s\n", item.UploadDate)
	fmt.Printf("URL:      %s\n", item.URL)
}
