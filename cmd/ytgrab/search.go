package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/ytgrab/internal/engine"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search YouTube and list matching videos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntP("max", "m", 10, "Maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	maxResults, _ := cmd.Flags().GetInt("max")

	query := strings.Join(args, " ")

	eng := engine.New(newLogger())
	items := eng.Search(cmd.Context(), query, maxResults)
	if len(items) == 0 {
		fmt.Println("No results.")
		return nil
	}

	for i, item := range items {
		fmt.Printf("%2d. %s  %s\n    %s\n", i+1, item.ID, item.Title, item.URL)
	}
	return nil
}
