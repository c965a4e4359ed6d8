package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/ytgrab/internal/config"
	"github.com/ytget/ytgrab/internal/download"
	"github.com/ytget/ytgrab/internal/engine"
	"github.com/ytget/ytgrab/internal/model"
	"github.com/ytget/ytgrab/internal/platform"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Download every URL listed in a file",
	Long: `Download every URL listed in a file, one per line. Lines starting
with # are ignored. Playlist and video URLs may be mixed; each URL's
outcome is reported individually and one failure does not stop the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format")
	batchCmd.Flags().StringVarP(&flagQuality, "quality", "q", "", "Quality token")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	urls, err := readURLList(args[0])
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		fmt.Println("No URLs in list.")
		return nil
	}

	settings := config.Load()
	format, quality, output := resolveParams(settings)
	if err := platform.EnsureDir(output); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	logger := newLogger()
	eng := engine.New(logger)
	svc := download.NewService(eng, download.Config{
		OutputDir:       output,
		EmbedThumbnails: settings.GetBool(config.KeyEmbedThumbnails),
		SaveMetadata:    settings.GetBool(config.KeySaveMetadata),
	}, logger)
	svc.SetProgressObserver(printProgress)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nstopping after current item...")
		svc.Cancel()
	}()

	skipExisting := settings.GetBool(config.KeySkipExisting)
	results := svc.DownloadFromList(cmd.Context(), urls, format, quality, skipExisting)

	fmt.Println()
	failed := 0
	for _, r := range results {
		if r.Success {
			fmt.Printf("  ok    %-8s %s\n", r.Type, r.URL)
			continue
		}
		failed++
		reason := r.Error
		if reason == "" {
			reason = "download failed"
		}
		fmt.Printf("  FAIL  %-8s %s (%s)\n", r.Type, r.URL, reason)
	}
	fmt.Printf("%d/%d succeeded\n", len(results)-failed, len(results))

	if svc.State() == model.RunCancelled {
		fmt.Println("Batch cancelled.")
	}
	return batchOutcome(failed, len(results), svc.State())
}

// batchOutcome maps the batch result to the command's exit outcome. User
// cancellation is not a failure, even when every item completed before the
// stop had failed.
func batchOutcome(failed, total int, state model.RunState) error {
	if state == model.RunCancelled {
		return nil
	}
	if total > 0 && failed == total {
		return fmt.Errorf("all downloads failed")
	}
	return nil
}

func readURLList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read URL list: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
