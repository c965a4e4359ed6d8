package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/ytget/ytgrab/internal/config"
	"github.com/ytget/ytgrab/internal/download"
	"github.com/ytget/ytgrab/internal/engine"
	"github.com/ytget/ytgrab/internal/model"
	"github.com/ytget/ytgrab/internal/platform"
)

var version = "dev"

var (
	flagOutput  string
	flagFormat  string
	flagQuality string
	flagNoSkip  bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ytgrab [url]",
	Short: "Download YouTube videos and playlists via yt-dlp",
	Long: `ytgrab - YouTube download orchestrator over yt-dlp

Downloads single videos or whole playlists, skipping items already
present in the destination folder. Audio formats are transcoded by the
engine; video formats are selected by container and resolution.

Examples:
  ytgrab https://www.youtube.com/watch?v=dQw4w9WgXcQ
  ytgrab https://www.youtube.com/playlist?list=PLxyz --format flac
  ytgrab https://youtu.be/dQw4w9WgXcQ --format mp4 --quality 720p -o ~/Videos`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runRoot,
	SilenceUsage: true,
}

// Execute runs the CLI. Exit code 1 on failure; user cancellation is not a
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Output directory (defaults to the configured download path)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format: mp3, flac, wav, m4a, ogg, mp4, webm, mkv, avi")
	rootCmd.Flags().StringVarP(&flagQuality, "quality", "q", "", "Audio bitrate (e.g. 192) or video resolution (e.g. 720p)")
	rootCmd.Flags().BoolVar(&flagNoSkip, "no-skip-existing", false, "Re-download items already present in the destination")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("ytgrab {{.Version}}\n")
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	url := args[0]
	if !platform.IsValidURL(url) {
		return fmt.Errorf("invalid YouTube URL: %s", url)
	}

	settings := config.Load()
	format, quality, output := resolveParams(settings)
	if !model.IsSupportedFormat(format) {
		return fmt.Errorf("unsupported format: %s", format)
	}
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

	// SIGINT raises the cooperative cancel; the in-flight item finishes.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\ncancelling after current item...")
		svc.Cancel()
	}()

	ctx := cmd.Context()
	info := eng.FetchInfo(ctx, url)
	if !info.Available() {
		return fmt.Errorf("could not fetch information for %s", url)
	}

	skipExisting := settings.GetBool(config.KeySkipExisting) && !flagNoSkip

	var ok bool
	if info.Kind == model.InfoCollection {
		fmt.Printf("Downloading playlist: %s (%d items)\n", info.Title(), info.Collection.AvailableCount())
		ok = svc.DownloadCollection(ctx, url, format, quality, skipExisting)
	} else {
		fmt.Printf("Downloading: %s\n", info.Title())
		ok = svc.DownloadSingle(ctx, url, format, quality)
	}

	fmt.Println()
	if svc.State() == model.RunCancelled {
		fmt.Println("Download cancelled.")
		return nil
	}
	if !ok {
		return fmt.Errorf("download failed")
	}
	fmt.Println("Download complete.")
	return nil
}

// resolveParams merges flags over persisted settings.
func resolveParams(settings *config.Settings) (format, quality, output string) {
	format = flagFormat
	if format == "" {
		format = settings.GetString(config.KeyDefaultFormat)
	}
	quality = flagQuality
	if quality == "" {
		quality = settings.GetString(config.KeyDefaultQuality)
	}
	output = flagOutput
	if output == "" {
		output = settings.GetString(config.KeyDownloadPath)
	}
	return format, quality, output
}

func printProgress(record model.ProgressRecord) {
	name := filepath.Base(record.Filename)
	switch record.Status {
	case model.ProgressDownloading:
		fmt.Printf("\r[%d/%d] %5.1f%% %10s ETA %-8s %s",
			record.CompletedFiles, record.TotalFiles, record.Percent, record.Speed, record.ETA, name)
	case model.ProgressFinished:
		fmt.Printf("\r[%d/%d] finished: %s\n", record.CompletedFiles, record.TotalFiles, name)
	}
}

func logsDir() string {
	return filepath.Join(xdg.StateHome, "ytgrab", "logs")
}

// newLogger logs to stderr and appends to a session log file. A file that
// cannot be opened downgrades to stderr only.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	if err := os.MkdirAll(logsDir(), 0755); err == nil {
		if f, err := os.OpenFile(filepath.Join(logsDir(), "ytgrab.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			w = io.MultiWriter(os.Stderr, f)
		}
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
