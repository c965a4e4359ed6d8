package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ytget/ytgrab/internal/config"
	"github.com/ytget/ytgrab/internal/maintain"
	"github.com/ytget/ytgrab/internal/platform"
)

var maintainCmd = &cobra.Command{
	Use:   "maintain",
	Short: "Maintenance tools for the download directory",
	Long: `Maintenance tools for the download directory.

Examples:
  ytgrab maintain storage             # Size and file counts
  ytgrab maintain clean               # Purge temp files, prune empty dirs
  ytgrab maintain organize            # Reorganize files into year/month dirs
  ytgrab maintain quality             # Audio bitrate distribution report
  ytgrab maintain full                # All of the above
  ytgrab maintain logs --days 30      # Delete old log files`,
}

var maintainStorageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Show storage usage of the download directory",
	Args:  cobra.NoArgs,
	RunE:  runMaintainStorage,
}

var maintainCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Purge temp files and prune empty directories",
	Args:  cobra.NoArgs,
	RunE:  runMaintainClean,
}

var maintainOrganizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Reorganize downloads into year/month directories by upload date",
	Args:  cobra.NoArgs,
	RunE:  runMaintainOrganize,
}

var maintainQualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Report the bitrate distribution of downloaded audio files",
	Args:  cobra.NoArgs,
	RunE:  runMaintainQuality,
}

var maintainFullCmd = &cobra.Command{
	Use:   "full",
	Short: "Run every maintenance step",
	Args:  cobra.NoArgs,
	RunE:  runMaintainFull,
}

var maintainLogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Delete log files older than the given number of days",
	Args:  cobra.NoArgs,
	RunE:  runMaintainLogs,
}

func init() {
	maintainLogsCmd.Flags().Int("days", 30, "Delete logs older than this many days")
	maintainCmd.AddCommand(maintainStorageCmd, maintainCleanCmd, maintainOrganizeCmd,
		maintainQualityCmd, maintainFullCmd, maintainLogsCmd)
	rootCmd.AddCommand(maintainCmd)
}

func maintainService() *maintain.Service {
	root := flagOutput
	if root == "" {
		root = config.Load().GetString(config.KeyDownloadPath)
	}
	return maintain.NewService(root, maintain.TaglibProber{}, newLogger())
}

func runMaintainStorage(cmd *cobra.Command, args []string) error {
	printStorage(maintainService().StorageInfo())
	return nil
}

func runMaintainClean(cmd *cobra.Command, args []string) error {
	svc := maintainService()
	fmt.Printf("Temp files deleted:        %d\n", svc.PurgeTemp())
	fmt.Printf("Empty directories pruned:  %d\n", svc.PruneEmptyDirs())
	return nil
}

func runMaintainOrganize(cmd *cobra.Command, args []string) error {
	fmt.Printf("Files reorganized: %d\n", maintainService().ReorganizeByDate())
	return nil
}

func runMaintainQuality(cmd *cobra.Command, args []string) error {
	printQuality(maintainService().QualityReport())
	return nil
}

func runMaintainFull(cmd *cobra.Command, args []string) error {
	results := maintainService().FullMaintenance(func(step string) {
		fmt.Println(step)
	})

	fmt.Println()
	fmt.Printf("Temp files deleted:        %d\n", results.TempFilesDeleted)
	fmt.Printf("Empty directories pruned:  %d\n", results.EmptyDirsDeleted)
	printQuality(results.Quality)
	printStorage(results.Storage)
	return nil
}

func runMaintainLogs(cmd *cobra.Command, args []string) error {
	days, _ := cmd.Flags().GetInt("days")
	deleted := maintainService().CleanupLogs(logsDir(), days)
	fmt.Printf("Log files deleted: %d\n", deleted)
	return nil
}

func printStorage(info maintain.StorageInfo) {
	fmt.Printf("Total size:   %s\n", platform.FormatFileSize(info.TotalSize))
	fmt.Printf("Files:        %d\n", info.FileCount)
	fmt.Printf("Folders:      %d\n", info.FolderCount)

	exts := make([]string, 0, len(info.Extensions))
	for ext := range info.Extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		fmt.Printf("  %-8s %d\n", ext, info.Extensions[ext])
	}
}

func printQuality(report maintain.QualityReport) {
	fmt.Printf("Files analyzed:   %d\n", report.FilesAnalyzed)
	fmt.Printf("Total duration:   %s\n", platform.FormatDuration(int(report.TotalDuration.Seconds())))
	fmt.Printf("Average bitrate:  %.0f kbps\n", report.AverageBitrate)
	for _, band := range []string{"320+ kbps", "256+ kbps", "192+ kbps", "128+ kbps", "<128 kbps"} {
		if count := report.Distribution[band]; count > 0 {
			fmt.Printf("  %-10s %d\n", band, count)
		}
	}
}
