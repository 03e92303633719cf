package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	wxrfetch "github.com/hellenic-development/wxr-media-fetch"
	"github.com/hellenic-development/wxr-media-fetch/pkg/wxr"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const version = wxrfetch.Version

var (
	exportFile string
	outputDir  string
	configFile string
	quiet      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wxr-media-fetch",
		Short: "Download media attachments from a WordPress export",
		Long:  "A tool to extract attachment URLs from a WordPress content export (WXR) file and download the referenced media files to a local directory",
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Export file path (default: export.xml in the working directory, with an interactive prompt as fallback)")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory for downloaded media (default: <export-basename>_media)")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Settings file (default: .wxr-media-fetch.yaml if present)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wxr-media-fetch version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n📦 WordPress Media Fetch")
	cyan.Println("========================")
	cyan.Println()

	opts := wxrfetch.Options{
		ExportPath:   exportFile,
		PathProvider: wxr.PathProviderFunc(promptForPath),
		OutputDir:    outputDir,
		ConfigFile:   configFile,
	}

	if !quiet {
		opts.Logger = &cliLogger{}
		opts.Progress = func(current, total int, fileName string) {
			percent := float64(current) / float64(total) * 100
			fmt.Printf("[%d/%d] %.1f%% %s\n", current, total, percent, fileName)
		}
	}

	result, err := wxrfetch.Run(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		waitForEnter()
		os.Exit(1)
	}

	cyan.Println("\n📊 Download Summary:")
	fmt.Printf("  • Downloaded: %d\n", result.Successes)
	fmt.Printf("  • Skipped (already present): %d\n", result.Skips)
	if result.Failures > 0 {
		red.Printf("  • Failed: %d\n", result.Failures)
	}

	fmt.Println()
	green.Printf("Media directory: %s\n", result.OutputDir)
	green.Printf("Download log:    %s\n", result.LogPath)
	if result.Failures > 0 {
		red.Printf("Error log:       %s\n", result.ErrorLogPath)
	}

	green.Println("\n✨ Done")
	waitForEnter()
}

// promptForPath asks for an export file path on stdin when the default
// export file is absent and no --file flag was given.
func promptForPath() (string, error) {
	fmt.Print("Export file not found. Enter the path to your WordPress export file: ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read export file path: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// waitForEnter pauses before exiting so double-click launches keep their
// output visible. Skipped when stdout is not a terminal.
func waitForEnter() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return
	}
	fmt.Print("\nPress Enter to exit...")
	bufio.NewReader(os.Stdin).ReadString('\n')
}

// cliLogger implements wxrfetch.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
