package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/shelve/internal/config"
	"github.com/llehouerou/shelve/internal/errmsg"
	"github.com/llehouerou/shelve/internal/organizer"
)

// maxExamples is the number of example paths shown per report category.
const maxExamples = 3

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "shelve [source] [destination]",
		Short: "Organize music files into an Artist/Album library",
		Long: `Shelve scans a source directory for music files (mp3, flac, m4a, wav, ogg),
reads their embedded tags, and moves each file into Artist/Album folders under
the destination. Exact-content duplicates and downloader sidecar files are
deleted, and directories left empty by the moves are pruned.

Source and destination can be given as arguments or in the config file
($XDG_CONFIG_HOME/shelve/config.toml or ./config.toml).`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpLoadConfig, err))
			}
			if len(args) > 0 {
				cfg.Source = args[0]
			}
			if len(args) > 1 {
				cfg.Destination = args[1]
			}
			if cfg.Source == "" || cfg.Destination == "" {
				return errors.New("source and destination are required (as arguments or in the config file)")
			}

			report, err := organizer.New(organizer.Options{
				Source:            cfg.Source,
				Destination:       cfg.Destination,
				SidecarExtensions: cfg.SidecarExtensions,
				DryRun:            dryRun,
			}).Run()
			if err != nil {
				return err
			}

			fmt.Print(renderReport(report, dryRun))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"report what would be done without moving or deleting anything; "+
			"the plan is computed against the current destination, so name collisions "+
			"between two files that are both still in the source are not simulated")

	return cmd
}

func renderReport(r *organizer.Report, dryRun bool) string {
	var sb strings.Builder

	title := "Organize Complete"
	if dryRun {
		title = "Dry Run - no files were touched"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")

	if len(r.Moved) > 0 {
		renderCategory(&sb, "Organized", r.Moved, successStyle)
	}
	if len(r.Duplicates) > 0 {
		renderCategory(&sb, "Duplicates removed", r.Duplicates, warnStyle)
	}
	if len(r.Sidecars) > 0 {
		renderCategory(&sb, "Sidecars deleted", r.Sidecars, warnStyle)
	}
	if len(r.PrunedDirs) > 0 {
		renderCategory(&sb, "Empty directories pruned", r.PrunedDirs, subtleStyle)
	}

	if len(r.Notes) > 0 {
		sb.WriteString(subtleStyle.Render(fmt.Sprintf("Notes: %d", len(r.Notes))))
		sb.WriteString("\n")
		for _, note := range r.Notes {
			sb.WriteString("  ")
			sb.WriteString(subtleStyle.Render(note))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(r.Failures) > 0 {
		sb.WriteString(errorStyle.Render(fmt.Sprintf("Failures: %d", len(r.Failures))))
		sb.WriteString("\n")
		for _, f := range r.Failures {
			sb.WriteString("  ")
			sb.WriteString(f.String())
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(r.Moved) == 0 && len(r.Duplicates) == 0 && len(r.Sidecars) == 0 &&
		len(r.PrunedDirs) == 0 && len(r.Failures) == 0 {
		sb.WriteString(subtleStyle.Render("Nothing to do"))
		sb.WriteString("\n\n")
	}

	sb.WriteString(strings.Repeat("─", 40))
	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render(fmt.Sprintf(
		"Total: %d organized (%s), %d duplicates, %d sidecars, %d directories pruned",
		len(r.Moved), humanize.Bytes(uint64(r.BytesMoved)),
		len(r.Duplicates), len(r.Sidecars), len(r.PrunedDirs))))
	sb.WriteString("\n")

	return sb.String()
}

func renderCategory(sb *strings.Builder, label string, paths []string, style lipgloss.Style) {
	sb.WriteString(style.Render(fmt.Sprintf("%s: %d", label, len(paths))))
	sb.WriteString("\n")

	for i, path := range paths {
		if i >= maxExamples {
			remaining := len(paths) - maxExamples
			sb.WriteString("  ")
			sb.WriteString(subtleStyle.Render(fmt.Sprintf("... and %d more", remaining)))
			sb.WriteString("\n")
			break
		}
		sb.WriteString("  • ")
		sb.WriteString(subtleStyle.Render(path))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}
