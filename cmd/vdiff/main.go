package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vdiff/internal/config"
	"github.com/vango-dev/vdiff/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// appFs is the filesystem every command reads and writes through.
var appFs = afero.NewOsFs()

// cli holds state shared by the commands of one invocation.
type cli struct {
	configPath string
	logLevel   string
	colorMode  string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "vdiff",
		Short: "Diff, patch and preview virtual node trees",
		Long: `vdiff computes minimal patch scripts between virtual node trees and
applies them to a live host tree.

  diff     print the patch script between two tree documents
  render   render tree documents in sequence and export the HTML
  serve    run the live preview server with the counter app`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to vdiff.json (default ./vdiff.json if present)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&c.colorMode, "color", "", "Color output: auto, always, never")

	root.AddCommand(
		diffCmd(c),
		renderCmd(c),
		serveCmd(c),
		versionCmd(),
	)
	return root
}

// setup loads configuration and applies logging and color settings.
func (c *cli) setup(cmd *cobra.Command) error {
	var err error
	if c.configPath != "" {
		c.cfg, err = config.LoadFileFs(appFs, c.configPath)
	} else {
		c.cfg, err = config.LoadOrDefault(appFs, ".")
	}
	if err != nil {
		return err
	}

	if c.logLevel != "" {
		c.cfg.Log.Level = c.logLevel
	}
	if c.colorMode != "" {
		c.cfg.Color = c.colorMode
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	level, _ := config.ParseLevel(c.cfg.Log.Level)
	c.logger = newLogger(cmd.ErrOrStderr(), c.cfg.Log.Format, level)
	slog.SetDefault(c.logger)

	color.NoColor = !useColor(c.cfg.Color, cmd.OutOrStdout())
	return nil
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// useColor resolves a color mode; auto colors terminals only.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// success prints a success line.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, args...))
}

// info prints an indented line.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// outputName maps a tree document path to its HTML file name.
func outputName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))] + ".html"
}
