package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/vito/hoverbox/pkg/doctext"
	"github.com/vito/hoverbox/pkg/hoverbox"
)

func main() {
	var flags struct {
		debug      bool
		configPath string
		row, col   int
		width      int
		height     int
		maxWidth   int
		maxHeight  int
		placement  string
		noBorder   bool
		plain      bool
	}

	rootCmd := &cobra.Command{
		Use:   "hoverbox [flags] [file]",
		Short: "Render a documentation bubble anchored at a cursor position",
		Long: `hoverbox cleans a raw documentation string and composites it as a
floating bubble onto a terminal grid, anchored at the given cursor
position. It is a harness for the hoverbox library: the same cleanup
pipeline and placement logic an editor host would call.`,
		Example: `  # Show a doc file in a bubble anchored at row 10, column 20
  hoverbox --row 10 --col 20 doc.md

  # Pipe hover text in and pin the bubble to the top-right corner
  lsp-hover | hoverbox --placement top-right

  # Plain output without ANSI styling
  hoverbox --plain doc.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(flags.debug)

			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			cfg.apply(configOverrides{
				maxWidth:  flags.maxWidth,
				maxHeight: flags.maxHeight,
				placement: flags.placement,
				noBorder:  flags.noBorder,
			})

			raw, err := readDocText(args)
			if err != nil {
				return err
			}

			screen := screenSize(flags.width, flags.height)
			anchor := hoverbox.Point{X: flags.col, Y: flags.row}
			return render(cmd.OutOrStdout(), raw, anchor, screen, cfg, flags.plain)
		},
	}

	rootCmd.Flags().BoolVarP(&flags.debug, "debug", "d", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&flags.configPath, "config", "", "Path to a hoverbox.toml config file")
	rootCmd.Flags().IntVar(&flags.row, "row", 0, "Anchor row (cursor line)")
	rootCmd.Flags().IntVar(&flags.col, "col", 0, "Anchor column (cursor column)")
	rootCmd.Flags().IntVar(&flags.width, "width", 0, "Screen width (default: terminal width)")
	rootCmd.Flags().IntVar(&flags.height, "height", 0, "Screen height (default: terminal height)")
	rootCmd.Flags().IntVar(&flags.maxWidth, "max-width", 0, "Maximum bubble content width")
	rootCmd.Flags().IntVar(&flags.maxHeight, "max-height", 0, "Maximum bubble content height")
	rootCmd.Flags().StringVar(&flags.placement, "placement", "", "Placement policy: at-point, top-right, bottom-left")
	rootCmd.Flags().BoolVar(&flags.noBorder, "no-border", false, "Draw the bubble without a border")
	rootCmd.Flags().BoolVar(&flags.plain, "plain", false, "Disable ANSI styling")

	ctx := context.Background()
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
	); err != nil {
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{Level: level})
	slog.SetDefault(slog.New(handler))
}

func readDocText(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading doc text: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading doc text from stdin: %w", err)
	}
	return string(data), nil
}

// screenSize returns the demo grid dimensions, preferring explicit
// flags over the real terminal size, with an 80x24 fallback.
func screenSize(width, height int) hoverbox.Size {
	size := hoverbox.Size{Width: 80, Height: 24}
	if w, h, ok := terminalSize(); ok {
		size = hoverbox.Size{Width: w, Height: h}
	}
	if width > 0 {
		size.Width = width
	}
	if height > 0 {
		size.Height = height
	}
	return size
}

func render(out io.Writer, raw string, anchor hoverbox.Point, screen hoverbox.Size, cfg *config, plain bool) error {
	styles := doctext.DefaultStyles()
	if plain {
		styles = doctext.Styles{}
	}

	frame := hoverbox.NewTextFrame(&hoverbox.TextFrameOptions{
		Border: cfg.Border,
	})
	m := hoverbox.NewManager(
		func() (hoverbox.Frame, error) { return frame, nil },
		&hoverbox.ManagerOptions{
			Placement:  cfg.placementFunc(),
			Styles:     styles,
			MaxWidth:   hoverbox.FixedBound(cfg.MaxWidth),
			MaxHeight:  hoverbox.FixedBound(cfg.MaxHeight),
			LineHeight: cfg.LineHeight,
		},
	)

	if err := m.Show(raw, anchor, screen); err != nil {
		return err
	}
	if !m.Visible() {
		slog.Info("no documentation to display")
		return nil
	}

	composited := frame.Composite(backdrop(anchor, screen))
	if len(composited) > screen.Height {
		composited = composited[:screen.Height]
	}
	_, err := fmt.Fprintln(out, strings.Join(composited, "\n"))
	return err
}

// backdrop builds a vi-style empty buffer with a cursor marker at the
// anchor, so the bubble has something to float over.
func backdrop(anchor hoverbox.Point, screen hoverbox.Size) []string {
	lines := make([]string, screen.Height)
	for i := range lines {
		lines[i] = "~"
	}
	if anchor.Y >= 0 && anchor.Y < len(lines) {
		lines[anchor.Y] = strings.Repeat(" ", anchor.X) + "▌"
	}
	return lines
}
