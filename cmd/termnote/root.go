package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"termnote/pkg/banner"
	"termnote/pkg/config"
	"termnote/pkg/logging"
	"termnote/pkg/note"
	"termnote/pkg/styles"
	"termnote/pkg/terminal"
	"termnote/pkg/termtext"
	"termnote/pkg/version"

	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands once the persistent
// pre-run has loaded configuration and logging.
type app struct {
	configPath string
	logLevel   string
	columns    int
	color      string
	widthMode  string

	cfg         config.Config
	measure     termtext.Measurer
	logger      *slog.Logger
	bannerShown bool
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "termnote",
		Short: "Render aligned notes and wrapped text for the terminal",
		Long: `termnote measures, wraps and frames CLI messages so that borders stay
aligned for CJK text, bullets and coloured input.`,
		Version:           version.Summary(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.emitBanner(cmd)
			return cmd.Help()
		},
	}
	root.SetVersionTemplate(`{{printf "termnote %s\n" .Version}}`)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default is $HOME/.termnote/config.json)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.IntVar(&a.columns, "columns", 0, "terminal width (default: detected)")
	flags.StringVar(&a.color, "color", "", "colour mode: auto, always, never")
	flags.StringVar(&a.widthMode, "width-mode", "", "width table: cjk, cjk-narrow-punct, unicode")

	root.AddCommand(
		newNoteCmd(a),
		newWrapCmd(a),
		newWidthCmd(a),
		newStripCmd(a),
		newBannerCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the config file, applies flag overrides and starts logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := a.configPath
	if path == "" {
		path = config.GetConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.columns != 0 {
		cfg.Columns = a.columns
	}
	if a.color != "" {
		cfg.Color = a.color
	}
	if a.widthMode != "" {
		cfg.WidthMode = a.widthMode
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg
	a.measure = measurerFor(cfg.WidthMode, cfg.AmbiguousWide)

	logger, err := logging.Init(cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
	}
	a.logger = logger.With(slog.String("command", cmd.Name()))
	a.logger.Debug("config loaded",
		"path", path,
		"width_mode", cfg.WidthMode,
		"ambiguous_wide", cfg.AmbiguousWide,
		"measurer", fmt.Sprintf("%T", a.measure),
		"columns", cfg.Columns,
		"max_width", cfg.MaxWidth,
		"box_style", cfg.BoxStyle,
		"color", cfg.Color)
	return nil
}

// outFile returns the command's output when it is an *os.File.
func outFile(cmd *cobra.Command) *os.File {
	f, _ := cmd.OutOrStdout().(*os.File)
	return f
}

// terminalColumns returns the configured width, or the detected width when
// writing to a file, or 0 to let the renderer pick its default.
func (a *app) terminalColumns(cmd *cobra.Command) int {
	if a.cfg.Columns > 0 {
		return a.cfg.Columns
	}
	if f := outFile(cmd); f != nil {
		return terminal.Columns(f)
	}
	return 0
}

func (a *app) rich(cmd *cobra.Command) bool {
	return terminal.ResolveColor(a.cfg.Color, terminal.IsTerminal(outFile(cmd)), os.Getenv)
}

func (a *app) measurer() termtext.Measurer {
	if a.measure == nil {
		return termtext.CJK
	}
	return a.measure
}

// measurerFor maps a validated width mode to its measurer.
func measurerFor(mode string, ambiguousWide bool) termtext.Measurer {
	switch mode {
	case config.WidthModeCJKNarrowPunct:
		return termtext.CJKNarrowPunct
	case config.WidthModeUnicode:
		return termtext.NewEastAsian(ambiguousWide)
	default:
		return termtext.CJK
	}
}

func (a *app) noteOptions(cmd *cobra.Command, maxWidth int) note.Options {
	box, _ := styles.BoxByName(a.cfg.BoxStyle)
	if maxWidth <= 0 {
		maxWidth = a.cfg.MaxWidth
	}
	return note.Options{
		Columns:  a.terminalColumns(cmd),
		MaxWidth: maxWidth,
		Style:    box,
		Rich:     a.rich(cmd),
		Measurer: a.measurer(),
	}
}

// emitBanner prints the banner once per process on an interactive stdout.
func (a *app) emitBanner(cmd *cobra.Command) {
	if a.bannerShown || !banner.ShouldEmit(os.Args[1:], terminal.IsTerminal(outFile(cmd))) {
		return
	}
	a.bannerShown = true
	fmt.Fprintln(cmd.OutOrStdout(), banner.FormatLine(defaultBannerInfo(), banner.Options{
		Columns: a.terminalColumns(cmd),
		Rich:    a.rich(cmd),
	}))
}

// readMessage joins args with spaces, or reads all of stdin when there are
// none. Trailing newlines are dropped.
func readMessage(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
