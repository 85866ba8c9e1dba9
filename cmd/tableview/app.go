package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-tableview"
	"github.com/domonda/go-tableview/csvtable"
	"github.com/domonda/go-tableview/exceltable"
	"github.com/domonda/go-tableview/htmltable"
	"github.com/domonda/go-tableview/internal/settings"
	"github.com/domonda/go-tableview/summary"
	"github.com/domonda/go-tableview/textgrid"
)

// App holds the flags and state of one command line invocation.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// SettingsPath overrides the default settings file if not empty
	SettingsPath string

	path      string
	recent    int
	separator string
	decimal   string
	color     string
	logLevel  string

	log      zerolog.Logger
	settings *settings.Settings
}

func NewApp() *App {
	return &App{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute runs the command line args.
func (app *App) Execute(ctx context.Context, args []string) error {
	root := app.rootCommand()
	root.SetArgs(args)
	root.SetOut(app.Stdout)
	root.SetErr(app.Stderr)
	return root.ExecuteContext(ctx)
}

type showOptions struct {
	dropNA   bool
	limit    int
	decimals int
}

func (o *showOptions) register(flags *pflag.FlagSet) {
	flags.BoolVar(&o.dropNA, "dropna", false, "Remove rows with missing values")
	flags.IntVar(&o.limit, "limit", 0, "Maximum number of rows to display (0 for all)")
	flags.IntVar(&o.decimals, "decimals", -1, "Decimal places of numbers (default from settings)")
}

func (app *App) rootCommand() *cobra.Command {
	var show showOptions
	root := &cobra.Command{
		Use:   "tableview {-p path | --recent n} [-s separator] [-d decimal]",
		Short: "View CSV and XLSX files as tables",
		Long: `tableview loads a delimited text or XLSX file, types its columns
as numbers or texts, and displays it as a table with missing values marked.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runShow(cmd.Context(), show)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&app.path, "path", "p", "", "Path to CSV or XLSX file")
	flags.IntVar(&app.recent, "recent", 0, "Open entry n of the recent files list instead of a path")
	flags.StringVarP(&app.separator, "separator", "s", "comma", "Separator: comma, semicolon or tab")
	flags.StringVarP(&app.decimal, "decimal", "d", "dot", "Decimal point: dot or comma")
	flags.StringVar(&app.color, "color", "", "Color mode: auto, always or never (default from settings or auto)")
	flags.StringVar(&app.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	show.register(root.Flags())

	root.AddCommand(
		app.showCommand(),
		app.summaryCommand(),
		app.infoCommand(),
		app.htmlCommand(),
		app.recentCommand(),
	)
	return root
}

func (app *App) showCommand() *cobra.Command {
	var show showOptions
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runShow(cmd.Context(), show)
		},
	}
	show.register(cmd.Flags())
	return cmd
}

func (app *App) summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Display descriptive statistics of the numeric columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := app.loadTable(cmd.Context())
			if err != nil {
				return err
			}
			described, err := summary.Describe(table)
			if err != nil {
				return err
			}
			policy := summary.DescribePolicy()
			policy.MissingMarker = app.missingMarker()
			return app.writeGrid(cmd.Context(), described, policy, 0)
		},
	}
}

func (app *App) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display name, type and non-missing count of every column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := app.loadTable(cmd.Context())
			if err != nil {
				return err
			}
			return app.writeGrid(cmd.Context(), summary.Info(table), summary.InfoPolicy(), 0)
		},
	}
}

func (app *App) htmlCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "html",
		Short: "Write the table as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runHTML(cmd.Context(), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func (app *App) recentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List the recently opened files",
		Long: `recent lists the recently opened files, most recent first.
Pass the number of an entry with --recent to open it again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, path := range app.settings.RecentFiles {
				_, err := fmt.Fprintf(app.Stdout, "%d %s  %s\n", i+1, filepath.Base(path), path)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (app *App) setup() error {
	level, err := zerolog.ParseLevel(app.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", app.logLevel, err)
	}
	consoleWriter := zerolog.ConsoleWriter{Out: app.Stderr, NoColor: app.color == "never"}
	app.log = zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Logger()

	if app.SettingsPath != "" {
		app.settings, err = settings.LoadFromPath(app.SettingsPath)
	} else {
		app.settings, err = settings.Load()
	}
	if err != nil {
		return err
	}

	if app.recent != 0 {
		if app.path != "" {
			return errors.New("flags --path and --recent can't be used together")
		}
		app.path, err = app.settings.RecentFile(app.recent)
		if err != nil {
			return err
		}
	}
	return nil
}

func (app *App) runShow(ctx context.Context, opts showOptions) error {
	log := app.log.With().Str("component", "session").Logger()

	policy, err := app.settings.FormatPolicy()
	if err != nil {
		return err
	}
	session, err := tableview.NewSession(policy)
	if err != nil {
		return err
	}
	defer session.Close()

	err = session.LoadFrom(func() (*tableview.Table, error) { return app.loadTable(ctx) })
	if err != nil {
		return err
	}
	if opts.decimals >= 0 {
		policy.DecimalPlaces = opts.decimals
		if err = session.SetPolicy(policy); err != nil {
			return err
		}
	}
	if opts.dropNA {
		removed, err := session.DropMissingRows()
		if err != nil {
			return err
		}
		log.Info().Int("removed", removed).Msg("dropped rows with missing values")
	}

	a := session.Adapter()
	grid, err := app.gridWriter()
	if err != nil {
		return err
	}
	err = grid.WithRowLimit(opts.limit).Write(ctx, app.Stdout, a)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(app.Stdout, "Rows: %d Cols: %d\n", a.RowCount(), a.ColumnCount())
	return err
}

func (app *App) runHTML(ctx context.Context, output string) error {
	table, err := app.loadTable(ctx)
	if err != nil {
		return err
	}
	policy, err := app.settings.FormatPolicy()
	if err != nil {
		return err
	}
	a, err := tableview.NewAdapter(table, policy)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = htmltable.NewWriter().
		WithTableClass("dataframe").
		WithMissingClass("missing").
		Write(ctx, &buf, a, table.Title())
	if err != nil {
		return err
	}
	buf.WriteByte('\n')

	if output == "" {
		_, err = app.Stdout.Write(buf.Bytes())
		return err
	}
	err = fs.File(output).WriteAllContext(ctx, buf.Bytes())
	if err != nil {
		return err
	}
	app.log.Info().Str("component", "html").Str("file", output).Msg("written")
	return nil
}

func (app *App) writeGrid(ctx context.Context, table *tableview.Table, policy tableview.FormatPolicy, limit int) error {
	a, err := tableview.NewAdapter(table, policy)
	if err != nil {
		return err
	}
	grid, err := app.gridWriter()
	if err != nil {
		return err
	}
	return grid.WithRowLimit(limit).Write(ctx, app.Stdout, a)
}

func (app *App) gridWriter() (*textgrid.Writer, error) {
	mode := app.color
	if mode == "" {
		mode = app.settings.Color
	}
	switch mode {
	case "", "auto":
		return textgrid.NewWriter().WithColor(textgrid.ColorAuto), nil
	case "always":
		return textgrid.NewWriter().WithColor(textgrid.ColorAlways), nil
	case "never":
		return textgrid.NewWriter().WithColor(textgrid.ColorNever), nil
	default:
		return nil, fmt.Errorf("invalid color mode %q, expected auto, always or never", mode)
	}
}

func (app *App) missingMarker() string {
	policy, err := app.settings.FormatPolicy()
	if err != nil {
		return ""
	}
	return policy.MissingMarker
}

// loadTable reads the file of the path flag
// or the recent file it was resolved from.
// Files with an XLSX extension are read as spreadsheet,
// all other files as delimited text.
func (app *App) loadTable(ctx context.Context) (*tableview.Table, error) {
	if app.path == "" {
		return nil, errors.New("flag --path or --recent is required")
	}
	separator, err := csvtable.ParseSeparatorName(app.separator)
	if err != nil {
		return nil, err
	}
	decimal, err := csvtable.ParseDecimalName(app.decimal)
	if err != nil {
		return nil, err
	}

	file := fs.File(app.path)
	log := app.log.With().Str("component", "loader").Str("file", file.Name()).Logger()

	var table *tableview.Table
	switch strings.ToLower(file.Ext()) {
	case ".xlsx", ".xlsm":
		table, err = exceltable.LoadFile(ctx, file, tableview.NewValueParser().WithDecimal(decimal))
	default:
		format := csvtable.NewFormat(separator)
		format.Decimal = decimal
		table, err = csvtable.LoadFile(ctx, file, format)
	}
	if err != nil {
		log.Error().Err(err).Msg("loading failed")
		return nil, err
	}
	log.Info().Int("rows", table.NumRows()).Int("cols", table.NumCols()).Msg("loaded")

	app.rememberFile(file.LocalPath())
	return table, nil
}

func (app *App) rememberFile(path string) {
	app.settings.AddRecentFile(path)
	var err error
	if app.SettingsPath != "" {
		err = app.settings.SaveToPath(app.SettingsPath)
	} else {
		err = app.settings.Save()
	}
	if err != nil {
		app.log.Warn().Str("component", "settings").Err(err).Msg("can't save recent files")
	}
}
