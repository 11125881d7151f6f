package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"sensor-compare.klederson.com/internal/app"
	"sensor-compare.klederson.com/internal/compare"
	"sensor-compare.klederson.com/internal/config"
	"sensor-compare.klederson.com/internal/export"
	"sensor-compare.klederson.com/internal/logging"
	"sensor-compare.klederson.com/internal/sensor"
	"sensor-compare.klederson.com/internal/server"
)

var (
	flagConfig       string
	flagCatalog      string
	flagScreenInches float64
	flagLogFile      string
	flagLogLevel     string

	flagAddr string

	flagSearch string
	flagSort   string
	flagDesc   bool
	flagCSV    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sensor-compare",
		Short: "Sensor Compare - camera sensor size comparison in the terminal",
		Long: `Sensor Compare overlays camera sensor outlines at a common scale,
either fitted to the canvas or at real physical size for a given screen,
next to a sortable, searchable table of sensor metrics.

Use "serve" to expose the same comparison as a JSON API and "list" to
print the catalog.`,
		SilenceUsage: true,
		RunE:         run,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Settings file (YAML)")
	pf.StringVar(&flagCatalog, "catalog", "", "Sensor catalog file (YAML), embedded catalog if empty")
	pf.Float64Var(&flagScreenInches, "screen-inches", 0, "Screen diagonal in inches for real-size mode")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve comparison sessions over HTTP",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from settings)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the sensor catalog",
		RunE:  runList,
	}
	listCmd.Flags().StringVar(&flagSearch, "search", "", "Only sensors whose model or logo contains this text")
	listCmd.Flags().StringVar(&flagSort, "sort", "", "Sort column: dimensions, aspectRatio, diagonal, area, resolution, cropFactor, density")
	listCmd.Flags().BoolVar(&flagDesc, "desc", false, "Sort descending")
	listCmd.Flags().BoolVar(&flagCSV, "csv", false, "Write CSV instead of a table")

	rootCmd.AddCommand(serveCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads settings and the catalog and installs the logger. The
// returned function closes the log file, if any.
func setup(logToStderr bool) (*config.Settings, *sensor.Catalog, func(), error) {
	settings, err := config.LoadSettings(flagConfig)
	if err != nil {
		return nil, nil, nil, err
	}
	if flagCatalog != "" {
		settings.Catalog = flagCatalog
	}
	if flagScreenInches > 0 {
		settings.Screen.DiagonalInches = flagScreenInches
	}
	if flagLogFile != "" {
		settings.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		settings.Log.Level = flagLogLevel
	}

	cleanup := func() {}
	switch {
	case settings.Log.File != "":
		l, closeLog, err := logging.Open(settings.Log.File, settings.Log.Level)
		if err != nil {
			return nil, nil, nil, err
		}
		logging.SetLogger(l)
		cleanup = func() { _ = closeLog() }
	case logToStderr:
		lvl, err := logging.ParseLevel(settings.Log.Level)
		if err != nil {
			return nil, nil, nil, err
		}
		logging.SetLogger(logging.New(os.Stderr, lvl))
	}

	var c *sensor.Catalog
	if settings.Catalog == "" {
		c, err = sensor.Default()
	} else {
		c, err = sensor.Load(settings.Catalog)
	}
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	logging.L().Info("catalog loaded", "sensors", c.Len(), "path", settings.Catalog)
	return settings, c, cleanup, nil
}

func run(cmd *cobra.Command, args []string) error {
	settings, c, cleanup, err := setup(false)
	if err != nil {
		return err
	}
	defer cleanup()

	model := app.New(c, settings)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, c, cleanup, err := setup(true)
	if err != nil {
		return err
	}
	defer cleanup()

	if flagAddr != "" {
		settings.Server.Addr = flagAddr
	}

	srv := server.New(c, settings)
	logging.L().Info("listening", "addr", settings.Server.Addr)
	return srv.Listen(settings.Server.Addr)
}

func runList(cmd *cobra.Command, args []string) error {
	_, c, cleanup, err := setup(true)
	if err != nil {
		return err
	}
	defer cleanup()

	var st compare.SortState
	if flagSort != "" {
		col, err := compare.ColumnByName(flagSort)
		if err != nil {
			return err
		}
		st = compare.SortState{Primary: col.Key, Secondary: col.Key2, Direction: compare.Asc}
		if flagDesc {
			st.Direction = compare.Desc
		}
	}

	list := compare.FilterSort(compare.Pointers(c), flagSearch, st)
	rows := compare.Rows(list, func(int) bool { return false })

	if flagCSV {
		return export.WriteRows(cmd.OutOrStdout(), rows)
	}

	headers := []string{"Logo", "Model"}
	for _, col := range compare.Columns {
		headers = append(headers, col.Title)
	}
	data := make([][]string, len(rows))
	for i, r := range rows {
		ar := r.AspectRatio
		if ar == "" {
			ar = sensor.Missing
		}
		data[i] = []string{r.LogoName, r.Model, r.Dimensions, ar, r.Diagonal, r.Area, r.Resolution, r.CropFactor, r.Density}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	fmt.Fprintf(cmd.OutOrStdout(), "%d sensors\n", len(rows))
	return nil
}
