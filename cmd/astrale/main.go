package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/kiimicoum5/Astrale/internal/body"
	"github.com/kiimicoum5/Astrale/internal/config"
	"github.com/kiimicoum5/Astrale/internal/ephem"
	"github.com/kiimicoum5/Astrale/internal/export"
	"github.com/kiimicoum5/Astrale/internal/impact"
	"github.com/kiimicoum5/Astrale/internal/orbit"
	"github.com/kiimicoum5/Astrale/internal/scene"
	"github.com/kiimicoum5/Astrale/internal/storage"
	"github.com/kiimicoum5/Astrale/internal/sweep"
	"github.com/kiimicoum5/Astrale/internal/tui"
	"github.com/kiimicoum5/Astrale/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

var (
	dataDir     string
	configFile  string
	catalogPath string
	// Scenario parameters
	scenario string
	mass     float64
	radius   float64
	velocity float64
	angle    float64
	gravity  float64
	density  float64
	jsonOut  bool
	// Headless run controls
	duration  float64
	dt        float64
	focusBody string
	liveURL   string
	// Sweep controls
	steps   int
	workers int
	save    bool
	outJSON string
	outCSV  string
	column  string
	// Trace and SVG output
	segments  int
	svgOut    string
	svgWidth  int
	svgHeight int
	atTime    float64
)

// main is the entry point for the astrale CLI; it registers commands and flags and launches the interactive viewer when no subcommand is provided.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "astrale",
		Short: "solar system scenario explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".astrale", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "body catalog path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the scene headless and print sampled frames",
		RunE:  runScene,
	}
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "scene duration (seconds)")
	runCmd.Flags().Float64Var(&dt, "dt", 1.0/60.0, "frame timestep")
	runCmd.Flags().StringVar(&focusBody, "focus", "", "body to select before running")
	runCmd.Flags().StringVar(&liveURL, "live", "", "live position feed url")
	addScenarioFlags(runCmd)

	indicatorsCmd := &cobra.Command{
		Use:   "indicators",
		Short: "compute impact indicators for a scenario",
		RunE:  showIndicators,
	}
	indicatorsCmd.Flags().BoolVar(&jsonOut, "json", false, "emit json instead of a table")
	addScenarioFlags(indicatorsCmd)

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list catalog bodies",
		RunE:  listBodies,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [body]",
		Short: "plot one body's orbital distance profile",
		Args:  cobra.ExactArgs(1),
		RunE:  traceBody,
	}
	traceCmd.Flags().IntVar(&segments, "segments", config.DefaultTraceSegments, "trace segments")

	sweepCmd := &cobra.Command{
		Use:   "sweep [field]",
		Short: "sweep one parameter across its range",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&steps, "steps", 24, "sample count across the field's range")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = serial)")
	sweepCmd.Flags().BoolVar(&save, "save", false, "save the run under the data directory")
	sweepCmd.Flags().StringVar(&outJSON, "out-json", "", "also write the run as json")
	sweepCmd.Flags().StringVar(&outCSV, "out-csv", "", "also write the run as csv")
	addScenarioFlags(sweepCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sweep runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved sweep run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&column, "column", "", "plot a single indicator column")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a starter config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}

	svgCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "render the orbit map as svg",
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVar(&svgOut, "out", "orbits.svg", "output path")
	svgCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	svgCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")
	svgCmd.Flags().Float64Var(&atTime, "at", 0, "scene time to place bodies at")
	svgCmd.Flags().IntVar(&segments, "segments", config.DefaultTraceSegments, "trace segments")

	rootCmd.AddCommand(runCmd, indicatorsCmd, bodiesCmd, traceCmd, sweepCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, presetsCmd, initCmd, svgCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addScenarioFlags registers the shared scenario parameter flags.
func addScenarioFlags(cmd *cobra.Command) {
	def := impact.DefaultParams()
	cmd.Flags().StringVar(&scenario, "scenario", "", "scenario preset name")
	cmd.Flags().Float64Var(&mass, "mass", def.Mass, "mass (10^12 kg)")
	cmd.Flags().Float64Var(&radius, "radius", def.Radius, "radius (km)")
	cmd.Flags().Float64Var(&velocity, "velocity", def.Velocity, "velocity (km/s)")
	cmd.Flags().Float64Var(&angle, "angle", def.Angle, "entry angle (deg)")
	cmd.Flags().Float64Var(&gravity, "gravity", def.Gravity, "surface gravity (m/s^2)")
	cmd.Flags().Float64Var(&density, "density", def.Density, "density (g/cm^3)")
}

// loadConfig reads the config file when one is given, otherwise the
// defaults.
func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadCatalog picks the body catalog: the --catalog flag wins, then
// the config file's path, then the builtin set.
func loadCatalog(cfg *config.Config) (*body.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = cfg.CatalogPath
	}
	if path == "" {
		return body.Builtin(), nil
	}
	return body.LoadFile(path)
}

// scenarioParams resolves a command's scenario: the config file's
// scenario is the base, a --scenario preset replaces it, and explicit
// flags override individual fields.
func scenarioParams(cmd *cobra.Command) (impact.Params, error) {
	cfg, err := loadConfig()
	if err != nil {
		return impact.Params{}, err
	}
	p := cfg.Scenario

	if scenario != "" {
		sp := config.GetScenario(scenario)
		if sp == nil {
			return p, fmt.Errorf("unknown scenario: %s (available: %v)", scenario, config.ListScenarios())
		}
		p = *sp
	}

	if cmd.Flags().Changed("mass") {
		p.Mass = mass
	}
	if cmd.Flags().Changed("radius") {
		p.Radius = radius
	}
	if cmd.Flags().Changed("velocity") {
		p.Velocity = velocity
	}
	if cmd.Flags().Changed("angle") {
		p.Angle = angle
	}
	if cmd.Flags().Changed("gravity") {
		p.Gravity = gravity
	}
	if cmd.Flags().Changed("density") {
		p.Density = density
	}

	return p.Clamped(), nil
}

func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	viz.SetTheme(cfg.Theme)

	engine := scene.New(cat)
	engine.SetParams(cfg.Scenario.Clamped())

	if cfg.Live.Enabled && cfg.Live.URL != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		provider := ephem.NewHTTPProvider(cfg.Live.URL, cfg.Interval())
		provider.Start(ctx)
		engine.SetProvider(provider)
	}

	return tui.Run(engine, cfg.TraceSegments, cfg.FPS, cfg.TimeScale)
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	p, err := scenarioParams(cmd)
	if err != nil {
		return err
	}

	engine := scene.New(cat)
	engine.SetParams(p)

	if focusBody != "" {
		if err := engine.Select(focusBody); err != nil {
			return err
		}
	}

	if liveURL != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		provider := ephem.NewHTTPProvider(liveURL, cfg.Interval())
		provider.Start(ctx)
		engine.SetProvider(provider)
	}

	fmt.Printf("running scene for %.1fs...\n", duration)
	start := time.Now()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T\tBODY\tX\tY\tZ\tSPIN")

	sampleEvery := duration / 10
	if sampleEvery < dt {
		sampleEvery = dt
	}
	next := 0.0
	frames := 0
	err = engine.Run(context.Background(), duration, dt, func(f scene.FrameState) bool {
		frames++
		if f.Elapsed+1e-9 < next {
			return true
		}
		next += sampleEvery
		for _, bf := range f.Bodies {
			if focusBody != "" && bf.Name != focusBody {
				continue
			}
			fmt.Fprintf(w, "%.2f\t%s\t%+.3f\t%+.3f\t%+.3f\t%.2f\n",
				f.Elapsed, bf.Name, bf.Position.X, bf.Position.Y, bf.Position.Z, bf.Spin)
		}
		return true
	})
	if err != nil {
		return err
	}
	w.Flush()

	fmt.Printf("\n%d frames in %v\n", frames, time.Since(start))
	return nil
}

func showIndicators(cmd *cobra.Command, args []string) error {
	p, err := scenarioParams(cmd)
	if err != nil {
		return err
	}
	ind := impact.Compute(p)

	if jsonOut {
		out := struct {
			Params     impact.Params     `json:"params"`
			Indicators impact.Indicators `json:"indicators"`
		}{p, ind}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARAM\tVALUE\tUNIT")
	for _, f := range impact.Fields {
		b := impact.Bounds[f]
		fmt.Fprintf(w, "%s\t%.2f\t%s\n", b.Label, p.Get(f), b.Unit)
	}
	w.Flush()

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDICATOR\tVALUE")
	fmt.Fprintf(w, "impact energy\t%.4g J\n", ind.Energy)
	fmt.Fprintf(w, "tnt equivalent\t%.2f Mt\n", ind.EnergyMegaton)
	fmt.Fprintf(w, "richter magnitude\t%.2f\n", ind.Richter)
	fmt.Fprintf(w, "crater diameter\t%.2f km\n", ind.CraterDiameterKm)
	fmt.Fprintf(w, "tsunami height\t%.2f m\n", ind.TsunamiHeight)
	fmt.Fprintf(w, "warning time\t%.2f h\n", ind.WarningHours)
	fmt.Fprintf(w, "deflection delta-v\t%.2f m/s\n", ind.DeflectionDelta)
	return w.Flush()
}

func listBodies(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGLYPH\tAU\tTILT\tA\tECC\tPERIOD\tRING")
	for _, def := range cat.Bodies() {
		period := "-"
		if def.Orbit.Speed != 0 {
			period = fmt.Sprintf("%.0fs", 2*math.Pi/math.Abs(def.Orbit.Speed))
		}
		ring := "-"
		if def.Ring != nil {
			ring = fmt.Sprintf("%.1f-%.1f", def.Ring.Inner, def.Ring.Outer)
		}
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.1f\t%.1f\t%.3f\t%s\t%s\n",
			def.Name, def.Glyph, def.DistanceAU, def.InclinationDeg,
			def.Orbit.SemiMajorAxis, def.Orbit.Eccentricity, period, ring)
	}
	return w.Flush()
}

func traceBody(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	def, err := cat.Lookup(args[0])
	if err != nil {
		return err
	}

	pts := def.Orbit.Path(segments)
	if len(pts) == 0 {
		return fmt.Errorf("no trace for %s", def.Name)
	}

	fmt.Printf("%s: a=%.2f e=%.3f incl=%.1f deg\n\n",
		def.Name, def.Orbit.SemiMajorAxis, def.Orbit.Eccentricity, orbit.Rad2Deg(def.Orbit.Inclination))

	radii := make([]float64, len(pts))
	for i, p := range pts {
		radii[i] = math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
	}

	graph := asciigraph.Plot(radii,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("distance from star along one revolution"),
	)
	fmt.Println(graph)

	lo, hi := floats.Min(radii), floats.Max(radii)
	fmt.Printf("\nperiapsis: %.3f  apoapsis: %.3f  width: %.3f\n", lo, hi, hi-lo)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	field := impact.Field(args[0])

	base, err := scenarioParams(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("sweeping %s over %d steps...\n", field, steps)
	start := time.Now()

	var result *sweep.Result
	if workers > 1 {
		result, err = sweep.RunParallel(context.Background(), base, field, steps, workers)
	} else {
		result, err = sweep.Run(base, field, steps)
	}
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tMIN\tMEAN\tMAX\tSTDDEV\tTREND")
	for _, col := range sweep.Columns() {
		s := result.Summaries[col]
		fmt.Fprintf(w, "%s\t%.4g\t%.4g\t%.4g\t%.4g\t%s\n",
			col, s.Min, s.Mean, s.Max, s.StdDev, viz.SparklineChart(result.Column(col), 16))
	}
	w.Flush()

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(result)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}
	if outJSON != "" {
		if err := storage.ExportJSON(outJSON, result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outJSON)
	}
	if outCSV != "" {
		if err := storage.ExportCSV(outCSV, result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outCSV)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIELD\tTIME\tSTEPS\tPEAK MT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1f\n",
			run.ID,
			run.Field,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Summaries["megaton"].Max,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	result, err := st.LoadResult(runID)
	if err != nil {
		return err
	}
	if len(result.Points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	b := impact.Bounds[result.Field]
	fmt.Printf("run: %s\n", runID)
	fmt.Printf("swept: %s (%s)\n", b.Label, b.Unit)
	fmt.Printf("samples: %d\n\n", len(result.Points))

	cols := sweep.Columns()
	if column != "" {
		cols = []string{column}
	}
	for _, col := range cols {
		data := result.Column(col)
		if data == nil {
			return fmt.Errorf("unknown column: %s (available: %v)", col, sweep.Columns())
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s vs %s", col, result.Field)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(result)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, result)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS\tRADIUS\tVELOCITY\tANGLE\tGRAVITY\tDENSITY\tYIELD MT")
	for _, name := range config.ListScenarios() {
		p := config.GetScenario(name)
		ind := impact.Compute(*p)
		fmt.Fprintf(w, "%s\t%.0f\t%.1f\t%.0f\t%.0f\t%.2f\t%.1f\t%.1f\n",
			name, p.Mass, p.Radius, p.Velocity, p.Angle, p.Gravity, p.Density, ind.EnergyMegaton)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "astrale.yaml"
	if configFile != "" {
		path = configFile
	}
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	viz.SetTheme(cfg.Theme)

	svg := export.OrbitMapSVG(cat, atTime, svgWidth, svgHeight, segments)
	if svg == "" {
		return fmt.Errorf("nothing to render")
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d bodies)\n", svgOut, cat.Len())
	return nil
}
