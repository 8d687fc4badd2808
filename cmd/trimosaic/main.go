package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/trimosaic/internal/analysis"
	"github.com/san-kum/trimosaic/internal/anim"
	"github.com/san-kum/trimosaic/internal/automation"
	"github.com/san-kum/trimosaic/internal/config"
	"github.com/san-kum/trimosaic/internal/export"
	"github.com/san-kum/trimosaic/internal/gui"
	"github.com/san-kum/trimosaic/internal/mosaic"
	"github.com/san-kum/trimosaic/internal/scene"
	"github.com/san-kum/trimosaic/internal/sim"
	"github.com/san-kum/trimosaic/internal/viz"
)

var (
	configFile string
	preset     string
	width      int
	height     int
	radius     float64
	gapX       float64
	gapY       float64
	verbose    bool

	// run / render / record
	runTime    float64
	renderAt   float64
	recordAt   float64
	recordTime float64
	fps        int
	maxWidth   int

	// live
	pick  bool
	theme string

	// generate
	asJSON bool

	// sweep
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int

	// batch
	outDir string
)

// main registers commands and flags and opens the window when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "trimosaic",
		Short: "animated triangle mosaic",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&width, "width", 0, "viewport width")
	pf.IntVar(&height, "height", 0, "viewport height")
	pf.Float64Var(&radius, "radius", 0, "triangle radius (0 derives it from the viewport)")
	pf.Float64Var(&gapX, "gap-x", 0, "horizontal gap factor")
	pf.Float64Var(&gapY, "gap-y", 0, "vertical gap factor")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the mosaic in a window",
		RunE:  runGUI,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the mosaic in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().BoolVar(&pick, "pick", false, "choose a preset from a menu")
	liveCmd.Flags().StringVar(&theme, "theme", "", fmt.Sprintf("panel theme %v", viz.ThemeNames()))

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "step the animation headless and print frame metrics",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&runTime, "time", 0, "duration in seconds (0 uses the config)")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "summarize one generation pass",
		RunE:  runGenerate,
	}
	generateCmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as json")

	renderCmd := &cobra.Command{
		Use:   "render [output]",
		Short: "render a still frame (.png, .webp, .svg)",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().Float64Var(&renderAt, "at", 2, "animation time of the frame in seconds")

	recordCmd := &cobra.Command{
		Use:   "record [output.gif]",
		Short: "record an animated gif",
		Args:  cobra.ExactArgs(1),
		RunE:  runRecord,
	}
	recordCmd.Flags().Float64Var(&recordAt, "at", 0, "start time in seconds")
	recordCmd.Flags().Float64Var(&recordTime, "time", 3, "length in seconds")
	recordCmd.Flags().IntVar(&fps, "fps", 25, "frames per second")
	recordCmd.Flags().IntVar(&maxWidth, "max-width", 640, "downscale frames wider than this")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time generation and filtering over viewport sizes",
		RunE:  runBench,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "vary one generation parameter and report ring counts",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "gap", "gap, gap_x, gap_y, radius or width")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 1.0, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 2.0, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 11, "number of values")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "render every step of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().StringVar(&outDir, "out", ".", "directory for relative outputs")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%s\n", name, config.Describe(name))
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, generateCmd, renderCmd, recordCmd, benchCmd, sweepCmd, batchCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	sim.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig resolves preset, then config file, then flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(preset, configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("radius") {
		cfg.Mosaic.Radius = radius
	}
	if flags.Changed("gap-x") {
		cfg.Mosaic.GapX = gapX
	}
	if flags.Changed("gap-y") {
		cfg.Mosaic.GapY = gapY
	}
	return cfg, nil
}

func buildScene(cmd *cobra.Command) (*scene.Scene, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return scene.New(cfg)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := gui.Options{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Background: cfg.BackgroundColor(),
		LineWidth:  cfg.Style.LineWidth,
		FPS:        int(math.Round(1 / cfg.TimeStep)),
	}
	return gui.Run(opts, func(size mosaic.Size) (*anim.Cycle, error) {
		cfg.Window.Width, cfg.Window.Height = int(size.Width), int(size.Height)
		sc, err := scene.New(cfg)
		if err != nil {
			return nil, err
		}
		return sc.Cycle(), nil
	})
}

func runLive(cmd *cobra.Command, args []string) error {
	if !verbose {
		// the alternate screen owns the terminal
		sim.SetLogger(nil)
	}

	liveOpts := func(sc *scene.Scene) viz.Options {
		cfg := sc.Config()
		return viz.Options{
			Title:      cfg.Window.Title,
			TimeStep:   cfg.TimeStep,
			Style:      sc.Style(),
			RecordPath: "trimosaic.gif",
			Theme:      theme,
		}
	}

	if pick {
		return viz.RunPicker(config.ListPresets(), config.Describe, func(name string) (viz.Model, error) {
			preset = name
			sc, err := buildScene(cmd)
			if err != nil {
				return viz.Model{}, err
			}
			return viz.NewModel(sc.Cycle(), sc.Size(), liveOpts(sc)), nil
		})
	}

	sc, err := buildScene(cmd)
	if err != nil {
		return err
	}
	return viz.Run(sc.Cycle(), sc.Size(), liveOpts(sc))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	sc, err := buildScene(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("time") {
		sc.Config().Duration = runTime
	}

	start := time.Now()
	result, err := sc.Run(cmd.Context())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "shapes\t%d\n", len(sc.Visible()))
	fmt.Fprintf(w, "frames\t%d\n", result.Frames)
	fmt.Fprintf(w, "elapsed\t%v\n", elapsed)
	if result.Frames > 0 {
		fmt.Fprintf(w, "cursor\t%d\n", result.Cursors[len(result.Cursors)-1])
	}
	if period, ok := analysis.DominantPeriod(analysis.Ints(result.Cursors)); ok {
		fmt.Fprintf(w, "cursor_period\t%d frames\n", analysis.Round(period))
	}
	for _, name := range []string{"mean_scale", "settled", "hue_travel", "cursor_laps"} {
		fmt.Fprintf(w, "%s\t%.4f\n", name, result.Metrics[name])
	}
	return w.Flush()
}

type summary struct {
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Radius    float64      `json:"radius"`
	Gap       mosaic.Gap   `json:"gap"`
	Rings     int          `json:"rings"`
	Generated int          `json:"generated"`
	Visible   int          `json:"visible"`
	Growth    []ringGrowth `json:"growth"`
}

type ringGrowth struct {
	Ring      int `json:"ring"`
	Triangles int `json:"triangles"`
	Visible   int `json:"visible"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	sc, err := buildScene(cmd)
	if err != nil {
		return err
	}
	cfg := sc.Config()

	s := summary{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Radius:    cfg.TriangleRadius(),
		Gap:       cfg.Gap(),
		Rings:     sc.Rings(),
		Generated: sc.Generated(),
		Visible:   len(sc.Visible()),
	}

	// generation order puts every earlier ring first, so a prefix of
	// length 4^k is exactly the mosaic after k rings
	all, err := cfg.Builder().Build()
	if err != nil {
		return err
	}
	for k := 0; k <= s.Rings; k++ {
		n := mosaic.Count(k)
		s.Growth = append(s.Growth, ringGrowth{
			Ring:      k,
			Triangles: n,
			Visible:   len(mosaic.Visible(all[:n], cfg.Size())),
		})
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "viewport\t%dx%d\n", s.Width, s.Height)
	fmt.Fprintf(w, "radius\t%.3f\n", s.Radius)
	fmt.Fprintf(w, "gap\t%.3f x %.3f\n", s.Gap.X, s.Gap.Y)
	fmt.Fprintf(w, "rings\t%d\n", s.Rings)
	fmt.Fprintf(w, "generated\t%d\n", s.Generated)
	fmt.Fprintf(w, "visible\t%d\n", s.Visible)
	w.Flush()

	if len(s.Growth) > 1 {
		visible := make([]float64, len(s.Growth))
		for i, g := range s.Growth {
			visible[i] = float64(g.Visible)
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(visible, asciigraph.Height(8), asciigraph.Caption("visible triangles per ring")))
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	sc, err := buildScene(cmd)
	if err != nil {
		return err
	}
	if renderAt > 0 {
		if _, err := sc.Advance(renderAt); err != nil {
			return err
		}
	}
	if err := export.SaveFile(args[0], sc.Shapes(), sc.Size(), sc.Style()); err != nil {
		return fmt.Errorf("render %s: %w", args[0], err)
	}
	fmt.Printf("wrote %s (%d shapes, t=%.2fs)\n", args[0], len(sc.Shapes()), sc.Cycle().Elapsed())
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	sc, err := buildScene(cmd)
	if err != nil {
		return err
	}
	if recordAt > 0 {
		if _, err := sc.Advance(recordAt); err != nil {
			return err
		}
	}
	n, err := automation.Record(cmd.Context(), sc, recordTime, fps, maxWidth, args[0])
	if err != nil {
		return fmt.Errorf("record %s: %w", args[0], err)
	}
	fmt.Printf("wrote %s (%d frames)\n", args[0], n)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sizes := []mosaic.Size{
		{Width: 640, Height: 480},
		{Width: 1280, Height: 720},
		{Width: 1920, Height: 1080},
		{Width: 2560, Height: 1440},
		{Width: 3840, Height: 2160},
	}

	fmt.Printf("benchmarking gap %.2f x %.2f\n\n", cfg.Mosaic.GapX, cfg.Mosaic.GapY)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tRADIUS\tRINGS\tGENERATED\tVISIBLE\tGENERATE\tFILTER\tSTEP")

	for _, size := range sizes {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		c := *cfg
		c.Window.Width, c.Window.Height = int(size.Width), int(size.Height)
		b := c.Builder()

		start := time.Now()
		all, err := b.Build()
		if err != nil {
			fmt.Fprintf(w, "%.0fx%.0f\t%.2f\t-\t-\t-\t%v\t\t\n", size.Width, size.Height, c.TriangleRadius(), err)
			continue
		}
		genTime := time.Since(start)

		start = time.Now()
		visible := mosaic.Visible(all, size)
		filterTime := time.Since(start)

		cycle := anim.NewCycle(anim.Materialize(visible, c.Mosaic.Sides))
		cycle.Step(c.TimeStep)
		start = time.Now()
		cycle.Step(c.TimeStep)
		stepTime := time.Since(start)

		rings, _ := b.Rings()
		fmt.Fprintf(w, "%.0fx%.0f\t%.2f\t%d\t%d\t%d\t%v\t%v\t%v\n",
			size.Width, size.Height, c.TriangleRadius(), rings, len(all), len(visible), genTime, filterTime, stepTime)
	}

	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	results, err := automation.RunSweep(cmd.Context(), automation.Sweep{
		Base:  cfg,
		Param: sweepParam,
		Min:   sweepMin,
		Max:   sweepMax,
		Steps: sweepSteps,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tRINGS\tGENERATED\tVISIBLE\n", sweepParam)
	visible := make([]float64, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%.4f\t%v\t\t\n", r.Value, r.Err)
			continue
		}
		fmt.Fprintf(w, "%.4f\t%d\t%d\t%d\n", r.Value, r.Rings, r.Generated, r.Visible)
		visible = append(visible, float64(r.Visible))
	}
	w.Flush()

	if len(visible) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(visible, asciigraph.Height(8), asciigraph.Caption("visible triangles by "+sweepParam)))
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	s, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if s.Name != "" {
		fmt.Printf("scenario %s: %s\n", s.Name, s.Description)
	}

	dir := outDir
	if !cmd.Flags().Changed("out") {
		dir = filepath.Dir(args[0])
	}
	results, err := automation.RunScenario(cmd.Context(), s, dir)
	for _, r := range results {
		fmt.Printf("wrote %s (%d shapes, %d frames)\n", r.Output, r.Visible, r.Frames)
	}
	return err
}
