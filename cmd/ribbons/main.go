package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/san-kum/ribbons/internal/config"
	"github.com/san-kum/ribbons/internal/driver"
	"github.com/san-kum/ribbons/internal/export"
	"github.com/san-kum/ribbons/internal/scene"
	"github.com/san-kum/ribbons/internal/trace"
	"github.com/san-kum/ribbons/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	preset      string
	seed        int64
	fps         int
	theme       string
	width       float64
	height      float64
	renderTicks int
	traceTicks  int
	outFile     string
	csvFile     string
	shake       []int
	realtime    bool
)

// main registers the commands and runs the live view when no subcommand is
// given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "ribbons",
		Short:        "sagging ribbon simulator",
		SilenceUsage: true,
		RunE:         runLive,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scene config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a preset scene")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed for shakes")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "live view panel theme (cork, night, minimal)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run ribbons in the terminal",
		RunE:  runLive,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "simulate headless and write the last frame as SVG",
		RunE:  runRender,
	}
	renderCmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "viewport width in px")
	renderCmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "viewport height in px")
	renderCmd.Flags().IntVar(&renderTicks, "ticks", 120, "frames to simulate")
	renderCmd.Flags().StringVar(&outFile, "out", "ribbons.svg", "output file")
	renderCmd.Flags().IntSliceVar(&shake, "shake", nil, "ribbons to shake on the first frame (1-based)")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "simulate headless and plot ribbon sag",
		RunE:  runTrace,
	}
	traceCmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "viewport width in px")
	traceCmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "viewport height in px")
	traceCmd.Flags().IntVar(&traceTicks, "ticks", 300, "frames to simulate")
	traceCmd.Flags().StringVar(&csvFile, "csv", "", "also write samples to this CSV file")
	traceCmd.Flags().IntSliceVar(&shake, "shake", nil, "ribbons to shake on the first frame (1-based)")
	traceCmd.Flags().BoolVar(&realtime, "realtime", false, "pace frames at --fps instead of running flat out")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available scene presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s %d anchors, %d ribbons\n", name, len(p.Anchors), len(p.Ribbons))
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a scene config to start from",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(liveCmd, renderCmd, traceCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies, in increasing priority: defaults, preset, config
// file, explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Lookup("width") != nil && flags.Changed("width") {
		cfg.Viewport.Width = width
	}
	if flags.Lookup("height") != nil && flags.Changed("height") {
		cfg.Viewport.Height = height
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg)
}

// headless wires a driver to a fixed-size layout and the given surface.
func headless(cfg *config.Config, surface driver.Surface) (*scene.Layout, *driver.Driver) {
	layout := scene.NewLayout(cfg)
	d := driver.New(layout, layout, surface)
	d.SetRand(rand.New(rand.NewSource(cfg.Seed)))
	d.Reinit()
	return layout, d
}

func shakeRibbons(d *driver.Driver) error {
	for _, n := range shake {
		if err := d.Perturb(n - 1); err != nil {
			return err
		}
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	svg := export.NewSVGSurface(cfg.Viewport.Width, cfg.Viewport.Height)
	layout, d := headless(cfg, svg)
	if err := shakeRibbons(d); err != nil {
		return err
	}

	fmt.Printf("rendering %s: %d ribbons, %d frames...\n", cfg.Name, len(d.Chains()), renderTicks)
	for i := 0; i < renderTicks; i++ {
		layout.Advance()
		d.Tick()
	}
	if d.State() == driver.Suspended {
		fmt.Printf("viewport %.0fpx is at or below %.0fpx: simulation suspended, nothing drawn\n", cfg.Viewport.Width, driver.Breakpoint)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := svg.WriteTo(f); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	svg := export.NewSVGSurface(cfg.Viewport.Width, cfg.Viewport.Height)
	layout, d := headless(cfg, svg)
	if err := shakeRibbons(d); err != nil {
		return err
	}

	rec := trace.NewRecorder()
	tick := func() {
		layout.Advance()
		d.Tick()
		if d.State() == driver.Active {
			rec.Observe(d.Frames(), d.Chains())
		}
	}

	fmt.Printf("tracing %s: %d ribbons, %d frames...\n", cfg.Name, len(d.Chains()), traceTicks)
	start := time.Now()
	if realtime {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(traceTicks)*time.Second/time.Duration(cfg.FPS))
		defer cancel()
		if err := driver.Loop(ctx, cfg.FPS, tick); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
	} else {
		for i := 0; i < traceTicks; i++ {
			tick()
		}
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	if len(rec.Samples()) == 0 {
		fmt.Printf("viewport %.0fpx is at or below %.0fpx: simulation suspended\n", cfg.Viewport.Width, driver.Breakpoint)
		return nil
	}

	for i := range d.Chains() {
		if graph := rec.Plot(i, fmt.Sprintf("ribbon %d sag (px)", i+1)); graph != "" {
			fmt.Println(graph)
			fmt.Println()
		}
	}

	last := rec.Samples()[len(rec.Samples())-1]
	fmt.Println("final:")
	for i := range last.Sag {
		fmt.Printf("  ribbon %d: sag %.2fpx, worst stretch %.3fpx\n", i+1, last.Sag[i], last.Stretch[i])
	}

	if csvFile != "" {
		f, err := os.Create(csvFile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := rec.WriteCSV(f); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", csvFile)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := "ribbons.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s (scene %s)\n", path, cfg.Name)
	return nil
}
