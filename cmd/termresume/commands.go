package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/termresume/internal/config"
	"github.com/san-kum/termresume/internal/export"
	"github.com/san-kum/termresume/internal/metrics"
	"github.com/san-kum/termresume/internal/physics"
	"github.com/san-kum/termresume/internal/sim"
	"github.com/san-kum/termresume/internal/storage"
	"github.com/san-kum/termresume/internal/tui"
	"github.com/san-kum/termresume/internal/viz"
)

var (
	frames    int
	seed      int64
	every     int
	runs      int
	asJSON    bool
	jsonOut   string
	save      bool
	plot      bool
	live      bool
	frameRate int

	format     string
	out        string
	scale      float64
	trail      bool
	snapFrames int
	snapSeed   int64
)

func newMetrics() []sim.Metric {
	return []sim.Metric{metrics.NewKineticEnergy(), metrics.NewCollisions(), metrics.NewPeakSpeed()}
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "run the project graph headlessly",
		RunE:  runSimulate,
	}
	f := cmd.Flags()
	f.IntVar(&frames, "frames", 600, "frames to simulate")
	f.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	f.IntVar(&every, "every", 10, "snapshot interval in frames")
	f.IntVar(&runs, "runs", 1, "number of seeds to run concurrently")
	f.BoolVar(&asJSON, "json", false, "write the result as JSON")
	f.StringVar(&jsonOut, "out", "", "write the JSON result to this file")
	f.BoolVar(&save, "save", false, "store the run in the archive")
	f.BoolVar(&plot, "plot", false, "plot kinetic energy over time")
	f.BoolVar(&live, "live", false, "draw the graph while it runs")
	f.IntVar(&frameRate, "fps", 30, "live redraw rate")
	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := sim.New(cfg.Physics, cfg.GraphNodes())
	simCfg := sim.Config{Frames: frames, Seed: seed, Every: every}

	if runs > 1 {
		if jsonOut != "" {
			return fmt.Errorf("--out exports a single run, got --runs %d", runs)
		}
		return runEnsemble(ctx, s, simCfg)
	}

	for _, m := range newMetrics() {
		s.AddMetric(m)
	}
	energy := viz.NewHistory(0)
	s.AddObserver(sim.ObserverFunc(func(_ int, g *physics.Graph, _ int) {
		energy.Add(metrics.Energy(g))
	}))
	if live {
		lr := tui.NewLiveRenderer(os.Stdout, 90, 14, frameRate)
		lr.Start()
		defer lr.Stop()
		s.AddObserver(lr)
		s.AddObserver(sim.ObserverFunc(func(int, *physics.Graph, int) { time.Sleep(physics.FrameRate) }))
	}

	start := time.Now()
	result, err := s.Run(ctx, simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	logger.Info("simulation finished",
		zap.Int64("seed", seed),
		zap.Int("frames", frames),
		zap.Duration("elapsed", elapsed),
	)

	if jsonOut != "" {
		if err := storage.ExportJSON(jsonOut, cfg.Physics, result); err != nil {
			return err
		}
		logger.Info("result exported", zap.String("path", jsonOut))
	}
	if asJSON {
		return storage.WriteJSON(os.Stdout, cfg.Physics, result)
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Physics, result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("seed: %d\n", result.Seed)
	fmt.Printf("frames: %d\n", result.Frames)
	fmt.Printf("collisions: %d\n", result.Collisions)
	fmt.Println("\nmetrics:")
	for _, m := range newMetrics() {
		fmt.Printf("  %s: %.6f\n", m.Name(), result.Metrics[m.Name()])
	}

	if plot {
		fmt.Println()
		fmt.Println(viz.EnergyChart(energy.Values(), 80, 10, "kinetic energy"))
	}
	return nil
}

func runEnsemble(ctx context.Context, s *sim.Simulator, cfg sim.Config) error {
	start := time.Now()
	results, err := sim.NewEnsemble(s, runs, seed, newMetrics).Run(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info("ensemble finished", zap.Int("runs", runs), zap.Duration("elapsed", time.Since(start)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := []string{"SEED"}
	for _, m := range newMetrics() {
		header = append(header, strings.ToUpper(m.Name()))
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, r := range results {
		row := []string{fmt.Sprint(r.Seed)}
		for _, m := range newMetrics() {
			row = append(row, fmt.Sprintf("%.4f", r.Metrics[m.Name()]))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "draw the project graph as svg or png",
		RunE:  runSnapshot,
	}
	f := cmd.Flags()
	f.StringVar(&format, "format", "svg", "output format (svg, png)")
	f.StringVarP(&out, "out", "o", "", "output file (stdout when empty)")
	f.IntVar(&snapFrames, "frames", 0, "frames to simulate before drawing")
	f.Int64Var(&snapSeed, "seed", 1, "random seed")
	f.Float64Var(&scale, "scale", 1, "png scale factor")
	f.BoolVar(&trail, "trail", false, "draw node paths (svg)")
	return cmd
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	th := viz.GetTheme(cfg.Theme)

	s := sim.New(cfg.Physics, cfg.GraphNodes())
	simCfg := sim.Config{Frames: snapFrames, Seed: snapSeed, Every: 1}
	g := s.Graph(simCfg)

	var snaps []sim.Snapshot
	if snapFrames > 0 {
		var last *physics.Graph
		s.AddObserver(sim.ObserverFunc(func(_ int, gr *physics.Graph, _ int) { last = gr }))
		result, err := s.Run(cmd.Context(), simCfg)
		if err != nil {
			return err
		}
		g, snaps = last, result.Snapshots
	}
	if !trail {
		snaps = nil
	}

	switch format {
	case "svg":
		svg := export.GraphToSVG(g, snaps, th)
		if out == "" {
			fmt.Println(svg)
			return nil
		}
		return os.WriteFile(out, []byte(svg), 0644)
	case "png":
		if out == "" {
			return export.WritePNG(os.Stdout, g, scale, th)
		}
		return export.GraphToPNG(out, g, scale, th)
	default:
		return fmt.Errorf("unknown format: %s (available: svg, png)", format)
	}
}

func newRunsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "list archived runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			list, err := st.List()
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Println("no runs found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIME\tSEED\tFRAMES\tNODES\tCOLLISIONS")
			for _, run := range list {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
					run.ID,
					run.Timestamp.Format("2006-01-02 15:04:05"),
					run.Seed,
					run.Frames,
					run.Nodes,
					run.Collisions,
				)
			}
			return w.Flush()
		},
	}
}

func newPlotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot an archived run's kinetic energy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			st := storage.New(dataDir)
			meta, err := st.Load(args[0])
			if err != nil {
				return err
			}
			snaps, err := st.LoadSnapshots(args[0])
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				return fmt.Errorf("no data to plot")
			}

			radius := make(map[string]float64)
			for _, n := range cfg.Content.Nodes {
				radius[n.ID] = n.R
			}
			values := make([]float64, len(snaps))
			for i, snap := range snaps {
				values[i] = snapshotEnergy(snap, radius)
			}

			fmt.Printf("run: %s\n", meta.ID)
			fmt.Printf("seed: %d\n", meta.Seed)
			fmt.Printf("samples: %d\n\n", len(snaps))
			fmt.Println(viz.EnergyChart(values, 80, 10, "kinetic energy"))
			return nil
		},
	}
}

// snapshotEnergy matches metrics.Energy for a stored snapshot.
func snapshotEnergy(s sim.Snapshot, radius map[string]float64) float64 {
	var e float64
	for _, n := range s.Nodes {
		r := radius[n.ID]
		e += 0.5 * (r * r / 1000) * (n.VX*n.VX + n.VY*n.VY)
	}
	return e
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "list colour themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Printf("  %s\n", name)
			}
		},
	}
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "  %s\t%s\n", name, config.Presets[name].Description)
			}
			w.Flush()
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "termresume.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	})
	return cmd
}
