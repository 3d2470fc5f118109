package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mapsim/internal/analysis"
	"github.com/san-kum/mapsim/internal/config"
	"github.com/san-kum/mapsim/internal/maps"
	"github.com/san-kum/mapsim/internal/registry"
	"github.com/san-kum/mapsim/internal/store"
	"github.com/san-kum/mapsim/internal/viz"
)

var (
	dataDir    string
	steps      int
	transient  int
	seed       int64
	initState  []float64
	params     []string
	configFile string
	preset     string
	component  int
	// Bifurcation sweep
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	record     int
	// Plot size
	plotWidth  int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mapsim",
		Short: "discrete map iteration lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mapsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "iterate a map and save the orbit",
		Args:  cobra.ExactArgs(1),
		RunE:  runModel,
	}
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "orbit length")
	runCmd.Flags().IntVar(&transient, "transient", config.DefaultTransient, "steps discarded before recording")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "seed recorded in run metadata")
	runCmd.Flags().Float64SliceVar(&initState, "x0", nil, "initial state")
	runCmd.Flags().StringSliceVar(&params, "param", nil, "map parameter, name=value")
	runCmd.Flags().StringVar(&configFile, "config", "", "yaml config file")
	runCmd.Flags().StringVar(&preset, "preset", "", "named preset")

	orbitCmd := &cobra.Command{
		Use:   "orbit [model]",
		Short: "plot one orbit component",
		Args:  cobra.ExactArgs(1),
		RunE:  plotOrbit,
	}
	orbitCmd.Flags().IntVar(&steps, "steps", 100, "orbit length")
	orbitCmd.Flags().IntVar(&transient, "transient", 0, "steps discarded before recording")
	orbitCmd.Flags().Float64SliceVar(&initState, "x0", nil, "initial state")
	orbitCmd.Flags().StringSliceVar(&params, "param", nil, "map parameter, name=value")
	orbitCmd.Flags().IntVar(&component, "component", 0, "state component to plot")
	orbitCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	orbitCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")

	jacobianCmd := &cobra.Command{
		Use:   "jacobian [model]",
		Short: "evaluate the Jacobian at the initial state",
		Args:  cobra.ExactArgs(1),
		RunE:  printJacobian,
	}
	jacobianCmd.Flags().Float64SliceVar(&initState, "x0", nil, "state to evaluate at")
	jacobianCmd.Flags().StringSliceVar(&params, "param", nil, "map parameter, name=value")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov [model]",
		Short: "estimate the largest Lyapunov exponent",
		Args:  cobra.ExactArgs(1),
		RunE:  printLyapunov,
	}
	lyapunovCmd.Flags().IntVar(&steps, "steps", 10000, "orbit length")
	lyapunovCmd.Flags().IntVar(&transient, "transient", 500, "steps discarded first")
	lyapunovCmd.Flags().Float64SliceVar(&initState, "x0", nil, "initial state")
	lyapunovCmd.Flags().StringSliceVar(&params, "param", nil, "map parameter, name=value")

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation [model]",
		Short: "sweep a parameter and draw the bifurcation diagram",
		Args:  cobra.ExactArgs(1),
		RunE:  drawBifurcation,
	}
	bifurcationCmd.Flags().StringVar(&sweepParam, "sweep", "r", "parameter to sweep")
	bifurcationCmd.Flags().Float64Var(&sweepMin, "min", 2.5, "sweep start")
	bifurcationCmd.Flags().Float64Var(&sweepMax, "max", 4.0, "sweep end")
	bifurcationCmd.Flags().IntVar(&sweepSteps, "sweep-steps", 120, "parameter values to test")
	bifurcationCmd.Flags().IntVar(&transient, "transient", 500, "settle steps per value")
	bifurcationCmd.Flags().IntVar(&record, "record", 128, "recorded steps per value")
	bifurcationCmd.Flags().IntVar(&component, "component", 0, "state component to record")
	bifurcationCmd.Flags().IntVar(&plotWidth, "width", 100, "diagram width")
	bifurcationCmd.Flags().IntVar(&plotHeight, "height", 30, "diagram height")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "watch the orbit evolve in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64SliceVar(&initState, "x0", nil, "initial state")
	liveCmd.Flags().StringSliceVar(&params, "param", nil, "map parameter, name=value")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list available models",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range registry.New().List() {
				fmt.Println(name)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if presets == nil {
				return fmt.Errorf("no presets for model: %s", args[0])
			}
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return store.New(dataDir).ExportJSON(args[0], "")
		},
	}

	rootCmd.AddCommand(runCmd, orbitCmd, jacobianCmd, lyapunovCmd, bifurcationCmd,
		liveCmd, listCmd, presetsCmd, runsCmd, exportJSONCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildModel resolves a model from the registry and applies --param
// overrides.
func buildModel(name string) (maps.Model, error) {
	model, err := registry.New().Get(name)
	if err != nil {
		return nil, err
	}
	for _, p := range params {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("malformed parameter %q, want name=value", p)
		}
		val, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p, err)
		}
		if err := model.SetParam(k, val); err != nil {
			return nil, err
		}
	}
	return model, nil
}

func runModel(cmd *cobra.Command, args []string) error {
	modelName := args[0]

	if preset != "" {
		cfg := config.GetPreset(modelName, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(modelName))
		}
		steps = cfg.Steps
		transient = cfg.Transient
		if cfg.InitState != nil {
			initState = cfg.InitState
		}
		// Explicit --param flags still win: preset values go first.
		presetParams := make([]string, 0, len(cfg.Params))
		for k, v := range cfg.Params {
			presetParams = append(presetParams, fmt.Sprintf("%s=%v", k, v))
		}
		params = append(presetParams, params...)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("transient") {
			transient = cfg.Transient
		}
		if !cmd.Flags().Changed("x0") && cfg.InitState != nil {
			initState = cfg.InitState
		}
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
		if !cmd.Flags().Changed("param") {
			for k, v := range cfg.Params {
				params = append(params, fmt.Sprintf("%s=%v", k, v))
			}
		}
	}

	model, err := buildModel(modelName)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sys := maps.Build(model, initState).Evolve(transient)

	fmt.Printf("iterating %s for %d steps...\n", modelName, steps)
	start := time.Now()

	orbit, err := sys.Timeseries(steps)
	if err != nil {
		return err
	}
	lyap := analysis.Lyapunov(sys, steps, 0)

	elapsed := time.Since(start)

	runID, err := st.Save(store.RunMetadata{
		Model:     modelName,
		Steps:     steps,
		Transient: transient,
		Seed:      seed,
		Dim:       sys.Dimension(),
		Params:    model.GetParams(),
		Lyapunov:  lyap,
	}, orbit)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("states: %d\n", len(orbit))
	fmt.Printf("lyapunov: %.6f\n", lyap)
	if len(orbit) > 0 {
		fmt.Printf("final state: %v\n", []float64(orbit[len(orbit)-1]))
	}
	return nil
}

func plotOrbit(cmd *cobra.Command, args []string) error {
	model, err := buildModel(args[0])
	if err != nil {
		return err
	}

	sys := maps.Build(model, initState).Evolve(transient)
	orbit, err := sys.Timeseries(steps)
	if err != nil {
		return err
	}

	series := make([]float64, 0, len(orbit))
	for _, x := range orbit {
		if component >= len(x) {
			return fmt.Errorf("component %d out of range for dimension %d", component, len(x))
		}
		series = append(series, x[component])
	}

	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("%s x%d over %d steps", args[0], component, steps)),
	))
	return nil
}

func printJacobian(cmd *cobra.Command, args []string) error {
	model, err := buildModel(args[0])
	if err != nil {
		return err
	}

	sys := maps.Build(model, initState)
	fmt.Println(sys)

	m := sys.Jacobian()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range m {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = strconv.FormatFloat(v, 'g', 8, 64)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}

func printLyapunov(cmd *cobra.Command, args []string) error {
	model, err := buildModel(args[0])
	if err != nil {
		return err
	}

	sys := maps.Build(model, initState)
	lyap := analysis.Lyapunov(sys, steps, transient)

	fmt.Printf("%s largest lyapunov exponent: %.6f\n", args[0], lyap)
	if lyap > 0 {
		fmt.Println("positive exponent: the orbit is chaotic")
	}
	return nil
}

func drawBifurcation(cmd *cobra.Command, args []string) error {
	model, err := buildModel(args[0])
	if err != nil {
		return err
	}

	points, err := analysis.Bifurcation(model, sweepParam, sweepMin, sweepMax,
		sweepSteps, component, transient, record)
	if err != nil {
		return err
	}

	fmt.Print(analysis.BifurcationASCII(points, plotWidth, plotHeight))
	fmt.Printf("%s: %s in [%g, %g]\n", args[0], sweepParam, sweepMin, sweepMax)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	model, err := buildModel(args[0])
	if err != nil {
		return err
	}

	sys := maps.Build(model, initState)
	_, err = tea.NewProgram(viz.NewModel(sys, args[0])).Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := store.New(dataDir).List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tSTEPS\tDIM\tLYAPUNOV\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.4f\t%s\n",
			r.ID, r.Model, r.Steps, r.Dim, r.Lyapunov, r.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}
