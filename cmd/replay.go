package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"collection-adapter/feature/scenario"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for replay command
	replayJSON  bool
	replayWidth int
)

// replayCmd runs a scenario and prints every step.
var replayCmd = &cobra.Command{
	Use:   "replay <file|storage:name>",
	Short: "Replay a scenario and print the host after every step",
	Long: `Replay a scenario file (or a stored scenario with the storage: prefix)
against a fresh session and print the host children, the pass summary and
the pool after every step.

Examples:
  # Render a local file
  replay scenarios/shrink.yaml

  # Replay a scenario stored in the bucket as JSON
  replay storage:shrink --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, runErr := runScenario(cmd.Context(), args[0])
		if res == nil {
			return runErr
		}

		out := cmd.OutOrStdout()
		if replayJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
		} else {
			width := replayWidth
			if width <= 0 {
				width = scenario.TerminalWidth()
			}
			fmt.Fprintln(out, scenario.Render(res, width))
		}
		return runErr
	},
}

// runScenario loads ref and replays it. A failing step yields the partial
// result together with the error; a nil result means nothing was replayed.
func runScenario(ctx context.Context, ref string) (*scenario.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, logg, err := bootstrap()
	if err != nil {
		return nil, err
	}
	defer logg.Sync()

	store, _, err := newScenarioStore(cfg, logg)
	if err != nil {
		return nil, err
	}

	loadCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Storage.TimeoutSeconds)*time.Second)
	defer cancel()
	sc, err := store.Load(loadCtx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario %q: %w", ref, err)
	}

	res, err := scenario.NewRunner(cfg.Adapter, logg).Run(ctx, sc)
	if res != nil && err != nil {
		logg.Warn("Scenario stopped on a failing step", zap.String("scenario", res.Name), zap.Error(err))
	}
	return res, err
}

func init() {
	RootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "Print the result as JSON")
	replayCmd.Flags().IntVar(&replayWidth, "width", 0, "Render width (defaults to the terminal width)")
}
