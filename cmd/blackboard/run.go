package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/blackboard"
	"github.com/jpalmerr/blackboard/config"
)

// newLogger creates a JSON logger for CLI use.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// runCmd applies a scenario file against a fresh board.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Apply a scenario against a fresh board",
	Long: `Apply a YAML scenario against a freshly created blackboard.

Steps run in order: writes, reads, subscriptions and wipes, each printed
as it is applied. Subscription callbacks print when a later write fires
them. Reading an absent key reports the failure and continues; it does
not abort the scenario.

Example:
  blackboard run -c scenario.yaml
  blackboard run --config scenario.yaml --verbose`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("config", "c", "", "path to scenario file (required)")
	runCmd.Flags().BoolP("verbose", "v", false, "enable debug logging")
	_ = runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)

	sc, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	logger.Info("scenario loaded", "name", sc.Name, "steps", len(sc.Steps))

	b, err := blackboard.New(blackboard.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}

	return applyScenario(b, sc, cmd.OutOrStdout())
}

// applyScenario runs every step in order, printing outcomes to out.
func applyScenario(b *blackboard.Board, sc *config.Scenario, out io.Writer) error {
	fmt.Fprintf(out, "applying scenario %q (%d steps)\n", sc.Name, len(sc.Steps))

	for i := range sc.Steps {
		if err := applyStep(b, &sc.Steps[i], out); err != nil {
			return fmt.Errorf("steps[%d] (%s): %w", i, sc.Steps[i].Op, err)
		}
	}

	fmt.Fprintln(out, "scenario complete")
	return nil
}

// applyStep dispatches one step to the board API.
func applyStep(b *blackboard.Board, st *config.Step, out io.Writer) error {
	switch st.Op {
	case config.OpWrite:
		return applyWrite(b, st, out)

	case config.OpRead:
		return applyRead(b, st, out)

	case config.OpWipeTypeKey:
		fmt.Fprintf(out, "wipe %s key %q\n", st.Type, st.Key)
		return applyTyped(st.Type, b, st.Key, blackboard.WipeTypeKey[int],
			blackboard.WipeTypeKey[float64], blackboard.WipeTypeKey[string], blackboard.WipeTypeKey[bool])

	case config.OpWipeKey:
		fmt.Fprintf(out, "wipe key %q in every store\n", st.Key)
		return b.WipeKey(st.Key)

	case config.OpWipeBoard:
		fmt.Fprintf(out, "wipe board (callbacks=%v)\n", st.Callbacks)
		return b.WipeBoard(st.Callbacks)

	case config.OpSubscribe:
		return applySubscribe(b, st, out)

	case config.OpUnsubscribe:
		fmt.Fprintf(out, "unsubscribe %s key %q\n", st.Type, st.Key)
		return applyTyped(st.Type, b, st.Key, blackboard.Unsubscribe[int],
			blackboard.Unsubscribe[float64], blackboard.Unsubscribe[string], blackboard.Unsubscribe[bool])

	case config.OpUnsubscribeAll:
		fmt.Fprintf(out, "unsubscribe key %q in every store\n", st.Key)
		return b.UnsubscribeAll(st.Key)
	}

	// config.Parse validated the op already
	return fmt.Errorf("unknown op %q", st.Op)
}

// applyTyped selects one of four type-specialized board operations by tag.
func applyTyped(typeTag string, b *blackboard.Board, key string,
	intOp func(*blackboard.Board, string) error,
	floatOp func(*blackboard.Board, string) error,
	stringOp func(*blackboard.Board, string) error,
	boolOp func(*blackboard.Board, string) error,
) error {
	switch typeTag {
	case config.TypeInt:
		return intOp(b, key)
	case config.TypeFloat:
		return floatOp(b, key)
	case config.TypeString:
		return stringOp(b, key)
	case config.TypeBool:
		return boolOp(b, key)
	}
	return fmt.Errorf("unknown type %q", typeTag)
}

func applyWrite(b *blackboard.Board, st *config.Step, out io.Writer) error {
	var opts []blackboard.WriteOption
	if !st.RaiseCallbacks() {
		opts = append(opts, blackboard.WithoutNotify())
	}
	fmt.Fprintf(out, "write %s %q = %v (notify=%v)\n", st.Type, st.Key, st.Value, st.RaiseCallbacks())

	switch st.Type {
	case config.TypeInt:
		return blackboard.Write(b, st.Key, st.IntValue(), opts...)
	case config.TypeFloat:
		return blackboard.Write(b, st.Key, st.FloatValue(), opts...)
	case config.TypeString:
		return blackboard.Write(b, st.Key, st.StringValue(), opts...)
	case config.TypeBool:
		return blackboard.Write(b, st.Key, st.BoolValue(), opts...)
	}
	return fmt.Errorf("unknown type %q", st.Type)
}

func applyRead(b *blackboard.Board, st *config.Step, out io.Writer) error {
	read := func() (any, error) {
		switch st.Type {
		case config.TypeInt:
			return blackboard.Read[int](b, st.Key)
		case config.TypeFloat:
			return blackboard.Read[float64](b, st.Key)
		case config.TypeString:
			return blackboard.Read[string](b, st.Key)
		case config.TypeBool:
			return blackboard.Read[bool](b, st.Key)
		}
		return nil, fmt.Errorf("unknown type %q", st.Type)
	}

	v, err := read()
	if blackboard.IsKeyNotFound(err) {
		// absence is a reportable outcome, not a scenario failure
		fmt.Fprintf(out, "read %s %q: %v\n", st.Type, st.Key, err)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "read %s %q = %v\n", st.Type, st.Key, v)
	return nil
}

func applySubscribe(b *blackboard.Board, st *config.Step, out io.Writer) error {
	fmt.Fprintf(out, "subscribe %s %q (%s)\n", st.Type, st.Key, st.Shape)

	switch st.Type {
	case config.TypeInt:
		return subscribeShaped[int](b, st, out)
	case config.TypeFloat:
		return subscribeShaped[float64](b, st, out)
	case config.TypeString:
		return subscribeShaped[string](b, st, out)
	case config.TypeBool:
		return subscribeShaped[bool](b, st, out)
	}
	return fmt.Errorf("unknown type %q", st.Type)
}

// subscribeShaped registers a printing callback of the requested shape.
func subscribeShaped[T any](b *blackboard.Board, st *config.Step, out io.Writer) error {
	switch st.Shape {
	case config.ShapeKey:
		return blackboard.SubscribeKey[T](b, st.Key, func(key string) {
			fmt.Fprintf(out, "  [callback] key %q changed\n", key)
		})
	case config.ShapeValue:
		return blackboard.SubscribeValue(b, st.Key, func(v T) {
			fmt.Fprintf(out, "  [callback] new value %v\n", v)
		})
	case config.ShapePair:
		return blackboard.SubscribePair(b, st.Key, func(key string, v T) {
			fmt.Fprintf(out, "  [callback] %q = %v\n", key, v)
		})
	}
	return fmt.Errorf("unknown shape %q", st.Shape)
}
