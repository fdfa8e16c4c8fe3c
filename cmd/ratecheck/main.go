// Package main provides the ratecheck CLI, which runs trainpolicy decisions
// against a rate configuration file.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	trainpolicy "trainpolicy/src"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// shared flags
var (
	configPath    string
	datasetName   string
	optimizerName string
	cyclic        bool
	batchNorm     bool
	debug         bool
)

var rootCmd = &cobra.Command{
	Use:   "ratecheck",
	Short: "Check a training-rate configuration before training",
	Long: `ratecheck answers which rate fields are live for an optimizer and dataset,
how many epochs a schedule spans, and whether a start or resume is allowed.

The configuration is read from a JSON file whose keys are RateConfig field
names; missing keys keep their defaults.`,
	Version:       trainpolicy.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		trainpolicy.SetDebug(debug)
	},
}

// ============================================================================
// Optimizers Command
// ============================================================================

var optimizersCmd = &cobra.Command{
	Use:   "optimizers",
	Short: "List optimizers and the parameters they use",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
		fmt.Fprintln(w, "OPTIMIZER\tFAMILY\tMOMENTUM\tL2\tBETA2\tBOUNDED")
		for _, o := range trainpolicy.AllOptimizers() {
			a, err := trainpolicy.OptimizerApplicability(o)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%v\t%v\t%v\t%v\n",
				o, trainpolicy.FamilyOf(a), a.Momentum, a.L2Penalty, a.Beta2, a.BoundedDecay)
		}
		return w.Flush()
	},
}

// ============================================================================
// Liveness Command
// ============================================================================

var livenessCmd = &cobra.Command{
	Use:   "liveness",
	Short: "Show the fields that do not take effect",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, dataset, err := loadInputs()
		if err != nil {
			return err
		}
		live, err := trainpolicy.EvaluateLiveness(cfg, dataset, cyclic)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), map[string]interface{}{
			"optimizer": cfg.Optimizer.String(),
			"dataset":   dataset.String(),
			"cyclic":    cyclic,
			"disabled":  live.Disabled(),
		})
	},
}

// ============================================================================
// Max Epoch Command
// ============================================================================

var maxEpochCmd = &cobra.Command{
	Use:   "max-epoch",
	Short: "Print the last epoch of the schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadInputs()
		if err != nil {
			return err
		}
		if err := trainpolicy.ValidateSchedule(cfg, cyclic); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), trainpolicy.MaxValidEpoch(cfg, cyclic))
		return nil
	},
}

// ============================================================================
// Check Command
// ============================================================================

var gotoEpoch int
var gotoCycle int

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the start gate",
	Long: `Run the start gate. With --goto-epoch the check is for resuming a stopped
run; the accepted resume point always restarts at cycle 1.`,
	Example: `  # Fresh start on CIFAR-10 with warm restarts
  ratecheck check --config rate.json --dataset cifar10 --cyclic --batchnorm

  # Resume at epoch 42
  ratecheck check --config rate.json --dataset cifar10 --cyclic --goto-epoch 42 --goto-cycle 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, dataset, err := loadInputs()
		if err != nil {
			return err
		}
		var resume *trainpolicy.ResumePoint
		if cmd.Flags().Changed("goto-epoch") {
			resume = &trainpolicy.ResumePoint{Epoch: gotoEpoch, Cycle: gotoCycle}
		}
		adm, err := trainpolicy.CheckStart(cfg, trainpolicy.ModelProperties{
			Dataset:                dataset,
			UsesBatchNormalization: batchNorm,
		}, cyclic, resume)
		if err != nil {
			return fmt.Errorf("start rejected: %w", err)
		}
		out := map[string]interface{}{
			"accepted": true,
			"maxEpoch": adm.MaxEpoch,
			"disabled": adm.Liveness.Disabled(),
		}
		if adm.Resume != nil {
			out["resume"] = adm.Resume
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

func loadInputs() (trainpolicy.RateConfig, trainpolicy.Dataset, error) {
	cfg := trainpolicy.DefaultRateConfig()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return cfg, 0, fmt.Errorf("failed to read config: %w", err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, 0, fmt.Errorf("failed to parse config %s: %w", configPath, err)
		}
	}
	if optimizerName != "" {
		o, err := trainpolicy.ParseOptimizer(optimizerName)
		if err != nil {
			return cfg, 0, err
		}
		cfg.Optimizer = o
	}
	dataset, err := trainpolicy.ParseDataset(datasetName)
	if err != nil {
		return cfg, 0, err
	}
	return cfg, dataset, nil
}

func printJSON(w io.Writer, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "JSON rate configuration file")
	rootCmd.PersistentFlags().StringVarP(&datasetName, "dataset", "d", "cifar10", "dataset name")
	rootCmd.PersistentFlags().StringVarP(&optimizerName, "optimizer", "o", "", "optimizer name (overrides the config file)")
	rootCmd.PersistentFlags().BoolVar(&cyclic, "cyclic", false, "use the cyclic-restart schedule instead of flat decay")
	rootCmd.PersistentFlags().BoolVar(&batchNorm, "batchnorm", false, "the model uses batch normalization")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log policy decisions to stderr")

	checkCmd.Flags().IntVar(&gotoEpoch, "goto-epoch", 1, "epoch to resume from")
	checkCmd.Flags().IntVar(&gotoCycle, "goto-cycle", 1, "cycle to resume from")

	rootCmd.AddCommand(optimizersCmd)
	rootCmd.AddCommand(livenessCmd)
	rootCmd.AddCommand(maxEpochCmd)
	rootCmd.AddCommand(checkCmd)
}
