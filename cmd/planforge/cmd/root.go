package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planforge/planforge/internal/model"
	"github.com/planforge/planforge/pkg/core/config"
	"github.com/planforge/planforge/pkg/core/logging"
)

var (
	configFile string
	planFile   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "planforge",
	Short: "PlanForge - production planning optimization",
	Long: `PlanForge solves multi-product production-planning problems with
linear programming and reports the optimal plan.

Commands:
  show         - print the problem setup
  solve        - solve the plan and print the results
  sensitivity  - re-solve under perturbed coefficients
  charts       - render the chart set as PNG files
  history      - list recorded solve runs
  tui          - browse results interactively

The plan is read from --plan, the plan_file config setting, the
PLANFORGE_PLAN environment variable, or the built-in default instance.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: PLANFORGE_CONFIG or ./configs/config.toml)")
	rootCmd.PersistentFlags().StringVar(&planFile, "plan", "", "Plan file (.toml, .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// loadConfig loads the application config, falling back to built-in
// defaults when no config file exists
func loadConfig() *config.Config {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			printError("loading config", err)
			return config.Default()
		}
		return cfg
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		printError("loading config", err)
		return config.Default()
	}
	return cfg
}

// resolvePlan loads the plan honoring flag, config, and environment
func resolvePlan(cfg *config.Config) (model.Plan, error) {
	path := planFile
	if path == "" {
		path = cfg.General.PlanFile
	}
	return model.Resolve(path)
}

// newLogger builds a named logger honoring --verbose and the config level
func newLogger(cfg *config.Config, name string) *logging.Logger {
	logger := logging.New(name)

	if level, err := logging.ParseLevel(cfg.General.LogLevel); err == nil {
		logger = logger.WithLevel(level)
	}
	if verbose {
		logger = logger.WithLevel(logging.LevelDebug)
	}
	return logger
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
