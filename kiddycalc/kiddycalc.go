//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/timburks/kiddycalc/calc"
	"github.com/timburks/kiddycalc/commander"
	"github.com/timburks/kiddycalc/config"
	"github.com/timburks/kiddycalc/logging"
	"github.com/timburks/kiddycalc/screen"
)

var (
	configPath string
	debug      bool
	script     string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "kiddycalc",
	Short: "A friendly calculator for young users",
	Long: `kiddycalc is a one-screen calculator. Tap the buttons with the mouse;
press Esc or q to leave.

Operations are evaluated left to right as they are entered: 2 + 3 × 4 = 20.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if debug {
			cfg.Debug = true
		}
		logger, err = logging.New(cfg.LogFile, cfg.Debug)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if script != "" {
			// Run a script and exit.
			return runScript(cmd, script)
		}
		return runInteractive()
	},
}

// pressCmd feeds button labels to a fresh calculator
var pressCmd = &cobra.Command{
	Use:   "press [label]...",
	Short: "Press buttons and print the equation",
	Long: `Presses each label in order and prints what the display would show.

Example:
  kiddycalc press 2 + 3 x 4 =`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := commander.NewCommander(calc.NewCalculator(), logger)
		for _, label := range args {
			if err := c.Press(label); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.GetEquation())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every operation and show events in the message bar")
	rootCmd.Flags().StringVar(&script, "eval", "", "evaluate a lisp script, print the result and exit")
	rootCmd.AddCommand(pressCmd)
}

func runScript(cmd *cobra.Command, script string) error {
	c := commander.NewCommander(calc.NewCalculator(), logger)
	out, err := c.ParseEval(script)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runInteractive() error {
	// The calculator holds the state; the commander converts taps into operations.
	c := commander.NewCommander(calc.NewCalculator(), logger)
	c.SetDebug(cfg.Debug)

	s, err := screen.NewScreen(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	logger.Info("session started")

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			logger.Warn("event failed", zap.Error(err))
		}
	}
	logger.Info("session ended", zap.String("equation", c.GetEquation()))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
