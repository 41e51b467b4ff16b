package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/pwmeter/internal/app"
	"github.com/abhisek/pwmeter/internal/config"
	"github.com/abhisek/pwmeter/internal/logging"
	"github.com/abhisek/pwmeter/internal/strength"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive checker (same as running pwmeter with no arguments)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// env is what every command needs once flags are parsed.
type env struct {
	cfg    config.Config
	logger *slog.Logger
}

// resolveEnv applies --config and --model over the environment and builds
// the logger. Logs go to the command's stderr.
func resolveEnv(cmd *cobra.Command) (*env, error) {
	configPath, _ := cmd.Flags().GetString("config")
	modelPath, _ := cmd.Flags().GetString("model")

	cfg, err := config.Resolve(configPath, modelPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	return &env{cfg: cfg, logger: logger}, nil
}

// openHandle loads the configured model up front so a bad artifact fails the
// command before any input is read.
func openHandle(cmd *cobra.Command) (*env, *strength.Handle, error) {
	e, err := resolveEnv(cmd)
	if err != nil {
		return nil, nil, err
	}
	h := strength.OpenHandle(strength.Source{Path: e.cfg.Model.Path}, e.logger)
	if err := h.Load(); err != nil {
		return nil, nil, fmt.Errorf("load model: %w", err)
	}
	return e, h, nil
}

// runApp loads the model and launches the TUI.
func runApp(cmd *cobra.Command) error {
	_, h, err := openHandle(cmd)
	if err != nil {
		return err
	}

	opts := app.Options{Handle: h}
	if a := h.Artifact(); a != nil {
		opts.ModelName = a.Name
	}
	return app.Run(opts)
}
